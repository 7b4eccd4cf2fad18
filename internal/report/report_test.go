// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bartekus/gitpatch/internal/patch"
)

const sampleDiff = "diff --git a/x b/x\nnew file mode 100644\n--- /dev/null\n+++ b/x\n@@ -0,0 +1 @@\n+x\n"

func sampleCommits() []patch.Commit {
	return []patch.Commit{{
		SHA:         strings.Repeat("1", 40),
		AuthorName:  "John Doe",
		AuthorEmail: "john@example.com",
		Date:        "Wed, 12 Oct 2022 14:38:15 +0200",
		Message:     "Add x\n\nBody line.",
		Diff:        sampleDiff,
	}}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatJSON},
		{in: "JSON", want: FormatJSON},
		{in: "yml", want: FormatYAML},
		{in: "md", want: FormatMarkdown},
		{in: "markdown", want: FormatMarkdown},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleCommits()))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, `"authorEmail": "john@example.com"`)
	assert.Contains(t, out, `"sha": "`+strings.Repeat("1", 40)+`"`)

	var decoded []patch.Commit
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleCommits(), decoded)
}

func TestRender_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRender_JSONDoesNotEscapeHTML(t *testing.T) {
	commits := []patch.Commit{{SHA: strings.Repeat("a", 40), Diff: "+if a < b && c > d {\n"}}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, commits))
	assert.Contains(t, buf.String(), "a < b && c > d")
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, sampleCommits()))
	assert.Contains(t, buf.String(), "authorName: John Doe")

	var decoded []patch.Commit
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleCommits(), decoded)
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatMarkdown, sampleCommits()))

	want := "# Patch Series\n\n" +
		"- **Commits**: 1\n\n" +
		"## Authors\n\n" +
		"| Author | Commits |\n| --- | --- |\n| John Doe <john@example.com> | 1 |\n" +
		"\n" +
		"## 1. Add x\n\n" +
		"- **SHA**: `" + strings.Repeat("1", 40) + "`\n" +
		"- **Author**: John Doe <john@example.com>\n" +
		"- **Date**: Wed, 12 Oct 2022 14:38:15 +0200\n" +
		"\n" +
		"```text\nBody line.\n```\n" +
		"\n" +
		"### Files\n\n" +
		"| File | Added | Deleted | Change |\n| --- | --- | --- | --- |\n" +
		"| x | 1 | 0 | added |\n" +
		"| **total** | 1 | 0 |  |\n" +
		"\n" +
		"### Diff\n\n" +
		"```diff\n" + sampleDiff + "```\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_MarkdownEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatMarkdown, nil))
	assert.Equal(t, "# Patch Series\n\n- **Commits**: 0\n\n", buf.String())
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, Format("xml"), nil))
}

func TestRenderStat(t *testing.T) {
	commits := append(sampleCommits(), patch.Commit{SHA: strings.Repeat("2", 40), Message: "Empty"})

	var buf bytes.Buffer
	require.NoError(t, RenderStat(&buf, commits))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Diff Statistics\n\n"))
	assert.Contains(t, out, "## 111111111111 Add x\n\n")
	assert.Contains(t, out, "| x | 1 | 0 | added |\n")
	assert.Contains(t, out, "## 222222222222 Empty\n\nNo file changes.\n")
}

func TestRenderStat_NoCommits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderStat(&buf, nil))
	assert.Equal(t, "# Diff Statistics\n\nNo commits found.\n", buf.String())
}
