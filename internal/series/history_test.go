// SPDX-License-Identifier: AGPL-3.0-or-later

package series

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/gitpatch/internal/patch"
)

const twoCommits = `From 1111111111111111111111111111111111111111 Mon Sep 17 00:00:00 2001
From: John Doe <john@example.com>
Subject: [PATCH] one

---
 a | 1 +
diff --git a/a b/a
+a
From 2222222222222222222222222222222222222222 Mon Sep 17 00:00:00 2001
From: Jane Smith <jane@example.com>
Subject: [PATCH] two
`

func TestSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.patch")
	require.NoError(t, os.WriteFile(path, []byte(twoCommits), 0o600))

	sources := map[string]HistorySource{
		"text":   TextSource{Text: twoCommits},
		"reader": ReaderSource{Reader: strings.NewReader(twoCommits)},
		"file":   FileSource{Path: path},
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			commits, err := src.Commits()
			require.NoError(t, err)
			require.Len(t, commits, 2)
			assert.Equal(t, "one", commits[0].Message)
			assert.Equal(t, "diff --git a/a b/a\n+a\n", commits[0].Diff)
			assert.Equal(t, "Jane Smith", commits[1].AuthorName)
		})
	}
}

func TestSources_Policy(t *testing.T) {
	commits, err := TextSource{Text: twoCommits, Policy: patch.PolicyPermissive}.Commits()
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "a | 1 +\ndiff --git a/a b/a\n+a", commits[0].Diff)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "missing.patch")}.Commits()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReaderSource_Nil(t *testing.T) {
	_, err := ReaderSource{}.Commits()
	assert.Error(t, err)
}
