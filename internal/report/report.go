// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Gitpatch - Gitpatch parses git format-patch series into structured commit records.
It segments mailbox-style patch exports into per-commit sections and exposes them as JSON, YAML or Markdown.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package report renders parsed commits for humans and downstream tools.
//
// Feature: PATCH_REPORT
// Spec: spec/patch/report.md
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/gitpatch/internal/patch"
	"github.com/bartekus/gitpatch/internal/projection"
)

// Format is an output format name.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a format name to a Format. "md" and "yml" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format: %s (must be 'json', 'yaml' or 'markdown')", s)
	}
}

// Render writes commits to w in the given format.
func Render(w io.Writer, format Format, commits []patch.Commit) error {
	if commits == nil {
		commits = []patch.Commit{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(commits); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(commits); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("closing YAML encoder: %w", err)
		}
		return nil

	case FormatMarkdown:
		if _, err := io.WriteString(w, markdown(commits)); err != nil {
			return fmt.Errorf("writing markdown: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// RenderStat writes a Markdown table of per-file changes for every commit.
func RenderStat(w io.Writer, commits []patch.Commit) error {
	var b strings.Builder

	b.WriteString(projection.RenderHeader(1, "Diff Statistics"))
	if len(commits) == 0 {
		b.WriteString("No commits found.\n")
	}

	for _, c := range commits {
		b.WriteString(projection.RenderHeader(2, shortSHA(c.SHA)+" "+c.Subject()))
		b.WriteString(statTable(patch.Stat(c.Diff)))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing stat: %w", err)
	}
	return nil
}

func markdown(commits []patch.Commit) string {
	var b strings.Builder

	b.WriteString(projection.RenderHeader(1, "Patch Series"))
	fmt.Fprintf(&b, "- **Commits**: %d\n\n", len(commits))

	if len(commits) == 0 {
		return b.String()
	}

	authors := make(map[string]int)
	for _, c := range commits {
		authors[authorLabel(c)]++
	}
	keys := projection.SortedKeys(authors)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, strconv.Itoa(authors[k])})
	}
	b.WriteString(projection.RenderHeader(2, "Authors"))
	b.WriteString(projection.RenderTable([]string{"Author", "Commits"}, rows))
	b.WriteString("\n")

	for i, c := range commits {
		b.WriteString(projection.RenderHeader(2, fmt.Sprintf("%d. %s", i+1, c.Subject())))
		b.WriteString(projection.RenderList([]string{
			"**SHA**: `" + c.SHA + "`",
			"**Author**: " + authorLabel(c),
			"**Date**: " + c.Date,
		}))
		b.WriteString("\n")

		if _, body, ok := strings.Cut(c.Message, "\n"); ok {
			if body = strings.TrimSpace(body); body != "" {
				b.WriteString(projection.RenderCodeBlock("text", body))
				b.WriteString("\n")
			}
		}

		stats := patch.Stat(c.Diff)
		if len(stats) > 0 {
			b.WriteString(projection.RenderHeader(3, "Files"))
			b.WriteString(statTable(stats))
			b.WriteString("\n")
		}
		if c.Diff != "" {
			b.WriteString(projection.RenderHeader(3, "Diff"))
			b.WriteString(projection.RenderCodeBlock("diff", c.Diff))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func statTable(stats []patch.FileStat) string {
	if len(stats) == 0 {
		return "No file changes.\n"
	}

	rows := make([][]string, 0, len(stats)+1)
	for _, s := range stats {
		rows = append(rows, []string{s.Path, strconv.Itoa(s.Additions), strconv.Itoa(s.Deletions), changeKind(s)})
	}
	add, del := patch.Totals(stats)
	rows = append(rows, []string{"**total**", strconv.Itoa(add), strconv.Itoa(del), ""})

	return projection.RenderTable([]string{"File", "Added", "Deleted", "Change"}, rows)
}

func changeKind(s patch.FileStat) string {
	switch {
	case s.IsBinary:
		return "binary"
	case s.IsNew:
		return "added"
	case s.IsDeleted:
		return "deleted"
	case s.OldPath != "":
		return "renamed from " + s.OldPath
	default:
		return "modified"
	}
}

func authorLabel(c patch.Commit) string {
	switch {
	case c.AuthorEmail == "":
		return c.AuthorName
	case c.AuthorName == "":
		return "<" + c.AuthorEmail + ">"
	default:
		return c.AuthorName + " <" + c.AuthorEmail + ">"
	}
}

func shortSHA(sha string) string {
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}
