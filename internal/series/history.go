// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Gitpatch - Gitpatch parses git format-patch series into structured commit records.
It segments mailbox-style patch exports into per-commit sections and exposes them as JSON, YAML or Markdown.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package series provides commit history read from patch series.
//
// Feature: PATCH_SERIES_SOURCE
// Spec: spec/patch/series.md
package series

import (
	"fmt"
	"io"
	"os"

	"github.com/bartekus/gitpatch/internal/patch"
)

// HistorySource provides parsed commits for rendering or analysis.
type HistorySource interface {
	Commits() ([]patch.Commit, error)
}

// TextSource parses an in-memory patch series.
type TextSource struct {
	Text   string
	Policy patch.Policy
}

func (s TextSource) Commits() ([]patch.Commit, error) {
	return patch.ParseWith(s.Text, s.Policy), nil
}

// ReaderSource parses a patch series read from Reader, e.g. stdin.
type ReaderSource struct {
	Reader io.Reader
	Policy patch.Policy
}

func (s ReaderSource) Commits() ([]patch.Commit, error) {
	if s.Reader == nil {
		return nil, fmt.Errorf("reader source: nil reader")
	}
	return patch.ParseReader(s.Reader, s.Policy)
}

// FileSource parses the patch series stored at Path.
type FileSource struct {
	Path   string
	Policy patch.Policy
}

func (s FileSource) Commits() ([]patch.Commit, error) {
	f, err := os.Open(s.Path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("opening patch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	commits, err := patch.ParseReader(f, s.Policy)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Path, err)
	}
	return commits, nil
}
