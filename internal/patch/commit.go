// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Gitpatch - Gitpatch parses git format-patch series into structured commit records.
It segments mailbox-style patch exports into per-commit sections and exposes them as JSON, YAML or Markdown.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package patch parses mailbox-style patch series (git format-patch output)
// into an ordered list of commits.
//
// Feature: PATCH_PARSER
// Spec: spec/patch/parser.md
package patch

import (
	"fmt"
	"strings"
)

// Commit is a single commit extracted from a patch series.
type Commit struct {
	SHA         string `json:"sha" yaml:"sha"`
	AuthorName  string `json:"authorName" yaml:"authorName"`
	AuthorEmail string `json:"authorEmail" yaml:"authorEmail"`
	Date        string `json:"date" yaml:"date"`
	Message     string `json:"message" yaml:"message"`
	Diff        string `json:"diff" yaml:"diff"`
}

// Subject returns the first line of the commit message.
func (c Commit) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return subject
}

// Policy selects how the section after the "---" separator is captured.
type Policy int

const (
	// PolicyStrict waits for a "diff --git " line before capturing and stops
	// at the "--" signature line.
	PolicyStrict Policy = iota
	// PolicyPermissive captures every line after the separator.
	PolicyPermissive
)

func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyPermissive:
		return "permissive"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a policy name to a Policy. The empty string selects PolicyStrict.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PolicyStrict, nil
	case "permissive":
		return PolicyPermissive, nil
	default:
		return PolicyStrict, fmt.Errorf("unknown policy: %s (must be 'strict' or 'permissive')", s)
	}
}
