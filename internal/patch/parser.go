// SPDX-License-Identifier: AGPL-3.0-or-later

package patch

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// headerRegex matches the mbox separator line: From <sha> Mon Sep 17 00:00:00 2001
var headerRegex = regexp.MustCompile(`^From\s+([0-9a-f]{40})\s`)

const (
	authorPrefix  = "From: "
	datePrefix    = "Date: "
	subjectPrefix = "Subject: "
	subjectTag    = "[PATCH] "
	separatorLine = "---"
	diffStart     = "diff --git "
	signatureLine = "--"
)

type section int

const (
	sectionHeaders section = iota
	sectionMessage
	sectionDiff
)

// accumulator holds the fields of the commit currently being scanned.
type accumulator struct {
	sha         string
	authorName  string
	authorEmail string
	date        string
	message     []string
	diff        []string
	section     section

	// strict policy only
	diffStarted bool
	diffClosed  bool
}

func (a *accumulator) commit(policy Policy) Commit {
	c := Commit{
		SHA:         a.sha,
		AuthorName:  a.authorName,
		AuthorEmail: a.authorEmail,
		Date:        a.date,
		Message:     strings.TrimSpace(strings.Join(a.message, "\n")),
	}

	switch policy {
	case PolicyPermissive:
		c.Diff = strings.TrimSpace(strings.Join(a.diff, "\n"))
	default:
		if len(a.diff) > 0 {
			c.Diff = strings.Join(a.diff, "\n") + "\n"
		}
	}
	return c
}

func (a *accumulator) appendDiff(line string, policy Policy) {
	if policy == PolicyPermissive {
		a.diff = append(a.diff, line)
		return
	}

	if a.diffClosed {
		return
	}
	if !a.diffStarted {
		if !strings.HasPrefix(line, diffStart) {
			// diffstat summary between the separator and the first file header
			return
		}
		a.diffStarted = true
	} else if strings.TrimSpace(line) == signatureLine {
		a.diffClosed = true
		return
	}
	a.diff = append(a.diff, line)
}

// Parse parses a patch series using PolicyStrict.
func Parse(text string) []Commit {
	return ParseWith(text, PolicyStrict)
}

// ParseWith parses a patch series into commits in input order.
// It never fails: text without any "From <sha> " header yields no commits,
// and missing fields are left empty.
func ParseWith(text string, policy Policy) []Commit {
	var (
		commits []Commit
		acc     accumulator
	)

	finalize := func() {
		if acc.sha == "" {
			return
		}
		commits = append(commits, acc.commit(policy))
		acc = accumulator{}
	}

	for _, line := range splitLines(text) {
		if m := headerRegex.FindStringSubmatch(line); m != nil {
			finalize()
			acc.sha = m[1]
			continue
		}

		switch {
		case strings.HasPrefix(line, authorPrefix):
			name, email, ok := parseAuthor(line[len(authorPrefix):])
			acc.authorName = name
			if ok {
				acc.authorEmail = email
			}

		case strings.HasPrefix(line, datePrefix):
			acc.date = strings.TrimSpace(line[len(datePrefix):])

		case strings.HasPrefix(line, subjectPrefix):
			subject := strings.TrimSpace(line[len(subjectPrefix):])
			subject = strings.TrimPrefix(subject, subjectTag)
			acc.message = append(acc.message, subject)
			acc.section = sectionMessage

		case acc.section == sectionMessage && strings.TrimSpace(line) == separatorLine:
			acc.section = sectionDiff

		case acc.section == sectionMessage:
			acc.message = append(acc.message, line)

		case acc.section == sectionDiff:
			acc.appendDiff(line, policy)
		}
	}

	finalize()
	return commits
}

// ParseReader reads the whole series from r and parses it with the given policy.
// Only read failures are reported.
func ParseReader(r io.Reader, policy Policy) ([]Commit, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading patch: %w", err)
	}
	return ParseWith(string(data), policy), nil
}

// parseAuthor splits "Name <email>". ok is false when no angle-bracket pair is present,
// in which case name is the whole trimmed value.
func parseAuthor(value string) (name, email string, ok bool) {
	value = strings.TrimSpace(value)
	open := strings.IndexByte(value, '<')
	if open < 0 {
		return value, "", false
	}
	end := strings.LastIndexByte(value, '>')
	if end <= open {
		return value, "", false
	}
	return strings.TrimSpace(value[:open]), value[open+1 : end], true
}

// splitLines splits text on "\n". A single terminating newline ends the last
// line rather than starting an empty one.
func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
