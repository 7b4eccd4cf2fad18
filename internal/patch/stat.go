// SPDX-License-Identifier: AGPL-3.0-or-later

package patch

import "strings"

// FileStat summarizes the changes made to one file in a commit diff.
type FileStat struct {
	Path      string `json:"path" yaml:"path"`
	OldPath   string `json:"oldPath,omitempty" yaml:"oldPath,omitempty"`
	Additions int    `json:"additions" yaml:"additions"`
	Deletions int    `json:"deletions" yaml:"deletions"`
	IsNew     bool   `json:"isNew,omitempty" yaml:"isNew,omitempty"`
	IsDeleted bool   `json:"isDeleted,omitempty" yaml:"isDeleted,omitempty"`
	IsBinary  bool   `json:"isBinary,omitempty" yaml:"isBinary,omitempty"`
}

// Stat returns per-file statistics for a unified diff, in file order.
// Lines before the first "diff --git" header are ignored.
func Stat(diff string) []FileStat {
	var (
		files  []FileStat
		inHunk bool
	)

	for _, line := range splitLines(diff) {
		if strings.HasPrefix(line, diffStart) {
			oldPath, newPath := parseDiffPaths(line[len(diffStart):])
			fs := FileStat{Path: newPath}
			if oldPath != newPath {
				fs.OldPath = oldPath
			}
			files = append(files, fs)
			inHunk = false
			continue
		}
		if len(files) == 0 {
			continue
		}

		cur := &files[len(files)-1]
		switch {
		case strings.HasPrefix(line, "@@"):
			inHunk = true
		case !inHunk:
			parseExtendedHeader(cur, line)
		case strings.HasPrefix(line, "+"):
			cur.Additions++
		case strings.HasPrefix(line, "-"):
			cur.Deletions++
		}
	}

	return files
}

// Totals sums additions and deletions across files.
func Totals(files []FileStat) (additions, deletions int) {
	for _, f := range files {
		additions += f.Additions
		deletions += f.Deletions
	}
	return additions, deletions
}

func parseExtendedHeader(fs *FileStat, line string) {
	switch {
	case strings.HasPrefix(line, "new file mode "):
		fs.IsNew = true
	case strings.HasPrefix(line, "deleted file mode "):
		fs.IsDeleted = true
	case strings.HasPrefix(line, "rename from "):
		fs.OldPath = strings.TrimPrefix(line, "rename from ")
	case strings.HasPrefix(line, "rename to "):
		fs.Path = strings.TrimPrefix(line, "rename to ")
	case strings.HasPrefix(line, "Binary files ") && strings.HasSuffix(line, " differ"),
		line == "GIT binary patch":
		fs.IsBinary = true
	}
}

// parseDiffPaths splits "a/old b/new" from a diff --git header.
func parseDiffPaths(s string) (oldPath, newPath string) {
	if i := strings.LastIndex(s, " b/"); i >= 0 {
		return strings.TrimPrefix(s[:i], "a/"), s[i+len(" b/"):]
	}
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], fields[0]
	default:
		return fields[0], fields[len(fields)-1]
	}
}
