// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

// Package matcher expands glob patterns into the concrete set of files that
// will be packaged. Patterns are doublestar-compatible, so "**" reaches
// nested directories.
package matcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/apex/log"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern selects every Python source file in the tree when the user
// supplies no --include flags.
const DefaultPattern = "**/*.py"

// ErrNoMatches is returned when the pattern set selects nothing. Nothing to
// package is a configuration error, not an empty archive.
var ErrNoMatches = errors.New("no files matched the include patterns")

// Resolve expands patterns against root and returns a sorted, deduplicated
// list of slash-separated relative paths. Directories are skipped; only
// regular files are kept. An empty patterns slice means DefaultPattern.
func Resolve(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	fsys := os.DirFS(root)

	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		log.Debugf("pattern %q matched %d paths", pattern, len(matches))

		for _, m := range matches {
			info, err := fs.Stat(fsys, m)
			if err != nil {
				// Matched a moment ago but gone now. Leave it out; the
				// archive builder is the authority on read failures.
				log.Debugf("skipping unstatable match %s: %v", m, err)
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}
			seen[m] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil, ErrNoMatches
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)

	return files, nil
}
