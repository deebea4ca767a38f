// Package walk discovers the source files a sweep run will touch. Roots
// are validated up front: a missing root aborts discovery before any file
// is processed.
package walk

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options filters discovery.
type Options struct {
	// Extensions are the target file extensions, dot included (".rs").
	Extensions []string

	// Exclude patterns skip any file whose slash-separated path either
	// contains the pattern as a substring or matches it as a doublestar
	// glob ("**/testdata/**").
	Exclude []string
}

// Discover expands roots (files or directories) into the sorted, de-duplicated
// list of eligible files. Files named directly on the command line but not
// carrying a target extension are returned in skipped rather than silently
// ignored. A root that does not exist, or is neither a regular file nor a
// directory, is an error; no partial result is returned.
func Discover(roots []string, opts Options) (files, skipped []string, err error) {
	seen := map[string]bool{}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil, fmt.Errorf("path %s does not exist", root)
			}
			return nil, nil, fmt.Errorf("stat %s: %w", root, err)
		}

		switch {
		case info.Mode().IsRegular():
			if !hasTargetExt(root, opts.Extensions) {
				skipped = append(skipped, root)
				continue
			}
			if !Excluded(root, opts.Exclude) && !seen[root] {
				seen[root] = true
				files = append(files, root)
			}
		case info.IsDir():
			err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() || !hasTargetExt(path, opts.Extensions) {
					return nil
				}
				if Excluded(path, opts.Exclude) || seen[path] {
					return nil
				}
				seen[path] = true
				files = append(files, path)
				return nil
			})
			if err != nil {
				return nil, nil, fmt.Errorf("walk %s: %w", root, err)
			}
		default:
			return nil, nil, fmt.Errorf("path %s is neither a file nor a directory", root)
		}
	}

	sort.Strings(files)
	return files, skipped, nil
}

// Excluded reports whether path is ruled out by any exclude pattern.
func Excluded(path string, patterns []string) bool {
	slashed := filepath.ToSlash(path)
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if strings.Contains(slashed, p) {
			return true
		}
		if ok, err := doublestar.Match(p, slashed); err == nil && ok {
			return true
		}
	}
	return false
}

func hasTargetExt(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, want := range exts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
