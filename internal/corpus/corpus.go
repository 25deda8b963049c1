// Package corpus searches and rewrites labels across the content file
// tree targeted by confirmed edit operations.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Match is one file containing the searched label.
type Match struct {
	File  string `json:"file"`
	Count int    `json:"count"`
}

// FileError is a per-file apply failure.
type FileError struct {
	File string `json:"file"`
	Err  string `json:"error"`
}

// ApplyResult reports a best-effort rewrite. Partial success is a valid
// terminal outcome: Modified counts only files actually rewritten.
type ApplyResult struct {
	Modified int         `json:"modified"`
	Failures []FileError `json:"failures,omitempty"`
}

var textExtensions = map[string]bool{
	".md":   true,
	".txt":  true,
	".json": true,
	".yaml": true,
	".yml":  true,
	".html": true,
}

// Searcher walks a content root looking for label occurrences.
type Searcher struct {
	root string
}

// NewSearcher creates a searcher over root.
func NewSearcher(root string) *Searcher {
	return &Searcher{root: root}
}

// Search returns every text file under the root containing label, with
// occurrence counts. Unreadable files are skipped.
func (s *Searcher) Search(label string) ([]Match, error) {
	if strings.TrimSpace(label) == "" {
		return nil, nil
	}

	var matches []Match
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != s.root {
				return fs.SkipDir
			}
			return nil
		}
		if !textExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		if n := strings.Count(string(raw), label); n > 0 {
			matches = append(matches, Match{File: path, Count: n})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk corpus root %q: %w", s.root, err)
	}
	return matches, nil
}

// Apply rewrites every occurrence of oldLabel with newLabel in the
// matched file set. A failing file is recorded and skipped; remaining
// writes continue.
func (s *Searcher) Apply(oldLabel, newLabel string, matches []Match) ApplyResult {
	var result ApplyResult
	for _, m := range matches {
		if err := rewriteFile(m.File, oldLabel, newLabel); err != nil {
			result.Failures = append(result.Failures, FileError{
				File: m.File,
				Err:  err.Error(),
			})
			continue
		}
		result.Modified++
	}
	return result
}

func rewriteFile(path, oldLabel, newLabel string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	updated := strings.ReplaceAll(string(raw), oldLabel, newLabel)
	if updated == string(raw) {
		return nil
	}
	return os.WriteFile(path, []byte(updated), info.Mode().Perm())
}
