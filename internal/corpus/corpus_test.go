package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile %s: %v", name, err)
	}
	return path
}

func TestSearchCountsOccurrences(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "Old Cottage is great. Book Old Cottage now.")
	writeFile(t, dir, "b.txt", "Nothing to see here.")
	writeFile(t, dir, "c.yaml", "name: Old Cottage")
	writeFile(t, dir, "skip.bin", "Old Cottage")

	s := NewSearcher(dir)
	matches, err := s.Search("Old Cottage")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("matches = %d, want 2 (got %+v)", len(matches), matches)
	}

	total := 0
	for _, m := range matches {
		total += m.Count
	}
	if total != 3 {
		t.Errorf("total occurrences = %d, want 3", total)
	}
}

func TestSearchEmptyLabel(t *testing.T) {
	s := NewSearcher(t.TempDir())
	matches, err := s.Search("   ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if matches != nil {
		t.Errorf("matches = %v, want nil", matches)
	}
}

func TestApplyRewritesAllOccurrences(t *testing.T) {
	dir := t.TempDir()
	pathA := writeFile(t, dir, "a.md", "Old Cottage, Old Cottage")
	pathB := writeFile(t, dir, "b.md", "Old Cottage here")

	s := NewSearcher(dir)
	matches, err := s.Search("Old Cottage")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	result := s.Apply("Old Cottage", "New Cottage", matches)
	if result.Modified != 2 {
		t.Errorf("modified = %d, want 2", result.Modified)
	}
	if len(result.Failures) != 0 {
		t.Errorf("failures = %+v, want none", result.Failures)
	}

	for _, p := range []string{pathA, pathB} {
		raw, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if !strings.Contains(string(raw), "New Cottage") || strings.Contains(string(raw), "Old Cottage") {
			t.Errorf("%s not rewritten: %q", p, raw)
		}
	}
}

func TestApplyIsBestEffort(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "Old Cottage")

	s := NewSearcher(dir)
	matches, err := s.Search("Old Cottage")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	// A file that vanished between search and apply fails without
	// aborting the rest.
	matches = append([]Match{{File: filepath.Join(dir, "gone.md"), Count: 1}}, matches...)

	result := s.Apply("Old Cottage", "New Cottage", matches)
	if result.Modified != 1 {
		t.Errorf("modified = %d, want 1", result.Modified)
	}
	if len(result.Failures) != 1 {
		t.Errorf("failures = %+v, want exactly one", result.Failures)
	}
}
