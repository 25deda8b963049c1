package stream

import "testing"

func TestResolvePlainString(t *testing.T) {
	c := Resolve("hello")
	if _, ok := c.(PlainText); !ok {
		t.Fatalf("Resolve(string) = %T", c)
	}
	if c.Text() != "hello" {
		t.Errorf("Text = %q", c.Text())
	}
}

func TestResolveParagraphs(t *testing.T) {
	c := Resolve([]string{"a", "b"})
	if _, ok := c.(Paragraphs); !ok {
		t.Fatalf("Resolve([]string) = %T", c)
	}
	if c.Text() != "a\n\nb" {
		t.Errorf("Text = %q", c.Text())
	}
}

func TestResolveKeyedFieldsSortsKeys(t *testing.T) {
	c := Resolve(map[string]string{"zeta": "2", "alpha": "1"})
	if c.Text() != "alpha: 1\n\nzeta: 2" {
		t.Errorf("Text = %q", c.Text())
	}
}

func TestResolveObjectPrefersContentKeys(t *testing.T) {
	c := Resolve(map[string]any{
		"response": "the body",
		"other":    "ignored",
	})
	if c.Text() != "the body" {
		t.Errorf("Text = %q, want content field only", c.Text())
	}

	// Nested content resolves recursively.
	c = Resolve(map[string]any{"content": []any{}})
	if c == nil {
		t.Fatal("nested resolve returned nil")
	}
}

func TestResolveObjectWithoutContentKeysFlattens(t *testing.T) {
	c := Resolve(map[string]any{"guests": 3, "from": "2025-07-01"})
	want := "from: 2025-07-01\n\nguests: 3"
	if c.Text() != want {
		t.Errorf("Text = %q, want %q", c.Text(), want)
	}
}

func TestResolveNil(t *testing.T) {
	if got := Resolve(nil).Text(); got != "" {
		t.Errorf("Resolve(nil).Text() = %q", got)
	}
}
