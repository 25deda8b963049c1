package locale

import "testing"

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := New("ka", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestResolveCompiledDefault(t *testing.T) {
	r := newResolver(t)

	got := r.Resolve("en", "greeting.welcome.title")
	if got != "Welcome!" {
		t.Errorf("Resolve(en) = %q, want %q", got, "Welcome!")
	}

	ka := r.Resolve("ka", "greeting.welcome.title")
	if ka == "" || ka == got {
		t.Errorf("Resolve(ka) = %q, want Georgian string", ka)
	}
}

func TestResolveFallsBackToEnglish(t *testing.T) {
	r := newResolver(t)

	// Unsupported language normalizes to English.
	got := r.Resolve("de", "pricing.title")
	if got != "Prices" {
		t.Errorf("Resolve(de) = %q, want %q", got, "Prices")
	}
}

func TestResolveUnknownKeyReturnsKey(t *testing.T) {
	r := newResolver(t)

	if got := r.Resolve("ka", "no.such.key"); got != "no.such.key" {
		t.Errorf("Resolve = %q, want the key itself", got)
	}
}

func TestNormalizeEmptyUsesDefault(t *testing.T) {
	r := newResolver(t)

	if got := r.Normalize(""); got != "ka" {
		t.Errorf("Normalize(\"\") = %q, want %q", got, "ka")
	}
}

func TestResolvef(t *testing.T) {
	r := newResolver(t)

	got := r.Resolvef("en", "edit.applied", 3)
	if got != "Done: 3 files updated." {
		t.Errorf("Resolvef = %q", got)
	}
}
