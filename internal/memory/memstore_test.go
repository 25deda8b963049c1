package memory

import (
	"context"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemStoreRoundTrip(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	if err := store.Put(ctx, "k1", record{Name: "a", Count: 2}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got record
	ok, err := store.Get(ctx, "k1", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if got.Name != "a" || got.Count != 2 {
		t.Errorf("got %+v, want {a 2}", got)
	}
}

func TestMemStoreMissingKey(t *testing.T) {
	store := NewMemStore()

	var got record
	ok, err := store.Get(context.Background(), "missing", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected missing key to report ok=false")
	}
}

func TestMemStoreDelete(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	if err := store.Put(ctx, "k1", record{Name: "a"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var got record
	ok, _ := store.Get(ctx, "k1", &got)
	if ok {
		t.Error("expected key to be gone after delete")
	}

	// Deleting a missing key is not an error.
	if err := store.Delete(ctx, "k1"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}
