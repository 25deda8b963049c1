package pending

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/akaki911/aispace-sub003/internal/corpus"
	"github.com/akaki911/aispace-sub003/internal/memory"
)

func newTracker(t *testing.T, ttl time.Duration) *Tracker {
	t.Helper()
	return NewTracker(memory.NewMemStore(), ttl)
}

func sampleOp() Operation {
	return Operation{
		OldLabel:      "Old Cottage",
		NewLabel:      "New Cottage",
		SearchResults: []corpus.Match{{File: "a.md", Count: 2}},
	}
}

func TestProposePeekClear(t *testing.T) {
	tr := newTracker(t, 15*time.Minute)
	ctx := context.Background()

	if op, err := tr.Peek(ctx, "u1"); err != nil || op != nil {
		t.Fatalf("Peek empty = %v, %v", op, err)
	}

	if err := tr.Propose(ctx, "u1", sampleOp()); err != nil {
		t.Fatalf("Propose: %v", err)
	}

	op, err := tr.Peek(ctx, "u1")
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if op == nil || op.OldLabel != "Old Cottage" {
		t.Fatalf("op = %+v", op)
	}
	if op.ProposedAt.IsZero() {
		t.Error("ProposedAt not stamped")
	}

	// Another user's slot is independent.
	if op, _ := tr.Peek(ctx, "u2"); op != nil {
		t.Errorf("u2 slot = %+v, want empty", op)
	}

	if err := tr.Clear(ctx, "u1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if op, _ := tr.Peek(ctx, "u1"); op != nil {
		t.Errorf("slot after clear = %+v", op)
	}
}

func TestPeekClearsExpiredSlot(t *testing.T) {
	tr := newTracker(t, 15*time.Minute)
	ctx := context.Background()

	op := sampleOp()
	op.ProposedAt = time.Now().Add(-16 * time.Minute)
	if err := tr.Propose(ctx, "u1", op); err != nil {
		t.Fatalf("Propose: %v", err)
	}

	got, err := tr.Peek(ctx, "u1")
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if got != nil {
		t.Errorf("expired slot = %+v, want nil", got)
	}
}

func TestZeroTTLDisablesExpiry(t *testing.T) {
	tr := newTracker(t, 0)
	ctx := context.Background()

	op := sampleOp()
	op.ProposedAt = time.Now().Add(-24 * time.Hour)
	if err := tr.Propose(ctx, "u1", op); err != nil {
		t.Fatalf("Propose: %v", err)
	}

	if got, _ := tr.Peek(ctx, "u1"); got == nil {
		t.Error("slot expired despite disabled TTL")
	}
}

func TestDecideVocabulary(t *testing.T) {
	cases := []struct {
		message string
		want    Decision
	}{
		{"yes", DecisionConfirm},
		{"Yes!", DecisionConfirm},
		{"კი", DecisionConfirm},
		{"დიახ", DecisionConfirm},
		{"ok", DecisionConfirm},
		{"no", DecisionReject},
		{"არა", DecisionReject},
		{"cancel", DecisionReject},
		{"maybe later", DecisionReprompt},
		{"what does it change?", DecisionReprompt},
		{"", DecisionReprompt},
	}
	for _, tc := range cases {
		if got := Decide(tc.message); got != tc.want {
			t.Errorf("Decide(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestWithUserSerializesSameUser(t *testing.T) {
	tr := newTracker(t, time.Minute)

	var inside int
	var max int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tr.WithUser("u1", func() error {
				mu.Lock()
				inside++
				if inside > max {
					max = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	if max != 1 {
		t.Errorf("max concurrent critical sections = %d, want 1", max)
	}
}
