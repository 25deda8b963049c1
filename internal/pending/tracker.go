// Package pending guards the single outstanding destructive-edit
// confirmation each user may hold.
package pending

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/akaki911/aispace-sub003/internal/corpus"
	"github.com/akaki911/aispace-sub003/internal/memory"
	"github.com/akaki911/aispace-sub003/pkg/metrics"
)

// Operation is an unconfirmed label edit proposal, at most one live
// instance per user.
type Operation struct {
	OldLabel      string         `json:"oldLabel"`
	NewLabel      string         `json:"newLabel"`
	SearchResults []corpus.Match `json:"searchResults"`
	ProposedAt    time.Time      `json:"proposedAt"`
}

// Decision is the outcome of testing a message against the yes/no
// vocabulary.
type Decision int

const (
	// DecisionReprompt: the message matched neither vocabulary; the
	// slot stays unchanged and the confirmation prompt is re-issued.
	DecisionReprompt Decision = iota
	DecisionConfirm
	DecisionReject
)

// Tracker is the per-user two-state machine NoPending ↔
// AwaitingConfirmation. A stale proposal past the TTL is treated as
// NoPending.
type Tracker struct {
	store memory.Store
	ttl   time.Duration
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewTracker creates a tracker over the given memory store. ttl <= 0
// disables expiry.
func NewTracker(store memory.Store, ttl time.Duration) *Tracker {
	return &Tracker{
		store: store,
		ttl:   ttl,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// WithUser runs fn while holding the user's slot lock. Requests for the
// same user serialize here in arrival order, so two near-simultaneous
// messages cannot race the pending check against the transition.
func (t *Tracker) WithUser(userID string, fn func() error) error {
	lock := t.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

func (t *Tracker) userLock(userID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	lock, ok := t.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		t.locks[userID] = lock
	}
	return lock
}

// Peek returns the live operation for the user, clearing a stale one.
func (t *Tracker) Peek(ctx context.Context, userID string) (*Operation, error) {
	var op Operation
	ok, err := t.store.Get(ctx, slotKey(userID), &op)
	if err != nil {
		return nil, fmt.Errorf("read pending slot: %w", err)
	}
	if !ok {
		return nil, nil
	}
	if t.ttl > 0 && t.now().Sub(op.ProposedAt) > t.ttl {
		if err := t.Clear(ctx, userID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &op, nil
}

// Propose transitions the user to AwaitingConfirmation.
func (t *Tracker) Propose(ctx context.Context, userID string, op Operation) error {
	if op.ProposedAt.IsZero() {
		op.ProposedAt = t.now()
	}
	if err := t.store.Put(ctx, slotKey(userID), op); err != nil {
		return fmt.Errorf("write pending slot: %w", err)
	}
	metrics.PendingOperationsActive.Inc()
	return nil
}

// Clear transitions the user back to NoPending.
func (t *Tracker) Clear(ctx context.Context, userID string) error {
	if err := t.store.Delete(ctx, slotKey(userID)); err != nil {
		return fmt.Errorf("clear pending slot: %w", err)
	}
	metrics.PendingOperationsActive.Dec()
	return nil
}

func slotKey(userID string) string {
	return "pending:" + userID
}

var affirmatives = map[string]bool{
	"yes": true, "y": true, "yeah": true, "yep": true, "sure": true,
	"ok": true, "okay": true, "confirm": true,
	"კი": true, "დიახ": true, "ჰო": true, "დაადასტურე": true, "კარგი": true,
}

var negatives = map[string]bool{
	"no": true, "n": true, "nope": true, "cancel": true, "stop": true,
	"არა": true, "გააუქმე": true, "გაუქმება": true, "არ": true,
}

// Decide tests a message against the affirmative/negative vocabulary.
// This runs before normal classification whenever a slot is live.
func Decide(message string) Decision {
	msg := strings.ToLower(strings.TrimSpace(message))
	msg = strings.TrimRight(msg, ".!?")
	if affirmatives[msg] {
		return DecisionConfirm
	}
	if negatives[msg] {
		return DecisionReject
	}
	return DecisionReprompt
}
