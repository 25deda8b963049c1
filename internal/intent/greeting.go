package intent

import (
	"context"
	"time"

	"github.com/akaki911/aispace-sub003/internal/memory"
	"github.com/akaki911/aispace-sub003/internal/model"
)

// GreetingCooldown is the per-user window during which a second
// greeting intent is suppressed.
const GreetingCooldown = 5 * time.Hour

// greetingHistoryWindow is how many trailing history turns are scanned
// for a prior assistant greeting.
const greetingHistoryWindow = 6

type greetingRecord struct {
	LastGreetingAt time.Time `json:"lastGreetingAt"`
}

// GreetingGate throttles greeting intents per user. The classifier only
// reads it; the orchestrator records successful greetings.
type GreetingGate struct {
	store memory.Store
	now   func() time.Time
}

// NewGreetingGate creates a gate over the given memory store.
func NewGreetingGate(store memory.Store) *GreetingGate {
	return &GreetingGate{store: store, now: time.Now}
}

// Allow reports whether a greeting intent may be emitted: no assistant
// greeting in the trailing history window and the per-user cooldown has
// elapsed.
func (g *GreetingGate) Allow(ctx context.Context, userID string, history []model.HistoryEntry) bool {
	start := len(history) - greetingHistoryWindow
	if start < 0 {
		start = 0
	}
	greetingMatch := cascade[0].match
	for _, entry := range history[start:] {
		if entry.Role != model.RoleAssistant {
			continue
		}
		if greetingMatch(normalize(entry.Content)) {
			return false
		}
	}

	var rec greetingRecord
	ok, err := g.store.Get(ctx, greetingKey(userID), &rec)
	if err != nil {
		// Store trouble must not block classification.
		return true
	}
	if ok && g.now().Sub(rec.LastGreetingAt) < GreetingCooldown {
		return false
	}
	return true
}

// Record stores the greeting timestamp for the user.
func (g *GreetingGate) Record(ctx context.Context, userID string) error {
	return g.store.Put(ctx, greetingKey(userID), greetingRecord{
		LastGreetingAt: g.now(),
	})
}

func greetingKey(userID string) string {
	return "greeting:" + userID
}
