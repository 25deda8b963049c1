// Package intent resolves free-text messages to a discrete intent via
// an ordered, first-match-wins rule cascade.
package intent

import (
	"context"
	"strings"

	"github.com/akaki911/aispace-sub003/internal/model"
)

// offTopicConfidence is the informational score of the default fallback.
const offTopicConfidence = 0.2

// Result is the classification outcome: exactly one of Intent or Edit
// is set. Edit is an operation request routed to the pending-operation
// tracker instead of the response builder.
type Result struct {
	Intent *model.Intent
	Edit   *model.EditRequest
}

// Classifier maps (message, history, user, metadata) to a Result.
// Classification is total: an unmatched message resolves to
// off_topic_consumer_block.
type Classifier struct {
	gate    *GreetingGate
	catalog []model.Cottage
}

// NewClassifier creates a classifier using the default cottage catalog.
func NewClassifier(gate *GreetingGate) *Classifier {
	return &Classifier{gate: gate, catalog: defaultCatalog}
}

// Classify runs the rule cascade over the message. Rule order decides
// ties; confidence never changes control flow.
func (c *Classifier) Classify(ctx context.Context, message string, history []model.HistoryEntry, userID string, metadata map[string]string) Result {
	msg := normalize(message)

	for _, r := range cascade {
		if !r.match(msg) {
			continue
		}

		switch r.kind {
		case ruleEdit:
			oldLabel, newLabel := extractQuotedPair(message)
			return Result{Edit: &model.EditRequest{
				OldLabel: oldLabel,
				NewLabel: newLabel,
			}}

		case ruleIntent:
			if r.name == model.IntentGreeting && !c.gate.Allow(ctx, userID, history) {
				// Throttled greetings fall through to ordinary
				// classification.
				continue
			}
			return Result{Intent: c.enrich(r, msg)}
		}
	}

	return Result{Intent: &model.Intent{
		Name:       model.IntentOffTopic,
		Confidence: offTopicConfidence,
	}}
}

// Gate exposes the greeting gate so the orchestrator can record
// emitted greetings.
func (c *Classifier) Gate() *GreetingGate {
	return c.gate
}

// enrich fills intent parameters for rules that carry them.
func (c *Classifier) enrich(r rule, msg string) *model.Intent {
	in := &model.Intent{
		Name:       r.name,
		Confidence: r.confidence,
	}
	if r.name != model.IntentAvailability {
		return in
	}

	params, missing := extractAvailability(msg)
	in.Params = params
	in.MissingParams = missing
	if len(missing) == 0 {
		in.Matches = matchCottages(c.catalog, params["guests"])
		in.Nights = nightsBetween(params["from"], params["to"])
	}
	return in
}

func normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}
