package intent

import (
	"context"
	"testing"
	"time"

	"github.com/akaki911/aispace-sub003/internal/memory"
	"github.com/akaki911/aispace-sub003/internal/model"
)

func newClassifier(t *testing.T) (*Classifier, *GreetingGate) {
	t.Helper()
	gate := NewGreetingGate(memory.NewMemStore())
	return NewClassifier(gate), gate
}

func TestClassifyGeorgianGreeting(t *testing.T) {
	c, _ := newClassifier(t)

	res := c.Classify(context.Background(), "გამარჯობა", nil, "u1", nil)
	if res.Intent == nil {
		t.Fatal("expected an intent")
	}
	if res.Intent.Name != model.IntentGreeting {
		t.Errorf("intent = %q, want greeting", res.Intent.Name)
	}
}

func TestGreetingCooldownSuppressesRepeat(t *testing.T) {
	c, gate := newClassifier(t)
	ctx := context.Background()

	if err := gate.Record(ctx, "u1"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	res := c.Classify(ctx, "გამარჯობა", nil, "u1", nil)
	if res.Intent == nil || res.Intent.Name == model.IntentGreeting {
		t.Errorf("expected throttled greeting to fall through, got %+v", res.Intent)
	}

	// A different user is unaffected.
	res = c.Classify(ctx, "გამარჯობა", nil, "u2", nil)
	if res.Intent == nil || res.Intent.Name != model.IntentGreeting {
		t.Errorf("expected greeting for other user, got %+v", res.Intent)
	}
}

func TestGreetingCooldownExpires(t *testing.T) {
	c, gate := newClassifier(t)
	ctx := context.Background()

	gate.now = func() time.Time { return time.Now().Add(-GreetingCooldown - time.Minute) }
	if err := gate.Record(ctx, "u1"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	gate.now = time.Now

	res := c.Classify(ctx, "hello", nil, "u1", nil)
	if res.Intent == nil || res.Intent.Name != model.IntentGreeting {
		t.Errorf("expected greeting after cooldown, got %+v", res.Intent)
	}
}

func TestGreetingSuppressedByRecentAssistantGreeting(t *testing.T) {
	c, _ := newClassifier(t)

	history := []model.HistoryEntry{
		{Role: model.RoleUser, Content: "გამარჯობა"},
		{Role: model.RoleAssistant, Content: "მოგესალმებით! რით დაგეხმაროთ?"},
	}
	res := c.Classify(context.Background(), "hello", history, "u1", nil)
	if res.Intent == nil || res.Intent.Name == model.IntentGreeting {
		t.Errorf("expected greeting suppression from history, got %+v", res.Intent)
	}
}

func TestGreetingAllowedWhenAssistantGreetingOutsideWindow(t *testing.T) {
	c, _ := newClassifier(t)

	history := []model.HistoryEntry{
		{Role: model.RoleAssistant, Content: "მოგესალმებით!"},
	}
	for i := 0; i < greetingHistoryWindow; i++ {
		history = append(history,
			model.HistoryEntry{Role: model.RoleUser, Content: "ფასები?"},
		)
	}
	res := c.Classify(context.Background(), "hello", history, "u1", nil)
	if res.Intent == nil || res.Intent.Name != model.IntentGreeting {
		t.Errorf("expected greeting when prior one left the window, got %+v", res.Intent)
	}
}

func TestClassifyDefaultsToOffTopic(t *testing.T) {
	c, _ := newClassifier(t)

	res := c.Classify(context.Background(), "tell me about quantum chromodynamics", nil, "u1", nil)
	if res.Intent == nil {
		t.Fatal("classification must be total")
	}
	if res.Intent.Name != model.IntentOffTopic {
		t.Errorf("intent = %q, want off_topic_consumer_block", res.Intent.Name)
	}
}

func TestClassifyTopicalIntents(t *testing.T) {
	c, _ := newClassifier(t)
	ctx := context.Background()

	cases := []struct {
		message string
		want    model.IntentName
	}{
		{"რა ღირს კოტეჯი?", model.IntentPricing},
		{"what's the weather forecast?", model.IntentWeather},
		{"როგორია გაუქმების წესები?", model.IntentPolicies},
		{"how do I contact support?", model.IntentContactSupport},
		{"is there a transfer from Tbilisi?", model.IntentTransport},
		{"what sights are nearby?", model.IntentLocalAttractions},
		{"tell me the cottage details", model.IntentCottageDetails},
		{"how are you doing?", model.IntentSmalltalk},
	}
	for _, tc := range cases {
		res := c.Classify(ctx, tc.message, nil, "u1", nil)
		if res.Intent == nil {
			t.Errorf("%q: expected an intent", tc.message)
			continue
		}
		if res.Intent.Name != tc.want {
			t.Errorf("%q: intent = %q, want %q", tc.message, res.Intent.Name, tc.want)
		}
	}
}

func TestClassifyExtractsEditRequest(t *testing.T) {
	c, _ := newClassifier(t)

	res := c.Classify(context.Background(),
		`please rename "Old Cottage" to "New Cottage"`, nil, "u1", nil)
	if res.Edit == nil {
		t.Fatal("expected an edit request")
	}
	if res.Edit.OldLabel != "Old Cottage" || res.Edit.NewLabel != "New Cottage" {
		t.Errorf("edit = %+v", res.Edit)
	}
}

func TestClassifyNormalizesQuoteVariants(t *testing.T) {
	c, _ := newClassifier(t)

	res := c.Classify(context.Background(),
		"შეცვალე „ძველი სახელი“ და ჩაწერე „ახალი სახელი“", nil, "u1", nil)
	if res.Edit == nil {
		t.Fatal("expected an edit request from Georgian quotes")
	}
	if res.Edit.OldLabel != "ძველი სახელი" {
		t.Errorf("old label = %q", res.Edit.OldLabel)
	}
	if res.Edit.NewLabel != "ახალი სახელი" {
		t.Errorf("new label = %q", res.Edit.NewLabel)
	}
}

func TestSingleQuotedSpanIsNotAnEdit(t *testing.T) {
	c, _ := newClassifier(t)

	res := c.Classify(context.Background(), `what is "Cottage Alpina"?`, nil, "u1", nil)
	if res.Edit != nil {
		t.Fatalf("one quoted span must not form an edit request: %+v", res.Edit)
	}
}

func TestShortTokenDoesNotMatchInsideWords(t *testing.T) {
	c, _ := newClassifier(t)

	// "hi" must not fire inside "this".
	res := c.Classify(context.Background(), "this place interests me", nil, "u1", nil)
	if res.Intent == nil || res.Intent.Name == model.IntentGreeting {
		t.Errorf("got %+v, want non-greeting", res.Intent)
	}
}
