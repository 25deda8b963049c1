package intent

import (
	"regexp"
	"strings"

	"github.com/akaki911/aispace-sub003/internal/model"
)

type ruleKind int

const (
	ruleIntent ruleKind = iota
	// ruleEdit marks the two-quoted-string edit extractor. Its result
	// is an operation request, not a member of the intent set.
	ruleEdit
)

// rule is one entry of the ordered first-match-wins cascade. Ties are
// broken by position in the cascade slice, never by confidence.
type rule struct {
	kind       ruleKind
	name       model.IntentName
	confidence float64
	match      func(msg string) bool
}

var cascade = []rule{
	{ruleIntent, model.IntentGreeting, 0.95, keywords(
		"hello", "hi", "hey", "welcome", "გამარჯობა", "სალამი", "გაგიმარჯოს",
		"მოგესალმებით", "good morning", "good evening", "დილა მშვიდობისა",
		"საღამო მშვიდობისა",
	)},
	{ruleIntent, model.IntentSmalltalk, 0.85, keywords(
		"how are you", "როგორ ხარ", "რას შვები", "who are you", "ვინ ხარ",
		"what can you do", "რა შეგიძლია", "your status", "სტატუსი",
		"are you there", "thanks", "thank you", "მადლობა",
	)},
	{ruleIntent, model.IntentCottageDetails, 0.8, keywords(
		"cottage details", "about the cottage", "inside the cottage",
		"amenities", "fireplace", "კოტეჯის დეტალ", "კოტეჯის შესახებ",
		"კეთილმოწყობა", "ბუხარი", "აღწერა",
	)},
	{ruleEdit, "", 0.9, hasTwoQuotedSpans},
	{ruleIntent, model.IntentAvailability, 0.8, keywords(
		"available", "availability", "vacancy", "vacant", "free dates",
		"book", "booking", "reserve", "თავისუფალია", "თავისუფალი",
		"დაჯავშნა", "ჯავშანი", "ჯავშნა",
	)},
	{ruleIntent, model.IntentPricing, 0.8, keywords(
		"price", "prices", "cost", "how much", "tariff",
		"ფასი", "ფასები", "ღირს", "რა ღირს",
	)},
	{ruleIntent, model.IntentWeather, 0.8, keywords(
		"weather", "forecast", "temperature", "rain",
		"ამინდი", "პროგნოზი", "ტემპერატურა", "წვიმა",
	)},
	{ruleIntent, model.IntentTripPlan, 0.75, keywords(
		"trip", "itinerary", "plan", "what to do",
		"გეგმა", "მარშრუტი", "რა ვაკეთო", "დავგეგმოთ",
	)},
	{ruleIntent, model.IntentPolicies, 0.8, keywords(
		"policy", "policies", "rules", "cancellation", "refund",
		"check-in", "check in", "checkout", "pets",
		"წესები", "პირობები", "გაუქმება", "შინაური",
	)},
	{ruleIntent, model.IntentContactSupport, 0.8, keywords(
		"contact", "phone", "call", "email", "support", "operator",
		"დაკავშირება", "ტელეფონი", "ოპერატორი", "მენეჯერი",
	)},
	{ruleIntent, model.IntentTransport, 0.8, keywords(
		"transport", "transfer", "bus", "minibus", "marshrutka",
		"how to get", "parking", "ტრანსპორტი", "ტრანსფერი",
		"მარშრუტკა", "მისვლა", "პარკინგი",
	)},
	{ruleIntent, model.IntentLocalAttractions, 0.75, keywords(
		"attractions", "sights", "what to see", "waterfall", "fortress",
		"museum", "სანახაობა", "ღირსშესანიშნაობა", "ჩანჩქერი", "ციხე",
	)},
}

// keywords builds a matcher over a phrase list. Multi-word phrases match
// as substrings; single words match whole tokens only, so short words
// like "hi" do not fire inside other words.
func keywords(phrases ...string) func(string) bool {
	return func(msg string) bool {
		var fields []string
		for _, p := range phrases {
			if strings.Contains(p, " ") || strings.Contains(p, "-") {
				if strings.Contains(msg, p) {
					return true
				}
				continue
			}
			if fields == nil {
				fields = tokenize(msg)
			}
			for _, f := range fields {
				if f == p {
					return true
				}
			}
		}
		return false
	}
}

func tokenize(msg string) []string {
	return strings.FieldsFunc(msg, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', ',', '.', '!', '?', ';', ':', '(', ')':
			return true
		}
		return false
	})
}

// Known typo variants of double quotes seen in user messages.
var quoteNormalizer = strings.NewReplacer(
	"„", `"`, "“", `"`, "”", `"`, "«", `"`, "»", `"`,
	"『", `"`, "』", `"`, "‟", `"`, ",,", `"`,
)

var quotedSpan = regexp.MustCompile(`"([^"]+)"`)

func normalizeQuotes(msg string) string {
	return quoteNormalizer.Replace(msg)
}

func hasTwoQuotedSpans(msg string) bool {
	old, new := extractQuotedPair(msg)
	return old != "" && new != ""
}

// extractQuotedPair returns the first two quoted spans of the message
// after quote normalization.
func extractQuotedPair(msg string) (oldLabel, newLabel string) {
	spans := quotedSpan.FindAllStringSubmatch(normalizeQuotes(msg), -1)
	if len(spans) < 2 {
		return "", ""
	}
	return strings.TrimSpace(spans[0][1]), strings.TrimSpace(spans[1][1])
}
