package model

// IntentName is the closed set of message classifications.
type IntentName string

const (
	IntentGreeting         IntentName = "greeting"
	IntentSmalltalk        IntentName = "smalltalk"
	IntentAvailability     IntentName = "check_availability"
	IntentPricing          IntentName = "pricing_info"
	IntentWeather          IntentName = "weather_info"
	IntentTripPlan         IntentName = "trip_plan"
	IntentPolicies         IntentName = "policies_faq"
	IntentContactSupport   IntentName = "contact_support"
	IntentTransport        IntentName = "transport"
	IntentLocalAttractions IntentName = "local_attractions"
	IntentCottageDetails   IntentName = "cottage_details"
	IntentOffTopic         IntentName = "off_topic_consumer_block"
)

// Cottage is one bookable unit in the availability candidate list.
type Cottage struct {
	Name          string `json:"name"`
	Capacity      int    `json:"capacity"`
	PricePerNight int    `json:"pricePerNight"`
}

// Intent is the classification of one user message. Confidence is
// informational only and never drives control flow.
type Intent struct {
	Name          IntentName        `json:"name"`
	Confidence    float64           `json:"confidence"`
	Params        map[string]string `json:"params,omitempty"`
	MissingParams []string          `json:"missingParams,omitempty"`

	// Availability enrichment, populated only when all of from/to/guests
	// are present.
	Matches []Cottage `json:"matches,omitempty"`
	Nights  int       `json:"nights,omitempty"`
}

// EditRequest is an extracted two-quoted-string edit proposal. It is not
// part of the closed intent set: the orchestrator routes it to the
// pending-operation tracker instead of the response builder.
type EditRequest struct {
	OldLabel string `json:"oldLabel"`
	NewLabel string `json:"newLabel"`
}
