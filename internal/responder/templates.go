package responder

import (
	"github.com/akaki911/aispace-sub003/internal/locale"
	"github.com/akaki911/aispace-sub003/internal/model"
)

// templateFunc renders the section list for one intent.
type templateFunc func(loc *locale.Resolver, lang string, in model.Intent) []model.Section

// templates maps each intent name to exactly one section producer.
// Unknown names fall back to the off-topic template in the builder.
var templates = map[model.IntentName]templateFunc{
	model.IntentGreeting:         greetingSections,
	model.IntentSmalltalk:        simpleTemplate("smalltalk.title", []string{"smalltalk.b1", "smalltalk.b2"}, "smalltalk.cta"),
	model.IntentAvailability:     availabilitySections,
	model.IntentPricing:          simpleTemplate("pricing.title", []string{"pricing.b1", "pricing.b2", "pricing.b3"}, "pricing.cta"),
	model.IntentWeather:          simpleTemplate("weather.title", []string{"weather.b1", "weather.b2"}, "weather.cta"),
	model.IntentTripPlan:         simpleTemplate("trip.title", []string{"trip.b1", "trip.b2", "trip.b3"}, "trip.cta"),
	model.IntentPolicies:         simpleTemplate("policies.title", []string{"policies.b1", "policies.b2", "policies.b3"}, "policies.cta"),
	model.IntentContactSupport:   simpleTemplate("contact.title", []string{"contact.b1", "contact.b2"}, "contact.cta"),
	model.IntentTransport:        simpleTemplate("transport.title", []string{"transport.b1", "transport.b2", "transport.b3"}, "transport.cta"),
	model.IntentLocalAttractions: simpleTemplate("attractions.title", []string{"attractions.b1", "attractions.b2", "attractions.b3"}, "attractions.cta"),
	model.IntentCottageDetails:   simpleTemplate("cottage.title", []string{"cottage.b1", "cottage.b2", "cottage.b3"}, "cottage.cta"),
	model.IntentOffTopic:         simpleTemplate("offtopic.title", []string{"offtopic.b1", "offtopic.b2"}, "offtopic.cta"),
}

func simpleTemplate(titleKey string, bulletKeys []string, ctaKey string) templateFunc {
	return func(loc *locale.Resolver, lang string, _ model.Intent) []model.Section {
		bullets := make([]string, 0, len(bulletKeys))
		for _, k := range bulletKeys {
			bullets = append(bullets, loc.Resolve(lang, k))
		}
		return []model.Section{{
			Title:   loc.Resolve(lang, titleKey),
			Bullets: bullets,
			CTA:     loc.Resolve(lang, ctaKey),
		}}
	}
}

func greetingSections(loc *locale.Resolver, lang string, _ model.Intent) []model.Section {
	return []model.Section{
		{
			Title: loc.Resolve(lang, "greeting.welcome.title"),
			Bullets: []string{
				loc.Resolve(lang, "greeting.welcome.b1"),
				loc.Resolve(lang, "greeting.welcome.b2"),
			},
		},
		{
			Title: loc.Resolve(lang, "greeting.help.title"),
			Bullets: []string{
				loc.Resolve(lang, "greeting.help.b1"),
				loc.Resolve(lang, "greeting.help.b2"),
			},
			CTA: loc.Resolve(lang, "greeting.help.cta"),
		},
	}
}

func availabilitySections(loc *locale.Resolver, lang string, in model.Intent) []model.Section {
	if len(in.MissingParams) > 0 {
		bullets := make([]string, 0, len(in.MissingParams))
		for _, p := range in.MissingParams {
			bullets = append(bullets, loc.Resolve(lang, "availability.missing."+p))
		}
		return []model.Section{{
			Title:   loc.Resolve(lang, "availability.missing.title"),
			Bullets: bullets,
			CTA:     loc.Resolve(lang, "availability.missing.cta"),
		}}
	}

	var bullets []string
	for _, c := range in.Matches {
		bullets = append(bullets, loc.Resolvef(lang, "availability.results.row",
			c.Name, c.Capacity, c.PricePerNight, in.Nights))
	}
	if len(bullets) == 0 {
		bullets = []string{loc.Resolve(lang, "availability.results.none")}
	}

	return []model.Section{{
		Title:   loc.Resolve(lang, "availability.results.title"),
		Bullets: bullets,
		CTA: loc.Resolvef(lang, "availability.results.cta",
			in.Params["from"], in.Params["to"], in.Params["guests"]),
	}}
}
