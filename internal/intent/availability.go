package intent

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/akaki911/aispace-sub003/internal/model"
)

// availabilityParamOrder is the canonical missing-parameter order.
var availabilityParamOrder = []string{"from", "to", "guests"}

// maxAvailabilityResults caps the cottages returned per query.
const maxAvailabilityResults = 3

var defaultCatalog = []model.Cottage{
	{Name: "კოტეჯი ტირიფი", Capacity: 2, PricePerNight: 180},
	{Name: "კოტეჯი ალპინა", Capacity: 3, PricePerNight: 210},
	{Name: "კოტეჯი ვერანდა", Capacity: 4, PricePerNight: 250},
	{Name: "კოტეჯი მთის ხედი", Capacity: 6, PricePerNight: 320},
	{Name: "კოტეჯი პანორამა", Capacity: 8, PricePerNight: 400},
}

var (
	isoDate    = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	dottedDate = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
	guestCount = regexp.MustCompile(`(\d+)\s*(?:guests?|people|persons?|pax|სტუმარ\S*|ადამიან\S*|კაც\S*)`)
)

// extractAvailability pulls from/to/guests out of the message. Missing
// parameters are listed in canonical order.
func extractAvailability(msg string) (params map[string]string, missing []string) {
	params = map[string]string{}

	dates := isoDate.FindAllString(msg, -1)
	if len(dates) == 0 {
		dates = dottedDate.FindAllString(msg, -1)
	}
	if len(dates) > 0 {
		params["from"] = dates[0]
	}
	if len(dates) > 1 {
		params["to"] = dates[1]
	}

	if m := guestCount.FindStringSubmatch(msg); m != nil {
		params["guests"] = m[1]
	}

	for _, p := range availabilityParamOrder {
		if params[p] == "" {
			missing = append(missing, p)
		}
	}
	return params, missing
}

// nightsBetween computes max(1, round((to-from)/24h)). Unparseable
// dates default to one night rather than erroring.
func nightsBetween(from, to string) int {
	f, okF := parseDate(from)
	t, okT := parseDate(to)
	if !okF || !okT {
		return 1
	}
	nights := int(math.Round(t.Sub(f).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "02.01.2006"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// matchCottages filters the candidate list by capacity and caps the
// result.
func matchCottages(catalog []model.Cottage, guests string) []model.Cottage {
	n, err := strconv.Atoi(guests)
	if err != nil {
		return nil
	}

	var out []model.Cottage
	for _, c := range catalog {
		if c.Capacity >= n {
			out = append(out, c)
			if len(out) == maxAvailabilityResults {
				break
			}
		}
	}
	return out
}
