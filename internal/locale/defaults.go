package locale

// Compiled-in fallback strings. The booking platform ships Georgian as
// the primary language with English as the universal fallback.
var defaults = map[string]map[string]string{
	"ka": {
		"greeting.welcome.title":    "მოგესალმებით!",
		"greeting.welcome.b1":       "მე ვარ თქვენი დასვენების ასისტენტი.",
		"greeting.welcome.b2":       "დაგეხმარებით კოტეჯის შერჩევაში, ფასებსა და ჯავშანში.",
		"greeting.help.title":       "რით შემიძლია დაგეხმაროთ?",
		"greeting.help.b1":          "შეამოწმეთ თავისუფალი კოტეჯები თარიღების მიხედვით.",
		"greeting.help.b2":          "იკითხეთ ფასები, ამინდი ან ადგილობრივი სანახაობები.",
		"greeting.help.cta":         "მომწერეთ თარიღები და სტუმრების რაოდენობა.",
		"smalltalk.title":           "ყველაფერი კარგად არის!",
		"smalltalk.b1":              "მზად ვარ დაგეხმაროთ დასვენების დაგეგმვაში.",
		"smalltalk.b2":              "იკითხეთ კოტეჯები, ფასები ან ჯავშანი.",
		"smalltalk.cta":             "სცადეთ: „თავისუფალია კოტეჯი 2025-07-01-დან?“",
		"availability.missing.title":  "საჭიროა მეტი დეტალი",
		"availability.missing.from":   "ჩამოსვლის თარიღი (მაგ. 2025-07-01)",
		"availability.missing.to":     "გასვლის თარიღი (მაგ. 2025-07-04)",
		"availability.missing.guests": "სტუმრების რაოდენობა",
		"availability.missing.cta":    "მიუთითეთ დაკლებული მონაცემები და თავიდან მკითხეთ.",
		"availability.results.title":  "თავისუფალი კოტეჯები",
		"availability.results.row":    "%s — %d სტუმარი, %d₾ ღამეში (%d ღამე)",
		"availability.results.none":   "ამ თარიღებზე შესაბამისი კოტეჯი ვერ მოიძებნა.",
		"availability.results.cta":    "დაჯავშნა: /booking?from=%s&to=%s&guests=%s",
		"pricing.title":             "ფასები",
		"pricing.b1":                "სტანდარტული კოტეჯი: 180₾ ღამეში.",
		"pricing.b2":                "საოჯახო კოტეჯი: 250₾ ღამეში.",
		"pricing.b3":                "ფასი იცვლება სეზონის მიხედვით.",
		"pricing.cta":               "ზუსტი ფასისთვის მიუთითეთ თარიღები.",
		"weather.title":             "ამინდი რეგიონში",
		"weather.b1":                "ზაფხულში საშუალოდ 22–28°C.",
		"weather.b2":                "საღამოები გრილია, წამოიღეთ თბილი ტანსაცმელი.",
		"weather.cta":               "შეამოწმეთ პროგნოზი ჩამოსვლამდე.",
		"trip.title":                "მოგზაურობის გეგმა",
		"trip.b1":                   "დღე 1: ჩამოსვლა და განთავსება.",
		"trip.b2":                   "დღე 2: ლაშქრობა და ადგილობრივი ღირსშესანიშნაობები.",
		"trip.b3":                   "დღე 3: ტბა და პიკნიკი.",
		"trip.cta":                  "გითხრათ მეტი რომელიმე დღეზე?",
		"policies.title":            "წესები და პირობები",
		"policies.b1":               "შესვლა 14:00-დან, გასვლა 12:00-მდე.",
		"policies.b2":               "გაუქმება უფასოა ჩამოსვლამდე 48 საათით ადრე.",
		"policies.b3":               "შინაური ცხოველები დასაშვებია წინასწარი შეთანხმებით.",
		"policies.cta":              "სრული პირობები იხილეთ ჯავშნის გვერდზე.",
		"contact.title":             "დაკავშირება",
		"contact.b1":                "ტელეფონი: +995 555 12 34 56",
		"contact.b2":                "ელფოსტა: booking@example.ge",
		"contact.cta":               "ვმუშაობთ ყოველდღე 09:00–21:00.",
		"transport.title":           "ტრანსპორტი",
		"transport.b1":              "თბილისიდან მარშრუტი დილის 08:00-ზე.",
		"transport.b2":              "ადგილზე შესაძლებელია ტრანსფერის შეკვეთა.",
		"transport.b3":              "პარკინგი უფასოა სტუმრებისთვის.",
		"transport.cta":             "ტრანსფერისთვის მოგვწერეთ წინასწარ.",
		"attractions.title":         "ადგილობრივი სანახაობები",
		"attractions.b1":            "ჩანჩქერი — 2 კმ კოტეჯებიდან.",
		"attractions.b2":            "ძველი ციხე — 15 წუთი მანქანით.",
		"attractions.b3":            "ტბაზე ნავით სეირნობა.",
		"attractions.cta":           "გირჩევთ მარშრუტს თქვენი გემოვნებით.",
		"cottage.title":             "კოტეჯის დეტალები",
		"cottage.b1":                "ყველა კოტეჯს აქვს სამზარეულო და ბუხარი.",
		"cottage.b2":                "Wi-Fi და ცხელი წყალი შედის ფასში.",
		"cottage.b3":                "ტერასიდან იშლება მთების ხედი.",
		"cottage.cta":               "მითხარით რომელი კოტეჯი გაინტერესებთ.",
		"offtopic.title":            "ამაზე ვერ დაგეხმარებით",
		"offtopic.b1":               "მე მხოლოდ დასვენებისა და ჯავშნის საკითხებში ვეხმარები.",
		"offtopic.b2":               "იკითხეთ კოტეჯები, ფასები, ამინდი ან ტრანსპორტი.",
		"offtopic.cta":              "სცადეთ: „რა ღირს კოტეჯი?“",
		"edit.confirm.title":        "დადასტურება საჭიროა",
		"edit.confirm.body":         "შევცვალო „%s“ → „%s“ (%d ფაილში)? უპასუხეთ კი/არა.",
		"edit.notfound":             "„%s“ ვერ მოიძებნა, ცვლილება არ შესრულდება.",
		"edit.applied":              "შესრულდა: განახლდა %d ფაილი.",
		"edit.applied.failures":     "ვერ განახლდა %d ფაილი.",
		"edit.cancelled":            "ცვლილება გაუქმდა.",
		"fallback.generic":          "ბოდიში, პასუხი ვერ მოვამზადე. სცადეთ თავიდან.",
		"error.apology":             "ბოდიში, რაღაც შეცდომა მოხდა. გთხოვთ სცადოთ მოგვიანებით.",
		"qp.availability":           "თავისუფალი თარიღები",
		"qp.pricing":                "ფასები",
		"qp.contact":                "დაკავშირება",
	},
	"en": {
		"greeting.welcome.title":    "Welcome!",
		"greeting.welcome.b1":       "I am your vacation assistant.",
		"greeting.welcome.b2":       "I can help with cottages, prices, and bookings.",
		"greeting.help.title":       "How can I help?",
		"greeting.help.b1":          "Check cottage availability by dates.",
		"greeting.help.b2":          "Ask about prices, weather, or local attractions.",
		"greeting.help.cta":         "Send me your dates and guest count.",
		"smalltalk.title":           "All good here!",
		"smalltalk.b1":              "Ready to help you plan your stay.",
		"smalltalk.b2":              "Ask about cottages, prices, or bookings.",
		"smalltalk.cta":             "Try: \"any cottage free from 2025-07-01?\"",
		"availability.missing.title":  "Need more detail",
		"availability.missing.from":   "Arrival date (e.g. 2025-07-01)",
		"availability.missing.to":     "Departure date (e.g. 2025-07-04)",
		"availability.missing.guests": "Number of guests",
		"availability.missing.cta":    "Add the missing details and ask again.",
		"availability.results.title":  "Available cottages",
		"availability.results.row":    "%s — sleeps %d, %d GEL/night (%d nights)",
		"availability.results.none":   "No matching cottage for those dates.",
		"availability.results.cta":    "Book: /booking?from=%s&to=%s&guests=%s",
		"pricing.title":             "Prices",
		"pricing.b1":                "Standard cottage: 180 GEL per night.",
		"pricing.b2":                "Family cottage: 250 GEL per night.",
		"pricing.b3":                "Prices vary by season.",
		"pricing.cta":               "Send dates for an exact quote.",
		"weather.title":             "Weather in the region",
		"weather.b1":                "Summer averages 22–28°C.",
		"weather.b2":                "Evenings are cool, pack warm clothes.",
		"weather.cta":               "Check the forecast before arrival.",
		"trip.title":                "Trip plan",
		"trip.b1":                   "Day 1: arrival and check-in.",
		"trip.b2":                   "Day 2: hiking and local sights.",
		"trip.b3":                   "Day 3: lake and picnic.",
		"trip.cta":                  "Want details on any day?",
		"policies.title":            "Policies",
		"policies.b1":               "Check-in from 14:00, check-out by 12:00.",
		"policies.b2":               "Free cancellation up to 48h before arrival.",
		"policies.b3":               "Pets allowed by prior arrangement.",
		"policies.cta":              "Full terms on the booking page.",
		"contact.title":             "Contact us",
		"contact.b1":                "Phone: +995 555 12 34 56",
		"contact.b2":                "Email: booking@example.ge",
		"contact.cta":               "Open daily 09:00–21:00.",
		"transport.title":           "Transport",
		"transport.b1":              "Minibus from Tbilisi at 08:00.",
		"transport.b2":              "Transfers can be arranged on request.",
		"transport.b3":              "Free parking for guests.",
		"transport.cta":             "Message us ahead for a transfer.",
		"attractions.title":         "Local attractions",
		"attractions.b1":            "Waterfall — 2 km from the cottages.",
		"attractions.b2":            "Old fortress — 15 minutes by car.",
		"attractions.b3":            "Boat rides on the lake.",
		"attractions.cta":           "Happy to suggest a route for you.",
		"cottage.title":             "Cottage details",
		"cottage.b1":                "Every cottage has a kitchen and fireplace.",
		"cottage.b2":                "Wi-Fi and hot water included.",
		"cottage.b3":                "Mountain views from the terrace.",
		"cottage.cta":               "Tell me which cottage interests you.",
		"offtopic.title":            "I can't help with that",
		"offtopic.b1":               "I only handle vacation and booking questions.",
		"offtopic.b2":               "Ask about cottages, prices, weather, or transport.",
		"offtopic.cta":              "Try: \"how much is a cottage?\"",
		"edit.confirm.title":        "Confirmation required",
		"edit.confirm.body":         "Replace \"%s\" with \"%s\" (%d files)? Reply yes/no.",
		"edit.notfound":             "\"%s\" was not found, nothing to change.",
		"edit.applied":              "Done: %d files updated.",
		"edit.applied.failures":     "%d files could not be updated.",
		"edit.cancelled":            "Change cancelled.",
		"fallback.generic":          "Sorry, I could not prepare a reply. Please try again.",
		"error.apology":             "Sorry, something went wrong. Please try again later.",
		"qp.availability":           "Available dates",
		"qp.pricing":                "Prices",
		"qp.contact":                "Contact",
	},
}
