package job

import "strings"

// DefaultRegion is returned when neither location hint resolves.
const DefaultRegion = "us"

// regionEntry maps a set of location keywords to a provider country code.
// The table is ordered; the first matching entry wins.
type regionEntry struct {
	code     string
	keywords []string
}

var regionTable = []regionEntry{
	{"in", []string{"india", "hyderabad", "bangalore", "bengaluru", "mumbai", "delhi", "chennai", "pune", "kolkata", "noida", "gurgaon"}},
	{"gb", []string{"united kingdom", "uk", "england", "scotland", "wales", "london", "manchester", "birmingham", "edinburgh", "glasgow", "leeds"}},
	{"ca", []string{"canada", "toronto", "vancouver", "montreal", "ottawa", "calgary"}},
	{"au", []string{"australia", "sydney", "melbourne", "brisbane", "perth"}},
	{"de", []string{"germany", "deutschland", "berlin", "munich", "hamburg", "frankfurt", "cologne"}},
	{"us", []string{"united states", "usa", "new york", "san francisco", "seattle", "austin", "boston", "chicago", "los angeles", "denver"}},
}

// ResolveRegion maps a free-text location (and a secondary IP-detected city)
// to the country code consumed by the regional provider. The explicit
// location is tried first, then the IP hint, then DefaultRegion. Total and
// deterministic.
func ResolveRegion(location, ipCity string) string {
	if code, ok := lookupRegion(location); ok {
		return code
	}
	if code, ok := lookupRegion(ipCity); ok {
		return code
	}
	return DefaultRegion
}

func lookupRegion(hint string) (string, bool) {
	hint = strings.ToLower(strings.TrimSpace(hint))
	if hint == "" {
		return "", false
	}

	for _, entry := range regionTable {
		for _, kw := range entry.keywords {
			// equal, contains, or contained-by all count as a hit
			if hint == kw || strings.Contains(hint, kw) || strings.Contains(kw, hint) {
				return entry.code, true
			}
		}
	}
	return "", false
}
