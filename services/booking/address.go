package booking

import "regexp"

var pincodePattern = regexp.MustCompile(`\b(\d{6})\b`)

// Known cities, checked in order. Aliases of one city share a pattern.
var cityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Mumbai|Bombay`),
	regexp.MustCompile(`(?i)Delhi`),
	regexp.MustCompile(`(?i)Bangalore|Bengaluru`),
	regexp.MustCompile(`(?i)Chennai`),
	regexp.MustCompile(`(?i)Kolkata|Calcutta`),
	regexp.MustCompile(`(?i)Pune`),
	regexp.MustCompile(`(?i)Hyderabad`),
	regexp.MustCompile(`(?i)Ahmedabad`),
	regexp.MustCompile(`(?i)Chhatrapati Sambhajinagar|Aurangabad`),
	regexp.MustCompile(`(?i)Nagpur`),
	regexp.MustCompile(`(?i)Thane`),
	regexp.MustCompile(`(?i)Nashik`),
}

// ExtractPincode returns the first standalone 6-digit run in address, or "".
func ExtractPincode(address string) string {
	if m := pincodePattern.FindStringSubmatch(address); m != nil {
		return m[1]
	}
	return ""
}

// ExtractCity returns the text of the first known-city match, or "".
// Best effort only: it is not geocoding.
func ExtractCity(address string) string {
	if address == "" {
		return ""
	}
	for _, p := range cityPatterns {
		if m := p.FindString(address); m != "" {
			return m
		}
	}
	return ""
}
