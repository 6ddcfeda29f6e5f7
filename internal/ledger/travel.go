package ledger

import "strings"

// DefaultTravelKeywords are matched, case-insensitively, as substrings of a
// transaction purpose to classify it as travel.
var DefaultTravelKeywords = []string{
	"petrol", "bus", "auto", "uber", "metro", "rapido", "travel", "taxi", "cab", "train",
}

// IsTravelPurpose reports whether purpose matches one of DefaultTravelKeywords.
func IsTravelPurpose(purpose string) bool {
	return matchesAnyKeyword(purpose, DefaultTravelKeywords)
}

// TravelMatcher returns a predicate over purposes for the given keyword list.
// An empty list falls back to DefaultTravelKeywords.
func TravelMatcher(keywords []string) func(string) bool {
	if len(keywords) == 0 {
		keywords = DefaultTravelKeywords
	}
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}
	return func(purpose string) bool {
		return matchesAnyKeyword(purpose, lowered)
	}
}

func matchesAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
