package receipt

import (
	"regexp"
	"strings"
)

var datePatternRE = regexp.MustCompile(`\b\d{1,4}[/.-]\d{1,2}[/.-]\d{2,4}\b`)

// ParseDate scans for a date-bearing line among lines with at least two
// words whose concatenation contains "date" or a '/'. The default candidate
// rule is deliberately kept as shipped: a word qualifies only when it is
// itself a substring of the literal word "date", and the last qualifying
// word across the text wins. That rule almost never matches a real date;
// MatchDatePatterns switches to a day/month/year pattern matcher instead.
// Returns "" when nothing qualifies.
func (p *Pipeline) ParseDate(text string) string {
	if p.MatchDatePatterns {
		return datePatternRE.FindString(text)
	}
	date := ""
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(strings.TrimSpace(line))
		if len(words) < 2 {
			continue
		}
		joined := strings.ToLower(strings.Join(words, ""))
		if !strings.Contains(joined, "date") && !strings.Contains(joined, "/") {
			continue
		}
		for _, w := range words {
			if strings.Contains("date", w) {
				date = w
			}
		}
	}
	return date
}
