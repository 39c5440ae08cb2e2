package receipt

import (
	"strings"
	"unicode/utf8"
)

// ParseItems extracts (name, price) pairs from lines that look like purchase
// rows: at least 4 characters, at least two words, and a trailing token that
// normalizes to a clean price. The name is built from the remaining words,
// skipping purely numeric and single-character tokens. Lines whose name is
// empty or contains a blacklisted administrative keyword are dropped
// silently.
func (p *Pipeline) ParseItems(text string) []LineItem {
	items := []LineItem{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) < 4 {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 {
			continue
		}
		price, ok := normalizeAmountToken(words[len(words)-1])
		if !ok {
			continue
		}
		var nameParts []string
		for _, w := range words[:len(words)-1] {
			if isAllDigits(w) || utf8.RuneCountInString(w) <= 1 {
				continue
			}
			nameParts = append(nameParts, w)
		}
		name := strings.Join(nameParts, " ")
		if name == "" || containsAnyKeyword(name, p.gaz.ItemBlacklist) {
			continue
		}
		items = append(items, LineItem{Name: name, Price: price})
	}
	return items
}
