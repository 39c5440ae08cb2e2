package receipt

import "strings"

// ParseMerchant looks the text up in the known-merchant gazetteer first: the
// earliest line containing a known retailer name wins and the gazetteer
// entry is returned in title case. Failing that, the first line free of
// receipt boilerplate (totals, tax, phone numbers and the like) is promoted
// to the merchant name. Falls back to UnknownMerchant.
func (p *Pipeline) ParseMerchant(text string) string {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		cleaned := strings.ToLower(strings.TrimSpace(line))
		for _, m := range p.gaz.KnownMerchants {
			if strings.Contains(cleaned, m) {
				return titleCase(m)
			}
		}
	}
	for _, line := range lines {
		cleaned := strings.ToLower(strings.TrimSpace(line))
		if cleaned == "" {
			continue
		}
		if !containsAnyKeyword(cleaned, p.gaz.InvalidTitleKeywords) {
			return titleCase(strings.TrimSpace(line))
		}
	}
	return UnknownMerchant
}
