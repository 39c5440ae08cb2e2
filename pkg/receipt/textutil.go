package receipt

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var amountReplacer = strings.NewReplacer(",", ".", "€", "", "$", "", "£", "")

// isAllDigits reports whether every byte of s is an ASCII digit. The empty
// string passes; callers reject empties themselves where it matters.
func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// normalizeAmountToken strips currency glyphs and decoration from a token
// and parses it as a price. A token is rejected when more than one decimal
// point remains after normalization or when the digit-stripped residue is
// not purely numeric.
func normalizeAmountToken(tok string) (float64, bool) {
	s := strings.Trim(amountReplacer.Replace(tok), " .")
	if s == "" || strings.Count(s, ".") > 1 {
		return 0, false
	}
	if !isAllDigits(strings.ReplaceAll(s, ".", "")) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// containsAnyKeyword reports whether text contains any of the keywords,
// case-insensitively. Keywords are expected to be lowercase already.
func containsAnyKeyword(text string, keywords []string) bool {
	low := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}

// titleCase renders s in title case independent of the system locale.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
