package receipt

import "strings"

// Language is the detected output language of a receipt.
type Language string

const (
	LangFrench  Language = "french"
	LangEnglish Language = "english"
	LangUnknown Language = "unknown"
)

// DetectLanguage scores the text's lowercased tokens against the French and
// English keyword tables. A token counts only when it equals a keyword
// verbatim, not on substring overlap. Ties come out as LangUnknown.
func (p *Pipeline) DetectLanguage(text string) Language {
	french, english := 0, 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if hasToken(p.gaz.FrenchKeywords, word) {
			french++
		}
		if hasToken(p.gaz.EnglishKeywords, word) {
			english++
		}
	}
	switch {
	case french > english:
		return LangFrench
	case english > french:
		return LangEnglish
	default:
		return LangUnknown
	}
}

func hasToken(keywords []string, word string) bool {
	for _, kw := range keywords {
		if word == kw {
			return true
		}
	}
	return false
}
