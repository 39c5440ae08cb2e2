package receipt

import (
	"strings"
	"unicode/utf8"
)

// Describe assembles the localized human-readable summary. Inputs are
// validated defensively first: a blank or too-short merchant becomes
// UnknownMerchant, a too-short date is discarded, a non-positive or
// implausibly large amount counts as unknown, and items are filtered to
// plausible name/price pairs. The sentence is complete for any combination
// of missing fields and is never empty.
func (p *Pipeline) Describe(text, merchant string, amount float64, date string, items []LineItem) string {
	lang := p.DetectLanguage(text)

	merchant = strings.TrimSpace(merchant)
	if utf8.RuneCountInString(merchant) < 2 {
		merchant = UnknownMerchant
	}
	date = strings.TrimSpace(date)
	if utf8.RuneCountInString(date) < 4 {
		date = ""
	}
	hasAmount := amount > 0 && amount <= 100000

	var valid []LineItem
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if utf8.RuneCountInString(name) > 1 && it.Price >= 0 && it.Price <= 10000 {
			valid = append(valid, LineItem{Name: name, Price: it.Price})
		}
	}

	var b strings.Builder
	if lang == LangFrench {
		b.WriteString("Reçu de " + merchant)
		if hasAmount {
			b.WriteString(" pour " + formatAmount(amount) + "€")
		}
		if date != "" {
			b.WriteString(" le " + date)
		} else {
			b.WriteString(" avec une date inconnue")
		}
		if len(valid) > 0 {
			b.WriteString(". Articles détectés:")
			for _, it := range valid {
				b.WriteString(" - " + it.Name + ": " + formatAmount(it.Price) + "€")
			}
		} else {
			b.WriteString(". Aucun article détecté.")
		}
		if !hasAmount {
			b.WriteString(" Montant total non détecté.")
		}
		return strings.TrimSpace(b.String())
	}

	b.WriteString("Receipt from " + merchant)
	if hasAmount {
		b.WriteString(" for $" + formatAmount(amount))
	}
	if date != "" {
		b.WriteString(" on " + date)
	} else {
		b.WriteString(" with unknown date")
	}
	if len(valid) > 0 {
		b.WriteString(". Items detected:")
		for _, it := range valid {
			b.WriteString(" - " + it.Name + ": $" + formatAmount(it.Price))
		}
	} else {
		b.WriteString(". No items detected.")
	}
	if !hasAmount {
		b.WriteString(" Total amount not detected.")
	}
	return strings.TrimSpace(b.String())
}
