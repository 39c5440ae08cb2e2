package receipt

import (
	"strconv"
	"strings"
)

// ParseTotal derives the transaction total and returns it as a decimal
// string. Matching is two-tier: a line carrying a definite label ("TOTAL A
// PAYER" and friends) wins immediately with the largest amount on that line,
// since such lines often carry a tax breakdown next to the payable figure.
// Otherwise every amount on broader total-like lines is collected and the
// global maximum returned. With no label match at all, the item prices are
// summed. The result is "0" only when nothing whatsoever was found.
func (p *Pipeline) ParseTotal(text string) string {
	var candidates []float64
	for _, line := range strings.Split(text, "\n") {
		clean := strings.TrimSpace(line)
		upper := strings.ToUpper(clean)
		if containsAnyLabel(upper, p.gaz.DefiniteTotalLabels) {
			if vals := lineAmounts(clean); len(vals) > 0 {
				return formatAmount(maxAmount(vals))
			}
		}
		if containsAnyLabel(upper, p.gaz.TotalLabels) {
			candidates = append(candidates, lineAmounts(clean)...)
		}
	}
	if len(candidates) > 0 {
		return formatAmount(maxAmount(candidates))
	}
	sum := 0.0
	for _, it := range p.ParseItems(text) {
		sum += it.Price
	}
	return formatAmount(sum)
}

// lineAmounts collects every positive amount on a line. Currency glyphs are
// stripped and commas read as decimal points; a token only qualifies when it
// starts with a digit and its numeric residue holds at most one decimal
// point.
func lineAmounts(line string) []float64 {
	var out []float64
	for _, word := range strings.Fields(line) {
		var norm strings.Builder
		for _, ch := range word {
			switch ch {
			case ',':
				norm.WriteByte('.')
			case '$', '€', '£':
			default:
				norm.WriteRune(ch)
			}
		}
		t := norm.String()
		if t == "" || t[0] < '0' || t[0] > '9' {
			continue
		}
		var num strings.Builder
		for _, ch := range t {
			if (ch >= '0' && ch <= '9') || ch == '.' {
				num.WriteRune(ch)
			}
		}
		if v, ok := amountCandidate(num.String()); ok && v > 0 {
			out = append(out, v)
		}
	}
	return out
}

// amountCandidate validates a digits-and-dots string and parses it.
func amountCandidate(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	dots := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
		case s[i] == '.':
			dots++
		default:
			return 0, false
		}
	}
	if dots > 1 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// containsAnyLabel matches an upper-cased line against upper-cased labels.
func containsAnyLabel(upper string, labels []string) bool {
	for _, l := range labels {
		if strings.Contains(upper, l) {
			return true
		}
	}
	return false
}

func maxAmount(vals []float64) float64 {
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// formatAmount renders a float the shortest way that round-trips.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
