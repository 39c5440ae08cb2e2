// Package receipt reconstructs structured receipt data from noisy OCR text:
// merchant, total amount, date, purchased items, a spending category and a
// localized summary. Every extractor is a total function over arbitrary
// strings; missing fields degrade to empty values instead of errors.
package receipt

import (
	"strconv"
	"strings"
)

// UnknownMerchant is the fallback merchant name when no line qualifies.
const UnknownMerchant = "Unknown Merchant"

// LineItem is one purchased article extracted from a receipt row.
type LineItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Record is the structured result for one receipt. Amount is 0 when no total
// could be derived; Date is empty when no date-bearing line was found.
type Record struct {
	Merchant    string     `json:"merchant"`
	Amount      float64    `json:"amount"`
	Date        string     `json:"date,omitempty"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	RawText     string     `json:"raw_text"`
	Items       []LineItem `json:"items"`
}

// Pipeline runs the extraction passes over segmented receipt text. It holds
// only read-only keyword tables, so one Pipeline may serve any number of
// concurrent receipts.
type Pipeline struct {
	gaz *Gazetteer

	// MatchDatePatterns switches ParseDate from the legacy substring
	// heuristic to a day/month/year pattern matcher.
	MatchDatePatterns bool
}

// NewPipeline builds a pipeline around the given gazetteer, or the default
// tables when gaz is nil.
func NewPipeline(gaz *Gazetteer) *Pipeline {
	if gaz == nil {
		gaz = DefaultGazetteer()
	}
	return &Pipeline{gaz: gaz}
}

// Parse runs every extractor over the segmented text and assembles the
// record. Any input, including the empty string, yields a complete record.
func (p *Pipeline) Parse(text string) Record {
	items := p.ParseItems(text)
	amount := ParseAmountString(p.ParseTotal(text))
	date := p.ParseDate(text)
	merchant := p.ParseMerchant(text)
	return Record{
		Merchant:    merchant,
		Amount:      amount,
		Date:        date,
		Description: p.Describe(text, merchant, amount, date, items),
		Category:    p.Categorize(merchant, items),
		RawText:     text,
		Items:       items,
	}
}

// ParseBlocks segments raw OCR blocks into logical lines and parses them.
func (p *Pipeline) ParseBlocks(blocks []TextBlock) Record {
	return p.Parse(SegmentBlocks(blocks))
}

// ParseAmountString converts the total extractor's decimal string into a
// number, accepting both ',' and '.' as decimal separator. Malformed or
// empty input yields 0.
func ParseAmountString(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
