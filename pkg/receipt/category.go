package receipt

import "strings"

// CategoryOthers is returned when no classifier strategy finds a match.
const CategoryOthers = "others"

// categoryPass is one classification strategy. It returns CategoryOthers
// when it has no opinion.
type categoryPass func(merchant string, items []LineItem) string

// Categorize maps a merchant name and item list onto the category taxonomy.
// Strategies run in order and the first non-"others" answer wins: the
// primary keyword mapping first, then the narrower brand gazetteer.
func (p *Pipeline) Categorize(merchant string, items []LineItem) string {
	for _, pass := range []categoryPass{p.keywordCategory, p.brandCategory} {
		if tag := pass(merchant, items); tag != CategoryOthers {
			return tag
		}
	}
	return CategoryOthers
}

// keywordCategory checks the merchant name against every category's keyword
// list in mapping order, then each item name the same way, item order first.
func (p *Pipeline) keywordCategory(merchant string, items []LineItem) string {
	low := strings.ToLower(merchant)
	for _, cs := range p.gaz.Categories {
		for _, kw := range cs.Keywords {
			if strings.Contains(low, kw) {
				return cs.Tag
			}
		}
	}
	for _, it := range items {
		name := strings.ToLower(it.Name)
		for _, cs := range p.gaz.Categories {
			for _, kw := range cs.Keywords {
				if strings.Contains(name, kw) {
					return cs.Tag
				}
			}
		}
	}
	return CategoryOthers
}

// brandCategory matches the merchant against well-known brand names.
func (p *Pipeline) brandCategory(merchant string, _ []LineItem) string {
	low := strings.ToLower(merchant)
	for _, cs := range p.gaz.BrandCategories {
		for _, kw := range cs.Keywords {
			if strings.Contains(low, kw) {
				return cs.Tag
			}
		}
	}
	return CategoryOthers
}
