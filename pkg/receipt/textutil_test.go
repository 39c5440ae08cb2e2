package receipt

import "testing"

func TestIsAllDigits(t *testing.T) {
	if !isAllDigits("0123456789") {
		t.Fatalf("digit string rejected")
	}
	if isAllDigits("12a4") {
		t.Fatalf("letter accepted")
	}
	if isAllDigits("12.4") {
		t.Fatalf("dot accepted")
	}
}

func TestNormalizeAmountToken(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2.50", 2.5, true},
		{"2,50", 2.5, true},
		{"4.50€", 4.5, true},
		{"$4.50", 4.5, true},
		{"£10", 10, true},
		{"3.70.", 3.7, true}, // trailing dot decoration
		{"12.34.56", 0, false},
		{"abc", 0, false},
		{"1a2", 0, false},
		{"", 0, false},
		{".", 0, false},
	}
	for _, c := range cases {
		got, ok := normalizeAmountToken(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("normalizeAmountToken(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestContainsAnyKeyword(t *testing.T) {
	kws := []string{"total", "tva"}
	if !containsAnyKeyword("Grand TOTAL due", kws) {
		t.Fatalf("case-insensitive containment failed")
	}
	if containsAnyKeyword("PAIN COMPLET", kws) {
		t.Fatalf("false positive")
	}
	if containsAnyKeyword("", kws) {
		t.Fatalf("empty text matched")
	}
}
