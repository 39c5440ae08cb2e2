package receipt

import (
	"strings"
	"testing"
)

func TestDescribeFrench(t *testing.T) {
	p := NewPipeline(nil)
	items := []LineItem{{Name: "PAIN", Price: 2.5}, {Name: "LAIT", Price: 1.2}}
	got := p.Describe("ticket carrefour tva", "Carrefour", 3.7, "", items)
	want := "Reçu de Carrefour pour 3.7€ avec une date inconnue. Articles détectés: - PAIN: 2.5€ - LAIT: 1.2€"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestDescribeEnglishAllFallbacks(t *testing.T) {
	p := NewPipeline(nil)
	got := p.Describe("", "", 0, "", nil)
	want := "Receipt from Unknown Merchant with unknown date. No items detected. Total amount not detected."
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestDescribeDiscardsImplausibleAmount(t *testing.T) {
	p := NewPipeline(nil)
	got := p.Describe("receipt walmart tax", "Walmart", 250000, "", nil)
	if !strings.Contains(got, "Total amount not detected.") {
		t.Fatalf("oversized amount kept: %q", got)
	}
	if strings.Contains(got, "250000") {
		t.Fatalf("oversized amount rendered: %q", got)
	}
}

func TestDescribeFiltersBadItems(t *testing.T) {
	p := NewPipeline(nil)
	items := []LineItem{
		{Name: "X", Price: 5},          // name too short
		{Name: "GOLD BAR", Price: 1e6}, // price implausible
	}
	got := p.Describe("receipt walmart tax", "Walmart", 10, "", items)
	if !strings.Contains(got, "No items detected.") {
		t.Fatalf("invalid items survived: %q", got)
	}
}

func TestDescribeDiscardsShortDate(t *testing.T) {
	p := NewPipeline(nil)
	got := p.Describe("receipt walmart tax", "Walmart", 10, "at", nil)
	if !strings.Contains(got, "with unknown date") {
		t.Fatalf("short date kept: %q", got)
	}
}

func TestDescribeNeverEmpty(t *testing.T) {
	p := NewPipeline(nil)
	inputs := [][2]string{{"", ""}, {"total date", "x"}, {"garbage \x00 bytes", "  "}}
	for _, in := range inputs {
		if got := p.Describe(in[0], in[1], -5, "", nil); got == "" {
			t.Fatalf("empty description for %q", in)
		}
	}
}
