package receipt

import "testing"

func TestParseMerchantKnownGazetteer(t *testing.T) {
	p := NewPipeline(nil)
	if got := p.ParseMerchant("CARREFOUR CITY\nPAIN 2.50"); got != "Carrefour" {
		t.Fatalf("expected Carrefour, got %q", got)
	}
	if got := p.ParseMerchant("  welcome to starbucks coffee  "); got != "Starbucks" {
		t.Fatalf("expected Starbucks, got %q", got)
	}
}

func TestParseMerchantCleanLineFallback(t *testing.T) {
	p := NewPipeline(nil)
	got := p.ParseMerchant("TOTAL 5.00\nBOULANGERIE MARCEL\nTVA 1.00")
	if got != "Boulangerie Marcel" {
		t.Fatalf("expected Boulangerie Marcel, got %q", got)
	}
}

func TestParseMerchantUnknown(t *testing.T) {
	p := NewPipeline(nil)
	if got := p.ParseMerchant("TOTAL 5.00\nTVA 1.00"); got != UnknownMerchant {
		t.Fatalf("expected %q, got %q", UnknownMerchant, got)
	}
	if got := p.ParseMerchant(""); got != UnknownMerchant {
		t.Fatalf("empty text: expected %q, got %q", UnknownMerchant, got)
	}
}

func TestParseMerchantIdempotent(t *testing.T) {
	p := NewPipeline(nil)
	text := "CARREFOUR CITY\nPAIN 2.50\nTOTAL 3.70"
	first := p.ParseMerchant(text)
	for i := 0; i < 3; i++ {
		if got := p.ParseMerchant(text); got != first {
			t.Fatalf("run %d produced %q, first run %q", i, got, first)
		}
	}
}
