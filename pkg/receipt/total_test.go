package receipt

import "testing"

func TestParseTotalDefiniteLabelTakesLineMax(t *testing.T) {
	p := NewPipeline(nil)
	// a definite line may carry a tax figure next to the payable total
	got := p.ParseTotal("TVA 0.62 TOTAL A PAYER 3.70")
	if got != "3.7" {
		t.Fatalf("expected 3.7, got %s", got)
	}
}

func TestParseTotalDefiniteBeatsBroadLabels(t *testing.T) {
	p := NewPipeline(nil)
	got := p.ParseTotal("TOTAL 99.99\nNET A PAYER 5.00")
	if got != "5" {
		t.Fatalf("definite label did not win: %s", got)
	}
}

func TestParseTotalBroadLabelsGlobalMax(t *testing.T) {
	p := NewPipeline(nil)
	got := p.ParseTotal("SOUS TOTAL 4.00\nTOTAL 5.00\nMONTANT 2,00")
	if got != "5" {
		t.Fatalf("expected global max 5, got %s", got)
	}
}

func TestParseTotalFallsBackToItemSum(t *testing.T) {
	p := NewPipeline(nil)
	got := p.ParseTotal("PAIN 2.50\nLAIT 1.20")
	if got != "3.7" {
		t.Fatalf("expected item sum 3.7, got %s", got)
	}
}

func TestParseTotalZeroOnNothing(t *testing.T) {
	p := NewPipeline(nil)
	if got := p.ParseTotal(""); got != "0" {
		t.Fatalf("expected 0 on empty text, got %s", got)
	}
	if got := p.ParseTotal("just some words"); got != "0" {
		t.Fatalf("expected 0, got %s", got)
	}
}

func TestParseTotalRejectsMalformedToken(t *testing.T) {
	p := NewPipeline(nil)
	// two decimal points disqualify the token everywhere
	if got := p.ParseTotal("12.34.56 TOTAL"); got != "0" {
		t.Fatalf("malformed token accepted as total: %s", got)
	}
}

func TestParseTotalStripsCurrencyGlyphs(t *testing.T) {
	p := NewPipeline(nil)
	if got := p.ParseTotal("TOTAL €12,50"); got != "12.5" {
		t.Fatalf("expected 12.5, got %s", got)
	}
	if got := p.ParseTotal("GRAND TOTAL $8.00"); got != "8" {
		t.Fatalf("expected 8, got %s", got)
	}
}

func TestParseAmountString(t *testing.T) {
	if v := ParseAmountString("3.7"); v != 3.7 {
		t.Fatalf("got %v", v)
	}
	if v := ParseAmountString("3,7"); v != 3.7 {
		t.Fatalf("comma separator: got %v", v)
	}
	if v := ParseAmountString(""); v != 0 {
		t.Fatalf("empty: got %v", v)
	}
	if v := ParseAmountString("abc"); v != 0 {
		t.Fatalf("malformed: got %v", v)
	}
}
