package receipt

import "testing"

func TestParseDateLegacyHeuristic(t *testing.T) {
	p := NewPipeline(nil)
	// only words that are themselves substrings of "date" qualify
	if got := p.ParseDate("a date 01/02"); got != "date" {
		t.Fatalf("expected %q, got %q", "date", got)
	}
	// a real date token never qualifies under the legacy rule
	if got := p.ParseDate("DATE 12/05/2023"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestParseDateLastCandidateWins(t *testing.T) {
	p := NewPipeline(nil)
	if got := p.ParseDate("a date 1/1\nat noon 2/2"); got != "at" {
		t.Fatalf("expected %q, got %q", "at", got)
	}
}

func TestParseDateRequiresTwoWords(t *testing.T) {
	p := NewPipeline(nil)
	if got := p.ParseDate("12/05/2023"); got != "" {
		t.Fatalf("single-word line matched: %q", got)
	}
	if got := p.ParseDate(""); got != "" {
		t.Fatalf("empty text matched: %q", got)
	}
}

func TestParseDatePatternMode(t *testing.T) {
	p := NewPipeline(nil)
	p.MatchDatePatterns = true
	if got := p.ParseDate("Date: 12/05/2023 14:02"); got != "12/05/2023" {
		t.Fatalf("expected 12/05/2023, got %q", got)
	}
	if got := p.ParseDate("Le 03-01-24"); got != "03-01-24" {
		t.Fatalf("expected 03-01-24, got %q", got)
	}
	if got := p.ParseDate("no dates here"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
