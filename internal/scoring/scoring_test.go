package scoring

import (
	"testing"

	"github.com/wrightlabs/sitewright/internal/providers"
)

func TestPrimaryKeyword(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"plumbing contractor working", "plumbing"},
		{"the roofing crew", "roofing"},
		{"a   hvac technician", "hvac"},
		{"", ""},
		{"the of and", ""},
	}

	for _, tt := range tests {
		if got := PrimaryKeyword(tt.query); got != tt.want {
			t.Errorf("PrimaryKeyword(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	cand := providers.Candidate{
		URL:      "https://example.com/photo.jpg",
		ID:       "pexels-42",
		Metadata: "plumber fixing pipes with tools",
		Provider: "pexels",
	}

	first := Score(cand, "plumbing repair", 2)
	for i := 0; i < 10; i++ {
		if got := Score(cand, "plumbing repair", 2); got != first {
			t.Fatalf("Score not deterministic: got %d then %d", first, got)
		}
	}
}

func TestScoreBonuses(t *testing.T) {
	query := "plumbing repair"

	base := providers.Candidate{Metadata: "something unrelated", Provider: "pexels"}
	topScore := Score(base, query, 0)
	deepScore := Score(base, query, 20)
	if topScore <= deepScore {
		t.Errorf("expected positional prior for top slice: top=%d deep=%d", topScore, deepScore)
	}

	keyword := providers.Candidate{Metadata: "plumbing job underway", Provider: "pexels"}
	if Score(keyword, query, 0) <= topScore {
		t.Errorf("expected keyword bonus: keyword=%d base=%d", Score(keyword, query, 0), topScore)
	}

	trade := providers.Candidate{Metadata: "technician with tools", Provider: "pexels"}
	if Score(trade, query, 0) <= topScore {
		t.Errorf("expected trade vocabulary bonus: trade=%d base=%d", Score(trade, query, 0), topScore)
	}
}

func TestScoreQualityPenaltyDisqualifies(t *testing.T) {
	// Even a candidate that collects every bonus goes negative on a quality
	// term.
	cand := providers.Candidate{
		Metadata: "plumbing technician tools illustration",
		Provider: "pexels",
	}
	if got := Score(cand, "plumbing repair", 0); got > 0 {
		t.Errorf("expected quality-penalized candidate to score non-positive, got %d", got)
	}
}

func TestScorePenaltyTermsMatchWholeWordsOnly(t *testing.T) {
	query := "plumbing repair"

	clean := providers.Candidate{Metadata: "plumbing work", Provider: "pexels"}
	cleanScore := Score(clean, query, 0)

	// Penalty vocabulary embedded in longer words must not fire.
	tests := []struct {
		name string
		meta string
	}{
		{"graphic in photographic", "photographic plumbing work"},
		{"icon in iconic", "iconic plumbing work"},
		{"nature in signature", "signature plumbing work"},
	}
	for _, tt := range tests {
		cand := providers.Candidate{Metadata: tt.meta, Provider: "pexels"}
		if got := Score(cand, query, 0); got != cleanScore {
			t.Errorf("%s: Score = %d, want %d", tt.name, got, cleanScore)
		}
	}

	// Whole words still fire, punctuation included.
	penalized := providers.Candidate{Metadata: "plumbing work, vector-style", Provider: "pexels"}
	if got := Score(penalized, query, 0); got > 0 {
		t.Errorf("whole-word quality term should disqualify, got %d", got)
	}
}

func TestScoreOffTopicPenalty(t *testing.T) {
	onTopic := providers.Candidate{Metadata: "plumbing work", Provider: "pexels"}
	offTopic := providers.Candidate{Metadata: "plumbing work office laptop", Provider: "pexels"}
	if Score(offTopic, "plumbing", 0) >= Score(onTopic, "plumbing", 0) {
		t.Errorf("expected off-topic penalty to lower score")
	}
}

func TestScoreRejectsUntrustedWebSearchURLs(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"blocked host", "https://www.gettyimages.com/photos/plumber.jpg"},
		{"social host", "https://www.pinterest.com/pin/plumber.jpg"},
		{"no raster extension", "https://example.com/photos/plumber"},
		{"html page", "https://example.com/plumber.html"},
	}

	for _, tt := range tests {
		cand := providers.Candidate{
			URL:      tt.url,
			Metadata: "plumbing technician tools at work",
			Provider: "websearch",
		}
		if got := Score(cand, "plumbing", 0); got != RejectScore {
			t.Errorf("%s: Score = %d, want %d", tt.name, got, RejectScore)
		}
	}

	// The same URL rules do not apply to stock adapters, whose CDNs often
	// serve extension-less URLs.
	stock := providers.Candidate{
		URL:      "https://images.pexels.com/photos/1216589/download",
		Metadata: "plumbing technician",
		Provider: "pexels",
	}
	if got := Score(stock, "plumbing", 0); got <= 0 {
		t.Errorf("stock candidate unexpectedly rejected: %d", got)
	}
}

func TestTrustedImageURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/a/photo.jpg", true},
		{"https://example.com/a/photo.JPEG", true},
		{"https://example.com/a/photo.webp", true},
		{"https://example.com/a/photo.gif", false},
		{"https://shutterstock.com/image.jpg", false},
		{"ftp://example.com/photo.jpg", false},
		{"not a url", false},
	}

	for _, tt := range tests {
		if got := TrustedImageURL(tt.url); got != tt.want {
			t.Errorf("TrustedImageURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestScoreBatchPreservesOrder(t *testing.T) {
	batch := []providers.Candidate{
		{ID: "a", Metadata: "plumbing work", Provider: "pexels"},
		{ID: "b", Metadata: "plumbing work", Provider: "pexels"},
		{ID: "c", Metadata: "cartoon plumbing", Provider: "pexels"},
	}
	scored := ScoreBatch(batch, "plumbing")
	if len(scored) != 3 {
		t.Fatalf("expected 3 scored candidates, got %d", len(scored))
	}
	for i, sc := range scored {
		if sc.ID != batch[i].ID {
			t.Errorf("batch order not preserved at %d: got %s", i, sc.ID)
		}
	}
	if scored[0].Score != scored[1].Score {
		t.Errorf("identical candidates at same depth should tie: %d vs %d", scored[0].Score, scored[1].Score)
	}
	if scored[2].Score > 0 {
		t.Errorf("cartoon candidate should score non-positive, got %d", scored[2].Score)
	}
}
