// Package scoring ranks image candidates for contractor-site suitability.
//
// The heuristic is a declarative rule table over candidate metadata: weights
// can be tuned without touching control flow, and scoring is a pure function
// so identical inputs always produce identical scores.
package scoring

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/wrightlabs/sitewright/internal/providers"
)

// Scored pairs a candidate with its relevance score.
type Scored struct {
	providers.Candidate
	Score int
}

// Rule weights. A quality hit is large enough to disqualify a candidate that
// collected every available bonus.
const (
	positionalBonus = 3
	keywordBonus    = 5
	tradeBonus      = 2
	qualityPenalty  = -25
	offTopicPenalty = -2

	// RejectScore marks a candidate rejected before keyword scoring.
	RejectScore = -100

	// Only the top slice of a provider's native ranking is trusted.
	topSliceSize = 8
)

// webSearchProvider is the only adapter whose URLs need source-trust checks;
// stock APIs serve hot-linkable CDN URLs by contract.
const webSearchProvider = "websearch"

// tradeTerms signal real job-site photography over generic stock.
var tradeTerms = []string{
	"work", "working", "technician", "tools", "tool", "repair", "repairing",
	"service", "contractor", "crew", "project", "install", "installation",
	"equipment", "uniform", "jobsite", "job site",
}

// qualityTerms mark non-photographic assets.
var qualityTerms = []string{
	"illustration", "vector", "drawing", "cartoon", "graphic", "render",
	"3d", "clipart", "logo", "icon",
}

// offTopicTerms mark generic office/lifestyle stock.
var offTopicTerms = []string{
	"office", "laptop", "meeting", "suit", "fashion", "nature", "abstract",
}

// blockedHosts are known to block hot-linking or require attribution.
var blockedHosts = []string{
	"gettyimages", "shutterstock", "istockphoto", "alamy", "dreamstime",
	"stock.adobe", "123rf", "depositphotos", "pinterest", "instagram",
	"facebook", "fbsbx", "lookaside",
}

var rasterExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "for": true,
	"in": true, "on": true, "and": true, "with": true,
}

// PrimaryKeyword returns the first significant token of a query, lowercased.
func PrimaryKeyword(query string) string {
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if !stopwords[tok] {
			return tok
		}
	}
	return ""
}

// Score computes the relevance score for one candidate. position is the
// candidate's index in the provider's natively ranked batch.
func Score(c providers.Candidate, query string, position int) int {
	if c.Provider == webSearchProvider && !TrustedImageURL(c.URL) {
		return RejectScore
	}

	score := 0
	if position < topSliceSize {
		score += positionalBonus
	}

	meta := strings.ToLower(c.Metadata)
	if kw := PrimaryKeyword(query); kw != "" && strings.Contains(meta, kw) {
		score += keywordBonus
	}
	if containsAny(meta, tradeTerms) {
		score += tradeBonus
	}

	// Penalty vocabularies match whole words only: "graphic" must not fire
	// on "photographic", nor "icon" on "iconic".
	padded := padWords(c.Metadata)
	if containsWord(padded, qualityTerms) {
		score += qualityPenalty
	}
	if containsWord(padded, offTopicTerms) {
		score += offTopicPenalty
	}
	return score
}

// ScoreBatch scores an ordered provider batch, preserving batch order.
func ScoreBatch(batch []providers.Candidate, query string) []Scored {
	scored := make([]Scored, 0, len(batch))
	for i, c := range batch {
		scored = append(scored, Scored{Candidate: c, Score: Score(c, query, i)})
	}
	return scored
}

// TrustedImageURL reports whether a web-search result URL points at a
// hot-linkable raster image on a host that allows embedding.
func TrustedImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, blocked := range blockedHosts {
		if strings.Contains(host, blocked) {
			return false
		}
	}
	path := strings.ToLower(u.Path)
	for _, ext := range rasterExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// padWords lowercases text, collapses punctuation to spaces and pads the ends
// so every word is delimited by spaces.
func padWords(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte(' ')
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(' ')
	return b.String()
}

func containsWord(padded string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(padded, " "+term+" ") {
			return true
		}
	}
	return false
}
