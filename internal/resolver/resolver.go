// Package resolver turns one image slot into one usable photograph by trying
// providers in a configured priority order and falling back to a static
// placeholder when every provider is exhausted.
package resolver

import (
	"context"
	"log/slog"

	"github.com/wrightlabs/sitewright/internal/providers"
	"github.com/wrightlabs/sitewright/internal/scoring"
	"github.com/wrightlabs/sitewright/internal/selection"
)

// Slot is a named image placeholder plus the queries used to fill it.
type Slot struct {
	Name        string
	Query       string
	Prompt      string
	Orientation string
	AspectRatio string
	// Category selects the static fallback image: hero, value, credentials
	// or gallery.
	Category string
}

// Step is one provider attempt in the fallback chain. Exactly one of the two
// fields is set.
type Step struct {
	Searcher  providers.Searcher
	Generator providers.Generator
}

func (s Step) name() string {
	if s.Generator != nil {
		return s.Generator.Name()
	}
	return s.Searcher.Name()
}

// Static fallback images, one per slot category. Serving these is always a
// success: a slot never fails, it degrades.
var fallbackURLs = map[string]string{
	"hero":        "https://storage.googleapis.com/sitewright-static/fallback/hero-jobsite.jpg",
	"value":       "https://storage.googleapis.com/sitewright-static/fallback/tools-closeup.jpg",
	"credentials": "https://storage.googleapis.com/sitewright-static/fallback/crew-truck.jpg",
	"gallery":     "https://storage.googleapis.com/sitewright-static/fallback/finished-work.jpg",
}

// FallbackURL returns the static placeholder for a slot category.
func FallbackURL(category string) string {
	if url, ok := fallbackURLs[category]; ok {
		return url
	}
	return fallbackURLs["hero"]
}

// Resolver resolves slots against an ordered provider chain. The order is
// injected by the caller, so reprioritizing providers is a configuration
// change, not a code change.
type Resolver struct {
	steps       []Step
	used        *selection.UsedAssets
	searchCount int
}

func New(steps []Step, used *selection.UsedAssets, searchCount int) *Resolver {
	if searchCount <= 0 {
		searchCount = 12
	}
	return &Resolver{steps: steps, used: used, searchCount: searchCount}
}

// Resolve returns the URL bound to the slot. Provider errors are logged and
// treated as empty batches; the static fallback floor means Resolve never
// fails.
func (r *Resolver) Resolve(ctx context.Context, slot Slot) string {
	for _, step := range r.steps {
		if url, ok := r.attempt(ctx, step, slot); ok {
			slog.Info("Resolved image slot", "slot", slot.Name, "provider", step.name())
			return url
		}
	}
	slog.Warn("All providers exhausted, using static fallback", "slot", slot.Name)
	return FallbackURL(slot.Category)
}

func (r *Resolver) attempt(ctx context.Context, step Step, slot Slot) (string, bool) {
	if step.Generator != nil {
		cand, err := step.Generator.Generate(ctx, slot.Prompt, slot.AspectRatio)
		if err != nil {
			slog.Warn("Image generation failed", "slot", slot.Name, "provider", step.Generator.Name(), "error", err)
			return "", false
		}
		if cand == nil || cand.URL == "" {
			return "", false
		}
		if !r.used.RegisterIfNew(cand.Identifier()) {
			return "", false
		}
		return cand.URL, true
	}

	batch, err := step.Searcher.Search(ctx, slot.Query, slot.Orientation, r.searchCount)
	if err != nil {
		slog.Warn("Image search failed", "slot", slot.Name, "provider", step.Searcher.Name(), "error", err)
		return "", false
	}
	if len(batch) == 0 {
		return "", false
	}
	pick := r.used.SelectUnique(scoring.ScoreBatch(batch, slot.Query))
	if pick == nil {
		return "", false
	}
	return pick.URL, true
}
