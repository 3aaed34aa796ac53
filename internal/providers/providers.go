package providers

import (
	"context"
)

// Orientation hints passed to search providers.
const (
	OrientationLandscape = "landscape"
	OrientationPortrait  = "portrait"
	OrientationSquare    = "square"
)

// Candidate is a single unconfirmed image result from one provider.
type Candidate struct {
	// URL is a remote http(s) URL or an inline data URL for generated images.
	URL string
	// ID is the provider-native identifier; falls back to the URL when the
	// provider has no stable id.
	ID string
	// Metadata is loosely structured tag/title/description text used for
	// relevance scoring.
	Metadata string
	// Provider is the short name of the adapter that produced this candidate.
	Provider string
}

// Identifier returns the key used for run-scoped deduplication.
func (c Candidate) Identifier() string {
	if c.ID != "" {
		return c.ID
	}
	return c.URL
}

// Searcher is implemented by stock/search image providers. An empty batch is
// a valid non-error outcome; an error means the provider is unavailable for
// this attempt.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query, orientation string, count int) ([]Candidate, error)
}

// Generator is implemented by generative image providers. It returns at most
// one candidate; a nil candidate with a nil error means the model produced no
// usable image.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt, aspectRatio string) (*Candidate, error)
}
