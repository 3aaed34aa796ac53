package pixabay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/wrightlabs/sitewright/internal/providers"
)

// Pixabay is a stock-photo search provider.
type Pixabay struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a new Pixabay provider.
func New() *Pixabay {
	return &Pixabay{
		BaseURL:    "https://pixabay.com",
		HTTPClient: http.DefaultClient,
	}
}

func (p *Pixabay) Name() string {
	return "pixabay"
}

// Search returns up to count provider-ranked photo hits for the query.
func (p *Pixabay) Search(ctx context.Context, query, orientation string, count int) ([]providers.Candidate, error) {
	key := os.Getenv("PIXABAY_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("PIXABAY_API_KEY environment variable not set")
	}

	// Pixabay uses horizontal/vertical instead of landscape/portrait.
	switch orientation {
	case providers.OrientationLandscape:
		orientation = "horizontal"
	case providers.OrientationPortrait:
		orientation = "vertical"
	default:
		orientation = "all"
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("q", query)
	params.Set("image_type", "photo")
	params.Set("orientation", orientation)
	params.Set("safesearch", "true")
	params.Set("per_page", strconv.Itoa(count))

	req, err := http.NewRequestWithContext(ctx, "GET", p.BaseURL+"/api/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response struct {
		Hits []struct {
			ID            int    `json:"id"`
			Tags          string `json:"tags"`
			LargeImageURL string `json:"largeImageURL"`
			WebformatURL  string `json:"webformatURL"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	candidates := make([]providers.Candidate, 0, len(response.Hits))
	for _, hit := range response.Hits {
		imageURL := hit.LargeImageURL
		if imageURL == "" {
			imageURL = hit.WebformatURL
		}
		if imageURL == "" {
			continue
		}
		candidates = append(candidates, providers.Candidate{
			URL:      imageURL,
			ID:       "pixabay-" + strconv.Itoa(hit.ID),
			Metadata: hit.Tags,
			Provider: p.Name(),
		})
	}
	return candidates, nil
}
