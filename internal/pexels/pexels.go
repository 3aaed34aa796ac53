package pexels

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

// Pexels is a stock-photo search provider.
type Pexels struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a new Pexels provider.
func New() *Pexels {
	return &Pexels{
		BaseURL:    "https://api.pexels.com",
		HTTPClient: http.DefaultClient,
	}
}

func (p *Pexels) Name() string {
	return "pexels"
}

// Search returns up to count provider-ranked hits for the query. No results
// is a valid empty batch, not an error.
func (p *Pexels) Search(ctx context.Context, query, orientation string, count int) ([]providers.Candidate, error) {
	key := os.Getenv("PEXELS_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("PEXELS_API_KEY environment variable not set")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(count))
	if orientation != "" {
		params.Set("orientation", orientation)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", p.BaseURL+"/v1/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Authorization", key)

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
		Photos []struct {
			ID           int    `json:"id"`
			Alt          string `json:"alt"`
			Photographer string `json:"photographer"`
			Src          struct {
				Large2x string `json:"large2x"`
				Large   string `json:"large"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	candidates := make([]providers.Candidate, 0, len(response.Photos))
	for _, photo := range response.Photos {
		imageURL := photo.Src.Large2x
		if imageURL == "" {
			imageURL = photo.Src.Large
		}
		if imageURL == "" {
			continue
		}
		candidates = append(candidates, providers.Candidate{
			URL:      imageURL,
			ID:       "pexels-" + strconv.Itoa(photo.ID),
			Metadata: photo.Alt + " " + photo.Photographer,
			Provider: p.Name(),
		})
	}
	return candidates, nil
}
