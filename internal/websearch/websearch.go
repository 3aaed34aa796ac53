package websearch

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

// WebSearch finds images through the Google Programmable Search JSON API.
// Results come from arbitrary hosts, so candidates are subject to the
// scorer's source-trust rejection rules.
type WebSearch struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a new web image search provider.
func New() *WebSearch {
	return &WebSearch{
		BaseURL:    "https://www.googleapis.com",
		HTTPClient: http.DefaultClient,
	}
}

func (w *WebSearch) Name() string {
	return "websearch"
}

// Search returns up to count image hits for the query. The API caps a single
// page at 10 results.
func (w *WebSearch) Search(ctx context.Context, query, orientation string, count int) ([]providers.Candidate, error) {
	key := os.Getenv("GOOGLE_SEARCH_API_KEY")
	cx := os.Getenv("GOOGLE_SEARCH_CX")
	if key == "" || cx == "" {
		return nil, fmt.Errorf("GOOGLE_SEARCH_API_KEY or GOOGLE_SEARCH_CX environment variable not set")
	}
	if count > 10 {
		count = 10
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("cx", cx)
	params.Set("q", query)
	params.Set("searchType", "image")
	params.Set("imgType", "photo")
	params.Set("num", strconv.Itoa(count))
	if orientation == providers.OrientationLandscape {
		params.Set("imgSize", "xlarge")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", w.BaseURL+"/customsearch/v1?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}

	resp, err := w.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response struct {
		Items []struct {
			Link    string `json:"link"`
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	candidates := make([]providers.Candidate, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Link == "" {
			continue
		}
		candidates = append(candidates, providers.Candidate{
			URL:      item.Link,
			ID:       item.Link,
			Metadata: item.Title + " " + item.Snippet,
			Provider: w.Name(),
		})
	}
	return candidates, nil
}
