package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/wrightlabs/sitewright/internal/models"
)

// Ollama generates site content with a local model in JSON mode. It is the
// self-hosted alternative to the Gemini content provider.
type Ollama struct {
	Model string
}

// New returns a new Ollama content provider.
func New() *Ollama {
	model := os.Getenv("OLLAMA_MODEL")
	if model == "" {
		model = "llama3.1:8b"
	}
	return &Ollama{Model: model}
}

// GenerateContent produces the site content object for a business profile.
func (o *Ollama) GenerateContent(ctx context.Context, req models.SiteRequest) (*models.SiteContent, error) {
	ollamaURL := os.Getenv("OLLAMA_URL")
	if ollamaURL == "" {
		ollamaURL = "http://localhost:11434"
	}
	url := ollamaURL + "/api/generate"

	prompt := fmt.Sprintf(`Generate website content JSON for a home service contractor.
Industry: %s. Company Name: %s. Location: %s. Phone: %s. Brand Color: %s.
The JSON must have keys: companyName, brandColor, industry, location, phone, hero (badge, headline{line1,line2,line3}, subtext, trustIndicators), services (badge, title, subtitle, cards), featureHighlight (badge, headline, description, features, quote), processSteps (badge, title, subtitle, steps), emergencyCTA (headline, subtext, buttonText), credentials (badge, headline, description, items, ratingScore, reviewCount, certificationText), contactForm (sidebarTitle, sidebarDescription, contactMethods, formTitle).
Headlines must include location and industry. Use industry-specific terminology. Return valid JSON only.`,
		req.Industry, req.CompanyName, req.Location, req.Phone, req.BrandColor)

	requestBody, err := json.Marshal(map[string]interface{}{
		"model":  o.Model,
		"prompt": prompt,
		"format": "json",
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.7,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	var content models.SiteContent
	if err := json.Unmarshal([]byte(response.Response), &content); err != nil {
		return nil, fmt.Errorf("failed to parse content payload: %w", err)
	}
	if content.CompanyName == "" || content.Hero.Headline.Line1 == "" {
		return nil, fmt.Errorf("content payload missing required fields")
	}
	return &content, nil
}
