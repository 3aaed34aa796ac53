package gemini

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/wrightlabs/sitewright/internal/models"
	"github.com/wrightlabs/sitewright/internal/providers"
)

// Gemini provides structured site-content generation and generative
// photography via the Gemini API.
type Gemini struct {
	ContentModel string
	ImageModel   string
}

// New returns a Gemini provider with model names taken from the environment
// when unset.
func New() *Gemini {
	g := &Gemini{
		ContentModel: os.Getenv("GEMINI_CONTENT_MODEL"),
		ImageModel:   os.Getenv("GEMINI_IMAGE_MODEL"),
	}
	if g.ContentModel == "" {
		g.ContentModel = "gemini-2.0-flash"
	}
	if g.ImageModel == "" {
		g.ImageModel = "gemini-2.5-flash-image"
	}
	return g
}

func (g *Gemini) Name() string {
	return "gemini"
}

func apiKey() (string, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	return key, nil
}

// GenerateContent produces the full site content object for a business
// profile using a structured JSON response schema.
func (g *Gemini) GenerateContent(ctx context.Context, req models.SiteRequest) (*models.SiteContent, error) {
	key, err := apiKey()
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.ContentModel)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = siteContentSchema()

	prompt := fmt.Sprintf(`Generate a high-fidelity website content JSON for a home service contractor in the %s industry.
Company Name: %s. Location: %s. Phone: %s. Brand Color: %s.
Headlines must include location and industry.
Ensure valid Lucide icon names (e.g., check-circle, droplet, sparkles, wrench, bell-alert, wind, shield, phone, mail, map-pin, clock, star).
Character limits: Hero subtext max 100, Service card description max 80.
NO generic content. Use industry-specific terminology.`,
		req.Industry, req.CompanyName, req.Location, req.Phone, req.BrandColor)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := firstText(resp)
	if err != nil {
		return nil, err
	}

	var content models.SiteContent
	if err := json.Unmarshal([]byte(text), &content); err != nil {
		return nil, fmt.Errorf("failed to parse content payload: %w", err)
	}
	if content.CompanyName == "" || content.Hero.Headline.Line1 == "" {
		return nil, fmt.Errorf("content payload missing required fields")
	}
	return &content, nil
}

// Generate produces at most one photograph for a fully formed photographic
// prompt. Non-idempotent: the model seeds differently on every call.
func (g *Gemini) Generate(ctx context.Context, prompt, aspectRatio string) (*providers.Candidate, error) {
	key, err := apiKey()
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.ImageModel)

	full := prompt + ". Photorealistic commercial photography. Show workers on site. Professional lighting, candid, high resolution."
	if aspectRatio != "" {
		full += " Aspect ratio " + aspectRatio + "."
	}

	resp, err := model.GenerateContent(ctx, genai.Text(full))
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			blob, ok := part.(genai.Blob)
			if !ok || len(blob.Data) == 0 {
				continue
			}
			mime := blob.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			sum := sha256.Sum256(blob.Data)
			return &providers.Candidate{
				URL:      fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(blob.Data)),
				ID:       fmt.Sprintf("gemini-%x", sum[:8]),
				Provider: g.Name(),
			}, nil
		}
	}
	// The model answered but produced no inline image.
	return nil, nil
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}
	if txt, ok := cand.Content.Parts[0].(genai.Text); ok {
		return strings.TrimSpace(string(txt)), nil
	}
	return "", fmt.Errorf("unexpected response format from Gemini")
}
