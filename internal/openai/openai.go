package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"

	"github.com/wrightlabs/sitewright/internal/providers"
)

// OpenAI is a generative image provider backed by the OpenAI images API.
type OpenAI struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// New returns a new OpenAI image provider.
func New() *OpenAI {
	model := os.Getenv("OPENAI_IMAGE_MODEL")
	if model == "" {
		model = "dall-e-2"
	}
	return &OpenAI{
		BaseURL:    "https://api.openai.com",
		Model:      model,
		HTTPClient: http.DefaultClient,
	}
}

func (o *OpenAI) Name() string {
	return "openai"
}

const seedAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate produces one image URL for the prompt. A random seed token is
// appended so repeated calls for similar slots yield distinct generations.
func (o *OpenAI) Generate(ctx context.Context, prompt, aspectRatio string) (*providers.Candidate, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	seed := make([]byte, 6)
	for i := range seed {
		seed[i] = seedAlphabet[rand.Intn(len(seedAlphabet))]
	}
	fullPrompt := fmt.Sprintf("%s. %s. Photorealistic, professional contractor photography. Natural lighting, real job site environment. No text, no logos.", prompt, seed)

	requestBody, err := json.Marshal(map[string]interface{}{
		"model":  o.Model,
		"prompt": fullPrompt,
		"n":      1,
		"size":   "1024x1024",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.BaseURL+"/v1/images/generations", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := o.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response struct {
		Data []struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(response.Data) == 0 || response.Data[0].URL == "" {
		return nil, nil
	}
	return &providers.Candidate{
		URL:      response.Data[0].URL,
		ID:       response.Data[0].URL,
		Provider: o.Name(),
	}, nil
}
