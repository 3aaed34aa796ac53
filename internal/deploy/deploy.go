// Package deploy publishes a rendered site to Vercel as a static deployment.
package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strings"
)

// Client talks to the Vercel deployments API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New() *Client {
	return &Client{
		BaseURL:    "https://api.vercel.com",
		HTTPClient: http.DefaultClient,
	}
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
var dashRuns = regexp.MustCompile(`-{2,}`)

// Slugify turns a company name into a valid Vercel project name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = dashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Deploy uploads the HTML as a production deployment named after the company
// and disables deployment protection so the site is publicly reachable.
// Returns the deployment URL.
func (c *Client) Deploy(ctx context.Context, companyName, html string) (string, error) {
	token := os.Getenv("VERCEL_TOKEN")
	if token == "" {
		return "", fmt.Errorf("VERCEL_TOKEN environment variable not set")
	}
	teamID := os.Getenv("VERCEL_TEAM_ID")

	payload := map[string]interface{}{
		"name": Slugify(companyName),
		"files": []map[string]string{
			{"file": "index.html", "data": html},
		},
		"projectSettings": map[string]interface{}{"framework": nil},
		"target":          "production",
	}
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	deployURL := c.BaseURL + "/v13/deployments?teamId=" + teamID
	req, err := http.NewRequestWithContext(ctx, "POST", deployURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var deployment struct {
		URL       string `json:"url"`
		ProjectID string `json:"projectId"`
	}
	if err := json.Unmarshal(body, &deployment); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}
	if deployment.URL == "" {
		return "", fmt.Errorf("no deployment URL returned from Vercel")
	}

	// Best effort: the deployment stands even if the protection patch fails.
	if err := c.disableProtection(ctx, deployment.ProjectID, teamID, token); err != nil {
		slog.Warn("Failed to disable deployment protection", "project_id", deployment.ProjectID, "error", err)
	}

	return "https://" + deployment.URL, nil
}

func (c *Client) disableProtection(ctx context.Context, projectID, teamID, token string) error {
	if projectID == "" {
		return fmt.Errorf("no project id on deployment")
	}

	patch, err := json.Marshal(map[string]interface{}{
		"vercelAuthentication": map[string]string{"deploymentType": "none"},
		"passwordProtection":   nil,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := c.BaseURL + "/v9/projects/" + projectID + "?teamId=" + teamID
	req, err := http.NewRequestWithContext(ctx, "PATCH", url, bytes.NewBuffer(patch))
	if err != nil {
		return fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}
	return nil
}
