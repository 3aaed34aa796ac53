// Package checkout creates Stripe checkout sessions for claiming a pending
// site. Payment completion is observed by the Stripe webhook, not here.
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Client talks to the Stripe checkout sessions API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New() *Client {
	return &Client{
		BaseURL:    "https://api.stripe.com",
		HTTPClient: http.DefaultClient,
	}
}

// CreateSession creates a $20/month subscription checkout session for the
// pending site and returns the hosted checkout URL.
func (c *Client) CreateSession(ctx context.Context, pendingID, companyName, origin string) (string, error) {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return "", fmt.Errorf("STRIPE_SECRET_KEY environment variable not set")
	}

	form := url.Values{}
	form.Set("mode", "subscription")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", "usd")
	form.Set("line_items[0][price_data][unit_amount]", "2000")
	form.Set("line_items[0][price_data][recurring][interval]", "month")
	form.Set("line_items[0][price_data][product_data][name]", companyName+" - Premium Subscription")
	form.Set("line_items[0][price_data][product_data][description]", "$20/month for website hosting and AI management.")
	form.Set("metadata[pendingId]", pendingID)
	form.Set("metadata[companyName]", companyName)
	form.Set("success_url", origin+"/?status=success&session_id={CHECKOUT_SESSION_ID}")
	form.Set("cancel_url", origin+"/?status=cancelled")

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}
	if response.URL == "" {
		return "", fmt.Errorf("no checkout URL returned from Stripe")
	}
	return response.URL, nil
}
