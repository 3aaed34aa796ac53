package checkout

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// EventCheckoutCompleted marks a paid checkout session.
const EventCheckoutCompleted = "checkout.session.completed"

// Event is the subset of a Stripe webhook event the service reacts to. The
// pending-site id travels in the session metadata set by CreateSession.
type Event struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			Metadata struct {
				PendingID   string `json:"pendingId"`
				CompanyName string `json:"companyName"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// ParseEvent verifies the Stripe-Signature header against the raw payload and
// decodes the event. Verification is skipped when no secret is configured.
func ParseEvent(payload []byte, signature, secret string) (*Event, error) {
	if secret != "" {
		if err := verifySignature(payload, signature, secret); err != nil {
			return nil, err
		}
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to decode webhook event: %w", err)
	}
	if event.Type == "" {
		return nil, fmt.Errorf("webhook event has no type")
	}
	return &event, nil
}

// verifySignature checks the v1 scheme: HMAC-SHA256 over "<t>.<payload>" with
// the endpoint secret, hex-encoded in the header.
func verifySignature(payload []byte, header, secret string) error {
	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			timestamp = value
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return fmt.Errorf("malformed Stripe-Signature header")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, signature := range signatures {
		if hmac.Equal([]byte(signature), []byte(expected)) {
			return nil
		}
	}
	return fmt.Errorf("webhook signature mismatch")
}
