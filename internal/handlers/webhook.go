package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/wrightlabs/sitewright/internal/checkout"
	"github.com/wrightlabs/sitewright/internal/models"
)

// HandleWebhook reacts to Stripe checkout completion by deploying the paid
// pending site. Unknown or already-handled sessions are acknowledged so
// Stripe does not retry them.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		h.writeError(w, "Unable to read webhook payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	event, err := checkout.ParseEvent(payload, r.Header.Get("Stripe-Signature"), os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		h.writeError(w, "Invalid webhook event: "+err.Error(), http.StatusBadRequest)
		return
	}

	if event.Type != checkout.EventCheckoutCompleted {
		h.writeJSON(w, map[string]bool{"received": true})
		return
	}

	id := event.Data.Object.Metadata.PendingID
	if id == "" {
		h.writeError(w, "Checkout session has no pendingId metadata", http.StatusBadRequest)
		return
	}

	site, exists := h.store.Snapshot(id)
	if !exists {
		slog.Warn("Webhook references unknown pending site", "pending_id", id)
		h.writeJSON(w, map[string]bool{"received": true})
		return
	}
	if site.Status != models.StatusReady {
		slog.Warn("Webhook for site that is not awaiting deployment", "pending_id", id, "status", site.Status)
		h.writeJSON(w, map[string]bool{"received": true})
		return
	}

	url, err := h.deployer.Deploy(r.Context(), site.Request.CompanyName, site.HTML)
	if err != nil {
		h.writeError(w, "Failed to deploy site: "+err.Error(), http.StatusBadGateway)
		return
	}

	h.store.Update(id, func(s *models.PendingSite) {
		s.Status = models.StatusDeployed
		s.DeployURL = url
	})
	slog.Info("Deployed site after checkout completion", "pending_id", id, "url", url)

	h.writeJSON(w, map[string]string{"url": url})
}
