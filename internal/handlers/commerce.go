package handlers

import (
	"net/http"

	"github.com/wrightlabs/sitewright/internal/models"
)

func (h *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		PendingID string `json:"pending_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.PendingID == "" {
		h.writeError(w, "pending_id is required", http.StatusBadRequest)
		return
	}

	site, ok := h.getSiteOrError(w, req.PendingID)
	if !ok {
		return
	}
	if site.Status != models.StatusReady {
		h.writeError(w, "Site is not ready for checkout", http.StatusConflict)
		return
	}

	url, err := h.checkout.CreateSession(r.Context(), site.ID, site.Request.CompanyName, requestOrigin(r))
	if err != nil {
		h.writeError(w, "Failed to create checkout session: "+err.Error(), http.StatusBadGateway)
		return
	}

	h.writeJSON(w, map[string]string{"url": url})
}

func (h *Handler) HandleDeploy(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		PendingID string `json:"pending_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	site, ok := h.getSiteOrError(w, req.PendingID)
	if !ok {
		return
	}
	if site.Status != models.StatusReady {
		h.writeError(w, "Site is not ready for deployment", http.StatusConflict)
		return
	}

	url, err := h.deployer.Deploy(r.Context(), site.Request.CompanyName, site.HTML)
	if err != nil {
		h.writeError(w, "Failed to deploy site: "+err.Error(), http.StatusBadGateway)
		return
	}

	h.store.Update(site.ID, func(s *models.PendingSite) {
		s.Status = models.StatusDeployed
		s.DeployURL = url
	})

	h.writeJSON(w, map[string]string{"url": url})
}
