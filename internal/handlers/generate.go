package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wrightlabs/sitewright/internal/models"
	"github.com/wrightlabs/sitewright/internal/progress"
	"github.com/wrightlabs/sitewright/internal/render"
)

// progressTickInterval drives the smoothed progress bar.
const progressTickInterval = 150 * time.Millisecond

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SiteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Industry == "" || req.CompanyName == "" || req.Location == "" {
		h.writeError(w, "industry, company_name and location are required", http.StatusBadRequest)
		return
	}
	if req.BrandColor == "" {
		req.BrandColor = "#2563eb"
	}

	id := uuid.NewString()
	site := &models.PendingSite{
		ID:        id,
		Request:   req,
		Status:    models.StatusGenerating,
		CreatedAt: time.Now(),
	}
	h.store.Set(id, site)

	tracker := progress.NewTracker()
	h.setTracker(id, tracker)

	go h.runGeneration(id, req, tracker)

	h.writeJSON(w, map[string]any{
		"id":     id,
		"status": models.StatusGenerating,
	})
}

// runGeneration owns the whole background run for one pending site.
func (h *Handler) runGeneration(id string, req models.SiteRequest, tracker *progress.Tracker) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tracker.Run(ctx, progressTickInterval)

	result, err := h.generator.Run(ctx, req, tracker)
	if err != nil {
		h.store.Update(id, func(site *models.PendingSite) {
			site.Status = models.StatusFailed
			site.Error = "Failed to generate website: " + err.Error()
		})
		h.dropTracker(id)
		return
	}

	html, err := render.Site(result.Content, result.Images)
	if err != nil {
		slog.Error("Failed to render generated site", "id", id, "error", err)
		h.store.Update(id, func(site *models.PendingSite) {
			site.Status = models.StatusFailed
			site.Error = "Failed to build website preview"
		})
		h.dropTracker(id)
		return
	}

	h.store.Update(id, func(site *models.PendingSite) {
		site.Status = models.StatusReady
		site.Content = result.Content
		site.Images = result.Images
		site.HTML = html
		site.Progress = tracker.Snapshot()
	})
	h.dropTracker(id)
}

func (h *Handler) HandleGenerations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, h.store.SnapshotAll())
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) HandleGenerationDetail(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "/api/generations/")

	site, ok := h.getSiteOrError(w, id)
	if !ok {
		return
	}

	switch r.Method {
	case "GET":
		// Live runs report the tracker's smoothed snapshot.
		if tracker, running := h.getTracker(id); running {
			site.Progress = tracker.Snapshot()
		}
		h.writeJSON(w, &site)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := pathID(r, "/api/preview/")

	site, ok := h.getSiteOrError(w, id)
	if !ok {
		return
	}
	if site.Status != models.StatusReady && site.Status != models.StatusDeployed {
		h.writeError(w, "Site is not ready yet", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(site.HTML)); err != nil {
		slog.Error("Unable to write preview", "id", id, "err", err)
	}
}
