package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/wrightlabs/sitewright/internal/checkout"
	"github.com/wrightlabs/sitewright/internal/deploy"
	"github.com/wrightlabs/sitewright/internal/generation"
	"github.com/wrightlabs/sitewright/internal/models"
	"github.com/wrightlabs/sitewright/internal/progress"
	"github.com/wrightlabs/sitewright/internal/storage"
)

type Handler struct {
	store     *storage.PendingStore
	generator *generation.Service
	checkout  *checkout.Client
	deployer  *deploy.Client

	// trackers holds live progress for runs still generating.
	trackersMu sync.Mutex
	trackers   map[string]*progress.Tracker
}

func New(generator *generation.Service) *Handler {
	return &Handler{
		store:     storage.New(),
		generator: generator,
		checkout:  checkout.New(),
		deployer:  deploy.New(),
		trackers:  make(map[string]*progress.Tracker),
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

func (h *Handler) getSiteOrError(w http.ResponseWriter, id string) (models.PendingSite, bool) {
	site, exists := h.store.Snapshot(id)
	if !exists {
		h.writeError(w, "Pending site not found", http.StatusNotFound)
		return models.PendingSite{}, false
	}
	return site, true
}

// Tracker bookkeeping for in-flight runs.
func (h *Handler) setTracker(id string, t *progress.Tracker) {
	h.trackersMu.Lock()
	defer h.trackersMu.Unlock()
	h.trackers[id] = t
}

func (h *Handler) getTracker(id string) (*progress.Tracker, bool) {
	h.trackersMu.Lock()
	defer h.trackersMu.Unlock()
	t, ok := h.trackers[id]
	return t, ok
}

func (h *Handler) dropTracker(id string) {
	h.trackersMu.Lock()
	defer h.trackersMu.Unlock()
	delete(h.trackers, id)
}

// Request helpers
func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func pathID(r *http.Request, prefix string) string {
	return strings.TrimPrefix(r.URL.Path, prefix)
}

func requestOrigin(r *http.Request) string {
	scheme := "https"
	if strings.Contains(r.Host, "localhost") || strings.HasPrefix(r.Host, "127.") {
		scheme = "http"
	}
	return scheme + "://" + r.Host
}
