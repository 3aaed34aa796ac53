package storage

import (
	"testing"
	"time"

	"github.com/wrightlabs/sitewright/internal/models"
)

func TestStoreRoundTrip(t *testing.T) {
	store := New()

	site := &models.PendingSite{
		ID:        "abc",
		Status:    models.StatusGenerating,
		CreatedAt: time.Now(),
	}
	store.Set("abc", site)

	got, ok := store.Snapshot("abc")
	if !ok || got.ID != "abc" {
		t.Fatalf("Snapshot returned %v, %v", got, ok)
	}

	if _, ok := store.Snapshot("missing"); ok {
		t.Error("expected miss for unknown id")
	}

	if n := len(store.SnapshotAll()); n != 1 {
		t.Errorf("SnapshotAll returned %d entries", n)
	}

	store.Delete("abc")
	if _, ok := store.Snapshot("abc"); ok {
		t.Error("expected site to be deleted")
	}
}

func TestStoreUpdate(t *testing.T) {
	store := New()
	store.Set("abc", &models.PendingSite{ID: "abc", Status: models.StatusGenerating})

	ok := store.Update("abc", func(site *models.PendingSite) {
		site.Status = models.StatusReady
	})
	if !ok {
		t.Fatal("Update reported missing site")
	}

	got, _ := store.Snapshot("abc")
	if got.Status != models.StatusReady {
		t.Errorf("status = %s", got.Status)
	}

	if store.Update("missing", func(*models.PendingSite) {}) {
		t.Error("Update of unknown id should report false")
	}
}
