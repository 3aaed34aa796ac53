package storage

import (
	"sync"

	"github.com/wrightlabs/sitewright/internal/models"
)

// PendingStore holds in-flight and ready sites for the current process.
// Nothing persists across restarts; a pending site lives until it is
// deployed or abandoned.
//
// Readers get value snapshots taken under the lock, because a background
// generation goroutine mutates sites through Update while HTTP handlers
// read them.
type PendingStore struct {
	sites map[string]*models.PendingSite
	mu    sync.RWMutex
}

func New() *PendingStore {
	return &PendingStore{
		sites: make(map[string]*models.PendingSite),
	}
}

func (s *PendingStore) Set(id string, site *models.PendingSite) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sites[id] = site
}

// Snapshot returns a copy of the stored site.
func (s *PendingStore) Snapshot(id string) (models.PendingSite, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	site, exists := s.sites[id]
	if !exists {
		return models.PendingSite{}, false
	}
	return *site, true
}

// SnapshotAll returns copies of every stored site.
func (s *PendingStore) SnapshotAll() []models.PendingSite {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.PendingSite, 0, len(s.sites))
	for _, site := range s.sites {
		result = append(result, *site)
	}
	return result
}

// Update applies fn to the stored site under the write lock.
func (s *PendingStore) Update(id string, fn func(*models.PendingSite)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	site, exists := s.sites[id]
	if !exists {
		return false
	}
	fn(site)
	return true
}

func (s *PendingStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sites, id)
}
