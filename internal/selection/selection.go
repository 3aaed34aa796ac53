// Package selection enforces the one-asset-per-slot invariant within a run.
package selection

import (
	"sort"
	"sync"

	"github.com/wrightlabs/sitewright/internal/providers"
	"github.com/wrightlabs/sitewright/internal/scoring"
)

// UsedAssets is the set of image identifiers already bound to a slot within
// one generation run. It is shared by all concurrently resolving slots, so
// selection and registration happen under a single lock acquisition.
type UsedAssets struct {
	mu  sync.Mutex
	ids map[string]bool
}

func NewUsedAssets() *UsedAssets {
	return &UsedAssets{ids: make(map[string]bool)}
}

// SelectUnique picks the best unused candidate from a scored batch: drops
// non-positive scores and already-used identifiers, orders by descending
// score with batch order breaking ties, registers the winner and returns it.
// Returns nil when no acceptable candidate remains.
func (u *UsedAssets) SelectUnique(batch []scoring.Scored) *providers.Candidate {
	u.mu.Lock()
	defer u.mu.Unlock()

	eligible := make([]scoring.Scored, 0, len(batch))
	for _, sc := range batch {
		if sc.Score <= 0 || u.ids[sc.Identifier()] {
			continue
		}
		eligible = append(eligible, sc)
	}
	if len(eligible) == 0 {
		return nil
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Score > eligible[j].Score
	})

	winner := eligible[0].Candidate
	u.ids[winner.Identifier()] = true
	return &winner
}

// Register marks an identifier as consumed.
func (u *UsedAssets) Register(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ids[id] = true
}

// RegisterIfNew claims an identifier under one lock acquisition and reports
// whether the caller won it. Used for generated images, which bypass scoring
// but still participate in run-scoped uniqueness; the check and the claim
// must be one step so two slots racing on the same asset cannot both win.
func (u *UsedAssets) RegisterIfNew(id string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.ids[id] {
		return false
	}
	u.ids[id] = true
	return true
}

// Contains reports whether an identifier is already bound to a slot.
func (u *UsedAssets) Contains(id string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ids[id]
}

// Len returns the number of consumed identifiers.
func (u *UsedAssets) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.ids)
}
