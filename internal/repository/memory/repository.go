package memory

import (
	"sync"
	"time"

	"github.com/mwalto7/statbot/internal/models"
)

// Repository caches the most recent league snapshot so a burst of report
// requests does not refetch the whole league each time.
type Repository struct {
	league *models.League
	mu     sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveLeague(league *models.League) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.league = league
}

// GetLeague returns the cached snapshot, or nil when none has been saved
// or the cached one is older than maxAge.
func (r *Repository) GetLeague(maxAge time.Duration) *models.League {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.league == nil || time.Since(r.league.FetchedAt) > maxAge {
		return nil
	}
	return r.league
}
