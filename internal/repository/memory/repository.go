package memory

import (
	"sync"

	"github.com/omarshaarawi/pennantbot/internal/models"
)

// Repository holds the current season snapshot. Snapshots are treated as
// immutable, so callers always receive a copy.
type Repository struct {
	season *models.Season
	mu     sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveSeason(season models.Season) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := season.Clone()
	r.season = &s
}

func (r *Repository) GetSeason() (models.Season, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.season == nil {
		return models.Season{}, false
	}
	return r.season.Clone(), true
}
