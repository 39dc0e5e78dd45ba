package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/pennantbot/internal/engine"
	"github.com/omarshaarawi/pennantbot/internal/models"
)

const (
	teamMatchThreshold   = 0.6
	playerMatchThreshold = 0.7
)

func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(fuzzy.LevenshteinDistance(a, b))/float64(maxLen)
}

// resolveTeam matches an id or short code exactly, then falls back to the
// closest display name.
func resolveTeam(teams []models.Team, query string) (*models.Team, error) {
	query = strings.TrimSpace(query)
	for i := range teams {
		if strings.EqualFold(teams[i].ID, query) || strings.EqualFold(teams[i].Short, query) {
			return &teams[i], nil
		}
	}

	var bestMatch *models.Team
	bestScore := teamMatchThreshold
	for i := range teams {
		if score := similarity(query, teams[i].Name); score > bestScore {
			bestScore = score
			bestMatch = &teams[i]
		}
	}

	if bestMatch == nil {
		return nil, fmt.Errorf("%w: %s", engine.ErrUnknownTeam, query)
	}
	return bestMatch, nil
}

var ErrUnknownPlayer = errors.New("player not found")

func resolvePlayer(season models.Season, query string) (models.Player, models.Team, error) {
	query = strings.TrimSpace(query)
	if p, t, ok := engine.FindPlayer(season, query); ok {
		return p, t, nil
	}

	var (
		bestPlayer models.Player
		bestTeam   models.Team
		found      bool
	)
	bestScore := playerMatchThreshold
	for _, t := range season.Teams {
		for _, p := range t.Players {
			if score := similarity(query, p.Name); score > bestScore {
				bestScore = score
				bestPlayer, bestTeam, found = p, t, true
			}
		}
	}

	if !found {
		return models.Player{}, models.Team{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, query)
	}
	return bestPlayer, bestTeam, nil
}
