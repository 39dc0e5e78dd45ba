package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/omarshaarawi/pennantbot/internal/models"
)

const (
	SeasonLength = 143
	TeamCount    = 6
)

var (
	ErrSeasonOver       = errors.New("season is over")
	ErrIncompleteLeague = errors.New("league does not have the required number of teams")
	ErrAlreadyPracticed = errors.New("training already used today")
	ErrUnknownTeam      = errors.New("unknown team")
)

func NewSeason(src Source) models.Season {
	teams := make([]models.Team, len(DefaultTeams))
	for i, cfg := range DefaultTeams {
		teams[i] = CreateTeam(src, cfg)
	}
	return models.Season{
		ID:        uuid.NewString(),
		Day:       1,
		Length:    SeasonLength,
		Teams:     teams,
		StartedAt: time.Now(),
	}
}

// AdvanceDay pairs the six teams at random and plays the day's three games.
// On error the season is returned unchanged.
func AdvanceDay(src Source, season models.Season) (models.Season, []models.GameResult, error) {
	if season.Finished() {
		return season, nil, ErrSeasonOver
	}
	if len(season.Teams) != TeamCount {
		return season, nil, fmt.Errorf("%w: have %d, need %d", ErrIncompleteLeague, len(season.Teams), TeamCount)
	}

	next := season.Clone()

	order := make([]int, len(next.Teams))
	for i := range order {
		order[i] = i
	}
	src.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	results := make([]models.GameResult, 0, TeamCount/2)
	for i := 0; i+1 < len(order); i += 2 {
		h, a := order[i], order[i+1]
		result, home, away := SimulateMatch(src, next.Teams[h], next.Teams[a], next.Day)
		next.Teams[h] = home
		next.Teams[a] = away
		results = append(results, result)
	}

	next.History = append(append([]models.GameResult(nil), results...), next.History...)
	next.PracticedToday = false
	next.Day++
	return next, results, nil
}

// Practice runs one drill for a team. Only one drill is allowed per day.
func Practice(src Source, season models.Season, teamID string, drill Drill) (models.Season, models.Report, error) {
	if season.PracticedToday {
		return season, models.Report{}, ErrAlreadyPracticed
	}
	if _, ok := drillTables[drill]; !ok {
		return season, models.Report{}, fmt.Errorf("%w: %q", ErrUnknownDrill, drill)
	}
	_, idx, ok := season.Team(teamID)
	if !ok {
		return season, models.Report{}, fmt.Errorf("%w: %q", ErrUnknownTeam, teamID)
	}

	next := season.Clone()
	team, report := Train(src, next.Teams[idx], drill)
	next.Teams[idx] = team
	next.PracticedToday = true
	return next, report, nil
}
