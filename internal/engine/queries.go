package engine

import (
	"fmt"
	"sort"

	"github.com/omarshaarawi/pennantbot/internal/models"
)

// Standings ranks teams by win percentage. Ties keep roster order.
func Standings(teams []models.Team) []models.TeamStanding {
	sorted := make([]models.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WinPercentage() > sorted[j].WinPercentage()
	})

	standings := make([]models.TeamStanding, len(sorted))
	for i, t := range sorted {
		standings[i] = models.TeamStanding{
			Rank:          i + 1,
			TeamID:        t.ID,
			TeamName:      t.Name,
			Abbreviation:  t.Short,
			Wins:          t.Wins,
			Losses:        t.Losses,
			Draws:         t.Draws,
			RunsScored:    t.RunsScored,
			RunsAllowed:   t.RunsAllowed,
			WinPercentage: t.WinPercentage(),
		}
		if i > 0 {
			leader := sorted[0]
			standings[i].GamesBehind = float64((leader.Wins-leader.Losses)-(t.Wins-t.Losses)) / 2
		}
	}
	return standings
}

func Roster(team models.Team, role models.Role) []models.Player {
	if role == models.RolePitcher {
		return team.Pitchers()
	}
	return team.Fielders()
}

// FindPlayer looks a player up by id across the league.
func FindPlayer(season models.Season, id string) (models.Player, models.Team, bool) {
	for _, t := range season.Teams {
		if p, ok := t.Player(id); ok {
			return *p, t, true
		}
	}
	return models.Player{}, models.Team{}, false
}

type rated struct {
	player models.Player
	team   models.Team
	value  float64
}

// Leaders reports the best batting average, homerun total, ERA and win total.
// Categories with no qualifying player are omitted.
func Leaders(teams []models.Team) []models.Leader {
	var avg, hr, era, wins *rated
	better := func(cur *rated, cand rated, lower bool) *rated {
		if cur == nil || (lower && cand.value < cur.value) || (!lower && cand.value > cur.value) {
			return &cand
		}
		return cur
	}

	for _, t := range teams {
		for _, p := range t.Players {
			s := p.Stats
			if p.IsPitcher() {
				if s.Innings > 0 {
					era = better(era, rated{p, t, float64(s.EarnedRuns) * 9 / s.Innings}, true)
				}
				if s.Wins > 0 {
					wins = better(wins, rated{p, t, float64(s.Wins)}, false)
				}
				continue
			}
			if s.AtBats > 0 {
				avg = better(avg, rated{p, t, float64(s.Hits) / float64(s.AtBats)}, false)
			}
			if s.Homeruns > 0 {
				hr = better(hr, rated{p, t, float64(s.Homeruns)}, false)
			}
		}
	}

	var leaders []models.Leader
	add := func(category string, r *rated, value string) {
		leaders = append(leaders, models.Leader{
			Category:   category,
			PlayerName: r.player.Name,
			TeamShort:  r.team.Short,
			Value:      value,
		})
	}
	if avg != nil {
		add("Batting Average", avg, models.BattingAverage(avg.player.Stats))
	}
	if hr != nil {
		add("Home Runs", hr, fmt.Sprintf("%d", hr.player.Stats.Homeruns))
	}
	if era != nil {
		add("ERA", era, models.ERA(era.player.Stats))
	}
	if wins != nil {
		add("Wins", wins, fmt.Sprintf("%d", wins.player.Stats.Wins))
	}
	return leaders
}
