package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/omarshaarawi/pennantbot/internal/engine"
	"github.com/omarshaarawi/pennantbot/internal/models"
	"github.com/omarshaarawi/pennantbot/internal/repository/memory"
)

var ErrNoSeason = errors.New("no season in progress")

// PennantService serialises season transitions and renders results for chat.
type PennantService struct {
	repo *memory.Repository
	src  engine.Source
	mu   sync.Mutex
}

func NewPennantService(repo *memory.Repository, src engine.Source) *PennantService {
	return &PennantService{repo: repo, src: src}
}

func (s *PennantService) NewSeason() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	season := engine.NewSeason(s.src)
	s.repo.SaveSeason(season)
	slog.Info("Season created", "season", season.ID, "teams", len(season.Teams))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚾ *New Pennant Race* (%d days)\n\n", season.Length))
	for _, t := range season.Teams {
		sb.WriteString(fmt.Sprintf("• *%s* (%s)\n", t.Name, t.Short))
	}
	return sb.String()
}

func (s *PennantService) season() (models.Season, error) {
	season, ok := s.repo.GetSeason()
	if !ok {
		return models.Season{}, ErrNoSeason
	}
	return season, nil
}

func (s *PennantService) SeasonFinished() bool {
	season, err := s.season()
	if err != nil {
		return false
	}
	return season.Finished()
}

func (s *PennantService) PlayDay() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	season, err := s.season()
	if err != nil {
		return "", err
	}

	next, results, err := engine.AdvanceDay(s.src, season)
	if err != nil {
		return "", fmt.Errorf("error advancing day %d: %w", season.Day, err)
	}
	s.repo.SaveSeason(next)

	growth := 0
	for _, r := range results {
		growth += len(r.GrowthEvents)
	}
	slog.Info("Day played", "season", next.ID, "day", season.Day, "games", len(results), "growth", growth)

	report := formatDay(next, season.Day, results)
	if next.Finished() {
		slog.Info("Season finished", "season", next.ID)
		report += "\n" + formatFinal(next)
	}
	return report, nil
}

func (s *PennantService) Practice(teamQuery, drillName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	season, err := s.season()
	if err != nil {
		return "", err
	}

	drill, err := engine.ParseDrill(drillName)
	if err != nil {
		return "", err
	}
	team, err := resolveTeam(season.Teams, teamQuery)
	if err != nil {
		return "", err
	}

	next, report, err := engine.Practice(s.src, season, team.ID, drill)
	if err != nil {
		return "", fmt.Errorf("error practicing %s: %w", team.Short, err)
	}
	s.repo.SaveSeason(next)
	slog.Info("Practice completed", "season", next.ID, "day", next.Day, "team", team.ID, "drill", drill)

	return formatReport(team, report), nil
}

func (s *PennantService) GetStandings() (string, error) {
	season, err := s.season()
	if err != nil {
		return "", err
	}
	return formatStandings(season, engine.Standings(season.Teams)), nil
}

func (s *PennantService) GetTeamRoster(teamQuery, roleName string) (string, error) {
	season, err := s.season()
	if err != nil {
		return "", err
	}
	team, err := resolveTeam(season.Teams, teamQuery)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(strings.TrimSpace(roleName)) {
	case "":
		return formatRoster(*team, engine.Roster(*team, models.RolePitcher), engine.Roster(*team, models.RoleFielder)), nil
	case "pitchers", "pitcher", "p":
		return formatRoster(*team, engine.Roster(*team, models.RolePitcher), nil), nil
	case "fielders", "fielder", "batters", "f":
		return formatRoster(*team, nil, engine.Roster(*team, models.RoleFielder)), nil
	default:
		return "", fmt.Errorf("unknown roster filter %q", roleName)
	}
}

func (s *PennantService) GetPlayer(query string) (string, error) {
	season, err := s.season()
	if err != nil {
		return "", err
	}
	player, team, err := resolvePlayer(season, query)
	if err != nil {
		return "", err
	}
	return formatPlayer(player, team), nil
}

func (s *PennantService) GetRecentResults(days int) (string, error) {
	season, err := s.season()
	if err != nil {
		return "", err
	}
	if len(season.History) == 0 {
		return "📅 No games played yet.", nil
	}

	latest := season.History[0].Day
	var sb strings.Builder
	sb.WriteString("📅 *Recent Results*\n")
	current := -1
	for _, r := range season.History {
		if r.Day <= latest-days {
			break
		}
		if r.Day != current {
			current = r.Day
			sb.WriteString(fmt.Sprintf("\n*Day %d*\n", r.Day))
		}
		sb.WriteString(formatScore(season, r) + "\n")
	}
	return sb.String(), nil
}

func (s *PennantService) GetLeaders() (string, error) {
	season, err := s.season()
	if err != nil {
		return "", err
	}
	leaders := engine.Leaders(season.Teams)

	var sb strings.Builder
	sb.WriteString("🥇 *League Leaders*\n\n")
	if len(leaders) == 0 {
		sb.WriteString("No qualified players yet.")
		return sb.String(), nil
	}
	for _, l := range leaders {
		sb.WriteString(fmt.Sprintf("%s: *%s* (%s) %s\n", l.Category, l.PlayerName, l.TeamShort, l.Value))
	}
	return sb.String(), nil
}

func (s *PennantService) GetStatus() (string, error) {
	season, err := s.season()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if season.Finished() {
		sb.WriteString(fmt.Sprintf("🏁 Season complete (%d days)\n", season.Length))
	} else {
		sb.WriteString(fmt.Sprintf("📆 Day %03d / %d\n", season.Day, season.Length))
	}
	if season.PracticedToday {
		sb.WriteString("Training: used today\n")
	} else {
		sb.WriteString("Training: available\n")
	}
	sb.WriteString(fmt.Sprintf("Games played: %d\n", len(season.History)))
	return sb.String(), nil
}
