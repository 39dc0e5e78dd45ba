package engine

import (
	"fmt"
	"math"

	"github.com/omarshaarawi/pennantbot/internal/models"
)

var DefaultTeams = []models.TeamConfig{
	{ID: "dragons", Name: "NEO DRAGONS", Short: "NDR", Color: "red"},
	{ID: "tigers", Name: "CYBER TIGERS", Short: "CTG", Color: "yellow"},
	{ID: "blues", Name: "WAVE RUNNERS", Short: "WAV", Color: "blue"},
	{ID: "carps", Name: "RED PHANTOMS", Short: "RPH", Color: "rose"},
	{ID: "stars", Name: "SIRIUS STARS", Short: "STR", Color: "orange"},
	{ID: "swallows", Name: "AERO SWALLOWS", Short: "ASW", Color: "green"},
}

const (
	PitchersPerTeam = 5
	startersPerTeam = 2
)

var fielderSlots = []models.Position{
	models.Catcher, models.FirstBase, models.SecondBase, models.ThirdBase, models.Shortstop,
	models.Outfield, models.Outfield, models.Outfield, models.Outfield,
}

var potentialTable = []Weighted[models.Potential]{
	{0.50, models.PotentialC},
	{0.30, models.PotentialB},
	{0.15, models.PotentialA},
	{0.05, models.PotentialS},
}

func potentialMultiplier(p models.Potential) float64 {
	switch p {
	case models.PotentialS:
		return 1.3
	case models.PotentialA:
		return 1.15
	case models.PotentialB:
		return 1.05
	default:
		return 0.9
	}
}

// GeneratePlayer rolls a new player. Potential scales the initial rolls only.
func GeneratePlayer(src Source, id string, position models.Position) models.Player {
	potential := Pick(src, potentialTable)
	mult := potentialMultiplier(potential)
	roll := func(lo, hi float64) int {
		v := int(math.Floor(uniform(src, lo, hi) * mult))
		return clamp(v, models.StandardStatCap)
	}

	p := models.Player{
		ID:        id,
		Name:      RandomName(src),
		Position:  position,
		Age:       18 + int(math.Floor(src.Float64()*src.Float64()*15)),
		Potential: potential,
	}

	if position.Role() == models.RolePitcher {
		p.Pitching = &models.PitchingAbilities{
			Velocity: roll(30, 85),
			Control:  roll(30, 85),
			Stamina:  roll(30, 90),
			Arm:      roll(30, 90),
		}
	} else {
		p.Fielding = &models.FieldingAbilities{
			Contact:  roll(30, 85),
			Power:    roll(20, 85),
			Speed:    roll(30, 85),
			Defense:  roll(30, 85),
			Arm:      roll(30, 90),
			Catching: roll(30, 85),
		}
	}

	p.Condition = RandomCondition(src)
	return p
}

// CreateTeam builds the fixed 14-man roster: five pitchers (the first two are
// starters) followed by nine fielders in slot order.
func CreateTeam(src Source, cfg models.TeamConfig) models.Team {
	team := models.Team{
		ID:      cfg.ID,
		Name:    cfg.Name,
		Short:   cfg.Short,
		Color:   cfg.Color,
		Players: make([]models.Player, 0, PitchersPerTeam+len(fielderSlots)),
	}

	for i := 1; i <= PitchersPerTeam; i++ {
		p := GeneratePlayer(src, fmt.Sprintf("%s-p%d", cfg.ID, i), models.Pitcher)
		p.Starter = i <= startersPerTeam
		team.Players = append(team.Players, p)
	}
	for i, pos := range fielderSlots {
		team.Players = append(team.Players, GeneratePlayer(src, fmt.Sprintf("%s-f%d", cfg.ID, i), pos))
	}

	return team
}

func RosterSize() int {
	return PitchersPerTeam + len(fielderSlots)
}

func clamp(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}
