package service

import (
	"errors"
	"testing"

	"github.com/omarshaarawi/pennantbot/internal/engine"
	"github.com/omarshaarawi/pennantbot/internal/models"
)

func TestResolveTeam(t *testing.T) {
	teams := []models.Team{
		{ID: "dragons", Name: "NEO DRAGONS", Short: "NDR"},
		{ID: "tigers", Name: "CYBER TIGERS", Short: "CTG"},
		{ID: "stars", Name: "SIRIUS STARS", Short: "STR"},
	}

	tests := []struct {
		query string
		want  string
	}{
		{"dragons", "dragons"},
		{"ctg", "tigers"},
		{"Sirius Stars", "stars"},
		{"cyber tiger", "tigers"},
		{"neo dragon", "dragons"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			team, err := resolveTeam(teams, tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if team.ID != tt.want {
				t.Errorf("expected %s, got %s", tt.want, team.ID)
			}
		})
	}

	if _, err := resolveTeam(teams, "pirates"); !errors.Is(err, engine.ErrUnknownTeam) {
		t.Errorf("expected ErrUnknownTeam, got %v", err)
	}
}

func TestResolvePlayer(t *testing.T) {
	season := models.Season{Teams: []models.Team{{ID: "t", Short: "TTT", Players: []models.Player{
		{ID: "t-p1", Name: "FOX-ACE", Position: models.Pitcher, Pitching: &models.PitchingAbilities{}},
		{ID: "t-f0", Name: "KUSANAGI-NEO", Position: models.Catcher, Fielding: &models.FieldingAbilities{}},
	}}}}

	p, team, err := resolvePlayer(season, "kusanagi neo")
	if err != nil || p.ID != "t-f0" || team.ID != "t" {
		t.Errorf("expected KUSANAGI-NEO on t, got %+v (%v)", p, err)
	}

	p, _, err = resolvePlayer(season, "t-p1")
	if err != nil || p.Name != "FOX-ACE" {
		t.Errorf("expected lookup by id, got %+v (%v)", p, err)
	}

	if _, _, err := resolvePlayer(season, "nobody at all"); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("expected ErrUnknownPlayer, got %v", err)
	}
}
