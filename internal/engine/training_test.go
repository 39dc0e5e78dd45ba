package engine

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/omarshaarawi/pennantbot/internal/models"
)

func TestParseDrill(t *testing.T) {
	tests := []struct {
		in      string
		want    Drill
		wantErr bool
	}{
		{"batting", DrillBatting, false},
		{" Pitching ", DrillPitching, false},
		{"DEFENSE", DrillDefense, false},
		{"speed", DrillSpeed, false},
		{"swimming", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDrill(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownDrill) {
				t.Errorf("expected ErrUnknownDrill for %q, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("expected %s for %q, got %s (%v)", tt.want, tt.in, got, err)
		}
	}
}

func TestTrain_TargetsRole(t *testing.T) {
	team := CreateTeam(rand.New(rand.NewSource(1)), DefaultTeams[2])

	tests := []struct {
		drill Drill
		role  models.Role
	}{
		{DrillPitching, models.RolePitcher},
		{DrillBatting, models.RoleFielder},
		{DrillSpeed, models.RoleFielder},
		{DrillDefense, models.RoleFielder},
	}

	for _, tt := range tests {
		t.Run(string(tt.drill), func(t *testing.T) {
			trained, report := Train(rand.New(rand.NewSource(2)), team, tt.drill)

			for i, p := range trained.Players {
				gained := p.GrowthExp != team.Players[i].GrowthExp
				if p.Role() == tt.role && !gained {
					t.Errorf("expected %s to gain experience", p.ID)
				}
				if p.Role() != tt.role && gained {
					t.Errorf("expected %s to be left out", p.ID)
				}
				if p.GrowthExp < 15 || p.GrowthExp >= 30 {
					if p.Role() == tt.role {
						t.Errorf("expected gain in [15, 30) for %s, got %d", p.ID, p.GrowthExp)
					}
				}
			}
			want := strings.ToUpper(string(tt.drill)) + " DRILL COMPLETE"
			if report.Title != want {
				t.Errorf("expected title %q, got %q", want, report.Title)
			}
			if len(report.Lines) != 2 || report.Lines[1] != "No ability gains." {
				t.Errorf("expected summary-only report, got %v", report.Lines)
			}
		})
	}
}

func TestTrain_LevelUpRaisesDrillStat(t *testing.T) {
	team := models.Team{ID: "t", Players: []models.Player{newFielder(50)}}
	team.Players[0].GrowthExp = 190

	// 15 xp, then contact.
	trained, report := Train(&scriptedSource{values: []float64{0.0, 0.2}}, team, DrillBatting)

	p := trained.Players[0]
	if p.Fielding.Contact != 51 || p.GrowthExp != 5 {
		t.Errorf("expected contact 51 and 5 xp left, got %d and %d", p.Fielding.Contact, p.GrowthExp)
	}
	if len(report.Lines) != 2 || report.Lines[1] != "HAWK-REX -> Contact UP!" {
		t.Errorf("unexpected report %v", report.Lines)
	}
	if team.Players[0].Fielding.Contact != 50 {
		t.Error("expected the input team to be untouched")
	}
}

func TestTrain_PitchingAtCap(t *testing.T) {
	team := CreateTeam(rand.New(rand.NewSource(3)), DefaultTeams[3])
	for i := range team.Players {
		if pa := team.Players[i].Pitching; pa != nil {
			pa.Velocity = models.VelocityStatCap
			pa.Control = models.StandardStatCap
			pa.Stamina = models.StandardStatCap
			team.Players[i].GrowthExp = 199
		}
	}

	trained, report := Train(rand.New(rand.NewSource(4)), team, DrillPitching)

	lines := report.Lines[1:]
	if len(lines) != 5 {
		t.Fatalf("expected 5 level-up lines, got %v", report.Lines)
	}
	for _, line := range lines {
		if !strings.Contains(line, "already at cap") {
			t.Errorf("expected only at-cap lines, got %q", line)
		}
	}
	for i, p := range trained.Players {
		if p.Pitching == nil {
			continue
		}
		if *p.Pitching != *team.Players[i].Pitching {
			t.Errorf("expected no stat change for %s, got %+v", p.ID, p.Pitching)
		}
	}
}
