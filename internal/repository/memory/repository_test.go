package memory

import (
	"testing"

	"github.com/omarshaarawi/pennantbot/internal/models"
)

func TestRepository_Empty(t *testing.T) {
	repo := NewRepository()
	if _, ok := repo.GetSeason(); ok {
		t.Error("expected no season in a new repository")
	}
}

func TestRepository_SaveReturnsCopies(t *testing.T) {
	repo := NewRepository()
	season := models.Season{
		ID:  "s1",
		Day: 4,
		Teams: []models.Team{{ID: "t", Players: []models.Player{
			{ID: "t-f0", Position: models.Catcher, Fielding: &models.FieldingAbilities{Contact: 50}},
		}}},
	}
	repo.SaveSeason(season)

	season.Teams[0].Players[0].Fielding.Contact = 99

	got, ok := repo.GetSeason()
	if !ok {
		t.Fatal("expected a stored season")
	}
	if got.Teams[0].Players[0].Fielding.Contact != 50 {
		t.Errorf("expected stored snapshot to be isolated from caller, got %d", got.Teams[0].Players[0].Fielding.Contact)
	}

	got.Day = 10
	again, _ := repo.GetSeason()
	if again.Day != 4 {
		t.Errorf("expected stored day 4, got %d", again.Day)
	}
}
