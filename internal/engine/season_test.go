package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/omarshaarawi/pennantbot/internal/models"
)

func TestNewSeason(t *testing.T) {
	season := NewSeason(rand.New(rand.NewSource(1)))

	if season.Day != 1 || season.Length != SeasonLength {
		t.Errorf("expected day 1 of %d, got %d of %d", SeasonLength, season.Day, season.Length)
	}
	if season.ID == "" {
		t.Error("expected a season id")
	}
	if len(season.Teams) != TeamCount {
		t.Fatalf("expected %d teams, got %d", TeamCount, len(season.Teams))
	}

	pitchers, fielders := 0, 0
	for _, team := range season.Teams {
		if len(team.Players) != 14 {
			t.Errorf("expected 14 players on %s, got %d", team.ID, len(team.Players))
		}
		pitchers += len(team.Pitchers())
		fielders += len(team.Fielders())
		for _, p := range team.Players {
			if p.Stats != (models.Stats{}) {
				t.Errorf("expected zero career stats for %s, got %+v", p.ID, p.Stats)
			}
		}
	}
	if pitchers != 30 || fielders != 54 {
		t.Errorf("expected 30 pitchers and 54 fielders, got %d and %d", pitchers, fielders)
	}
}

func leagueGames(season models.Season) int {
	total := 0
	for _, team := range season.Teams {
		for _, p := range team.Players {
			total += p.Stats.Games
		}
	}
	return total
}

func TestAdvanceDay(t *testing.T) {
	src := rand.New(rand.NewSource(3))
	season := NewSeason(src)
	season.PracticedToday = true

	next, results, err := AdvanceDay(src, season)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if next.Day != 2 {
		t.Errorf("expected day 2, got %d", next.Day)
	}
	if next.PracticedToday {
		t.Error("expected training flag to reset")
	}
	if season.Day != 1 || leagueGames(season) != 0 {
		t.Error("expected the previous snapshot to be untouched")
	}

	// two starters and nine fielders per side, six sides.
	if got := leagueGames(next); got != 6*11 {
		t.Errorf("expected 66 player games, got %d", got)
	}

	seen := map[string]int{}
	for _, r := range results {
		seen[r.HomeID]++
		seen[r.AwayID]++
		if r.Day != 1 {
			t.Errorf("expected results for day 1, got %d", r.Day)
		}
	}
	if len(seen) != TeamCount {
		t.Errorf("expected every team to play once, got %v", seen)
	}
	if len(next.History) != 3 {
		t.Errorf("expected 3 history entries, got %d", len(next.History))
	}
}

func TestAdvanceDay_HistoryMostRecentFirst(t *testing.T) {
	src := rand.New(rand.NewSource(4))
	season := NewSeason(src)

	season, _, _ = AdvanceDay(src, season)
	season, _, _ = AdvanceDay(src, season)

	if len(season.History) != 6 {
		t.Fatalf("expected 6 results, got %d", len(season.History))
	}
	if season.History[0].Day != 2 || season.History[5].Day != 1 {
		t.Errorf("expected newest day first, got %d ... %d", season.History[0].Day, season.History[5].Day)
	}
}

func TestAdvanceDay_Guards(t *testing.T) {
	src := rand.New(rand.NewSource(5))

	over := NewSeason(src)
	over.Day = SeasonLength + 1
	if next, _, err := AdvanceDay(src, over); !errors.Is(err, ErrSeasonOver) || next.Day != over.Day {
		t.Errorf("expected ErrSeasonOver and no change, got %v", err)
	}

	short := NewSeason(src)
	short.Teams = short.Teams[:5]
	if next, results, err := AdvanceDay(src, short); !errors.Is(err, ErrIncompleteLeague) || next.Day != 1 || results != nil {
		t.Errorf("expected ErrIncompleteLeague and no change, got %v", err)
	}
}

func TestFullSeason_Invariants(t *testing.T) {
	src := rand.New(rand.NewSource(6))
	season := NewSeason(src)

	for day := 1; day <= SeasonLength; day++ {
		var err error
		if day%3 == 0 {
			season, _, err = Practice(src, season, season.Teams[day%TeamCount].ID, Drills[day%len(Drills)])
			if err != nil {
				t.Fatalf("practice on day %d: %v", day, err)
			}
		}
		season, _, err = AdvanceDay(src, season)
		if err != nil {
			t.Fatalf("advance on day %d: %v", day, err)
		}
	}

	if !season.Finished() {
		t.Errorf("expected season to be finished at day %d", season.Day)
	}
	if _, _, err := AdvanceDay(src, season); !errors.Is(err, ErrSeasonOver) {
		t.Errorf("expected ErrSeasonOver after the last day, got %v", err)
	}

	for _, team := range season.Teams {
		if team.Wins+team.Losses+team.Draws != SeasonLength {
			t.Errorf("expected %d decisions for %s, got %d", SeasonLength, team.ID, team.Wins+team.Losses+team.Draws)
		}
		for _, p := range team.Players {
			if p.GrowthExp < 0 || p.GrowthExp >= GrowthThreshold {
				t.Errorf("expected growthExp in [0, 200) for %s, got %d", p.ID, p.GrowthExp)
			}
			if pa := p.Pitching; pa != nil {
				if pa.Velocity > models.VelocityStatCap || pa.Control > 99 || pa.Stamina > 99 || pa.Arm > 99 {
					t.Errorf("pitcher %s over cap: %+v", p.ID, pa)
				}
			}
			if fa := p.Fielding; fa != nil {
				for _, v := range []int{fa.Contact, fa.Power, fa.Speed, fa.Defense, fa.Arm, fa.Catching} {
					if v > models.StandardStatCap {
						t.Errorf("fielder %s over cap: %+v", p.ID, fa)
					}
				}
			}
		}
	}
}

func TestPractice(t *testing.T) {
	src := rand.New(rand.NewSource(8))
	season := NewSeason(src)

	next, report, err := Practice(src, season, "tigers", DrillSpeed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !next.PracticedToday || season.PracticedToday {
		t.Error("expected only the new snapshot to carry the training flag")
	}
	if report.Title != "SPEED DRILL COMPLETE" {
		t.Errorf("expected speed drill title, got %q", report.Title)
	}

	again, _, err := Practice(src, next, "tigers", DrillSpeed)
	if !errors.Is(err, ErrAlreadyPracticed) {
		t.Errorf("expected ErrAlreadyPracticed, got %v", err)
	}
	team, _, _ := again.Team("tigers")
	before, _, _ := next.Team("tigers")
	for i := range team.Players {
		if team.Players[i].GrowthExp != before.Players[i].GrowthExp {
			t.Errorf("expected second practice to change nothing for %s", team.Players[i].ID)
		}
	}

	if _, _, err := Practice(src, season, "nobody", DrillSpeed); !errors.Is(err, ErrUnknownTeam) {
		t.Errorf("expected ErrUnknownTeam, got %v", err)
	}
	if _, _, err := Practice(src, season, "tigers", Drill("swimming")); !errors.Is(err, ErrUnknownDrill) {
		t.Errorf("expected ErrUnknownDrill, got %v", err)
	}
}
