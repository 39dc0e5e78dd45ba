package models

import "fmt"

type GrowthEvent struct {
	PlayerID   string
	PlayerName string
	Stat       string
	Value      int
	AtCap      bool
}

func (e GrowthEvent) String() string {
	if e.AtCap {
		return fmt.Sprintf("[SYSTEM] %s :: %s MAXED (%d)", e.PlayerName, e.Stat, e.Value)
	}
	return fmt.Sprintf("[SYSTEM] %s :: %s UPGRADE (%d)", e.PlayerName, e.Stat, e.Value)
}

type GameResult struct {
	Day          int
	HomeID       string
	AwayID       string
	HomeScore    int
	AwayScore    int
	Details      []string
	GrowthEvents []GrowthEvent
}

func (r GameResult) Involves(teamID string) bool {
	return r.HomeID == teamID || r.AwayID == teamID
}

// Report is a training summary meant for display only.
type Report struct {
	Title string
	Lines []string
}
