package models

type TeamConfig struct {
	ID    string
	Name  string
	Short string
	Color string
}

type Team struct {
	ID    string
	Name  string
	Short string
	Color string

	Players []Player

	Wins        int
	Losses      int
	Draws       int
	RunsScored  int
	RunsAllowed int
}

func (t Team) Clone() Team {
	c := t
	c.Players = make([]Player, len(t.Players))
	for i, p := range t.Players {
		c.Players[i] = p.Clone()
	}
	return c
}

func (t *Team) Pitchers() []Player {
	return t.byRole(RolePitcher)
}

func (t *Team) Fielders() []Player {
	return t.byRole(RoleFielder)
}

func (t *Team) byRole(role Role) []Player {
	var players []Player
	for _, p := range t.Players {
		if p.Role() == role {
			players = append(players, p)
		}
	}
	return players
}

func (t *Team) Player(id string) (*Player, bool) {
	for i := range t.Players {
		if t.Players[i].ID == id {
			return &t.Players[i], true
		}
	}
	return nil, false
}

// WinPercentage is wins over decided games, zero before the first decision.
func (t *Team) WinPercentage() float64 {
	decided := t.Wins + t.Losses
	if decided == 0 {
		return 0
	}
	return float64(t.Wins) / float64(decided)
}

type TeamStanding struct {
	Rank          int
	TeamID        string
	TeamName      string
	Abbreviation  string
	Wins          int
	Losses        int
	Draws         int
	RunsScored    int
	RunsAllowed   int
	WinPercentage float64
	GamesBehind   float64
}

// PercentageLabel renders the win fraction as ".583", or ".---" before any decided game.
func (s TeamStanding) PercentageLabel() string {
	if s.Wins+s.Losses == 0 {
		return ".---"
	}
	return BattingAverage(Stats{Hits: s.Wins, AtBats: s.Wins + s.Losses})
}

type Leader struct {
	Category   string
	PlayerName string
	TeamShort  string
	Value      string
}
