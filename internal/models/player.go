package models

import (
	"fmt"
	"strings"
)

const (
	StandardStatCap = 99
	VelocityStatCap = 160
)

type Position string

const (
	Pitcher    Position = "P"
	Catcher    Position = "C"
	FirstBase  Position = "1B"
	SecondBase Position = "2B"
	ThirdBase  Position = "3B"
	Shortstop  Position = "SS"
	Outfield   Position = "OF"
)

type Role int

const (
	RolePitcher Role = iota
	RoleFielder
)

func (r Role) String() string {
	if r == RolePitcher {
		return "pitcher"
	}
	return "fielder"
}

func (p Position) Role() Role {
	if p == Pitcher {
		return RolePitcher
	}
	return RoleFielder
}

type Potential string

const (
	PotentialS Potential = "S"
	PotentialA Potential = "A"
	PotentialB Potential = "B"
	PotentialC Potential = "C"
)

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionNormal    Condition = "normal"
	ConditionBad       Condition = "bad"
	ConditionTerrible  Condition = "terrible"
)

// Multiplier scales a player's offensive or defensive contribution.
func (c Condition) Multiplier() float64 {
	switch c {
	case ConditionExcellent:
		return 1.2
	case ConditionGood:
		return 1.1
	case ConditionBad:
		return 0.9
	case ConditionTerrible:
		return 0.8
	default:
		return 1.0
	}
}

func (c Condition) Arrow() string {
	switch c {
	case ConditionExcellent:
		return "⬆️"
	case ConditionGood:
		return "↗️"
	case ConditionBad:
		return "↘️"
	case ConditionTerrible:
		return "⬇️"
	default:
		return "➡️"
	}
}

type PitchingAbilities struct {
	Velocity int
	Control  int
	Stamina  int
	Arm      int
}

type FieldingAbilities struct {
	Contact  int
	Power    int
	Speed    int
	Defense  int
	Arm      int
	Catching int
}

type Stats struct {
	Games      int
	AtBats     int
	Hits       int
	Homeruns   int
	RBI        int
	Innings    float64
	EarnedRuns int
	Wins       int
	Losses     int
	Saves      int
}

// Player carries exactly one of Pitching or Fielding, matching Position.Role().
type Player struct {
	ID        string
	Name      string
	Position  Position
	Age       int
	Potential Potential
	Condition Condition
	GrowthExp int
	Starter   bool

	Pitching *PitchingAbilities
	Fielding *FieldingAbilities

	Stats Stats
}

func (p *Player) Role() Role {
	return p.Position.Role()
}

func (p *Player) IsPitcher() bool {
	return p.Position.Role() == RolePitcher
}

func (p Player) Clone() Player {
	c := p
	if p.Pitching != nil {
		pa := *p.Pitching
		c.Pitching = &pa
	}
	if p.Fielding != nil {
		fa := *p.Fielding
		c.Fielding = &fa
	}
	return c
}

// BattingAverage formats hits/atBats the way box scores do, ".000" before the first at-bat.
func BattingAverage(s Stats) string {
	if s.AtBats == 0 {
		return ".000"
	}
	avg := fmt.Sprintf("%.3f", float64(s.Hits)/float64(s.AtBats))
	return strings.TrimPrefix(avg, "0")
}

// ERA formats earned runs per nine innings, "0.00" before the first inning.
func ERA(s Stats) string {
	if s.Innings == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(s.EarnedRuns)*9/s.Innings)
}

// AbilityRank grades an ability score from S down to G.
func AbilityRank(v int) string {
	switch {
	case v >= 90:
		return "S"
	case v >= 80:
		return "A"
	case v >= 70:
		return "B"
	case v >= 60:
		return "C"
	case v >= 50:
		return "D"
	case v >= 40:
		return "E"
	case v >= 30:
		return "F"
	default:
		return "G"
	}
}
