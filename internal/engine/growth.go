package engine

import "github.com/omarshaarawi/pennantbot/internal/models"

// GrowthThreshold is the experience consumed by one level-up.
const GrowthThreshold = 200

type stat int

const (
	statNone stat = iota
	statContact
	statPower
	statSpeed
	statDefense
	statArm
	statCatching
	statVelocity
	statControl
	statStamina
)

var statNames = map[stat]string{
	statContact:  "Contact",
	statPower:    "Power",
	statSpeed:    "Speed",
	statDefense:  "Defense",
	statArm:      "Arm",
	statCatching: "Catching",
	statVelocity: "Velocity",
	statControl:  "Control",
	statStamina:  "Stamina",
}

func (s stat) String() string {
	return statNames[s]
}

func (s stat) limit() int {
	if s == statVelocity {
		return models.VelocityStatCap
	}
	return models.StandardStatCap
}

// field returns the ability backing s, or nil if the player's role has no such ability.
func (s stat) field(p *models.Player) *int {
	if pa := p.Pitching; pa != nil {
		switch s {
		case statVelocity:
			return &pa.Velocity
		case statControl:
			return &pa.Control
		case statStamina:
			return &pa.Stamina
		case statArm:
			return &pa.Arm
		}
		return nil
	}
	if fa := p.Fielding; fa != nil {
		switch s {
		case statContact:
			return &fa.Contact
		case statPower:
			return &fa.Power
		case statSpeed:
			return &fa.Speed
		case statDefense:
			return &fa.Defense
		case statArm:
			return &fa.Arm
		case statCatching:
			return &fa.Catching
		}
	}
	return nil
}

var pitcherGrowth = []Weighted[stat]{
	{0.3, statStamina},
	{0.3, statControl},
	{0.2, statVelocity},
	{0.1, statArm},
	{0.1, statNone},
}

var fielderGrowth = []Weighted[stat]{
	{0.2, statContact},
	{0.2, statPower},
	{0.2, statSpeed},
	{0.2, statDefense},
	{0.1, statArm},
	{0.1, statCatching},
}

// raise adds amount to the stat, truncated at its cap. It reports the new value
// and whether the stat actually moved.
func raise(p *models.Player, s stat, amount int) (int, bool) {
	f := s.field(p)
	if f == nil {
		return 0, false
	}
	before := *f
	*f = clamp(before+amount, s.limit())
	return *f, *f > before
}

// Grow spends accumulated experience on role-weighted stat increases until
// GrowthExp drops below the threshold. A no-op draw still consumes experience.
func Grow(src Source, p *models.Player) []models.GrowthEvent {
	table := fielderGrowth
	if p.IsPitcher() {
		table = pitcherGrowth
	}

	var events []models.GrowthEvent
	for p.GrowthExp >= GrowthThreshold {
		p.GrowthExp -= GrowthThreshold
		amount := intn(src, 2) + 1

		s := Pick(src, table)
		if s == statNone {
			continue
		}
		if s == statVelocity {
			amount = 1
		}

		value, moved := raise(p, s, amount)
		events = append(events, models.GrowthEvent{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Stat:       s.String(),
			Value:      value,
			AtCap:      !moved,
		})
	}
	return events
}
