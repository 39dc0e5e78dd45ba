package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/omarshaarawi/pennantbot/internal/models"
)

type Drill string

const (
	DrillBatting  Drill = "batting"
	DrillSpeed    Drill = "speed"
	DrillDefense  Drill = "defense"
	DrillPitching Drill = "pitching"
)

var Drills = []Drill{DrillBatting, DrillSpeed, DrillDefense, DrillPitching}

var ErrUnknownDrill = errors.New("unknown drill")

func ParseDrill(s string) (Drill, error) {
	d := Drill(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Drills {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDrill, s)
}

const (
	trainingBaseExp  = 15
	trainingExpRange = 15
)

var drillTables = map[Drill][]Weighted[stat]{
	DrillBatting: {
		{0.5, statContact},
		{0.5, statPower},
	},
	DrillSpeed: {
		{1.0, statSpeed},
	},
	DrillDefense: {
		{0.5, statArm},
		{0.5, statDefense},
	},
	DrillPitching: {
		{0.3, statVelocity},
		{0.3, statControl},
		{0.4, statStamina},
	},
}

func (d Drill) targetRole() models.Role {
	if d == DrillPitching {
		return models.RolePitcher
	}
	return models.RoleFielder
}

// Train grants every targeted player a flat experience bonus and spends any
// overflow on the drill's stat pool, one point per level-up.
func Train(src Source, team models.Team, drill Drill) (models.Team, models.Report) {
	team = team.Clone()
	table := drillTables[drill]

	var lines []string
	count := 0
	for i := range team.Players {
		p := &team.Players[i]
		if p.Role() != drill.targetRole() {
			continue
		}
		count++

		p.GrowthExp += trainingBaseExp + intn(src, trainingExpRange)
		for p.GrowthExp >= GrowthThreshold {
			p.GrowthExp -= GrowthThreshold
			s := Pick(src, table)
			if _, moved := raise(p, s, 1); moved {
				lines = append(lines, fmt.Sprintf("%s -> %s UP!", p.Name, s))
			} else {
				lines = append(lines, fmt.Sprintf("%s -> %s already at cap (%d)", p.Name, s, s.limit()))
			}
		}
	}

	report := models.Report{
		Title: fmt.Sprintf("%s DRILL COMPLETE", strings.ToUpper(string(drill))),
		Lines: []string{fmt.Sprintf("Granted experience to %d players.", count)},
	}
	if len(lines) == 0 {
		report.Lines = append(report.Lines, "No ability gains.")
	} else {
		report.Lines = append(report.Lines, lines...)
	}
	return team, report
}
