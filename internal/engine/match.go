package engine

import (
	"fmt"
	"math"

	"github.com/omarshaarawi/pennantbot/internal/models"
)

const (
	baseRunsRange     = 8
	offenseDivisor    = 1000
	defenseDivisor    = 1200
	blowoutChance     = 0.05
	blowoutRunsRange  = 5
	infieldHitChance  = 0.2
	extraRBIChance    = 0.3
	zeroRunBonusExp   = 30
	starterWinExp     = 50
	starterLossExp    = 10
	baseMatchExp      = 10
	expPerInning      = 5
	expPerHit         = 20
	expPerHomerun     = 40
	expPerRBI         = 10
	minStarterInnings = 5
	maxStarterInnings = 8
)

type outcome int

const (
	outcomeDraw outcome = iota
	outcomeWin
	outcomeLoss
)

// SimulateMatch plays one game between home and away. The arguments are left
// untouched; the returned teams carry updated conditions, stats, growth and records.
func SimulateMatch(src Source, home, away models.Team, day int) (models.GameResult, models.Team, models.Team) {
	home = home.Clone()
	away = away.Clone()

	refreshConditions(src, &home)
	refreshConditions(src, &away)

	homeOffense, homeDefense := teamPower(&home)
	awayOffense, awayDefense := teamPower(&away)

	homeScore := score(src, homeOffense, awayDefense)
	awayScore := score(src, awayOffense, homeDefense)
	if chance(src, blowoutChance) {
		homeScore += intn(src, blowoutRunsRange)
	}
	if chance(src, blowoutChance) {
		awayScore += intn(src, blowoutRunsRange)
	}

	homeOutcome, awayOutcome := outcomeDraw, outcomeDraw
	switch {
	case homeScore > awayScore:
		homeOutcome, awayOutcome = outcomeWin, outcomeLoss
	case awayScore > homeScore:
		homeOutcome, awayOutcome = outcomeLoss, outcomeWin
	}

	var events []models.GrowthEvent
	events = append(events, resolvePlayers(src, &home, awayScore, homeOutcome)...)
	events = append(events, resolvePlayers(src, &away, homeScore, awayOutcome)...)

	applyRecord(&home, homeScore, awayScore, homeOutcome)
	applyRecord(&away, awayScore, homeScore, awayOutcome)

	result := models.GameResult{
		Day:          day,
		HomeID:       home.ID,
		AwayID:       away.ID,
		HomeScore:    homeScore,
		AwayScore:    awayScore,
		Details:      []string{fmt.Sprintf("MATCH LOG: %s %d - %d %s", home.Short, homeScore, awayScore, away.Short)},
		GrowthEvents: events,
	}
	return result, home, away
}

func refreshConditions(src Source, t *models.Team) {
	for i := range t.Players {
		t.Players[i].Condition = NextCondition(src, t.Players[i].Condition)
	}
}

// teamPower sums fielder offense and pitcher defense, each scaled by condition.
func teamPower(t *models.Team) (offense, defense float64) {
	for _, p := range t.Players {
		mult := p.Condition.Multiplier()
		if pa := p.Pitching; pa != nil {
			defense += float64(pa.Control+pa.Stamina) * mult
		} else if fa := p.Fielding; fa != nil {
			offense += float64(fa.Contact+fa.Power+fa.Speed) * mult
		}
	}
	return offense, defense
}

func score(src Source, offense, opponentDefense float64) int {
	raw := uniform(src, 0, baseRunsRange) + offense/offenseDivisor - opponentDefense/defenseDivisor
	return int(math.Floor(math.Max(0, raw)))
}

func resolvePlayers(src Source, t *models.Team, opponentScore int, result outcome) []models.GrowthEvent {
	var events []models.GrowthEvent
	for i := range t.Players {
		p := &t.Players[i]

		var exp float64
		if p.IsPitcher() {
			if !p.Starter {
				continue
			}
			exp = resolveStarter(src, p, opponentScore, result)
		} else {
			exp = resolveBatter(src, p)
		}

		p.GrowthExp += int(math.Floor(exp * ageFactor(p.Age)))
		events = append(events, Grow(src, p)...)
	}
	return events
}

func resolveStarter(src Source, p *models.Player, opponentScore int, result outcome) float64 {
	innings := uniform(src, minStarterInnings, maxStarterInnings)
	earned := int(math.Floor(float64(opponentScore) / 9 * innings))

	p.Stats.Games++
	p.Stats.Innings += innings
	p.Stats.EarnedRuns += earned

	exp := float64(baseMatchExp)
	switch result {
	case outcomeWin:
		p.Stats.Wins++
		exp += starterWinExp
	case outcomeLoss:
		p.Stats.Losses++
		exp += starterLossExp
	}
	exp += innings * expPerInning
	if earned == 0 {
		exp += zeroRunBonusExp
	}
	return exp
}

func resolveBatter(src Source, p *models.Player) float64 {
	fa := p.Fielding
	atBats := intn(src, 2) + 3

	hits := 0
	successRate := float64(fa.Contact) * p.Condition.Multiplier() / 300
	if chance(src, successRate) {
		hits = max(1, int(math.Ceil(src.Float64()*2)))
	} else if chance(src, infieldHitChance) {
		hits = 1
	}

	homeruns := 0
	if hits > 0 && chance(src, float64(fa.Power)/200) {
		homeruns = 1
	}
	rbi := homeruns
	if hits > 0 && chance(src, extraRBIChance) {
		rbi++
	}

	p.Stats.Games++
	p.Stats.AtBats += atBats
	p.Stats.Hits += hits
	p.Stats.Homeruns += homeruns
	p.Stats.RBI += rbi

	return float64(baseMatchExp + hits*expPerHit + homeruns*expPerHomerun + rbi*expPerRBI)
}

// ageFactor favours young players and slows veterans.
func ageFactor(age int) float64 {
	switch {
	case age < 22:
		return 1.5
	case age < 26:
		return 1.2
	case age > 32:
		return 0.5
	default:
		return 1.0
	}
}

func applyRecord(t *models.Team, runsFor, runsAgainst int, result outcome) {
	switch result {
	case outcomeWin:
		t.Wins++
	case outcomeLoss:
		t.Losses++
	default:
		t.Draws++
	}
	t.RunsScored += runsFor
	t.RunsAllowed += runsAgainst
}
