package service

import (
	"fmt"
	"strings"

	"github.com/omarshaarawi/pennantbot/internal/engine"
	"github.com/omarshaarawi/pennantbot/internal/models"
)

func teamShort(season models.Season, id string) string {
	if t, _, ok := season.Team(id); ok {
		return t.Short
	}
	return "Unknown"
}

func formatScore(season models.Season, r models.GameResult) string {
	return fmt.Sprintf("%s %d - %d %s", teamShort(season, r.HomeID), r.HomeScore, r.AwayScore, teamShort(season, r.AwayID))
}

func formatDay(season models.Season, day int, results []models.GameResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚾ *Day %d Results*\n\n", day))

	var growth []models.GrowthEvent
	for _, r := range results {
		sb.WriteString(formatScore(season, r))
		if r.HomeScore == r.AwayScore {
			sb.WriteString(" (Draw)")
		}
		sb.WriteString("\n")
		growth = append(growth, r.GrowthEvents...)
	}

	if len(growth) > 0 {
		sb.WriteString("\n📈 *Growth*\n")
		for _, e := range growth {
			sb.WriteString(fmt.Sprintf("`%s`\n", e))
		}
	}
	return sb.String()
}

func formatFinal(season models.Season) string {
	var sb strings.Builder
	sb.WriteString("🏁 *Season Complete*\n\n")
	for _, st := range engine.Standings(season.Teams) {
		sb.WriteString(fmt.Sprintf("%d. *%s* %d-%d-%d\n", st.Rank, st.TeamName, st.Wins, st.Losses, st.Draws))
	}
	return sb.String()
}

func formatStandings(season models.Season, standings []models.TeamStanding) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏆 *Standings* (Day %d)\n\n", min(season.Day, season.Length)))
	for _, team := range standings {
		gb := "-"
		if team.Rank > 1 {
			gb = fmt.Sprintf("%.1f", team.GamesBehind)
		}
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s)\n", team.Rank, team.TeamName, team.Abbreviation))
		sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d  Pct: %s  GB: %s\n", team.Wins, team.Losses, team.Draws, team.PercentageLabel(), gb))
		sb.WriteString(fmt.Sprintf("   Runs: %d scored, %d allowed\n\n", team.RunsScored, team.RunsAllowed))
	}
	return sb.String()
}

func formatRoster(team models.Team, pitchers, fielders []models.Player) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s Roster*\n", team.Name))

	if len(pitchers) > 0 {
		sb.WriteString("\n*Pitchers:*\n")
		for _, p := range pitchers {
			role := "RP"
			if p.Starter {
				role = "SP"
			}
			pa := p.Pitching
			sb.WriteString(fmt.Sprintf("▫️ %s %s %s %dkm/h CON %s STA %s - ERA %s, %d-%d\n",
				role, p.Name, p.Condition.Arrow(), pa.Velocity,
				models.AbilityRank(pa.Control), models.AbilityRank(pa.Stamina),
				models.ERA(p.Stats), p.Stats.Wins, p.Stats.Losses))
		}
	}

	if len(fielders) > 0 {
		sb.WriteString("\n*Fielders:*\n")
		for _, p := range fielders {
			fa := p.Fielding
			sb.WriteString(fmt.Sprintf("▫️ %s %s %s MEET %s POW %s SPD %s - AVG %s, %d HR\n",
				p.Position, p.Name, p.Condition.Arrow(),
				models.AbilityRank(fa.Contact), models.AbilityRank(fa.Power), models.AbilityRank(fa.Speed),
				models.BattingAverage(p.Stats), p.Stats.Homeruns))
		}
	}
	return sb.String()
}

func formatPlayer(p models.Player, team models.Team) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* (%s - %s)\n", p.Name, p.Position, team.Short))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("Age %d, Potential %s, Condition %s %s\n", p.Age, p.Potential, p.Condition, p.Condition.Arrow()))
	sb.WriteString(fmt.Sprintf("Growth: %d / 200\n\n", p.GrowthExp))

	ability := func(label string, v int) {
		sb.WriteString(fmt.Sprintf("%-9s %s %d\n", label, models.AbilityRank(v), v))
	}
	if pa := p.Pitching; pa != nil {
		sb.WriteString(fmt.Sprintf("Velocity  %dkm/h\n", pa.Velocity))
		ability("Control", pa.Control)
		ability("Stamina", pa.Stamina)
		ability("Arm", pa.Arm)
		sb.WriteString(fmt.Sprintf("\nERA %s, %.1f IP, %d-%d, %d G\n",
			models.ERA(p.Stats), p.Stats.Innings, p.Stats.Wins, p.Stats.Losses, p.Stats.Games))
	}
	if fa := p.Fielding; fa != nil {
		ability("Contact", fa.Contact)
		ability("Power", fa.Power)
		ability("Speed", fa.Speed)
		ability("Defense", fa.Defense)
		ability("Arm", fa.Arm)
		ability("Catching", fa.Catching)
		sb.WriteString(fmt.Sprintf("\nAVG %s, %d H / %d AB, %d HR, %d RBI, %d G\n",
			models.BattingAverage(p.Stats), p.Stats.Hits, p.Stats.AtBats, p.Stats.Homeruns, p.Stats.RBI, p.Stats.Games))
	}
	return sb.String()
}

func formatReport(team *models.Team, report models.Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏋️ *%s* - %s\n\n", report.Title, team.Name))
	for _, line := range report.Lines {
		sb.WriteString(line + "\n")
	}
	return sb.String()
}
