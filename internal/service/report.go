package service

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/mwalto7/statbot/internal/models"
	"github.com/mwalto7/statbot/internal/stats"
)

// WeeklyAwardsReport hands out the trophies for the last completed week:
// scoreboard extremes, lineup efficiency, the best QB/RB/receiver trio,
// and the points left on the bench.
func (s *StatsService) WeeklyAwardsReport() (string, error) {
	league, err := s.league()
	if err != nil {
		return "", err
	}
	week := league.CompletedWeek()
	if week < 1 {
		return "The season hasn't started yet.", nil
	}
	lineups := s.lineups(league, week)

	// Walk league.Teams rather than the lineups map so tied owners come
	// out in league order every run.
	var scores, effs, trios, benches, qbAvgs []ownerStat
	for _, team := range league.Teams {
		lineup, ok := lineups[team]
		if !ok {
			continue
		}
		scores = append(scores, ownerStat{team.Owner, team.Score(week)})
		effs = append(effs, ownerStat{team.Owner, stats.LineupEfficiency(lineup, league.StartingSlots)})
		benches = append(benches, ownerStat{team.Owner, stats.BenchPoints(lineup)})

		trio, err := stats.BestTrio(lineup)
		if err != nil {
			slog.Error("Skipping trio award", "team", team.Name, "week", week, "error", err)
		} else {
			trios = append(trios, ownerStat{team.Owner, trio})
		}

		if avg := stats.AvgSlotScore(lineup, "QB"); math.IsNaN(avg) {
			slog.Error("No started QB found", "team", team.Name, "week", week)
		} else {
			qbAvgs = append(qbAvgs, ownerStat{team.Owner, avg})
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏆 *Week %d Awards*\n\n", week))

	value, owner := leaderLine(scores, true)
	sb.WriteString(fmt.Sprintf("👑 High score - %.2f pts - %s\n", value, owner))
	value, owner = leaderLine(scores, false)
	sb.WriteString(fmt.Sprintf("💩 Low score - %.2f pts - %s\n", value, owner))
	value, owner = leaderLine(effs, true)
	sb.WriteString(fmt.Sprintf("🎯 Best lineup efficiency - %.1f%% - %s\n", value*100, owner))
	value, owner = leaderLine(effs, false)
	sb.WriteString(fmt.Sprintf("😬 Worst lineup efficiency - %.1f%% - %s\n", value*100, owner))
	if len(trios) > 0 {
		value, owner = leaderLine(trios, true)
		sb.WriteString(fmt.Sprintf("⚡ Best trio - %.2f pts - %s\n", value, owner))
	}
	value, owner = leaderLine(benches, true)
	sb.WriteString(fmt.Sprintf("🪑 Most bench points - %.2f pts - %s\n", value, owner))
	if len(qbAvgs) > 0 {
		value, owner = leaderLine(qbAvgs, true)
		sb.WriteString(fmt.Sprintf("🧨 Best QB play - %.2f pts/start - %s\n", value, owner))
	}

	return sb.String(), nil
}

// EfficiencyReport ranks every team by how close its fielded lineup came
// to the best one it could have started.
func (s *StatsService) EfficiencyReport() (string, error) {
	league, err := s.league()
	if err != nil {
		return "", err
	}
	week := league.CompletedWeek()
	if week < 1 {
		return "The season hasn't started yet.", nil
	}
	lineups := s.lineups(league, week)

	efficiency := make(map[*models.Team]float64, len(lineups))
	bestTotals := make(map[*models.Team]float64, len(lineups))
	for team, lineup := range lineups {
		efficiency[team] = stats.LineupEfficiency(lineup, league.StartingSlots)
		_, best := stats.ComputeBestLineup(lineup, league.StartingSlots)
		bestTotals[team] = best
	}

	ranked := stats.RankTeamsBy(league, func(_ *models.League, team *models.Team) float64 {
		return efficiency[team]
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎯 *Week %d Lineup Efficiency*\n\n", week))

	place := 1
	for i := len(ranked) - 1; i >= 0; i-- {
		team := ranked[i]
		if _, ok := lineups[team]; !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%d. *%s* - %.1f%% (%.2f of a possible %.2f pts)\n",
			place, team.Owner, efficiency[team]*100, team.Score(week), bestTotals[team]))
		place++
	}

	return sb.String(), nil
}

// TrioReport ranks every team by the combined score of its best QB, RB,
// and receiver for the last completed week.
func (s *StatsService) TrioReport() (string, error) {
	league, err := s.league()
	if err != nil {
		return "", err
	}
	week := league.CompletedWeek()
	if week < 1 {
		return "The season hasn't started yet.", nil
	}
	lineups := s.lineups(league, week)

	trios := make(map[*models.Team]float64, len(lineups))
	for _, team := range league.Teams {
		lineup, ok := lineups[team]
		if !ok {
			continue
		}
		trio, err := stats.BestTrio(lineup)
		if err != nil {
			slog.Error("Skipping trio ranking", "team", team.Name, "week", week, "error", err)
			continue
		}
		trios[team] = trio
	}

	ranked := stats.RankTeamsBy(league, func(_ *models.League, team *models.Team) float64 {
		return trios[team]
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚡ *Week %d Best Trios*\n\n", week))

	place := 1
	for i := len(ranked) - 1; i >= 0; i-- {
		team := ranked[i]
		if _, ok := trios[team]; !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%d. *%s* - %.2f pts\n", place, team.Owner, trios[team]))
		place++
	}

	return sb.String(), nil
}

// LuckReport ranks the league by accumulated luck index, season to date.
func (s *StatsService) LuckReport() (string, error) {
	league, err := s.league()
	if err != nil {
		return "", err
	}
	week := league.CompletedWeek()
	if week < 1 {
		return "The season hasn't started yet.", nil
	}

	indices := stats.SeasonLuckIndices(league, week)
	ranked := stats.RankTeamsBy(league, func(_ *models.League, team *models.Team) float64 {
		return indices[team]
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎲 *Luck Index (through Week %d)*\n\n", week))

	for i := len(ranked) - 1; i >= 0; i-- {
		team := ranked[i]
		place := len(ranked) - i
		marker := ""
		switch place {
		case 1:
			marker = " 🍀"
		case len(ranked):
			marker = " 🪨"
		}
		weekly := stats.WeeklyLuckIndex(league, team, week)
		sb.WriteString(fmt.Sprintf("%d. *%s* %+.3f (wk %+.3f)%s\n", place, team.Owner, indices[team], weekly, marker))
	}

	return sb.String(), nil
}

// StandingsReport prints the league standings, grouped by division when
// the league has them.
func (s *StatsService) StandingsReport() (string, error) {
	league, err := s.league()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("🏈 *Current Standings*\n\n")

	for division, teams := range league.DivisionStandings() {
		if division != "" {
			sb.WriteString(fmt.Sprintf("*%s*\n", division))
		}
		for i, team := range teams {
			sb.WriteString(fmt.Sprintf("%d. *%s* (%s)\n", i+1, team.Name, team.Owner))
			sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d\n", team.Wins, team.Losses, team.Ties))
			sb.WriteString(fmt.Sprintf("   Points For: %.2f\n", team.PointsFor))
			sb.WriteString(fmt.Sprintf("   Points Against: %.2f\n\n", team.PointsAgainst))
		}
	}

	return sb.String(), nil
}

// SeasonSummaryReport is the season-to-date superlatives: records,
// scoring extremes, and luck leaders.
func (s *StatsService) SeasonSummaryReport() (string, error) {
	league, err := s.league()
	if err != nil {
		return "", err
	}
	week := league.CompletedWeek()
	if week < 1 {
		return "The season hasn't started yet.", nil
	}
	indices := stats.SeasonLuckIndices(league, week)

	var wins, losses, highGames, lowGames, averages, lucks []ownerStat
	for _, team := range league.Teams {
		wins = append(wins, ownerStat{team.Owner, float64(team.Wins)})
		losses = append(losses, ownerStat{team.Owner, float64(team.Losses)})
		lucks = append(lucks, ownerStat{team.Owner, indices[team]})

		high, low, total := team.Score(1), team.Score(1), 0.0
		for wk := 1; wk <= week; wk++ {
			score := team.Score(wk)
			high = math.Max(high, score)
			low = math.Min(low, score)
			total += score
		}
		highGames = append(highGames, ownerStat{team.Owner, high})
		lowGames = append(lowGames, ownerStat{team.Owner, low})
		averages = append(averages, ownerStat{team.Owner, total / float64(week)})
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📈 *%d Season Summary (through Week %d)*\n\n", league.Year, week))

	value, owner := leaderLine(wins, true)
	sb.WriteString(fmt.Sprintf("Most wins - %.0f - %s\n", value, owner))
	value, owner = leaderLine(highGames, true)
	sb.WriteString(fmt.Sprintf("Highest single game - %.2f pts - %s\n", value, owner))
	value, owner = leaderLine(averages, true)
	sb.WriteString(fmt.Sprintf("Highest average - %.2f pts/gm - %s\n", value, owner))
	value, owner = leaderLine(lucks, true)
	sb.WriteString(fmt.Sprintf("Luckiest - %+.3f - %s\n\n", value, owner))

	value, owner = leaderLine(losses, true)
	sb.WriteString(fmt.Sprintf("Most losses - %.0f - %s\n", value, owner))
	value, owner = leaderLine(lowGames, false)
	sb.WriteString(fmt.Sprintf("Lowest single game - %.2f pts - %s\n", value, owner))
	value, owner = leaderLine(averages, false)
	sb.WriteString(fmt.Sprintf("Lowest average - %.2f pts/gm - %s\n", value, owner))
	value, owner = leaderLine(lucks, false)
	sb.WriteString(fmt.Sprintf("Unluckiest - %+.3f - %s\n", value, owner))

	return sb.String(), nil
}

// GameOfTheWeek summarizes the history between two owners, resolved by
// fuzzy match from a "name vs name" query.
func (s *StatsService) GameOfTheWeek(query string) (string, error) {
	league, err := s.league()
	if err != nil {
		return "", err
	}

	parts := strings.SplitN(query, " vs ", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("expected '<owner> vs <owner>', got %q", query)
	}

	team1, err := teamByFuzzyOwner(league, strings.TrimSpace(parts[0]))
	if err != nil {
		return "", err
	}
	team2, err := teamByFuzzyOwner(league, strings.TrimSpace(parts[1]))
	if err != nil {
		return "", err
	}
	if team1 == team2 {
		return "", fmt.Errorf("%s can't play themselves", team1.Owner)
	}

	week := league.CompletedWeek()
	if week < 1 {
		return "The season hasn't started yet.", nil
	}
	var wins1, wins2, ties, lastMet int
	for wk := 1; wk <= week; wk++ {
		if team1.Opponent(wk) != team2 {
			continue
		}
		lastMet = wk
		switch score1, score2 := team1.Score(wk), team2.Score(wk); {
		case score1 > score2:
			wins1++
		case score1 < score2:
			wins2++
		default:
			ties++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔥 *Game of the Week: %s vs %s*\n\n", team1.Owner, team2.Owner))

	matchups := wins1 + wins2 + ties
	if matchups == 0 {
		sb.WriteString("They have not met yet this season.\n")
	} else {
		sb.WriteString(fmt.Sprintf("%s has won %d / %d matchups.\n", team1.Owner, wins1, matchups))
		sb.WriteString(fmt.Sprintf("%s has won %d / %d matchups.\n", team2.Owner, wins2, matchups))
		if ties > 0 {
			sb.WriteString(fmt.Sprintf("There have been %d ties.\n", ties))
		}
		sb.WriteString(fmt.Sprintf("\nMost recent: Week %d - %s %.2f, %s %.2f\n",
			lastMet, team1.Owner, team1.Score(lastMet), team2.Owner, team2.Score(lastMet)))
	}

	sb.WriteString("\n*This season:*\n")
	divisions := league.DivisionStandings()
	for _, team := range []*models.Team{team1, team2} {
		sb.WriteString(fmt.Sprintf("%s is %d-%d-%d", team.Owner, team.Wins, team.Losses, team.Ties))
		standings := divisions[team.Division]
		for i, other := range standings {
			if other == team {
				sb.WriteString(fmt.Sprintf(", %s of %d", ordinal(i+1), len(standings)))
				if team.Division != "" {
					sb.WriteString(fmt.Sprintf(" in the %s division", team.Division))
				}
				break
			}
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
