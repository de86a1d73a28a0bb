package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/mwalto7/statbot/internal/models"
)

// Luck index component weights. Schedule strength dominates; the team's
// own outlier performance and its opponent's count for less. The sum
// normalizes the final index.
const (
	weightSchedule = 7.0
	weightTeam     = 2.0
	weightOpponent = 1.0
	weightTotal    = weightSchedule + weightTeam + weightOpponent
)

// WeeklyFinish returns the team's rank among all league scores for the
// week, 1-indexed. Tied scores share a rank: the rank is one plus the
// number of strictly greater scores.
func WeeklyFinish(league *models.League, team *models.Team, week int) int {
	rank := 1
	score := team.Score(week)
	for _, other := range league.Teams {
		if other.Score(week) > score {
			rank++
		}
	}
	return rank
}

// WeeklyLuckIndex estimates how much of the team's weekly outcome came
// down to luck rather than play, normalized to roughly [-1, 1].
//
// The schedule component compares the team's league-wide finish to its
// opponent's: beating a strong slate of scores while finishing low is
// lucky, losing while finishing high is unlucky. Ties count at half
// weight, as half a loss for top-half teams and half a win otherwise.
// The remaining components standardize the week's score against each
// side's season to date, so an outlier performance shifts credit away
// from luck.
func WeeklyLuckIndex(league *models.League, team *models.Team, week int) float64 {
	opp := team.Opponent(week)
	size := float64(league.Size())

	rank := float64(WeeklyFinish(league, team, week))
	oppRank := float64(WeeklyFinish(league, opp, week))

	var index float64
	switch {
	case rank < oppRank:
		// Won on relative finish: the odds a random opponent would have
		// outscored this team anyway.
		index = weightSchedule * (rank - 1) / (size - 1)
	case rank > oppRank:
		index = -weightSchedule * (size - rank) / (size - 1)
	case rank < size/2:
		// Tied while in the top half: half as unlucky as a loss.
		index = -weightSchedule / 2 * (size - rank - 1) / (size - 1)
	default:
		// Tied in the bottom half: half as lucky as a win.
		index = weightSchedule / 2 * (rank - 1) / (size - 1)
	}

	history := team.ScoresThrough(week)
	teamStd := stat.PopStdDev(history, nil)
	if teamStd != 0 {
		// A score two standard deviations from the mean moves the index
		// by the full component weight.
		z := (team.Score(week) - stat.Mean(history, nil)) / teamStd
		index += z / 2 * weightTeam
	}

	oppHistory := opp.ScoresThrough(week)
	oppStd := stat.PopStdDev(oppHistory, nil)
	// The opponent adjustment stays gated on the team's deviation, which
	// is how this index has always behaved; the extra check on the
	// opponent's deviation only keeps a flat history from dividing by
	// zero.
	if teamStd != 0 && oppStd != 0 {
		z := (opp.Score(week) - stat.Mean(oppHistory, nil)) / oppStd
		index -= z / 2 * weightOpponent
	}

	return index / weightTotal
}

// SeasonLuckIndices accumulates every team's weekly luck index over weeks
// 1 through uptoWeek inclusive.
func SeasonLuckIndices(league *models.League, uptoWeek int) map[*models.Team]float64 {
	indices := make(map[*models.Team]float64, len(league.Teams))
	for week := 1; week <= uptoWeek; week++ {
		for _, team := range league.Teams {
			indices[team] += WeeklyLuckIndex(league, team, week)
		}
	}
	return indices
}
