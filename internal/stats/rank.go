package stats

import (
	"sort"

	"github.com/mwalto7/statbot/internal/models"
)

// Metric computes a single per-team statistic from the league snapshot.
type Metric func(league *models.League, team *models.Team) float64

// RankTeamsBy returns the league's teams ordered ascending by the metric.
// The sort is stable, so ties keep the snapshot's team order. The
// snapshot's own team slice is left untouched.
func RankTeamsBy(league *models.League, metric Metric) []*models.Team {
	teams := make([]*models.Team, len(league.Teams))
	copy(teams, league.Teams)
	sort.SliceStable(teams, func(i, j int) bool {
		return metric(league, teams[i]) < metric(league, teams[j])
	})
	return teams
}
