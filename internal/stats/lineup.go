// Package stats computes lineup-optimization and luck-index metrics over
// a league snapshot. All functions are pure reads of the snapshot; they
// never mutate the lineups or teams they are given.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/mwalto7/statbot/internal/models"
)

// ErrIncompleteLineup is returned when a lineup has no eligible player at
// a position a metric requires.
var ErrIncompleteLineup = errors.New("no eligible player for required position")

// SlotAssignment pairs a player with the starting slot it fills in a best
// possible lineup.
type SlotAssignment struct {
	Slot   string
	Player models.Player
}

// BestLineup is the maximum-points legal assignment of a week's roster to
// the league's starting slots.
type BestLineup []SlotAssignment

func (bl BestLineup) TotalPoints() float64 {
	var total float64
	for _, a := range bl {
		total += a.Player.Points
	}
	return total
}

// TopPlayers returns the n highest-scoring players in the lineup eligible
// for the given slot. The sort is stable, so equal scores keep their
// lineup order. Fewer than n players are returned when the lineup runs
// short; that is not an error.
func TopPlayers(lineup models.Lineup, slot string, n int) []models.Player {
	if n <= 0 {
		return nil
	}
	var eligible []models.Player
	for _, player := range lineup {
		if player.EligibleFor(slot) {
			eligible = append(eligible, player)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Points > eligible[j].Points
	})
	if n < len(eligible) {
		eligible = eligible[:n]
	}
	return eligible
}

// ComputeBestLineup fills the league's starting slots from the lineup for
// the maximum possible total. Slots are resolved most-specific first
// (shortest label first, ties broken alphabetically), and each selected
// player leaves the pool, so a flex slot can never steal a player a
// dedicated slot needs. A slot with too few eligible players is left
// partially filled.
func ComputeBestLineup(lineup models.Lineup, startingSlots map[string]int) (BestLineup, float64) {
	slots := make([]string, 0, len(startingSlots))
	for slot := range startingSlots {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		if len(slots[i]) != len(slots[j]) {
			return len(slots[i]) < len(slots[j])
		}
		return slots[i] < slots[j]
	})

	pool := make(models.Lineup, len(lineup))
	copy(pool, lineup)

	var best BestLineup
	for _, slot := range slots {
		for _, player := range TopPlayers(pool, slot, startingSlots[slot]) {
			best = append(best, SlotAssignment{Slot: slot, Player: player})
			pool = removePlayer(pool, player.ID)
		}
	}
	return best, best.TotalPoints()
}

func removePlayer(pool models.Lineup, id int) models.Lineup {
	for i, player := range pool {
		if player.ID == id {
			return append(pool[:i], pool[i+1:]...)
		}
	}
	return pool
}

// LineupEfficiency returns the fraction of the best possible score the
// fielded starters actually produced, at most 1.0. A zero-scoring best
// lineup yields 0.
func LineupEfficiency(lineup models.Lineup, startingSlots map[string]int) float64 {
	_, maxScore := ComputeBestLineup(lineup, startingSlots)
	if maxScore == 0 {
		return 0
	}
	var realScore float64
	for _, player := range lineup {
		if player.IsStarter() {
			realScore += player.Points
		}
	}
	return realScore / maxScore
}

// BestTrio returns the combined score of the lineup's top QB, top RB, and
// the better of its top WR or TE, rounded to two decimals. A lineup with
// no eligible player at any of those positions fails with
// ErrIncompleteLineup wrapped.
func BestTrio(lineup models.Lineup) (float64, error) {
	top := make(map[string]float64, 4)
	for _, slot := range []string{"QB", "RB", "WR", "TE"} {
		players := TopPlayers(lineup, slot, 1)
		if len(players) == 0 {
			return 0, fmt.Errorf("no eligible %s: %w", slot, ErrIncompleteLineup)
		}
		top[slot] = players[0].Points
	}
	trio := top["QB"] + top["RB"] + math.Max(top["WR"], top["TE"])
	return math.Round(trio*100) / 100, nil
}

// BenchPoints sums the points the lineup left on the bench.
func BenchPoints(lineup models.Lineup) float64 {
	var total float64
	for _, player := range lineup {
		if player.SlotPosition == models.SlotBench {
			total += player.Points
		}
	}
	return total
}

// AvgSlotScore returns the mean score of the players fielded at the given
// slot. An empty slot yields NaN so upstream data problems stay visible
// instead of being coerced to zero.
func AvgSlotScore(lineup models.Lineup, slot string) float64 {
	var scores []float64
	for _, player := range lineup {
		if player.SlotPosition == slot {
			scores = append(scores, player.Points)
		}
	}
	if len(scores) == 0 {
		return math.NaN()
	}
	return stat.Mean(scores, nil)
}
