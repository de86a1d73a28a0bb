package espn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalto7/statbot/internal/models"
)

func TestSlotName(t *testing.T) {
	assert.Equal(t, "QB", slotName(0))
	assert.Equal(t, "RB/WR/TE", slotName(23))
	assert.Equal(t, "BE", slotName(20))
	assert.Equal(t, "Unknown", slotName(99))
}

func TestEligibleSlotNames(t *testing.T) {
	names := eligibleSlotNames([]int{2, 23, 20, 99})
	assert.Equal(t, []string{"RB", "RB/WR/TE", "BE"}, names)
}

func TestStartingSlots(t *testing.T) {
	settings := models.RosterSettings{LineupSlotCounts: map[string]int{
		"0":  1, // QB
		"2":  2, // RB
		"4":  2, // WR
		"6":  1, // TE
		"23": 1, // RB/WR/TE
		"16": 1, // D/ST
		"17": 1, // K
		"20": 7, // BE never starts
		"21": 1, // IR never starts
		"3":  0, // unused in this league
	}}

	slots := startingSlots(settings)
	assert.Equal(t, map[string]int{
		"QB": 1, "RB": 2, "WR": 2, "TE": 1, "RB/WR/TE": 1, "D/ST": 1, "K": 1,
	}, slots)
}

func TestAssignStandings(t *testing.T) {
	responses := []models.TeamResponse{
		{ID: 1, Record: models.Record{Overall: models.RecordDetails{Percentage: 0.5, PointsFor: 900}}},
		{ID: 2, Record: models.Record{Overall: models.RecordDetails{Percentage: 0.8, PointsFor: 850}}},
		{ID: 3, Record: models.Record{Overall: models.RecordDetails{Percentage: 0.5, PointsFor: 950}}},
	}
	byID := map[int]*models.Team{
		1: {ID: 1}, 2: {ID: 2}, 3: {ID: 3},
	}

	assignStandings(responses, byID)

	assert.Equal(t, 1, byID[2].Standing)
	// Points-for breaks the tie at .500.
	assert.Equal(t, 2, byID[3].Standing)
	assert.Equal(t, 3, byID[1].Standing)
}

func TestFillHistory(t *testing.T) {
	a := &models.Team{ID: 1}
	b := &models.Team{ID: 2}
	league := &models.League{CurrentWeek: 3, Teams: []*models.Team{a, b}}
	byID := map[int]*models.Team{1: a, 2: b}

	schedule := []models.MatchupScore{
		{MatchupPeriodID: 1, Home: models.TeamScore{TeamID: 1, TotalPoints: 100}, Away: models.TeamScore{TeamID: 2, TotalPoints: 90}},
		{MatchupPeriodID: 2, Home: models.TeamScore{TeamID: 2, TotalPoints: 95}, Away: models.TeamScore{TeamID: 1, TotalPoints: 110}},
		// Future week: ignored.
		{MatchupPeriodID: 3, Home: models.TeamScore{TeamID: 1}, Away: models.TeamScore{TeamID: 2}},
	}

	require.NoError(t, fillHistory(league, byID, schedule))

	assert.Equal(t, []float64{100, 110}, a.Scores)
	assert.Equal(t, []float64{90, 95}, b.Scores)
	assert.Equal(t, []*models.Team{b, b}, a.Schedule)
	assert.Equal(t, []*models.Team{a, a}, b.Schedule)
}

func TestFillHistoryMissingWeek(t *testing.T) {
	a := &models.Team{ID: 1}
	b := &models.Team{ID: 2}
	league := &models.League{CurrentWeek: 3, Teams: []*models.Team{a, b}}
	byID := map[int]*models.Team{1: a, 2: b}

	schedule := []models.MatchupScore{
		{MatchupPeriodID: 1, Home: models.TeamScore{TeamID: 1, TotalPoints: 100}, Away: models.TeamScore{TeamID: 2, TotalPoints: 90}},
	}

	assert.Error(t, fillHistory(league, byID, schedule))
}

func TestPlayerPoints(t *testing.T) {
	entry := models.PlayerPoolEntry{
		AppliedStatTotal: 99,
		Player: models.PlayerInfo{Stats: []models.Stat{
			{ScoringPeriodID: 3, StatSourceID: 1, AppliedTotal: 12.5}, // projection
			{ScoringPeriodID: 3, StatSourceID: 0, AppliedTotal: 17.2}, // actual
			{ScoringPeriodID: 2, StatSourceID: 0, AppliedTotal: 8.0},
		}},
	}

	assert.Equal(t, 17.2, playerPoints(entry, 3))
	assert.Equal(t, 8.0, playerPoints(entry, 2))
	// No actual stat line for the week yet.
	assert.Zero(t, playerPoints(entry, 4))
}
