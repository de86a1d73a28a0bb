package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalto7/statbot/internal/models"
	"github.com/mwalto7/statbot/internal/repository/memory"
)

type fakeProvider struct {
	league    *models.League
	lineups   map[int]models.Lineup
	failTeams map[int]bool
}

func (f *fakeProvider) GetLeague() (*models.League, error) {
	return f.league, nil
}

func (f *fakeProvider) GetLineup(teamID, week int) (models.Lineup, error) {
	if f.failTeams[teamID] {
		return nil, errors.New("roster fetch failed")
	}
	return f.lineups[teamID], nil
}

// newTestService builds a four-team league with two completed weeks.
// Alice and Bob play each other every week, as do Carol and Dave; Dave's
// roster fetch always fails.
func newTestService() *StatsService {
	alice := &models.Team{ID: 1, Owner: "Alice", Name: "Team Alice", Wins: 2, Standing: 1, Scores: []float64{100, 110}}
	bob := &models.Team{ID: 2, Owner: "Bob", Name: "Team Bob", Losses: 2, Standing: 3, Scores: []float64{90, 95}}
	carol := &models.Team{ID: 3, Owner: "Carol", Name: "Team Carol", Wins: 2, Standing: 2, Scores: []float64{80, 85}}
	dave := &models.Team{ID: 4, Owner: "Dave", Name: "Team Dave", Losses: 2, Standing: 4, Scores: []float64{70, 75}}
	alice.Schedule = []*models.Team{bob, bob}
	bob.Schedule = []*models.Team{alice, alice}
	carol.Schedule = []*models.Team{dave, dave}
	dave.Schedule = []*models.Team{carol, carol}

	league := &models.League{
		Year:          2025,
		Name:          "Test League",
		CurrentWeek:   3,
		Teams:         []*models.Team{alice, bob, carol, dave},
		StartingSlots: map[string]int{"QB": 1, "RB": 1},
	}

	provider := &fakeProvider{
		league: league,
		lineups: map[int]models.Lineup{
			1: {
				{ID: 11, Name: "A-QB", Points: 60, EligibleSlots: []string{"QB", "BE"}, SlotPosition: "QB"},
				{ID: 12, Name: "A-RB", Points: 50, EligibleSlots: []string{"RB", "BE"}, SlotPosition: "RB"},
				{ID: 13, Name: "A-WR", Points: 20, EligibleSlots: []string{"WR", "BE"}, SlotPosition: "BE"},
				{ID: 14, Name: "A-TE", Points: 15, EligibleSlots: []string{"TE", "BE"}, SlotPosition: "BE"},
				{ID: 15, Name: "A-BN", Points: 10, EligibleSlots: []string{"RB", "BE"}, SlotPosition: "BE"},
			},
			2: {
				{ID: 21, Name: "B-QB", Points: 40, EligibleSlots: []string{"QB", "BE"}, SlotPosition: "QB"},
				{ID: 22, Name: "B-RB", Points: 30, EligibleSlots: []string{"RB", "BE"}, SlotPosition: "RB"},
				{ID: 23, Name: "B-BN", Points: 60, EligibleSlots: []string{"RB", "BE"}, SlotPosition: "BE"},
			},
			3: {
				{ID: 31, Name: "C-QB", Points: 50, EligibleSlots: []string{"QB", "BE"}, SlotPosition: "QB"},
				{ID: 32, Name: "C-RB", Points: 35, EligibleSlots: []string{"RB", "BE"}, SlotPosition: "RB"},
				{ID: 33, Name: "C-BN", Points: 40, EligibleSlots: []string{"RB", "BE"}, SlotPosition: "BE"},
			},
		},
		failTeams: map[int]bool{4: true},
	}

	return NewStatsService(provider, memory.NewRepository())
}

func TestWeeklyAwardsReport(t *testing.T) {
	report, err := newTestService().WeeklyAwardsReport()
	require.NoError(t, err)

	assert.Contains(t, report, "Week 2 Awards")
	assert.Contains(t, report, "👑 High score - 110.00 pts - Alice")
	// Dave's roster failed to load, so the low score falls to Carol.
	assert.Contains(t, report, "💩 Low score - 85.00 pts - Carol")
	assert.Contains(t, report, "🎯 Best lineup efficiency - 100.0% - Alice")
	assert.Contains(t, report, "😬 Worst lineup efficiency - 70.0% - Bob")
	assert.Contains(t, report, "🪑 Most bench points - 60.00 pts - Bob")
	// Only Alice rosters a WR and TE, so only she qualifies for the trio.
	assert.Contains(t, report, "⚡ Best trio - 130.00 pts - Alice")
	assert.NotContains(t, report, "Dave")
}

func TestWeeklyAwardsReportTieOrder(t *testing.T) {
	alice := &models.Team{ID: 1, Owner: "Alice", Scores: []float64{100}}
	bob := &models.Team{ID: 2, Owner: "Bob", Scores: []float64{100}}
	alice.Schedule = []*models.Team{bob}
	bob.Schedule = []*models.Team{alice}
	league := &models.League{
		CurrentWeek:   2,
		Teams:         []*models.Team{alice, bob},
		StartingSlots: map[string]int{"QB": 1},
	}
	lineup := models.Lineup{
		{ID: 1, Name: "QB", Points: 100, EligibleSlots: []string{"QB", "BE"}, SlotPosition: "QB"},
	}
	provider := &fakeProvider{
		league:  league,
		lineups: map[int]models.Lineup{1: lineup, 2: lineup},
	}

	// Tied owners must come out in league order no matter how the
	// lineup map iterates.
	for i := 0; i < 20; i++ {
		report, err := NewStatsService(provider, memory.NewRepository()).WeeklyAwardsReport()
		require.NoError(t, err)
		assert.Contains(t, report, "👑 High score - 100.00 pts - Alice, Bob")
		assert.Contains(t, report, "🧨 Best QB play - 100.00 pts/start - Alice, Bob")
	}
}

func TestTrioReport(t *testing.T) {
	report, err := newTestService().TrioReport()
	require.NoError(t, err)

	assert.Contains(t, report, "Week 2 Best Trios")
	// Only Alice rosters a WR or TE, so only she can field a full trio.
	assert.Contains(t, report, "1. *Alice* - 130.00 pts")
	assert.NotContains(t, report, "Bob")
	assert.NotContains(t, report, "Carol")
}

func TestEfficiencyReport(t *testing.T) {
	report, err := newTestService().EfficiencyReport()
	require.NoError(t, err)

	assert.Contains(t, report, "Week 2 Lineup Efficiency")
	assert.Contains(t, report, "1. *Alice* - 100.0%")
	assert.Contains(t, report, "3. *Bob* - 70.0%")
	assert.NotContains(t, report, "Dave")
}

func TestLuckReport(t *testing.T) {
	report, err := newTestService().LuckReport()
	require.NoError(t, err)

	assert.Contains(t, report, "Luck Index (through Week 2)")
	assert.Contains(t, report, "🍀")
	assert.Contains(t, report, "🪨")
}

func TestStandingsReport(t *testing.T) {
	report, err := newTestService().StandingsReport()
	require.NoError(t, err)

	assert.Contains(t, report, "Current Standings")
	assert.Contains(t, report, "1. *Team Alice* (Alice)")
	assert.Contains(t, report, "Record: 2-0-0")
}

func TestSeasonSummaryReport(t *testing.T) {
	report, err := newTestService().SeasonSummaryReport()
	require.NoError(t, err)

	assert.Contains(t, report, "2025 Season Summary (through Week 2)")
	// Alice and Carol are tied at two wins each.
	assert.Contains(t, report, "Most wins - 2 - Alice, Carol")
	assert.Contains(t, report, "Highest single game - 110.00 pts - Alice")
	assert.Contains(t, report, "Lowest single game - 70.00 pts - Dave")
}

func TestGameOfTheWeek(t *testing.T) {
	// "Alise" is a typo the fuzzy lookup must absorb.
	report, err := newTestService().GameOfTheWeek("Alise vs Bob")
	require.NoError(t, err)

	assert.Contains(t, report, "Game of the Week: Alice vs Bob")
	assert.Contains(t, report, "Alice has won 2 / 2 matchups.")
	assert.Contains(t, report, "Bob has won 0 / 2 matchups.")
	assert.Contains(t, report, "Most recent: Week 2 - Alice 110.00, Bob 95.00")
}

func TestGameOfTheWeekBadQuery(t *testing.T) {
	svc := newTestService()

	_, err := svc.GameOfTheWeek("Alice and Bob")
	require.Error(t, err)

	_, err = svc.GameOfTheWeek("Nobody vs Alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownOwner)
}

func TestLeaderLine(t *testing.T) {
	statsList := []ownerStat{
		{"Alice", 103.7},
		{"Bob", 83.7},
		{"Carol", 98.8},
	}

	value, owner := leaderLine(statsList, true)
	assert.Equal(t, 103.7, value)
	assert.Equal(t, "Alice", owner)

	value, owner = leaderLine(statsList, false)
	assert.Equal(t, 83.7, value)
	assert.Equal(t, "Bob", owner)
}

func TestLeaderLineTies(t *testing.T) {
	statsList := []ownerStat{
		{"Alice", 100},
		{"Bob", 100},
		{"Carol", 90},
	}

	value, owner := leaderLine(statsList, true)
	assert.Equal(t, 100.0, value)
	assert.Equal(t, "Alice, Bob", owner)
}

func TestLeaderLineEmpty(t *testing.T) {
	value, owner := leaderLine(nil, true)
	assert.Zero(t, value)
	assert.Empty(t, owner)
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 113: "113th", 122: "122nd",
	}
	for n, want := range cases {
		assert.Equal(t, want, ordinal(n), "ordinal(%d)", n)
	}
}
