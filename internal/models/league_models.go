package models

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Slot labels that never count toward the starting lineup.
const (
	SlotBench = "BE"
	SlotIR    = "IR"
)

// ErrUnknownOwner is returned when an owner has no team in the league.
var ErrUnknownOwner = errors.New("owner not in league")

type Player struct {
	ID            int
	Name          string
	Points        float64
	EligibleSlots []string
	SlotPosition  string
}

// IsStarter reports whether the player was fielded in a starting slot,
// as opposed to the bench or injured reserve.
func (p Player) IsStarter() bool {
	return p.SlotPosition != SlotBench && p.SlotPosition != SlotIR
}

func (p Player) EligibleFor(slot string) bool {
	for _, s := range p.EligibleSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Lineup is the roster a team actually fielded for one week, bench and
// injured reserve included.
type Lineup []Player

type Team struct {
	ID       int
	Owner    string
	Name     string
	Abbrev   string
	Division string
	Standing int
	Wins     int
	Losses   int
	Ties     int

	PointsFor     float64
	PointsAgainst float64

	// Scores and Schedule are zero-indexed: entry 0 belongs to week 1.
	// Callers go through Score, Opponent, and ScoresThrough, which take
	// 1-indexed week numbers.
	Scores   []float64
	Schedule []*Team
}

// Score returns the team's score for the given week (1-indexed).
func (t *Team) Score(week int) float64 {
	return t.Scores[week-1]
}

// Opponent returns the team the given week's matchup was played against
// (week is 1-indexed).
func (t *Team) Opponent(week int) *Team {
	return t.Schedule[week-1]
}

// ScoresThrough returns the team's scores for weeks 1 through week
// inclusive.
func (t *Team) ScoresThrough(week int) []float64 {
	return t.Scores[:week]
}

// League is an immutable snapshot of one league's teams, score history,
// schedule, and roster settings for a season.
type League struct {
	ID          int
	Year        int
	Name        string
	CurrentWeek int
	Teams       []*Team

	// StartingSlots maps a slot label to how many starters it requires,
	// e.g. {"QB": 1, "RB": 2, "RB/WR/TE": 1}.
	StartingSlots map[string]int

	FetchedAt time.Time
}

func (l *League) Size() int {
	return len(l.Teams)
}

// CompletedWeek returns the most recent week with final scores, or 0
// before any week has finished.
func (l *League) CompletedWeek() int {
	if l.CurrentWeek <= 1 {
		return 0
	}
	return l.CurrentWeek - 1
}

func (l *League) TeamByOwner(owner string) (*Team, error) {
	for _, team := range l.Teams {
		if team.Owner == owner {
			return team, nil
		}
	}
	return nil, fmt.Errorf("owner %q: %w", owner, ErrUnknownOwner)
}

// DivisionStandings groups the league's teams by division, each group
// ordered by overall standing.
func (l *League) DivisionStandings() map[string][]*Team {
	standings := make(map[string][]*Team)
	for _, team := range l.Teams {
		standings[team.Division] = append(standings[team.Division], team)
	}
	for _, teams := range standings {
		sort.Slice(teams, func(i, j int) bool {
			return teams[i].Standing < teams[j].Standing
		})
	}
	return standings
}
