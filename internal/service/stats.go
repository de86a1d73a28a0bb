package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mwalto7/statbot/internal/models"
	"github.com/mwalto7/statbot/internal/repository/memory"
)

const snapshotMaxAge = time.Hour

// Provider is the league data source; internal/api/fantasy.API is the
// production implementation.
type Provider interface {
	GetLeague() (*models.League, error)
	GetLineup(teamID, week int) (models.Lineup, error)
}

type StatsService struct {
	api  Provider
	repo *memory.Repository
}

func NewStatsService(api Provider, repo *memory.Repository) *StatsService {
	return &StatsService{api: api, repo: repo}
}

func (s *StatsService) league() (*models.League, error) {
	if league := s.repo.GetLeague(snapshotMaxAge); league != nil {
		return league, nil
	}
	league, err := s.api.GetLeague()
	if err != nil {
		return nil, fmt.Errorf("fetching league snapshot: %w", err)
	}
	s.repo.SaveLeague(league)
	return league, nil
}

// lineups fetches every team's fielded roster for the week. A team whose
// roster cannot be fetched is logged and left out rather than failing
// the whole report.
func (s *StatsService) lineups(league *models.League, week int) map[*models.Team]models.Lineup {
	lineups := make(map[*models.Team]models.Lineup, len(league.Teams))
	for _, team := range league.Teams {
		lineup, err := s.api.GetLineup(team.ID, week)
		if err != nil {
			slog.Error("Skipping team in report", "team", team.Name, "week", week, "error", err)
			continue
		}
		lineups[team] = lineup
	}
	return lineups
}

// teamByFuzzyOwner resolves a typed owner name against the league's
// owners, tolerating typos the way the roster lookup in chat always has.
func teamByFuzzyOwner(league *models.League, query string) (*models.Team, error) {
	var bestMatch *models.Team
	bestSimilarity := 0.6

	for _, team := range league.Teams {
		owner := strings.ToLower(team.Owner)
		distance := fuzzy.LevenshteinDistance(strings.ToLower(query), owner)
		maxLen := float64(max(len(query), len(owner)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > bestSimilarity {
			bestSimilarity = similarity
			bestMatch = team
		}
	}

	if bestMatch == nil {
		return nil, fmt.Errorf("owner %q: %w", query, models.ErrUnknownOwner)
	}
	return bestMatch, nil
}
