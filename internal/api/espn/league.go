package espn

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/mwalto7/statbot/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// lineupSlotNames maps ESPN lineup slot IDs to the labels the rest of the
// service works with. Flex labels spell out the base positions they
// accept, which the optimizer relies on for its specific-before-generic
// slot ordering.
var lineupSlotNames = map[int]string{
	0:  "QB",
	2:  "RB",
	3:  "RB/WR",
	4:  "WR",
	5:  "WR/TE",
	6:  "TE",
	7:  "OP",
	16: "D/ST",
	17: "K",
	20: "BE",
	21: "IR",
	23: "RB/WR/TE",
}

func slotName(slotID int) string {
	if name, ok := lineupSlotNames[slotID]; ok {
		return name
	}
	return "Unknown"
}

func eligibleSlotNames(slotIDs []int) []string {
	var names []string
	for _, id := range slotIDs {
		if name, ok := lineupSlotNames[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// GetLeague fetches and assembles the full league snapshot: teams with
// owners and records, per-week score history and schedule, and the
// league's starting slot requirements.
func (a *API) GetLeague() (*models.League, error) {
	var leagueResponse models.LeagueResponse
	endpoint := fmt.Sprintf("/seasons/%s/segments/0/leagues/%s", a.client.Config.Year, a.client.Config.LeagueID)
	params := map[string]string{
		"view": "mTeam,mSettings,mMatchup",
	}

	if err := a.client.Get(endpoint, params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching league: %w", err)
	}

	year, err := strconv.Atoi(a.client.Config.Year)
	if err != nil {
		return nil, fmt.Errorf("invalid season year %q: %w", a.client.Config.Year, err)
	}

	league := &models.League{
		ID:            leagueResponse.ID,
		Year:          year,
		Name:          leagueResponse.Settings.Name,
		CurrentWeek:   leagueResponse.Status.CurrentMatchupPeriod,
		StartingSlots: startingSlots(leagueResponse.Settings.RosterSettings),
		FetchedAt:     time.Now(),
	}

	owners := make(map[string]string, len(leagueResponse.Members))
	for _, member := range leagueResponse.Members {
		owners[member.ID] = member.DisplayName
	}

	divisions := make(map[int]string, len(leagueResponse.Settings.ScheduleSettings.Divisions))
	for _, division := range leagueResponse.Settings.ScheduleSettings.Divisions {
		divisions[division.ID] = division.Name
	}

	byID := make(map[int]*models.Team, len(leagueResponse.Teams))
	for _, teamResponse := range leagueResponse.Teams {
		team := &models.Team{
			ID:       teamResponse.ID,
			Name:     teamResponse.Name,
			Abbrev:   teamResponse.Abbreviation,
			Division: divisions[teamResponse.DivisionID],
			Wins:     teamResponse.Record.Overall.Wins,
			Losses:   teamResponse.Record.Overall.Losses,
			Ties:     teamResponse.Record.Overall.Ties,

			PointsFor:     teamResponse.Record.Overall.PointsFor,
			PointsAgainst: teamResponse.Record.Overall.PointsAgainst,
		}
		if len(teamResponse.Owners) > 0 {
			team.Owner = owners[teamResponse.Owners[0]]
		}
		byID[team.ID] = team
		league.Teams = append(league.Teams, team)
	}

	assignStandings(leagueResponse.Teams, byID)

	if err := fillHistory(league, byID, leagueResponse.Schedule); err != nil {
		return nil, err
	}

	return league, nil
}

// startingSlots translates the league's lineup slot counts into label
// form, dropping the bench and injured reserve, which never start.
func startingSlots(settings models.RosterSettings) map[string]int {
	slots := make(map[string]int)
	for slotID, count := range settings.LineupSlotCounts {
		if count == 0 {
			continue
		}
		id, err := strconv.Atoi(slotID)
		if err != nil {
			continue
		}
		name := slotName(id)
		if name == models.SlotBench || name == models.SlotIR || name == "Unknown" {
			continue
		}
		slots[name] = count
	}
	return slots
}

func assignStandings(teams []models.TeamResponse, byID map[int]*models.Team) {
	ordered := make([]models.TeamResponse, len(teams))
	copy(ordered, teams)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Record.Overall.Percentage != ordered[j].Record.Overall.Percentage {
			return ordered[i].Record.Overall.Percentage > ordered[j].Record.Overall.Percentage
		}
		return ordered[i].Record.Overall.PointsFor > ordered[j].Record.Overall.PointsFor
	})
	for i, teamResponse := range ordered {
		byID[teamResponse.ID].Standing = i + 1
	}
}

// fillHistory converts the schedule view into per-team score and opponent
// sequences for every completed week. The sequences are zero-indexed by
// week, matching the Team accessors.
func fillHistory(league *models.League, byID map[int]*models.Team, schedule []models.MatchupScore) error {
	lastWeek := league.CurrentWeek - 1
	if lastWeek < 1 {
		return nil
	}

	type result struct {
		score float64
		opp   *models.Team
	}
	history := make(map[int]map[int]result)

	for _, match := range schedule {
		week := match.MatchupPeriodID
		if week < 1 || week > lastWeek {
			continue
		}
		home, ok := byID[match.Home.TeamID]
		if !ok {
			continue
		}
		away, ok := byID[match.Away.TeamID]
		if !ok {
			// Bye weeks have no away side.
			continue
		}
		if history[home.ID] == nil {
			history[home.ID] = make(map[int]result)
		}
		if history[away.ID] == nil {
			history[away.ID] = make(map[int]result)
		}
		history[home.ID][week] = result{score: match.Home.TotalPoints, opp: away}
		history[away.ID][week] = result{score: match.Away.TotalPoints, opp: home}
	}

	for _, team := range league.Teams {
		weeks := history[team.ID]
		for week := 1; week <= lastWeek; week++ {
			r, ok := weeks[week]
			if !ok {
				return fmt.Errorf("no week %d matchup for team %d", week, team.ID)
			}
			team.Scores = append(team.Scores, r.score)
			team.Schedule = append(team.Schedule, r.opp)
		}
	}

	return nil
}

// GetLineup returns the roster a team fielded for the given week, with
// each player's points, eligible slots, and the slot it actually
// occupied.
func (a *API) GetLineup(teamID, week int) (models.Lineup, error) {
	var leagueResponse models.LeagueResponse
	endpoint := fmt.Sprintf("/seasons/%s/segments/0/leagues/%s", a.client.Config.Year, a.client.Config.LeagueID)
	params := map[string]string{
		"view":            "mRoster",
		"scoringPeriodId": fmt.Sprintf("%d", week),
	}

	if err := a.client.Get(endpoint, params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching rosters: %w", err)
	}

	for _, teamResponse := range leagueResponse.Teams {
		if teamResponse.ID != teamID {
			continue
		}
		lineup := make(models.Lineup, 0, len(teamResponse.Roster.Entries))
		for _, entry := range teamResponse.Roster.Entries {
			player := entry.PlayerPoolEntry.Player
			lineup = append(lineup, models.Player{
				ID:            player.ID,
				Name:          player.FullName,
				Points:        playerPoints(entry.PlayerPoolEntry, week),
				EligibleSlots: eligibleSlotNames(player.EligibleSlots),
				SlotPosition:  slotName(entry.LineupSlotID),
			})
		}
		return lineup, nil
	}

	return nil, fmt.Errorf("no roster for team %d in week %d", teamID, week)
}

func playerPoints(player models.PlayerPoolEntry, week int) float64 {
	for _, stat := range player.Player.Stats {
		if stat.ScoringPeriodID == week && stat.StatSourceID == 0 {
			return stat.AppliedTotal
		}
	}
	return 0
}
