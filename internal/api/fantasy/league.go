// Package fantasy is the provider facade the service layer consumes. It
// keeps the ESPN specifics out of the reporting code, so a different
// platform client could be swapped in behind the same two calls.
package fantasy

import (
	"github.com/mwalto7/statbot/internal/api/espn"
	"github.com/mwalto7/statbot/internal/models"
)

type API struct {
	espnAPI *espn.API
}

func NewAPI(espnAPI *espn.API) *API {
	return &API{espnAPI: espnAPI}
}

func (a *API) GetLeague() (*models.League, error) {
	return a.espnAPI.GetLeague()
}

func (a *API) GetLineup(teamID, week int) (models.Lineup, error) {
	return a.espnAPI.GetLineup(teamID, week)
}
