package team

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gullyscore/api/config"
	"github.com/gullyscore/api/pkg/responses"
)

// TeamController handles API requests for the two-team configuration.
type TeamController struct {
	repo   TeamRepository
	config *config.Config
}

// NewTeamController creates a new TeamController.
func NewTeamController(repo TeamRepository, cfg *config.Config) *TeamController {
	return &TeamController{repo: repo, config: cfg}
}

// --- DTOs ---

type TeamConfigEntry struct {
	ID        string `json:"id" binding:"required,oneof=team-a team-b"`
	Name      string `json:"name" binding:"required,min=1,max=100"`
	PlayerIDs []uint `json:"playerIds" binding:"required"`
}

type ReplaceTeamsRequest struct {
	Teams []TeamConfigEntry `json:"teams" binding:"required,len=2,dive"`
}

// --- Handlers ---

// GetTeams godoc
// @Summary Get team configuration
// @Description Both teams with their names and player assignments
// @Tags Teams
// @Produce json
// @Success 200 {array} TeamView
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams [get]
func (tc *TeamController) GetTeams(c *gin.Context) {
	views, err := tc.repo.GetConfig()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve teams")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, views)
}

// ReplaceTeams godoc
// @Summary Replace team configuration
// @Description Replace both team names and full membership lists in one call.
// @Description A player listed on both sides rejects the whole update.
// @Tags Teams
// @Accept json
// @Produce json
// @Param teams body ReplaceTeamsRequest true "Complete two-team configuration"
// @Success 200 {array} TeamView
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams [put]
func (tc *TeamController) ReplaceTeams(c *gin.Context) {
	var req ReplaceTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	views := make([]TeamView, 0, len(req.Teams))
	ids := make(map[string]bool, len(req.Teams))
	allPlayers := make([]uint, 0)
	for _, entry := range req.Teams {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			responses.ErrorResponse(c, http.StatusBadRequest, "Team name cannot be blank")
			return
		}
		if ids[entry.ID] {
			responses.ErrorResponse(c, http.StatusBadRequest, "Duplicate team id in request")
			return
		}
		ids[entry.ID] = true
		playerIDs := entry.PlayerIDs
		if playerIDs == nil {
			playerIDs = []uint{}
		}
		allPlayers = append(allPlayers, playerIDs...)
		views = append(views, TeamView{ID: entry.ID, Name: name, PlayerIDs: playerIDs})
	}

	unique := make(map[uint]bool, len(allPlayers))
	for _, pid := range allPlayers {
		if unique[pid] {
			responses.ErrorResponse(c, http.StatusBadRequest, "A player cannot be on both teams")
			return
		}
		unique[pid] = true
	}

	if len(allPlayers) > 0 {
		count, err := tc.repo.CountExistingPlayers(allPlayers)
		if err != nil {
			responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to validate player IDs")
			return
		}
		if count != int64(len(unique)) {
			responses.ErrorResponse(c, http.StatusBadRequest, "One or more player IDs do not exist")
			return
		}
	}

	if err := tc.repo.ReplaceConfig(views); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to update teams")
		return
	}

	updated, err := tc.repo.GetConfig()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve updated teams")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, updated)
}
