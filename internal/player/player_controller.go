package player

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/gullyscore/api/config"
	"github.com/gullyscore/api/internal/team"
	"github.com/gullyscore/api/pkg/responses"
)

// PlayerController handles API requests related to the player roster.
type PlayerController struct {
	repo     PlayerRepository
	teamRepo team.TeamRepository
	config   *config.Config
}

// NewPlayerController creates a new PlayerController.
func NewPlayerController(repo PlayerRepository, teamRepo team.TeamRepository, cfg *config.Config) *PlayerController {
	return &PlayerController{
		repo:     repo,
		teamRepo: teamRepo,
		config:   cfg,
	}
}

// --- DTOs ---

type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type UpdatePlayerRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Runs         *int    `json:"runs" binding:"omitempty,min=0"`
	Balls        *int    `json:"balls" binding:"omitempty,min=0"`
	Fours        *int    `json:"fours" binding:"omitempty,min=0"`
	Sixes        *int    `json:"sixes" binding:"omitempty,min=0"`
	IsOut        *bool   `json:"isOut"`
	Wickets      *int    `json:"wickets" binding:"omitempty,min=0"`
	OversBowled  *int    `json:"oversBowled" binding:"omitempty,min=0"`
	RunsConceded *int    `json:"runsConceded" binding:"omitempty,min=0"`
}

// --- Handlers ---

// GetAllPlayers godoc
// @Summary List all players
// @Description Get the full roster with current match stats
// @Tags Players
// @Produce json
// @Success 200 {array} Player
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	players, err := pc.repo.GetAllPlayers()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve players")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, players)
}

// CreatePlayer godoc
// @Summary Create a player
// @Description Add a new player to the roster. Names are unique, case-insensitively.
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player creation request"
// @Success 201 {object} Player
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 409 {object} map[string]interface{} "Player with this name already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		responses.ErrorResponse(c, http.StatusBadRequest, "Player name cannot be blank")
		return
	}

	existing, err := pc.repo.FindPlayerByName(name)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to check existing players")
		return
	}
	if existing != nil {
		responses.ErrorResponse(c, http.StatusConflict, "Player with this name already exists")
		return
	}

	player := Player{Name: name}
	if err := pc.repo.CreatePlayer(&player); err != nil {
		log.WithError(err).Error("Failed to create player")
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create player")
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, player)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Description Partially update a player's name or stat fields
// @Tags Players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} Player
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 409 {object} map[string]interface{} "Another player already has this name"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players/{id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid player ID format")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	player, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve player")
		return
	}
	if player == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Player not found")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			responses.ErrorResponse(c, http.StatusBadRequest, "Player name cannot be blank")
			return
		}
		if !strings.EqualFold(name, player.Name) {
			existing, err := pc.repo.FindPlayerByName(name)
			if err != nil {
				responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to check existing players")
				return
			}
			if existing != nil && existing.ID != player.ID {
				responses.ErrorResponse(c, http.StatusConflict, "Another player already has this name")
				return
			}
		}
		player.Name = name
	}
	if req.Runs != nil {
		player.Runs = *req.Runs
	}
	if req.Balls != nil {
		player.Balls = *req.Balls
	}
	if req.Fours != nil {
		player.Fours = *req.Fours
	}
	if req.Sixes != nil {
		player.Sixes = *req.Sixes
	}
	if req.IsOut != nil {
		player.IsOut = *req.IsOut
	}
	if req.Wickets != nil {
		player.Wickets = *req.Wickets
	}
	if req.OversBowled != nil {
		player.OversBowled = *req.OversBowled
	}
	if req.RunsConceded != nil {
		player.RunsConceded = *req.RunsConceded
	}

	if err := pc.repo.UpdatePlayer(player); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to update player")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, player)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Description Remove a player from the roster and from any team they belong to
// @Tags Players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} map[string]interface{} "Player deleted"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players/{id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid player ID format")
		return
	}

	player, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve player")
		return
	}
	if player == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Player not found")
		return
	}

	if err := pc.teamRepo.RemovePlayerEverywhere(uint(id)); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to remove player from teams")
		return
	}
	if err := pc.repo.DeletePlayer(uint(id)); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete player")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Player deleted successfully"})
}

// ResetStats godoc
// @Summary Reset all player stats
// @Description Zero every player's batting and bowling stats; the roster itself is kept
// @Tags Players
// @Produce json
// @Success 200 {object} map[string]interface{} "Stats reset"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players/reset-stats [post]
func (pc *PlayerController) ResetStats(c *gin.Context) {
	if err := pc.repo.ResetAllStats(); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to reset player stats")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "All player stats reset"})
}
