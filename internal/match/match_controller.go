package match

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/gullyscore/api/config"
	"github.com/gullyscore/api/internal/engine"
	"github.com/gullyscore/api/internal/history"
	"github.com/gullyscore/api/internal/player"
	"github.com/gullyscore/api/internal/team"
	"github.com/gullyscore/api/pkg/responses"
)

// MatchController handles API requests for the live match. It holds the raw
// DB handle as well because recording a ball must commit the match row and
// both player stat rows in one transaction.
type MatchController struct {
	db          *gorm.DB
	repo        MatchRepository
	playerRepo  player.PlayerRepository
	teamRepo    team.TeamRepository
	historyRepo history.HistoryRepository
	config      *config.Config
}

// NewMatchController creates a new MatchController.
func NewMatchController(db *gorm.DB, cfg *config.Config) *MatchController {
	return &MatchController{
		db:          db,
		repo:        NewMatchRepository(db),
		playerRepo:  player.NewPlayerRepository(db),
		teamRepo:    team.NewTeamRepository(db),
		historyRepo: history.NewHistoryRepository(db),
		config:      cfg,
	}
}

// --- DTOs ---

type SetupMatchRequest struct {
	Name          string `json:"name" binding:"omitempty,max=200"`
	OversLimit    *int   `json:"oversLimit" binding:"omitempty,min=1,max=90"`
	BattingTeamID string `json:"battingTeamId" binding:"required,oneof=team-a team-b"`
	BowlingTeamID string `json:"bowlingTeamId" binding:"required,oneof=team-a team-b"`
}

type RecordBallRequest struct {
	Runs     int  `json:"runs" binding:"min=0,max=6"`
	IsNoBall bool `json:"isNoBall"`
	IsWide   bool `json:"isWide"`
	IsWicket bool `json:"isWicket"`
}

type SelectBatsmanRequest struct {
	// Nil clears the slot.
	PlayerID *uint `json:"playerId"`
	Position int   `json:"position" binding:"min=0,max=1"`
}

type SelectBowlerRequest struct {
	PlayerID uint `json:"playerId" binding:"required"`
}

// engineErrorResponse maps scoring engine errors onto HTTP statuses:
// malformed input is the client's fault, a wrong-status operation is a
// conflict with the current match state.
func engineErrorResponse(c *gin.Context, err error) {
	var illegal *engine.IllegalStateError
	var invalid *engine.ValidationError
	var missing *engine.MissingParticipantsError
	switch {
	case errors.As(err, &illegal):
		responses.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.As(err, &invalid), errors.As(err, &missing), errors.Is(err, engine.ErrInvalidDelivery):
		responses.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("Match operation failed")
		responses.ErrorResponse(c, http.StatusInternalServerError, "Match operation failed")
	}
}

func (mc *MatchController) loadMatchAndRosters(c *gin.Context) (*Match, map[string]engine.Roster, bool) {
	m, err := mc.repo.GetCurrent()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to load match")
		return nil, nil, false
	}
	rosters, err := mc.teamRepo.Rosters()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to load teams")
		return nil, nil, false
	}
	return m, rosters, true
}

// --- Handlers ---

// GetMatch godoc
// @Summary Get the live match
// @Description The current match document plus a derived live block
// @Description (overs display, run rates, chase target, result when decided)
// @Tags Match
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match [get]
func (mc *MatchController) GetMatch(c *gin.Context) {
	m, rosters, ok := mc.loadMatchAndRosters(c)
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, buildMatchView(m, rosters))
}

// SetupMatch godoc
// @Summary Configure the match
// @Description Set name, overs limit and which side bats first. Setup state only.
// @Tags Match
// @Accept json
// @Produce json
// @Param setup body SetupMatchRequest true "Match setup"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 409 {object} map[string]interface{} "Match already started"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/setup [post]
func (mc *MatchController) SetupMatch(c *gin.Context) {
	var req SetupMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	m, rosters, ok := mc.loadMatchAndRosters(c)
	if !ok {
		return
	}

	state := m.EngineState()
	cfg := engine.Config{
		Name:            strings.TrimSpace(req.Name),
		OversLimit:      req.OversLimit,
		BattingTeamID:   req.BattingTeamID,
		BowlingTeamID:   req.BowlingTeamID,
		BattingTeamSize: rosters[req.BattingTeamID].Size,
		BowlingTeamSize: rosters[req.BowlingTeamID].Size,
	}
	if err := state.Configure(cfg); err != nil {
		engineErrorResponse(c, err)
		return
	}

	m.ApplyEngineState(state)
	if err := mc.repo.Save(m); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to save match")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, buildMatchView(m, rosters))
}

// StartMatch godoc
// @Summary Start the match
// @Description Move a configured match into live play
// @Tags Match
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Match not configured"
// @Failure 409 {object} map[string]interface{} "Match already started"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/start [post]
func (mc *MatchController) StartMatch(c *gin.Context) {
	m, rosters, ok := mc.loadMatchAndRosters(c)
	if !ok {
		return
	}

	state := m.EngineState()
	if err := state.Start(); err != nil {
		engineErrorResponse(c, err)
		return
	}

	m.ApplyEngineState(state)
	if err := mc.repo.Save(m); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to save match")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, buildMatchView(m, rosters))
}

// RecordBall godoc
// @Summary Record a delivery
// @Description Fold one delivery into the match and both players' stats.
// @Description The match row and the striker's and bowler's stat rows commit
// @Description in one transaction.
// @Tags Match
// @Accept json
// @Produce json
// @Param ball body RecordBallRequest true "Delivery description"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid delivery or missing selections"
// @Failure 409 {object} map[string]interface{} "Match is not live"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/ball [post]
func (mc *MatchController) RecordBall(c *gin.Context) {
	var req RecordBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	m, rosters, ok := mc.loadMatchAndRosters(c)
	if !ok {
		return
	}

	state := m.EngineState()
	outcome, err := state.ApplyDelivery(engine.Input{
		Runs:     req.Runs,
		IsNoBall: req.IsNoBall,
		IsWide:   req.IsWide,
		IsWicket: req.IsWicket,
	})
	if err != nil {
		engineErrorResponse(c, err)
		return
	}

	bat, bowl := engine.DeliveryDeltas(outcome.Ball)
	m.ApplyEngineState(state)
	err = mc.db.Transaction(func(tx *gorm.DB) error {
		if err := NewMatchRepository(tx).Save(m); err != nil {
			return err
		}
		txPlayers := player.NewPlayerRepository(tx)
		if err := txPlayers.ApplyBattingDelta(outcome.Ball.BatsmanID, bat); err != nil {
			return err
		}
		return txPlayers.ApplyBowlingDelta(outcome.Ball.BowlerID, bowl)
	})
	if err != nil {
		log.WithError(err).Error("Failed to commit delivery")
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to record ball")
		return
	}

	view := buildMatchView(m, rosters)
	view["outcome"] = outcome
	responses.SuccessResponse(c, http.StatusOK, view)
}

// UndoBall godoc
// @Summary Undo the last delivery
// @Description Remove the newest ledger entry and exactly reverse the match
// @Description totals and player stat deltas it contributed. Strike rotation
// @Description and selection side effects are not reversed. A no-op when the
// @Description ledger is empty.
// @Tags Match
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{} "Match is not live"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/undo [post]
func (mc *MatchController) UndoBall(c *gin.Context) {
	m, rosters, ok := mc.loadMatchAndRosters(c)
	if !ok {
		return
	}

	state := m.EngineState()
	removed, err := state.UndoLastDelivery()
	if err != nil {
		engineErrorResponse(c, err)
		return
	}
	if removed == nil {
		view := buildMatchView(m, rosters)
		view["undone"] = false
		view["message"] = "Nothing to undo"
		responses.SuccessResponse(c, http.StatusOK, view)
		return
	}

	// Inverses come from the popped ledger entry itself, never from the
	// current totals.
	bat, bowl := engine.DeliveryDeltas(*removed)
	m.ApplyEngineState(state)
	err = mc.db.Transaction(func(tx *gorm.DB) error {
		if err := NewMatchRepository(tx).Save(m); err != nil {
			return err
		}
		txPlayers := player.NewPlayerRepository(tx)
		if err := txPlayers.ApplyBattingDelta(removed.BatsmanID, bat.Inverse()); err != nil {
			return err
		}
		return txPlayers.ApplyBowlingDelta(removed.BowlerID, bowl.Inverse())
	})
	if err != nil {
		log.WithError(err).Error("Failed to commit undo")
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to undo ball")
		return
	}

	view := buildMatchView(m, rosters)
	view["undone"] = true
	view["ball"] = removed
	responses.SuccessResponse(c, http.StatusOK, view)
}

// SelectBatsman godoc
// @Summary Select a batsman
// @Description Fill (or clear) the striker or non-striker slot. The player
// @Description must belong to the batting side and not be dismissed.
// @Tags Match
// @Accept json
// @Produce json
// @Param selection body SelectBatsmanRequest true "Batsman selection"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid selection"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/batsman [put]
func (mc *MatchController) SelectBatsman(c *gin.Context) {
	var req SelectBatsmanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	m, rosters, ok := mc.loadMatchAndRosters(c)
	if !ok {
		return
	}

	if req.PlayerID != nil {
		if !mc.validateSideMember(c, *req.PlayerID, m.BattingTeamID, "batting") {
			return
		}
		p, err := mc.playerRepo.GetPlayerByID(*req.PlayerID)
		if err != nil || p == nil {
			responses.ErrorResponse(c, http.StatusBadRequest, "Player not found")
			return
		}
		if p.IsOut {
			responses.ErrorResponse(c, http.StatusBadRequest, "A dismissed batsman cannot bat again")
			return
		}
	}

	state := m.EngineState()
	if err := state.SelectBatsman(req.PlayerID, req.Position); err != nil {
		engineErrorResponse(c, err)
		return
	}

	m.ApplyEngineState(state)
	if err := mc.repo.Save(m); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to save match")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, buildMatchView(m, rosters))
}

// SelectBowler godoc
// @Summary Select the bowler
// @Description Set the bowler for the over. The bowler of the immediately
// @Description preceding over is ineligible.
// @Tags Match
// @Accept json
// @Produce json
// @Param selection body SelectBowlerRequest true "Bowler selection"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid selection or consecutive over"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/bowler [put]
func (mc *MatchController) SelectBowler(c *gin.Context) {
	var req SelectBowlerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	m, rosters, ok := mc.loadMatchAndRosters(c)
	if !ok {
		return
	}
	if !mc.validateSideMember(c, req.PlayerID, m.BowlingTeamID, "bowling") {
		return
	}

	state := m.EngineState()
	if err := state.SelectBowler(req.PlayerID); err != nil {
		engineErrorResponse(c, err)
		return
	}

	m.ApplyEngineState(state)
	if err := mc.repo.Save(m); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to save match")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, buildMatchView(m, rosters))
}

// validateSideMember checks the player is assigned to the given side.
func (mc *MatchController) validateSideMember(c *gin.Context, playerID uint, teamID, side string) bool {
	if teamID == "" {
		responses.ErrorResponse(c, http.StatusBadRequest, "Match has no "+side+" team configured")
		return false
	}
	ids, err := mc.teamRepo.PlayerIDs(teamID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to load team membership")
		return false
	}
	for _, id := range ids {
		if id == playerID {
			return true
		}
	}
	responses.ErrorResponse(c, http.StatusBadRequest, "Player is not on the "+side+" team")
	return false
}

// EndInnings godoc
// @Summary End the first innings
// @Tags Match
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{} "Not in the first innings of a live match"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/end-innings [post]
func (mc *MatchController) EndInnings(c *gin.Context) {
	mc.transition(c, func(state *engine.State) error { return state.EndInnings() })
}

// StartSecondInnings godoc
// @Summary Start the second innings
// @Description Snapshot the first innings, swap the sides and reset the live
// @Description counters for the chase.
// @Tags Match
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{} "Second innings cannot start now"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/second-innings [post]
func (mc *MatchController) StartSecondInnings(c *gin.Context) {
	mc.transition(c, func(state *engine.State) error { return state.StartSecondInnings() })
}

// CompleteMatch godoc
// @Summary Complete the match
// @Tags Match
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{} "Match cannot be completed now"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/complete [post]
func (mc *MatchController) CompleteMatch(c *gin.Context) {
	mc.transition(c, func(state *engine.State) error { return state.Complete() })
}

// transition applies a status-only engine operation and saves the result.
func (mc *MatchController) transition(c *gin.Context, op func(*engine.State) error) {
	m, rosters, ok := mc.loadMatchAndRosters(c)
	if !ok {
		return
	}

	state := m.EngineState()
	if err := op(&state); err != nil {
		engineErrorResponse(c, err)
		return
	}

	m.ApplyEngineState(state)
	if err := mc.repo.Save(m); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to save match")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, buildMatchView(m, rosters))
}

// GetSummary godoc
// @Summary Match summary
// @Description Scorecards, man of the match and the result line
// @Tags Match
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/summary [get]
func (mc *MatchController) GetSummary(c *gin.Context) {
	m, rosters, ok := mc.loadMatchAndRosters(c)
	if !ok {
		return
	}
	players, err := mc.playerRepo.GetAllPlayers()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to load players")
		return
	}
	teams, err := mc.teamRepo.GetConfig()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to load teams")
		return
	}

	state := m.EngineState()
	cards := toPlayerCards(players)

	// Scorecards are per side, filtered down to that team's members.
	teamCards := make([]gin.H, 0, len(teams))
	for _, tv := range teams {
		members := make(map[uint]bool, len(tv.PlayerIDs))
		for _, id := range tv.PlayerIDs {
			members[id] = true
		}
		side := make([]engine.PlayerCard, 0, len(tv.PlayerIDs))
		for _, card := range cards {
			if members[card.ID] {
				side = append(side, card)
			}
		}
		teamCards = append(teamCards, gin.H{
			"id":      tv.ID,
			"name":    tv.Name,
			"batting": toBattingEntries(engine.BattingScorecard(side)),
			"bowling": toBowlingEntries(engine.BowlingScorecard(side)),
		})
	}

	summary := gin.H{
		"match": m,
		"teams": teamCards,
	}
	if mom := engine.ManOfTheMatch(cards); mom != nil {
		summary["manOfTheMatch"] = mom
	}
	if result, resolved := engine.ResultText(&state, rosters); resolved {
		summary["result"] = result
	}
	responses.SuccessResponse(c, http.StatusOK, summary)
}

// ResetMatch godoc
// @Summary Reset the match
// @Description Return the match to its default setup state and zero every
// @Description player's stats, in one transaction. Rosters and team
// @Description membership are kept.
// @Tags Match
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/reset [post]
func (mc *MatchController) ResetMatch(c *gin.Context) {
	var m *Match
	err := mc.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		m, txErr = NewMatchRepository(tx).ResetToDefault()
		if txErr != nil {
			return txErr
		}
		return player.NewPlayerRepository(tx).ResetAllStats()
	})
	if err != nil {
		log.WithError(err).Error("Failed to reset match")
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to reset match")
		return
	}

	rosters, err := mc.teamRepo.Rosters()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to load teams")
		return
	}
	view := buildMatchView(m, rosters)
	view["message"] = "Match reset"
	responses.SuccessResponse(c, http.StatusOK, view)
}

// ArchiveMatch godoc
// @Summary Archive the completed match
// @Description Freeze the final match, player and team documents into the
// @Description history table, then reset the match and player stats for the
// @Description next game. Only a completed match can be archived.
// @Tags Match
// @Produce json
// @Success 201 {object} history.Record
// @Failure 409 {object} map[string]interface{} "Match is not complete"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /match/archive [post]
func (mc *MatchController) ArchiveMatch(c *gin.Context) {
	m, rosters, ok := mc.loadMatchAndRosters(c)
	if !ok {
		return
	}
	if m.Status != string(engine.StatusComplete) {
		engineErrorResponse(c, &engine.IllegalStateError{Op: "archive", Status: engine.Status(m.Status)})
		return
	}

	players, err := mc.playerRepo.GetAllPlayers()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to load players")
		return
	}
	teams, err := mc.teamRepo.GetConfig()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to load teams")
		return
	}

	state := m.EngineState()
	cards := toPlayerCards(players)
	record := &history.Record{}
	if result, resolved := engine.ResultText(&state, rosters); resolved {
		record.Result = result
	}
	if mom := engine.ManOfTheMatch(cards); mom != nil {
		record.ManOfTheMatch = mom.Name
	}
	if record.Match, err = marshalDocument(m); err == nil {
		if record.Players, err = marshalDocument(players); err == nil {
			record.Teams, err = marshalDocument(teams)
		}
	}
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to snapshot match")
		return
	}

	err = mc.db.Transaction(func(tx *gorm.DB) error {
		if txErr := history.NewHistoryRepository(tx).Create(record); txErr != nil {
			return txErr
		}
		if _, txErr := NewMatchRepository(tx).ResetToDefault(); txErr != nil {
			return txErr
		}
		return player.NewPlayerRepository(tx).ResetAllStats()
	})
	if err != nil {
		log.WithError(err).Error("Failed to archive match")
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to archive match")
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, record)
}

// ResetAll godoc
// @Summary Factory reset
// @Description Delete every player, clear team membership and reset the
// @Description match. Archived history is kept.
// @Tags Match
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reset-all [post]
func (mc *MatchController) ResetAll(c *gin.Context) {
	err := mc.db.Transaction(func(tx *gorm.DB) error {
		if _, txErr := NewMatchRepository(tx).ResetToDefault(); txErr != nil {
			return txErr
		}
		if txErr := team.NewTeamRepository(tx).ResetToDefaults(); txErr != nil {
			return txErr
		}
		return player.NewPlayerRepository(tx).DeleteAllPlayers()
	})
	if err != nil {
		log.WithError(err).Error("Failed to reset application data")
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to reset application data")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "All data reset"})
}

func marshalDocument(v interface{}) (history.Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return history.Document(data), nil
}
