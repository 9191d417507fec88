package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gullyscore/api/config"
	"github.com/gullyscore/api/pkg/responses"
)

// HistoryController serves archived match records.
type HistoryController struct {
	repo   HistoryRepository
	config *config.Config
}

// NewHistoryController creates a new HistoryController.
func NewHistoryController(repo HistoryRepository, cfg *config.Config) *HistoryController {
	return &HistoryController{repo: repo, config: cfg}
}

// GetHistory godoc
// @Summary List archived matches
// @Description All archived matches, newest first
// @Tags History
// @Produce json
// @Success 200 {array} Record
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /history [get]
func (hc *HistoryController) GetHistory(c *gin.Context) {
	records, err := hc.repo.GetAll()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve match history")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, records)
}

// GetHistoryRecord godoc
// @Summary Get one archived match
// @Tags History
// @Produce json
// @Param id path int true "History record ID"
// @Success 200 {object} Record
// @Failure 400 {object} map[string]interface{} "Invalid record ID"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /history/{id} [get]
func (hc *HistoryController) GetHistoryRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid history record ID format")
		return
	}

	record, err := hc.repo.GetByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve history record")
		return
	}
	if record == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "History record not found")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, record)
}
