package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/reporting"
	"fintrack/internal/services"
)

// SummaryHandler serves period summaries.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// SummaryQuery holds the query parameters of the summary endpoint.
type SummaryQuery struct {
	Period    string `form:"period" binding:"omitempty,summary_period"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// GetSummary returns income, expense and balance totals for a period
// @Summary     Get financial summary
// @Description Aggregate the user's transactions over a period. start_date and end_date override the period bounds independently; custom requires both.
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       period     query string false "week, month (default), year or custom"
// @Param       start_date query string false "Range start (YYYY-MM-DD)"
// @Param       end_date   query string false "Range end (YYYY-MM-DD)"
// @Success     200 {object} SummaryResponse "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /finance/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	period, err := reporting.ParsePeriod(q.Period)
	if err != nil {
		respondWithError(c, apperrors.WithDetails(apperrors.ErrInvalidInput, "Invalid period",
			map[string]string{"period": err.Error()}))
		return
	}

	start, err := parseDate("start_date", q.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseDate("end_date", q.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if period == reporting.PeriodCustom && (start == nil || end == nil) {
		respondWithError(c, apperrors.WithDetails(apperrors.ErrInvalidInput, "Custom period requires a date range",
			map[string]string{"start_date": "is required for custom period", "end_date": "is required for custom period"}))
		return
	}
	if start != nil && end != nil && start.After(*end) {
		respondWithError(c, apperrors.WithDetails(apperrors.ErrInvalidInput, "Invalid date range",
			map[string]string{"start_date": "must not be after end_date"}))
		return
	}

	summary, err := h.summaryService.GetSummary(c.Request.Context(), userID, period, start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": newSummaryResponse(summary)})
}
