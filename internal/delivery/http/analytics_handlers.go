package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AnalyticsDay returns the full nutrient report for one day (self or admin).
// The date query parameter defaults to today.
func (h *Handler) AnalyticsDay(c *gin.Context) {
	claims := callerClaims(c)

	targetID, ok := targetUserID(c, claims)
	if !ok {
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	report, err := h.analytics.DayReport(c.Request.Context(), targetID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// AnalyticsHistory returns the per-day macro series for an inclusive date
// range (self or admin). The range defaults to the last seven days.
func (h *Handler) AnalyticsHistory(c *gin.Context) {
	claims := callerClaims(c)

	targetID, ok := targetUserID(c, claims)
	if !ok {
		return
	}

	end := time.Now()
	start := end.AddDate(0, 0, -6)
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
			return
		}
		start = parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
			return
		}
		end = parsed
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date before start_date"})
		return
	}

	series, err := h.analytics.History(c.Request.Context(), targetID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": series})
}
