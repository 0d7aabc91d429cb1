package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/familyplate/backend/internal/domain"
	"github.com/familyplate/backend/internal/usecase"
)

type createLogRequest struct {
	UserID   uint    `json:"user_id"`
	FoodID   *uint   `json:"food_id"`
	RecipeID *uint   `json:"recipe_id"`
	Grams    float64 `json:"grams"`
	MealType string  `json:"meal_type"`
	EatenAt  string  `json:"eaten_at"`
}

// CreateLog records an intake entry. Logging for another user requires the
// admin role.
func (h *Handler) CreateLog(c *gin.Context) {
	var req createLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}
	claims := callerClaims(c)

	targetID := req.UserID
	if targetID == 0 {
		targetID = claims.UserID
	}
	if !claims.IsAdmin() && targetID != claims.UserID {
		respondError(c, domain.ErrForbidden)
		return
	}

	in := usecase.LogInput{
		UserID:   targetID,
		FoodID:   req.FoodID,
		RecipeID: req.RecipeID,
		Grams:    req.Grams,
		MealType: req.MealType,
	}
	if req.EatenAt != "" {
		eatenAt, err := time.Parse(time.RFC3339, req.EatenAt)
		if err != nil {
			respondError(c, domain.ErrInvalidRequest)
			return
		}
		in.EatenAt = eatenAt
	}

	entry, err := h.logs.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// RecentLogs returns the target user's latest entries (self or admin).
func (h *Handler) RecentLogs(c *gin.Context) {
	claims := callerClaims(c)

	targetID, ok := targetUserID(c, claims)
	if !ok {
		return
	}

	logs, err := h.logs.Recent(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

type updateLogRequest struct {
	Grams float64 `json:"grams"`
}

// UpdateLog edits a log's grams (owner or admin).
func (h *Handler) UpdateLog(c *gin.Context) {
	logID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}
	claims := callerClaims(c)

	entry, err := h.logs.UpdateGrams(c.Request.Context(), claims.UserID, claims.IsAdmin(), logID, req.Grams)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteLog removes a log (owner or admin).
func (h *Handler) DeleteLog(c *gin.Context) {
	logID, ok := idParam(c, "id")
	if !ok {
		return
	}
	claims := callerClaims(c)

	if err := h.logs.Delete(c.Request.Context(), claims.UserID, claims.IsAdmin(), logID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Log deleted successfully"})
}

// targetUserID resolves the user_id query parameter, defaulting to the
// caller, and enforces the self-or-admin rule.
func targetUserID(c *gin.Context, claims *usecase.Claims) (uint, bool) {
	targetID := claims.UserID
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return 0, false
		}
		targetID = uint(id)
	}
	if !claims.IsAdmin() && targetID != claims.UserID {
		respondError(c, domain.ErrForbidden)
		return 0, false
	}
	return targetID, true
}
