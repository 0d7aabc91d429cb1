package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/familyplate/backend/internal/domain"
	"github.com/familyplate/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	auth      *usecase.AuthService
	users     *usecase.UserService
	foods     *usecase.FoodService
	nutrients *usecase.NutrientService
	recipes   *usecase.RecipeService
	logs      *usecase.LogService
	analytics *usecase.AnalyticsService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	auth *usecase.AuthService,
	users *usecase.UserService,
	foods *usecase.FoodService,
	nutrients *usecase.NutrientService,
	recipes *usecase.RecipeService,
	logs *usecase.LogService,
	analytics *usecase.AnalyticsService,
) *Handler {
	return &Handler{
		auth:      auth,
		users:     users,
		foods:     foods,
		nutrients: nutrients,
		recipes:   recipes,
		logs:      logs,
		analytics: analytics,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "familyplate-backend",
		"version": "1.0.0",
	})
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrDuplicateCode):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEstimatorFailure):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
