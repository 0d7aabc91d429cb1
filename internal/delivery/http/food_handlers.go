package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/familyplate/backend/internal/domain"
)

// SearchFoods returns foods whose name contains the q parameter.
func (h *Handler) SearchFoods(c *gin.Context) {
	foods, err := h.foods.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

type createFoodRequest struct {
	Name string `json:"name"`
}

// CreateCustomFood creates a custom food with best-effort AI nutrient
// auto-fill.
func (h *Handler) CreateCustomFood(c *gin.Context) {
	var req createFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}

	food, err := h.foods.CreateCustom(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

type smartMatchRequest struct {
	Query string `json:"query"`
}

// SmartMatchFood matches a free-text query against existing foods or
// creates a new one via the estimator.
func (h *Handler) SmartMatchFood(c *gin.Context) {
	var req smartMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}

	result, err := h.foods.SmartMatch(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListNutrients returns the nutrient catalog.
func (h *Handler) ListNutrients(c *gin.Context) {
	nutrients, err := h.nutrients.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nutrients)
}

type addNutrientRequest struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Category    string  `json:"category"`
	DailyTarget float64 `json:"daily_target"`
}

// AddNutrient creates a new tracked nutrient and starts the food backfill
// sweep (admin only).
func (h *Handler) AddNutrient(c *gin.Context) {
	var req addNutrientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}

	nutrient, err := h.nutrients.AddTracked(c.Request.Context(), req.Name, req.Unit, req.Category, req.DailyTarget)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"nutrient": nutrient,
		"message":  "Nutrient created. Backfill started in background.",
	})
}

type parseMealRequest struct {
	Text string `json:"text"`
}

// ParseMeal turns a free-text meal description into food items with gram
// quantities.
func (h *Handler) ParseMeal(c *gin.Context) {
	var req parseMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}

	items, err := h.foods.ParseMeal(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
