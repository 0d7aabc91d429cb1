package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/familyplate/backend/internal/domain"
	"github.com/familyplate/backend/internal/usecase"
)

// ListRecipes returns all recipes, newest first.
func (h *Handler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe returns one recipe with its ingredient list.
func (h *Handler) GetRecipe(c *gin.Context) {
	recipeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.recipes.Get(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateRecipe creates a recipe with its ingredients in one transaction.
func (h *Handler) CreateRecipe(c *gin.Context) {
	var req usecase.RecipeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}
	claims := callerClaims(c)

	recipe, err := h.recipes.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe rewrites a recipe and replaces its ingredient list (owner or
// admin).
func (h *Handler) UpdateRecipe(c *gin.Context) {
	recipeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req usecase.RecipeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}
	claims := callerClaims(c)

	recipe, err := h.recipes.Update(c.Request.Context(), claims.UserID, claims.IsAdmin(), recipeID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe removes a recipe and its ingredients (owner or admin).
func (h *Handler) DeleteRecipe(c *gin.Context) {
	recipeID, ok := idParam(c, "id")
	if !ok {
		return
	}
	claims := callerClaims(c)

	if err := h.recipes.Delete(c.Request.Context(), claims.UserID, claims.IsAdmin(), recipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
