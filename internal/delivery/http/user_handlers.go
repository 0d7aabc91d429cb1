package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/familyplate/backend/internal/domain"
)

// ListUsers returns all household members for dropdowns.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{"id": u.ID, "name": u.Name, "role": u.Role})
	}
	c.JSON(http.StatusOK, out)
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser creates a user with an explicit role (admin only).
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword sets a user's password (admin only).
func (h *Handler) ResetPassword(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}

	if err := h.users.ResetPassword(c.Request.Context(), userID, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Password updated"})
}

// GetUser returns a user's full profile (self or admin).
func (h *Handler) GetUser(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	claims := callerClaims(c)

	user, err := h.users.Get(c.Request.Context(), claims.UserID, claims.IsAdmin(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Name          *string  `json:"name"`
	Email         *string  `json:"email"`
	Sex           *string  `json:"sex"`
	DateOfBirth   *string  `json:"date_of_birth"`
	HeightCM      *float64 `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
}

// UpdateProfile applies a partial profile update (self or admin). Empty
// strings from the frontend mean "no change", matching the COALESCE
// behavior the UI expects.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	claims := callerClaims(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}

	upd := domain.ProfileUpdate{
		Name:          nonEmpty(req.Name),
		Email:         nonEmpty(req.Email),
		Sex:           nonEmpty(req.Sex),
		HeightCM:      req.HeightCM,
		WeightKG:      req.WeightKG,
		ActivityLevel: nonEmpty(req.ActivityLevel),
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			respondError(c, domain.ErrInvalidRequest)
			return
		}
		upd.DateOfBirth = &dob
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), claims.UserID, claims.IsAdmin(), userID, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// nonEmpty treats empty strings as absent.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
