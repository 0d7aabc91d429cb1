package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/familyplate/backend/internal/domain"
)

// minPasswordLength is the floor for admin password resets.
const minPasswordLength = 4

// UserService handles user listing, admin management and profile updates.
// Ownership (self-or-admin) is checked here; the HTTP layer only extracts
// the caller's claims.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a user service.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all users, for household member dropdowns.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns a user if the actor is that user or an admin.
func (s *UserService) Get(ctx context.Context, actorID uint, actorAdmin bool, userID uint) (*domain.User, error) {
	if !actorAdmin && actorID != userID {
		return nil, domain.ErrForbidden
	}
	return s.users.GetByID(ctx, userID)
}

// CreateUser creates a user with an explicit role (admin operation).
func (s *UserService) CreateUser(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrInvalidRequest)
	}
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidRequest, role)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword sets a user's password (admin operation).
func (s *UserService) ResetPassword(ctx context.Context, userID uint, password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password too short", domain.ErrInvalidRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

// UpdateProfile applies a partial profile update after an ownership check.
// Nil fields in the update are left unchanged.
func (s *UserService) UpdateProfile(ctx context.Context, actorID uint, actorAdmin bool, userID uint, upd domain.ProfileUpdate) (*domain.User, error) {
	if !actorAdmin && actorID != userID {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Sex != nil {
		user.Sex = upd.Sex
	}
	if upd.DateOfBirth != nil {
		user.DateOfBirth = upd.DateOfBirth
	}
	if upd.HeightCM != nil {
		user.HeightCM = upd.HeightCM
	}
	if upd.WeightKG != nil {
		user.WeightKG = upd.WeightKG
	}
	if upd.ActivityLevel != nil {
		if _, ok := domain.ActivityMultipliers[*upd.ActivityLevel]; !ok {
			return nil, fmt.Errorf("%w: unknown activity level %q", domain.ErrInvalidRequest, *upd.ActivityLevel)
		}
		user.ActivityLevel = upd.ActivityLevel
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
