package http

import (
	"context"

	"github.com/familyplate/backend/internal/domain"
)

// stubUserRepo is a minimal in-memory user store for middleware tests.
type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubUserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	u, ok := s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

// stubEstimator returns canned answers so integration tests never call the
// real model.
type stubEstimator struct {
	estimates map[string]float64
	items     []domain.ParsedMealItem
	decision  *domain.FoodMatchDecision
	err       error
}

func (s *stubEstimator) EstimateNutrients(ctx context.Context, foodName string) (map[string]float64, error) {
	return s.estimates, s.err
}

func (s *stubEstimator) EstimateSingleNutrient(ctx context.Context, foodName, nutrientName string) (float64, error) {
	return 0, s.err
}

func (s *stubEstimator) ParseMeal(ctx context.Context, text string) ([]domain.ParsedMealItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *stubEstimator) MatchOrCreate(ctx context.Context, query string, existing []string) (*domain.FoodMatchDecision, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.decision, nil
}
