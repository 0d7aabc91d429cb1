package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/familyplate/backend/internal/domain"
)

// MockUserRepo is an in-memory implementation of domain.UserRepository
type MockUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	u, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

// MockFoodRepo is an in-memory implementation of domain.FoodRepository
type MockFoodRepo struct {
	foods     map[uint]*domain.Food
	nextID    uint
	createErr error
}

func NewMockFoodRepo() *MockFoodRepo {
	return &MockFoodRepo{foods: make(map[uint]*domain.Food), nextID: 1}
}

func (m *MockFoodRepo) add(name string) *domain.Food {
	food := &domain.Food{Name: name, DefaultUnit: "g", GramsPerUnit: 1}
	food.ID = m.nextID
	m.nextID++
	m.foods[food.ID] = food
	return food
}

func (m *MockFoodRepo) Create(ctx context.Context, food *domain.Food) error {
	if m.createErr != nil {
		return m.createErr
	}
	food.ID = m.nextID
	m.nextID++
	copied := *food
	m.foods[food.ID] = &copied
	return nil
}

func (m *MockFoodRepo) GetByID(ctx context.Context, id uint) (*domain.Food, error) {
	if f, ok := m.foods[id]; ok {
		copied := *f
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockFoodRepo) GetByName(ctx context.Context, name string) (*domain.Food, error) {
	for _, f := range m.foods {
		if strings.EqualFold(f.Name, name) {
			copied := *f
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockFoodRepo) Search(ctx context.Context, query string, limit int) ([]domain.Food, error) {
	var out []domain.Food
	for _, f := range m.foods {
		if strings.Contains(strings.ToLower(f.Name), strings.ToLower(query)) {
			out = append(out, *f)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MockFoodRepo) ListAll(ctx context.Context) ([]domain.Food, error) {
	out := make([]domain.Food, 0, len(m.foods))
	for id := uint(1); id < m.nextID; id++ {
		if f, ok := m.foods[id]; ok {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *MockFoodRepo) ListNames(ctx context.Context) ([]string, error) {
	foods, _ := m.ListAll(ctx)
	names := make([]string, 0, len(foods))
	for _, f := range foods {
		names = append(names, f.Name)
	}
	return names, nil
}

func (m *MockFoodRepo) NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	out := make(map[uint]string)
	for _, id := range ids {
		if f, ok := m.foods[id]; ok {
			out[id] = f.Name
		}
	}
	return out, nil
}

// MockNutrientRepo is an in-memory implementation of domain.NutrientRepository
type MockNutrientRepo struct {
	nutrients []domain.Nutrient
	nextID    uint
}

func NewMockNutrientRepo(nutrients ...domain.Nutrient) *MockNutrientRepo {
	m := &MockNutrientRepo{nextID: 1}
	for _, n := range nutrients {
		nutrient := n
		m.Create(context.Background(), &nutrient)
	}
	return m
}

func (m *MockNutrientRepo) Create(ctx context.Context, nutrient *domain.Nutrient) error {
	nutrient.ID = m.nextID
	m.nextID++
	m.nutrients = append(m.nutrients, *nutrient)
	return nil
}

func (m *MockNutrientRepo) List(ctx context.Context) ([]domain.Nutrient, error) {
	return append([]domain.Nutrient(nil), m.nutrients...), nil
}

func (m *MockNutrientRepo) GetByCodes(ctx context.Context, codes []string) ([]domain.Nutrient, error) {
	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		want[c] = true
	}
	var out []domain.Nutrient
	for _, n := range m.nutrients {
		if want[n.Code] {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *MockNutrientRepo) GetByIDs(ctx context.Context, ids []uint) ([]domain.Nutrient, error) {
	want := make(map[uint]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []domain.Nutrient
	for _, n := range m.nutrients {
		if want[n.ID] {
			out = append(out, n)
		}
	}
	return out, nil
}

// MockFoodNutrientRepo is an in-memory implementation of
// domain.FoodNutrientRepository. Inserts mirror production conflict
// handling: a duplicate (food, nutrient) pair is silently ignored.
type MockFoodNutrientRepo struct {
	rows      []domain.FoodNutrient
	nutrients *MockNutrientRepo
	insertErr error
}

func NewMockFoodNutrientRepo(nutrients *MockNutrientRepo) *MockFoodNutrientRepo {
	return &MockFoodNutrientRepo{nutrients: nutrients}
}

func (m *MockFoodNutrientRepo) HasAny(ctx context.Context, foodID uint) (bool, error) {
	for _, r := range m.rows {
		if r.FoodID == foodID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockFoodNutrientRepo) Has(ctx context.Context, foodID, nutrientID uint) (bool, error) {
	for _, r := range m.rows {
		if r.FoodID == foodID && r.NutrientID == nutrientID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockFoodNutrientRepo) Insert(ctx context.Context, row *domain.FoodNutrient) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if has, _ := m.Has(ctx, row.FoodID, row.NutrientID); has {
		return nil
	}
	m.rows = append(m.rows, *row)
	return nil
}

func (m *MockFoodNutrientRepo) ForFoods(ctx context.Context, foodIDs []uint) ([]domain.FoodNutrient, error) {
	want := make(map[uint]bool, len(foodIDs))
	for _, id := range foodIDs {
		want[id] = true
	}
	var out []domain.FoodNutrient
	for _, r := range m.rows {
		if want[r.FoodID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockFoodNutrientRepo) AmountsByCode(ctx context.Context, foodIDs []uint, codes []string) (map[uint]map[string]float64, error) {
	codeByID := make(map[uint]string)
	known, _ := m.nutrients.GetByCodes(ctx, codes)
	for _, n := range known {
		codeByID[n.ID] = n.Code
	}

	rows, _ := m.ForFoods(ctx, foodIDs)
	out := make(map[uint]map[string]float64)
	for _, r := range rows {
		code, ok := codeByID[r.NutrientID]
		if !ok {
			continue
		}
		if out[r.FoodID] == nil {
			out[r.FoodID] = make(map[string]float64)
		}
		out[r.FoodID][code] = r.AmountPer100g
	}
	return out, nil
}

// MockLogRepo is an in-memory implementation of domain.LogRepository
type MockLogRepo struct {
	logs      map[uint]*domain.IntakeLog
	nextID    uint
	createErr error
}

func NewMockLogRepo() *MockLogRepo {
	return &MockLogRepo{logs: make(map[uint]*domain.IntakeLog), nextID: 1}
}

func (m *MockLogRepo) Create(ctx context.Context, entry *domain.IntakeLog) error {
	if m.createErr != nil {
		return m.createErr
	}
	entry.ID = m.nextID
	m.nextID++
	copied := *entry
	m.logs[entry.ID] = &copied
	return nil
}

func (m *MockLogRepo) GetByID(ctx context.Context, id uint) (*domain.IntakeLog, error) {
	if l, ok := m.logs[id]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockLogRepo) Recent(ctx context.Context, userID uint, limit int) ([]domain.RecentLog, error) {
	var out []domain.RecentLog
	for id := m.nextID; id > 0 && len(out) < limit; id-- {
		l, ok := m.logs[id]
		if !ok || l.UserID != userID {
			continue
		}
		out = append(out, domain.RecentLog{ID: l.ID, FoodID: l.FoodID, Grams: l.Grams, EatenAt: l.EatenAt})
	}
	return out, nil
}

func (m *MockLogRepo) ForDay(ctx context.Context, userID uint, day time.Time) ([]domain.IntakeLog, error) {
	var out []domain.IntakeLog
	for _, l := range m.logs {
		if l.UserID == userID && l.EatenAt.Format("2006-01-02") == day.Format("2006-01-02") {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *MockLogRepo) ForRange(ctx context.Context, userID uint, start, end time.Time) ([]domain.IntakeLog, error) {
	var out []domain.IntakeLog
	from := start.Format("2006-01-02")
	to := end.Format("2006-01-02")
	for _, l := range m.logs {
		date := l.EatenAt.Format("2006-01-02")
		if l.UserID == userID && date >= from && date <= to {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *MockLogRepo) UpdateGrams(ctx context.Context, id uint, grams float64) error {
	l, ok := m.logs[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.Grams = grams
	return nil
}

func (m *MockLogRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.logs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.logs, id)
	return nil
}

// MockTargetRepo is an in-memory implementation of domain.TargetRepository
type MockTargetRepo struct {
	overrides []domain.UserNutrientTarget
	profiles  []domain.RdaProfile
	values    []domain.RdaValue
}

func NewMockTargetRepo() *MockTargetRepo {
	return &MockTargetRepo{}
}

func (m *MockTargetRepo) OverridesForUser(ctx context.Context, userID uint) ([]domain.UserNutrientTarget, error) {
	var out []domain.UserNutrientTarget
	for _, o := range m.overrides {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MockTargetRepo) SeedOverride(ctx context.Context, userID, nutrientID uint, dailyTarget float64) error {
	for _, o := range m.overrides {
		if o.UserID == userID && o.NutrientID == nutrientID {
			return nil
		}
	}
	m.overrides = append(m.overrides, domain.UserNutrientTarget{
		UserID:      userID,
		NutrientID:  nutrientID,
		DailyTarget: dailyTarget,
	})
	return nil
}

func (m *MockTargetRepo) ProfileFor(ctx context.Context, sex string, age int) (*domain.RdaProfile, error) {
	for _, p := range m.profiles {
		if p.Sex == sex && age >= p.AgeMin && age <= p.AgeMax {
			copied := p
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockTargetRepo) ProfileByLabel(ctx context.Context, label string) (*domain.RdaProfile, error) {
	for _, p := range m.profiles {
		if p.Label == label {
			copied := p
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockTargetRepo) ValuesForProfile(ctx context.Context, profileID uint) ([]domain.RdaValue, error) {
	var out []domain.RdaValue
	for _, v := range m.values {
		if v.RdaProfileID == profileID {
			out = append(out, v)
		}
	}
	return out, nil
}

// MockEstimator is a canned implementation of domain.Estimator that counts
// calls.
type MockEstimator struct {
	estimates     map[string]float64
	estimateErr   error
	singleAmount  float64
	singleErr     error
	mealItems     []domain.ParsedMealItem
	mealErr       error
	decision      *domain.FoodMatchDecision
	decisionErr   error
	estimateCalls int
	singleCalls   int
	matchCalls    int
}

func NewMockEstimator() *MockEstimator {
	return &MockEstimator{}
}

func (m *MockEstimator) EstimateNutrients(ctx context.Context, foodName string) (map[string]float64, error) {
	m.estimateCalls++
	if m.estimateErr != nil {
		return nil, m.estimateErr
	}
	return m.estimates, nil
}

func (m *MockEstimator) EstimateSingleNutrient(ctx context.Context, foodName, nutrientName string) (float64, error) {
	m.singleCalls++
	if m.singleErr != nil {
		return 0, m.singleErr
	}
	return m.singleAmount, nil
}

func (m *MockEstimator) ParseMeal(ctx context.Context, text string) ([]domain.ParsedMealItem, error) {
	if m.mealErr != nil {
		return nil, m.mealErr
	}
	return m.mealItems, nil
}

func (m *MockEstimator) MatchOrCreate(ctx context.Context, query string, existing []string) (*domain.FoodMatchDecision, error) {
	m.matchCalls++
	if m.decisionErr != nil {
		return nil, m.decisionErr
	}
	return m.decision, nil
}
