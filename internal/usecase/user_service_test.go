package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/familyplate/backend/internal/domain"
)

func TestUserServiceGet(t *testing.T) {
	ctx := context.Background()

	users := NewMockUserRepo()
	users.Create(ctx, &domain.User{Name: "Sam", Email: "sam@example.com"})
	users.Create(ctx, &domain.User{Name: "Alex", Email: "alex@example.com"})
	svc := NewUserService(users)

	t.Run("self access", func(t *testing.T) {
		user, err := svc.Get(ctx, 1, false, 1)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if user.Name != "Sam" {
			t.Errorf("name = %q, want Sam", user.Name)
		}
	})

	t.Run("admin access to another user", func(t *testing.T) {
		if _, err := svc.Get(ctx, 1, true, 2); err != nil {
			t.Errorf("Get() error = %v", err)
		}
	})

	t.Run("non-admin cross access is forbidden", func(t *testing.T) {
		_, err := svc.Get(ctx, 1, false, 2)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("error = %v, want ErrForbidden", err)
		}
	})
}

func TestCreateUserWithRole(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit admin role", func(t *testing.T) {
		svc := NewUserService(NewMockUserRepo())
		user, err := svc.CreateUser(ctx, "Root", "root@example.com", "pass", domain.RoleAdmin)
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if user.Role != domain.RoleAdmin {
			t.Errorf("role = %q, want admin", user.Role)
		}
	})

	t.Run("empty role defaults to user", func(t *testing.T) {
		svc := NewUserService(NewMockUserRepo())
		user, err := svc.CreateUser(ctx, "Sam", "sam@example.com", "pass", "")
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if user.Role != domain.RoleUser {
			t.Errorf("role = %q, want user", user.Role)
		}
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		svc := NewUserService(NewMockUserRepo())
		_, err := svc.CreateUser(ctx, "Sam", "sam@example.com", "pass", "overlord")
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("taken email is rejected", func(t *testing.T) {
		svc := NewUserService(NewMockUserRepo())
		if _, err := svc.CreateUser(ctx, "Sam", "sam@example.com", "pass", ""); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		_, err := svc.CreateUser(ctx, "Other", "sam@example.com", "pass", "")
		if !errors.Is(err, domain.ErrEmailTaken) {
			t.Errorf("error = %v, want ErrEmailTaken", err)
		}
	})
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()

	users := NewMockUserRepo()
	users.Create(ctx, &domain.User{Name: "Sam", Email: "sam@example.com", PasswordHash: "old"})
	svc := NewUserService(users)

	t.Run("too short", func(t *testing.T) {
		err := svc.ResetPassword(ctx, 1, "abc")
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("stores a bcrypt hash", func(t *testing.T) {
		if err := svc.ResetPassword(ctx, 1, "newpass"); err != nil {
			t.Fatalf("ResetPassword() error = %v", err)
		}
		user, _ := users.GetByID(ctx, 1)
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpass")); err != nil {
			t.Errorf("stored hash does not verify: %v", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*UserService, *MockUserRepo) {
		t.Helper()
		users := NewMockUserRepo()
		users.Create(ctx, &domain.User{Name: "Sam", Email: "sam@example.com"})
		return NewUserService(users), users
	}

	t.Run("applies only the provided fields", func(t *testing.T) {
		svc, _ := setup(t)

		dob := time.Date(1996, time.June, 15, 0, 0, 0, 0, time.UTC)
		user, err := svc.UpdateProfile(ctx, 1, false, 1, domain.ProfileUpdate{
			WeightKG:    floatPtr(70),
			DateOfBirth: &dob,
		})
		if err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
		if user.Name != "Sam" {
			t.Errorf("name changed to %q", user.Name)
		}
		if user.WeightKG == nil || *user.WeightKG != 70 {
			t.Errorf("weight = %v, want 70", user.WeightKG)
		}
		if user.DateOfBirth == nil || !user.DateOfBirth.Equal(dob) {
			t.Errorf("dob = %v, want %v", user.DateOfBirth, dob)
		}
	})

	t.Run("validates the activity level", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.UpdateProfile(ctx, 1, false, 1, domain.ProfileUpdate{
			ActivityLevel: strPtr("couch"),
		})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.UpdateProfile(ctx, 2, false, 1, domain.ProfileUpdate{Name: strPtr("Hacked")})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("error = %v, want ErrForbidden", err)
		}
	})

	t.Run("admin may edit anyone", func(t *testing.T) {
		svc, users := setup(t)

		if _, err := svc.UpdateProfile(ctx, 99, true, 1, domain.ProfileUpdate{Name: strPtr("Samuel")}); err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
		user, _ := users.GetByID(ctx, 1)
		if user.Name != "Samuel" {
			t.Errorf("name = %q, want Samuel", user.Name)
		}
	})
}
