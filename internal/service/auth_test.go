package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"golden-catering/internal/auth"
	"golden-catering/internal/client"
	"golden-catering/internal/model"
	"golden-catering/internal/repository"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := client.InitSqliteClient(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to init test database: %v", err)
	}
	t.Cleanup(func() {
		_ = client.CloseSqliteClient(db)
	})

	return db
}

func newAuthService(t *testing.T, db *gorm.DB) AuthService {
	t.Helper()
	tokens := auth.NewJWTManager("test-secret", auth.TokenTTL)
	return NewAuthService(repository.NewUserRepository(db), tokens)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if err := svc.Register(ctx, "Jane", "jane@x.com", "secret1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.Login(ctx, "jane@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("Expected a token")
	}
	if resp.User.Email != "jane@x.com" {
		t.Errorf("Expected user email jane@x.com, got %q", resp.User.Email)
	}
	if resp.User.Name != "Jane" {
		t.Errorf("Expected user name Jane, got %q", resp.User.Name)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if err := svc.Register(ctx, "Jane", "jane@x.com", "secret1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	err := svc.Register(ctx, "Other Jane", "jane@x.com", "secret2")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("Expected ErrEmailExists, got %v", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", "jane@x.com").Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly one row for the email, got %d", count)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if err := svc.Register(ctx, "Jane", "jane@x.com", "secret1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, "jane@x.com", "not-it")
	_, unknownEmail := svc.Login(ctx, "nobody@x.com", "secret1")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
}

func TestRegisterWithoutPassword(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if err := svc.Register(ctx, "Jane", "jane@x.com", ""); err != nil {
		t.Fatalf("Register without password failed: %v", err)
	}

	// A password login against a passwordless account must still look like
	// bad credentials.
	_, err := svc.Login(ctx, "jane@x.com", "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGoogleLoginUpsert(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newAuthService(t, db)

	first, err := svc.GoogleLogin(ctx, "jane@x.com", "Jane", "google-sub-1")
	if err != nil {
		t.Fatalf("GoogleLogin failed: %v", err)
	}
	if first.User.Verified == nil || !*first.User.Verified {
		t.Error("Expected google user to be verified")
	}

	second, err := svc.GoogleLogin(ctx, "jane@x.com", "Jane", "google-sub-1")
	if err != nil {
		t.Fatalf("Second GoogleLogin failed: %v", err)
	}
	if second.User.ID != first.User.ID {
		t.Errorf("Expected the same user id, got %d and %d", first.User.ID, second.User.ID)
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly one user row, got %d", count)
	}

	var user model.User
	if err := db.Where("email = ?", "jane@x.com").First(&user).Error; err != nil {
		t.Fatalf("Fetch user failed: %v", err)
	}
	if user.LastLogin == nil {
		t.Error("Expected last_login to be touched on the second sign-in")
	} else if time.Since(*user.LastLogin) > time.Minute {
		t.Errorf("Expected a recent last_login, got %v", user.LastLogin)
	}
}

func TestGoogleLoginUpgradesPasswordAccount(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if err := svc.Register(ctx, "Jane", "jane@x.com", "secret1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.GoogleLogin(ctx, "jane@x.com", "Jane", "google-sub-1")
	if err != nil {
		t.Fatalf("GoogleLogin failed: %v", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected the existing account to be reused, got %d rows", count)
	}

	// The original password login keeps working after the upgrade.
	login, err := svc.Login(ctx, "jane@x.com", "secret1")
	if err != nil {
		t.Fatalf("Password login after google sign-in failed: %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Errorf("Expected matching user ids, got %d and %d", login.User.ID, resp.User.ID)
	}
}
