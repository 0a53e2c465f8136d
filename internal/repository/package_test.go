package repository

import (
	"context"
	"path/filepath"
	"testing"

	"golden-catering/internal/client"

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

func TestPackageSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPackageRepository(db)

	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	packages, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(packages) != 3 {
		t.Fatalf("Expected 3 packages after double seed, got %d", len(packages))
	}

	pkg, err := repo.FindByID(ctx, 2)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if pkg.Name != "Premium Package" {
		t.Errorf("Expected Premium Package, got %q", pkg.Name)
	}
	if pkg.Price != 55 || pkg.MinGuests != 50 || pkg.MaxGuests != 200 {
		t.Errorf("Unexpected premium pricing: %+v", pkg)
	}
}

func TestMenuItemSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewMenuItemRepository(db)

	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	items, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(items) != 7 {
		t.Fatalf("Expected 7 menu items after double seed, got %d", len(items))
	}
}
