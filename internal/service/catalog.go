package service

import (
	"context"
	"errors"
	"fmt"

	"golden-catering/internal/model"
	"golden-catering/internal/repository"

	"gorm.io/gorm"
)

var ErrPackageNotFound = errors.New("package not found")

type CatalogService interface {
	ListPackages(ctx context.Context) ([]*model.Package, error)
	GetPackage(ctx context.Context, packageID int64) (*model.Package, error)
	ListMenuItems(ctx context.Context) ([]*model.MenuItem, error)
}

type catalogServiceImpl struct {
	packageRepo  repository.PackageRepository
	menuItemRepo repository.MenuItemRepository
}

func NewCatalogService(
	packageRepo repository.PackageRepository,
	menuItemRepo repository.MenuItemRepository,
) CatalogService {
	return &catalogServiceImpl{
		packageRepo:  packageRepo,
		menuItemRepo: menuItemRepo,
	}
}

func (s *catalogServiceImpl) ListPackages(ctx context.Context) ([]*model.Package, error) {
	return s.packageRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) GetPackage(ctx context.Context, packageID int64) (*model.Package, error) {
	pkg, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("find package: %w", err)
	}

	return pkg, nil
}

func (s *catalogServiceImpl) ListMenuItems(ctx context.Context) ([]*model.MenuItem, error) {
	return s.menuItemRepo.FindAll(ctx)
}
