package repository

import (
	"context"

	"golden-catering/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PackageRepository interface {
	Seed(ctx context.Context) error
	FindAll(ctx context.Context) ([]*model.Package, error)
	FindByID(ctx context.Context, packageID int64) (*model.Package, error)
}

type packageRepoImpl struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepoImpl{
		db: db,
	}
}

func (r *packageRepoImpl) Seed(ctx context.Context) error {
	packages := []model.Package{
		{ID: 1, Name: "Classic Package", Description: "Perfect for corporate events and casual gatherings", Price: 35, MinGuests: 30, MaxGuests: 100, ImageURL: "/images/classic-package.jpg"},
		{ID: 2, Name: "Premium Package", Description: "Ideal for weddings and upscale events", Price: 55, MinGuests: 50, MaxGuests: 200, ImageURL: "/images/premium-package.jpg"},
		{ID: 3, Name: "Gourmet Package", Description: "The ultimate fine dining experience", Price: 75, MinGuests: 20, MaxGuests: 100, ImageURL: "/images/gourmet-package.jpg"},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&packages).Error
}

func (r *packageRepoImpl) FindAll(ctx context.Context) ([]*model.Package, error) {
	var packages []*model.Package
	err := r.db.WithContext(ctx).
		Find(&packages).
		Error

	if err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *packageRepoImpl) FindByID(ctx context.Context, packageID int64) (*model.Package, error) {
	var pkg model.Package
	err := r.db.WithContext(ctx).
		Where("id = ?", packageID).
		First(&pkg).Error

	if err != nil {
		return nil, err
	}

	return &pkg, nil
}
