package repository

import (
	"context"

	"golden-catering/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuItemRepository interface {
	Seed(ctx context.Context) error
	FindAll(ctx context.Context) ([]*model.MenuItem, error)
}

type menuItemRepoImpl struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepoImpl{
		db: db,
	}
}

func (r *menuItemRepoImpl) Seed(ctx context.Context) error {
	items := []model.MenuItem{
		{ID: 1, Name: "Bruschetta", Description: "Toasted bread with tomato and basil", Category: "appetizer", Price: 8, Available: true},
		{ID: 2, Name: "Stuffed Mushrooms", Description: "Button mushrooms with herbed cheese", Category: "appetizer", Price: 9, Available: true},
		{ID: 3, Name: "Grilled Chicken", Description: "Herb-marinated chicken breast", Category: "main", Price: 18, Available: true},
		{ID: 4, Name: "Grilled Salmon", Description: "Atlantic salmon with lemon butter", Category: "main", Price: 24, Available: true},
		{ID: 5, Name: "Pasta Primavera", Description: "Seasonal vegetables over fresh pasta", Category: "main", Price: 16, Available: true},
		{ID: 6, Name: "Chocolate Cake", Description: "Layered dark chocolate cake", Category: "dessert", Price: 7, Available: true},
		{ID: 7, Name: "Fresh Fruit Tart", Description: "Pastry cream tart with seasonal fruit", Category: "dessert", Price: 7, Available: true},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&items).Error
}

func (r *menuItemRepoImpl) FindAll(ctx context.Context) ([]*model.MenuItem, error) {
	var items []*model.MenuItem
	err := r.db.WithContext(ctx).
		Find(&items).
		Error

	if err != nil {
		return nil, err
	}

	return items, nil
}
