package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Customer, error)
	Search(ctx context.Context, db *gorm.DB, term string, limit int) ([]Customer, error)
	PointsBalance(ctx context.Context, db *gorm.DB, customerID int64) (int64, error)
	RecentEntries(ctx context.Context, db *gorm.DB, customerID int64, limit int) ([]LoyaltyEntry, error)
}
