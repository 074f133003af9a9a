package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// SearchFilter is the normalized predicate set for a sale search. Fields are
// combined with AND; nil or empty fields are omitted from the query.
type SearchFilter struct {
	Term       string
	TermSaleID *int64
	SaleID     *int64
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
}

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Sale, error)
	// FindLineItems returns the sale's lines in insertion order. When lock is
	// set the rows are selected FOR UPDATE so a concurrent return commit
	// serializes behind the caller's transaction.
	FindLineItems(ctx context.Context, db *gorm.DB, saleID int64, lock bool) ([]SaleLineItem, error)
	Search(ctx context.Context, db *gorm.DB, filter SearchFilter) ([]Sale, error)
}
