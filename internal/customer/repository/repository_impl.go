package repository

import (
	"context"
	"strings"

	"github.com/tillworks/backdesk/internal/customer/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, phone, email, metadata, created_at, updated_at
		 FROM customers WHERE id = ?`,
		id,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, term string, limit int) ([]domain.Customer, error) {
	var customers []domain.Customer
	stmt := db.WithContext(ctx).Model(&domain.Customer{})
	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		stmt = stmt.Where(
			"LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if limit <= 0 {
		limit = 50
	}
	err := stmt.
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repo) PointsBalance(ctx context.Context, db *gorm.DB, customerID int64) (int64, error) {
	var balance int64
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(points), 0) FROM loyalty_entries WHERE customer_id = ?`,
		customerID,
	).Scan(&balance).Error
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *repo) RecentEntries(ctx context.Context, db *gorm.DB, customerID int64, limit int) ([]domain.LoyaltyEntry, error) {
	var entries []domain.LoyaltyEntry
	if limit <= 0 {
		limit = 20
	}
	err := db.WithContext(ctx).
		Model(&domain.LoyaltyEntry{}).
		Where("customer_id = ?", customerID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
