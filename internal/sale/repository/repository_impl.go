package repository

import (
	"context"
	"strings"

	"github.com/tillworks/backdesk/internal/sale/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Sale, error) {
	var sale domain.Sale
	err := db.WithContext(ctx).Raw(
		`SELECT id, customer_id, customer_name, customer_phone, customer_email,
		        payment_method, subtotal, tax_amount, final_amount, cashier_id, created_at
		 FROM sales WHERE id = ?`,
		id,
	).Scan(&sale).Error
	if err != nil {
		return nil, err
	}
	if sale.ID == 0 {
		return nil, nil
	}
	return &sale, nil
}

func (r *repo) FindLineItems(ctx context.Context, db *gorm.DB, saleID int64, lock bool) ([]domain.SaleLineItem, error) {
	var items []domain.SaleLineItem
	stmt := db.WithContext(ctx).
		Model(&domain.SaleLineItem{}).
		Where("sale_id = ?", saleID)
	// sqlite has no row locks; its single-writer model already serializes
	// concurrent transactions.
	if lock && db.Dialector.Name() != "sqlite" {
		stmt = stmt.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := stmt.Order("id asc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, filter domain.SearchFilter) ([]domain.Sale, error) {
	var sales []domain.Sale
	stmt := db.WithContext(ctx).Model(&domain.Sale{})

	if filter.Term != "" {
		pattern := "%" + strings.ToLower(filter.Term) + "%"
		if filter.TermSaleID != nil {
			stmt = stmt.Where(
				"LOWER(customer_name) LIKE ? OR LOWER(customer_phone) LIKE ? OR LOWER(customer_email) LIKE ? OR id = ?",
				pattern, pattern, pattern, *filter.TermSaleID,
			)
		} else {
			stmt = stmt.Where(
				"LOWER(customer_name) LIKE ? OR LOWER(customer_phone) LIKE ? OR LOWER(customer_email) LIKE ?",
				pattern, pattern, pattern,
			)
		}
	}
	if filter.SaleID != nil {
		stmt = stmt.Where("id = ?", *filter.SaleID)
	}
	if filter.DateFrom != nil {
		stmt = stmt.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		stmt = stmt.Where("created_at <= ?", *filter.DateTo)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	err := stmt.
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}
