package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/tillworks/backdesk/internal/returns/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertRecord(ctx context.Context, db *gorm.DB, record *domain.ReturnRecord) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO return_records (id, sale_id, return_number, return_type, refund_method,
		                             reason, notes, total_amount, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.SaleID,
		record.ReturnNumber,
		record.ReturnType,
		record.RefundMethod,
		record.Reason,
		record.Notes,
		record.TotalAmount,
		record.CreatedBy,
		record.CreatedAt,
	).Error
}

func (r *repo) InsertLineItems(ctx context.Context, db *gorm.DB, items []domain.ReturnLineItem) error {
	for i := range items {
		err := db.WithContext(ctx).Exec(
			`INSERT INTO return_line_items (id, return_id, sale_line_item_id, quantity,
			                                item_condition, condition_notes, amount, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			items[i].ID,
			items[i].ReturnID,
			items[i].SaleLineItemID,
			items[i].Quantity,
			items[i].Condition,
			items[i].ConditionNotes,
			items[i].Amount,
			items[i].CreatedAt,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.ReturnRecord, error) {
	var record domain.ReturnRecord
	err := db.WithContext(ctx).Raw(
		`SELECT id, sale_id, return_number, return_type, refund_method,
		        reason, notes, total_amount, created_by, created_at
		 FROM return_records WHERE id = ?`,
		id,
	).Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, nil
	}
	return &record, nil
}

func (r *repo) FindLineItems(ctx context.Context, db *gorm.DB, returnID snowflake.ID) ([]domain.ReturnLineItem, error) {
	var items []domain.ReturnLineItem
	err := db.WithContext(ctx).
		Model(&domain.ReturnLineItem{}).
		Where("return_id = ?", returnID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ReturnedQuantityByLine(ctx context.Context, db *gorm.DB, saleID int64) (map[int64]int64, error) {
	var rows []struct {
		SaleLineItemID int64
		Total          int64
	}
	err := db.WithContext(ctx).Raw(
		`SELECT rli.sale_line_item_id AS sale_line_item_id, SUM(rli.quantity) AS total
		 FROM return_line_items rli
		 JOIN return_records rr ON rr.id = rli.return_id
		 WHERE rr.sale_id = ?
		 GROUP BY rli.sale_line_item_id`,
		saleID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[int64]int64, len(rows))
	for _, row := range rows {
		out[row.SaleLineItemID] = row.Total
	}
	return out, nil
}

func (r *repo) TotalReturnedForSales(ctx context.Context, db *gorm.DB, saleIDs []int64) (map[int64]decimal.Decimal, error) {
	out := make(map[int64]decimal.Decimal, len(saleIDs))
	if len(saleIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		SaleID int64
		Total  decimal.Decimal
	}
	err := db.WithContext(ctx).Raw(
		`SELECT sale_id AS sale_id, SUM(total_amount) AS total
		 FROM return_records
		 WHERE sale_id IN ?
		 GROUP BY sale_id`,
		saleIDs,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.SaleID] = row.Total
	}
	return out, nil
}
