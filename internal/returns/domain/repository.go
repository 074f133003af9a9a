package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	InsertRecord(ctx context.Context, db *gorm.DB, record *ReturnRecord) error
	InsertLineItems(ctx context.Context, db *gorm.DB, items []ReturnLineItem) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*ReturnRecord, error)
	FindLineItems(ctx context.Context, db *gorm.DB, returnID snowflake.ID) ([]ReturnLineItem, error)
	// ReturnedQuantityByLine aggregates previously returned quantity per sale
	// line for one sale. Lines with no returns are absent from the map.
	ReturnedQuantityByLine(ctx context.Context, db *gorm.DB, saleID int64) (map[int64]int64, error)
	// TotalReturnedForSales sums committed return totals per sale.
	TotalReturnedForSales(ctx context.Context, db *gorm.DB, saleIDs []int64) (map[int64]decimal.Decimal, error)
}
