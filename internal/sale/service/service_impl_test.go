package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	returnsdomain "github.com/tillworks/backdesk/internal/returns/domain"
	returnsrepository "github.com/tillworks/backdesk/internal/returns/repository"
	"github.com/tillworks/backdesk/internal/sale/domain"
	"github.com/tillworks/backdesk/internal/sale/repository"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.Sale{},
		&domain.SaleLineItem{},
		&returnsdomain.ReturnRecord{},
		&returnsdomain.ReturnLineItem{},
	))
	return db
}

func newService(t *testing.T, db *gorm.DB) *Service {
	t.Helper()

	return &Service{
		db:          db,
		log:         zaptest.NewLogger(t),
		repo:        repository.Provide(),
		returnsRepo: returnsrepository.Provide(),
	}
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedSale(t *testing.T, db *gorm.DB, sale domain.Sale, lines ...domain.SaleLineItem) {
	t.Helper()

	require.NoError(t, db.Create(&sale).Error)
	for i := range lines {
		lines[i].SaleID = sale.ID
		require.NoError(t, db.Create(&lines[i]).Error)
	}
}

func seedReturn(t *testing.T, db *gorm.DB, saleID int64, total string, lineQty map[int64]int64) {
	t.Helper()

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	record := returnsdomain.ReturnRecord{
		ID:           node.Generate(),
		SaleID:       saleID,
		ReturnType:   returnsdomain.ReturnTypeRefund,
		RefundMethod: returnsdomain.RefundMethodCash,
		Reason:       "defective",
		TotalAmount:  money(total),
		CreatedBy:    1,
		CreatedAt:    time.Now().UTC(),
	}
	record.ReturnNumber = fmt.Sprintf("RTN-%d", record.ID)
	require.NoError(t, db.Create(&record).Error)

	for lineID, qty := range lineQty {
		require.NoError(t, db.Create(&returnsdomain.ReturnLineItem{
			ID:             node.Generate(),
			ReturnID:       record.ID,
			SaleLineItemID: lineID,
			Quantity:       qty,
			Condition:      returnsdomain.ConditionUsed,
			Amount:         money("0.00"),
			CreatedAt:      time.Now().UTC(),
		}).Error)
	}
}

func TestLookupReturnable(t *testing.T) {
	db := setupDB(t)
	svc := newService(t, db)
	ctx := context.Background()

	seedSale(t, db,
		domain.Sale{ID: 42, CustomerName: "Dana Reyes", PaymentMethod: "cash", Subtotal: money("55.00"), TaxAmount: money("0.00"), FinalAmount: money("55.00"), CashierID: 7, CreatedAt: time.Now().UTC()},
		domain.SaleLineItem{ID: 420, ProductName: "Travel Mug", SKU: "MUG-01", Quantity: 3, UnitPrice: money("15.00"), LineTotal: money("45.00")},
		domain.SaleLineItem{ID: 421, ProductName: "Coaster", SKU: "CST-02", Quantity: 2, UnitPrice: money("5.00"), LineTotal: money("10.00")},
	)
	seedReturn(t, db, 42, "15.00", map[int64]int64{420: 1})

	resp, err := svc.LookupReturnable(ctx, domain.LookupReturnableRequest{SaleID: 42})
	require.NoError(t, err)

	assert.Equal(t, "RCP-000042", resp.ReceiptNumber)
	assert.Equal(t, "Dana Reyes", resp.Sale.CustomerName)
	require.Len(t, resp.Items, 2)

	// Lines come back in sale order.
	assert.Equal(t, int64(420), resp.Items[0].SaleLineItemID)
	assert.Equal(t, int64(1), resp.Items[0].AlreadyReturned)
	assert.Equal(t, int64(2), resp.Items[0].AvailableForReturn)

	assert.Equal(t, int64(421), resp.Items[1].SaleLineItemID)
	assert.Equal(t, int64(0), resp.Items[1].AlreadyReturned)
	assert.Equal(t, int64(2), resp.Items[1].AvailableForReturn)

	// Lookup is read-only; a second call reports the same availability.
	again, err := svc.LookupReturnable(ctx, domain.LookupReturnableRequest{SaleID: 42})
	require.NoError(t, err)
	assert.Equal(t, resp.Items, again.Items)
}

func TestLookupReturnableFullyReturned(t *testing.T) {
	db := setupDB(t)
	svc := newService(t, db)

	seedSale(t, db,
		domain.Sale{ID: 7, PaymentMethod: "card", Subtotal: money("20.00"), TaxAmount: money("0.00"), FinalAmount: money("20.00"), CashierID: 1, CreatedAt: time.Now().UTC()},
		domain.SaleLineItem{ID: 70, ProductName: "Scarf", Quantity: 2, UnitPrice: money("10.00"), LineTotal: money("20.00")},
	)
	seedReturn(t, db, 7, "20.00", map[int64]int64{70: 2})

	resp, err := svc.LookupReturnable(context.Background(), domain.LookupReturnableRequest{SaleID: 7})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(2), resp.Items[0].AlreadyReturned)
	assert.Equal(t, int64(0), resp.Items[0].AvailableForReturn)
}

func TestLookupReturnableErrors(t *testing.T) {
	db := setupDB(t)
	svc := newService(t, db)
	ctx := context.Background()

	_, err := svc.LookupReturnable(ctx, domain.LookupReturnableRequest{SaleID: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidSaleID)

	_, err = svc.LookupReturnable(ctx, domain.LookupReturnableRequest{SaleID: 404})
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestSearchSales(t *testing.T) {
	db := setupDB(t)
	svc := newService(t, db)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedSale(t, db, domain.Sale{ID: 1, CustomerName: "Ada Okoye", CustomerPhone: "555-0101", CustomerEmail: "ada@example.com", PaymentMethod: "cash", Subtotal: money("10.00"), TaxAmount: money("0.00"), FinalAmount: money("10.00"), CashierID: 1, CreatedAt: base})
	seedSale(t, db, domain.Sale{ID: 2, CustomerName: "Bo Lindgren", CustomerPhone: "555-0202", CustomerEmail: "bo@example.com", PaymentMethod: "card", Subtotal: money("20.00"), TaxAmount: money("0.00"), FinalAmount: money("20.00"), CashierID: 1, CreatedAt: base.Add(24 * time.Hour)})
	seedSale(t, db, domain.Sale{ID: 3, CustomerName: "Cam Duval", CustomerPhone: "555-0303", CustomerEmail: "cam@example.com", PaymentMethod: "cash", Subtotal: money("30.00"), TaxAmount: money("0.00"), FinalAmount: money("30.00"), CashierID: 2, CreatedAt: base.Add(48 * time.Hour)})
	seedReturn(t, db, 2, "5.00", nil)

	t.Run("no filters returns newest first", func(t *testing.T) {
		resp, err := svc.Search(ctx, domain.SearchSalesRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 3)
		assert.Equal(t, int64(3), resp.Sales[0].ID)
		assert.Equal(t, int64(1), resp.Sales[2].ID)
	})

	t.Run("returned totals annotate summaries", func(t *testing.T) {
		resp, err := svc.Search(ctx, domain.SearchSalesRequest{})
		require.NoError(t, err)
		byID := map[int64]domain.SaleSummary{}
		for _, s := range resp.Sales {
			byID[s.ID] = s
		}
		assert.Equal(t, "5.00", byID[2].TotalReturned.StringFixed(2))
		assert.Equal(t, "0.00", byID[1].TotalReturned.StringFixed(2))
	})

	t.Run("term matches customer name", func(t *testing.T) {
		resp, err := svc.Search(ctx, domain.SearchSalesRequest{Term: "okoye"})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 1)
		assert.Equal(t, int64(1), resp.Sales[0].ID)
	})

	t.Run("term matches phone", func(t *testing.T) {
		resp, err := svc.Search(ctx, domain.SearchSalesRequest{Term: "555-0202"})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 1)
		assert.Equal(t, int64(2), resp.Sales[0].ID)
	})

	t.Run("term shaped like receipt matches by id", func(t *testing.T) {
		resp, err := svc.Search(ctx, domain.SearchSalesRequest{Term: "RCP-000003"})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 1)
		assert.Equal(t, int64(3), resp.Sales[0].ID)
		assert.Equal(t, "RCP-000003", resp.Sales[0].ReceiptNumber)
	})

	t.Run("receipt filter", func(t *testing.T) {
		resp, err := svc.Search(ctx, domain.SearchSalesRequest{ReceiptNumber: "RCP-000001"})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 1)
		assert.Equal(t, int64(1), resp.Sales[0].ID)
	})

	t.Run("malformed receipt filter is dropped", func(t *testing.T) {
		resp, err := svc.Search(ctx, domain.SearchSalesRequest{ReceiptNumber: "RCP-"})
		require.NoError(t, err)
		assert.Len(t, resp.Sales, 3)
	})

	t.Run("date range", func(t *testing.T) {
		resp, err := svc.Search(ctx, domain.SearchSalesRequest{DateFrom: "2026-03-11", DateTo: "2026-03-11"})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 1)
		assert.Equal(t, int64(2), resp.Sales[0].ID)
	})

	t.Run("malformed dates are dropped", func(t *testing.T) {
		resp, err := svc.Search(ctx, domain.SearchSalesRequest{DateFrom: "last tuesday", DateTo: "03/12/2026"})
		require.NoError(t, err)
		assert.Len(t, resp.Sales, 3)
	})

	t.Run("masking hides contact details", func(t *testing.T) {
		resp, err := svc.Search(ctx, domain.SearchSalesRequest{Term: "okoye", MaskCustomer: true})
		require.NoError(t, err)
		require.Len(t, resp.Sales, 1)
		assert.Equal(t, "****0101", resp.Sales[0].CustomerPhone)
		assert.Equal(t, "a**@example.com", resp.Sales[0].CustomerEmail)
		assert.Equal(t, "Ada Okoye", resp.Sales[0].CustomerName)
	})
}

func TestSearchSalesLimit(t *testing.T) {
	db := setupDB(t)
	svc := newService(t, db)

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 60; i++ {
		seedSale(t, db, domain.Sale{ID: i, PaymentMethod: "cash", Subtotal: money("1.00"), TaxAmount: money("0.00"), FinalAmount: money("1.00"), CashierID: 1, CreatedAt: created.Add(time.Duration(i) * time.Minute)})
	}

	resp, err := svc.Search(context.Background(), domain.SearchSalesRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Sales, 50)
	assert.Equal(t, int64(60), resp.Sales[0].ID)
	assert.Equal(t, int64(11), resp.Sales[49].ID)
}
