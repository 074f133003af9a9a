package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a completed point-of-sale transaction. Sales are created by the
// checkout flow and are read-only inputs here.
type Sale struct {
	ID            int64           `gorm:"primaryKey" json:"id"`
	CustomerID    *int64          `gorm:"index" json:"customer_id,omitempty"`
	CustomerName  string          `gorm:"not null;default:''" json:"customer_name"`
	CustomerPhone string          `gorm:"not null;default:''" json:"customer_phone"`
	CustomerEmail string          `gorm:"not null;default:''" json:"customer_email"`
	PaymentMethod string          `gorm:"not null" json:"payment_method"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	TaxAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"tax_amount"`
	FinalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"final_amount"`
	CashierID     int64           `gorm:"not null" json:"cashier_id"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Sale) TableName() string { return "sales" }

// SaleLineItem belongs to exactly one Sale. Immutable once written.
type SaleLineItem struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	SaleID      int64           `gorm:"not null;index" json:"sale_id"`
	ProductName string          `gorm:"not null" json:"product_name"`
	SKU         string          `gorm:"column:sku;not null;default:''" json:"sku"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	LineTotal   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"line_total"`
}

func (SaleLineItem) TableName() string { return "sale_line_items" }
