package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type ReturnType string

const (
	ReturnTypeRefund   ReturnType = "refund"
	ReturnTypeExchange ReturnType = "exchange"
)

type RefundMethod string

const (
	RefundMethodCash        RefundMethod = "cash"
	RefundMethodStoreCredit RefundMethod = "store_credit"
	RefundMethodCard        RefundMethod = "card"
)

// MethodAllowed reports whether a refund method is valid for a return type.
// Refunds pay out cash; exchanges issue store credit.
func MethodAllowed(returnType ReturnType, method RefundMethod) bool {
	switch returnType {
	case ReturnTypeRefund:
		return method == RefundMethodCash
	case ReturnTypeExchange:
		return method == RefundMethodStoreCredit
	default:
		return false
	}
}

type ItemCondition string

const (
	ConditionNew     ItemCondition = "new"
	ConditionUsed    ItemCondition = "used"
	ConditionDamaged ItemCondition = "damaged"
)

func ValidCondition(c ItemCondition) bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionDamaged:
		return true
	default:
		return false
	}
}

// ReturnRecord is one committed return transaction against a sale.
// Returns are append-only; records are never updated or deleted.
type ReturnRecord struct {
	ID           snowflake.ID     `gorm:"primaryKey" json:"id"`
	SaleID       int64            `gorm:"not null;index" json:"sale_id"`
	ReturnNumber string           `gorm:"not null;uniqueIndex:ux_return_records_number" json:"return_number"`
	ReturnType   ReturnType       `gorm:"type:text;not null" json:"return_type"`
	RefundMethod RefundMethod     `gorm:"type:text;not null" json:"refund_method"`
	Reason       string           `gorm:"not null" json:"reason"`
	Notes        string           `gorm:"not null;default:''" json:"notes"`
	TotalAmount  decimal.Decimal  `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	CreatedBy    int64            `gorm:"not null" json:"created_by"`
	CreatedAt    time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Lines        []ReturnLineItem `gorm:"foreignKey:ReturnID" json:"line_items,omitempty"`
}

func (ReturnRecord) TableName() string { return "return_records" }

// ReturnLineItem reverses some quantity of one sale line item. The amount is
// always derived from the original sale line's unit price, never supplied by
// the caller.
type ReturnLineItem struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	ReturnID       snowflake.ID    `gorm:"not null;index" json:"return_id"`
	SaleLineItemID int64           `gorm:"not null;index" json:"sale_line_item_id"`
	Quantity       int64           `gorm:"not null" json:"quantity"`
	Condition      ItemCondition   `gorm:"column:item_condition;type:text;not null" json:"condition"`
	ConditionNotes string          `gorm:"not null;default:''" json:"condition_notes"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	CreatedAt      time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ReturnLineItem) TableName() string { return "return_line_items" }
