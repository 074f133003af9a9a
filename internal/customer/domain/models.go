package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Customer struct {
	ID        int64             `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"not null" json:"name"`
	Phone     string            `gorm:"not null;default:''" json:"phone"`
	Email     string            `gorm:"not null;default:''" json:"email"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

type LoyaltyEntryType string

const (
	LoyaltyEntryEarn   LoyaltyEntryType = "earn"
	LoyaltyEntryRedeem LoyaltyEntryType = "redeem"
	LoyaltyEntryAdjust LoyaltyEntryType = "adjust"
)

// LoyaltyEntry is one signed movement in a customer's points ledger.
// Entries are written by the checkout flow and read here.
type LoyaltyEntry struct {
	ID         snowflake.ID     `gorm:"primaryKey" json:"id"`
	CustomerID int64            `gorm:"not null;index" json:"customer_id"`
	SaleID     *int64           `json:"sale_id,omitempty"`
	EntryType  LoyaltyEntryType `gorm:"type:text;not null" json:"entry_type"`
	Points     int64            `gorm:"not null" json:"points"`
	Note       string           `gorm:"not null;default:''" json:"note"`
	CreatedAt  time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (LoyaltyEntry) TableName() string { return "loyalty_entries" }
