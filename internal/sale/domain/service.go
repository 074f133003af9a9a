package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type LookupReturnableRequest struct {
	SaleID int64
}

// ReturnableItem is one sale line annotated with its return history.
type ReturnableItem struct {
	SaleLineItemID     int64           `json:"sale_line_item_id"`
	ProductName        string          `json:"product_name"`
	SKU                string          `json:"sku"`
	Quantity           int64           `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	AlreadyReturned    int64           `json:"already_returned"`
	AvailableForReturn int64           `json:"available_for_return"`
}

type LookupReturnableResponse struct {
	Sale          Sale             `json:"sale"`
	ReceiptNumber string           `json:"receipt_number"`
	Items         []ReturnableItem `json:"items"`
}

// SearchSalesRequest carries raw filter values as received from the caller.
// Malformed values are dropped, not rejected.
type SearchSalesRequest struct {
	Term          string
	DateFrom      string
	DateTo        string
	ReceiptNumber string
	MaskCustomer  bool
}

type SaleSummary struct {
	ID            int64           `json:"id"`
	ReceiptNumber string          `json:"receipt_number"`
	CreatedAt     time.Time       `json:"created_at"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	CustomerEmail string          `json:"customer_email"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
	TotalReturned decimal.Decimal `json:"total_returned"`
}

type SearchSalesResponse struct {
	Sales []SaleSummary `json:"sales"`
}

type Service interface {
	LookupReturnable(context.Context, LookupReturnableRequest) (LookupReturnableResponse, error)
	Search(context.Context, SearchSalesRequest) (SearchSalesResponse, error)
}

var (
	ErrSaleNotFound  = errors.New("sale_not_found")
	ErrInvalidSaleID = errors.New("invalid_sale_id")
)
