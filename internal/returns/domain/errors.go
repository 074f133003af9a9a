package domain

import (
	"errors"
	"fmt"
)

var (
	ErrReturnNotFound      = errors.New("return_not_found")
	ErrInvalidReturnID     = errors.New("invalid_return_id")
	ErrInvalidReturnType   = errors.New("invalid_return_type")
	ErrInvalidRefundMethod = errors.New("invalid_refund_method")
	ErrInvalidReason       = errors.New("invalid_reason")
	ErrInvalidActingUser   = errors.New("invalid_acting_user")
	ErrNoItemsSelected     = errors.New("no_items_selected")

	ErrLineNotInSale       = errors.New("line_not_in_sale")
	ErrInvalidQuantity     = errors.New("invalid_quantity")
	ErrInvalidCondition    = errors.New("invalid_condition")
	ErrQuantityUnavailable = errors.New("quantity_unavailable")
)

// ItemError carries a per-item validation failure so callers can point at
// the offending entry. It wraps one of the item sentinels above.
type ItemError struct {
	Index          int
	SaleLineItemID int64
	Err            error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d (sale_line_item %d): %v", e.Index, e.SaleLineItemID, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

func NewItemError(index int, saleLineItemID int64, err error) error {
	return &ItemError{Index: index, SaleLineItemID: saleLineItemID, Err: err}
}
