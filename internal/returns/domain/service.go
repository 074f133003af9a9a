package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type SubmitReturnItem struct {
	SaleLineItemID int64         `json:"sale_line_item_id"`
	Quantity       int64         `json:"quantity"`
	Condition      ItemCondition `json:"condition"`
	ConditionNotes string        `json:"condition_notes"`
}

type SubmitReturnRequest struct {
	SaleID       int64
	ReturnType   ReturnType
	RefundMethod RefundMethod
	Reason       string
	Notes        string
	ActingUserID int64
	Items        []SubmitReturnItem
}

type SubmitReturnResponse struct {
	Record      ReturnRecord     `json:"return_record"`
	Lines       []ReturnLineItem `json:"line_items"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
}

type GetReturnRequest struct {
	ID string
}

type GetReturnResponse struct {
	Record ReturnRecord     `json:"return_record"`
	Lines  []ReturnLineItem `json:"line_items"`
}

type Service interface {
	// Submit validates a candidate return and commits it atomically, or
	// rejects it with no partial effect.
	Submit(context.Context, SubmitReturnRequest) (SubmitReturnResponse, error)
	Get(context.Context, GetReturnRequest) (GetReturnResponse, error)
}
