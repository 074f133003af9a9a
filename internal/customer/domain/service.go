package domain

import (
	"context"
	"errors"
)

type SearchCustomersRequest struct {
	Term string
}

type SearchCustomersResponse struct {
	Customers []Customer `json:"customers"`
}

type GetCustomerRequest struct {
	ID int64
}

type GetCustomerResponse struct {
	Customer      Customer       `json:"customer"`
	PointsBalance int64          `json:"points_balance"`
	RecentEntries []LoyaltyEntry `json:"recent_entries"`
}

type Service interface {
	Search(context.Context, SearchCustomersRequest) (SearchCustomersResponse, error)
	Get(context.Context, GetCustomerRequest) (GetCustomerResponse, error)
}

var (
	ErrNotFound  = errors.New("customer_not_found")
	ErrInvalidID = errors.New("invalid_customer_id")
)
