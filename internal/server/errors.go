package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/tillworks/backdesk/internal/customer/domain"
	returnsdomain "github.com/tillworks/backdesk/internal/returns/domain"
	saledomain "github.com/tillworks/backdesk/internal/sale/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if itemErr := asItemError(err); itemErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   fmt.Sprintf("items[%d]", itemErr.Index),
					Code:    itemErr.Err.Error(),
					Message: itemErr.Error(),
				},
			},
		}
	}

	if isValidationError(err) {
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	if isNotFoundError(err) {
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	}

	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func asItemError(err error) *returnsdomain.ItemError {
	var itemErr *returnsdomain.ItemError
	if errors.As(err, &itemErr) && itemErr != nil {
		return itemErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, saledomain.ErrInvalidSaleID),
		errors.Is(err, customerdomain.ErrInvalidID),
		errors.Is(err, returnsdomain.ErrInvalidReturnID),
		errors.Is(err, returnsdomain.ErrInvalidReturnType),
		errors.Is(err, returnsdomain.ErrInvalidRefundMethod),
		errors.Is(err, returnsdomain.ErrInvalidReason),
		errors.Is(err, returnsdomain.ErrInvalidActingUser),
		errors.Is(err, returnsdomain.ErrNoItemsSelected):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, saledomain.ErrSaleNotFound),
		errors.Is(err, returnsdomain.ErrReturnNotFound),
		errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorField(code string) string {
	switch code {
	case "invalid_request":
		return "request"
	case "invalid_sale_id":
		return "sale_id"
	case "invalid_return_id":
		return "return_id"
	case "invalid_customer_id":
		return "customer_id"
	case "invalid_return_type":
		return "return_type"
	case "invalid_refund_method":
		return "refund_method"
	case "invalid_reason":
		return "reason"
	case "invalid_acting_user":
		return "acting_user"
	case "no_items_selected":
		return "items"
	default:
		return ""
	}
}
