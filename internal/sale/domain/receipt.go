package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const receiptPrefix = "RCP-"

// ReceiptNumber synthesizes the human-readable receipt number for a sale id,
// a fixed-width zero-padded identifier with a literal prefix (RCP-000123).
func ReceiptNumber(saleID int64) string {
	return fmt.Sprintf("%s%06d", receiptPrefix, saleID)
}

// ParseReceiptNumber extracts the sale id from a receipt number by stripping
// every non-digit character. Returns false when no digits remain.
func ParseReceiptNumber(value string) (int64, bool) {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
