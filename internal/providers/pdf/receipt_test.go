package pdf

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReturnReceipt(t *testing.T) {
	provider := NewProvider()

	reader, err := provider.GenerateReturnReceipt(context.Background(), ReturnReceiptData{
		ReturnNumber:  "RTN-1001",
		ReceiptNumber: "RCP-000042",
		Date:          "Tue, 10 Mar 2026 12:00:00 UTC",
		ReturnType:    "refund",
		RefundMethod:  "cash",
		Reason:        "defective",
		CustomerName:  "Dana Reyes",
		Items: []ReturnReceiptItem{
			{Description: "Travel Mug", Qty: 2, Condition: "damaged", UnitPrice: "15.00", Amount: "30.00"},
		},
		Total: "30.00",
	})
	require.NoError(t, err)

	raw, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestGenerateReturnReceiptNoItems(t *testing.T) {
	provider := NewProvider()

	reader, err := provider.GenerateReturnReceipt(context.Background(), ReturnReceiptData{
		ReturnNumber: "RTN-1002",
		Total:        "0.00",
	})
	require.NoError(t, err)

	raw, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}
