package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
)

// ReturnReceiptItem is one printed line on a return receipt.
type ReturnReceiptItem struct {
	Description string
	Qty         int64
	Condition   string
	UnitPrice   string
	Amount      string
}

// ReturnReceiptData carries the already-formatted values for rendering;
// amounts are formatted by the caller so this layer stays presentation-only.
type ReturnReceiptData struct {
	ReturnNumber  string
	ReceiptNumber string
	Date          string
	ReturnType    string
	RefundMethod  string
	Reason        string
	CustomerName  string
	Items         []ReturnReceiptItem
	Total         string
}

type Provider interface {
	GenerateReturnReceipt(ctx context.Context, data ReturnReceiptData) (io.Reader, error)
}

type PDFProvider struct{}

func NewProvider() Provider {
	return &PDFProvider{}
}

var Module = fx.Module("providers.pdf",
	fx.Provide(NewProvider),
)
