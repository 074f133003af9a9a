package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tillworks/backdesk/internal/providers/pdf"
	returnsdomain "github.com/tillworks/backdesk/internal/returns/domain"
	saledomain "github.com/tillworks/backdesk/internal/sale/domain"
)

type submitReturnItem struct {
	SaleLineItemID int64  `json:"sale_line_item_id"`
	Quantity       int64  `json:"quantity"`
	Condition      string `json:"condition"`
	ConditionNotes string `json:"condition_notes"`
}

type submitReturnRequest struct {
	SaleID       int64              `json:"sale_id"`
	ReturnType   string             `json:"return_type"`
	RefundMethod string             `json:"refund_method"`
	Reason       string             `json:"reason"`
	Notes        string             `json:"notes"`
	Items        []submitReturnItem `json:"items"`
}

func (s *Server) SubmitReturn(c *gin.Context) {
	var req submitReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	items := make([]returnsdomain.SubmitReturnItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, returnsdomain.SubmitReturnItem{
			SaleLineItemID: item.SaleLineItemID,
			Quantity:       item.Quantity,
			Condition:      returnsdomain.ItemCondition(strings.TrimSpace(item.Condition)),
			ConditionNotes: strings.TrimSpace(item.ConditionNotes),
		})
	}

	resp, err := s.returnsSvc.Submit(c.Request.Context(), returnsdomain.SubmitReturnRequest{
		SaleID:       req.SaleID,
		ReturnType:   returnsdomain.ReturnType(strings.TrimSpace(req.ReturnType)),
		RefundMethod: returnsdomain.RefundMethod(strings.TrimSpace(req.RefundMethod)),
		Reason:       strings.TrimSpace(req.Reason),
		Notes:        strings.TrimSpace(req.Notes),
		ActingUserID: actingUserID(c),
		Items:        items,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"return_id":     resp.Record.ID,
		"return_number": resp.Record.ReturnNumber,
		"line_items":    resp.Lines,
		"total_amount":  resp.TotalAmount,
	}})
}

func (s *Server) GetReturn(c *gin.Context) {
	resp, err := s.returnsSvc.Get(c.Request.Context(), returnsdomain.GetReturnRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ReturnReceiptPDF(c *gin.Context) {
	resp, err := s.returnsSvc.Get(c.Request.Context(), returnsdomain.GetReturnRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	lookup, err := s.saleSvc.LookupReturnable(c.Request.Context(), saledomain.LookupReturnableRequest{
		SaleID: resp.Record.SaleID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	products := make(map[int64]saledomain.ReturnableItem, len(lookup.Items))
	for _, item := range lookup.Items {
		products[item.SaleLineItemID] = item
	}

	items := make([]pdf.ReturnReceiptItem, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		product := products[line.SaleLineItemID]
		items = append(items, pdf.ReturnReceiptItem{
			Description: product.ProductName,
			Qty:         line.Quantity,
			Condition:   string(line.Condition),
			UnitPrice:   product.UnitPrice.StringFixed(2),
			Amount:      line.Amount.StringFixed(2),
		})
	}

	reader, err := s.receipts.GenerateReturnReceipt(c.Request.Context(), pdf.ReturnReceiptData{
		ReturnNumber:  resp.Record.ReturnNumber,
		ReceiptNumber: lookup.ReceiptNumber,
		Date:          resp.Record.CreatedAt.Format(time.RFC1123),
		ReturnType:    string(resp.Record.ReturnType),
		RefundMethod:  string(resp.Record.RefundMethod),
		Reason:        resp.Record.Reason,
		CustomerName:  lookup.Sale.CustomerName,
		Items:         items,
		Total:         resp.Record.TotalAmount.StringFixed(2),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+resp.Record.ReturnNumber+`.pdf"`)
	c.DataFromReader(http.StatusOK, -1, "application/pdf", reader, nil)
}
