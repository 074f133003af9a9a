package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	saledomain "github.com/tillworks/backdesk/internal/sale/domain"
)

func (s *Server) SearchSales(c *gin.Context) {
	var query struct {
		Term          string `form:"term"`
		DateFrom      string `form:"date_from"`
		DateTo        string `form:"date_to"`
		ReceiptNumber string `form:"receipt_number"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.saleSvc.Search(c.Request.Context(), saledomain.SearchSalesRequest{
		Term:          strings.TrimSpace(query.Term),
		DateFrom:      strings.TrimSpace(query.DateFrom),
		DateTo:        strings.TrimSpace(query.DateTo),
		ReceiptNumber: strings.TrimSpace(query.ReceiptNumber),
		MaskCustomer:  !isPrivileged(c),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) LookupReturnable(c *gin.Context) {
	saleID, ok := parseInt64Param(c, "id")
	if !ok {
		AbortWithError(c, saledomain.ErrInvalidSaleID)
		return
	}

	resp, err := s.saleSvc.LookupReturnable(c.Request.Context(), saledomain.LookupReturnableRequest{
		SaleID: saleID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
