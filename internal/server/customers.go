package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/tillworks/backdesk/internal/customer/domain"
)

func (s *Server) SearchCustomers(c *gin.Context) {
	resp, err := s.customerSvc.Search(c.Request.Context(), customerdomain.SearchCustomersRequest{
		Term: strings.TrimSpace(c.Query("term")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCustomer(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		AbortWithError(c, customerdomain.ErrInvalidID)
		return
	}

	resp, err := s.customerSvc.Get(c.Request.Context(), customerdomain.GetCustomerRequest{
		ID: id,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
