package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/incidentbilling/internal/identity"
)

// GetMonthlyInvoice returns the caller's billing statement for the
// previous calendar month, generating the rate and invoice on first
// request.
func (s *Server) GetMonthlyInvoice(c *gin.Context) {
	id, ok := identity.FromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	statement, err := s.invoiceSvc.MonthlyStatement(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, statement)
}
