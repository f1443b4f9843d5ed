package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResetInvoices bulk-deletes every stored invoice. Administrative test
// plumbing, mirrored from the upstream platform contract.
func (s *Server) ResetInvoices(c *gin.Context) {
	if err := s.invoiceSvc.ResetInvoices(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Ok"})
}
