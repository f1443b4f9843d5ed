package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/smallbiznis/incidentbilling/internal/client/domain"
	"github.com/smallbiznis/incidentbilling/internal/identity"
	incidentdomain "github.com/smallbiznis/incidentbilling/internal/incident/domain"
	invoicedomain "github.com/smallbiznis/incidentbilling/internal/invoice/domain"
	"github.com/smallbiznis/incidentbilling/internal/plan"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal_error")
	ErrNotFound     = errors.New("not_found")
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

func mapError(err error) (int, errorPayload) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrForbidden), errors.Is(err, identity.ErrForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "you do not have access to this resource",
		}
	case errors.Is(err, ErrNotFound),
		errors.Is(err, clientdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, incidentdomain.ErrSourceUnavailable):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "service_unavailable",
			Message: "incident source unavailable",
		}
	case errors.Is(err, invoicedomain.ErrRateUndetermined):
		return http.StatusInternalServerError, errorPayload{
			Type:    "rate_undetermined",
			Message: "rate could not be determined",
		}
	case errors.Is(err, plan.ErrUnknownPlan):
		return http.StatusInternalServerError, errorPayload{
			Type:    "unknown_plan",
			Message: "client plan has no rate schedule",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

// classifyErrorForLog feeds the request logger's error fields.
func classifyErrorForLog(err error) (string, string) {
	_, payload := mapError(err)
	return payload.Type, payload.Type
}
