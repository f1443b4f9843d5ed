package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	clientdomain "github.com/smallbiznis/incidentbilling/internal/client/domain"
	"github.com/smallbiznis/incidentbilling/internal/config"
	"github.com/smallbiznis/incidentbilling/internal/identity"
	incidentdomain "github.com/smallbiznis/incidentbilling/internal/incident/domain"
	invoicedomain "github.com/smallbiznis/incidentbilling/internal/invoice/domain"
	"github.com/smallbiznis/incidentbilling/internal/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type mockInvoiceService struct {
	mock.Mock
}

func (m *mockInvoiceService) MonthlyStatement(ctx context.Context, id identity.Identity) (invoicedomain.Statement, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(invoicedomain.Statement), args.Error(1)
}

func (m *mockInvoiceService) ResetInvoices(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestServer(t *testing.T, svc invoicedomain.Service) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	s := &Server{
		engine:     engine,
		cfg:        config.Config{AuthJWTSecret: testSecret},
		invoiceSvc: svc,
	}
	s.RegisterAPIRoutes()
	return s
}

func signToken(t *testing.T, role, clientID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role: role,
		CID:  clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user-1",
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(s *Server, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	return rec
}

func TestGetMonthlyInvoice(t *testing.T) {
	svc := new(mockInvoiceService)
	svc.On("MonthlyStatement", mock.Anything, identity.Identity{
		Subject:  "user-1",
		Role:     identity.RoleAdmin,
		ClientID: "client-1",
	}).Return(invoicedomain.Statement{
		BillingMonth: period.November,
		BillingYear:  2024,
		ClientID:     "client-1",
		ClientName:   "Acme Corp",
		ClientPlan:   "emprendedor",
		DueDate:      "2024-11-27T00:00:00Z",
	}, nil)

	s := newTestServer(t, svc)
	rec := doRequest(s, http.MethodGet, "/api/v1/invoice", signToken(t, "admin", "client-1"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "November", body["billing_month"])
	assert.EqualValues(t, 2024, body["billing_year"])
	assert.Equal(t, "Acme Corp", body["client_name"])
	assert.Equal(t, "2024-11-27T00:00:00Z", body["due_date"])

	svc.AssertExpectations(t)
}

func TestGetMonthlyInvoiceUppercaseRoleClaimIsNormalized(t *testing.T) {
	svc := new(mockInvoiceService)
	svc.On("MonthlyStatement", mock.Anything, mock.MatchedBy(func(id identity.Identity) bool {
		return id.Role == identity.RoleAdmin
	})).Return(invoicedomain.Statement{}, nil)

	s := newTestServer(t, svc)
	rec := doRequest(s, http.MethodGet, "/api/v1/invoice", signToken(t, "Admin", "client-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetMonthlyInvoiceMissingToken(t *testing.T) {
	svc := new(mockInvoiceService)
	s := newTestServer(t, svc)

	rec := doRequest(s, http.MethodGet, "/api/v1/invoice", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "MonthlyStatement", mock.Anything, mock.Anything)
}

func TestGetMonthlyInvoiceBadSignature(t *testing.T) {
	svc := new(mockInvoiceService)
	s := newTestServer(t, svc)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{Role: "admin", CID: "client-1"})
	signed, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	rec := doRequest(s, http.MethodGet, "/api/v1/invoice", signed)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "MonthlyStatement", mock.Anything, mock.Anything)
}

func TestGetMonthlyInvoiceForbidden(t *testing.T) {
	svc := new(mockInvoiceService)
	svc.On("MonthlyStatement", mock.Anything, mock.Anything).
		Return(invoicedomain.Statement{}, identity.ErrForbidden)

	s := newTestServer(t, svc)
	rec := doRequest(s, http.MethodGet, "/api/v1/invoice", signToken(t, "user", "client-1"))

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "forbidden", body.Error.Type)
}

func TestGetMonthlyInvoiceClientNotFound(t *testing.T) {
	svc := new(mockInvoiceService)
	svc.On("MonthlyStatement", mock.Anything, mock.Anything).
		Return(invoicedomain.Statement{}, clientdomain.ErrNotFound)

	s := newTestServer(t, svc)
	rec := doRequest(s, http.MethodGet, "/api/v1/invoice", signToken(t, "admin", "ghost"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMonthlyInvoiceIncidentSourceUnavailable(t *testing.T) {
	svc := new(mockInvoiceService)
	svc.On("MonthlyStatement", mock.Anything, mock.Anything).
		Return(invoicedomain.Statement{}, incidentdomain.ErrSourceUnavailable)

	s := newTestServer(t, svc)
	rec := doRequest(s, http.MethodGet, "/api/v1/invoice", signToken(t, "admin", "client-1"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestResetInvoices(t *testing.T) {
	svc := new(mockInvoiceService)
	svc.On("ResetInvoices", mock.Anything).Return(nil)

	s := newTestServer(t, svc)
	rec := doRequest(s, http.MethodPost, "/api/v1/reset/invoice", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ok", body["status"])

	svc.AssertExpectations(t)
}
