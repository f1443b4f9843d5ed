package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/smallbiznis/incidentbilling/internal/incident/domain"
	"github.com/smallbiznis/incidentbilling/internal/upstream"
	"go.uber.org/zap"
)

type restRepository struct {
	baseURL string
	tokens  upstream.TokenProvider
	client  *http.Client
	log     *zap.Logger
}

// NewREST builds a Repository backed by the incident query REST API.
func NewREST(baseURL string, tokens upstream.TokenProvider, timeout time.Duration, log *zap.Logger) domain.Repository {
	return &restRepository{
		baseURL: baseURL,
		tokens:  tokens,
		client:  &http.Client{Timeout: timeout},
		log:     log.Named("incident.repository"),
	}
}

func (r *restRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Incident, error) {
	url := fmt.Sprintf("%s/api/v1/clients/%s/incidents", r.baseURL, clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if r.tokens != nil {
		token, err := r.tokens.Token()
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var incidents []domain.Incident
		if err := json.NewDecoder(resp.Body).Decode(&incidents); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
		}
		return incidents, nil
	case http.StatusNotFound:
		// The upstream reports unknown clients as 404; billing treats
		// that as "no incidents".
		return []domain.Incident{}, nil
	default:
		r.log.Error("unexpected response from incident query service",
			zap.String("client_id", clientID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}
}
