package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/smallbiznis/incidentbilling/internal/client/domain"
	"github.com/smallbiznis/incidentbilling/internal/upstream"
	"go.uber.org/zap"
)

type restRepository struct {
	baseURL string
	tokens  upstream.TokenProvider
	client  *http.Client
	log     *zap.Logger
}

// NewREST builds a Repository backed by the client directory REST API.
func NewREST(baseURL string, tokens upstream.TokenProvider, timeout time.Duration, log *zap.Logger) domain.Repository {
	return &restRepository{
		baseURL: baseURL,
		tokens:  tokens,
		client:  &http.Client{Timeout: timeout},
		log:     log.Named("client.repository"),
	}
}

func (r *restRepository) Get(ctx context.Context, clientID string) (*domain.Client, error) {
	url := fmt.Sprintf("%s/api/v1/clients/%s?include_plan=true", r.baseURL, clientID)

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
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var client domain.Client
		if err := json.NewDecoder(resp.Body).Decode(&client); err != nil {
			return nil, err
		}
		return &client, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		r.log.Error("unexpected response from client service",
			zap.String("client_id", clientID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("client service returned status %d", resp.StatusCode)
	}
}
