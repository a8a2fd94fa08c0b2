// Package gateway wraps the referral API: request construction, response
// interpretation, and error classification for the client.
//
// Write operations (login, register, submit, update-status) return
// classified errors the controller surfaces to the user. Read operations
// (fetch referrals/stats) fail open to empty or default values so the
// dashboard always renders; those failures are only logged.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cargeniefortmyers/car-genies-referral/internal/models"
)

const (
	apiLogin     = "/api/login"
	apiRegister  = "/api/register"
	apiLogout    = "/api/logout"
	apiReferrals = "/api/referrals"
	apiStats     = "/api/referrals/stats"
)

// Gateway performs the network operations against one base endpoint.
type Gateway struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// New returns a Gateway using the given HTTP client. The client's timeout
// bounds every call; no retries are attempted.
func New(baseURL string, client *http.Client, log *zap.Logger) *Gateway {
	return &Gateway{baseURL: baseURL, client: client, log: log}
}

// Login exchanges credentials for a user session.
func (g *Gateway) Login(ctx context.Context, creds Credentials) (*models.User, error) {
	resp, err := g.do(ctx, http.MethodPost, apiLogin, creds)
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, g.serverError(resp)
	}

	var out userResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("login response: %w", err)
	}
	return &out.User, nil
}

// Register creates an account and returns the new user session.
func (g *Gateway) Register(ctx context.Context, reg Registration) (*models.User, error) {
	resp, err := g.do(ctx, http.MethodPost, apiRegister, reg)
	if err != nil {
		return nil, fmt.Errorf("register request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, g.serverError(resp)
	}

	var out userResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("register response: %w", err)
	}
	return &out.User, nil
}

// Logout tells the server the session is over. Callers treat any result
// as success for local-state purposes; the error is returned only so it
// can be logged.
func (g *Gateway) Logout(ctx context.Context) error {
	resp, err := g.do(ctx, http.MethodPost, apiLogout, nil)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	resp.Body.Close()
	return nil
}

// SubmitReferral sends a new customer referral.
func (g *Gateway) SubmitReferral(ctx context.Context, sub ReferralSubmission) error {
	resp, err := g.do(ctx, http.MethodPost, apiReferrals, sub)
	if err != nil {
		return fmt.Errorf("submit referral request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return g.serverError(resp)
	}
	return nil
}

// FetchReferrals loads the user's referral list. Any failure degrades to
// an empty list: transient read errors must not block the dashboard.
func (g *Gateway) FetchReferrals(ctx context.Context) ([]models.Referral, error) {
	resp, err := g.do(ctx, http.MethodGet, apiReferrals, nil)
	if err != nil {
		g.log.Warn("fetch referrals failed", zap.Error(err))
		return []models.Referral{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.log.Warn("fetch referrals rejected", zap.Int("status", resp.StatusCode))
		return []models.Referral{}, nil
	}

	var out []models.Referral
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		g.log.Warn("fetch referrals decode failed", zap.Error(err))
		return []models.Referral{}, nil
	}
	if out == nil {
		out = []models.Referral{}
	}
	return out, nil
}

// FetchStats loads the aggregate dashboard stats, degrading to the
// all-zero default on any failure.
func (g *Gateway) FetchStats(ctx context.Context) (models.Stats, error) {
	resp, err := g.do(ctx, http.MethodGet, apiStats, nil)
	if err != nil {
		g.log.Warn("fetch stats failed", zap.Error(err))
		return models.DefaultStats(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.log.Warn("fetch stats rejected", zap.Int("status", resp.StatusCode))
		return models.DefaultStats(), nil
	}

	var out models.Stats
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		g.log.Warn("fetch stats decode failed", zap.Error(err))
		return models.DefaultStats(), nil
	}
	return out, nil
}

// UpdateStatus moves a referral to a new lifecycle status.
func (g *Gateway) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	path := fmt.Sprintf("%s/%s/status", apiReferrals, id)
	resp, err := g.do(ctx, http.MethodPatch, path, map[string]models.Status{"status": status})
	if err != nil {
		return fmt.Errorf("update status request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return g.serverError(resp)
	}
	return nil
}

// do builds and executes one JSON request, logging it with a correlation ID.
func (g *Gateway) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.log.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp, nil
}

// serverError classifies a non-2xx response, pulling the server message
// out of the body when one is present.
func (g *Gateway) serverError(resp *http.Response) error {
	var out messageResponse
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return &ServerError{StatusCode: resp.StatusCode, Message: out.Message}
}
