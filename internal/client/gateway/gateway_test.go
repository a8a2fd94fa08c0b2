package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cargeniefortmyers/car-genies-referral/internal/models"
)

// roundTripperFunc lets a test stand in for the HTTP transport.
type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(fn roundTripperFunc) *http.Client {
	return &http.Client{Transport: fn, Timeout: time.Second}
}

// newStubServer runs a fake referral API covering the happy paths.
func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()

	r.Post("/api/login", func(w http.ResponseWriter, req *http.Request) {
		var creds Credentials
		if err := json.NewDecoder(req.Body).Decode(&creds); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		if creds.Username != "alice" || creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]models.User{
			"user": {ID: "u1", FirstName: "Alice", LastName: "Smith", Username: "alice", Email: "alice@example.com"},
		})
	})

	r.Post("/api/register", func(w http.ResponseWriter, req *http.Request) {
		var reg Registration
		_ = json.NewDecoder(req.Body).Decode(&reg)
		if reg.Username == "taken" {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Username already exists"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]models.User{
			"user": {ID: "u2", FirstName: reg.FirstName, LastName: reg.LastName, Username: reg.Username, Email: reg.Email},
		})
	})

	r.Post("/api/logout", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Post("/api/referrals", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "want json", http.StatusUnsupportedMediaType)
			return
		}
		if req.Header.Get("X-Request-ID") == "" {
			http.Error(w, "missing request id", http.StatusBadRequest)
			return
		}
		var sub ReferralSubmission
		if err := json.NewDecoder(req.Body).Decode(&sub); err != nil || sub.FirstName == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "First name is required"})
			return
		}
		w.WriteHeader(http.StatusCreated)
	})

	r.Get("/api/referrals", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Referral{
			{ID: "r1", FirstName: "John", LastName: "Smith", Status: models.StatusPending},
		})
	})

	r.Get("/api/referrals/stats", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Stats{
			TotalReferrals: 3, TotalEarnings: 900, PendingReferrals: 1, CompletedReferrals: 2, CurrentTier: 1,
		})
	})

	r.Patch("/api/referrals/{id}/status", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") != "r1" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Referral not found"})
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newGateway(baseURL string, client *http.Client) *Gateway {
	return New(baseURL, client, zap.NewNop())
}

func TestLogin_Success(t *testing.T) {
	srv := newStubServer(t)
	g := newGateway(srv.URL, srv.Client())

	user, err := g.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.FirstName != "Alice" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestLogin_Rejected(t *testing.T) {
	srv := newStubServer(t)
	g := newGateway(srv.URL, srv.Client())

	_, err := g.Login(context.Background(), Credentials{Username: "alice", Password: "wrong"})
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if se.StatusCode != http.StatusUnauthorized || se.Message != "Invalid credentials" {
		t.Errorf("unexpected rejection: %+v", se)
	}
}

func TestLogin_NetworkError(t *testing.T) {
	g := newGateway("http://example.com", newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	}))

	_, err := g.Login(context.Background(), Credentials{Username: "a", Password: "b"})
	if err == nil {
		t.Fatal("expected error")
	}
	var se *ServerError
	if errors.As(err, &se) {
		t.Errorf("transport failure must not classify as ServerError: %v", err)
	}
}

func TestRegister_RoutesConflictMessage(t *testing.T) {
	srv := newStubServer(t)
	g := newGateway(srv.URL, srv.Client())

	_, err := g.Register(context.Background(), Registration{Username: "taken"})
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if se.Message != "Username already exists" {
		t.Errorf("unexpected message: %q", se.Message)
	}
}

func TestSubmitReferral(t *testing.T) {
	srv := newStubServer(t)
	g := newGateway(srv.URL, srv.Client())

	sub := ReferralSubmission{
		FirstName:   "John",
		LastName:    "Smith",
		Email:       "john@example.com",
		Phone:       "555-1234",
		VehicleType: models.Sedan,
		Budget:      "20k-40k",
	}
	if err := g.SubmitReferral(context.Background(), sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub.FirstName = ""
	err := g.SubmitReferral(context.Background(), sub)
	var se *ServerError
	if !errors.As(err, &se) || se.Message != "First name is required" {
		t.Errorf("expected rejection with message, got %v", err)
	}
}

func TestFetchReferrals_Success(t *testing.T) {
	srv := newStubServer(t)
	g := newGateway(srv.URL, srv.Client())

	referrals, err := g.FetchReferrals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(referrals) != 1 || referrals[0].ID != "r1" {
		t.Errorf("unexpected referrals: %+v", referrals)
	}
}

func TestFetchReferrals_DegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		fn   roundTripperFunc
	}{
		{
			name: "network error",
			fn: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("network down")
			},
		},
		{
			name: "server error",
			fn: func(req *http.Request) (*http.Response, error) {
				rec := httptest.NewRecorder()
				rec.WriteHeader(http.StatusInternalServerError)
				return rec.Result(), nil
			},
		},
		{
			name: "garbage body",
			fn: func(req *http.Request) (*http.Response, error) {
				rec := httptest.NewRecorder()
				_, _ = rec.WriteString("not-json")
				return rec.Result(), nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGateway("http://example.com", newTestClient(tt.fn))
			referrals, err := g.FetchReferrals(context.Background())
			if err != nil {
				t.Fatalf("reads must not propagate errors, got %v", err)
			}
			if referrals == nil || len(referrals) != 0 {
				t.Errorf("expected empty list, got %+v", referrals)
			}
		})
	}
}

func TestFetchStats(t *testing.T) {
	srv := newStubServer(t)
	g := newGateway(srv.URL, srv.Client())

	stats, err := g.FetchStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalReferrals != 3 || stats.TotalEarnings != 900 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestFetchStats_DegradesToDefault(t *testing.T) {
	g := newGateway("http://example.com", newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	}))

	stats, err := g.FetchStats(context.Background())
	if err != nil {
		t.Fatalf("reads must not propagate errors, got %v", err)
	}
	if stats != models.DefaultStats() {
		t.Errorf("expected default stats, got %+v", stats)
	}
}

func TestUpdateStatus(t *testing.T) {
	srv := newStubServer(t)
	g := newGateway(srv.URL, srv.Client())

	if err := g.UpdateStatus(context.Background(), "r1", models.StatusApproved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := g.UpdateStatus(context.Background(), "missing", models.StatusApproved)
	var se *ServerError
	if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
		t.Errorf("expected not-found rejection, got %v", err)
	}
}

func TestLogout_ReturnsTransportError(t *testing.T) {
	g := newGateway("http://example.com", newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	}))
	if err := g.Logout(context.Background()); err == nil {
		t.Error("expected error for the caller to log")
	}
}
