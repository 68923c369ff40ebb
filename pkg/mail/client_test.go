package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cortexa-ai/backend/internal/model"
)

func testSubmission() *model.ContactSubmission {
	return &model.ContactSubmission{
		ID:        1,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Company:   "Acme Corp",
		Message:   "Interested in AI consulting",
		Status:    "new",
		CreatedAt: time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestRealClient_Notify_Unconfigured(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := NewClient("", "noreply@cortexa.ai", "leads@cortexa.ai", false)
	c.baseURL = srv.URL

	if c.Configured() {
		t.Error("expected client without API key to report unconfigured")
	}
	err := c.Notify(context.Background(), testSubmission())
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if requests != 0 {
		t.Errorf("expected no network I/O when unconfigured, got %d requests", requests)
	}
}

func TestRealClient_Notify_SendsAdminAlert(t *testing.T) {
	var gotAuth string
	var gotBody sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/mail/send" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewClient("SG.test", "noreply@cortexa.ai", "leads@cortexa.ai", false)
	c.baseURL = srv.URL

	if err := c.Notify(context.Background(), testSubmission()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer SG.test" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if len(gotBody.Personalizations) != 1 || len(gotBody.Personalizations[0].To) != 1 {
		t.Fatalf("unexpected personalizations: %+v", gotBody.Personalizations)
	}
	if to := gotBody.Personalizations[0].To[0].Email; to != "leads@cortexa.ai" {
		t.Errorf("expected alert addressed to admin, got %q", to)
	}
	if gotBody.From.Email != "noreply@cortexa.ai" {
		t.Errorf("expected configured sender, got %q", gotBody.From.Email)
	}
}

// TestRealClient_Notify_ConfirmationCopy verifies the submitter copy is
// sent only when enabled.
func TestRealClient_Notify_ConfirmationCopy(t *testing.T) {
	var recipients []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req sendRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		recipients = append(recipients, req.Personalizations[0].To[0].Email)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewClient("SG.test", "noreply@cortexa.ai", "leads@cortexa.ai", true)
	c.baseURL = srv.URL

	if err := c.Notify(context.Background(), testSubmission()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipients) != 2 {
		t.Fatalf("expected 2 sends (admin + confirmation), got %d", len(recipients))
	}
	if recipients[0] != "leads@cortexa.ai" || recipients[1] != "jane@example.com" {
		t.Errorf("unexpected recipients %v", recipients)
	}
}

func TestRealClient_Notify_ProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"invalid api key"}]}`))
	}))
	defer srv.Close()

	c := NewClient("SG.bad", "noreply@cortexa.ai", "leads@cortexa.ai", false)
	c.baseURL = srv.URL

	err := c.Notify(context.Background(), testSubmission())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Body == "" {
		t.Error("expected provider diagnostic payload in error body")
	}
}

func TestRealClient_Notify_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient("SG.test", "noreply@cortexa.ai", "leads@cortexa.ai", false)
	c.baseURL = srv.URL

	if err := c.Notify(context.Background(), testSubmission()); err == nil {
		t.Error("expected error for unreachable provider")
	}
}
