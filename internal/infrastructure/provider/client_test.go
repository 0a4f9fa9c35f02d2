package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dwirez99/majunkita/internal/core/domain"
	"github.com/dwirez99/majunkita/internal/core/ports"
)

func TestClient_CreateAccount(t *testing.T) {
	var gotPath, gotAuth, gotAPIKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAPIKey = r.Header.Get("apikey")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "abc-123", "email": "a@x.com"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "service-key")
	account, err := client.CreateAccount(context.Background(), ports.CreateAccountInput{
		Email:          "a@x.com",
		Password:       "secret",
		EmailConfirmed: true,
		Metadata:       map[string]any{"role": "driver"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "POST /auth/v1/admin/users" {
		t.Fatalf("unexpected request: %s", gotPath)
	}
	if gotAuth != "Bearer service-key" || gotAPIKey != "service-key" {
		t.Fatalf("auth headers not set: %q / %q", gotAuth, gotAPIKey)
	}
	if gotBody["email_confirm"] != true {
		t.Fatalf("email_confirm not sent: %v", gotBody)
	}
	if meta, ok := gotBody["user_metadata"].(map[string]any); !ok || meta["role"] != "driver" {
		t.Fatalf("user_metadata not sent: %v", gotBody)
	}
	if account.ID != "abc-123" || account.Email != "a@x.com" {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestClient_UpdateCredentials_OmitsEmptyFields(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "service-key")
	if err := client.UpdateCredentials(context.Background(), "u1", "", "newpass"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "PUT /auth/v1/admin/users/u1" {
		t.Fatalf("unexpected request: %s", gotPath)
	}
	if _, present := gotBody["email"]; present {
		t.Fatalf("empty email must be omitted: %v", gotBody)
	}
	if gotBody["password"] != "newpass" {
		t.Fatalf("password not sent: %v", gotBody)
	}
}

func TestClient_DeleteAccount(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "service-key")
	if err := client.DeleteAccount(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "DELETE /auth/v1/admin/users/u1" {
		t.Fatalf("unexpected request: %s", gotPath)
	}
}

func TestClient_ErrorForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "email already registered"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "service-key")
	_, err := client.CreateAccount(context.Background(), ports.CreateAccountInput{Email: "dup@x.com", Password: "p"})

	var pe *domain.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Status != http.StatusUnprocessableEntity {
		t.Fatalf("status not forwarded: %d", pe.Status)
	}
	if pe.Message != "email already registered" {
		t.Fatalf("message not forwarded: %q", pe.Message)
	}
}
