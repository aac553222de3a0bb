package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// staticToken is a fixed TokenSource for tests.
type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_OmitsAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(staticToken("")))
	if _, err := client.ListFarms(context.Background()); err != nil {
		t.Fatalf("ListFarms failed: %v", err)
	}
	if hasAuth {
		t.Errorf("Expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(staticToken("abc")))
	if _, err := client.ListFarms(context.Background()); err != nil {
		t.Fatalf("ListFarms failed: %v", err)
	}
	if gotAuth != "Bearer abc" {
		t.Errorf("Expected 'Bearer abc', got %q", gotAuth)
	}
}

func TestClient_APIErrorCarriesStatusAndMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"not enough milk available"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetFarm(context.Background(), 3)
	if err == nil {
		t.Fatal("Expected error for 409 response")
	}

	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if ae.Status != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", ae.Status)
	}
	if ae.Message != "not enough milk available" {
		t.Errorf("Unexpected message: %q", ae.Message)
	}
	if !IsConflict(err) {
		t.Error("IsConflict should report true")
	}
	if len(ae.Payload) == 0 {
		t.Error("Expected raw payload to be kept")
	}
}

func TestClient_APIErrorFallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListFarms(context.Background())

	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if ae.Message != "request failed with status 500" {
		t.Errorf("Expected fallback message, got %q", ae.Message)
	}
}

func TestClient_AuthErrorHelper(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		client := NewClient(server.URL)
		_, err := client.MyOrders(context.Background())
		server.Close()

		if !IsAuthError(err) {
			t.Errorf("IsAuthError should be true for status %d", status)
		}
		if IsNetworkError(err) {
			t.Errorf("Status %d must not look like a network error", status)
		}
	}
}

func TestClient_NetworkErrorIsDistinct(t *testing.T) {
	// A closed server guarantees a transport failure with no response.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	_, err := client.ListFarms(context.Background())
	if err == nil {
		t.Fatal("Expected error against closed server")
	}

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("Expected *NetworkError, got %T: %v", err, err)
	}
	if ne.URL == "" {
		t.Error("NetworkError should carry the attempted URL")
	}
	if IsAuthError(err) || IsConflict(err) {
		t.Error("Transport failure must not match application error helpers")
	}
}

func TestClient_LenientParseOnMalformed2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`this is not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	farm, err := client.GetFarm(context.Background(), 1)
	if err != nil {
		t.Fatalf("Malformed 2xx body must not fail: %v", err)
	}
	if farm == nil || farm.ID != 0 {
		t.Errorf("Expected zero-value farm, got %+v", farm)
	}
}

func TestClient_EmptyBodyOnDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.DeleteFarm(context.Background(), 9); err != nil {
		t.Fatalf("DeleteFarm failed: %v", err)
	}
}

func TestClient_IdempotentGET(t *testing.T) {
	payload := `[{"id":1,"name":"Meadowbrook","pricePerLiter":1.5,"isSelling":true,"availableMilk":12.5}]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	first, err := client.ListFarms(context.Background())
	if err != nil {
		t.Fatalf("First GET failed: %v", err)
	}
	second, err := client.ListFarms(context.Background())
	if err != nil {
		t.Fatalf("Second GET failed: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Repeated GET returned different payloads (-first +second):\n%s", diff)
	}
}

func TestClient_LoginDecodesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		var req LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "owner@farm.test" {
			t.Errorf("Unexpected email %q", req.Email)
		}
		w.Write([]byte(`{"token":"abc","user":{"id":1,"name":"Ada","email":"owner@farm.test","role":"FARM_OWNER"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), LoginRequest{Email: "owner@farm.test", Password: "pw"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token != "abc" {
		t.Errorf("Expected token abc, got %q", resp.Token)
	}
	if resp.User.Role != RoleFarmOwner {
		t.Errorf("Expected FARM_OWNER, got %q", resp.User.Role)
	}
}

func TestClient_QueryParameters(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.MilkHistory(context.Background(), 7, 30); err != nil {
		t.Fatalf("MilkHistory failed: %v", err)
	}
	if gotQuery != "days=30&farmId=7" {
		t.Errorf("Unexpected query string %q", gotQuery)
	}
}
