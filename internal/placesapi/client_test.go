package placesapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(url string) *Client {
	return New(url, "test-token", 0, zerolog.Nop())
}

func TestCheckHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if !newTestClient(srv.URL).CheckHealth(context.Background()) {
		t.Error("expected healthy")
	}
}

func TestCheckHealth_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if newTestClient(srv.URL).CheckHealth(context.Background()) {
		t.Error("expected unhealthy for 503")
	}
}

func TestCheckHealth_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // now nothing is listening

	if newTestClient(srv.URL).CheckHealth(context.Background()) {
		t.Error("expected unhealthy when nothing listens")
	}
}

func TestSyncType_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/admin/sync/Zaragoza" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Admin-Token"); got != "test-token" {
			t.Errorf("admin token header = %q", got)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["place_type"] != "park" {
			t.Errorf("place_type = %v", body["place_type"])
		}
		if body["cell_size_km"] != 2.0 || body["radius_m"] != float64(1500) {
			t.Errorf("grid params = %v / %v", body["cell_size_km"], body["radius_m"])
		}
		json.NewEncoder(w).Encode(map[string]int{
			"places_created": 5,
			"places_skipped": 2,
			"api_requests":   10,
		})
	}))
	defer srv.Close()

	res := newTestClient(srv.URL).SyncType(context.Background(), "Zaragoza", SyncRequest{
		PlaceType:  "park",
		CellSizeKm: 2.0,
		RadiusM:    1500,
	})
	if !res.OK {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.Created != 5 || res.Skipped != 2 || res.APIRequests != 10 {
		t.Errorf("unexpected counts: %+v", res)
	}
}

func TestSyncType_HTTPErrorWithStructuredBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "quota exceeded"})
	}))
	defer srv.Close()

	res := newTestClient(srv.URL).SyncType(context.Background(), "Zaragoza", SyncRequest{PlaceType: "bar"})
	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Message != "quota exceeded" {
		t.Errorf("message = %q", res.Message)
	}
	if res.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d", res.StatusCode)
	}
}

func TestSyncType_HTTPErrorWithRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream gateway toppled over"))
	}))
	defer srv.Close()

	res := newTestClient(srv.URL).SyncType(context.Background(), "Zaragoza", SyncRequest{PlaceType: "bar"})
	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Message != "upstream gateway toppled over" {
		t.Errorf("message = %q", res.Message)
	}
}

func TestSyncType_HTTPErrorEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	res := newTestClient(srv.URL).SyncType(context.Background(), "Zaragoza", SyncRequest{PlaceType: "bar"})
	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Message == "" {
		t.Error("expected status-line fallback message")
	}
}

func TestSyncType_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	res := newTestClient(srv.URL).SyncType(context.Background(), "Zaragoza", SyncRequest{PlaceType: "bar"})
	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Message == "" {
		t.Error("expected transport error text in message")
	}
	if res.StatusCode != 0 {
		t.Errorf("expected no status code, got %d", res.StatusCode)
	}
}

func TestFetchStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/stats" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Admin-Token"); got != "test-token" {
			t.Errorf("admin token header = %q", got)
		}
		w.Write([]byte(`{
			"places_by_type": [{"type": "park", "count": 12}, {"type": "cafe", "count": 30}],
			"places_by_city": [{"city": "Zaragoza", "count": 42}],
			"average_rating": 4.2
		}`))
	}))
	defer srv.Close()

	snap, ok := newTestClient(srv.URL).FetchStats(context.Background())
	if !ok {
		t.Fatal("expected stats")
	}
	if snap.PlacesByType["park"] != 12 || snap.PlacesByType["cafe"] != 30 {
		t.Errorf("by-type counts: %v", snap.PlacesByType)
	}
	if snap.PlacesByCity["Zaragoza"] != 42 {
		t.Errorf("by-city counts: %v", snap.PlacesByCity)
	}
	if snap.AverageRating == nil || *snap.AverageRating != 4.2 {
		t.Errorf("average rating: %v", snap.AverageRating)
	}
	if snap.TotalPlaces() != 42 {
		t.Errorf("total = %d", snap.TotalPlaces())
	}
}

func TestFetchStats_NoRating(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"places_by_type": [], "places_by_city": []}`))
	}))
	defer srv.Close()

	snap, ok := newTestClient(srv.URL).FetchStats(context.Background())
	if !ok {
		t.Fatal("expected stats")
	}
	if snap.AverageRating != nil {
		t.Errorf("expected nil rating, got %v", *snap.AverageRating)
	}
}

func TestFetchStats_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	if _, ok := newTestClient(srv.URL).FetchStats(context.Background()); ok {
		t.Error("expected ok=false on transport failure")
	}
}

func TestFetchStats_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if _, ok := newTestClient(srv.URL).FetchStats(context.Background()); ok {
		t.Error("expected ok=false on HTTP error")
	}
}
