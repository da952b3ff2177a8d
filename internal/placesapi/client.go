// Package placesapi is the HTTP client for the auphere-places admin API.
// It normalizes every transport and protocol failure into return values so
// callers sequence on results, never on panics or escaped errors.
package placesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/auphere/placesync/internal/model"
)

const (
	healthTimeout      = 5 * time.Second
	statsTimeout       = 10 * time.Second
	defaultSyncTimeout = 300 * time.Second

	adminTokenHeader = "X-Admin-Token"
)

// Client talks to one auphere-places instance.
type Client struct {
	baseURL     string
	adminToken  string
	syncTimeout time.Duration
	httpClient  *http.Client
	log         zerolog.Logger
}

// New creates a client for the service at baseURL. syncTimeout bounds the
// long-running sync call; zero selects the 300s default. The health and
// stats calls keep their own short timeouts.
func New(baseURL, adminToken string, syncTimeout time.Duration, log zerolog.Logger) *Client {
	if syncTimeout <= 0 {
		syncTimeout = defaultSyncTimeout
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		adminToken:  adminToken,
		syncTimeout: syncTimeout,
		httpClient:  &http.Client{},
		log:         log,
	}
}

// SyncRequest is the body of POST /admin/sync/{city}.
type SyncRequest struct {
	PlaceType  string  `json:"place_type"`
	CellSizeKm float64 `json:"cell_size_km"`
	RadiusM    int     `json:"radius_m"`
}

// SyncResult is the tagged outcome of one sync call. When OK is false,
// Message carries the best-effort error description and StatusCode the HTTP
// status when one was received (0 for pure transport failures).
type SyncResult struct {
	OK          bool
	Created     int
	Skipped     int
	APIRequests int
	StatusCode  int
	Message     string
}

type syncResponse struct {
	PlacesCreated int `json:"places_created"`
	PlacesSkipped int `json:"places_skipped"`
	APIRequests   int `json:"api_requests"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type statsResponse struct {
	PlacesByType []struct {
		Type  string `json:"type"`
		Count int    `json:"count"`
	} `json:"places_by_type"`
	PlacesByCity []struct {
		City  string `json:"city"`
		Count int    `json:"count"`
	} `json:"places_by_city"`
	AverageRating *float64 `json:"average_rating"`
}

// CheckHealth probes GET /health with a short timeout. It reports true only
// for a 2xx response; every transport failure or other status is false. The
// probe is advisory, so nothing here escapes as an error.
func (c *Client) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Msg("health probe failed")
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// SyncType runs one POST /admin/sync/{city} for the given type. It never
// returns a Go error: HTTP error statuses and transport failures both come
// back as a SyncResult with OK=false and a populated Message.
func (c *Client) SyncType(ctx context.Context, city string, sr SyncRequest) SyncResult {
	ctx, cancel := context.WithTimeout(ctx, c.syncTimeout)
	defer cancel()

	payload, err := json.Marshal(sr)
	if err != nil {
		return SyncResult{Message: fmt.Sprintf("encode request: %s", err)}
	}

	url := fmt.Sprintf("%s/admin/sync/%s", c.baseURL, city)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return SyncResult{Message: fmt.Sprintf("build request: %s", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(adminTokenHeader, c.adminToken)

	c.log.Debug().Str("place_type", sr.PlaceType).Str("url", url).Msg("sync request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SyncResult{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return SyncResult{StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response: %s", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return SyncResult{
			StatusCode: resp.StatusCode,
			Message:    extractError(body, resp.Status),
		}
	}

	var decoded syncResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return SyncResult{StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %s", err)}
	}

	return SyncResult{
		OK:          true,
		Created:     decoded.PlacesCreated,
		Skipped:     decoded.PlacesSkipped,
		APIRequests: decoded.APIRequests,
		StatusCode:  resp.StatusCode,
	}
}

// FetchStats reads GET /admin/stats. Stats are diagnostic only, so any
// failure yields ok=false instead of an error and callers carry on.
func (c *Client) FetchStats(ctx context.Context) (*model.StatsSnapshot, bool) {
	ctx, cancel := context.WithTimeout(ctx, statsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/admin/stats", nil)
	if err != nil {
		return nil, false
	}
	req.Header.Set(adminTokenHeader, c.adminToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("stats unavailable")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("stats unavailable")
		io.Copy(io.Discard, resp.Body)
		return nil, false
	}

	var decoded statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.log.Warn().Err(err).Msg("stats response malformed")
		return nil, false
	}

	snap := &model.StatsSnapshot{
		PlacesByType:  make(map[string]int, len(decoded.PlacesByType)),
		PlacesByCity:  make(map[string]int, len(decoded.PlacesByCity)),
		AverageRating: decoded.AverageRating,
	}
	for _, ts := range decoded.PlacesByType {
		snap.PlacesByType[ts.Type] = ts.Count
	}
	for _, cs := range decoded.PlacesByCity {
		snap.PlacesByCity[cs.City] = cs.Count
	}
	return snap, true
}

// extractError pulls the structured {"error": ...} field out of an HTTP
// error body, falling back to the raw body, then to the status line.
func extractError(body []byte, status string) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return er.Error
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return status
}
