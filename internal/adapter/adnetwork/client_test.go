package adnetwork

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"traffic-sender/internal/config/configs"
	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
	"traffic-sender/internal/core/port/mocks"
)

func testConfig(baseURL string) configs.AdNetwork {
	return configs.AdNetwork{
		BaseURL:        baseURL,
		Timeout:        200 * time.Millisecond,
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, h http.HandlerFunc, errLog port.ErrorLogRepository) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(testConfig(srv.URL), errLog, discard(),
		WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok"})))
}

func TestGetCampaign(t *testing.T) {
	errLog := mocks.NewMockErrorLogRepository(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/campaigns/net-1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"id":"net-1","status":"active","active":true,"max_daily":42.5}`)
	}, errLog)

	got, err := c.GetCampaign(context.Background(), "net-1")
	require.NoError(t, err)
	assert.True(t, got.IsActive())
	assert.True(t, got.MaxDaily.Equal(decimal.RequireFromString("42.5")))
}

func TestGetDailySpendQuery(t *testing.T) {
	errLog := mocks.NewMockErrorLogRepository(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/spend", r.URL.Path)
		assert.Equal(t, "net-1", r.URL.Query().Get("campaign_id"))
		assert.Equal(t, "2026-03-04", r.URL.Query().Get("date"))
		_, _ = io.WriteString(w, `{"spent":"9.99"}`)
	}, errLog)

	spent, err := c.GetDailySpend(context.Background(), "net-1", time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "9.99", spent.String())
}

func TestPatchCampaignBody(t *testing.T) {
	errLog := mocks.NewMockErrorLogRepository(t)
	var bodies []map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var m map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		bodies = append(bodies, m)
		w.WriteHeader(http.StatusNoContent)
	}, errLog)

	end := time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC)
	require.NoError(t, c.PatchCampaign(context.Background(), "net-1", domain.ActivatePatch(end)))
	require.NoError(t, c.PatchCampaign(context.Background(), "net-1", domain.BudgetPatch(decimal.RequireFromString("75.5"))))
	require.NoError(t, c.PatchCampaign(context.Background(), "net-1", domain.PausePatch()))

	require.Len(t, bodies, 3)
	assert.Equal(t, map[string]any{"status": "active", "active": true, "schedule_end_time": "2026-03-04T23:59:00Z"}, bodies[0])
	assert.Equal(t, map[string]any{"max_daily": 75.5}, bodies[1])
	assert.Equal(t, map[string]any{"status": "paused", "active": false}, bodies[2])
}

func TestTransientFailuresAreRetried(t *testing.T) {
	errLog := mocks.NewMockErrorLogRepository(t)
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"spent":1}`)
	}, errLog)

	spent, err := c.GetDailySpend(context.Background(), "net-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.True(t, spent.Equal(decimal.NewFromInt(1)))
}

func TestExhaustedRetriesAreLogged(t *testing.T) {
	errLog := mocks.NewMockErrorLogRepository(t)
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, errLog)

	errLog.EXPECT().
		RecordError(mock.Anything, mock.MatchedBy(func(e *domain.ErrorLogEntry) bool {
			return e.RetryCount == 3 &&
				e.Method == http.MethodPatch &&
				e.Endpoint == "/campaigns/net-1" &&
				e.CampaignID != nil && *e.CampaignID == 7 &&
				e.Payload == `{"status":"paused","active":false}` &&
				!e.Resolved
		})).
		Return(nil).
		Once()

	ctx := port.WithCampaignID(context.Background(), 7)
	err := c.PatchCampaign(ctx, "net-1", domain.PausePatch())

	var transient *domain.TransientNetworkError
	require.ErrorAs(t, err, &transient)
	assert.Equal(t, http.StatusServiceUnavailable, transient.StatusCode)
	assert.Equal(t, int32(4), calls.Load())
}

func TestClientErrorIsNotRetried(t *testing.T) {
	errLog := mocks.NewMockErrorLogRepository(t)
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"error":"max_daily too high"}`)
	}, errLog)

	errLog.EXPECT().
		RecordError(mock.Anything, mock.MatchedBy(func(e *domain.ErrorLogEntry) bool {
			return e.RetryCount == 0
		})).
		Return(nil)

	err := c.PatchCampaign(context.Background(), "net-1", domain.BudgetPatch(decimal.NewFromInt(10)))

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "max_daily")
	assert.Equal(t, int32(1), calls.Load())
}

func TestUnauthorizedIsAuthError(t *testing.T) {
	errLog := mocks.NewMockErrorLogRepository(t)
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}, errLog)
	errLog.EXPECT().RecordError(mock.Anything, mock.Anything).Return(nil)

	_, err := c.GetCampaign(context.Background(), "net-1")

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAttemptTimeoutIsRetried(t *testing.T) {
	errLog := mocks.NewMockErrorLogRepository(t)
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
			return
		}
		_, _ = io.WriteString(w, `{"id":"net-1","status":"paused"}`)
	}, errLog)

	got, err := c.GetCampaign(context.Background(), "net-1")
	require.NoError(t, err)
	assert.False(t, got.IsActive())
	assert.Equal(t, int32(2), calls.Load())
}

func TestCanceledCallIsNotLogged(t *testing.T) {
	errLog := mocks.NewMockErrorLogRepository(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, errLog)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetCampaign(ctx, "net-1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestRefreshTokenGrantIsCached(t *testing.T) {
	var grants atomic.Int32
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "rt-1", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "client", r.PostForm.Get("client_id"))
		grants.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"fresh","token_type":"Bearer","expires_in":3600}`)
	}))
	defer tokenSrv.Close()

	cfg := testConfig("http://unused")
	cfg.TokenURL = tokenSrv.URL
	cfg.ClientID = "client"
	cfg.ClientSecret = "secret"
	cfg.RefreshToken = "rt-1"
	c := NewClient(cfg, mocks.NewMockErrorLogRepository(t), discard())

	for range 3 {
		tok, err := c.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "fresh", tok)
	}
	assert.Equal(t, int32(1), grants.Load())
}

func TestTokenFailureFailsCallWithoutRetry(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"invalid_grant"}`)
	}))
	defer tokenSrv.Close()

	var apiCalls atomic.Int32
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
	}))
	defer apiSrv.Close()

	errLog := mocks.NewMockErrorLogRepository(t)
	errLog.EXPECT().RecordError(mock.Anything, mock.Anything).Return(nil).Once()

	cfg := testConfig(apiSrv.URL)
	cfg.TokenURL = tokenSrv.URL
	c := NewClient(cfg, errLog, discard())

	_, err := c.GetCampaign(context.Background(), "net-1")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Zero(t, apiCalls.Load())
}

func TestStalledTokenEndpointFailsTheCall(t *testing.T) {
	release := make(chan struct{})
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer tokenSrv.Close()
	defer close(release)

	var apiCalls atomic.Int32
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
	}))
	defer apiSrv.Close()

	errLog := mocks.NewMockErrorLogRepository(t)
	errLog.EXPECT().RecordError(mock.Anything, mock.Anything).Return(nil).Times(2)

	cfg := testConfig(apiSrv.URL)
	cfg.TokenURL = tokenSrv.URL
	cfg.RefreshToken = "rt-1"
	c := NewClient(cfg, errLog, discard())

	for range 2 {
		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		started := time.Now()
		_, err := c.GetCampaign(ctx, "net-1")
		cancel()

		var authErr *domain.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(started), 2*time.Second)
	}
	assert.Zero(t, apiCalls.Load())
}

func TestErrorLogFailureDoesNotMaskCallError(t *testing.T) {
	errLog := mocks.NewMockErrorLogRepository(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, errLog)
	errLog.EXPECT().RecordError(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := c.GetCampaign(context.Background(), "missing")
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
