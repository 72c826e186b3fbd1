package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
	"traffic-sender/internal/core/port/mocks"
)

type testServices struct {
	automation *mocks.MockAutomationUseCase
	clicks     *mocks.MockClickUseCase
	urls       *mocks.MockURLUseCase
	settings   *mocks.MockSettingsUseCase
	errors     *mocks.MockErrorLogUseCase
}

func newTestHandler(t *testing.T) (http.Handler, testServices) {
	s := testServices{
		automation: mocks.NewMockAutomationUseCase(t),
		clicks:     mocks.NewMockClickUseCase(t),
		urls:       mocks.NewMockURLUseCase(t),
		settings:   mocks.NewMockSettingsUseCase(t),
		errors:     mocks.NewMockErrorLogUseCase(t),
	}
	h := NewHandler(Services{
		Automation: s.automation,
		Clicks:     s.clicks,
		URLs:       s.urls,
		Settings:   s.settings,
		Errors:     s.errors,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Second)
	return h.Router(), s
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestClickRedirects(t *testing.T) {
	h, s := newTestHandler(t)
	s.clicks.EXPECT().Serve(mock.Anything, int64(7)).
		Return(&domain.Click{CampaignID: 7, URLID: 3, TargetURL: "https://landing.example/a"}, nil).Once()

	rec := do(h, http.MethodGet, "/go/7", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://landing.example/a", rec.Header().Get("Location"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestClickWithoutInventory(t *testing.T) {
	h, s := newTestHandler(t)
	s.clicks.EXPECT().Serve(mock.Anything, int64(7)).Return(nil, domain.ErrNoEligibleURL).Once()
	s.clicks.EXPECT().Serve(mock.Anything, int64(8)).Return(nil, errors.New("pool closed")).Once()

	rec := do(h, http.MethodGet, "/go/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no inventory")

	rec = do(h, http.MethodGet, "/go/8", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, http.MethodGet, "/go/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAutomationStatus(t *testing.T) {
	h, s := newTestHandler(t)
	s.automation.EXPECT().Status(mock.Anything, int64(1)).Return(&port.AutomationStatus{
		CampaignID:        1,
		Enabled:           true,
		State:             domain.StateCondition2,
		WaitMinutes:       2,
		DailySpent:        decimal.RequireFromString("12"),
		RemainingClicks:   3000,
		AppliedBudget:     decimal.RequireFromString("13.5"),
		PendingURLBudgets: map[int64]decimal.Decimal{4: decimal.RequireFromString("1.25")},
	}, nil).Once()

	rec := do(h, http.MethodGet, "/api/v1/campaigns/1/automation", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "condition2", got["state"])
	assert.Equal(t, "12", got["dailySpent"])
	assert.EqualValues(t, 3000, got["remainingClicks"])
	assert.Equal(t, map[string]any{"4": "1.25"}, got["pendingUrlBudgets"])
	assert.Equal(t, []any{}, got["budgetedUrlIds"])
}

func TestAutomationNotFound(t *testing.T) {
	h, s := newTestHandler(t)
	s.automation.EXPECT().RunNow(mock.Anything, int64(9)).Return(nil, domain.ErrCampaignNotFound).Once()

	rec := do(h, http.MethodPost, "/api/v1/campaigns/9/automation/run", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConfigureAutomation(t *testing.T) {
	h, s := newTestHandler(t)
	s.automation.EXPECT().
		Configure(mock.Anything, int64(1), mock.MatchedBy(func(req port.ConfigureAutomationReq) bool {
			return req.Enabled != nil && *req.Enabled && req.WaitMinutes != nil && *req.WaitMinutes == 5
		})).
		Return(&port.AutomationStatus{CampaignID: 1, Enabled: true, State: domain.StateIdle, WaitMinutes: 5}, nil).Once()
	s.automation.EXPECT().
		Configure(mock.Anything, int64(1), mock.Anything).
		Return(nil, &domain.ValidationError{Field: "waitMinutes", Reason: "must be between 1 and 60"}).Once()

	rec := do(h, http.MethodPut, "/api/v1/campaigns/1/automation", `{"enabled":true,"waitMinutes":5}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodPut, "/api/v1/campaigns/1/automation", `{"waitMinutes":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"waitMinutes"`)

	rec = do(h, http.MethodPut, "/api/v1/campaigns/1/automation", `{"bogus":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunAutomationNetworkFailure(t *testing.T) {
	h, s := newTestHandler(t)
	s.automation.EXPECT().RunNow(mock.Anything, int64(1)).
		Return(nil, &domain.AuthError{Err: errors.New("invalid_grant")}).Once()

	rec := do(h, http.MethodPost, "/api/v1/campaigns/1/automation/run", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCreateURL(t *testing.T) {
	h, s := newTestHandler(t)
	s.urls.EXPECT().
		CreateURL(mock.Anything, port.CreateURLReq{CampaignID: 1, TargetURL: "https://a.example", OriginalClickLimit: 2000, Weight: 2}).
		Return(&domain.URL{ID: 10, CampaignID: 1, TargetURL: "https://a.example", OriginalClickLimit: 2000, ClickLimit: 3000, Weight: 2, Status: domain.URLStatusActive}, nil).Once()

	rec := do(h, http.MethodPost, "/api/v1/campaigns/1/urls", `{"targetUrl":"https://a.example","originalClickLimit":2000,"weight":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got urlResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(3000), got.ClickLimit)
	assert.Equal(t, domain.ActiveStatusActive, got.ActiveStatus)
}

func TestUpdateURLProtectedBaseline(t *testing.T) {
	h, s := newTestHandler(t)
	s.urls.EXPECT().
		UpdateURL(mock.Anything, int64(10), mock.MatchedBy(func(u domain.URLUpdate) bool {
			return u.OriginalClickLimit != nil && *u.OriginalClickLimit == 9999
		}), false).
		Return(&port.URLUpdateResult{
			URL:              domain.URL{ID: 10, OriginalClickLimit: 2000, ClickLimit: 2000, Status: domain.URLStatusActive},
			BaselineRejected: true,
		}, nil).Once()
	s.urls.EXPECT().UpdateURL(mock.Anything, int64(10), mock.Anything, true).
		Return(&port.URLUpdateResult{URL: domain.URL{ID: 10, OriginalClickLimit: 9999, ClickLimit: 9999}}, nil).Once()

	rec := do(h, http.MethodPatch, "/api/v1/urls/10", `{"originalClickLimit":9999}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var got updateURLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.BaselineRejected)
	assert.Equal(t, int64(2000), got.URL.OriginalClickLimit)

	rec = do(h, http.MethodPatch, "/api/v1/urls/10", `{"originalClickLimit":9999,"bypassProtection":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.BaselineRejected)
}

func TestListWarnings(t *testing.T) {
	h, s := newTestHandler(t)
	s.urls.EXPECT().ListWarnings(mock.Anything, 5).
		Return([]domain.ClickLimitWarning{{ID: 1, URLID: 10, AttemptedValue: 9999, RetainedValue: 2000}}, nil).Once()

	rec := do(h, http.MethodGet, "/api/v1/urls/warnings?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"attemptedValue":9999`)

	rec = do(h, http.MethodGet, "/api/v1/urls/warnings?limit=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetMultiplier(t *testing.T) {
	h, s := newTestHandler(t)
	s.urls.EXPECT().
		SetMultiplier(mock.Anything, int64(1), mock.MatchedBy(func(m decimal.Decimal) bool {
			return m.Equal(decimal.RequireFromString("1.5"))
		})).
		Return(int64(3), nil).Once()

	rec := do(h, http.MethodPut, "/api/v1/campaigns/1/multiplier", `{"multiplier":1.5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updatedUrls":3}`, rec.Body.String())
}

func TestUpdateSettingsMergesPartialBody(t *testing.T) {
	h, s := newTestHandler(t)
	current := domain.DefaultSettings()
	s.settings.EXPECT().GetSettings(mock.Anything).Return(current, nil).Once()
	s.settings.EXPECT().
		UpdateSettings(mock.Anything, mock.MatchedBy(func(in domain.Settings) bool {
			return in.MinimumClicksThreshold == 2000 &&
				in.DebounceWindow == 5*time.Minute &&
				in.RemainingClicksThreshold == current.RemainingClicksThreshold
		})).
		RunAndReturn(func(_ context.Context, in domain.Settings) (domain.Settings, error) { return in, nil }).Once()

	rec := do(h, http.MethodPut, "/api/v1/settings", `{"minimumClicksThreshold":2000,"debounceWindowMinutes":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got settingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(2000), got.MinimumClicksThreshold)
	assert.Equal(t, 5, got.DebounceWindowMinutes)
}

func TestErrorLogEndpoints(t *testing.T) {
	h, s := newTestHandler(t)
	id := uuid.New()
	campaignID := int64(1)
	s.errors.EXPECT().ListUnresolved(mock.Anything, 0).
		Return([]domain.ErrorLogEntry{{ID: id, CampaignID: &campaignID, Endpoint: "/campaigns/net-1", Method: "PATCH", RetryCount: 3}}, nil).Once()
	s.errors.EXPECT().Resolve(mock.Anything, id).Return(nil).Once()
	s.errors.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.ErrErrorLogNotFound).Once()
	s.errors.EXPECT().Clear(mock.Anything).Return(int64(4), nil).Once()

	rec := do(h, http.MethodGet, "/api/v1/errors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())

	rec = do(h, http.MethodPost, "/api/v1/errors/"+id.String()+"/resolve", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/errors/"+uuid.NewString()+"/resolve", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/errors/not-a-uuid/resolve", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodDelete, "/api/v1/errors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":4}`, rec.Body.String())
}

func TestHealthAndMetrics(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "traffic_http_requests_total")
}
