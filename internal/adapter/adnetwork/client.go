package adnetwork

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"traffic-sender/internal/config/configs"
	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
	"traffic-sender/internal/observability"
)

// tokenExpiryDelta refreshes the access token this long before it expires.
const tokenExpiryDelta = 60 * time.Second

const maxResponseBody = 1 << 20

// Client implements port.AdNetwork over the network's REST API.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         oauth2.TokenSource
	limiter        *rate.Limiter
	errLog         port.ErrorLogRepository
	logger         *slog.Logger
	timeout        time.Duration
	maxRetries     uint64
	initialBackoff time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for API and token calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenSource replaces the refresh-token grant.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// NewClient builds a client from cfg. Failed calls are recorded in errLog.
func NewClient(cfg configs.AdNetwork, errLog port.ErrorLogRepository, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		http:           &http.Client{},
		errLog:         errLog,
		logger:         logger,
		timeout:        cfg.Timeout,
		maxRetries:     cfg.MaxRetries,
		initialBackoff: cfg.InitialBackoff,
	}
	if c.timeout <= 0 {
		c.timeout = 10 * time.Second
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	} else {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tokens == nil {
		conf := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL, AuthStyle: oauth2.AuthStyleInParams},
		}
		// The grant runs outside any caller context, so its transport needs
		// its own deadline.
		tokenHTTP := c.http
		if tokenHTTP.Timeout <= 0 {
			clone := *tokenHTTP
			clone.Timeout = c.timeout
			tokenHTTP = &clone
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, tokenHTTP)
		c.tokens = oauth2.ReuseTokenSourceWithExpiry(nil, &refreshSource{
			conf:         conf,
			ctx:          ctx,
			refreshToken: cfg.RefreshToken,
		}, tokenExpiryDelta)
	}
	return c
}

// refreshSource performs one refresh_token grant per call and keeps the
// rotated refresh token when the server issues one.
type refreshSource struct {
	mu           sync.Mutex
	conf         *oauth2.Config
	ctx          context.Context
	refreshToken string
}

func (s *refreshSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, err := s.conf.TokenSource(s.ctx, &oauth2.Token{RefreshToken: s.refreshToken}).Token()
	if err != nil {
		return nil, err
	}
	if tok.RefreshToken != "" {
		s.refreshToken = tok.RefreshToken
	}
	return tok, nil
}

type tokenResult struct {
	tok *oauth2.Token
	err error
}

// Token returns a valid access token. The wait is bounded by ctx and the
// attempt timeout; a refresh that outlives both fails with AuthError.
func (c *Client) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	done := make(chan tokenResult, 1)
	go func() {
		tok, err := c.tokens.Token()
		done <- tokenResult{tok: tok, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", &domain.AuthError{Err: res.err}
		}
		return res.tok.AccessToken, nil
	case <-ctx.Done():
		return "", &domain.AuthError{Err: fmt.Errorf("token refresh: %w", ctx.Err())}
	}
}

// GetCampaign reads the network campaign.
func (c *Client) GetCampaign(ctx context.Context, networkID string) (*domain.NetworkCampaign, error) {
	var out domain.NetworkCampaign
	if err := c.call(ctx, http.MethodGet, "get_campaign", "/campaigns/"+url.PathEscape(networkID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type patchBody struct {
	Status          *string     `json:"status,omitempty"`
	Active          *bool       `json:"active,omitempty"`
	MaxDaily        json.Number `json:"max_daily,omitempty"`
	ScheduleEndTime *time.Time  `json:"schedule_end_time,omitempty"`
}

// PatchCampaign applies a partial update to the network campaign.
func (c *Client) PatchCampaign(ctx context.Context, networkID string, patch domain.CampaignPatch) error {
	body := patchBody{
		Status:          patch.Status,
		Active:          patch.Active,
		ScheduleEndTime: patch.ScheduleEndTime,
	}
	if patch.MaxDaily != nil {
		body.MaxDaily = json.Number(patch.MaxDaily.StringFixed(2))
	}
	return c.call(ctx, http.MethodPatch, "patch_campaign", "/campaigns/"+url.PathEscape(networkID), body, nil)
}

type spendReport struct {
	Spent decimal.Decimal `json:"spent"`
}

// GetDailySpend returns the money spent on the UTC day of date.
func (c *Client) GetDailySpend(ctx context.Context, networkID string, date time.Time) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("campaign_id", networkID)
	q.Set("date", domain.SpendDate(date))
	var out spendReport
	if err := c.call(ctx, http.MethodGet, "daily_spend", "/reports/spend?"+q.Encode(), nil, &out); err != nil {
		return decimal.Zero, err
	}
	return out.Spent, nil
}

// call performs one API call with per-attempt timeout and exponential
// retries on transient failures. Final failures are written to the error
// log.
func (c *Client) call(ctx context.Context, method, endpoint, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return err
		}
	}

	attempts := 0
	op := func() error {
		attempts++
		return c.attempt(ctx, method, endpoint, path, payload, out)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialBackoff
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, c.maxRetries), ctx)

	err := backoff.RetryNotify(op, policy, func(err error, wait time.Duration) {
		observability.NetworkRetries.WithLabelValues(endpoint).Inc()
		c.logger.Warn("ad network call failed, retrying",
			slog.String("endpoint", endpoint),
			slog.Int("attempt", attempts),
			slog.Duration("wait", wait),
			slog.Any("error", err))
	})
	if err == nil {
		observability.NetworkCalls.WithLabelValues(endpoint, "ok").Inc()
		return nil
	}
	observability.NetworkCalls.WithLabelValues(endpoint, "error").Inc()
	if !errors.Is(err, context.Canceled) {
		c.record(ctx, method, endpoint, path, payload, err, attempts-1)
	}
	return err
}

func (c *Client) attempt(ctx context.Context, method, endpoint, path string, payload []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return backoff.Permanent(err)
	}
	token, err := c.Token(ctx)
	if err != nil {
		return backoff.Permanent(err)
	}

	actx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(actx, method, c.baseURL+path, body)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return &domain.TransientNetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return &domain.TransientNetworkError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return &domain.TransientNetworkError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	case resp.StatusCode == http.StatusUnauthorized:
		return backoff.Permanent(&domain.AuthError{Err: fmt.Errorf("%s: token refused", endpoint)})
	case resp.StatusCode >= 400:
		return backoff.Permanent(&domain.APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       domain.SummarizePayload(raw),
		})
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode %s response: %w", endpoint, err))
		}
	}
	return nil
}

func (c *Client) record(ctx context.Context, method, endpoint, path string, payload []byte, callErr error, retries int) {
	entry := &domain.ErrorLogEntry{
		Endpoint:   path,
		Method:     method,
		Payload:    domain.SummarizePayload(payload),
		Message:    callErr.Error(),
		RetryCount: max(retries, 0),
	}
	if id, ok := port.CampaignIDFromContext(ctx); ok {
		entry.CampaignID = &id
	}
	if err := c.errLog.RecordError(context.WithoutCancel(ctx), entry); err != nil {
		c.logger.Error("failed to record ad network error",
			slog.String("endpoint", endpoint),
			slog.Any("error", err))
	}
}
