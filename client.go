package solaredge

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/solarmon/go-solaredge/internal/httpclient"
	"github.com/solarmon/go-solaredge/internal/middleware"
	"github.com/solarmon/go-solaredge/internal/ratelimit"
	"github.com/solarmon/go-solaredge/observability"
)

const (
	// DefaultBaseURL is the SolarEdge monitoring API base URL.
	DefaultBaseURL = "https://monitoringapi.solaredge.com"

	// DefaultRequestsPerHour is the advisory client-side pacing limit,
	// sized to the server's hourly request quota.
	DefaultRequestsPerHour = 300

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is a read-only client for the monitoring API. It holds no state
// between calls beyond its configuration; every operation is a single
// blocking request.
type Client struct {
	baseURL    string
	httpClient *httpclient.Client
	logger     observability.Logger
}

// Compile-time check that Client covers the full endpoint surface.
var _ MonitoringAPI = (*Client)(nil)

// ClientConfig holds configuration for the monitoring API client.
type ClientConfig struct {
	// APIKey authenticates every request, passed as the api_key query
	// parameter (required). Generate one in the monitoring portal under
	// Admin > Site Access.
	APIKey string

	// BaseURL overrides the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the transport collaborator to use (optional). When
	// set, its timeout and TLS configuration are left untouched.
	HTTPClient *http.Client

	// RequestsPerHour sets the advisory client-side pacing limit
	// (defaults to 300; negative disables client-side pacing entirely).
	// The server enforces the real quota either way.
	RequestsPerHour int

	// Timeout sets the HTTP client timeout when no HTTPClient is given.
	Timeout time.Duration

	// Logger for request tracing (optional, uses a noop logger if nil).
	Logger observability.Logger

	// Metrics recorder (optional, uses a noop recorder if nil).
	Metrics observability.MetricsRecorder
}

// New creates a monitoring API client with default settings. This is the
// recommended way to create a client for most use cases.
//
// Defaults:
//   - Base URL: https://monitoringapi.solaredge.com
//   - Client-side pacing: 300 requests/hour
//   - Timeout: 30 seconds
//
// For custom configuration, use NewWithConfig.
func New(apiKey string) (*Client, error) {
	return NewWithConfig(&ClientConfig{APIKey: apiKey})
}

// NewWithConfig creates a monitoring API client with custom configuration.
//
// Example:
//
//	client, err := solaredge.NewWithConfig(&solaredge.ClientConfig{
//	    APIKey:          "your-api-key",
//	    RequestsPerHour: 120,
//	    Logger:          myLogger,
//	})
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	// Set defaults
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RequestsPerHour == 0 {
		cfg.RequestsPerHour = DefaultRequestsPerHour
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}

	// Chain order, outside in: observability sees the URL before the
	// credential is attached; pacing happens just before the wire.
	mw := []httpclient.Middleware{
		middleware.Observability(logger, cfg.Metrics),
	}
	if cfg.RequestsPerHour > 0 {
		mw = append(mw, middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: ratelimit.NewHourlyLimiter(cfg.RequestsPerHour),
			Logger:  logger,
			Metrics: cfg.Metrics,
		}))
	}
	mw = append(mw, middleware.QueryAuth("api_key", cfg.APIKey))

	opts := []httpclient.Option{
		httpclient.WithHTTPClient(cfg.HTTPClient),
		httpclient.WithMiddleware(mw...),
	}
	if cfg.HTTPClient == nil {
		opts = append(opts, httpclient.WithTimeout(cfg.Timeout))
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpclient.New(opts...),
		logger:     logger,
	}, nil
}

// ListSites lists all sites of the account. Each site carries the id used
// by the per-site operations.
func (c *Client) ListSites(ctx context.Context) (*SiteList, error) {
	var reply sitesReply
	if err := c.get(ctx, "/sites/list", nil, &reply, "sites"); err != nil {
		return nil, err
	}
	if reply.Sites == nil {
		return nil, newParseError("sites", nil)
	}
	return reply.Sites, nil
}

// SiteDetails returns the descriptive metadata of a site: name, location,
// status, peak power.
func (c *Client) SiteDetails(ctx context.Context, siteID SiteID) (*Site, error) {
	var reply siteDetailsReply
	if err := c.get(ctx, "/site/"+siteID.String()+"/details", nil, &reply, "details"); err != nil {
		return nil, err
	}
	if reply.Details == nil {
		return nil, newParseError("details", nil)
	}
	return reply.Details, nil
}

// DataPeriod returns the energy production start and end dates of a site.
func (c *Client) DataPeriod(ctx context.Context, siteID SiteID) (*DataPeriod, error) {
	var reply dataPeriodReply
	if err := c.get(ctx, "/site/"+siteID.String()+"/dataPeriod", nil, &reply, "dataPeriod"); err != nil {
		return nil, err
	}
	if reply.DataPeriod == nil {
		return nil, newParseError("dataPeriod", nil)
	}
	return reply.DataPeriod, nil
}

// Overview returns the site overview: last reading timestamp, current
// power, and accumulated energy over the standard windows. Use the result's
// EstimatedNextUpdate to schedule the next poll.
func (c *Client) Overview(ctx context.Context, siteID SiteID) (*Overview, error) {
	var reply overviewReply
	if err := c.get(ctx, "/site/"+siteID.String()+"/overview", nil, &reply, "overview"); err != nil {
		return nil, err
	}
	if reply.Overview == nil {
		return nil, newParseError("overview", nil)
	}
	return reply.Overview, nil
}

// Energy returns the site energy measurements over the period at the given
// resolution. The API limits the span to one year for day resolution and
// one month for quarter-hour or hour resolution; longer spans are rejected
// server-side.
func (c *Client) Energy(ctx context.Context, siteID SiteID, period DataPeriod, unit TimeUnit) (*EnergySeries, error) {
	if !unit.valid() {
		return nil, errors.Newf("invalid time unit %q", string(unit))
	}
	if err := validateDateRange(period.StartDate, period.EndDate); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("startDate", period.StartDate.Format(dateLayout))
	params.Set("endDate", period.EndDate.Format(dateLayout))
	params.Set("timeUnit", string(unit))

	var reply energyReply
	if err := c.get(ctx, "/site/"+siteID.String()+"/energy", params, &reply, "energy"); err != nil {
		return nil, err
	}
	if reply.Energy == nil {
		return nil, newParseError("energy", nil)
	}
	return reply.Energy, nil
}

// TimeFrameEnergy returns the total energy produced over the period.
func (c *Client) TimeFrameEnergy(ctx context.Context, siteID SiteID, period DataPeriod) (*TimeFrameEnergy, error) {
	if err := validateDateRange(period.StartDate, period.EndDate); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("startDate", period.StartDate.Format(dateLayout))
	params.Set("endDate", period.EndDate.Format(dateLayout))

	var reply timeFrameEnergyReply
	if err := c.get(ctx, "/site/"+siteID.String()+"/timeFrameEnergy", params, &reply, "timeFrameEnergy"); err != nil {
		return nil, err
	}
	if reply.TimeFrameEnergy == nil {
		return nil, newParseError("timeFrameEnergy", nil)
	}
	return reply.TimeFrameEnergy, nil
}

// Power returns the site power measurements in quarter-hour resolution.
// The API limits the span to one month.
func (c *Client) Power(ctx context.Context, siteID SiteID, start, end time.Time) (*PowerSeries, error) {
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("startTime", start.Format(timestampLayout))
	params.Set("endTime", end.Format(timestampLayout))

	var reply powerReply
	if err := c.get(ctx, "/site/"+siteID.String()+"/power", params, &reply, "power"); err != nil {
		return nil, err
	}
	if reply.Power == nil {
		return nil, newParseError("power", nil)
	}
	return reply.Power, nil
}

func validateDateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errors.New("period requires both a start and an end")
	}
	if end.Before(start) {
		return errors.New("period start must not be after its end")
	}
	return nil
}

// get issues the request and maps the outcome onto the error taxonomy:
// transport failures, non-2xx API rejections, and undecodable 2xx bodies
// stay distinguishable for the caller.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any, envelope string) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{cause: err}
	}

	c.logger.Debug("monitoring API reply",
		observability.Field{Key: "path", Value: path},
		observability.Field{Key: "status", Value: resp.StatusCode},
		observability.Field{Key: "body", Value: string(body)},
	)

	if resp.StatusCode/100 != 2 {
		return newAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return asParseError(envelope, err)
	}
	return nil
}
