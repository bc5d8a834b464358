package feeds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/faizmokh/productify/internal/config"
)

// Failure kinds. Every error returned by Client matches exactly one of them.
var (
	ErrTimeout     = errors.New("request timeout")
	ErrNetwork     = errors.New("network error")
	ErrUnavailable = errors.New("service unavailable")
)

// DefaultTimeout bounds each request when the config leaves it unset.
const DefaultTimeout = 10 * time.Second

// Client fetches the dashboard's remote cards. Each request gets its own
// deadline; a late response is abandoned, never retried.
type Client struct {
	http       *http.Client
	timeout    time.Duration
	geoURL     string
	weatherURL string
	quoteURL   string
	logger     *slog.Logger
}

func NewClient(cfg config.FeedsConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:       &http.Client{},
		timeout:    timeout,
		geoURL:     cfg.GeoURL,
		weatherURL: cfg.WeatherURL,
		quoteURL:   cfg.QuoteURL,
		logger:     logger,
	}
}

func (c *Client) getJSON(ctx context.Context, op, rawURL string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return c.fail(op, fmt.Errorf("%w: %w", ErrUnavailable, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(op, classify(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(op, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(op, classify(err))
	}
	return nil
}

func (c *Client) fail(op string, err error) error {
	c.logger.Warn("feed request failed", "op", op, "err", err)
	return fmt.Errorf("%s: %w", op, err)
}

func classify(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.As(err, new(*url.Error)), errors.As(err, new(*net.OpError)):
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	default:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
}

// Unavailable maps a feed error to the two lines shown in place of the
// weather card.
func Unavailable(err error) (desc, detail string) {
	switch {
	case errors.Is(err, ErrTimeout):
		return "Request timeout", "Try again later"
	case errors.Is(err, ErrNetwork):
		return "Network error", "Check internet connection"
	default:
		return "Unable to load", "Service unavailable"
	}
}
