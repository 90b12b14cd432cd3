package rdap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public rdap.org redirector, which forwards the
	// query to the registry responsible for the domain's TLD.
	DefaultBaseURL = "https://rdap.org"

	DefaultTimeout = 10 * time.Second
)

// ErrNoExpiration means the service answered but its event list carries no
// usable expiration entry.
var ErrNoExpiration = errors.New("no expiration event in RDAP response")

// LookupError wraps a transport or decode failure talking to the RDAP service.
type LookupError struct {
	Err error
}

func (e *LookupError) Error() string { return e.Err.Error() }
func (e *LookupError) Unwrap() error { return e.Err }

// Event mirrors one entry of the RDAP "events" array.
type Event struct {
	Action string `json:"eventAction"`
	Date   string `json:"eventDate"`
}

type domainResponse struct {
	Events []Event `json:"events"`
}

// Client queries a single RDAP endpoint for domain objects.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		logger:  logger,
	}
}

// FetchExpiration returns the raw eventDate of the first event whose action
// is "expiration" and whose date is non-empty. Later expiration events, if a
// registry ever returns several, are ignored.
func (c *Client) FetchExpiration(ctx context.Context, domain string) (string, error) {
	u := c.baseURL + "/domain/" + url.PathEscape(domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", &LookupError{Err: err}
	}
	req.Header.Set("Accept", "application/rdap+json, application/json")

	c.logger.Debug("rdap lookup", zap.String("url", u))
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", &LookupError{Err: err}
	}
	defer resp.Body.Close()

	// The status code is deliberately not checked: registries answer errors
	// with a JSON body too, and a body without events falls out below as
	// ErrNoExpiration.
	var body domainResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &LookupError{Err: fmt.Errorf("decode RDAP body: %w", err)}
	}
	c.logger.Debug("rdap response",
		zap.String("domain", domain),
		zap.Int("events", len(body.Events)),
		zap.Duration("took", time.Since(start)))

	for _, ev := range body.Events {
		if ev.Action != "expiration" || ev.Date == "" {
			continue
		}
		return ev.Date, nil
	}
	return "", ErrNoExpiration
}
