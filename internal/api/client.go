package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"boipoka-storefront/pkg/cache"
	"boipoka-storefront/pkg/logger"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// TokenSource supplies the current bearer token, or "" when anonymous.
type TokenSource interface {
	Token() string
}

// Error is a failed API call. Message comes from the server's
// {"error": "..."} body when present, otherwise the HTTP status text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is an API authorization failure.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

// Options tunes the client. Zero values fall back to sane defaults.
type Options struct {
	Timeout           time.Duration
	Tokens            TokenSource
	ClientID          string
	RequestsPerSecond float64
	Burst             int
	Cache             cache.CacheService
	BookListTTL       time.Duration
	BookTTL           time.Duration
}

// Client calls the bookstore API over HTTP. All persistence and business
// rules live behind it; the client only ferries JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	clientID   string
	limiter    *rate.Limiter
	cache      cache.CacheService
	listTTL    time.Duration
	bookTTL    time.Duration
}

// NewClient constructs a bookstore API client.
func NewClient(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	listTTL := opts.BookListTTL
	if listTTL <= 0 {
		listTTL = 2 * time.Minute
	}
	bookTTL := opts.BookTTL
	if bookTTL <= 0 {
		bookTTL = 5 * time.Minute
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     opts.Tokens,
		clientID:   opts.ClientID,
		limiter:    limiter,
		cache:      opts.Cache,
		listTTL:    listTTL,
		bookTTL:    bookTTL,
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	return c.do(ctx, method, path, payload, out, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any, header http.Header) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-ID", c.clientID)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	logger.APIRequest(method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		msg := errResp.Error
		if msg == "" {
			msg = resp.Status
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
