package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// MaxBodySize caps every response body read by the fetcher.
const MaxBodySize = 32 << 20

// Request describes a JSON call
type Request struct {
	Op         string // label used in errors and logs
	URL        string
	Method     string // defaults to GET
	Header     http.Header
	Body       any  // JSON-encoded when non-nil
	QuotaAware bool // map 429 to QuotaExceeded
}

// Client performs JSON and binary requests without retries
type Client struct {
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client whose requests time out after timeout
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP creates a Client around an existing *http.Client
func NewClientWithHTTP(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		log:        logger.With("component", "fetch"),
	}
}

// HTTPClient exposes the underlying client so SDK-based providers share the
// same timeout and transport.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// FetchJSON performs the request and returns the parsed document
func (c *Client) FetchJSON(ctx context.Context, req Request) (gjson.Result, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return gjson.Result{}, Parse(req.Op, fmt.Errorf("encode request body: %w", err))
		}
		body = bytes.NewReader(encoded)
	}

	header := req.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Set("Accept", "application/json")
	if req.Body != nil && header.Get("Content-Type") == "" {
		header.Set("Content-Type", "application/json")
	}

	data, err := c.do(ctx, req.Op, method, req.URL, header, body, req.QuotaAware)
	if err != nil {
		return gjson.Result{}, err
	}

	if !gjson.ValidBytes(data) {
		return gjson.Result{}, Parse(req.Op, errors.New("response is not valid JSON"))
	}
	return gjson.ParseBytes(data), nil
}

// FetchBinary downloads the body at rawURL
func (c *Client) FetchBinary(ctx context.Context, op, rawURL string) ([]byte, error) {
	data, err := c.do(ctx, op, http.MethodGet, rawURL, nil, nil, false)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, Parse(op, errors.New("empty body"))
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, op, method, rawURL string, header http.Header, body io.Reader, quotaAware bool) ([]byte, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, InvalidURL(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, InvalidURL(op, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, Network(op, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "fetch response",
		slog.String("op", op),
		slog.String("method", method),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode/100 != 2 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, Status(op, resp.StatusCode, quotaAware)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, Network(op, fmt.Errorf("read body: %w", err))
	}
	if int64(len(data)) > MaxBodySize {
		return nil, Parse(op, fmt.Errorf("body exceeds %d bytes", MaxBodySize))
	}
	return data, nil
}
