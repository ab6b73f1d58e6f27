package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"edgedata/pkg/utils"
)

// RequestIDHeader carries a per-request UUID so probes can be found in server logs.
const RequestIDHeader = "X-Request-ID"

// Client sends dataset values to a target API.
type Client struct {
	client  *resty.Client
	limiter *RateLimiter
}

func NewClient(baseURL string, config utils.ProbeConfig) (*Client, error) {
	timeout, err := config.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	delay, err := config.DelayDuration()
	if err != nil {
		return nil, err
	}

	r := resty.New()
	r.SetTransport(NewCustomTransport(config.VerifyTLS))
	r.SetBaseURL(baseURL)
	r.SetTimeout(timeout)
	r.SetRetryCount(config.MaxRetries)
	r.SetRetryWaitTime(200 * time.Millisecond)
	r.SetHeader("Accept", "application/json")
	r.SetHeaders(config.Headers)

	if config.Username != "" {
		r.SetBasicAuth(config.Username, config.Password)
	}

	return &Client{
		client:  r,
		limiter: NewRateLimiter(config.RateLimit, delay, delay),
	}, nil
}

// SetDefaultHeader sets a header sent with every request.
func (c *Client) SetDefaultHeader(key, value string) {
	c.client.SetHeader(key, value)
}

// Send issues one JSON request, waiting for the rate limiter first.
// It returns the request ID alongside the response.
func (c *Client) Send(ctx context.Context, method, path string, body any) (*resty.Response, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	requestID := uuid.NewString()
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Execute(method, path)
	if err != nil {
		return nil, requestID, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, requestID, nil
}
