package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"go.wusul.io/sdk/pkg/apierr"
	"go.wusul.io/sdk/pkg/auth"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const userAgent = "Wusul-Go-SDK"

// Client is the underlying raw client for communicating with the Wusul API.
//
// It is injected into each resource struct by the main [wusul] package and is
// safe for concurrent use. Its configuration is fixed at construction.
type Client struct {
	cfg  Config
	http *http.Client
}

// New validates cfg and creates a client from a copy of it.
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{cfg: *cfg}
	if c.cfg.Logger == nil {
		nop := zerolog.Nop()
		c.cfg.Logger = &nop
	}
	if c.cfg.Clock == nil {
		c.cfg.Clock = clock.New()
	}

	c.http = c.cfg.HTTPClient
	if c.http == nil {
		c.http = &http.Client{Timeout: c.cfg.Timeout}
	}
	return c, nil
}

// AccountID returns the account the client acts on behalf of.
func (c *Client) AccountID() string {
	return c.cfg.AccountID
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// Get performs a signed GET request to the specified path.
//
// query may be nil, a map or a struct with json tags. The whole query object
// is signed, and its scalar top-level values are sent as query parameters.
func (c *Client) Get(ctx context.Context, path string, query any, response any) error {
	params, err := queryParams(query)
	if err != nil {
		return err
	}

	payload, err := auth.CanonicalJSON(params)
	if err != nil {
		return apierr.Serialization(err)
	}

	target := c.cfg.BaseURL + path
	if values := c.encodeQuery(params); len(values) > 0 {
		target += "?" + values.Encode()
	}

	return c.do(ctx, http.MethodGet, target, path, payload, false, response)
}

// Post performs a signed POST request to the specified path.
//
// A nil body is sent, and signed, as the empty object.
func (c *Client) Post(ctx context.Context, path string, body any, response any) error {
	return c.send(ctx, http.MethodPost, path, body, response)
}

// Patch performs a signed PATCH request to the specified path.
func (c *Client) Patch(ctx context.Context, path string, body any, response any) error {
	return c.send(ctx, http.MethodPatch, path, body, response)
}

// Delete performs a signed DELETE request to the specified path.
//
// DELETE requests carry no body and sign the empty payload.
func (c *Client) Delete(ctx context.Context, path string, response any) error {
	payload, err := auth.CanonicalJSON(nil)
	if err != nil {
		return apierr.Serialization(err)
	}
	return c.do(ctx, http.MethodDelete, c.cfg.BaseURL+path, path, payload, false, response)
}

func (c *Client) send(ctx context.Context, method, path string, body any, response any) error {
	// The bytes that are signed are exactly the bytes that are sent
	payload, err := auth.CanonicalJSON(body)
	if err != nil {
		return apierr.Serialization(err)
	}
	return c.do(ctx, method, c.cfg.BaseURL+path, path, payload, true, response)
}

func (c *Client) do(ctx context.Context, method, target, path string, payload []byte, withBody bool, response any) error {
	// Sign the payload
	headers, err := auth.NewHeaders(c.cfg.AccountID, c.cfg.SharedSecret, auth.BytesPayload(payload))
	if err != nil {
		return apierr.Serialization(err)
	}

	// Create the request
	var body io.Reader
	if withBody {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return apierr.Transport(fmt.Errorf("failed to create request: %w", err))
	}

	// Set the headers
	requestID := uuid.NewString()
	headers.Apply(req.Header)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)

	log := c.cfg.Logger.With().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Logger()
	start := c.cfg.Clock.Now()

	// Send the request
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Dur("elapsed", c.cfg.Clock.Since(start)).Msg("wusul request failed")
		return apierr.Transport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode).Msg("unable to read wusul response")
		return apierr.Transport(fmt.Errorf("failed to read response body: %w", err))
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", c.cfg.Clock.Since(start)).
		Msg("wusul request completed")

	return handleResponse(resp.StatusCode, respBody, response)
}
