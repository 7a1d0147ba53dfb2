package wusul

import (
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"go.wusul.io/sdk/internal/client"
)

// Option is a function that can be passed to NewSDK to configure the SDK.
type Option func(config *client.Config)

// WithBaseURL configures the SDK to use the specified API base URL, overriding
// the default of https://api.wusul.io. Request paths are appended to it verbatim,
// so it should not end with a slash.
func WithBaseURL(baseURL string) Option {
	return func(config *client.Config) {
		config.BaseURL = baseURL
	}
}

// WithTimeout configures the overall timeout of each request, overriding the
// default of 30 seconds.
//
// It has no effect when combined with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(config *client.Config) {
		config.Timeout = timeout
	}
}

// WithHTTPClient configures the SDK to send requests with the specified client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(config *client.Config) {
		config.HTTPClient = httpClient
	}
}

// WithLogger configures the SDK to log requests to the specified logger.
// Nothing is logged by default.
func WithLogger(logger *zerolog.Logger) Option {
	return func(config *client.Config) {
		config.Logger = logger
	}
}

// WithClock configures the SDK to use the specified clock.
//
// This is useful for testing with a mocked clock, if not
// specified a real clock will be used.
func WithClock(clock clock.Clock) Option {
	return func(config *client.Config) {
		config.Clock = clock
	}
}
