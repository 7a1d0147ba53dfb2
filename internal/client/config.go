package client

import (
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"go.wusul.io/sdk/pkg/apierr"
)

const (
	DefaultBaseURL = "https://api.wusul.io"
	DefaultTimeout = 30 * time.Second
)

// Config is the configuration for the client.
type Config struct {
	AccountID    string          // The account id sent with every request
	SharedSecret string          // The secret used to sign requests, never sent
	BaseURL      string          // The API base URL, paths are appended verbatim
	Timeout      time.Duration   // Overall per-request timeout
	HTTPClient   *http.Client    // Optional HTTP client, built from Timeout if nil
	Logger       *zerolog.Logger // The logger to use
	Clock        clock.Clock     // The clock to use
}

// NewConfig returns a configuration for the given credentials with
// every other field set to its default.
func NewConfig(accountID, sharedSecret string) *Config {
	nop := zerolog.Nop()
	return &Config{
		AccountID:    accountID,
		SharedSecret: sharedSecret,
		BaseURL:      DefaultBaseURL,
		Timeout:      DefaultTimeout,
		Logger:       &nop,
		Clock:        clock.New(),
	}
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	switch {
	case c.AccountID == "":
		return apierr.Config("Account ID is required")
	case c.SharedSecret == "":
		return apierr.Config("Shared secret is required")
	case c.BaseURL == "":
		return apierr.Config("Base URL is required")
	case c.Timeout < 0:
		return apierr.Config("Timeout must not be negative")
	}
	return nil
}
