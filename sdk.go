package wusul

import (
	"context"
	"fmt"

	"go.wusul.io/sdk/accesspasses"
	"go.wusul.io/sdk/console"
	"go.wusul.io/sdk/internal/client"
	"go.wusul.io/sdk/types"
)

// NewSDK creates a new SDK acting on behalf of accountID, signing every
// request with sharedSecret.
//
// It returns an error matching [ErrConfig] if either credential is empty or
// an option leaves the configuration unusable.
func NewSDK(accountID, sharedSecret string, options ...Option) (*SDK, error) {
	// Create the raw client
	cfg := client.NewConfig(accountID, sharedSecret)
	for _, option := range options {
		option(cfg)
	}
	rawClient, err := client.New(cfg)
	if err != nil {
		return nil, err
	}

	// Now create the SDK struct
	return &SDK{
		AccessPasses: accesspasses.NewClient(rawClient),
		Console:      console.NewClient(rawClient),
		client:       rawClient,
	}, nil
}

// SDK is the main SDK for communicating with the Wusul API.
//
// It is safe for concurrent use by multiple goroutines.
type SDK struct {
	// AccessPasses is the client for issuing and managing access passes.
	AccessPasses *accesspasses.Client

	// Console is the client for the enterprise console: card templates
	// and the event log.
	Console *console.Client

	client *client.Client
}

// AccountID returns the account the SDK acts on behalf of.
func (s *SDK) AccountID() string {
	return s.client.AccountID()
}

// BaseURL returns the base URL of the API the SDK talks to.
func (s *SDK) BaseURL() string {
	return s.client.BaseURL()
}

// Health checks the health of the Wusul API.
func (s *SDK) Health(ctx context.Context) (types.Health, error) {
	var resp types.Health
	if err := s.client.Get(ctx, "/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("unable to check api health: %w", err)
	}
	return resp, nil
}
