// Package console is the client for the Wusul console: card templates and
// the account event log. The console is only available to Enterprise tier
// accounts; other accounts receive authentication errors.
package console

import (
	"context"
	"fmt"
	"net/url"

	"go.wusul.io/sdk/internal/client"
	"go.wusul.io/sdk/internal/params"
	"go.wusul.io/sdk/types"
)

const (
	templatesPath = "/v1/console/card-templates"
	eventLogPath  = "/v1/console/event-log"
)

// Client is the SDK for the Wusul console.
type Client struct {
	client *client.Client
}

func NewClient(client *client.Client) *Client {
	return &Client{client}
}

// CreateTemplate creates a new card template.
func (c *Client) CreateTemplate(ctx context.Context, p *types.CreateCardTemplateParams) (*types.CardTemplate, error) {
	if err := params.Validate(p); err != nil {
		return nil, err
	}

	resp := &types.CardTemplate{}
	if err := c.client.Post(ctx, templatesPath, p, resp); err != nil {
		return nil, fmt.Errorf("unable to create card template: %w", err)
	}
	return resp, nil
}

// ReadTemplate fetches a card template by id.
func (c *Client) ReadTemplate(ctx context.Context, cardTemplateID string) (*types.CardTemplate, error) {
	if err := params.ID("card template id", cardTemplateID); err != nil {
		return nil, err
	}

	resp := &types.CardTemplate{}
	if err := c.client.Get(ctx, templatePath(cardTemplateID), nil, resp); err != nil {
		return nil, fmt.Errorf("unable to read card template %s: %w", cardTemplateID, err)
	}
	return resp, nil
}

// UpdateTemplate changes the card template identified by p.CardTemplateID.
func (c *Client) UpdateTemplate(ctx context.Context, p *types.UpdateCardTemplateParams) (*types.CardTemplate, error) {
	if err := params.Validate(p); err != nil {
		return nil, err
	}

	resp := &types.CardTemplate{}
	if err := c.client.Patch(ctx, templatePath(p.CardTemplateID), p, resp); err != nil {
		return nil, fmt.Errorf("unable to update card template %s: %w", p.CardTemplateID, err)
	}
	return resp, nil
}

// PublishTemplate publishes a card template so passes can be issued from it.
func (c *Client) PublishTemplate(ctx context.Context, cardTemplateID string) (*types.APIResponse, error) {
	if err := params.ID("card template id", cardTemplateID); err != nil {
		return nil, err
	}

	resp := &types.APIResponse{}
	if err := c.client.Post(ctx, templatePath(cardTemplateID)+"/publish", nil, resp); err != nil {
		return nil, fmt.Errorf("unable to publish card template %s: %w", cardTemplateID, err)
	}
	return resp, nil
}

// EventLog returns the event log entries matching the filters in p.
// A nil p returns the most recent entries.
func (c *Client) EventLog(ctx context.Context, p *types.ReadEventLogParams) ([]types.EventLogEntry, error) {
	var query any
	if p != nil {
		if err := params.Validate(p); err != nil {
			return nil, err
		}
		query = p
	}

	var resp []types.EventLogEntry
	if err := c.client.Get(ctx, eventLogPath, query, &resp); err != nil {
		return nil, fmt.Errorf("unable to read event log: %w", err)
	}
	return resp, nil
}

func templatePath(cardTemplateID string) string {
	return fmt.Sprintf("%s/%s", templatesPath, url.PathEscape(cardTemplateID))
}
