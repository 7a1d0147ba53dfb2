// Package accesspasses is the client for managing access passes, the digital
// wallet credentials issued from card templates.
package accesspasses

import (
	"context"
	"fmt"
	"net/url"

	"go.wusul.io/sdk/internal/client"
	"go.wusul.io/sdk/internal/params"
	"go.wusul.io/sdk/types"
)

const basePath = "/v1/access-passes"

// Client is the SDK for managing access passes.
type Client struct {
	client *client.Client
}

func NewClient(client *client.Client) *Client {
	return &Client{client}
}

// Issue issues a new access pass.
func (c *Client) Issue(ctx context.Context, p *types.IssueAccessPassParams) (*types.AccessPass, error) {
	if err := params.Validate(p); err != nil {
		return nil, err
	}

	resp := &types.AccessPass{}
	if err := c.client.Post(ctx, basePath, p, resp); err != nil {
		return nil, fmt.Errorf("unable to issue access pass: %w", err)
	}
	return resp, nil
}

// List returns the access passes matching the filters in p.
// A nil p lists every pass.
func (c *Client) List(ctx context.Context, p *types.ListAccessPassesParams) ([]types.AccessPass, error) {
	var query any
	if p != nil {
		if err := params.Validate(p); err != nil {
			return nil, err
		}
		query = p
	}

	var resp []types.AccessPass
	if err := c.client.Get(ctx, basePath, query, &resp); err != nil {
		return nil, fmt.Errorf("unable to list access passes: %w", err)
	}
	return resp, nil
}

// Update changes the details of the access pass identified by p.AccessPassID.
func (c *Client) Update(ctx context.Context, p *types.UpdateAccessPassParams) (*types.AccessPass, error) {
	if err := params.Validate(p); err != nil {
		return nil, err
	}

	resp := &types.AccessPass{}
	if err := c.client.Patch(ctx, passPath(p.AccessPassID), p, resp); err != nil {
		return nil, fmt.Errorf("unable to update access pass %s: %w", p.AccessPassID, err)
	}
	return resp, nil
}

// Suspend temporarily disables an access pass.
func (c *Client) Suspend(ctx context.Context, accessPassID string) (*types.APIResponse, error) {
	return c.action(ctx, accessPassID, "suspend")
}

// Resume re-enables a suspended access pass.
func (c *Client) Resume(ctx context.Context, accessPassID string) (*types.APIResponse, error) {
	return c.action(ctx, accessPassID, "resume")
}

// Unlink detaches an access pass from the device it was installed on.
func (c *Client) Unlink(ctx context.Context, accessPassID string) (*types.APIResponse, error) {
	return c.action(ctx, accessPassID, "unlink")
}

// Delete deletes an access pass.
func (c *Client) Delete(ctx context.Context, accessPassID string) (*types.APIResponse, error) {
	if err := params.ID("access pass id", accessPassID); err != nil {
		return nil, err
	}

	resp := &types.APIResponse{}
	if err := c.client.Delete(ctx, passPath(accessPassID), resp); err != nil {
		return nil, fmt.Errorf("unable to delete access pass %s: %w", accessPassID, err)
	}
	return resp, nil
}

// action posts an empty body to one of the state transition endpoints.
func (c *Client) action(ctx context.Context, accessPassID, action string) (*types.APIResponse, error) {
	if err := params.ID("access pass id", accessPassID); err != nil {
		return nil, err
	}

	resp := &types.APIResponse{}
	if err := c.client.Post(ctx, passPath(accessPassID)+"/"+action, nil, resp); err != nil {
		return nil, fmt.Errorf("unable to %s access pass %s: %w", action, accessPassID, err)
	}
	return resp, nil
}

func passPath(accessPassID string) string {
	return fmt.Sprintf("%s/%s", basePath, url.PathEscape(accessPassID))
}
