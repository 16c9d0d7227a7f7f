// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package trackerclient provides an HTTP client for the REST API of a tracker node.
package trackerclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/caspereye/stakingtracker/api/types"
	"github.com/caspereye/stakingtracker/health"
)

// Client talks to a tracker node.
type Client struct {
	url string
	c   *http.Client
}

// New creates a new Client with the provided URL.
func New(url string) *Client {
	return NewWithHTTP(url, http.DefaultClient)
}

func NewWithHTTP(url string, c *http.Client) *Client {
	return &Client{
		url: strings.TrimRight(url, "/"),
		c:   c,
	}
}

// GetSnapshot retrieves the latest snapshot.
func (c *Client) GetSnapshot(ctx context.Context) (*types.Snapshot, error) {
	body, err := c.httpGET(ctx, c.url+"/tracker")
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve snapshot - %w", err)
	}

	var snapshot types.Snapshot
	if err = json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("unable to unmarshal snapshot - %w", err)
	}
	return &snapshot, nil
}

// GetField retrieves a single tracker value, e.g. "risk-score".
func (c *Client) GetField(ctx context.Context, name string) (uint64, error) {
	body, err := c.httpGET(ctx, c.url+"/tracker/"+name)
	if err != nil {
		return 0, fmt.Errorf("unable to retrieve %s - %w", name, err)
	}

	var field types.Field
	if err = json.Unmarshal(body, &field); err != nil {
		return 0, fmt.Errorf("unable to unmarshal %s - %w", name, err)
	}
	return field.Value, nil
}

// RecordSnapshot submits a snapshot. A reverted submission is reported in the result, not as an error.
func (c *Client) RecordSnapshot(ctx context.Context, req *types.SnapshotRequest) (*types.CallResult, error) {
	body, err := c.httpPOST(ctx, c.url+"/tracker/snapshots", req)
	if err != nil {
		return nil, fmt.Errorf("unable to record snapshot - %w", err)
	}
	return unmarshalCallResult(body)
}

// Call executes an ABI encoded call, committing its effects.
func (c *Client) Call(ctx context.Context, data []byte) (*types.CallResult, error) {
	body, err := c.httpPOST(ctx, c.url+"/contracts/call", &types.CallData{Data: data})
	if err != nil {
		return nil, fmt.Errorf("unable to call - %w", err)
	}
	return unmarshalCallResult(body)
}

// Inspect executes an ABI encoded call without committing.
func (c *Client) Inspect(ctx context.Context, data []byte) (*types.CallResult, error) {
	body, err := c.httpPOST(ctx, c.url+"/contracts/inspect", &types.CallData{Data: data})
	if err != nil {
		return nil, fmt.Errorf("unable to inspect - %w", err)
	}
	return unmarshalCallResult(body)
}

// Storage reads a raw storage slot, by hex key or slot name.
func (c *Client) Storage(ctx context.Context, key string) (*types.StorageValue, error) {
	body, err := c.httpGET(ctx, c.url+"/contracts/storage/"+url.PathEscape(key))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve storage - %w", err)
	}

	var value types.StorageValue
	if err = json.Unmarshal(body, &value); err != nil {
		return nil, fmt.Errorf("unable to unmarshal storage - %w", err)
	}
	return &value, nil
}

// Health retrieves the node health. An unhealthy node answers 503 with a status body,
// which is returned along with the error.
func (c *Client) Health(ctx context.Context) (*health.Status, error) {
	body, err := c.httpGET(ctx, c.url+"/node/health")

	var statusErr *StatusError
	if err != nil && !(errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusServiceUnavailable) {
		return nil, fmt.Errorf("unable to retrieve health - %w", err)
	}

	var status health.Status
	if uerr := json.Unmarshal(body, &status); uerr != nil {
		return nil, fmt.Errorf("unable to unmarshal health - %w", uerr)
	}
	if err != nil {
		return &status, fmt.Errorf("node unhealthy - %w", err)
	}
	return &status, nil
}

func unmarshalCallResult(body []byte) (*types.CallResult, error) {
	var result types.CallResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unable to unmarshal call result - %w", err)
	}
	return &result, nil
}
