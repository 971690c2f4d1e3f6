// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package rootdata is a client for the RootData open API.  Every endpoint is
// a POST with a JSON body, and every response is wrapped in an [Envelope].
package rootdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

//go:generate mockgen -destination=mock_rootdata/mock_rootdata.go . Caller

// ResultOK is the success sentinel of the envelope result field.
const ResultOK = 200

// Endpoint is the name of the API endpoint, relative to the base URL.
type Endpoint string

const (
	EpSearch               Endpoint = "ser_inv"
	EpProject              Endpoint = "get_item"
	EpOrg                  Endpoint = "get_org"
	EpPeople               Endpoint = "get_people"
	EpInvestors            Endpoint = "get_invest"
	EpFundingRounds        Endpoint = "get_fac"
	EpSyncUpdate           Endpoint = "ser_change"
	EpHotIndex             Endpoint = "hot_index"
	EpHotProjectsOnX       Endpoint = "hot_project_on_x"
	EpPopularFiguresOnX    Endpoint = "leading_figures_on_crypto_x"
	EpJobChanges           Endpoint = "job_changes"
	EpNewTokens            Endpoint = "new_tokens"
	EpEcosystemMap         Endpoint = "ecosystem_map"
	EpTagMap               Endpoint = "tag_map"
	EpProjectsByEcosystems Endpoint = "projects_by_ecosystems"
	EpProjectsByTags       Endpoint = "projects_by_tags"
)

// Envelope is the outer wrapper of every API response.
type Envelope struct {
	Result  int             `json:"result"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// Caller is the interface for calling the API.
type Caller interface {
	// Call sends payload to the endpoint and returns the parsed envelope.
	// The envelope is guaranteed to have the [ResultOK] result code.
	Call(ctx context.Context, ep Endpoint, payload any) (*Envelope, error)
}

// Client is the RootData API client.  It is safe for concurrent use, as
// it holds no mutable state.
type Client struct {
	cl  *http.Client
	cfg Config
	lg  *slog.Logger
}

type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// New creates a new client.  The configuration is validated, and the error
// returned wraps [ErrConfig] if it is invalid.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		cl:  &http.Client{Timeout: cfg.Timeout},
		cfg: cfg,
		lg:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Call sends the payload to the endpoint.  payload is marshalled as is, so
// nil pointer fields are sent as JSON null.  A nil payload is sent as an
// empty object.
func (c *Client) Call(ctx context.Context, ep Endpoint, payload any) (*Envelope, error) {
	start := time.Now()
	env, err := c.call(ctx, ep, payload)
	observe(ep, start, err)
	return env, err
}

func (c *Client) call(ctx context.Context, ep Endpoint, payload any) (*Envelope, error) {
	if payload == nil {
		payload = struct{}{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("rootdata: %s: marshal payload: %w", ep, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(ep), bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Endpoint: ep, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("language", c.cfg.Language)

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: ep, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: ep, StatusCode: resp.StatusCode, Err: err}
	}
	c.lg.DebugContext(ctx, "rootdata: response", "endpoint", ep, "status", resp.StatusCode, "size", humanize.Bytes(uint64(len(data))))
	if resp.StatusCode < http.StatusOK || http.StatusMultipleChoices <= resp.StatusCode {
		return nil, &TransportError{Endpoint: ep, StatusCode: resp.StatusCode}
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("rootdata: %s: decode response: %w", ep, err)
	}
	if env.Result != ResultOK {
		return nil, &UpstreamError{Endpoint: ep, Code: env.Result, Message: env.Message}
	}
	return &env, nil
}

func (c *Client) url(ep Endpoint) string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + string(ep)
}

// Data calls the endpoint and returns the data field of the envelope.
func Data(ctx context.Context, c Caller, ep Endpoint, payload any) (json.RawMessage, error) {
	env, err := c.Call(ctx, ep, payload)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}
