package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public PokeAPI endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// chainListLimit retrieves all evolution chains in a single request.
	chainListLimit = 9999
)

// Client is a PokeAPI client. All requests go through a process-wide
// pacing gate: each call waits out the configured delay measured from the
// previous request before hitting the network.
type Client struct {
	baseURL    string
	delay      time.Duration
	httpClient *http.Client
	logger     *slog.Logger

	lastRequest time.Time
}

// ClientOptions configures a PokeAPI client.
type ClientOptions struct {
	// BaseURL overrides the API endpoint (tests point this at a local server)
	BaseURL string

	// Delay is the fixed pause between consecutive requests
	Delay time.Duration

	// Timeout is the per-request HTTP timeout
	Timeout time.Duration

	Logger *slog.Logger
}

// NewClient creates a new PokeAPI client.
func NewClient(opts ClientOptions) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		delay:   opts.Delay,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ListEvolutionChains fetches references to every evolution chain.
func (c *Client) ListEvolutionChains(ctx context.Context) ([]Ref, error) {
	url := fmt.Sprintf("%s/evolution-chain/?limit=%d", c.baseURL, chainListLimit)

	var p page

	if err := c.getJSON(ctx, "list evolution chains", url, "evolution-chain list", "all", &p); err != nil {
		return nil, err
	}

	return p.Results, nil
}

// GetEvolutionChain fetches one evolution chain by its absolute URL, as
// returned by ListEvolutionChains.
func (c *Client) GetEvolutionChain(ctx context.Context, url string) (*EvolutionChain, error) {
	var chain EvolutionChain

	if err := c.getJSON(ctx, "get evolution chain", url, "evolution-chain", url, &chain); err != nil {
		return nil, err
	}

	if chain.Chain.Species.Name == "" {
		return nil, &DataShapeError{Resource: "evolution-chain", Name: url, Reason: "missing chain root species"}
	}

	return &chain, nil
}

// GetSpecies fetches a species record by API name.
func (c *Client) GetSpecies(ctx context.Context, name string) (*Species, error) {
	url := fmt.Sprintf("%s/pokemon-species/%s", c.baseURL, name)

	var species Species

	if err := c.getJSON(ctx, "get species", url, "pokemon-species", name, &species); err != nil {
		return nil, err
	}

	if species.Name == "" {
		species.Name = name
	}

	return &species, nil
}

// pace blocks until the configured delay since the previous request has
// elapsed. A deliberate synchronous pause, not a scheduled timer.
func (c *Client) pace() {
	if c.delay <= 0 {
		return
	}

	if !c.lastRequest.IsZero() {
		if wait := c.delay - time.Since(c.lastRequest); wait > 0 {
			time.Sleep(wait)
		}
	}

	c.lastRequest = time.Now()
}

func (c *Client) getJSON(ctx context.Context, operation, url, resource, name string, out any) error {
	c.pace()

	c.logger.Debug("fetching",
		slog.String("resource", resource),
		slog.String("url", url),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &NetworkError{Operation: operation, URL: url, Err: err}
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Operation: operation, URL: url, Err: err}
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Resource: resource, Name: name}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &NetworkError{Operation: operation, URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DataShapeError{Resource: resource, Name: name, Reason: "invalid JSON", Err: err}
	}

	return nil
}
