// Package smhi wraps the SMHI impact-based weather warnings API.
//
// The API is addressed in two steps: a version document names the location
// of the live warnings list. New resolves that location once and every
// GetRecentWarnings call reads from it.
package smhi

import (
	"context"
	"fmt"

	"github.com/felsokning/codeninjas/httpclient"
)

// ClientName labels the HTTP client in logs, spans and the User-Agent.
const ClientName = "Felsökning.Utilities.Sweden.SMHI"

// EntryURL is the version document of the warnings API.
const EntryURL = "https://opendata-download-warnings.smhi.se/ibww/api/version/1.json"

// Client reads current warnings. It uses the HTTP/1.1 client.
type Client struct {
	http      *httpclient.Client
	reference WarningReference
}

// New creates a client and resolves the warnings reference.
func New(ctx context.Context, opts ...httpclient.Option) (*Client, error) {
	hc, err := httpclient.NewLegacy(ClientName, opts...)
	if err != nil {
		return nil, err
	}

	resp, err := httpclient.Get[WarningsAPIEntry](hc, httpclient.WithOperation(ctx, "New"), EntryURL)
	if err != nil {
		_ = hc.Close()
		return nil, err
	}
	if resp.Data.Warning.Href == "" {
		_ = hc.Close()
		return nil, fmt.Errorf("smhi: version document has no warning reference")
	}

	return &Client{http: hc, reference: resp.Data.Warning}, nil
}

// Reference returns the resolved warnings location.
func (c *Client) Reference() WarningReference { return c.reference }

// HTTP returns the underlying HTTP client.
func (c *Client) HTTP() *httpclient.Client { return c.http }

// Close releases the HTTP client.
func (c *Client) Close() error { return c.http.Close() }

// GetRecentWarnings returns the warnings currently in effect.
func (c *Client) GetRecentWarnings(ctx context.Context) ([]WarningsResult, error) {
	resp, err := httpclient.Get[[]WarningsResult](c.http, httpclient.WithOperation(ctx, "GetRecentWarnings"), c.reference.Href)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
