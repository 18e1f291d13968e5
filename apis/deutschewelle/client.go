// Package deutschewelle wraps the Deutsche Welle article search API.
package deutschewelle

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/felsokning/codeninjas/errors"
	"github.com/felsokning/codeninjas/httpclient"
)

// ClientName labels the HTTP client in logs, spans and the User-Agent.
const ClientName = "Felsökning.Utilities.Germany"

const (
	searchURL  = "https://api.dw.com/api/search/global?terms=*&contentTypes=Article&languageId=%d&sortByDate=true&startDate=%s&endDate=%s"
	dateLayout = "2006-01-02"
)

// Client queries the latest articles. It uses the HTTP/2 client.
type Client struct {
	http *httpclient.Client
	now  func() time.Time
}

// New creates a Deutsche Welle client.
func New(opts ...httpclient.Option) (*Client, error) {
	hc, err := httpclient.New(ClientName, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc, now: time.Now}, nil
}

// HTTP returns the underlying HTTP client.
func (c *Client) HTTP() *httpclient.Client { return c.http }

// Close releases the HTTP client.
func (c *Client) Close() error { return c.http.Close() }

// GetLatestNews returns the articles published in language during the last day.
func (c *Client) GetLatestNews(ctx context.Context, language LanguageID) (*SearchResult, error) {
	const op = "GetLatestNews"
	if language == LanguageNone {
		err := apperrors.InvalidOperation(fmt.Sprintf("LanguageId %d has not been implemented on the Deutsche Welle API", int(language)))
		c.http.Log().ErrorOp(op, err.Message, nil)
		return nil, err
	}

	resp, err := httpclient.Get[SearchResult](c.http, httpclient.WithOperation(ctx, op), searchURLAt(c.now(), language))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// searchURLAt builds the query for a one-day window ending on the UTC date of now.
func searchURLAt(now time.Time, language LanguageID) string {
	end := now.UTC()
	start := end.AddDate(0, 0, -1)
	return fmt.Sprintf(searchURL, int(language), start.Format(dateLayout), end.Format(dateLayout))
}
