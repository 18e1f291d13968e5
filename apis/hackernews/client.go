// Package hackernews wraps the Hacker News Firebase API.
package hackernews

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/felsokning/codeninjas/httpclient"
)

// ClientName labels the HTTP client in logs, spans and the User-Agent.
const ClientName = "Felsökning.Utilities.YCombinator"

const (
	baseURL        = "https://hacker-news.firebaseio.com/v0"
	topStoriesURL  = baseURL + "/topstories.json?print=pretty"
	showStoriesURL = baseURL + "/showstories.json?print=pretty"
	itemURL        = baseURL + "/item/%d.json?print=pretty"
)

// Client reads story lists. It uses the HTTP/1.1 client.
type Client struct {
	http *httpclient.Client
}

// New creates a Hacker News client.
func New(opts ...httpclient.Option) (*Client, error) {
	hc, err := httpclient.NewLegacy(ClientName, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// HTTP returns the underlying HTTP client.
func (c *Client) HTTP() *httpclient.Client { return c.http }

// Close releases the HTTP client.
func (c *Client) Close() error { return c.http.Close() }

// GetTopStories returns the current top stories, newest first. When count is
// positive only the count highest ids are fetched.
func (c *Client) GetTopStories(ctx context.Context, count int) ([]Story, error) {
	return c.stories(httpclient.WithOperation(ctx, "GetTopStories"), topStoriesURL, count)
}

// ShowTopStories returns the current Show HN stories, newest first. When count
// is positive only the count highest ids are fetched.
func (c *Client) ShowTopStories(ctx context.Context, count int) ([]Story, error) {
	return c.stories(httpclient.WithOperation(ctx, "ShowTopStories"), showStoriesURL, count)
}

func (c *Client) stories(ctx context.Context, listURL string, count int) ([]Story, error) {
	resp, err := httpclient.Get[[]int](c.http, ctx, listURL)
	if err != nil {
		return nil, err
	}
	ids := selectIDs(resp.Data, count)

	stories := make([]Story, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			item, err := httpclient.Get[Story](c.http, gctx, fmt.Sprintf(itemURL, id))
			if err != nil {
				return err
			}
			stories[i] = item.Data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(stories, func(a, b Story) int {
		return cmp.Compare(b.Time, a.Time)
	})
	return stories, nil
}

// selectIDs keeps the count highest ids. A non-positive count keeps all of
// them in their original order.
func selectIDs(ids []int, count int) []int {
	if count <= 0 {
		return ids
	}
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b int) int { return cmp.Compare(b, a) })
	if count < len(sorted) {
		sorted = sorted[:count]
	}
	return sorted
}
