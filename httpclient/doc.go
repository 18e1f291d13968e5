// Package httpclient is the shared HTTP layer under every API wrapper.
//
// A Client pins its protocol version (HTTP/2 for New, HTTP/1.1 for NewLegacy,
// both accepting the pinned version or higher), owns its default headers,
// and tags each request with the instance correlation id (X-Correlation-ID)
// and a fresh request id (X-Request-ID).
//
// Typed helpers send JSON and decode JSON:
//
//	c, err := httpclient.New("DeutscheWelle", httpclient.WithLogger(log))
//	defer c.Close()
//
//	resp, err := httpclient.Get[SearchResult](c, ctx, url)
//
// Every failure at the HTTP boundary is a *StatusError. Non-2xx responses
// carry the status and raw body; transport failures wrap their cause.
package httpclient
