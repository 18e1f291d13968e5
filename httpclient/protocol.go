package httpclient

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"

	"golang.org/x/net/http2"
)

// Protocol is the HTTP version a client pins its requests to.
type Protocol int

const (
	// HTTP11 pins requests to HTTP/1.1.
	HTTP11 Protocol = iota
	// HTTP2 pins requests to HTTP/2.
	HTTP2
)

// String returns the protocol as it appears on the wire.
func (p Protocol) String() string {
	switch p {
	case HTTP2:
		return "HTTP/2.0"
	default:
		return "HTTP/1.1"
	}
}

// Version returns the major and minor version numbers.
func (p Protocol) Version() (major, minor int) {
	if p == HTTP2 {
		return 2, 0
	}
	return 1, 1
}

// VersionPolicy decides which negotiated versions a client accepts.
type VersionPolicy int

const (
	// RequestVersionOrHigher accepts the pinned version or anything newer.
	RequestVersionOrHigher VersionPolicy = iota
)

// String returns the policy name.
func (p VersionPolicy) String() string {
	return "RequestVersionOrHigher"
}

// ErrProtocolDowngrade is returned when a server answers below the pinned version.
var ErrProtocolDowngrade = errors.New("protocol downgrade")

// newTransport builds the round tripper for p. HTTP/2 over https negotiates
// through ALPN; over plain http it speaks h2c with prior knowledge.
func newTransport(p Protocol, tlsCfg *tls.Config) http.RoundTripper {
	if p == HTTP2 {
		return &h2Transport{
			tls: &http2.Transport{TLSClientConfig: tlsCfg},
			cleartext: &http2.Transport{
				AllowHTTP: true,
				DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
					var d net.Dialer
					return d.DialContext(ctx, network, addr)
				},
			},
		}
	}

	t := http.DefaultTransport.(*http.Transport).Clone()
	if tlsCfg != nil {
		t.TLSClientConfig = tlsCfg
	}
	return t
}

type h2Transport struct {
	tls       *http2.Transport
	cleartext *http2.Transport
}

func (t *h2Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme == "http" {
		return t.cleartext.RoundTrip(req)
	}
	return t.tls.RoundTrip(req)
}

func (t *h2Transport) CloseIdleConnections() {
	t.tls.CloseIdleConnections()
	t.cleartext.CloseIdleConnections()
}

// versionGuard rejects responses negotiated below the pinned protocol.
type versionGuard struct {
	next     http.RoundTripper
	protocol Protocol
}

func (g *versionGuard) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := g.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	major, minor := g.protocol.Version()
	if !resp.ProtoAtLeast(major, minor) {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: server answered %s, %s or higher required", ErrProtocolDowngrade, resp.Proto, g.protocol)
	}
	return resp, nil
}

func (g *versionGuard) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if c, ok := g.next.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}
