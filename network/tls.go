package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// FingerprintTransport sends https requests over a uTLS connection that mimics Chrome's Client Hello.
// It tries HTTP/2 first and falls back to HTTP/1.1 when h2 cannot be negotiated.
// Plain http requests go through a regular transport.
type FingerprintTransport struct {
	timeout time.Duration
	plain   *http.Transport
	h1      *http.Transport

	h2Once sync.Once
	h2     *http2.Transport
}

// NewFingerprintTransport returns a transport whose dials and handshakes are bounded by timeout.
func NewFingerprintTransport(timeout time.Duration) *FingerprintTransport {
	t := &FingerprintTransport{
		timeout: timeout,
		plain:   newTransport(),
	}

	t.h1 = &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return t.dial(ctx, network, addr, []string{"http/1.1"})
		},
		IdleConnTimeout: 30 * time.Second,
	}

	return t
}

func (t *FingerprintTransport) transport2() *http2.Transport {
	t.h2Once.Do(func() {
		t.h2 = &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return t.dial(ctx, network, addr, nil)
			},
		}
	})
	return t.h2
}

// RoundTrip implements http.RoundTripper.
func (t *FingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	resp, err := t.transport2().RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	// bodies are only replayable through GetBody
	retry := req.Clone(req.Context())
	if req.Body != nil && req.GetBody != nil {
		if retry.Body, err = req.GetBody(); err != nil {
			return nil, err
		}
	} else if req.Body != nil {
		return nil, err
	}

	return t.h1.RoundTrip(retry)
}

func (t *FingerprintTransport) dial(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: t.timeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
