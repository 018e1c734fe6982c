// Package network provides a pre-configured HTTP client shared by every source endpoint.
package network

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/log"
	"golang.org/x/net/publicsuffix"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Client is the default HTTP client used when none is injected.
var Client = &http.Client{
	Timeout:   DefaultTimeout,
	Transport: newTransport(),
}

// New builds a client from the current configuration.
// With network.tls_fingerprint enabled, https requests present a browser fingerprint.
func New() *http.Client {
	timeout := viper.GetDuration(key.NetworkTimeout)
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var transport http.RoundTripper = newTransport()
	if viper.GetBool(key.NetworkTLSFingerprint) {
		log.Debug("using fingerprinted tls transport")
		transport = NewFingerprintTransport(timeout)
	}

	client := &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		log.Warnf("cookie jar unavailable: %s", err)
		return client
	}

	client.Jar = jar
	return client
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 16
	t.MaxConnsPerHost = 32
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
