package client

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewCustomTransport creates a transport for talking to product instances,
// which are commonly deployed with self-signed certificates.
func NewCustomTransport(verifyTLS bool) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !verifyTLS,
			MinVersion:         tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}
}
