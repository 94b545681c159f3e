// Package client builds the shared HTTP client used by every outbound call:
// redirect resolution, source API requests, and canonical page fetches.
package client

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/shortreel/douyin-resolver/internal/config"
)

// New creates an *http.Client with proxy support, transparent response
// decompression, and a public-suffix-aware cookie jar. Douyin's short-link
// hop sets cookies that the canonical page fetch must carry.
func New(cfg *config.Config) *http.Client {
	logger := config.GetLogger()

	// Parse timeout duration
	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve its connection pooling and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			// Log error but continue without proxy
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to create cookie jar, continuing without one")
		jar = nil
	}

	return &http.Client{
		Timeout:   timeout,
		Jar:       jar,
		Transport: newDecompressTransport(baseTransport),
	}
}
