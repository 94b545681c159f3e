package link

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/shortreel/douyin-resolver/internal/cache"
	"github.com/shortreel/douyin-resolver/internal/config"
	"github.com/shortreel/douyin-resolver/internal/metrics"
	"github.com/shortreel/douyin-resolver/internal/models"
)

// Resolver follows a short link's redirect chain to the canonical URL.
// Resolution failures are recoverable: downstream sources may still succeed
// against the un-resolved short link, so Resolve never returns an error.
type Resolver struct {
	httpClient *http.Client
	cache      cache.Cache
}

// NewResolver creates a redirect resolver. redirectCache may be nil to
// disable memoization.
func NewResolver(httpClient *http.Client, redirectCache cache.Cache) *Resolver {
	return &Resolver{
		httpClient: httpClient,
		cache:      redirectCache,
	}
}

// Resolve returns the canonical URL a short link redirects to. Non-short URLs
// are returned unchanged without any network call. On failure the input is
// returned unchanged and a warning is logged.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) string {
	if Classify(rawURL) != models.LinkTypeShort {
		return rawURL
	}

	logger := config.GetLogger()

	if r.cache != nil {
		if cached, found := r.cache.Get(rawURL); found {
			logger.Debug().Str("url", rawURL).Str("resolved", cached).Msg("Redirect target served from cache")
			return cached
		}
	}

	finalURL, err := r.follow(ctx, rawURL)
	if err != nil {
		logger.Warn().Err(err).Str("url", rawURL).Msg("Short link resolution failed, continuing with original URL")
		metrics.RedirectResolutionsTotal.WithLabelValues("error").Inc()
		return rawURL
	}

	// A redirect that never left the short domain usually means an
	// interstitial page; its markup still names the canonical URL.
	if sameHost(finalURL, rawURL) {
		canonical, err := r.extractCanonical(ctx, finalURL)
		if err != nil {
			logger.Warn().Err(err).Str("url", finalURL).Msg("Canonical URL extraction failed, continuing with original URL")
			metrics.RedirectResolutionsTotal.WithLabelValues("error").Inc()
			return rawURL
		}
		finalURL = canonical
	}

	logger.Debug().Str("url", rawURL).Str("resolved", finalURL).Msg("Short link resolved")
	metrics.RedirectResolutionsTotal.WithLabelValues("success").Inc()

	if r.cache != nil && !sameHost(finalURL, rawURL) {
		r.cache.Set(rawURL, finalURL)
	}

	return finalURL
}

// follow issues a header-only request with redirect following enabled and
// returns the final URL reached.
func (r *Resolver) follow(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", config.GetUserAgent())

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.Request.URL.String(), nil
}

// sameHost reports whether two URLs share a host. Unparseable URLs compare
// as different so resolution results are never cached for them.
func sameHost(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Host == ub.Host
}
