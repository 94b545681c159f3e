// Package source wraps the third-party resolution APIs. Each source
// translates one API's bespoke JSON shape into a ResolveResult, or fails.
// Sources are independent and share no mutable state.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shortreel/douyin-resolver/internal/config"
	"github.com/shortreel/douyin-resolver/internal/models"
)

// Source resolves one Douyin URL through a single third-party API.
type Source interface {
	// Name identifies the source in logs and metrics.
	Name() string

	// Resolve queries the API and normalizes its response. It fails when the
	// call errors, times out, returns a non-success status, or the response
	// carries neither a download URL nor an image list.
	Resolve(ctx context.Context, targetURL string) (*models.ResolveResult, error)
}

// Defaults returns the sources in fallback priority order. endpoint, when
// non-empty, overrides the primary source's base URL; timeout bounds each
// individual API call.
func Defaults(httpClient *http.Client, endpoint string, timeout time.Duration) []Source {
	if endpoint == "" {
		endpoint = config.GetConfig().PrimaryAPIEndpoint
	}
	return []Source{
		NewDouyinWTF(httpClient, endpoint, timeout),
		NewOick(httpClient, config.DefaultOickEndpoint, timeout),
		NewTenAPI(httpClient, config.DefaultTenEndpoint, timeout),
	}
}

// fetchJSON issues a GET to endpoint with the target URL as the "url" query
// parameter and returns the raw body on a 200 response.
func fetchJSON(ctx context.Context, httpClient *http.Client, endpoint, targetURL string) ([]byte, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL: %w", err)
	}
	query := u.Query()
	query.Set("url", targetURL)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", config.GetUserAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// firstNonEmpty returns the first non-empty string, implementing the fixed
// field-alias lookup order each source defines.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
