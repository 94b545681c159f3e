// Package plugin implements the host invocation contract: one request in,
// one download manifest out. Success is all-or-nothing; no partial manifest
// is ever returned.
package plugin

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shortreel/douyin-resolver/internal/apperrors"
	"github.com/shortreel/douyin-resolver/internal/cache"
	"github.com/shortreel/douyin-resolver/internal/config"
	"github.com/shortreel/douyin-resolver/internal/link"
	"github.com/shortreel/douyin-resolver/internal/manifest"
	"github.com/shortreel/douyin-resolver/internal/metrics"
	"github.com/shortreel/douyin-resolver/internal/models"
	"github.com/shortreel/douyin-resolver/internal/resolver"
	"github.com/shortreel/douyin-resolver/internal/source"
)

// errPrefix identifies the resolution pipeline in every error surfaced to the host.
const errPrefix = "douyin resolver"

// platformName tags every manifest this pipeline produces.
const platformName = "douyin"

// RequestInfo carries the host's requested URL.
type RequestInfo struct {
	URL string `json:"url"`
}

// Invocation is the host's call payload: the requested URL plus optional
// per-call setting overrides.
type Invocation struct {
	Request  RequestInfo      `json:"request"`
	Settings *models.Settings `json:"settings,omitempty"`
}

// Plugin runs the resolution pipeline: classify, resolve redirect, route
// through the source chain, and build the file list.
type Plugin struct {
	httpClient *http.Client
	redirects  *link.Resolver
}

// New creates a plugin instance. redirectCache may be nil to disable
// redirect memoization.
func New(httpClient *http.Client, redirectCache cache.Cache) *Plugin {
	return &Plugin{
		httpClient: httpClient,
		redirects:  link.NewResolver(httpClient, redirectCache),
	}
}

// Resolve turns one invocation into a download manifest, or fails with a
// prefixed error.
func (p *Plugin) Resolve(ctx context.Context, inv Invocation) (*models.DownloadManifest, error) {
	logger := config.GetLogger()

	rawURL := strings.TrimSpace(inv.Request.URL)
	if rawURL == "" {
		return nil, fmt.Errorf("%s: request URL is required", errPrefix)
	}

	var settings models.Settings
	if inv.Settings != nil {
		settings = *inv.Settings
	}
	if settings.DownloadType == "" {
		// The server-wide download_type config applies when the invocation
		// carries no override of its own.
		settings.DownloadType = models.DownloadMode(config.GetConfig().DownloadType)
	}
	settings.Normalize()
	timeout := time.Duration(settings.Timeout) * time.Millisecond

	linkType := link.Classify(rawURL)
	logger.Info().Str("url", rawURL).Str("type", string(linkType)).Msg("Resolving link")

	redirectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	resolvedURL := p.redirects.Resolve(redirectCtx, rawURL)

	sources := source.Defaults(p.httpClient, settings.APIEndpoint, timeout)
	router := resolver.NewRouter(resolver.NewChain(sources))

	result, err := router.Route(ctx, linkType, resolvedURL)
	if err != nil {
		metrics.ResolutionsTotal.WithLabelValues("error", string(linkType)).Inc()
		return nil, fmt.Errorf("%s: %w", errPrefix, err)
	}

	files := manifest.Build(result, settings.DownloadType, time.Now())
	if len(files) == 0 {
		metrics.ResolutionsTotal.WithLabelValues("empty", string(result.ContentType)).Inc()
		return nil, fmt.Errorf("%s: %w", errPrefix, apperrors.NewEmptyResultError(settings.DownloadType))
	}

	name := result.Title
	if name == "" {
		name = platformName
	}

	logger.Info().
		Str("url", resolvedURL).
		Str("type", string(result.ContentType)).
		Int("files", len(files)).
		Msg("Resolution succeeded")
	metrics.ResolutionsTotal.WithLabelValues("success", string(result.ContentType)).Inc()

	return &models.DownloadManifest{
		Name:  name,
		Files: files,
		Extra: models.ManifestExtra{
			Cover:    result.Cover,
			Author:   result.Author,
			Duration: result.Duration,
			Platform: platformName,
			Type:     result.ContentType,
		},
	}, nil
}
