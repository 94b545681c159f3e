// Package resolver orchestrates the resolution sources: an ordered fallback
// chain and a content-type router on top of it.
package resolver

import (
	"context"
	"fmt"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/fallback"

	"github.com/shortreel/douyin-resolver/internal/apperrors"
	"github.com/shortreel/douyin-resolver/internal/config"
	"github.com/shortreel/douyin-resolver/internal/metrics"
	"github.com/shortreel/douyin-resolver/internal/models"
	"github.com/shortreel/douyin-resolver/internal/source"
)

// Chain tries sources strictly sequentially in priority order. The first
// source producing a valid result short-circuits the chain; later sources are
// never invoked. Sources are deliberately not raced in parallel: first
// success wins, not fastest response, and load on the third parties stays
// bounded.
type Chain struct {
	sources []source.Source
}

// NewChain creates a fallback chain over the given sources, tried in slice order.
func NewChain(sources []source.Source) *Chain {
	return &Chain{sources: sources}
}

// Resolve runs the chain. It fails only when every source failed, returning
// a single aggregated error that wraps the last source's failure.
func (c *Chain) Resolve(ctx context.Context, url string) (*models.ResolveResult, error) {
	if len(c.sources) == 0 {
		return nil, apperrors.NewAllSourcesFailedError(0, fmt.Errorf("no resolution sources configured"))
	}

	primary := func() (*models.ResolveResult, error) {
		return c.attempt(ctx, c.sources[0], url)
	}

	if len(c.sources) == 1 {
		result, err := primary()
		if err != nil {
			return nil, apperrors.NewAllSourcesFailedError(1, err)
		}
		return result, nil
	}

	// One fallback policy per backup source. Policies compose outermost
	// first, so the lowest-priority source must come first in the slice to
	// end up as the last resort.
	policies := make([]failsafe.Policy[*models.ResolveResult], 0, len(c.sources)-1)
	for i := len(c.sources) - 1; i >= 1; i-- {
		src := c.sources[i]
		policies = append(policies, fallback.NewWithFunc(
			func(exec failsafe.Execution[*models.ResolveResult]) (*models.ResolveResult, error) {
				return c.attempt(exec.Context(), src, url)
			}))
	}

	result, err := failsafe.With[*models.ResolveResult](policies...).
		WithContext(ctx).
		Get(primary)
	if err != nil {
		return nil, apperrors.NewAllSourcesFailedError(len(c.sources), err)
	}
	return result, nil
}

// attempt runs one source and records its outcome in logs and metrics.
func (c *Chain) attempt(ctx context.Context, src source.Source, url string) (*models.ResolveResult, error) {
	logger := config.GetLogger()

	result, err := src.Resolve(ctx, url)
	if err != nil {
		logger.Warn().Err(err).Str("source", src.Name()).Str("url", url).Msg("Resolution source failed")
		metrics.SourceAttemptsTotal.WithLabelValues(src.Name(), "error").Inc()
		return nil, err
	}

	logger.Debug().Str("source", src.Name()).Str("url", url).Msg("Resolution source succeeded")
	metrics.SourceAttemptsTotal.WithLabelValues(src.Name(), "success").Inc()
	return result, nil
}
