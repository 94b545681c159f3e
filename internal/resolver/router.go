package resolver

import (
	"context"

	"github.com/shortreel/douyin-resolver/internal/apperrors"
	"github.com/shortreel/douyin-resolver/internal/models"
)

// Router dispatches a resolved URL to the chain and post-processes the
// result by content type.
type Router struct {
	chain *Chain
}

// NewRouter creates a router over the given chain.
func NewRouter(chain *Chain) *Router {
	return &Router{chain: chain}
}

// Route resolves the URL according to its link type. User profile links fail
// immediately without any source attempt; note links are tagged as galleries;
// everything else, including unknown shapes, is treated as video content.
func (r *Router) Route(ctx context.Context, linkType models.LinkType, url string) (*models.ResolveResult, error) {
	switch linkType {
	case models.LinkTypeUser:
		return nil, apperrors.NewUnsupportedLinkError(linkType, url)

	case models.LinkTypeNote:
		result, err := r.chain.Resolve(ctx, url)
		if err != nil {
			return nil, err
		}
		result.ContentType = models.ContentTypeNote
		if len(result.Images) > 0 {
			result.MultiFile = true
		}
		return result, nil

	default:
		result, err := r.chain.Resolve(ctx, url)
		if err != nil {
			return nil, err
		}
		result.ContentType = models.ContentTypeVideo
		return result, nil
	}
}
