package manifest

import (
	"github.com/shortreel/douyin-resolver/internal/config"
)

// Outbound request headers are fixed per content class. Douyin's CDN checks
// the referer, and the range header lets the host resume partial transfers.

func videoHeaders() map[string]string {
	return map[string]string{
		"User-Agent": config.GetUserAgent(),
		"Referer":    config.DouyinWebRoot,
		"Range":      "bytes=0-",
		"Accept":     "video/mp4,video/webm,video/*;q=0.9,*/*;q=0.8",
	}
}

func imageHeaders() map[string]string {
	return map[string]string{
		"User-Agent": config.GetUserAgent(),
		"Referer":    config.DouyinWebRoot,
		"Accept":     "image/avif,image/webp,image/*,*/*;q=0.8",
	}
}
