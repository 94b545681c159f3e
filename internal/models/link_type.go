package models

// LinkType classifies a Douyin URL by its path shape.
// It is derived purely from the URL string and never changes once computed.
type LinkType string

const (
	// LinkTypeShort is a platform-issued shortened URL (v.douyin.com) that
	// requires a redirect hop to reach the canonical content.
	LinkTypeShort LinkType = "short"

	// LinkTypeVideo is a canonical single-video page.
	LinkTypeVideo LinkType = "video"

	// LinkTypeNote is a gallery post consisting of an ordered list of images.
	LinkTypeNote LinkType = "note"

	// LinkTypeUser is a profile page. Batch resolution of profiles is unsupported.
	LinkTypeUser LinkType = "user"

	// LinkTypeDiscover is a discover/feed page that embeds a single video.
	LinkTypeDiscover LinkType = "discover"

	// LinkTypeShare is a share-redirect page.
	LinkTypeShare LinkType = "share"

	// LinkTypeInternal is content hosted on the alternate in-app domain (iesdouyin.com).
	LinkTypeInternal LinkType = "internal"

	// LinkTypeUnknown is any URL matching no known shape. Unknown links are
	// routed as video content by default.
	LinkTypeUnknown LinkType = "unknown"
)
