package models

// ContentType tags a resolved post as a single video or an image gallery.
type ContentType string

const (
	ContentTypeVideo ContentType = "video"
	ContentTypeNote  ContentType = "note"
)

// ResolveResult is the normalized record produced by exactly one source per
// request, after coalescing that source's bespoke JSON field names.
// Either DownloadURL or a non-empty Images list must be present; that is the
// source's success contract.
type ResolveResult struct {
	Title       string      `json:"title"`
	DownloadURL string      `json:"downloadUrl,omitempty"`
	Images      []string    `json:"images,omitempty"`
	Cover       string      `json:"cover,omitempty"`
	Author      string      `json:"author"`
	Duration    int         `json:"duration"` // seconds, 0 when the source does not report it
	ContentType ContentType `json:"contentType"`
	MultiFile   bool        `json:"multiFile"`
}

// HasPayload reports whether the result satisfies the source success contract.
func (r *ResolveResult) HasPayload() bool {
	return r.DownloadURL != "" || len(r.Images) > 0
}
