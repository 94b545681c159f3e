package models

// DownloadMode selects which files the builder emits for a resolved post.
type DownloadMode string

const (
	DownloadVideo DownloadMode = "video"
	DownloadCover DownloadMode = "cover"
	DownloadBoth  DownloadMode = "both"
)

// DefaultTimeoutMs is applied when the host supplies no timeout override.
const DefaultTimeoutMs = 30000

// Settings are the optional per-invocation overrides recognized by the plugin.
type Settings struct {
	// APIEndpoint overrides the primary source's base URL.
	APIEndpoint string `json:"apiEndpoint,omitempty"`

	// Timeout is the per-network-call budget in milliseconds.
	Timeout int `json:"timeout,omitempty"`

	// DownloadType selects video, cover, or both.
	DownloadType DownloadMode `json:"downloadType,omitempty"`
}

// Normalize fills unset fields with their defaults and discards
// unrecognized download modes.
func (s *Settings) Normalize() {
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeoutMs
	}
	switch s.DownloadType {
	case DownloadVideo, DownloadCover, DownloadBoth:
	default:
		s.DownloadType = DownloadVideo
	}
}
