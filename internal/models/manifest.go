package models

// RequestSpec describes the HTTP request the host must issue to fetch one file.
type RequestSpec struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
}

// FileDescriptor describes one downloadable file. Name is already sanitized
// for the filesystem; Size is 0 when the source does not report it.
type FileDescriptor struct {
	Name    string      `json:"name"`
	Size    int64       `json:"size"`
	Request RequestSpec `json:"request"`
}

// ManifestExtra carries descriptive metadata alongside the file list.
type ManifestExtra struct {
	Cover    string      `json:"cover,omitempty"`
	Author   string      `json:"author,omitempty"`
	Duration int         `json:"duration"`
	Platform string      `json:"platform"`
	Type     ContentType `json:"type"`
}

// DownloadManifest is the terminal output of the resolution pipeline.
// Files are ordered video first, then cover, then gallery images in source order.
type DownloadManifest struct {
	Name  string           `json:"name"`
	Files []FileDescriptor `json:"files"`
	Extra ManifestExtra    `json:"extra"`
}
