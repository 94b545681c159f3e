package apperrors

import (
	"fmt"

	"github.com/shortreel/douyin-resolver/internal/models"
)

// ErrUnsupportedLink is returned when a link type cannot be resolved at all,
// such as a user profile page. No source is attempted for these links.
type ErrUnsupportedLink struct {
	LinkType models.LinkType
	URL      string
}

// Error implements the error interface.
func (e *ErrUnsupportedLink) Error() string {
	if e.LinkType == models.LinkTypeUser {
		return fmt.Sprintf("user profile pages cannot be resolved, share a single video or note link instead: %s", e.URL)
	}
	return fmt.Sprintf("unsupported link type %q: %s", e.LinkType, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnsupportedLink) Is(target error) bool {
	_, ok := target.(*ErrUnsupportedLink)
	return ok
}

// NewUnsupportedLinkError creates a new ErrUnsupportedLink.
func NewUnsupportedLinkError(linkType models.LinkType, url string) *ErrUnsupportedLink {
	return &ErrUnsupportedLink{LinkType: linkType, URL: url}
}

// ErrAllSourcesFailed is returned when every source in the fallback chain failed.
// Last carries the final source's error for diagnosis.
type ErrAllSourcesFailed struct {
	Attempts int
	Last     error
}

// Error implements the error interface.
func (e *ErrAllSourcesFailed) Error() string {
	return fmt.Sprintf("all %d resolution sources failed, last error: %v", e.Attempts, e.Last)
}

// Unwrap exposes the last source error to errors.Is/As chains.
func (e *ErrAllSourcesFailed) Unwrap() error {
	return e.Last
}

// Is allows for error checking with errors.Is().
func (e *ErrAllSourcesFailed) Is(target error) bool {
	_, ok := target.(*ErrAllSourcesFailed)
	return ok
}

// NewAllSourcesFailedError creates a new ErrAllSourcesFailed.
func NewAllSourcesFailedError(attempts int, last error) *ErrAllSourcesFailed {
	return &ErrAllSourcesFailed{Attempts: attempts, Last: last}
}

// ErrEmptyResult is returned when resolution succeeded but the requested
// download mode produced no files.
type ErrEmptyResult struct {
	Mode models.DownloadMode
}

// Error implements the error interface.
func (e *ErrEmptyResult) Error() string {
	return fmt.Sprintf("resolution produced no downloadable files for mode %q", e.Mode)
}

// Is allows for error checking with errors.Is().
func (e *ErrEmptyResult) Is(target error) bool {
	_, ok := target.(*ErrEmptyResult)
	return ok
}

// NewEmptyResultError creates a new ErrEmptyResult.
func NewEmptyResultError(mode models.DownloadMode) *ErrEmptyResult {
	return &ErrEmptyResult{Mode: mode}
}
