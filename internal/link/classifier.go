// Package link classifies Douyin URLs by shape and resolves short links to
// their canonical form.
package link

import (
	"regexp"

	"github.com/shortreel/douyin-resolver/internal/models"
)

// Shape patterns, tested in priority order. First match wins.
var (
	shortPattern    = regexp.MustCompile(`^https?://v\.douyin\.com/`)
	videoPattern    = regexp.MustCompile(`/video/\d+`)
	notePattern     = regexp.MustCompile(`/note/\d+`)
	userPattern     = regexp.MustCompile(`/user/`)
	discoverPattern = regexp.MustCompile(`/discover`)
	sharePattern    = regexp.MustCompile(`/share/`)
	internalPattern = regexp.MustCompile(`^https?://(?:www\.)?iesdouyin\.com/`)
)

// Classify maps a URL string to its LinkType. It is a pure function: every
// input maps to exactly one type, with unknown for non-matching strings.
func Classify(url string) models.LinkType {
	switch {
	case shortPattern.MatchString(url):
		return models.LinkTypeShort
	case videoPattern.MatchString(url):
		return models.LinkTypeVideo
	case notePattern.MatchString(url):
		return models.LinkTypeNote
	case userPattern.MatchString(url):
		return models.LinkTypeUser
	case discoverPattern.MatchString(url):
		return models.LinkTypeDiscover
	case sharePattern.MatchString(url):
		return models.LinkTypeShare
	case internalPattern.MatchString(url):
		return models.LinkTypeInternal
	default:
		return models.LinkTypeUnknown
	}
}
