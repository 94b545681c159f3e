package manifest

import (
	"regexp"
	"strings"
)

// maxFilenameLength bounds sanitized names so they stay valid on every
// filesystem the host may write to.
const maxFilenameLength = 200

var (
	// Characters that are illegal in filenames on at least one target
	// filesystem, plus control characters.
	illegalChars  = regexp.MustCompile("[<>:\"/\\\\|?*\\x00-\\x1f]")
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes a string safe to use as a filename: illegal
// characters are replaced with underscores, whitespace runs collapse to a
// single space, leading/trailing whitespace is trimmed, and the result is
// capped at 200 characters.
func SanitizeFilename(name string) string {
	// Collapse whitespace before the illegal-character pass: tabs and
	// newlines fall in the control range and must not become underscores.
	name = whitespaceRun.ReplaceAllString(name, " ")
	name = illegalChars.ReplaceAllString(name, "_")
	name = strings.TrimSpace(name)

	if runes := []rune(name); len(runes) > maxFilenameLength {
		name = strings.TrimSpace(string(runes[:maxFilenameLength]))
	}
	return name
}
