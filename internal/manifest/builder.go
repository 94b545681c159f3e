// Package manifest expands a resolved post into download descriptors.
package manifest

import (
	"fmt"
	"strings"
	"time"

	"github.com/shortreel/douyin-resolver/internal/models"
)

// Build expands one resolve result into zero or more file descriptors
// according to the download mode. Rules apply in fixed order (video, cover,
// gallery images) and each rule contributes nothing when its data is absent;
// the empty-manifest check belongs to the entry point, not here.
//
// Filenames incorporate the generation timestamp, and gallery images a
// 1-based index, so every name within one manifest is unique.
func Build(result *models.ResolveResult, mode models.DownloadMode, now time.Time) []models.FileDescriptor {
	ts := now.Unix()
	base := SanitizeFilename(result.Title)
	if base == "" {
		base = "douyin"
	}

	var files []models.FileDescriptor

	if (mode == models.DownloadVideo || mode == models.DownloadBoth) && result.DownloadURL != "" {
		files = append(files, models.FileDescriptor{
			Name: descriptorName(base, fmt.Sprintf("_%d.mp4", ts)),
			Request: models.RequestSpec{
				URL:     result.DownloadURL,
				Headers: videoHeaders(),
			},
		})
	}

	if (mode == models.DownloadCover || mode == models.DownloadBoth) && result.Cover != "" {
		files = append(files, models.FileDescriptor{
			Name: descriptorName(base, fmt.Sprintf("_%d_cover.jpeg", ts)),
			Request: models.RequestSpec{
				URL:     result.Cover,
				Headers: imageHeaders(),
			},
		})
	}

	if result.MultiFile && len(result.Images) > 0 {
		for i, image := range result.Images {
			files = append(files, models.FileDescriptor{
				Name: descriptorName(base, fmt.Sprintf("_%d_%d.jpeg", ts, i+1)),
				Request: models.RequestSpec{
					URL:     image,
					Headers: imageHeaders(),
				},
			})
		}
	}

	return files
}

// descriptorName joins a sanitized base with a distinguishing suffix, trimming
// the base so the full name stays under the filename cap. Truncating the
// composed name instead would cut the suffix off and collapse every descriptor
// of a long-titled post onto the same name.
func descriptorName(base, suffix string) string {
	room := maxFilenameLength - len([]rune(suffix))
	if runes := []rune(base); len(runes) > room {
		base = strings.TrimSpace(string(runes[:room]))
	}
	return base + suffix
}
