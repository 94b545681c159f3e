package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shortreel/douyin-resolver/internal/jsonutil"
	"github.com/shortreel/douyin-resolver/internal/models"
)

// oick is the first backup source.
type oick struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
}

// NewOick creates the first backup source against the given endpoint.
func NewOick(httpClient *http.Client, endpoint string, timeout time.Duration) Source {
	return &oick{
		httpClient: httpClient,
		endpoint:   endpoint,
		timeout:    timeout,
	}
}

func (s *oick) Name() string {
	return "oick"
}

type oickResponse struct {
	URL      string   `json:"url"`
	VideoURL string   `json:"videoUrl"`
	Title    string   `json:"title"`
	Desc     string   `json:"desc"`
	Cover    string   `json:"cover"`
	CoverURL string   `json:"coverUrl"`
	Author   string   `json:"author"`
	Nickname string   `json:"nickname"`
	Images   []string `json:"images"`
	Duration flexInt  `json:"duration"`
}

func (s *oick) Resolve(ctx context.Context, targetURL string) (*models.ResolveResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, err := fetchJSON(ctx, s.httpClient, s.endpoint, targetURL)
	if err != nil {
		return nil, fmt.Errorf("oick request failed: %w", err)
	}

	var payload oickResponse
	if err := jsonutil.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("oick returned malformed JSON: %w", err)
	}

	result := &models.ResolveResult{
		Title:       firstNonEmpty(payload.Title, payload.Desc),
		DownloadURL: firstNonEmpty(payload.URL, payload.VideoURL),
		Images:      payload.Images,
		Cover:       firstNonEmpty(payload.Cover, payload.CoverURL),
		Author:      firstNonEmpty(payload.Author, payload.Nickname),
		Duration:    int(payload.Duration),
	}
	if !result.HasPayload() {
		return nil, fmt.Errorf("oick response carries no download URL or image list")
	}
	return result, nil
}
