package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shortreel/douyin-resolver/internal/jsonutil"
	"github.com/shortreel/douyin-resolver/internal/models"
)

// douyinWTF is the primary resolution source. Its endpoint is the only one
// the host may override per invocation.
type douyinWTF struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
}

// NewDouyinWTF creates the primary source against the given endpoint.
func NewDouyinWTF(httpClient *http.Client, endpoint string, timeout time.Duration) Source {
	return &douyinWTF{
		httpClient: httpClient,
		endpoint:   endpoint,
		timeout:    timeout,
	}
}

func (s *douyinWTF) Name() string {
	return "douyinwtf"
}

// douyinWTFResponse enumerates every field alias this API has been observed
// to use; the schema is undocumented and drifts.
type douyinWTFResponse struct {
	Desc        string      `json:"desc"`
	Title       string      `json:"title"`
	NwmVideoURL string      `json:"nwm_video_url"`
	URL         string      `json:"url"`
	VideoURL    string      `json:"video_url"`
	Images      []string    `json:"images"`
	CoverURL    string      `json:"cover_url"`
	Cover       string      `json:"cover"`
	Nickname    string      `json:"nickname"`
	Author      authorField `json:"author"`
	Duration    flexInt     `json:"duration"`
}

func (s *douyinWTF) Resolve(ctx context.Context, targetURL string) (*models.ResolveResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, err := fetchJSON(ctx, s.httpClient, s.endpoint, targetURL)
	if err != nil {
		return nil, fmt.Errorf("douyinwtf request failed: %w", err)
	}

	var payload douyinWTFResponse
	if err := jsonutil.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("douyinwtf returned malformed JSON: %w", err)
	}

	result := &models.ResolveResult{
		Title:       firstNonEmpty(payload.Desc, payload.Title),
		DownloadURL: firstNonEmpty(payload.NwmVideoURL, payload.URL, payload.VideoURL),
		Images:      payload.Images,
		Cover:       firstNonEmpty(payload.CoverURL, payload.Cover),
		Author:      firstNonEmpty(payload.Author.Nickname, payload.Nickname),
		Duration:    int(payload.Duration),
	}
	if !result.HasPayload() {
		return nil, fmt.Errorf("douyinwtf response carries no download URL or image list")
	}
	return result, nil
}
