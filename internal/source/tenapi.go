package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shortreel/douyin-resolver/internal/jsonutil"
	"github.com/shortreel/douyin-resolver/internal/models"
)

// tenSuccessCode is the sentinel this API uses for a successful resolution.
const tenSuccessCode = 200

// tenAPI is the second backup source, the last tried in the chain.
type tenAPI struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
}

// NewTenAPI creates the second backup source against the given endpoint.
func NewTenAPI(httpClient *http.Client, endpoint string, timeout time.Duration) Source {
	return &tenAPI{
		httpClient: httpClient,
		endpoint:   endpoint,
		timeout:    timeout,
	}
}

func (s *tenAPI) Name() string {
	return "tenapi"
}

type tenAPIResponse struct {
	Code     flexInt `json:"code"`
	URL      string  `json:"url"`
	Title    string  `json:"title"`
	Cover    string  `json:"cover"`
	Author   string  `json:"author"`
	Duration flexInt `json:"duration"`
}

func (s *tenAPI) Resolve(ctx context.Context, targetURL string) (*models.ResolveResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, err := fetchJSON(ctx, s.httpClient, s.endpoint, targetURL)
	if err != nil {
		return nil, fmt.Errorf("tenapi request failed: %w", err)
	}

	var payload tenAPIResponse
	if err := jsonutil.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("tenapi returned malformed JSON: %w", err)
	}
	if int(payload.Code) != tenSuccessCode {
		return nil, fmt.Errorf("tenapi reported failure code %d", int(payload.Code))
	}

	result := &models.ResolveResult{
		Title:       payload.Title,
		DownloadURL: payload.URL,
		Cover:       payload.Cover,
		Author:      payload.Author,
		Duration:    int(payload.Duration),
	}
	if !result.HasPayload() {
		return nil, fmt.Errorf("tenapi response carries no download URL")
	}
	return result, nil
}
