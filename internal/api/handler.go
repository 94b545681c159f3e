// Package api exposes the resolution pipeline over HTTP.
package api

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/shortreel/douyin-resolver/internal/apperrors"
	"github.com/shortreel/douyin-resolver/internal/config"
	"github.com/shortreel/douyin-resolver/internal/jsonutil"
	"github.com/shortreel/douyin-resolver/internal/models"
	"github.com/shortreel/douyin-resolver/internal/plugin"
)

// resolveRequest is the POST /api/v1/resolve body.
type resolveRequest struct {
	URL          string              `json:"url"`
	APIEndpoint  string              `json:"apiEndpoint,omitempty"`
	Timeout      int                 `json:"timeout,omitempty"`
	DownloadType models.DownloadMode `json:"downloadType,omitempty"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the resolution endpoints.
type Handler struct {
	plugin *plugin.Plugin
}

// NewHandler creates a handler backed by the given plugin.
func NewHandler(p *plugin.Plugin) *Handler {
	return &Handler{plugin: p}
}

// Resolve handles POST /api/v1/resolve.
func (h *Handler) Resolve(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "failed to read request body: " + err.Error()})
		return
	}

	var req resolveRequest
	if err := jsonutil.Unmarshal(data, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "url is required"})
		return
	}

	manifest, err := h.plugin.Resolve(c.Request.Context(), plugin.Invocation{
		Request: plugin.RequestInfo{URL: req.URL},
		Settings: &models.Settings{
			APIEndpoint:  req.APIEndpoint,
			Timeout:      req.Timeout,
			DownloadType: req.DownloadType,
		},
	})
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			sentry.CaptureException(err)
			logger := config.GetLogger()
			logger.Error().Err(err).Str("url", req.URL).Msg("Resolution failed")
		}
		c.JSON(status, errorResponse{Error: err.Error()})
		return
	}

	body, err := jsonutil.Marshal(manifest)
	if err != nil {
		sentry.CaptureException(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to encode manifest"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, &apperrors.ErrUnsupportedLink{}):
		return http.StatusUnprocessableEntity
	case errors.Is(err, &apperrors.ErrEmptyResult{}):
		return http.StatusNotFound
	case errors.Is(err, &apperrors.ErrAllSourcesFailed{}):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
