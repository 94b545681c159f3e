package apperrors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shortreel/douyin-resolver/internal/models"
)

func TestErrUnsupportedLink_UserMessage(t *testing.T) {
	err := NewUnsupportedLinkError(models.LinkTypeUser, "https://www.douyin.com/user/abc")

	if !strings.Contains(err.Error(), "user profile pages cannot be resolved") {
		t.Errorf("Expected explanatory profile message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "https://www.douyin.com/user/abc") {
		t.Errorf("Expected URL in message, got %q", err.Error())
	}
}

func TestErrUnsupportedLink_Is(t *testing.T) {
	err := NewUnsupportedLinkError(models.LinkTypeUser, "https://example.com")
	wrapped := fmt.Errorf("douyin resolver: %w", err)

	if !errors.Is(wrapped, &ErrUnsupportedLink{}) {
		t.Error("Expected errors.Is to match ErrUnsupportedLink through wrapping")
	}
}

func TestErrAllSourcesFailed_UnwrapsLast(t *testing.T) {
	last := errors.New("status 500")
	err := NewAllSourcesFailedError(3, last)

	if !errors.Is(err, last) {
		t.Error("Expected errors.Is to reach the last source error")
	}
	if !strings.Contains(err.Error(), "all 3 resolution sources failed") {
		t.Errorf("Unexpected message: %q", err.Error())
	}
}

func TestErrEmptyResult_Is(t *testing.T) {
	err := NewEmptyResultError(models.DownloadCover)
	wrapped := fmt.Errorf("douyin resolver: %w", err)

	if !errors.Is(wrapped, &ErrEmptyResult{}) {
		t.Error("Expected errors.Is to match ErrEmptyResult through wrapping")
	}
	if !strings.Contains(err.Error(), `"cover"`) {
		t.Errorf("Expected mode in message, got %q", err.Error())
	}
}
