package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/shortreel/douyin-resolver/internal/apperrors"
	"github.com/shortreel/douyin-resolver/internal/models"
	"github.com/shortreel/douyin-resolver/internal/source"
)

func TestRouter_UserLinkFailsWithoutSourceCall(t *testing.T) {
	src := &fakeSource{name: "src", result: videoResult("https://cdn/1.mp4")}
	router := NewRouter(NewChain([]source.Source{src}))

	_, err := router.Route(context.Background(), models.LinkTypeUser, "https://www.douyin.com/user/abc")
	if err == nil {
		t.Fatal("Expected error for user profile link")
	}
	if !errors.Is(err, &apperrors.ErrUnsupportedLink{}) {
		t.Errorf("Expected ErrUnsupportedLink, got %v", err)
	}
	if src.callCount() != 0 {
		t.Errorf("Expected no source attempt for user link, got %d calls", src.callCount())
	}
}

func TestRouter_VideoTagged(t *testing.T) {
	src := &fakeSource{name: "src", result: videoResult("https://cdn/1.mp4")}
	router := NewRouter(NewChain([]source.Source{src}))

	result, err := router.Route(context.Background(), models.LinkTypeVideo, "https://www.douyin.com/video/1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.ContentType != models.ContentTypeVideo {
		t.Errorf("Expected video content type, got %q", result.ContentType)
	}
	if result.MultiFile {
		t.Error("Expected single-file result for video")
	}
}

func TestRouter_UnknownRoutesAsVideo(t *testing.T) {
	src := &fakeSource{name: "src", result: videoResult("https://cdn/1.mp4")}
	router := NewRouter(NewChain([]source.Source{src}))

	result, err := router.Route(context.Background(), models.LinkTypeUnknown, "https://example.com/whatever")
	if err != nil {
		t.Fatalf("Expected unknown links routed as video, got: %v", err)
	}
	if result.ContentType != models.ContentTypeVideo {
		t.Errorf("Expected video content type, got %q", result.ContentType)
	}
}

func TestRouter_NoteWithImagesMarkedMultiFile(t *testing.T) {
	src := &fakeSource{name: "src", result: &models.ResolveResult{
		Title:  "gallery",
		Images: []string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
	}}
	router := NewRouter(NewChain([]source.Source{src}))

	result, err := router.Route(context.Background(), models.LinkTypeNote, "https://www.douyin.com/note/1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.ContentType != models.ContentTypeNote {
		t.Errorf("Expected note content type, got %q", result.ContentType)
	}
	if !result.MultiFile {
		t.Error("Expected note with images marked multi-file")
	}
}

func TestRouter_NoteWithoutImagesStaysSingleFile(t *testing.T) {
	src := &fakeSource{name: "src", result: videoResult("https://cdn/1.mp4")}
	router := NewRouter(NewChain([]source.Source{src}))

	result, err := router.Route(context.Background(), models.LinkTypeNote, "https://www.douyin.com/note/2")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.MultiFile {
		t.Error("Expected note without images to stay single-file")
	}
}
