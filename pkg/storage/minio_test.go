package storage

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/ghuser/communityhub/pkg/config"
	"github.com/ghuser/communityhub/pkg/logger"
)

// pngHeader is the smallest prefix mimetype recognises as image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestDetectImage(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantType string
		wantExt  string
		wantErr  bool
	}{
		{name: "png", data: pngHeader, wantType: "image/png", wantExt: ".png"},
		{name: "gif", data: []byte("GIF89a\x01\x00\x01\x00"), wantType: "image/gif", wantExt: ".gif"},
		{name: "plain text", data: []byte("hello world"), wantErr: true},
		{name: "empty", data: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, ext, err := DetectImage(tt.data)
			if tt.wantErr {
				if !errors.Is(err, ErrNotAnImage) {
					t.Fatalf("expected ErrNotAnImage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ct != tt.wantType || ext != tt.wantExt {
				t.Errorf("got (%q, %q), want (%q, %q)", ct, ext, tt.wantType, tt.wantExt)
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	a := ObjectKey("/event/", ".png")
	b := ObjectKey("event", ".png")
	if !strings.HasPrefix(a, "event/") || !strings.HasSuffix(a, ".png") {
		t.Errorf("unexpected key %q", a)
	}
	if a == b {
		t.Error("keys must be unique")
	}
}

func TestImageStore_URLRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantURL string
		origin  string
	}{
		{
			name:    "derived from endpoint",
			cfg:     config.Config{MinioEndpoint: "localhost:9000", MinioBucket: "images"},
			wantURL: "http://localhost:9000/images/event/a.png",
			origin:  "http://localhost:9000",
		},
		{
			name:    "secure endpoint",
			cfg:     config.Config{MinioEndpoint: "s3.example.org", MinioBucket: "images", MinioSecure: true},
			wantURL: "https://s3.example.org/images/event/a.png",
			origin:  "https://s3.example.org",
		},
		{
			name:    "explicit public url",
			cfg:     config.Config{MinioEndpoint: "minio:9000", MinioBucket: "images", MinioPublicURL: "https://cdn.example.org/"},
			wantURL: "https://cdn.example.org/event/a.png",
			origin:  "https://cdn.example.org",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewImageStore(&tt.cfg, logger.Discard())
			if err != nil {
				t.Fatalf("NewImageStore: %v", err)
			}
			got := s.URL("event/a.png")
			if got != tt.wantURL {
				t.Fatalf("URL = %q, want %q", got, tt.wantURL)
			}
			key, ok := s.KeyFromURL(got)
			if !ok || key != "event/a.png" {
				t.Errorf("KeyFromURL = (%q, %v)", key, ok)
			}
			if _, ok := s.KeyFromURL("https://elsewhere.example.org/x.png"); ok {
				t.Error("foreign URL must not map to a key")
			}
			if got := s.Origin(); got != tt.origin {
				t.Errorf("Origin = %q, want %q", got, tt.origin)
			}
		})
	}
}

func TestImageStore_PutRejectsNonImage(t *testing.T) {
	s, err := NewImageStore(&config.Config{MinioEndpoint: "localhost:1", MinioBucket: "images"}, logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Put(context.Background(), "event", []byte("not an image")); !errors.Is(err, ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage before any network call, got %v", err)
	}
}

// Integration test, skipped unless MINIO_ENDPOINT is set.
func TestImageStoreIntegration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set; skipping integration tests")
	}
	cfg := &config.Config{
		MinioEndpoint:     endpoint,
		MinioBucket:       "communityhub-test",
		MinioRootUser:     os.Getenv("MINIO_ROOT_USER"),
		MinioRootPassword: os.Getenv("MINIO_ROOT_PASSWORD"),
	}
	s, err := NewImageStore(cfg, logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := s.EnsureBucket(ctx); err != nil {
		t.Fatalf("EnsureBucket: %v", err)
	}
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	url, err := s.Put(ctx, "event", pngHeader)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Delete(ctx, []string{url, url}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
