package uploads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/communityhub/pkg/storage"
	"github.com/ghuser/communityhub/services/resource/domain"
	"github.com/ghuser/communityhub/services/resource/domain/models"
)

type fakeStore struct {
	puts    []string
	deleted []string
	failAt  int
	failErr error
}

func (s *fakeStore) Put(_ context.Context, folder string, _ []byte) (string, error) {
	if s.failErr != nil && len(s.puts) == s.failAt {
		return "", s.failErr
	}
	url := fmt.Sprintf("https://cdn.example.org/%s/%d.png", folder, len(s.puts))
	s.puts = append(s.puts, url)
	return url, nil
}

func (s *fakeStore) Delete(_ context.Context, urls []string) error {
	s.deleted = append(s.deleted, urls...)
	return nil
}

func files(names ...string) []models.UploadFile {
	out := make([]models.UploadFile, 0, len(names))
	for _, n := range names {
		out = append(out, models.UploadFile{Name: n, ContentType: "image/png", Data: []byte(n)})
	}
	return out
}

func TestStoreUploader_PreservesOrder(t *testing.T) {
	s := &fakeStore{}
	u := NewStoreUploader(s, 0)
	urls, err := u.Upload(context.Background(), "event", files("a.png", "b.png"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	want := []string{"https://cdn.example.org/event/0.png", "https://cdn.example.org/event/1.png"}
	if len(urls) != 2 || urls[0] != want[0] || urls[1] != want[1] {
		t.Fatalf("urls = %v, want %v", urls, want)
	}
}

func TestStoreUploader_Failures(t *testing.T) {
	tests := []struct {
		name     string
		store    *fakeStore
		maxBytes int64
		wantErr  error
	}{
		{name: "not an image", store: &fakeStore{failAt: 1, failErr: storage.ErrNotAnImage}, wantErr: domain.ErrUnsupportedMediaType},
		{name: "backend down", store: &fakeStore{failAt: 1, failErr: errors.New("connection refused")}, wantErr: domain.ErrUploadFailed},
		{name: "too large", store: &fakeStore{}, maxBytes: 3, wantErr: domain.ErrUploadFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewStoreUploader(tt.store, tt.maxBytes)
			urls, err := u.Upload(context.Background(), "news", files("a.png", "bb.png"))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			if urls != nil {
				t.Errorf("expected no urls on failure, got %v", urls)
			}
			if len(tt.store.deleted) != len(tt.store.puts) {
				t.Errorf("partial upload not rolled back: put %v deleted %v", tt.store.puts, tt.store.deleted)
			}
		})
	}
}

func TestStoreUploader_Purge(t *testing.T) {
	s := &fakeStore{}
	u := NewStoreUploader(s, 0)
	if err := u.Purge(context.Background(), nil); err != nil || len(s.deleted) != 0 {
		t.Fatalf("empty purge: %v %v", err, s.deleted)
	}
	if err := u.Purge(context.Background(), []string{"x"}); err != nil || len(s.deleted) != 1 {
		t.Fatalf("purge: %v %v", err, s.deleted)
	}
}

func TestHTTPUploader_SendsMultipart(t *testing.T) {
	var gotCategory string
	var gotFiles []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotCategory = r.FormValue("category")
		var urls []string
		for _, fh := range r.MultipartForm.File["files[]"] {
			f, _ := fh.Open()
			data, _ := io.ReadAll(f)
			_ = f.Close()
			gotFiles = append(gotFiles, string(data))
			urls = append(urls, "https://img.example.org/"+fh.Filename)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(UploadResponse{ImageURLs: urls})
	}))
	defer srv.Close()

	u := NewHTTPUploader(srv.URL, srv.Client())
	urls, err := u.Upload(context.Background(), "donation", files("a.png", "b.png"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if gotCategory != "donation" {
		t.Errorf("category = %q", gotCategory)
	}
	if len(gotFiles) != 2 || gotFiles[0] != "a.png" || gotFiles[1] != "b.png" {
		t.Errorf("files = %v", gotFiles)
	}
	if len(urls) != 2 || urls[1] != "https://img.example.org/b.png" {
		t.Errorf("urls = %v", urls)
	}
}

func TestHTTPUploader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: domain.ErrUploadFailed},
		{name: "unsupported media", status: http.StatusUnsupportedMediaType, body: "nope", wantErr: domain.ErrUnsupportedMediaType},
		{name: "malformed body", status: http.StatusOK, body: "not json", wantErr: domain.ErrUploadFailed},
		{name: "url count mismatch", status: http.StatusOK, body: `{"imageUrls":["only-one"]}`, wantErr: domain.ErrUploadFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewHTTPUploader(srv.URL, srv.Client()).Upload(context.Background(), "event", files("a.png", "b.png"))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHTTPUploader_NoFilesSkipsRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	defer srv.Close()

	urls, err := NewHTTPUploader(srv.URL, srv.Client()).Upload(context.Background(), "event", nil)
	if err != nil || len(urls) != 0 || urls == nil {
		t.Fatalf("got (%v, %v), want empty non-nil slice", urls, err)
	}
	if called {
		t.Error("no request expected for an empty file list")
	}
}

func TestHTTPUploader_Unreachable(t *testing.T) {
	_, err := NewHTTPUploader("http://127.0.0.1:1/upload", nil).Upload(context.Background(), "event", files("a.png"))
	if !errors.Is(err, domain.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
}
