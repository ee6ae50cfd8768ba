package uploads

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghuser/communityhub/pkg/storage"
	"github.com/ghuser/communityhub/services/resource/domain"
	"github.com/ghuser/communityhub/services/resource/domain/models"
)

// ObjectStore is the subset of *storage.ImageStore the uploaders need.
type ObjectStore interface {
	Put(ctx context.Context, folder string, data []byte) (string, error)
	Delete(ctx context.Context, urls []string) error
}

// StoreUploader writes images straight into object storage.
type StoreUploader struct {
	store    ObjectStore
	maxBytes int64
}

// NewStoreUploader returns an uploader rejecting files larger than maxBytes.
// A non-positive maxBytes disables the size check.
func NewStoreUploader(store ObjectStore, maxBytes int64) *StoreUploader {
	return &StoreUploader{store: store, maxBytes: maxBytes}
}

// Upload stores files in order. On failure the objects already written for
// this call are removed again so a retry starts clean.
func (u *StoreUploader) Upload(ctx context.Context, folder string, files []models.UploadFile) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		if u.maxBytes > 0 && int64(len(f.Data)) > u.maxBytes {
			u.rollback(ctx, urls)
			return nil, fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrUploadFailed, f.Name, u.maxBytes)
		}
		url, err := u.store.Put(ctx, folder, f.Data)
		if err != nil {
			u.rollback(ctx, urls)
			if errors.Is(err, storage.ErrNotAnImage) {
				return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnsupportedMediaType, f.Name, err)
			}
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrUploadFailed, f.Name, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// Purge deletes images from object storage.
func (u *StoreUploader) Purge(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	return u.store.Delete(ctx, urls)
}

func (u *StoreUploader) rollback(ctx context.Context, urls []string) {
	if len(urls) > 0 {
		_ = u.store.Delete(context.WithoutCancel(ctx), urls)
	}
}
