package repositories

import (
	"context"

	"github.com/ghuser/communityhub/services/resource/domain/models"
)

// ImageUploader stores files in a folder-scoped image service and returns
// their public URLs in input order. Failures wrap ErrUploadFailed.
type ImageUploader interface {
	Upload(ctx context.Context, folder string, files []models.UploadFile) ([]string, error)
}

// ImagePurger schedules removal of images no document references any more.
type ImagePurger interface {
	Purge(ctx context.Context, urls []string) error
}
