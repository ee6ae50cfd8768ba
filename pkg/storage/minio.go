// Package storage keeps uploaded images in a MinIO (S3-compatible) bucket and
// hands out their public URLs.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ghuser/communityhub/pkg/config"
	"github.com/ghuser/communityhub/pkg/logger"
)

// ErrNotAnImage is returned by Put and DetectImage for content that does not
// sniff as an image.
var ErrNotAnImage = errors.New("storage: content is not an image")

// ImageStore writes objects to a single bucket.
type ImageStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	log       logger.Logger
}

// NewImageStore builds a MinIO client from cfg. No network call is made until
// the first operation.
func NewImageStore(cfg *config.Config, log logger.Logger) (*ImageStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioRootUser, cfg.MinioRootPassword, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: new minio client: %w", err)
	}

	base := strings.TrimRight(cfg.MinioPublicURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.MinioSecure {
			scheme = "https"
		}
		base = scheme + "://" + cfg.MinioEndpoint + "/" + cfg.MinioBucket
	}

	return &ImageStore{client: client, bucket: cfg.MinioBucket, publicURL: base, log: log}, nil
}

// Origin returns the scheme and host clients load images from.
func (s *ImageStore) Origin() string {
	u, err := url.Parse(s.publicURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *ImageStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("storage: bucket exists: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("storage: make bucket %s: %w", s.bucket, err)
	}
	s.log.InfoContext(ctx, "storage: bucket created", "bucket", s.bucket)
	return nil
}

// Put stores data under folder with a generated name and returns its public URL.
func (s *ImageStore) Put(ctx context.Context, folder string, data []byte) (string, error) {
	contentType, ext, err := DetectImage(data)
	if err != nil {
		return "", err
	}
	key := ObjectKey(folder, ext)
	if _, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}
	return s.URL(key), nil
}

// Delete removes the objects behind urls. URLs that do not point into this
// bucket are skipped; a missing object is not an error.
func (s *ImageStore) Delete(ctx context.Context, urls []string) error {
	var errs []error
	for _, u := range urls {
		key, ok := s.KeyFromURL(u)
		if !ok {
			s.log.DebugContext(ctx, "storage: skipping foreign url", "url", u)
			continue
		}
		if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			if minio.ToErrorResponse(err).Code == "NoSuchKey" {
				continue
			}
			errs = append(errs, fmt.Errorf("storage: remove %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// Ping checks that the bucket is reachable.
func (s *ImageStore) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("storage: ping: %w", err)
	}
	if !exists {
		return fmt.Errorf("storage: bucket %s does not exist", s.bucket)
	}
	return nil
}

// URL returns the public URL of key.
func (s *ImageStore) URL(key string) string {
	return s.publicURL + "/" + key
}

// KeyFromURL is the inverse of URL.
func (s *ImageStore) KeyFromURL(u string) (string, bool) {
	key, ok := strings.CutPrefix(u, s.publicURL+"/")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// ObjectKey returns a unique key inside folder with the given extension.
func ObjectKey(folder, ext string) string {
	return path.Join(strings.Trim(folder, "/"), uuid.NewString()+ext)
}

// DetectImage sniffs data and returns its MIME type and file extension.
func DetectImage(data []byte) (contentType, ext string, err error) {
	mtype := mimetype.Detect(data)
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return mtype.String(), mtype.Extension(), nil
		}
	}
	return "", "", fmt.Errorf("%w: detected %s", ErrNotAnImage, mtype.String())
}
