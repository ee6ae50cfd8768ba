package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	pkgcache "github.com/ghuser/communityhub/pkg/cache"
	"github.com/ghuser/communityhub/pkg/logger"
	"github.com/ghuser/communityhub/pkg/telemetry"
	"github.com/ghuser/communityhub/services/resource/domain"
	"github.com/ghuser/communityhub/services/resource/domain/models"
	"github.com/ghuser/communityhub/services/resource/domain/repositories"
	domainsvcs "github.com/ghuser/communityhub/services/resource/domain/services"
)

// ListCache is the read-model cache for collection listings.
// *cache.ListCache implements it.
type ListCache interface {
	Get(ctx context.Context, collection string, dst any) error
	Set(ctx context.Context, collection string, v any) error
	Invalidate(ctx context.Context, collections ...string) error
}

// ResourceDeps are the collaborators of a ResourceService. Store and Uploader
// are required; the rest may be nil.
type ResourceDeps struct {
	Store       repositories.DocumentStore
	Uploader    repositories.ImageUploader
	Purger      repositories.ImagePurger
	Cache       ListCache
	ActivityLog repositories.ActivityLog
	Logger      logger.Logger
	Now         func() time.Time
}

// ResourceService performs the persistence side of every resource operation:
// upload, write with an audit record, cache invalidation and image cleanup.
// It holds no per-user state.
type ResourceService struct {
	store       repositories.DocumentStore
	uploader    repositories.ImageUploader
	purger      repositories.ImagePurger
	cache       ListCache
	activityLog repositories.ActivityLog
	log         logger.Logger
	now         func() time.Time
	mutations   metric.Int64Counter
}

// NewResourceService returns a ResourceService wired with deps.
func NewResourceService(deps ResourceDeps) *ResourceService {
	if deps.Logger == nil {
		deps.Logger = logger.Discard()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	counter, err := otel.Meter("communityhub/resource").Int64Counter(
		"resource.mutations",
		metric.WithDescription("Documents added, edited or deleted"),
	)
	if err != nil {
		deps.Logger.Warn("resource.mutations counter unavailable", "error", err)
	}
	return &ResourceService{
		store:       deps.Store,
		uploader:    deps.Uploader,
		purger:      deps.Purger,
		cache:       deps.Cache,
		activityLog: deps.ActivityLog,
		log:         deps.Logger,
		now:         deps.Now,
		mutations:   counter,
	}
}

// List returns every document of rt, newest first, using a read-through cache:
//  1. Check Redis first.
//  2. On miss (or cache error), query the store.
//  3. Store the result for subsequent reads.
func (s *ResourceService) List(ctx context.Context, rt models.ResourceType) ([]*models.Document, error) {
	if s.cache != nil {
		var cached []*models.Document
		err := s.cache.Get(ctx, rt.Collection, &cached)
		if err == nil {
			for _, d := range cached {
				d.Collection = rt.Collection
			}
			return cached, nil
		}
		if !errors.Is(err, pkgcache.ErrMiss) {
			s.log.WarnContext(ctx, "list cache read failed", "collection", rt.Collection, "error", err)
		}
	}

	docs, err := s.store.List(ctx, rt.Collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", rt.Collection, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, rt.Collection, docs); err != nil {
			s.log.WarnContext(ctx, "list cache write failed", "collection", rt.Collection, "error", err)
		}
	}
	return docs, nil
}

// Get returns one document of rt.
func (s *ResourceService) Get(ctx context.Context, rt models.ResourceType, id string) (*models.Document, error) {
	doc, err := s.store.Get(ctx, rt.Collection, id)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", rt.Collection, id, err)
	}
	return doc, nil
}

// Upload sends files to the image service under rt's upload folder. An empty
// file list never reaches the uploader.
func (s *ResourceService) Upload(ctx context.Context, rt models.ResourceType, files []models.UploadFile) ([]string, error) {
	return s.upload(ctx, rt.UploadFolder, files)
}

// UploadToFolder is Upload for an explicit folder name.
func (s *ResourceService) UploadToFolder(ctx context.Context, folder string, files []models.UploadFile) ([]string, error) {
	if !slices.Contains(models.UploadFolders(), folder) {
		return nil, fmt.Errorf("%w: unknown upload category %q", domain.ErrInvalidDocument, folder)
	}
	return s.upload(ctx, folder, files)
}

func (s *ResourceService) upload(ctx context.Context, folder string, files []models.UploadFile) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}
	if s.uploader == nil {
		return nil, fmt.Errorf("%w: no image uploader configured", domain.ErrUploadFailed)
	}
	urls, err := s.uploader.Upload(ctx, folder, files)
	if err != nil {
		if !errors.Is(err, domain.ErrUploadFailed) && !errors.Is(err, domain.ErrUnsupportedMediaType) {
			err = fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
		}
		return nil, err
	}
	return urls, nil
}

// Create uploads files, then stores fields as a new document whose imageUrls
// are exactly the uploaded URLs and whose trail holds one add record.
// Nothing is written when the upload fails. Field validation is left to the
// caller.
func (s *ResourceService) Create(ctx context.Context, rt models.ResourceType, actor models.Actor, fields models.Fields, files []models.UploadFile) (*models.Document, error) {
	urls, err := s.Upload(ctx, rt, files)
	if err != nil {
		return nil, err
	}

	activity := models.NewActivity(actor, models.ActivityAdd, domainsvcs.AddedDescription(fields.String(models.FieldTitle)), s.now())
	doc, err := s.store.Create(ctx, rt.Collection, fields.WithoutReserved().WithImageURLs(urls), activity)
	if err != nil {
		s.discard(ctx, urls)
		return nil, fmt.Errorf("create %s: %w", rt.Collection, err)
	}

	s.afterMutation(ctx, rt, models.ActivityAdd)
	s.log.InfoContext(ctx, "document added", "collection", rt.Collection, "document_id", doc.ID, "images", len(urls))
	return doc, nil
}

// SaveEditResult is the outcome of SaveEdit.
type SaveEditResult struct {
	Document *models.Document
	// AppendedURLs are the URLs uploaded by this save, in order.
	AppendedURLs []string
	// Description is the edit record's description.
	Description string
}

// SaveEdit uploads files and appends their URLs to the edited imageUrls, diffs
// the result against the stored document and writes it with an edit record.
// expectedVersion guards against lost updates; repositories.AnyVersion uses
// the version read for the diff.
func (s *ResourceService) SaveEdit(ctx context.Context, rt models.ResourceType, actor models.Actor, id string, edited models.Fields, expectedVersion int64, files []models.UploadFile) (*SaveEditResult, error) {
	urls, err := s.Upload(ctx, rt, files)
	if err != nil {
		return nil, err
	}
	current, err := s.store.Get(ctx, rt.Collection, id)
	if err != nil {
		s.discard(ctx, urls)
		return nil, fmt.Errorf("read %s/%s: %w", rt.Collection, id, err)
	}

	// Without an imageUrls key the stored images stay; uploads append either way.
	merged := edited.WithoutReserved()
	base := current.ImageURLs()
	if _, ok := merged[models.FieldImageURLs]; ok {
		base = merged.ImageURLs()
	}
	merged = merged.WithImageURLs(append(slices.Clone(base), urls...))
	if expectedVersion == repositories.AnyVersion {
		expectedVersion = current.Version
	}

	after := current.Fields.Clone()
	for k, v := range merged {
		after[k] = v
	}
	description := domainsvcs.DescribeChanges(current.Fields, after)

	activity := models.NewActivity(actor, models.ActivityEdit, description, s.now())
	doc, err := s.store.Update(ctx, rt.Collection, id, merged, activity, expectedVersion)
	if err != nil {
		s.discard(ctx, urls)
		return nil, fmt.Errorf("update %s/%s: %w", rt.Collection, id, err)
	}

	s.discard(ctx, removedURLs(current.ImageURLs(), doc.ImageURLs()))
	s.afterMutation(ctx, rt, models.ActivityEdit)
	s.log.InfoContext(ctx, "document edited", "collection", rt.Collection, "document_id", id, "version", doc.Version)
	return &SaveEditResult{Document: doc, AppendedURLs: urls, Description: description}, nil
}

// Delete appends a delete record to the document and then removes it. The
// record write comes first; when it fails nothing is removed.
func (s *ResourceService) Delete(ctx context.Context, rt models.ResourceType, actor models.Actor, id string) error {
	current, err := s.store.Get(ctx, rt.Collection, id)
	if err != nil {
		return fmt.Errorf("read %s/%s: %w", rt.Collection, id, err)
	}

	activity := models.NewActivity(actor, models.ActivityDelete, domainsvcs.DeletedDescription(current.Title()), s.now())
	if _, err := s.store.Update(ctx, rt.Collection, id, models.Fields{}, activity, current.Version); err != nil {
		return fmt.Errorf("record delete of %s/%s: %w", rt.Collection, id, err)
	}
	if err := s.store.Delete(ctx, rt.Collection, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", rt.Collection, id, err)
	}

	s.discard(ctx, current.ImageURLs())
	s.afterMutation(ctx, rt, models.ActivityDelete)
	s.log.InfoContext(ctx, "document deleted", "collection", rt.Collection, "document_id", id)
	return nil
}

// Activities returns the audit trail embedded in a document, oldest first.
func (s *ResourceService) Activities(ctx context.Context, rt models.ResourceType, id string) ([]models.Activity, error) {
	doc, err := s.Get(ctx, rt, id)
	if err != nil {
		return nil, err
	}
	if doc.Activities == nil {
		return []models.Activity{}, nil
	}
	return doc.Activities, nil
}

// History queries the durable activity log, which keeps records of deleted
// documents too. Returns an empty list when no log is configured.
func (s *ResourceService) History(ctx context.Context, filter repositories.ActivityFilter) ([]models.ActivityLogEntry, error) {
	if s.activityLog == nil {
		return []models.ActivityLogEntry{}, nil
	}
	entries, err := s.activityLog.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list activity log: %w", err)
	}
	return entries, nil
}

// DropListing removes the cached listing of collection so the next List
// reads the store. Failures are logged only.
func (s *ResourceService) DropListing(ctx context.Context, collection string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, collection); err != nil {
		s.log.WarnContext(ctx, "list cache invalidation failed", "collection", collection, "error", err)
	}
}

// afterMutation drops the cached listing and counts the mutation.
func (s *ResourceService) afterMutation(ctx context.Context, rt models.ResourceType, typ models.ActivityType) {
	s.DropListing(ctx, rt.Collection)
	if s.mutations != nil {
		s.mutations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("collection", rt.Collection),
			attribute.String("type", string(typ)),
		))
	}
}

// discard hands images no document references to the purger. Failures are
// logged; the images are merely orphaned.
func (s *ResourceService) discard(ctx context.Context, urls []string) {
	if s.purger == nil || len(urls) == 0 {
		return
	}
	if err := s.purger.Purge(context.WithoutCancel(ctx), urls); err != nil {
		s.log.WarnContext(ctx, "image purge failed", "count", len(urls), "error", err)
		telemetry.CaptureError(ctx, err, map[string]string{"component": "image_purge"})
	}
}

// removedURLs returns the entries of before missing from after.
func removedURLs(before, after []string) []string {
	var out []string
	for _, u := range before {
		if !slices.Contains(after, u) {
			out = append(out, u)
		}
	}
	return out
}
