package services

import (
	"github.com/ghuser/communityhub/pkg/app"
	"github.com/ghuser/communityhub/pkg/cache"
	"github.com/ghuser/communityhub/pkg/workflows"
	"github.com/ghuser/communityhub/services/resource/domain/repositories"
	"github.com/ghuser/communityhub/services/resource/infrastructure/persistence/postgres"
	"github.com/ghuser/communityhub/services/resource/infrastructure/uploads"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Resource    *ResourceService
	ActivityLog repositories.ActivityLog
}

// New wires all resource application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	deps := ResourceDeps{
		Store:       postgres.NewDocumentRepository(a.Db, a.EventBus),
		ActivityLog: postgres.NewActivityLogRepository(a.Db),
		Logger:      a.Logger.With("module", "resource"),
	}
	if a.Redis != nil {
		deps.Cache = cache.NewListCache(a.Redis, a.Config.ListCacheTTL)
	}

	var direct *uploads.StoreUploader
	if a.Storage != nil {
		direct = uploads.NewStoreUploader(a.Storage, a.Config.MaxUploadBytes)
	}

	if a.Config.UploadServiceURL != "" {
		deps.Uploader = uploads.NewHTTPUploader(a.Config.UploadServiceURL, nil)
	} else if direct != nil {
		deps.Uploader = direct
	}

	deps.Purger = newPurger(a, direct)
	return &Services{Resource: NewResourceService(deps), ActivityLog: deps.ActivityLog}
}

// newPurger prefers a durable Temporal workflow and falls back to deleting
// images inline. Remote uploads without Temporal are never purged locally.
func newPurger(a *app.Application, direct *uploads.StoreUploader) repositories.ImagePurger {
	if a.TemporalClient != nil {
		return workflows.NewTemporalPurger(a.TemporalClient.Client, "unreferenced")
	}
	if direct != nil && a.Config.UploadServiceURL == "" {
		return direct
	}
	return nil
}
