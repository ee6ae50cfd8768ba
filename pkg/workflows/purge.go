package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
)

// ImagesTaskQueue is the task queue the image purge worker polls.
const ImagesTaskQueue = "communityhub-images"

// PurgeImagesInput lists the image URLs no document references any more.
type PurgeImagesInput struct {
	URLs   []string `json:"urls"`
	Reason string   `json:"reason"`
}

// ImageDeleter removes stored images by URL. *storage.ImageStore implements it.
type ImageDeleter interface {
	Delete(ctx context.Context, urls []string) error
}

// ImageActivities holds the activity implementations for image maintenance.
type ImageActivities struct {
	Deleter ImageDeleter
}

// DeleteImages removes urls from object storage.
func (a *ImageActivities) DeleteImages(ctx context.Context, urls []string) error {
	activity.GetLogger(ctx).Info("deleting orphaned images", "count", len(urls))
	if err := a.Deleter.Delete(ctx, urls); err != nil {
		return fmt.Errorf("delete images: %w", err)
	}
	return nil
}

// PurgeImagesWorkflow deletes orphaned images with retries, so a storage
// outage during a document delete never blocks the delete itself.
func PurgeImagesWorkflow(ctx workflow.Context, in PurgeImagesInput) error {
	if len(in.URLs) == 0 {
		return nil
	}
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    5,
		},
	})
	workflow.GetLogger(ctx).Info("purging images", "count", len(in.URLs), "reason", in.Reason)

	var a *ImageActivities
	return workflow.ExecuteActivity(ctx, a.DeleteImages, in.URLs).Get(ctx, nil)
}

// NewImageWorker returns a worker for ImagesTaskQueue with the purge workflow
// and its activity registered. The caller starts and stops it.
func NewImageWorker(tc *TemporalClient, deleter ImageDeleter) worker.Worker {
	w := worker.New(tc.Client, ImagesTaskQueue, worker.Options{})
	w.RegisterWorkflow(PurgeImagesWorkflow)
	w.RegisterActivity(&ImageActivities{Deleter: deleter})
	return w
}

// WorkflowStarter is the subset of client.Client used to start workflows.
type WorkflowStarter interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// TemporalPurger schedules PurgeImagesWorkflow runs. It implements the
// resource service's image purger.
type TemporalPurger struct {
	starter WorkflowStarter
	reason  string
}

func NewTemporalPurger(starter WorkflowStarter, reason string) *TemporalPurger {
	return &TemporalPurger{starter: starter, reason: reason}
}

// Purge starts a workflow for urls and returns once Temporal accepted it.
func (p *TemporalPurger) Purge(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	if _, err := p.starter.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        "purge-images-" + uuid.NewString(),
		TaskQueue: ImagesTaskQueue,
	}, PurgeImagesWorkflow, PurgeImagesInput{URLs: urls, Reason: p.reason}); err != nil {
		return fmt.Errorf("start purge workflow: %w", err)
	}
	return nil
}
