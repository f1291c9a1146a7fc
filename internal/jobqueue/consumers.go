package jobqueue

import (
	"context"
	"fmt"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
)

type Reconciler interface {
	Reconcile(ctx context.Context, req domain.ReconcileRequest) (*domain.ReconcileSummary, error)
}

type AttachmentSyncer interface {
	SyncAttachments(ctx context.Context, req domain.AttachmentSyncRequest) (*domain.AttachmentSyncResult, error)
}

// ReconciliationConsumer runs sync-accounting-transactions jobs.
type ReconciliationConsumer struct {
	reconciler  Reconciler
	logger      *logger.Logger
	workerCount int
}

func NewReconciliationConsumer(reconciler Reconciler, log *logger.Logger, workerCount int) *ReconciliationConsumer {
	return &ReconciliationConsumer{
		reconciler:  reconciler,
		logger:      log,
		workerCount: workerCount,
	}
}

func (rc *ReconciliationConsumer) Consume(ctx context.Context, job Job) error {
	req, ok := job.Payload.(domain.ReconcileRequest)
	if !ok {
		rc.logger.Error(ctx, "Invalid payload type for reconciliation job",
			"job_id", job.ID,
		)
		return fmt.Errorf("%s: %w", job.Name, domain.ErrInvalidPayload)
	}

	ctx = logger.WithTeamID(ctx, req.TeamID)

	summary, err := rc.reconciler.Reconcile(ctx, req)
	if err != nil {
		rc.logger.Error(ctx, "Reconciliation failed",
			"job_id", job.ID,
			"provider", req.Provider,
			"error", err,
		)
		return err
	}

	rc.logger.Info(ctx, "Reconciliation completed",
		"job_id", job.ID,
		"provider", req.Provider,
		"exported", summary.ExportedCount,
		"attachments_scheduled", summary.AttachmentsSyncedCount,
		"skipped", summary.SkippedCount,
		"failed", summary.FailedCount,
	)

	return nil
}

func (rc *ReconciliationConsumer) GetWorkerCount() int {
	return rc.workerCount
}

// AttachmentSyncConsumer runs sync-accounting-attachments jobs.
type AttachmentSyncConsumer struct {
	syncer      AttachmentSyncer
	logger      *logger.Logger
	workerCount int
}

func NewAttachmentSyncConsumer(syncer AttachmentSyncer, log *logger.Logger, workerCount int) *AttachmentSyncConsumer {
	return &AttachmentSyncConsumer{
		syncer:      syncer,
		logger:      log,
		workerCount: workerCount,
	}
}

func (ac *AttachmentSyncConsumer) Consume(ctx context.Context, job Job) error {
	req, ok := job.Payload.(domain.AttachmentSyncRequest)
	if !ok {
		ac.logger.Error(ctx, "Invalid payload type for attachment sync job",
			"job_id", job.ID,
		)
		return fmt.Errorf("%s: %w", job.Name, domain.ErrInvalidPayload)
	}

	ctx = logger.WithTeamID(ctx, req.TeamID)
	ctx = logger.WithTransactionID(ctx, req.TransactionID)

	// per-attachment failures are recorded on the sync record, not returned
	result, err := ac.syncer.SyncAttachments(ctx, req)
	if err != nil {
		ac.logger.Error(ctx, "Attachment sync failed",
			"job_id", job.ID,
			"provider", req.Provider,
			"error", err,
		)
		return err
	}

	ac.logger.Info(ctx, "Attachment sync completed",
		"job_id", job.ID,
		"provider", req.Provider,
		"uploaded", result.UploadedCount,
		"deleted", result.DeletedCount,
		"failed", result.FailedCount,
		"status", result.Status,
	)

	return nil
}

func (ac *AttachmentSyncConsumer) GetWorkerCount() int {
	return ac.workerCount
}
