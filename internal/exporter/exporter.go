// Package exporter pushes transactions to an accounting provider in ordered batches,
// records the outcome of every transaction and fans out attachment-sync jobs for the
// exported ones.
package exporter

import (
	"context"
	"fmt"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/jobqueue"
	"github.com/grachmannico95/accounting-sync/internal/provider"
	"github.com/grachmannico95/accounting-sync/internal/ratebudget"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
)

const (
	DefaultBatchSize = 50

	MessageNotReturned = "Transaction not returned by provider"
	messageNoDetail    = "Export failed"
)

type Scheduler interface {
	Schedule(ctx context.Context, job jobqueue.Job, opts jobqueue.ScheduleOptions) error
}

type ExportRequest struct {
	TeamID          string
	Provider        domain.ProviderID
	Client          provider.Provider
	TenantID        string
	TargetAccountID string
	SyncType        domain.SyncType
	Transactions    []domain.Transaction
	// OnProgress receives the completed share of the run, 0-100, after every batch.
	OnProgress func(percent int)
}

type TransactionResult struct {
	TransactionID          string
	ProviderTransactionID  string
	ProviderEntityType     string
	Success                bool
	Error                  string
	AttachmentJobScheduled bool
	AttachmentJobDelay     time.Duration
}

type ExportResult struct {
	SyncedCount        int
	FailedCount        int
	AttachmentJobCount int
	Results            []TransactionResult
}

type Exporter struct {
	records   domain.SyncRecordRepository
	scheduler Scheduler
	logger    *logger.Logger
	batchSize int
}

func New(records domain.SyncRecordRepository, scheduler Scheduler, log *logger.Logger, batchSize int) *Exporter {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Exporter{
		records:   records,
		scheduler: scheduler,
		logger:    log,
		batchSize: batchSize,
	}
}

// Export sends req.Transactions in batches, strictly in order. A failing batch marks its
// own transactions failed and the run moves on; only a cancelled context stops it early.
// Attachment jobs draw their delay from index so they share a budget with any other jobs
// the caller schedules in the same run.
func (e *Exporter) Export(ctx context.Context, req ExportRequest, index *ratebudget.JobIndex) (*ExportResult, error) {
	if index == nil {
		index = &ratebudget.JobIndex{}
	}

	ctx = logger.WithTeamID(ctx, req.TeamID)

	result := &ExportResult{Results: []TransactionResult{}}
	total := len(req.Transactions)
	if total == 0 {
		return result, nil
	}

	e.logger.Info(ctx, "Exporting transactions",
		"provider", req.Provider,
		"count", total,
		"batch_size", e.batchSize,
	)

	for start := 0; start < total; start += e.batchSize {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		end := start + e.batchSize
		if end > total {
			end = total
		}

		e.exportBatch(ctx, req, req.Transactions[start:end], index, result)

		if req.OnProgress != nil {
			req.OnProgress(end * 100 / total)
		}
	}

	e.logger.Info(ctx, "Export finished",
		"provider", req.Provider,
		"synced", result.SyncedCount,
		"failed", result.FailedCount,
		"attachment_jobs", result.AttachmentJobCount,
	)

	return result, nil
}

func (e *Exporter) exportBatch(ctx context.Context, req ExportRequest, batch []domain.Transaction, index *ratebudget.JobIndex, result *ExportResult) {
	mapped := make([]domain.MappedTransaction, 0, len(batch))
	byID := make(map[string]domain.Transaction, len(batch))
	for _, tx := range batch {
		mapped = append(mapped, MapTransaction(tx))
		byID[tx.ID] = tx
	}

	resp, err := req.Client.SyncTransactions(ctx, provider.SyncTransactionsParams{
		TenantID:        req.TenantID,
		TargetAccountID: req.TargetAccountID,
		Transactions:    mapped,
	})
	if err != nil {
		e.logger.Error(ctx, "Batch export failed",
			"provider", req.Provider,
			"batch_size", len(batch),
			"error", err,
		)
		for _, tx := range batch {
			e.recordFailure(ctx, req, tx.ID, err.Error(), result)
		}
		return
	}

	seen := make(map[string]bool, len(batch))
	for _, r := range resp.Results {
		tx, ok := byID[r.TransactionID]
		if !ok || seen[r.TransactionID] {
			e.logger.Warn(ctx, "Ignoring unexpected provider result",
				"provider", req.Provider,
				"provider_result_id", r.TransactionID,
			)
			continue
		}
		seen[r.TransactionID] = true

		if !r.Success {
			msg := r.Error
			if msg == "" {
				msg = messageNoDetail
			}
			e.recordFailure(ctx, req, tx.ID, msg, result)
			continue
		}

		e.recordSuccess(ctx, req, tx, r, index, result)
	}

	for _, tx := range batch {
		if !seen[tx.ID] {
			e.recordFailure(ctx, req, tx.ID, MessageNotReturned, result)
		}
	}
}

func (e *Exporter) recordSuccess(ctx context.Context, req ExportRequest, tx domain.Transaction, r provider.TransactionResult, index *ratebudget.JobIndex, result *ExportResult) {
	ctx = logger.WithTransactionID(ctx, tx.ID)

	record := domain.SyncRecord{
		TransactionID:           tx.ID,
		TeamID:                  req.TeamID,
		Provider:                req.Provider,
		ProviderTenantID:        req.TenantID,
		ProviderTransactionID:   domain.StringPtr(r.ProviderTransactionID),
		ProviderEntityType:      domain.StringPtr(r.ProviderEntityType),
		SyncType:                req.SyncType,
		Status:                  domain.SyncStatusSynced,
		SyncedAttachmentMapping: map[string]*string{},
	}

	if err := e.records.Upsert(ctx, record); err != nil {
		e.logger.Error(ctx, "Failed to store sync record",
			"provider", req.Provider,
			"error", err,
		)
		result.FailedCount++
		result.Results = append(result.Results, TransactionResult{
			TransactionID:         tx.ID,
			ProviderTransactionID: r.ProviderTransactionID,
			ProviderEntityType:    r.ProviderEntityType,
			Error:                 fmt.Sprintf("store sync record: %v", err),
		})
		return
	}

	result.SyncedCount++
	tr := TransactionResult{
		TransactionID:         tx.ID,
		ProviderTransactionID: r.ProviderTransactionID,
		ProviderEntityType:    r.ProviderEntityType,
		Success:               true,
	}

	attachments := tx.EligibleAttachments()
	if r.ProviderTransactionID != "" && len(attachments) > 0 {
		ids := make([]string, 0, len(attachments))
		for _, a := range attachments {
			ids = append(ids, a.ID)
		}

		delay := ratebudget.Delay(req.Provider, index.Next())
		job := jobqueue.Job{
			Name:  domain.JobSyncAttachments,
			Queue: domain.QueueAccounting,
			Payload: domain.AttachmentSyncRequest{
				TeamID:                req.TeamID,
				Provider:              req.Provider,
				TenantID:              req.TenantID,
				TransactionID:         tx.ID,
				ProviderTransactionID: r.ProviderTransactionID,
				ProviderEntityType:    r.ProviderEntityType,
				SyncType:              req.SyncType,
				NewAttachmentIDs:      ids,
				RemovedAttachments:    []domain.RemovedAttachment{},
				ExistingMapping:       map[string]*string{},
			},
		}

		// a lost job is recovered by the next pass: the record has an empty mapping
		if err := e.scheduler.Schedule(ctx, job, jobqueue.ScheduleOptions{Delay: delay}); err != nil {
			e.logger.Warn(ctx, "Failed to schedule attachment sync",
				"provider", req.Provider,
				"error", err,
			)
		} else {
			tr.AttachmentJobScheduled = true
			tr.AttachmentJobDelay = delay
			result.AttachmentJobCount++
		}
	}

	result.Results = append(result.Results, tr)
}

func (e *Exporter) recordFailure(ctx context.Context, req ExportRequest, transactionID, message string, result *ExportResult) {
	ctx = logger.WithTransactionID(ctx, transactionID)

	code := string(domain.ErrorCodeExportFailed)
	record := domain.SyncRecord{
		TransactionID:    transactionID,
		TeamID:           req.TeamID,
		Provider:         req.Provider,
		ProviderTenantID: req.TenantID,
		SyncType:         req.SyncType,
		Status:           domain.SyncStatusFailed,
		ErrorCode:        &code,
		ErrorMessage:     &message,
	}

	if err := e.records.Upsert(ctx, record); err != nil {
		e.logger.Error(ctx, "Failed to store sync record",
			"provider", req.Provider,
			"error", err,
		)
	}

	e.logger.Warn(ctx, "Transaction export failed",
		"provider", req.Provider,
		"reason", message,
	)

	result.FailedCount++
	result.Results = append(result.Results, TransactionResult{
		TransactionID: transactionID,
		Error:         message,
	})
}
