// Package attachments brings the attachments of an exported transaction in line with the
// provider: removed files are deleted there, new files are uploaded with bounded
// concurrency, and the attachment mapping on the sync record is updated.
package attachments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/mimetype"
	"github.com/grachmannico95/accounting-sync/internal/provider"
	"github.com/grachmannico95/accounting-sync/pkg/executor"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
	"github.com/grachmannico95/accounting-sync/pkg/retry"
)

const (
	UploadAttempts      = 3
	UploadRetryDelay    = 2 * time.Second
	RateLimitRetryDelay = 30 * time.Second
)

type (
	SyncRequest = domain.AttachmentSyncRequest
	SyncResult  = domain.AttachmentSyncResult
)

type Downloader interface {
	Download(ctx context.Context, path string) ([]byte, error)
}

type Engine struct {
	transactions domain.TransactionRepository
	records      domain.SyncRecordRepository
	files        Downloader
	limits       provider.LimitsTable
	logger       *logger.Logger
	retryOpts    []retry.Option
}

type Option func(*Engine)

// WithRetryOptions appends options to every retry the engine performs, after its own.
func WithRetryOptions(opts ...retry.Option) Option {
	return func(e *Engine) {
		e.retryOpts = append(e.retryOpts, opts...)
	}
}

func NewEngine(transactions domain.TransactionRepository, records domain.SyncRecordRepository, files Downloader, limits provider.LimitsTable, log *logger.Logger, opts ...Option) *Engine {
	if limits == nil {
		limits = provider.DefaultLimits()
	}
	e := &Engine{
		transactions: transactions,
		records:      records,
		files:        files,
		limits:       limits,
		logger:       log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type outcome struct {
	attachmentID string
	providerID   *string
	ok           bool
	code         domain.ErrorCode
	message      string
}

// Sync runs one attachment pass for a transaction that already exists at the provider.
// Per-attachment failures end up on the returned result and the stored record; an error is
// returned only when the record could not be read or written, or ctx was cancelled.
func (e *Engine) Sync(ctx context.Context, client provider.Provider, req SyncRequest) (*SyncResult, error) {
	ctx = logger.WithTeamID(ctx, req.TeamID)
	ctx = logger.WithTransactionID(ctx, req.TransactionID)

	limits := e.limits.For(req.Provider)
	mapping, err := e.currentMapping(ctx, req)
	if err != nil {
		return nil, err
	}
	result := &SyncResult{}

	result.DeletedCount = e.deleteRemoved(ctx, client, req, mapping)

	toUpload := make([]string, 0, len(req.NewAttachmentIDs))
	queued := make(map[string]bool, len(req.NewAttachmentIDs))
	for _, id := range req.NewAttachmentIDs {
		if _, synced := mapping[id]; synced || queued[id] {
			continue
		}
		queued[id] = true
		toUpload = append(toUpload, id)
	}

	outcomes, err := e.uploadAll(ctx, client, req, limits, toUpload)
	if err != nil {
		return nil, err
	}

	var failed []outcome
	for _, o := range outcomes {
		if o.ok {
			mapping[o.attachmentID] = o.providerID
			result.UploadedCount++
			continue
		}
		failed = append(failed, o)
	}
	result.FailedCount = len(failed)
	result.UpdatedMapping = mapping

	record := domain.SyncRecord{
		TransactionID:           req.TransactionID,
		TeamID:                  req.TeamID,
		Provider:                req.Provider,
		ProviderTenantID:        req.TenantID,
		ProviderTransactionID:   domain.StringPtr(req.ProviderTransactionID),
		ProviderEntityType:      domain.StringPtr(req.ProviderEntityType),
		SyncType:                req.SyncType,
		Status:                  domain.SyncStatusSynced,
		SyncedAttachmentMapping: domain.CloneMapping(mapping),
	}
	if record.SyncType == "" {
		record.SyncType = domain.SyncTypeAuto
	}
	if len(failed) > 0 {
		record.Status = domain.SyncStatusPartial
		code := string(failed[0].code)
		message := failed[0].message
		if message == "" {
			message = fmt.Sprintf("%d attachment(s) failed to upload", len(failed))
		}
		record.ErrorCode = &code
		record.ErrorMessage = &message
	}
	result.Status = record.Status

	// uploads already happened; the record is written even if the caller gave up meanwhile
	storeCtx := context.WithoutCancel(ctx)
	err = retry.Do(storeCtx, func() error {
		return e.records.Upsert(storeCtx, record)
	}, append([]retry.Option{retry.WithMaxAttempts(3), retry.WithBaseDelay(500 * time.Millisecond)}, e.retryOpts...)...)
	if err != nil {
		e.logger.Error(ctx, "Failed to store attachment mapping",
			"provider", req.Provider,
			"uploaded", result.UploadedCount,
			"error", err,
		)
		return nil, fmt.Errorf("store sync record: %w", err)
	}

	e.logger.Info(ctx, "Attachments synced",
		"provider", req.Provider,
		"uploaded", result.UploadedCount,
		"deleted", result.DeletedCount,
		"failed", result.FailedCount,
		"status", result.Status,
	)

	e.addHistoryNote(ctx, client, req, result)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	return result, nil
}

// currentMapping starts from the stored record when it still points at the same provider
// transaction, so a redelivered job does not upload what an earlier delivery already did.
// The payload mapping is only used when no such record exists.
func (e *Engine) currentMapping(ctx context.Context, req SyncRequest) (map[string]*string, error) {
	records, err := e.records.Get(ctx, req.TeamID, []string{req.TransactionID}, req.Provider)
	if err != nil {
		return nil, fmt.Errorf("load sync record: %w", err)
	}

	for _, r := range records {
		if r.TransactionID != req.TransactionID {
			continue
		}
		if r.HasProviderTransaction() && *r.ProviderTransactionID != req.ProviderTransactionID {
			break
		}
		return domain.CloneMapping(r.SyncedAttachmentMapping), nil
	}

	return domain.CloneMapping(req.ExistingMapping), nil
}

func (e *Engine) deleteRemoved(ctx context.Context, client provider.Provider, req SyncRequest, mapping map[string]*string) int {
	deleted := 0

	for _, removed := range req.RemovedAttachments {
		// the key goes away whatever the provider says; a stale provider file is harmless
		delete(mapping, removed.AttachmentID)

		if removed.ProviderAttachmentID == nil {
			deleted++
			continue
		}

		res, err := client.DeleteAttachment(ctx, provider.DeleteAttachmentParams{
			TenantID:              req.TenantID,
			ProviderTransactionID: req.ProviderTransactionID,
			ProviderEntityType:    req.ProviderEntityType,
			AttachmentID:          *removed.ProviderAttachmentID,
		})
		switch {
		case errors.Is(err, provider.ErrNotSupported):
			e.logger.Info(ctx, "Provider cannot delete attachments, leaving file in place",
				"provider", req.Provider,
				"attachment_id", removed.AttachmentID,
			)
		case err != nil:
			e.logger.Warn(ctx, "Failed to delete attachment at provider",
				"provider", req.Provider,
				"attachment_id", removed.AttachmentID,
				"error", err,
			)
		case res == nil || !res.Success:
			reason := ""
			if res != nil {
				reason = res.Error
			}
			e.logger.Warn(ctx, "Provider rejected attachment delete",
				"provider", req.Provider,
				"attachment_id", removed.AttachmentID,
				"reason", reason,
			)
		default:
			deleted++
		}
	}

	return deleted
}

func (e *Engine) uploadAll(ctx context.Context, client provider.Provider, req SyncRequest, limits provider.Limits, ids []string) ([]outcome, error) {
	outcomes := make([]outcome, len(ids))
	if len(ids) == 0 {
		return outcomes, nil
	}

	found, err := e.transactions.GetAttachments(ctx, req.TeamID, req.TransactionID, ids)
	if err != nil && !errors.Is(err, domain.ErrTransactionMissing) {
		return nil, fmt.Errorf("load attachments: %w", err)
	}

	byID := make(map[string]domain.Attachment, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}

	var (
		pending []domain.Attachment
		slots   []int
	)
	for i, id := range ids {
		a, ok := byID[id]
		if !ok || !a.Eligible() {
			outcomes[i] = outcome{
				attachmentID: id,
				code:         domain.ErrorCodeAttachmentNotFound,
				message:      "Attachment not found",
			}
			continue
		}
		pending = append(pending, a)
		slots = append(slots, i)
	}

	results := executor.Run(ctx, pending, func(ctx context.Context, a domain.Attachment) (outcome, error) {
		return e.upload(ctx, client, req, limits, a), nil
	}, executor.Options{
		MaxConcurrent: limits.MaxConcurrent,
		CallDelay:     limits.CallDelay,
	})

	for j, r := range results {
		o := r.Value
		if r.Err != nil {
			o = outcome{
				attachmentID: pending[j].ID,
				code:         domain.ErrorCodeAttachmentUploadFailed,
				message:      r.Err.Error(),
			}
		}
		outcomes[slots[j]] = o
	}

	return outcomes, nil
}

func (e *Engine) upload(ctx context.Context, client provider.Provider, req SyncRequest, limits provider.Limits, a domain.Attachment) outcome {
	fail := func(code domain.ErrorCode, message string) outcome {
		e.logger.Warn(ctx, "Attachment not uploaded",
			"provider", req.Provider,
			"attachment_id", a.ID,
			"error_code", code,
			"reason", message,
		)
		return outcome{attachmentID: a.ID, code: code, message: message}
	}

	content, err := e.files.Download(ctx, a.Path)
	if err != nil {
		return fail(domain.ErrorCodeAttachmentDownloadFailed, fmt.Sprintf("Download failed: %v", err))
	}

	resolution := mimetype.Resolve(a.MimeType, a.Name, content, string(req.Provider), limits)
	if !resolution.OK() {
		return fail(domain.ErrorCodeAttachmentUnsupportedType, resolution.Err.Error())
	}

	if limits.MaxAttachmentBytes > 0 && int64(len(content)) > limits.MaxAttachmentBytes {
		return fail(domain.ErrorCodeAttachmentTooLarge, fmt.Sprintf("File size (%.2fMB) exceeds %s limit (%.0fMB)",
			float64(len(content))/(1024*1024), req.Provider, float64(limits.MaxAttachmentBytes)/(1024*1024)))
	}

	params := provider.UploadAttachmentParams{
		TenantID:              req.TenantID,
		TransactionID:         req.TransactionID,
		ProviderTransactionID: req.ProviderTransactionID,
		ProviderEntityType:    req.ProviderEntityType,
		FileName:              mimetype.EnsureFileExtension(a.Name, resolution.MimeType),
		MimeType:              resolution.MimeType,
		Content:               content,
	}

	var uploaded *provider.AttachmentResult
	opts := []retry.Option{
		retry.WithMaxAttempts(UploadAttempts),
		retry.WithMaxDelay(0),
		retry.WithBaseDelayFunc(uploadRetryBase),
		retry.WithRetryIf(retryableUpload),
		retry.WithOnRetry(func(attempt int, err error, delay time.Duration) {
			e.logger.Warn(ctx, "Attachment upload failed, retrying",
				"provider", req.Provider,
				"attachment_id", a.ID,
				"attempt", attempt,
				"delay", delay,
				"error", err,
			)
		}),
	}

	err = retry.Do(ctx, func() error {
		res, err := client.UploadAttachment(ctx, params)
		if err != nil {
			return err
		}
		if !res.Success {
			msg := res.Error
			if msg == "" {
				msg = "upload rejected"
			}
			return errors.New(msg)
		}
		uploaded = res
		return nil
	}, append(opts, e.retryOpts...)...)
	if err != nil {
		return fail(domain.ErrorCodeAttachmentUploadFailed, fmt.Sprintf("Upload failed: %v", err))
	}

	e.logger.Debug(ctx, "Attachment uploaded",
		"provider", req.Provider,
		"attachment_id", a.ID,
		"provider_attachment_id", uploaded.AttachmentID,
		"mime_type", resolution.MimeType,
		"mime_source", resolution.Source,
	)

	return outcome{attachmentID: a.ID, providerID: domain.StringPtr(uploaded.AttachmentID), ok: true}
}

func uploadRetryBase(err error) time.Duration {
	if provider.IsRateLimited(err) {
		return RateLimitRetryDelay
	}
	return UploadRetryDelay
}

func retryableUpload(err error) bool {
	var perr *provider.Error
	if errors.As(err, &perr) {
		switch perr.Kind {
		case provider.KindValidation, provider.KindNotFound, provider.KindAuth:
			return false
		}
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (e *Engine) addHistoryNote(ctx context.Context, client provider.Provider, req SyncRequest, result *SyncResult) {
	noter, ok := client.(provider.HistoryNoter)
	if !ok || result.UploadedCount+result.DeletedCount+result.FailedCount == 0 {
		return
	}

	note := fmt.Sprintf("Attachments synced: %d uploaded, %d removed", result.UploadedCount, result.DeletedCount)
	if result.FailedCount > 0 {
		note += fmt.Sprintf(", %d failed", result.FailedCount)
	}

	err := noter.AddTransactionHistoryNote(ctx, provider.HistoryNoteParams{
		TenantID:              req.TenantID,
		ProviderTransactionID: req.ProviderTransactionID,
		ProviderEntityType:    req.ProviderEntityType,
		Note:                  note,
	})
	if err != nil {
		e.logger.Warn(ctx, "Failed to add history note",
			"provider", req.Provider,
			"error", err,
		)
	}
}
