package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grachmannico95/accounting-sync/internal/attachments"
	"github.com/grachmannico95/accounting-sync/internal/categorizer"
	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/exporter"
	"github.com/grachmannico95/accounting-sync/internal/jobqueue"
	"github.com/grachmannico95/accounting-sync/internal/provider"
	"github.com/grachmannico95/accounting-sync/internal/ratebudget"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
)

// AccountingService is what the HTTP surface needs from the sync engine.
type AccountingService interface {
	EnqueueSync(ctx context.Context, req domain.ReconcileRequest) (string, error)
	ListRecords(ctx context.Context, teamID string, providerID domain.ProviderID, status *domain.SyncStatus) ([]domain.SyncRecord, error)
}

type ProviderFactory interface {
	New(id domain.ProviderID, cfg provider.InitConfig) (provider.Provider, error)
	Has(id domain.ProviderID) bool
}

// SyncService runs reconciliation and attachment passes. It implements the job consumers'
// Reconciler and AttachmentSyncer as well as AccountingService.
type SyncService struct {
	transactions domain.TransactionRepository
	records      domain.SyncRecordRepository
	credentials  domain.CredentialRepository
	providers    ProviderFactory
	exporter     *exporter.Exporter
	engine       *attachments.Engine
	scheduler    exporter.Scheduler
	logger       *logger.Logger
}

type Deps struct {
	Transactions domain.TransactionRepository
	Records      domain.SyncRecordRepository
	Credentials  domain.CredentialRepository
	Providers    ProviderFactory
	Exporter     *exporter.Exporter
	Engine       *attachments.Engine
	Scheduler    exporter.Scheduler
}

func NewSyncService(deps Deps, log *logger.Logger) *SyncService {
	return &SyncService{
		transactions: deps.Transactions,
		records:      deps.Records,
		credentials:  deps.Credentials,
		providers:    deps.Providers,
		exporter:     deps.Exporter,
		engine:       deps.Engine,
		scheduler:    deps.Scheduler,
		logger:       log,
	}
}

// Reconcile runs one reconciliation pass for a team and provider. Only configuration
// problems (credentials, provider, target account) and storage errors fail the pass;
// per-transaction outcomes are stored on the sync records.
func (s *SyncService) Reconcile(ctx context.Context, req domain.ReconcileRequest) (*domain.ReconcileSummary, error) {
	ctx = logger.WithTeamID(ctx, req.TeamID)
	if req.SyncType == "" {
		req.SyncType = domain.SyncTypeAuto
	}

	client, creds, err := s.initProvider(ctx, req.TeamID, req.Provider)
	if err != nil {
		return nil, err
	}

	targetAccount, err := s.resolveTargetAccount(ctx, client, creds)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactions.ListForSync(ctx, req.TeamID, req.TransactionIDs)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	summary := &domain.ReconcileSummary{}
	if len(transactions) == 0 {
		s.logger.Info(ctx, "No transactions to reconcile", "provider", req.Provider)
		return summary, nil
	}

	ids := make([]string, len(transactions))
	byID := make(map[string]domain.Transaction, len(transactions))
	for i, tx := range transactions {
		ids[i] = tx.ID
		byID[tx.ID] = tx
	}

	records, err := s.records.Get(ctx, req.TeamID, ids, req.Provider)
	if err != nil {
		return nil, fmt.Errorf("load sync records: %w", err)
	}

	plan := categorizer.Categorize(transactions, categorizer.RecordsByTransaction(records))
	summary.SkippedCount = len(plan.AlreadyComplete)

	s.logger.Info(ctx, "Transactions categorized",
		"provider", req.Provider,
		"to_export", len(plan.ToExport),
		"to_sync_attachments", len(plan.ToSyncAttachments),
		"already_complete", len(plan.AlreadyComplete),
	)

	// one index per pass so export fan-out and drift jobs share the provider budget
	index := &ratebudget.JobIndex{}

	if len(plan.ToExport) > 0 {
		toExport := make([]domain.Transaction, 0, len(plan.ToExport))
		for _, id := range plan.ToExport {
			toExport = append(toExport, byID[id])
		}

		result, err := s.exporter.Export(ctx, exporter.ExportRequest{
			TeamID:          req.TeamID,
			Provider:        req.Provider,
			Client:          client,
			TenantID:        creds.TenantID,
			TargetAccountID: targetAccount,
			SyncType:        req.SyncType,
			Transactions:    toExport,
		}, index)
		if result != nil {
			summary.ExportedCount = result.SyncedCount
			summary.FailedCount = result.FailedCount
			summary.AttachmentsSyncedCount = result.AttachmentJobCount
		}
		if err != nil {
			return summary, fmt.Errorf("export transactions: %w", err)
		}
	}

	for _, target := range plan.ToSyncAttachments {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		delay := ratebudget.Delay(req.Provider, index.Next())
		job := jobqueue.Job{
			Name:  domain.JobSyncAttachments,
			Queue: domain.QueueAccounting,
			Payload: domain.AttachmentSyncRequest{
				TeamID:                req.TeamID,
				Provider:              req.Provider,
				TenantID:              creds.TenantID,
				TransactionID:         target.TransactionID,
				ProviderTransactionID: target.ProviderTransactionID,
				ProviderEntityType:    target.ProviderEntityType,
				SyncType:              req.SyncType,
				NewAttachmentIDs:      target.NewAttachmentIDs,
				RemovedAttachments:    target.RemovedAttachments,
				ExistingMapping:       target.ExistingMapping,
			},
		}

		if err := s.scheduler.Schedule(ctx, job, jobqueue.ScheduleOptions{Delay: delay}); err != nil {
			s.logger.Warn(logger.WithTransactionID(ctx, target.TransactionID), "Failed to schedule attachment sync",
				"provider", req.Provider,
				"error", err,
			)
			continue
		}
		summary.AttachmentsSyncedCount++
	}

	s.logger.Info(ctx, "Reconciliation pass finished",
		"provider", req.Provider,
		"exported", summary.ExportedCount,
		"attachment_jobs", summary.AttachmentsSyncedCount,
		"skipped", summary.SkippedCount,
		"failed", summary.FailedCount,
	)

	return summary, nil
}

func (s *SyncService) SyncAttachments(ctx context.Context, req domain.AttachmentSyncRequest) (*domain.AttachmentSyncResult, error) {
	ctx = logger.WithTeamID(ctx, req.TeamID)
	ctx = logger.WithTransactionID(ctx, req.TransactionID)

	client, _, err := s.initProvider(ctx, req.TeamID, req.Provider)
	if err != nil {
		return nil, err
	}

	return s.engine.Sync(ctx, client, req)
}

// EnqueueSync schedules a reconciliation job and returns its id.
func (s *SyncService) EnqueueSync(ctx context.Context, req domain.ReconcileRequest) (string, error) {
	if !s.providers.Has(req.Provider) {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownProvider, req.Provider)
	}
	if _, err := s.credentials.GetCredentials(ctx, req.TeamID, req.Provider); err != nil {
		return "", err
	}
	if req.SyncType == "" {
		req.SyncType = domain.SyncTypeManual
	}

	job := jobqueue.Job{
		ID:      uuid.New().String(),
		Name:    domain.JobSyncTransactions,
		Queue:   domain.QueueAccounting,
		Payload: req,
	}
	if err := s.scheduler.Schedule(ctx, job, jobqueue.ScheduleOptions{}); err != nil {
		return "", fmt.Errorf("schedule reconciliation: %w", err)
	}

	s.logger.Info(logger.WithTeamID(ctx, req.TeamID), "Reconciliation queued",
		"job_id", job.ID,
		"provider", req.Provider,
		"sync_type", req.SyncType,
		"transactions", len(req.TransactionIDs),
	)

	return job.ID, nil
}

func (s *SyncService) ListRecords(ctx context.Context, teamID string, providerID domain.ProviderID, status *domain.SyncStatus) ([]domain.SyncRecord, error) {
	ctx = logger.WithTeamID(ctx, teamID)

	records, err := s.records.List(ctx, teamID, providerID, status)
	if err != nil {
		s.logger.Error(ctx, "Failed to list sync records",
			"provider", providerID,
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug(ctx, "Sync records retrieved",
		"provider", providerID,
		"count", len(records),
	)

	return records, nil
}

// initProvider builds a client from the stored credentials, refreshing and persisting the
// tokens first when they are about to expire.
func (s *SyncService) initProvider(ctx context.Context, teamID string, providerID domain.ProviderID) (provider.Provider, *domain.Credentials, error) {
	creds, err := s.credentials.GetCredentials(ctx, teamID, providerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s credentials: %w", providerID, err)
	}

	client, err := s.providers.New(providerID, initConfig(creds))
	if err != nil {
		return nil, nil, err
	}

	if !client.IsTokenExpired(creds.ExpiresAt) {
		return client, creds, nil
	}

	s.logger.Info(ctx, "Refreshing provider tokens", "provider", providerID)

	tokens, err := client.RefreshTokens(ctx, creds.RefreshToken)
	if err != nil {
		return nil, nil, fmt.Errorf("refresh %s tokens: %w", providerID, err)
	}

	creds.AccessToken = tokens.AccessToken
	creds.RefreshToken = tokens.RefreshToken
	creds.ExpiresAt = tokens.ExpiresAt
	if err := s.credentials.SaveCredentials(ctx, *creds); err != nil {
		return nil, nil, fmt.Errorf("save refreshed credentials: %w", err)
	}

	client, err = s.providers.New(providerID, initConfig(creds))
	if err != nil {
		return nil, nil, err
	}

	return client, creds, nil
}

func (s *SyncService) resolveTargetAccount(ctx context.Context, client provider.Provider, creds *domain.Credentials) (string, error) {
	if creds.TargetAccountID != "" {
		return creds.TargetAccountID, nil
	}

	accounts, err := client.GetAccounts(ctx, creds.TenantID)
	if err != nil {
		return "", fmt.Errorf("list accounts: %w", err)
	}
	if len(accounts) == 0 {
		return "", domain.ErrNoTargetAccount
	}

	s.logger.Info(ctx, "Using first provider account as target",
		"provider", creds.Provider,
		"account_id", accounts[0].ID,
	)

	return accounts[0].ID, nil
}

func initConfig(creds *domain.Credentials) provider.InitConfig {
	return provider.InitConfig{
		TeamID:       creds.TeamID,
		TenantID:     creds.TenantID,
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		ExpiresAt:    creds.ExpiresAt,
	}
}
