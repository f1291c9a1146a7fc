// Package provider defines the contract the sync engine needs from an accounting provider
// client. Wire clients for Xero, QuickBooks and Fortnox live outside this module and are
// plugged in through a Registry.
package provider

import (
	"context"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
)

type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	Currency string `json:"currency,omitempty"`
	Type     string `json:"type,omitempty"`
}

type SyncTransactionsParams struct {
	TenantID        string
	TargetAccountID string
	Transactions    []domain.MappedTransaction
}

type TransactionResult struct {
	TransactionID         string
	ProviderTransactionID string
	ProviderEntityType    string
	Success               bool
	Error                 string
}

type SyncResult struct {
	SyncedCount int
	FailedCount int
	Results     []TransactionResult
}

type UploadAttachmentParams struct {
	TenantID              string
	TransactionID         string
	ProviderTransactionID string
	ProviderEntityType    string
	FileName              string
	MimeType              string
	Content               []byte
}

type AttachmentResult struct {
	Success      bool
	AttachmentID string
	Error        string
}

type DeleteAttachmentParams struct {
	TenantID              string
	ProviderTransactionID string
	ProviderEntityType    string
	AttachmentID          string
}

type DeleteAttachmentResult struct {
	Success bool
	Error   string
}

type HistoryNoteParams struct {
	TenantID              string
	ProviderTransactionID string
	ProviderEntityType    string
	Note                  string
}

type TokenSet struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type Provider interface {
	ID() domain.ProviderID
	GetAccounts(ctx context.Context, tenantID string) ([]Account, error)
	SyncTransactions(ctx context.Context, params SyncTransactionsParams) (*SyncResult, error)
	UploadAttachment(ctx context.Context, params UploadAttachmentParams) (*AttachmentResult, error)
	// DeleteAttachment returns ErrNotSupported when the provider has no delete endpoint.
	DeleteAttachment(ctx context.Context, params DeleteAttachmentParams) (*DeleteAttachmentResult, error)
	IsTokenExpired(expiresAt time.Time) bool
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenSet, error)
}

// HistoryNoter is implemented by providers that can attach a free-text history note to
// a provider-side transaction.
type HistoryNoter interface {
	AddTransactionHistoryNote(ctx context.Context, params HistoryNoteParams) error
}

// InitConfig is what a Factory needs to build a client for one team.
type InitConfig struct {
	TeamID       string
	TenantID     string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type Factory func(cfg InitConfig) (Provider, error)

// TokenExpiresSoon is the shared expiry check: a token counts as expired five minutes
// before its actual expiry.
func TokenExpiresSoon(expiresAt time.Time, now time.Time) bool {
	if expiresAt.IsZero() {
		return true
	}
	return !now.Add(5 * time.Minute).Before(expiresAt)
}
