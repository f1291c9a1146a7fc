package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProviderID string

const (
	ProviderXero       ProviderID = "xero"
	ProviderQuickBooks ProviderID = "quickbooks"
	ProviderFortnox    ProviderID = "fortnox"
	ProviderSandbox    ProviderID = "sandbox"
)

type SyncStatus string

const (
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusPartial SyncStatus = "partial"
	SyncStatusFailed  SyncStatus = "failed"
)

func (s SyncStatus) Valid() bool {
	switch s {
	case SyncStatusSynced, SyncStatusPartial, SyncStatusFailed:
		return true
	}
	return false
}

type SyncType string

const (
	SyncTypeManual SyncType = "manual"
	SyncTypeAuto   SyncType = "auto"
)

// SyncRecord is the reconciliation state of one transaction at one provider.
// (TransactionID, Provider) is the idempotency key.
type SyncRecord struct {
	TransactionID           string             `json:"transaction_id"`
	TeamID                  string             `json:"team_id"`
	Provider                ProviderID         `json:"provider"`
	ProviderTenantID        string             `json:"provider_tenant_id"`
	ProviderTransactionID   *string            `json:"provider_transaction_id,omitempty"`
	ProviderEntityType      *string            `json:"provider_entity_type,omitempty"`
	SyncType                SyncType           `json:"sync_type"`
	Status                  SyncStatus         `json:"status"`
	ErrorCode               *string            `json:"error_code,omitempty"`
	ErrorMessage            *string            `json:"error_message,omitempty"`
	SyncedAttachmentMapping map[string]*string `json:"synced_attachment_mapping"`
	SyncedAt                time.Time          `json:"synced_at"`
	CreatedAt               time.Time          `json:"created_at"`
}

// HasProviderTransaction reports whether the provider-side voucher exists.
func (r SyncRecord) HasProviderTransaction() bool {
	return r.ProviderTransactionID != nil && *r.ProviderTransactionID != ""
}

// Clone returns a copy that shares no mutable state with r.
func (r SyncRecord) Clone() SyncRecord {
	out := r
	out.ProviderTransactionID = cloneString(r.ProviderTransactionID)
	out.ProviderEntityType = cloneString(r.ProviderEntityType)
	out.ErrorCode = cloneString(r.ErrorCode)
	out.ErrorMessage = cloneString(r.ErrorMessage)
	out.SyncedAttachmentMapping = CloneMapping(r.SyncedAttachmentMapping)
	return out
}

func CloneMapping(m map[string]*string) map[string]*string {
	out := make(map[string]*string, len(m))
	for k, v := range m {
		out[k] = cloneString(v)
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr returns nil for the empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type Attachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// Eligible reports whether the attachment has enough metadata to be synced.
func (a Attachment) Eligible() bool {
	return a.Name != "" && a.Path != ""
}

type Transaction struct {
	ID               string           `json:"id"`
	TeamID           string           `json:"team_id"`
	Date             time.Time        `json:"date"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Reference        string           `json:"reference"`
	Amount           decimal.Decimal  `json:"amount"`
	Currency         string           `json:"currency"`
	CounterpartyName string           `json:"counterparty_name"`
	CategorySlug     string           `json:"category_slug"`
	CategoryTaxRate  *decimal.Decimal `json:"category_tax_rate,omitempty"`
	CategoryTaxType  string           `json:"category_tax_type"`
	TaxAmount        *decimal.Decimal `json:"tax_amount,omitempty"`
	TaxRate          *decimal.Decimal `json:"tax_rate,omitempty"`
	TaxType          string           `json:"tax_type"`
	Note             string           `json:"note"`
	Attachments      []Attachment     `json:"attachments"`
}

// EligibleAttachments returns the attachments that can be synced, in order.
func (t Transaction) EligibleAttachments() []Attachment {
	var out []Attachment
	for _, a := range t.Attachments {
		if a.Eligible() {
			out = append(out, a)
		}
	}
	return out
}

type MappedAttachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// MappedTransaction is the provider-agnostic shape handed to a provider.
type MappedTransaction struct {
	ID               string             `json:"id"`
	Date             time.Time          `json:"date"`
	Amount           decimal.Decimal    `json:"amount"`
	Currency         string             `json:"currency"`
	Description      string             `json:"description"`
	Reference        string             `json:"reference"`
	CounterpartyName string             `json:"counterparty_name,omitempty"`
	Category         string             `json:"category,omitempty"`
	TaxAmount        *decimal.Decimal   `json:"tax_amount,omitempty"`
	TaxRate          *decimal.Decimal   `json:"tax_rate,omitempty"`
	TaxType          string             `json:"tax_type,omitempty"`
	Note             string             `json:"note,omitempty"`
	Attachments      []MappedAttachment `json:"attachments"`
}

type RemovedAttachment struct {
	AttachmentID         string  `json:"attachment_id"`
	ProviderAttachmentID *string `json:"provider_attachment_id"`
}

type AttachmentSyncTarget struct {
	TransactionID         string              `json:"transaction_id"`
	ProviderTransactionID string              `json:"provider_transaction_id"`
	ProviderEntityType    string              `json:"provider_entity_type,omitempty"`
	NewAttachmentIDs      []string            `json:"new_attachment_ids"`
	RemovedAttachments    []RemovedAttachment `json:"removed_attachments"`
	ExistingMapping       map[string]*string  `json:"existing_mapping"`
}

type CategorizationResult struct {
	ToExport          []string               `json:"to_export"`
	ToSyncAttachments []AttachmentSyncTarget `json:"to_sync_attachments"`
	AlreadyComplete   []string               `json:"already_complete"`
}

type Credentials struct {
	TeamID          string     `json:"team_id"`
	Provider        ProviderID `json:"provider"`
	TenantID        string     `json:"tenant_id"`
	TargetAccountID string     `json:"target_account_id"`
	AccessToken     string     `json:"-"`
	RefreshToken    string     `json:"-"`
	ExpiresAt       time.Time  `json:"expires_at"`
}

type Connection struct {
	TeamID   string     `json:"team_id"`
	Provider ProviderID `json:"provider"`
}
