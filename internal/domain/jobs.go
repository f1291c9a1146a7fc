package domain

const (
	QueueAccounting = "accounting"

	JobSyncTransactions = "sync-accounting-transactions"
	JobSyncAttachments  = "sync-accounting-attachments"
)

// ReconcileRequest starts a reconciliation pass for one team and provider. An empty
// TransactionIDs list means every candidate transaction of the team.
type ReconcileRequest struct {
	TeamID         string     `json:"team_id"`
	Provider       ProviderID `json:"provider"`
	TransactionIDs []string   `json:"transaction_ids,omitempty"`
	SyncType       SyncType   `json:"sync_type"`
}

type ReconcileSummary struct {
	ExportedCount          int `json:"exported_count"`
	AttachmentsSyncedCount int `json:"attachments_synced_count"`
	SkippedCount           int `json:"skipped_count"`
	FailedCount            int `json:"failed_count"`
}

// AttachmentSyncRequest is the payload of an attachment-sync job for one transaction that
// already exists at the provider.
type AttachmentSyncRequest struct {
	TeamID                string              `json:"team_id"`
	Provider              ProviderID          `json:"provider"`
	TenantID              string              `json:"tenant_id"`
	TransactionID         string              `json:"transaction_id"`
	ProviderTransactionID string              `json:"provider_transaction_id"`
	ProviderEntityType    string              `json:"provider_entity_type,omitempty"`
	SyncType              SyncType            `json:"sync_type"`
	NewAttachmentIDs      []string            `json:"new_attachment_ids"`
	RemovedAttachments    []RemovedAttachment `json:"removed_attachments"`
	ExistingMapping       map[string]*string  `json:"existing_mapping"`
}

type AttachmentSyncResult struct {
	UploadedCount  int                `json:"uploaded_count"`
	DeletedCount   int                `json:"deleted_count"`
	FailedCount    int                `json:"failed_count"`
	UpdatedMapping map[string]*string `json:"updated_mapping"`
	Status         SyncStatus         `json:"status"`
}
