package domain

import "context"

type SyncRecordRepository interface {
	// Get returns the records that exist for the given transactions; missing ones are omitted.
	Get(ctx context.Context, teamID string, transactionIDs []string, provider ProviderID) ([]SyncRecord, error)
	// Upsert writes the record keyed on (TransactionID, Provider).
	Upsert(ctx context.Context, record SyncRecord) error
	List(ctx context.Context, teamID string, provider ProviderID, status *SyncStatus) ([]SyncRecord, error)
}

type TransactionRepository interface {
	// ListForSync returns the team's candidate transactions; an empty id list means all of them.
	ListForSync(ctx context.Context, teamID string, transactionIDs []string) ([]Transaction, error)
	GetAttachments(ctx context.Context, teamID, transactionID string, attachmentIDs []string) ([]Attachment, error)
}

type CredentialRepository interface {
	GetCredentials(ctx context.Context, teamID string, provider ProviderID) (*Credentials, error)
	SaveCredentials(ctx context.Context, creds Credentials) error
	ListConnections(ctx context.Context) ([]Connection, error)
}
