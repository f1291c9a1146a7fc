package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
)

type recordKey struct {
	transactionID string
	provider      domain.ProviderID
}

type credentialKey struct {
	teamID   string
	provider domain.ProviderID
}

type MemoryStore struct {
	transactions map[string][]domain.Transaction
	records      map[recordKey]domain.SyncRecord
	credentials  map[credentialKey]domain.Credentials
	mu           sync.RWMutex
	now          func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[string][]domain.Transaction),
		records:      make(map[recordKey]domain.SyncRecord),
		credentials:  make(map[credentialKey]domain.Credentials),
		now:          time.Now,
	}
}

// PutTransaction inserts or replaces a team transaction.
func (s *MemoryStore) PutTransaction(ctx context.Context, tx domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.transactions[tx.TeamID]
	for i := range list {
		if list[i].ID == tx.ID {
			list[i] = tx
			return nil
		}
	}
	s.transactions[tx.TeamID] = append(list, tx)

	return nil
}

// RemoveAttachment deletes an attachment from a transaction, as the dashboard would.
func (s *MemoryStore) RemoveAttachment(ctx context.Context, teamID, transactionID, attachmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.transactions[teamID]
	for i := range list {
		if list[i].ID != transactionID {
			continue
		}
		kept := list[i].Attachments[:0:0]
		for _, a := range list[i].Attachments {
			if a.ID != attachmentID {
				kept = append(kept, a)
			}
		}
		list[i].Attachments = kept
		return nil
	}

	return domain.ErrTransactionMissing
}

func (s *MemoryStore) ListForSync(ctx context.Context, teamID string, transactionIDs []string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var wanted map[string]bool
	if len(transactionIDs) > 0 {
		wanted = make(map[string]bool, len(transactionIDs))
		for _, id := range transactionIDs {
			wanted[id] = true
		}
	}

	out := []domain.Transaction{}
	for _, tx := range s.transactions[teamID] {
		if wanted != nil && !wanted[tx.ID] {
			continue
		}
		cp := tx
		cp.Attachments = append([]domain.Attachment(nil), tx.Attachments...)
		out = append(out, cp)
	}

	return out, nil
}

func (s *MemoryStore) GetAttachments(ctx context.Context, teamID, transactionID string, attachmentIDs []string) ([]domain.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tx := range s.transactions[teamID] {
		if tx.ID != transactionID {
			continue
		}

		byID := make(map[string]domain.Attachment, len(tx.Attachments))
		for _, a := range tx.Attachments {
			byID[a.ID] = a
		}

		out := []domain.Attachment{}
		for _, id := range attachmentIDs {
			if a, ok := byID[id]; ok {
				out = append(out, a)
			}
		}
		return out, nil
	}

	return nil, domain.ErrTransactionMissing
}

func (s *MemoryStore) Get(ctx context.Context, teamID string, transactionIDs []string, provider domain.ProviderID) ([]domain.SyncRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.SyncRecord{}
	for _, id := range transactionIDs {
		record, exists := s.records[recordKey{transactionID: id, provider: provider}]
		if !exists || record.TeamID != teamID {
			continue
		}
		out = append(out, record.Clone())
	}

	return out, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, record domain.SyncRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := recordKey{transactionID: record.TransactionID, provider: record.Provider}
	now := s.now()

	next := record.Clone()
	if next.SyncedAttachmentMapping == nil {
		next.SyncedAttachmentMapping = map[string]*string{}
	}
	next.SyncedAt = now
	next.CreatedAt = now

	if existing, exists := s.records[key]; exists {
		next.CreatedAt = existing.CreatedAt
		// a provider-side identity is never cleared once set
		if next.ProviderTransactionID == nil {
			next.ProviderTransactionID = existing.ProviderTransactionID
		}
		if next.ProviderEntityType == nil {
			next.ProviderEntityType = existing.ProviderEntityType
		}
	}

	s.records[key] = next

	return nil
}

func (s *MemoryStore) List(ctx context.Context, teamID string, provider domain.ProviderID, status *domain.SyncStatus) ([]domain.SyncRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.SyncRecord{}
	for key, record := range s.records {
		if key.provider != provider || record.TeamID != teamID {
			continue
		}
		if status != nil && record.Status != *status {
			continue
		}
		out = append(out, record.Clone())
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].TransactionID < out[j].TransactionID
	})

	return out, nil
}

func (s *MemoryStore) GetCredentials(ctx context.Context, teamID string, provider domain.ProviderID) (*domain.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	creds, exists := s.credentials[credentialKey{teamID: teamID, provider: provider}]
	if !exists {
		return nil, domain.ErrMissingCredentials
	}

	return &creds, nil
}

func (s *MemoryStore) SaveCredentials(ctx context.Context, creds domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credentials[credentialKey{teamID: creds.TeamID, provider: creds.Provider}] = creds

	return nil
}

func (s *MemoryStore) ListConnections(ctx context.Context) ([]domain.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Connection, 0, len(s.credentials))
	for key := range s.credentials {
		out = append(out, domain.Connection{TeamID: key.teamID, Provider: key.provider})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TeamID != out[j].TeamID {
			return out[i].TeamID < out[j].TeamID
		}
		return out[i].Provider < out[j].Provider
	})

	return out, nil
}
