// Package categorizer decides, for every candidate transaction of a reconciliation pass,
// whether it needs a full export, an attachment-only sync, or nothing.
//
// The partition is recomputed from the stored sync records on every pass and never
// persisted, which is what makes a re-run after a crash pick up exactly the remaining work.
package categorizer

import (
	"sort"

	"github.com/grachmannico95/accounting-sync/internal/domain"
)

// Categorize partitions transactions using their existing sync records, keyed by
// transaction id. It performs no I/O and returns the same result for the same input.
func Categorize(transactions []domain.Transaction, records map[string]domain.SyncRecord) domain.CategorizationResult {
	result := domain.CategorizationResult{
		ToExport:          []string{},
		ToSyncAttachments: []domain.AttachmentSyncTarget{},
		AlreadyComplete:   []string{},
	}

	for _, tx := range transactions {
		record, ok := records[tx.ID]

		// a failed export is always retried in full; its partial mapping is discarded
		if !ok || record.Status == domain.SyncStatusFailed {
			result.ToExport = append(result.ToExport, tx.ID)
			continue
		}

		newIDs, removed := Diff(tx, record.SyncedAttachmentMapping)

		needsSync := len(newIDs) > 0 || len(removed) > 0 || record.Status == domain.SyncStatusPartial
		if !needsSync {
			result.AlreadyComplete = append(result.AlreadyComplete, tx.ID)
			continue
		}

		// drift without a provider-side voucher to attach to needs a fresh export
		if !record.HasProviderTransaction() {
			result.ToExport = append(result.ToExport, tx.ID)
			continue
		}

		target := domain.AttachmentSyncTarget{
			TransactionID:         tx.ID,
			ProviderTransactionID: *record.ProviderTransactionID,
			NewAttachmentIDs:      newIDs,
			RemovedAttachments:    removed,
			ExistingMapping:       domain.CloneMapping(record.SyncedAttachmentMapping),
		}
		if record.ProviderEntityType != nil {
			target.ProviderEntityType = *record.ProviderEntityType
		}
		result.ToSyncAttachments = append(result.ToSyncAttachments, target)
	}

	return result
}

// Diff compares the transaction's eligible attachments with a synced mapping. New ids keep
// the transaction's attachment order; removed ones are sorted by id.
func Diff(tx domain.Transaction, mapping map[string]*string) ([]string, []domain.RemovedAttachment) {
	current := make(map[string]bool, len(tx.Attachments))
	newIDs := []string{}

	for _, a := range tx.EligibleAttachments() {
		if current[a.ID] {
			continue
		}
		current[a.ID] = true
		if _, synced := mapping[a.ID]; !synced {
			newIDs = append(newIDs, a.ID)
		}
	}

	removed := []domain.RemovedAttachment{}
	for id, providerID := range mapping {
		if current[id] {
			continue
		}
		ra := domain.RemovedAttachment{AttachmentID: id}
		if providerID != nil {
			v := *providerID
			ra.ProviderAttachmentID = &v
		}
		removed = append(removed, ra)
	}
	sort.Slice(removed, func(i, j int) bool {
		return removed[i].AttachmentID < removed[j].AttachmentID
	})

	return newIDs, removed
}

// RecordsByTransaction indexes records by transaction id.
func RecordsByTransaction(records []domain.SyncRecord) map[string]domain.SyncRecord {
	out := make(map[string]domain.SyncRecord, len(records))
	for _, r := range records {
		out[r.TransactionID] = r
	}
	return out
}
