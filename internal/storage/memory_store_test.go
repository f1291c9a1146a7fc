package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTransaction(t *testing.T, store *MemoryStore, teamID, id string, attachments ...domain.Attachment) {
	t.Helper()
	require.NoError(t, store.PutTransaction(context.Background(), domain.Transaction{
		ID:          id,
		TeamID:      teamID,
		Name:        "Transaction " + id,
		Attachments: attachments,
	}))
}

func TestMemoryStore_ListForSync(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seedTransaction(t, store, "team-1", "tx-1")
	seedTransaction(t, store, "team-1", "tx-2")
	seedTransaction(t, store, "team-2", "tx-3")

	all, err := store.ListForSync(ctx, "team-1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	some, err := store.ListForSync(ctx, "team-1", []string{"tx-2", "tx-3"})
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, "tx-2", some[0].ID)

	none, err := store.ListForSync(ctx, "team-9", nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryStore_PutTransaction_Replaces(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seedTransaction(t, store, "team-1", "tx-1")
	require.NoError(t, store.PutTransaction(ctx, domain.Transaction{ID: "tx-1", TeamID: "team-1", Name: "Renamed"}))

	list, err := store.ListForSync(ctx, "team-1", nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Renamed", list[0].Name)
}

func TestMemoryStore_GetAttachments(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seedTransaction(t, store, "team-1", "tx-1",
		domain.Attachment{ID: "a1", Name: "one.pdf", Path: "team-1/one.pdf"},
		domain.Attachment{ID: "a2", Name: "two.pdf", Path: "team-1/two.pdf"},
	)

	atts, err := store.GetAttachments(ctx, "team-1", "tx-1", []string{"a2", "missing", "a1"})
	require.NoError(t, err)
	require.Len(t, atts, 2)
	assert.Equal(t, "a2", atts[0].ID)
	assert.Equal(t, "a1", atts[1].ID)

	_, err = store.GetAttachments(ctx, "team-1", "tx-404", []string{"a1"})
	assert.ErrorIs(t, err, domain.ErrTransactionMissing)
}

func TestMemoryStore_RemoveAttachment(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seedTransaction(t, store, "team-1", "tx-1",
		domain.Attachment{ID: "a1", Name: "one.pdf", Path: "p1"},
		domain.Attachment{ID: "a2", Name: "two.pdf", Path: "p2"},
	)

	require.NoError(t, store.RemoveAttachment(ctx, "team-1", "tx-1", "a1"))

	list, err := store.ListForSync(ctx, "team-1", []string{"tx-1"})
	require.NoError(t, err)
	require.Len(t, list[0].Attachments, 1)
	assert.Equal(t, "a2", list[0].Attachments[0].ID)

	assert.ErrorIs(t, store.RemoveAttachment(ctx, "team-1", "tx-404", "a1"), domain.ErrTransactionMissing)
}

func TestMemoryStore_Upsert_CreatesAndPreservesIdentity(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return first }

	require.NoError(t, store.Upsert(ctx, domain.SyncRecord{
		TransactionID:         "tx-1",
		TeamID:                "team-1",
		Provider:              domain.ProviderFortnox,
		ProviderTransactionID: domain.StringPtr("A-1"),
		ProviderEntityType:    domain.StringPtr("voucher"),
		Status:                domain.SyncStatusSynced,
	}))

	second := first.Add(time.Hour)
	store.now = func() time.Time { return second }

	require.NoError(t, store.Upsert(ctx, domain.SyncRecord{
		TransactionID: "tx-1",
		TeamID:        "team-1",
		Provider:      domain.ProviderFortnox,
		Status:        domain.SyncStatusPartial,
		ErrorCode:     domain.StringPtr(string(domain.ErrorCodeAttachmentTooLarge)),
		SyncedAttachmentMapping: map[string]*string{
			"a1": domain.StringPtr("f-1"),
		},
	}))

	records, err := store.Get(ctx, "team-1", []string{"tx-1"}, domain.ProviderFortnox)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, domain.SyncStatusPartial, r.Status)
	require.NotNil(t, r.ProviderTransactionID)
	assert.Equal(t, "A-1", *r.ProviderTransactionID)
	require.NotNil(t, r.ProviderEntityType)
	assert.Equal(t, "voucher", *r.ProviderEntityType)
	assert.Equal(t, first, r.CreatedAt)
	assert.Equal(t, second, r.SyncedAt)
	assert.Equal(t, "f-1", *r.SyncedAttachmentMapping["a1"])
}

func TestMemoryStore_Upsert_NilMappingBecomesEmpty(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, domain.SyncRecord{
		TransactionID: "tx-1",
		TeamID:        "team-1",
		Provider:      domain.ProviderXero,
		Status:        domain.SyncStatusFailed,
	}))

	records, err := store.Get(ctx, "team-1", []string{"tx-1"}, domain.ProviderXero)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotNil(t, records[0].SyncedAttachmentMapping)
	assert.Empty(t, records[0].SyncedAttachmentMapping)
}

func TestMemoryStore_Get_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, domain.SyncRecord{
		TransactionID:           "tx-1",
		TeamID:                  "team-1",
		Provider:                domain.ProviderXero,
		Status:                  domain.SyncStatusSynced,
		SyncedAttachmentMapping: map[string]*string{"a1": domain.StringPtr("x-1")},
	}))

	records, err := store.Get(ctx, "team-1", []string{"tx-1"}, domain.ProviderXero)
	require.NoError(t, err)
	records[0].SyncedAttachmentMapping["a2"] = domain.StringPtr("x-2")

	again, err := store.Get(ctx, "team-1", []string{"tx-1"}, domain.ProviderXero)
	require.NoError(t, err)
	assert.Len(t, again[0].SyncedAttachmentMapping, 1)
}

func TestMemoryStore_Get_ScopedByTeamAndProvider(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, domain.SyncRecord{TransactionID: "tx-1", TeamID: "team-1", Provider: domain.ProviderXero, Status: domain.SyncStatusSynced}))

	records, err := store.Get(ctx, "team-2", []string{"tx-1"}, domain.ProviderXero)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = store.Get(ctx, "team-1", []string{"tx-1", "tx-2"}, domain.ProviderFortnox)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMemoryStore_List_WithStatusFilter(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i, status := range []domain.SyncStatus{domain.SyncStatusFailed, domain.SyncStatusSynced, domain.SyncStatusFailed} {
		require.NoError(t, store.Upsert(ctx, domain.SyncRecord{
			TransactionID: fmt.Sprintf("tx-%d", 3-i),
			TeamID:        "team-1",
			Provider:      domain.ProviderQuickBooks,
			Status:        status,
		}))
	}

	all, err := store.List(ctx, "team-1", domain.ProviderQuickBooks, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "tx-1", all[0].TransactionID)
	assert.Equal(t, "tx-3", all[2].TransactionID)

	failed := domain.SyncStatusFailed
	onlyFailed, err := store.List(ctx, "team-1", domain.ProviderQuickBooks, &failed)
	require.NoError(t, err)
	require.Len(t, onlyFailed, 2)
	assert.Equal(t, "tx-1", onlyFailed[0].TransactionID)
	assert.Equal(t, "tx-3", onlyFailed[1].TransactionID)
}

func TestMemoryStore_Credentials(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.GetCredentials(ctx, "team-1", domain.ProviderXero)
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	require.NoError(t, store.SaveCredentials(ctx, domain.Credentials{TeamID: "team-2", Provider: domain.ProviderFortnox, TenantID: "t-2"}))
	require.NoError(t, store.SaveCredentials(ctx, domain.Credentials{TeamID: "team-1", Provider: domain.ProviderXero, TenantID: "t-1"}))
	require.NoError(t, store.SaveCredentials(ctx, domain.Credentials{TeamID: "team-1", Provider: domain.ProviderFortnox, TenantID: "t-3"}))

	creds, err := store.GetCredentials(ctx, "team-1", domain.ProviderXero)
	require.NoError(t, err)
	assert.Equal(t, "t-1", creds.TenantID)

	conns, err := store.ListConnections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Connection{
		{TeamID: "team-1", Provider: domain.ProviderFortnox},
		{TeamID: "team-1", Provider: domain.ProviderXero},
		{TeamID: "team-2", Provider: domain.ProviderFortnox},
	}, conns)
}

func TestMemoryStore_Concurrency(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	done := make(chan bool)
	for i := 0; i < 100; i++ {
		go func(id int) {
			_ = store.Upsert(ctx, domain.SyncRecord{
				TransactionID: fmt.Sprintf("tx-%03d", id),
				TeamID:        "team-1",
				Provider:      domain.ProviderFortnox,
				Status:        domain.SyncStatusSynced,
			})

			_, _ = store.List(ctx, "team-1", domain.ProviderFortnox, nil)

			done <- true
		}(i)
	}

	for i := 0; i < 100; i++ {
		<-done
	}

	records, err := store.List(ctx, "team-1", domain.ProviderFortnox, nil)
	require.NoError(t, err)
	assert.Len(t, records, 100)
}
