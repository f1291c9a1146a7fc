package storage

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postgresTableCounter atomic.Uint64

func postgresIntegrationDSN(t *testing.T) string {
	t.Helper()
	dsn := strings.TrimSpace(os.Getenv("ACCOUNTING_SYNC_TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("ACCOUNTING_SYNC_TEST_POSTGRES_DSN is not set")
	}
	return dsn
}

func newPostgresTestStore(t *testing.T) *PostgresSyncStore {
	t.Helper()

	store, err := NewPostgresSyncStore(postgresIntegrationDSN(t))
	require.NoError(t, err)
	store.tableName = fmt.Sprintf("sync_records_test_%d_%d", time.Now().UnixNano(), postgresTableCounter.Add(1))

	t.Cleanup(func() {
		if store.db != nil {
			_, _ = store.db.Exec("DROP TABLE IF EXISTS " + pq.QuoteIdentifier(store.tableName))
		}
		_ = store.Close()
	})
	return store
}

func TestNewPostgresSyncStore_EmptyDSN(t *testing.T) {
	_, err := NewPostgresSyncStore("  ")
	assert.ErrorIs(t, err, ErrInvalidDSN)
}

func TestAttachmentMappingEncoding(t *testing.T) {
	data, err := encodeMapping(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))

	data, err = encodeMapping(map[string]*string{"a1": domain.StringPtr("f-1"), "a2": nil})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a1":"f-1","a2":null}`, string(data))

	decoded, err := decodeMapping(data)
	require.NoError(t, err)
	require.Contains(t, decoded, "a2")
	assert.Nil(t, decoded["a2"])
	assert.Equal(t, "f-1", *decoded["a1"])

	decoded, err = decodeMapping([]byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, decoded)

	_, err = decodeMapping([]byte("[1"))
	assert.Error(t, err)
}

func TestPostgresSyncStore_UpsertAndGet(t *testing.T) {
	store := newPostgresTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, domain.SyncRecord{
		TransactionID:         "tx-1",
		TeamID:                "team-1",
		Provider:              domain.ProviderFortnox,
		ProviderTenantID:      "tenant-1",
		ProviderTransactionID: domain.StringPtr("A-1"),
		ProviderEntityType:    domain.StringPtr("voucher"),
		SyncType:              domain.SyncTypeManual,
		Status:                domain.SyncStatusSynced,
	}))

	require.NoError(t, store.Upsert(ctx, domain.SyncRecord{
		TransactionID:           "tx-1",
		TeamID:                  "team-1",
		Provider:                domain.ProviderFortnox,
		ProviderTenantID:        "tenant-1",
		SyncType:                domain.SyncTypeAuto,
		Status:                  domain.SyncStatusPartial,
		ErrorCode:               domain.StringPtr(string(domain.ErrorCodeAttachmentTooLarge)),
		SyncedAttachmentMapping: map[string]*string{"a1": domain.StringPtr("f-1"), "a2": nil},
	}))

	records, err := store.Get(ctx, "team-1", []string{"tx-1", "tx-missing"}, domain.ProviderFortnox)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, domain.SyncStatusPartial, r.Status)
	assert.Equal(t, domain.SyncTypeAuto, r.SyncType)
	require.NotNil(t, r.ProviderTransactionID)
	assert.Equal(t, "A-1", *r.ProviderTransactionID)
	require.NotNil(t, r.ProviderEntityType)
	assert.Equal(t, "voucher", *r.ProviderEntityType)
	require.NotNil(t, r.ErrorCode)
	assert.Equal(t, string(domain.ErrorCodeAttachmentTooLarge), *r.ErrorCode)
	assert.Nil(t, r.ErrorMessage)
	assert.Equal(t, "f-1", *r.SyncedAttachmentMapping["a1"])
	assert.Nil(t, r.SyncedAttachmentMapping["a2"])
	assert.False(t, r.CreatedAt.After(r.SyncedAt))

	other, err := store.Get(ctx, "team-1", []string{"tx-1"}, domain.ProviderXero)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPostgresSyncStore_ListWithStatus(t *testing.T) {
	store := newPostgresTestStore(t)
	ctx := context.Background()

	for id, status := range map[string]domain.SyncStatus{
		"tx-1": domain.SyncStatusFailed,
		"tx-2": domain.SyncStatusSynced,
		"tx-3": domain.SyncStatusFailed,
	} {
		require.NoError(t, store.Upsert(ctx, domain.SyncRecord{
			TransactionID:    id,
			TeamID:           "team-1",
			Provider:         domain.ProviderXero,
			ProviderTenantID: "tenant-1",
			SyncType:         domain.SyncTypeAuto,
			Status:           status,
		}))
	}

	all, err := store.List(ctx, "team-1", domain.ProviderXero, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	failed := domain.SyncStatusFailed
	onlyFailed, err := store.List(ctx, "team-1", domain.ProviderXero, &failed)
	require.NoError(t, err)
	require.Len(t, onlyFailed, 2)
	assert.Equal(t, "tx-1", onlyFailed[0].TransactionID)
	assert.Equal(t, "tx-3", onlyFailed[1].TransactionID)
}
