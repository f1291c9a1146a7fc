package main

import (
	"context"
	"testing"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/blob"
	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSandboxTeam(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	files := blob.NewFSStore(t.TempDir())
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	require.NoError(t, seedSandboxTeam(ctx, store, files, "demo", now))
	// a restart seeds the same rows again
	require.NoError(t, seedSandboxTeam(ctx, store, files, "demo", now))

	creds, err := store.GetCredentials(ctx, "demo", domain.ProviderSandbox)
	require.NoError(t, err)
	assert.Equal(t, "sandbox", creds.TenantID)

	txs, err := store.ListForSync(ctx, "demo", nil)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	var withReceipt *domain.Transaction
	for i := range txs {
		if len(txs[i].Attachments) > 0 {
			withReceipt = &txs[i]
		}
	}
	require.NotNil(t, withReceipt)
	require.Len(t, withReceipt.EligibleAttachments(), 1)

	content, err := files.Download(ctx, withReceipt.Attachments[0].Path)
	require.NoError(t, err)
	assert.Equal(t, sampleReceipt, content)
}
