package main

import (
	"context"
	"fmt"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/blob"
	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/storage"
	"github.com/shopspring/decimal"
)

var sampleReceipt = []byte("%PDF-1.4\n1 0 obj <<>> endobj\ntrailer <<>>\n%%EOF\n")

// seedSandboxTeam connects teamID to the sandbox provider and gives it two transactions,
// one of them with a receipt in the vault. Running it again overwrites the same rows.
func seedSandboxTeam(ctx context.Context, store *storage.MemoryStore, files *blob.FSStore, teamID string, now time.Time) error {
	if err := store.SaveCredentials(ctx, domain.Credentials{
		TeamID:       teamID,
		Provider:     domain.ProviderSandbox,
		TenantID:     "sandbox",
		RefreshToken: "sandbox-refresh",
		ExpiresAt:    now.Add(time.Hour),
	}); err != nil {
		return fmt.Errorf("save sandbox credentials: %w", err)
	}

	receiptPath := teamID + "/inbox/sample-receipt.pdf"
	if err := files.Put(receiptPath, sampleReceipt); err != nil {
		return fmt.Errorf("write sample receipt: %w", err)
	}

	date := now.UTC().Truncate(24 * time.Hour)
	transactions := []domain.Transaction{
		{
			ID:           "sample-" + teamID + "-1",
			TeamID:       teamID,
			Date:         date,
			Name:         "Office supplies",
			Amount:       decimal.RequireFromString("-249.00"),
			Currency:     "SEK",
			CategorySlug: "office-supplies",
			Attachments: []domain.Attachment{{
				ID:       "sample-receipt",
				Name:     "sample-receipt.pdf",
				Path:     receiptPath,
				MimeType: "application/pdf",
				Size:     int64(len(sampleReceipt)),
			}},
		},
		{
			ID:           "sample-" + teamID + "-2",
			TeamID:       teamID,
			Date:         date,
			Name:         "Customer payment",
			Amount:       decimal.RequireFromString("1200.00"),
			Currency:     "SEK",
			CategorySlug: "income",
		},
	}
	for _, tx := range transactions {
		if err := store.PutTransaction(ctx, tx); err != nil {
			return fmt.Errorf("save sample transaction %s: %w", tx.ID, err)
		}
	}

	return nil
}
