package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/storage"
	"github.com/spf13/cobra"
)

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List the sync records of a team from Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, _ := cmd.Flags().GetString("dsn")
			if dsn == "" {
				dsn = os.Getenv("DATABASE_URL")
			}
			teamID, _ := cmd.Flags().GetString("team")
			providerID, _ := cmd.Flags().GetString("provider")
			statusFlag, _ := cmd.Flags().GetString("status")
			asJSON, _ := cmd.Flags().GetBool("json")

			var status *domain.SyncStatus
			if statusFlag != "" {
				s := domain.SyncStatus(statusFlag)
				if !s.Valid() {
					return fmt.Errorf("--status must be synced, partial or failed")
				}
				status = &s
			}

			store, err := storage.NewPostgresSyncStore(dsn)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			records, err := store.List(ctx, teamID, domain.ProviderID(providerID), status)
			if err != nil {
				return err
			}

			return printRecords(cmd, records, asJSON)
		},
	}

	cmd.Flags().String("dsn", "", "Postgres DSN (defaults to $DATABASE_URL)")
	cmd.Flags().StringP("team", "t", "", "Team id")
	cmd.Flags().StringP("provider", "p", "", "Provider id")
	cmd.Flags().StringP("status", "s", "", "Only records with this status")
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("provider")

	return cmd
}

func printRecords(cmd *cobra.Command, records []domain.SyncRecord, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TRANSACTION\tSTATUS\tPROVIDER ID\tATTACHMENTS\tERROR")
	for _, r := range records {
		synced := 0
		for _, v := range r.SyncedAttachmentMapping {
			if v != nil {
				synced++
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%s\n",
			r.TransactionID, r.Status, deref(r.ProviderTransactionID), synced, len(r.SyncedAttachmentMapping), errorSummary(r))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d record(s)\n", len(records))
	return nil
}

func errorSummary(r domain.SyncRecord) string {
	switch {
	case r.ErrorCode != nil && r.ErrorMessage != nil:
		return *r.ErrorCode + ": " + *r.ErrorMessage
	case r.ErrorMessage != nil:
		return *r.ErrorMessage
	case r.ErrorCode != nil:
		return *r.ErrorCode
	}
	return "-"
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
