package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/provider"
	"github.com/grachmannico95/accounting-sync/internal/ratebudget"
	"github.com/spf13/cobra"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the start delays of the attachment jobs of one run",
		RunE: func(cmd *cobra.Command, args []string) error {
			providerID, _ := cmd.Flags().GetString("provider")
			jobs, _ := cmd.Flags().GetInt("jobs")
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1")
			}

			id := domain.ProviderID(providerID)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "provider %s: %d calls/min, spacing %s\n",
				id, ratebudget.CallsPerMinute(id), ratebudget.Spacing(id))

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "JOB\tDELAY")
			index := &ratebudget.JobIndex{}
			for i := 0; i < jobs; i++ {
				n := index.Next()
				fmt.Fprintf(w, "%d\t%s\n", n, ratebudget.Delay(id, n))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringP("provider", "p", string(domain.ProviderXero), "Provider id")
	cmd.Flags().IntP("jobs", "n", 5, "Number of jobs in the run")

	return cmd
}

func limitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Show the attachment limits per provider, with an optional override file",
		RunE: func(cmd *cobra.Command, args []string) error {
			limits := provider.DefaultLimits()
			if path, _ := cmd.Flags().GetString("file"); path != "" {
				loaded, err := provider.LoadLimitsFile(path, limits)
				if err != nil {
					return err
				}
				limits = loaded
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PROVIDER\tCONCURRENCY\tCALL DELAY\tMAX MB\tTYPES")
			for _, id := range []domain.ProviderID{domain.ProviderXero, domain.ProviderQuickBooks, domain.ProviderFortnox, domain.ProviderSandbox} {
				l := limits.For(id)
				fmt.Fprintf(w, "%s\t%d\t%s\t%.0f\t%d\n",
					id, l.MaxConcurrent, l.CallDelay, float64(l.MaxAttachmentBytes)/(1024*1024), len(l.SupportedTypes))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringP("file", "f", "", "Provider limits YAML override")

	return cmd
}
