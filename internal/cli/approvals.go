package cli

import (
	"fmt"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"ppalog/internal/core/domain"
)

func newApprovalsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approvals",
		Short: "Review logs submitted by your corps members",
	}
	cmd.AddCommand(
		newApprovalsListCmd(app),
		newApprovalsApproveCmd(app),
		newApprovalsRejectCmd(app),
		newApprovalsWatchCmd(app),
	)
	return cmd
}

func newApprovalsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logs awaiting your decision",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, domain.RoleSupervisor); err != nil {
				return err
			}
			pending, err := app.Approvals.LoadPending(cmd.Context())
			if err != nil {
				return fail(app, "Error", err, "Failed to load pending logs. Please try again.")
			}
			renderPending(cmd, pending)
			return nil
		},
	}
}

func newApprovalsApproveCmd(app *App) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "approve <log-id>",
		Short: "Approve a submitted log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, domain.RoleSupervisor); err != nil {
				return err
			}
			if err := app.Approvals.Approve(cmd.Context(), args[0], comment); err != nil {
				return fail(app, "Error", err, "Failed to approve log.")
			}
			app.Notifier.Success("Success", "Log approved successfully.")
			return nil
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "optional comment")
	return cmd
}

func newApprovalsRejectCmd(app *App) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "reject <log-id>",
		Short: "Reject a submitted log with a reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, domain.RoleSupervisor); err != nil {
				return err
			}
			if err := app.Approvals.Reject(cmd.Context(), args[0], comment); err != nil {
				return fail(app, "Error", err, "Failed to reject log.")
			}
			app.Notifier.Success("Success", "Log rejected.")
			return nil
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "reason for rejection (required)")
	return cmd
}

func newApprovalsWatchCmd(app *App) *cobra.Command {
	var (
		interval    time.Duration
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll for newly submitted logs until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, domain.RoleSupervisor); err != nil {
				return err
			}

			if metricsAddr != "" {
				go func() {
					mux := http.NewServeMux()
					mux.Handle("/metrics", app.Metrics.Handler())
					if err := http.ListenAndServe(metricsAddr, mux); err != nil {
						app.Logger.Warn("metrics listener stopped", "error", err)
					}
				}()
			}

			ctx := cmd.Context()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			var lastCount = -1
			for {
				pending, err := app.Approvals.LoadPending(ctx)
				if err == nil && len(pending) != lastCount {
					fmt.Fprintf(cmd.OutOrStdout(), "--- %s ---\n", time.Now().Format(time.Kitchen))
					renderPending(cmd, pending)
					lastCount = len(pending)
				} else if err != nil {
					app.Notifier.Error("Error", domain.UserMessage(err, "Failed to load pending logs."))
				}

				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "poll interval")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	return cmd
}

func renderPending(cmd *cobra.Command, pending []domain.PendingLog) {
	if len(pending) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No logs pending review.")
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d logs pending review\n", len(pending))
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tHOURS\tCORPS MEMBER\tPPA\tDESCRIPTION")
	for _, p := range pending {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%s\t%s\n",
			p.ID,
			p.Date.Format(time.DateOnly),
			p.Hours,
			p.CorpsMemberName,
			p.PPA,
			truncate(p.Description, 40),
		)
	}
	w.Flush()
}
