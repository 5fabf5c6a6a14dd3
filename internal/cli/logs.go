package cli

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"ppalog/internal/core/domain"
)

func newLogsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Record and manage your daily service logs",
	}
	cmd.AddCommand(
		newLogsListCmd(app),
		newLogsCreateCmd(app),
		newLogsUpdateCmd(app),
		newLogsDeleteCmd(app),
	)
	return cmd
}

func newLogsListCmd(app *App) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your logs, optionally filtered by year and month",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, domain.RoleCorpsMember); err != nil {
				return err
			}
			logs, err := app.Logs.Load(cmd.Context(), year, month)
			if err != nil {
				return fail(app, "Error", err, "Failed to load logs. Please try again.")
			}
			renderLogs(cmd, logs)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "filter by year")
	cmd.Flags().IntVar(&month, "month", 0, "filter by month (1-12)")
	return cmd
}

func newLogsCreateCmd(app *App) *cobra.Command {
	var (
		dateStr     string
		description string
		hours       float64
		remarks     string
		draft       bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a day's service activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, domain.RoleCorpsMember); err != nil {
				return err
			}
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return fail(app, "Validation Error", err, "")
			}

			created, err := app.Logs.Create(cmd.Context(), domain.CreateLogRequest{
				Date:        date,
				Description: description,
				Hours:       hours,
				Remarks:     remarks,
				IsDraft:     draft,
			})
			if err != nil {
				return fail(app, "Error", err, "Failed to create log. Please try again.")
			}
			if draft {
				app.Notifier.Success("Success", "Log saved as draft.")
			} else {
				app.Notifier.Success("Success", "Log submitted successfully.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "id: %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format(time.DateOnly), "date of service (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "what you did (min 10 characters)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "hours worked (0.1-24)")
	cmd.Flags().StringVar(&remarks, "remarks", "", "optional remarks")
	cmd.Flags().BoolVar(&draft, "draft", false, "save as draft instead of submitting")
	return cmd
}

func newLogsUpdateCmd(app *App) *cobra.Command {
	var (
		description string
		hours       float64
		remarks     string
		draft       bool
	)

	cmd := &cobra.Command{
		Use:   "update <log-id>",
		Short: "Edit a draft, submitted, or rejected log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, domain.RoleCorpsMember); err != nil {
				return err
			}

			_, err := app.Logs.Update(cmd.Context(), args[0], domain.UpdateLogRequest{
				Description: description,
				Hours:       hours,
				Remarks:     remarks,
				IsDraft:     draft,
			})
			if err != nil {
				return fail(app, "Error", err, "Failed to update log. Please try again.")
			}
			if draft {
				app.Notifier.Success("Success", "Draft updated.")
			} else {
				app.Notifier.Success("Success", "Log submitted successfully.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "what you did (min 10 characters)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "hours worked (0.1-24)")
	cmd.Flags().StringVar(&remarks, "remarks", "", "optional remarks")
	cmd.Flags().BoolVar(&draft, "draft", false, "keep as draft instead of submitting")
	return cmd
}

func newLogsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <log-id>",
		Short: "Delete a log permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, domain.RoleCorpsMember); err != nil {
				return err
			}

			confirmed := yes
			if !confirmed {
				fmt.Fprint(cmd.OutOrStdout(), "Are you sure you want to delete this log? [y/N] ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, _ := reader.ReadString('\n')
				confirmed = strings.EqualFold(strings.TrimSpace(line), "y")
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			if err := app.Logs.Delete(cmd.Context(), args[0], confirmed); err != nil {
				return fail(app, "Error", err, "Failed to delete log. Please try again.")
			}
			app.Notifier.Success("Success", "Log deleted successfully.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func renderLogs(cmd *cobra.Command, logs []domain.DailyLog) {
	if len(logs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No logs found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tHOURS\tSTATUS\tACTIONS\tDESCRIPTION")
	for _, log := range logs {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%s\t%s\n",
			log.ID,
			log.Date.Format(time.DateOnly),
			log.Hours,
			log.Status,
			actionHints(log.Status),
			truncate(log.Description, 48),
		)
		if log.Approval != nil && log.Approval.Decision == domain.DecisionRejected {
			fmt.Fprintf(w, "\t\t\t\t\treason: %s\n", log.Approval.Comment)
		}
	}
	w.Flush()
}

// actionHints renders the capability table for the owner's role, so the
// listing shows the same affordances the dashboard would.
func actionHints(status domain.Status) string {
	caps := domain.Capabilities(domain.RoleCorpsMember, status)
	var hints []string
	if caps.Allows(domain.ActionEdit) {
		hints = append(hints, "edit")
	}
	if caps.Allows(domain.ActionDelete) {
		hints = append(hints, "delete")
	}
	if len(hints) == 0 {
		return "-"
	}
	return strings.Join(hints, ",")
}

func parseDateFlag(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError("Date", "must be in YYYY-MM-DD format")
	}
	return t, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
