package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ppalog/internal/core/domain"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your service summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := requireRole(app, "")
			if err != nil {
				return err
			}
			switch identity.Role {
			case domain.RoleSupervisor:
				return supervisorDashboard(app, cmd)
			default:
				return corpsDashboard(app, cmd, identity)
			}
		},
	}
}

func corpsDashboard(app *App, cmd *cobra.Command, identity *domain.Identity) error {
	stats, err := app.Dashboard.CorpsStats(cmd.Context())
	if err != nil {
		return fail(app, "Error", err, "Failed to load dashboard.")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Welcome back, %s\n", identity.Name)
	if identity.HasPPA() {
		fmt.Fprintf(out, "PPA: %s  Supervisor: %s\n", identity.PPAName, identity.SupervisorName)
	} else {
		fmt.Fprintln(out, "You have not joined a PPA yet. Run 'ppalog join' to get started.")
	}
	fmt.Fprintf(out, "\nLogs this month: %d\n", stats.TotalLogsThisMonth)
	fmt.Fprintf(out, "Approved: %d  Rejected: %d  Pending: %d  Drafts: %d\n",
		stats.ApprovedLogs, stats.RejectedLogs, stats.PendingLogs, stats.DraftLogs)
	return nil
}

func supervisorDashboard(app *App, cmd *cobra.Command) error {
	overview, err := app.Dashboard.SupervisorOverviewData(cmd.Context())
	if err != nil {
		return fail(app, "Error", err, "Failed to load dashboard.")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Assigned corps members: %d  Pending approvals: %d  PPAs: %d\n\n",
		overview.Stats.AssignedCorpsMembers, overview.Stats.PendingLogsCount, len(overview.PPAs))

	if len(overview.Stats.CorpsMembers) > 0 {
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tEMAIL\tSTATE CODE\tPPA")
		for _, m := range overview.Stats.CorpsMembers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Name, m.Email, m.StateCode, m.PPA)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	renderPending(cmd, overview.Pending)
	return nil
}
