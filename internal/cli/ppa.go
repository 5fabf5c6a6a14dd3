package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"ppalog/internal/core/domain"
	"ppalog/internal/core/services"
)

func newPPACmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ppa",
		Short: "Manage your Places of Primary Assignment",
	}
	cmd.AddCommand(newPPACreateCmd(app), newPPAListCmd(app), newPPAValidateCmd(app))
	return cmd
}

func newPPACreateCmd(app *App) *cobra.Command {
	var req domain.CreatePPARequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a PPA and receive its join code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, domain.RoleSupervisor); err != nil {
				return err
			}
			ppa, err := app.PPAs.Create(cmd.Context(), req)
			if err != nil {
				return fail(app, "Error", err, "Failed to create PPA. Please try again.")
			}
			app.Notifier.Success("PPA Created Successfully", "Share the join code with your corps members.")
			fmt.Fprintf(cmd.OutOrStdout(), "Join Code: %s\n", ppa.JoinCode)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "organization name")
	cmd.Flags().StringVar(&req.Address, "address", "", "organization address")
	cmd.Flags().StringVar(&req.Description, "description", "", "optional description")
	return cmd
}

func newPPAListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the PPAs you supervise",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, domain.RoleSupervisor); err != nil {
				return err
			}
			ppas, err := app.PPAs.Mine(cmd.Context())
			if err != nil {
				return fail(app, "Error", err, "Failed to load PPAs. Please try again.")
			}
			if len(ppas) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No PPAs yet. Create one with 'ppalog ppa create'.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tJOIN CODE\tACTIVE\tMEMBERS\tCREATED")
			for _, p := range ppas {
				fmt.Fprintf(w, "%s\t%s\t%t\t%d\t%s\n",
					p.Name, p.JoinCode, p.IsActive, p.CorpsMembersCount,
					p.CreatedAt.Format(time.DateOnly))
			}
			w.Flush()
			return nil
		},
	}
}

func newPPAValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <join-code>",
		Short: "Check whether a join code is live",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := domain.NormalizeJoinCode(args[0])
			if !domain.ValidJoinCodeFormat(code) {
				return fail(app, "Invalid Code", domain.NewValidationError("JoinCode", "must match the format PPA-XXXXXX"), "")
			}
			state := app.Join.SetInput(cmd.Context(), code)
			if state == services.JoinValid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", code)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not a live join code\n", code)
			}
			return nil
		},
	}
}
