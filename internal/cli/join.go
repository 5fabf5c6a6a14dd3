package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ppalog/internal/core/domain"
	"ppalog/internal/core/services"
)

func newJoinCmd(app *App) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join a PPA with the code your supervisor gave you",
		Long: "Validates a join code of the form PPA-XXXXXX against the backend\n" +
			"and binds your account to that PPA. Joining is one-time; there is\n" +
			"no leave flow.",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := requireRole(app, domain.RoleCorpsMember)
			if err != nil {
				return err
			}
			// Already-bound members have nothing to do here.
			if !app.Join.Guard(identity) {
				app.Notifier.Error("Already Joined", fmt.Sprintf("You are already bound to %s.", identity.PPAName))
				return nil
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			for {
				if code == "" {
					fmt.Fprint(out, "Join code (PPA-XXXXXX, empty to abort): ")
					line, err := reader.ReadString('\n')
					if err != nil && strings.TrimSpace(line) == "" {
						return nil
					}
					code = strings.TrimSpace(line)
					if code == "" {
						return nil
					}
				}

				state := app.Join.SetInput(ctx, code)
				switch state {
				case services.JoinValid:
					// fall through to join
				case services.JoinInvalid:
					app.Notifier.Error("Invalid Code", "Please enter a valid join code.")
					code = ""
					continue
				default:
					code = ""
					continue
				}

				if err := app.Join.Join(ctx); err != nil {
					return fail(app, "Error", err, "Failed to join PPA. Please check the join code.")
				}

				refreshed := app.Session.Current()
				app.Notifier.Success("Successfully Joined!", "You have been registered to the PPA.")
				if refreshed != nil && refreshed.PPAName != "" {
					fmt.Fprintf(out, "Welcome aboard. You can now start logging your daily activities at %s.\n", refreshed.PPAName)
				}
				return nil
			}
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "join code (prompted for when omitted)")
	return cmd
}
