package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ppalog/internal/core/ports"
)

func newLoginCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with your email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				line, _ := reader.ReadString('\n')
				email = strings.TrimSpace(line)
			}
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}

			identity, err := app.Session.Login(cmd.Context(), email, password)
			if err != nil {
				return fail(app, "Login failed", err, "Invalid email or password.")
			}
			app.Notifier.Success("Logged in", fmt.Sprintf("Welcome back, %s.", identity.Name))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored credential",
		Run: func(cmd *cobra.Command, args []string) {
			app.Session.Logout()
			app.Notifier.Success("Logged out", "Your credential has been cleared.")
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := requireRole(app, "")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s> (%s)\n", identity.Name, identity.Email, roleLabel(identity.Role))
			if identity.HasPPA() {
				fmt.Fprintf(out, "PPA: %s\n", identity.PPAName)
			}
			if identity.SupervisorName != "" {
				fmt.Fprintf(out, "Supervisor: %s\n", identity.SupervisorName)
			}
			return nil
		},
	}
}

func newRegisterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
	}
	cmd.AddCommand(newRegisterCorpsCmd(app), newRegisterSupervisorCmd(app))
	return cmd
}

func newRegisterCorpsCmd(app *App) *cobra.Command {
	var req ports.RegisterCorpsMemberRequest

	cmd := &cobra.Command{
		Use:   "corps-member",
		Short: "Register as a corps member with a PPA join code",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			req.Password = password

			identity, err := app.Session.RegisterCorpsMember(cmd.Context(), req)
			if err != nil {
				return fail(app, "Registration failed", err, "Could not create the account.")
			}
			app.Notifier.Success("Registered", fmt.Sprintf("Welcome, %s. You are bound to %s.", identity.Name, identity.PPAName))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.StateCode, "state-code", "", "NYSC state code, e.g. LA/23A/1234")
	cmd.Flags().StringVar(&req.CallUpNumber, "call-up-number", "", "call-up number")
	cmd.Flags().StringVar(&req.JoinCode, "join-code", "", "PPA join code (PPA-XXXXXX)")
	return cmd
}

func newRegisterSupervisorCmd(app *App) *cobra.Command {
	var req ports.RegisterSupervisorRequest

	cmd := &cobra.Command{
		Use:   "supervisor",
		Short: "Register as a PPA supervisor",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			req.Password = password

			identity, err := app.Session.RegisterSupervisor(cmd.Context(), req)
			if err != nil {
				return fail(app, "Registration failed", err, "Could not create the account.")
			}
			app.Notifier.Success("Registered", fmt.Sprintf("Welcome, %s.", identity.Name))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	return cmd
}

// readPassword reads without echo when attached to a terminal and falls
// back to a plain line read otherwise, which is what tests use.
func readPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
