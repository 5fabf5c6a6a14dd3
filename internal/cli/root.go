// Package cli wires the console frontend: every command runs against
// the same session, stores, and backend client, built once at startup.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ppalog/internal/adapters/backend"
	"ppalog/internal/adapters/credstore"
	"ppalog/internal/adapters/metrics"
	"ppalog/internal/adapters/notify"
	"ppalog/internal/config"
	"ppalog/internal/core/domain"
	"ppalog/internal/core/ports"
	"ppalog/internal/core/services"
)

// App carries the wired services every command runs against.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Notifier ports.Notifier
	Metrics  *metrics.Recorder

	Session   *services.Session
	Logs      *services.LogStore
	Approvals *services.ApprovalQueue
	Join      *services.JoinFlow
	Dashboard *services.Dashboard
	PPAs      *services.PPAManager
	Reports   *services.Reports
}

func NewApp(cfg *config.Config) *App {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	creds := credstore.NewFileStore(cfg.TokenPath)
	recorder := metrics.NewRecorder()
	client := backend.NewClient(cfg, creds, recorder, logger)
	session := services.NewSession(client, creds, logger)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Notifier:  notify.NewTerminal(os.Stdout, os.Stderr),
		Metrics:   recorder,
		Session:   session,
		Logs:      services.NewLogStore(client, recorder, logger),
		Approvals: services.NewApprovalQueue(client, recorder, logger),
		Join:      services.NewJoinFlow(client, client, session, recorder, logger),
		Dashboard: services.NewDashboard(client, client, client),
		PPAs:      services.NewPPAManager(client),
		Reports:   services.NewReports(client, session),
	}
}

// NewRootCmd assembles the command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ppalog",
		Short: "NYSC PPA daily-log console",
		Long: "ppalog records daily service activities at your Place of Primary\n" +
			"Assignment, submits them for approval, and generates monthly\n" +
			"clearance reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.Session.Restore(cmd.Context())
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newWhoamiCmd(app),
		newLogsCmd(app),
		newApprovalsCmd(app),
		newPPACmd(app),
		newJoinCmd(app),
		newReportCmd(app),
		newDashboardCmd(app),
	)
	return root
}

// requireRole fetches the current identity and checks its role. An
// empty role means any authenticated identity will do.
func requireRole(app *App, role domain.Role) (*domain.Identity, error) {
	identity := app.Session.Current()
	if identity == nil {
		return nil, fmt.Errorf("not logged in; run 'ppalog login' first")
	}
	if role != "" && identity.Role != role {
		return nil, fmt.Errorf("this command is for %s accounts", roleLabel(role))
	}
	return identity, nil
}

func roleLabel(role domain.Role) string {
	switch role {
	case domain.RoleCorpsMember:
		return "corps member"
	case domain.RoleSupervisor:
		return "supervisor"
	}
	return string(role)
}

// fail notifies the user and returns a silent error so cobra exits
// non-zero without double-printing.
func fail(app *App, title string, err error, fallback string) error {
	app.Notifier.Error(title, domain.UserMessage(err, fallback))
	return err
}
