package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate monthly clearance reports",
	}
	cmd.AddCommand(newReportShowCmd(app), newReportPDFCmd(app))
	return cmd
}

func reportPeriodFlags(cmd *cobra.Command, year, month *int) {
	now := time.Now()
	cmd.Flags().IntVar(year, "year", now.Year(), "report year")
	cmd.Flags().IntVar(month, "month", int(now.Month()), "report month (1-12)")
}

func newReportShowCmd(app *App) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the monthly report for your logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, ""); err != nil {
				return err
			}
			report, err := app.Reports.Monthly(cmd.Context(), year, month)
			if err != nil {
				return fail(app, "Error", err, "Failed to generate report. Please try again.")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Monthly Report — %s %d/%d\n", report.CorpsMemberName, report.Month, report.Year)
			fmt.Fprintf(out, "PPA: %s  Supervisor: %s\n", report.PPA, report.SupervisorName)
			fmt.Fprintf(out, "Days worked: %d  Hours worked: %.1f\n\n", report.TotalDaysWorked, report.TotalHoursWorked)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tHOURS\tDESCRIPTION")
			for _, l := range report.DailyLogs {
				fmt.Fprintf(w, "%s\t%.1f\t%s\n", l.Date.Format(time.DateOnly), l.Hours, truncate(l.Description, 60))
			}
			w.Flush()
			return nil
		},
	}
	reportPeriodFlags(cmd, &year, &month)
	return cmd
}

func newReportPDFCmd(app *App) *cobra.Command {
	var (
		year, month int
		output      string
	)

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Download the monthly report as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, ""); err != nil {
				return err
			}
			data, err := app.Reports.MonthlyPDF(cmd.Context(), year, month)
			if err != nil {
				return fail(app, "Error", err, "Failed to download PDF. Please try again.")
			}

			path := output
			if path == "" {
				path = fmt.Sprintf("MonthlyReport_%s_%d.pdf", time.Month(month), year)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fail(app, "Error", err, "Could not write the PDF file.")
			}
			app.Notifier.Success("Success", fmt.Sprintf("PDF saved to %s.", path))
			return nil
		},
	}
	reportPeriodFlags(cmd, &year, &month)
	cmd.Flags().StringVar(&output, "output", "", "output file path")
	return cmd
}
