package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/shenikar/flood_control_system/internal/export"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/repository"
	"github.com/shenikar/flood_control_system/internal/service"
	"github.com/spf13/cobra"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report <kind>",
	Short: "Run one of the fixed reports",
	Long: `Run one of the fixed reports and print it as a table, or write it as CSV with --out.

Kinds:
  top-damage-areas
  recent-incidents
  delayed-projects
  project-status-distribution

Examples:
  floodctl report top-damage-areas
  floodctl report delayed-projects --out delayed.csv`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: lo.Map(models.ReportKinds(), func(k models.ReportKind, _ int) string { return string(k) }),
	RunE:      runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Write the report as CSV to this file")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	reports := service.NewReportService(repository.NewReportRepository(db), log)
	report, err := reports.RunReport(ctx, models.ReportKind(args[0]))
	if err != nil {
		return err
	}

	if reportOut != "" {
		return writeExport(cmd, reportOut, export.ReportTable(report))
	}
	return printReport(cmd.OutOrStdout(), report)
}

// printReport печатает отчет выровненной таблицей
func printReport(w io.Writer, report *models.Report) error {
	fmt.Fprintf(w, "%s\n\n", report.Title)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(report.Headers, "\t"))
	for _, row := range report.Rows {
		cells := lo.Map(row, func(v any, _ int) string { return displayValue(v) })
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s rows\n", humanize.Comma(int64(len(report.Rows))))
	return nil
}

func displayValue(v any) string {
	switch val := v.(type) {
	case int64:
		return humanize.Comma(val)
	case float64:
		return humanize.CommafWithDigits(val, 2)
	case nil:
		return "-"
	default:
		return fmt.Sprint(val)
	}
}
