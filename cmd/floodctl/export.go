package main

import (
	"fmt"

	"github.com/shenikar/flood_control_system/internal/export"
	"github.com/shenikar/flood_control_system/internal/repository"
	"github.com/shenikar/flood_control_system/internal/service"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <areas|projects|incidents>",
	Short: "Export an entity list as CSV",
	Long: `Export the area, project or incident list as CSV with the same columns
the list views show.

Examples:
  floodctl export areas --out areas.csv
  floodctl export incidents -o incidents.csv`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"areas", "projects", "incidents"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Destination CSV file")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var table export.Table
	switch args[0] {
	case "areas":
		areas, err := service.NewAreaService(repository.NewAreaRepository(db, nil, 0), log, nil).ListAreas(ctx)
		if err != nil {
			return err
		}
		table = export.AreasTable(areas)
	case "projects":
		projects, err := service.NewProjectService(repository.NewProjectRepository(db), log, nil).ListProjects(ctx)
		if err != nil {
			return err
		}
		table = export.ProjectsTable(projects)
	case "incidents":
		incidents, err := service.NewIncidentService(repository.NewIncidentRepository(db), log, nil).ListIncidents(ctx)
		if err != nil {
			return err
		}
		table = export.IncidentsTable(incidents)
	default:
		return fmt.Errorf("unknown list %q, expected areas, projects or incidents", args[0])
	}

	return writeExport(cmd, exportOut, table)
}
