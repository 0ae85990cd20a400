package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/shenikar/flood_control_system/internal/config"
	"github.com/shenikar/flood_control_system/internal/export"
	"github.com/shenikar/flood_control_system/pkg/logger"
	"github.com/shenikar/flood_control_system/pkg/mysql"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "floodctl",
	Short: "Flood control monitoring toolbox",
	Long: `floodctl provisions the flood control database, runs the fixed reports
and exports entity lists as CSV.

Configuration is read from the environment (and .env), the same way the API server does.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		// Для терминала по умолчанию текстовый вывод
		format := cfg.LogFormat
		if os.Getenv("LOG_FORMAT") == "" {
			format = "text"
		}
		log = logger.New(cfg.LogLevel, format)
		return nil
	},
}

// openDB подключается к уже подготовленной базе без миграций и примеров
func openDB(ctx context.Context) (*sql.DB, error) {
	db, err := mysql.NewMySQLDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not connect to MySQL: %w", err)
	}
	return db, nil
}

// writeExport сохраняет таблицу и сообщает, куда она записана
func writeExport(cmd *cobra.Command, path string, table export.Table) error {
	dest, err := export.WriteFile(path, table)
	if err != nil {
		return err
	}
	size := ""
	if info, statErr := os.Stat(dest); statErr == nil {
		size = humanize.Bytes(uint64(info.Size()))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s rows to %s (%s)\n", humanize.Comma(int64(len(table.Rows))), dest, size)
	return nil
}
