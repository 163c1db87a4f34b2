package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/linglual-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/linglual-backend/internal/output"
)

func newRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Inspect stored writing records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, logger, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			recs, err := record.New(pool).List(cmd.Context())
			if err != nil {
				return err
			}
			logger.Debug("records loaded", slog.Int("count", len(recs)))

			tbl := output.NewTable(cmd.OutOrStdout(), "DATE", "ID", "LEVEL", "TOPIC")
			for _, r := range recs {
				level := "-"
				if r.Level != nil {
					level = r.Level.String()
				}
				tbl.AddRow(r.Date.Format("2006-01-02"), r.ID.String(), level, r.Topic)
			}
			return tbl.Render()
		},
	})
	return cmd
}
