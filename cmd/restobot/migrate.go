package main

import (
	"github.com/spf13/cobra"

	"github.com/edgard/restobot/internal/database"
)

func newMigrateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := database.NewDB(rt.cfg.Database.Path)
			if err != nil {
				return err
			}
			database.CloseDB(db)
			cmd.Println("Migrations applied")
			return nil
		},
	}
}
