package main

import (
	"github.com/spf13/cobra"

	"github.com/edgard/restobot/internal/app"
)

func newServeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server, publish queue and scheduled tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.withApp(func(a *app.App) error {
				return a.Run(cmd.Context())
			})
		},
	}
}
