package main

import (
	"github.com/spf13/cobra"

	"github.com/edgard/restobot/internal/app"
)

func newNewsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Deliver news to restaurant recipients",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "publish <news-id>",
		Short: "Send a news item to every recipient of its restaurant now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "news")
			if err != nil {
				return err
			}
			return rt.withApp(func(a *app.App) error {
				report, err := a.Publisher.Publish(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	})
	return cmd
}
