package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgard/restobot/internal/app"
	"github.com/edgard/restobot/internal/database"
)

func newTenantCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Manage restaurant bots",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "setup <tenant-id>",
			Short: "Provision the tenant's bot profile, menu button, webhook and commands",
			Args:  cobra.ExactArgs(1),
			RunE: rt.tenantAction(func(cmd *cobra.Command, a *app.App, tenant *database.Tenant) error {
				report, err := a.Orchestrator.Setup(cmd.Context(), tenant)
				if err != nil {
					return err
				}
				if err := printJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
				if report.Degraded() {
					return fmt.Errorf("tenant %d provisioned without a webhook", tenant.ID)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "teardown <tenant-id>",
			Short: "Remove the tenant's webhook and reset its menu button",
			Args:  cobra.ExactArgs(1),
			RunE: rt.tenantAction(func(cmd *cobra.Command, a *app.App, tenant *database.Tenant) error {
				a.Orchestrator.Teardown(cmd.Context(), tenant)
				cmd.Printf("Tenant %d bot released\n", tenant.ID)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "webhook-info <tenant-id>",
			Short: "Show the webhook Telegram has registered for the tenant's bot",
			Args:  cobra.ExactArgs(1),
			RunE: rt.tenantAction(func(cmd *cobra.Command, a *app.App, tenant *database.Tenant) error {
				info, err := a.Orchestrator.WebhookInfo(cmd.Context(), tenant)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), info)
			}),
		},
	)
	return cmd
}

// tenantAction loads the tenant named by the first argument and requires a bot token.
func (rt *runtime) tenantAction(fn func(*cobra.Command, *app.App, *database.Tenant) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "tenant")
		if err != nil {
			return err
		}
		return rt.withApp(func(a *app.App) error {
			tenant, err := a.Store.GetTenant(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to load tenant %d: %w", id, err)
			}
			if !tenant.HasBot() {
				return fmt.Errorf("tenant %d has no bot token", id)
			}
			return fn(cmd, a, tenant)
		})
	}
}
