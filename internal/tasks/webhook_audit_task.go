package tasks

import (
	"context"
	"fmt"
)

// newWebhookAuditTask checks every provisioned bot's webhook and re-registers
// the ones pointing elsewhere. A failing tenant does not stop the audit.
func newWebhookAuditTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", WebhookAudit)

	return func(ctx context.Context) error {
		tenants, err := deps.Store.ListTenants(ctx)
		if err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		var checked, repaired, failed int
		for i := range tenants {
			tenant := &tenants[i]
			if !tenant.HasBot() {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			checked++
			changed, err := deps.Webhooks.EnsureWebhook(ctx, tenant)
			if err != nil {
				failed++
				log.WarnContext(ctx, "Webhook audit failed for tenant", "tenant_id", tenant.ID, "error", err)
				continue
			}
			if changed {
				repaired++
				log.InfoContext(ctx, "Webhook re-registered", "tenant_id", tenant.ID)
			}
		}

		log.InfoContext(ctx, "Webhook audit completed", "checked", checked, "repaired", repaired, "failed", failed)
		if failed > 0 {
			return fmt.Errorf("webhook audit failed for %d of %d tenants", failed, checked)
		}
		return nil
	}
}
