package tasks

import (
	"context"
)

// Task names, matching the keys of the scheduler.tasks config section.
const (
	SQLMaintenance = "sql_maintenance"
	WebhookAudit   = "webhook_audit"
)

// ScheduledTaskFunc defines the standard signature for all scheduled tasks.
// The context provided by the scheduler should be respected for cancellation.
type ScheduledTaskFunc func(ctx context.Context) error

// RegisterAllTasks initializes and returns a map of all registered scheduled tasks
// keyed by the name used for configuration lookup.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	tasks := make(map[string]ScheduledTaskFunc)

	tasks[SQLMaintenance] = newSQLMaintenanceTask(deps)
	if deps.Webhooks != nil {
		tasks[WebhookAudit] = newWebhookAuditTask(deps)
	}

	deps.Logger.Info("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}
