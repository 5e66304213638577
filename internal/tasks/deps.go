// Package tasks implements the scheduled maintenance tasks of the gateway.
// It includes task definitions, dependencies, and registration mechanisms.
package tasks

import (
	"context"
	"log/slog"

	"github.com/edgard/restobot/internal/database"
)

// Store is the subset of the database store the tasks need.
type Store interface {
	ListTenants(ctx context.Context) ([]database.Tenant, error)
	RunSQLMaintenance(ctx context.Context) error
}

// WebhookEnsurer re-registers a tenant webhook when it drifted.
type WebhookEnsurer interface {
	EnsureWebhook(ctx context.Context, tenant *database.Tenant) (bool, error)
}

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Store    Store
	Webhooks WebhookEnsurer
}
