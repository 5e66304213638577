// Package setup provisions a tenant's Telegram bot: profile, Mini App menu
// button, webhook and commands.
package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/edgard/restobot/internal/database"
	"github.com/edgard/restobot/internal/i18n"
	"github.com/edgard/restobot/internal/metrics"
	"github.com/edgard/restobot/internal/telegram"
)

// Profile length limits enforced by Telegram.
const (
	MaxNameLength             = 64
	MaxShortDescriptionLength = 120
	MaxDescriptionLength      = 512
)

// AllowedUpdates are the update types the webhook subscribes to.
var AllowedUpdates = []string{
	"message",
	"callback_query",
	"inline_query",
	"chosen_inline_result",
	"pre_checkout_query",
	"shipping_query",
}

// Step names a provisioning step.
type Step string

// Provisioning steps in execution order.
const (
	StepValidateToken    Step = "validate_token"
	StepName             Step = "set_name"
	StepShortDescription Step = "set_short_description"
	StepDescription      Step = "set_description"
	StepMenuButton       Step = "set_menu_button"
	StepWebhook          Step = "set_webhook"
	StepCommands         Step = "set_commands"
)

// Report describes the outcome of one Setup run.
type Report struct {
	TenantID    int64           `json:"tenant_id"`
	BotUsername string          `json:"bot_username"`
	MiniAppURL  string          `json:"mini_app_url,omitempty"`
	WebhookURL  string          `json:"webhook_url,omitempty"`
	Applied     []Step          `json:"applied"`
	Skipped     map[Step]string `json:"skipped,omitempty"`
	Errors      map[Step]string `json:"errors,omitempty"`
}

// Degraded reports whether the bot ended up without a registered webhook.
func (r *Report) Degraded() bool {
	for _, s := range r.Applied {
		if s == StepWebhook {
			return false
		}
	}
	return true
}

func (r *Report) applied(s Step) { r.Applied = append(r.Applied, s) }

func (r *Report) skip(s Step, reason string) {
	if r.Skipped == nil {
		r.Skipped = make(map[Step]string)
	}
	r.Skipped[s] = reason
}

func (r *Report) fail(s Step, err error) {
	if r.Errors == nil {
		r.Errors = make(map[Step]string)
	}
	r.Errors[s] = err.Error()
}

// Config holds provisioning settings.
type Config struct {
	AppBaseURL      string
	WebhookSecret   string
	MaxConnections  int
	DefaultLanguage string
}

// Orchestrator runs provisioning against a fresh client per call.
type Orchestrator struct {
	cfg     Config
	clients telegram.Factory
	logger  *slog.Logger
}

// New creates an Orchestrator.
func New(cfg Config, clients telegram.Factory, logger *slog.Logger) *Orchestrator {
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = 40
	}
	if !i18n.Supported(cfg.DefaultLanguage) {
		cfg.DefaultLanguage = i18n.DefaultLanguage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{cfg: cfg, clients: clients, logger: logger.With("component", "setup")}
}

// Setup provisions tenant's bot. Only token validation is fatal; it fails with
// *telegram.InvalidTokenError and nothing else runs. All other step failures
// are logged and recorded in the report.
func (o *Orchestrator) Setup(ctx context.Context, tenant *database.Tenant) (*Report, error) {
	log := o.logger.With("tenant_id", tenant.ID)
	report := &Report{TenantID: tenant.ID}

	if err := telegram.ValidateTokenFormat(tenant.BotToken); err != nil {
		metrics.RecordSetupRun("failed")
		log.WarnContext(ctx, "Bot token rejected", "error", err)
		return report, err
	}
	client := o.clients(tenant.BotToken)

	me, err := client.GetMe(ctx)
	if err != nil {
		metrics.RecordSetupRun("failed")
		log.WarnContext(ctx, "Bot token rejected by getMe", "error", err)
		return report, &telegram.InvalidTokenError{Reason: "getMe failed", Err: err}
	}
	report.BotUsername = me.Username
	report.applied(StepValidateToken)
	log = log.With("bot_username", me.Username)
	log.InfoContext(ctx, "Provisioning bot")

	o.run(ctx, log, report, StepName, func() error {
		_, err := client.SetMyName(ctx, telegram.Params{"name": truncate(tenant.Name, MaxNameLength)})
		return err
	})
	o.run(ctx, log, report, StepShortDescription, func() error {
		_, err := client.SetMyShortDescription(ctx, telegram.Params{
			"short_description": ellipsize(tenant.Description, MaxShortDescriptionLength),
		})
		return err
	})
	o.run(ctx, log, report, StepDescription, func() error {
		_, err := client.SetMyDescription(ctx, telegram.Params{
			"description": ellipsize(tenant.Description, MaxDescriptionLength),
		})
		return err
	})

	miniAppURL, err := MiniAppURL(o.cfg.AppBaseURL, tenant.Slug)
	if err != nil {
		log.WarnContext(ctx, "Tenant has no slug, skipping menu button and webhook")
		report.skip(StepMenuButton, err.Error())
		report.skip(StepWebhook, err.Error())
	} else {
		report.MiniAppURL = miniAppURL
		o.setMenuButton(ctx, log, report, client, miniAppURL)
		o.setWebhook(ctx, log, report, client, tenant.ID)
	}

	o.run(ctx, log, report, StepCommands, func() error {
		return o.setCommands(ctx, client)
	})

	result := "ok"
	if report.Degraded() {
		result = "degraded"
		log.ErrorContext(ctx, "Bot provisioned without webhook", "skipped", report.Skipped, "errors", report.Errors)
	} else {
		log.InfoContext(ctx, "Bot provisioned", "applied", len(report.Applied), "errors", len(report.Errors))
	}
	metrics.RecordSetupRun(result)
	return report, nil
}

func (o *Orchestrator) run(ctx context.Context, log *slog.Logger, report *Report, step Step, fn func() error) {
	if err := fn(); err != nil {
		log.WarnContext(ctx, "Setup step failed", "step", step, "error", err)
		report.fail(step, err)
		return
	}
	report.applied(step)
}

func (o *Orchestrator) setMenuButton(ctx context.Context, log *slog.Logger, report *Report, client *telegram.Client, miniAppURL string) {
	if !IsHTTPS(miniAppURL) {
		log.WarnContext(ctx, "Mini App URL is not HTTPS, skipping menu button", "url", miniAppURL)
		report.skip(StepMenuButton, "mini app URL is not https")
		return
	}
	o.run(ctx, log, report, StepMenuButton, func() error {
		_, err := client.SetChatMenuButton(ctx, telegram.Params{
			"menu_button": map[string]any{
				"type":    "web_app",
				"text":    i18n.T(o.cfg.DefaultLanguage, "open_app"),
				"web_app": map[string]any{"url": miniAppURL},
			},
		})
		return err
	})
}

func (o *Orchestrator) setWebhook(ctx context.Context, log *slog.Logger, report *Report, client *telegram.Client, tenantID int64) {
	webhookURL := WebhookURL(o.cfg.AppBaseURL, tenantID)
	report.WebhookURL = webhookURL

	if err := ValidateWebhookURL(webhookURL); err != nil {
		log.ErrorContext(ctx, "Webhook URL rejected", "url", webhookURL, "error", err)
		report.fail(StepWebhook, err)
		return
	}
	if err := o.registerWebhook(ctx, client, tenantID, webhookURL); err != nil {
		log.ErrorContext(ctx, "Failed to register webhook", "url", webhookURL, "error", err)
		report.fail(StepWebhook, err)
		return
	}
	report.applied(StepWebhook)
}

func (o *Orchestrator) registerWebhook(ctx context.Context, client *telegram.Client, tenantID int64, webhookURL string) error {
	params := telegram.Params{
		"url":             webhookURL,
		"max_connections": o.cfg.MaxConnections,
		"allowed_updates": AllowedUpdates,
	}
	if token := SecretToken(o.cfg.WebhookSecret, tenantID); token != "" {
		params["secret_token"] = token
	}
	_, err := client.SetWebhook(ctx, params)
	return err
}

func (o *Orchestrator) setCommands(ctx context.Context, client *telegram.Client) error {
	var errs []error
	for _, lang := range i18n.Languages() {
		params := telegram.Params{
			"commands": []models.BotCommand{{Command: "start", Description: i18n.T(lang, "cmd_start")}},
		}
		if lang != o.cfg.DefaultLanguage {
			params["language_code"] = lang
		}
		if _, err := client.SetMyCommands(ctx, params); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", lang, err))
		}
	}
	return errors.Join(errs...)
}

// Teardown removes the webhook (dropping pending updates) and resets the menu
// button. Failures are logged and never returned.
func (o *Orchestrator) Teardown(ctx context.Context, tenant *database.Tenant) {
	log := o.logger.With("tenant_id", tenant.ID)
	if !tenant.HasBot() {
		log.InfoContext(ctx, "Tenant has no bot token, nothing to tear down")
		return
	}
	client := o.clients(tenant.BotToken)

	if _, err := client.DeleteWebhook(ctx, telegram.Params{"drop_pending_updates": true}); err != nil {
		log.WarnContext(ctx, "Failed to delete webhook", "error", err)
	}
	if _, err := client.SetChatMenuButton(ctx, telegram.Params{"menu_button": map[string]any{"type": "default"}}); err != nil {
		log.WarnContext(ctx, "Failed to reset menu button", "error", err)
	}
	log.InfoContext(ctx, "Bot torn down")
}

// WebhookInfo returns Telegram's view of tenant's webhook.
func (o *Orchestrator) WebhookInfo(ctx context.Context, tenant *database.Tenant) (*models.WebhookInfo, error) {
	if !tenant.HasBot() {
		return nil, &telegram.InvalidTokenError{Reason: "tenant has no bot token"}
	}
	return o.clients(tenant.BotToken).GetWebhookInfo(ctx)
}

// EnsureWebhook re-registers the webhook when Telegram reports a different,
// non-empty URL. An empty URL means the bot was released by Teardown (or never
// provisioned) and is left alone; Setup is the only way to register it again.
// It returns true when a new registration was made.
func (o *Orchestrator) EnsureWebhook(ctx context.Context, tenant *database.Tenant) (bool, error) {
	if !tenant.HasBot() || strings.TrimSpace(tenant.Slug) == "" {
		return false, nil
	}
	expected := WebhookURL(o.cfg.AppBaseURL, tenant.ID)
	if err := ValidateWebhookURL(expected); err != nil {
		return false, err
	}

	client := o.clients(tenant.BotToken)
	info, err := client.GetWebhookInfo(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get webhook info for tenant %d: %w", tenant.ID, err)
	}
	if info.URL == expected {
		return false, nil
	}
	if info.URL == "" {
		o.logger.DebugContext(ctx, "No webhook registered, leaving released bot alone", "tenant_id", tenant.ID)
		return false, nil
	}

	o.logger.WarnContext(ctx, "Webhook drift detected, re-registering",
		"tenant_id", tenant.ID, "registered", info.URL, "expected", expected)
	if err := o.registerWebhook(ctx, client, tenant.ID, expected); err != nil {
		return false, fmt.Errorf("failed to re-register webhook for tenant %d: %w", tenant.ID, err)
	}
	return true, nil
}
