package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edgard/restobot/internal/database"
	"github.com/edgard/restobot/internal/metrics"
	"github.com/edgard/restobot/internal/setup"
	"github.com/edgard/restobot/internal/telegram"
)

const (
	// SecretTokenHeader carries the per-tenant webhook secret.
	SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

	maxUpdateBytes       = 1 << 20
	defaultHandleTimeout = 30 * time.Second
)

// TenantLoader loads a tenant fresh for every update.
type TenantLoader interface {
	GetTenant(ctx context.Context, id int64) (*database.Tenant, error)
}

// Config holds dispatcher settings.
type Config struct {
	AppBaseURL      string
	WebhookSecret   string
	DefaultLanguage string
	HandleTimeout   time.Duration
}

// Dispatcher routes updates to handlers with a client bound to the tenant's current token.
type Dispatcher struct {
	cfg        Config
	tenants    TenantLoader
	clients    telegram.Factory
	handlers   Handlers
	middleware []Middleware
	logger     *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithHandlers replaces the default handler set.
func WithHandlers(h Handlers) Option {
	return func(d *Dispatcher) { d.handlers = h }
}

// WithPreCheckoutValidator installs the order validation hook.
func WithPreCheckoutValidator(v PreCheckoutValidator) Option {
	return func(d *Dispatcher) {
		d.handlers.PreCheckoutQuery = NewPreCheckoutHandler(d.handlerDeps(v))
	}
}

// NewDispatcher creates a Dispatcher with the default handlers.
func NewDispatcher(cfg Config, tenants TenantLoader, clients telegram.Factory, logger *slog.Logger, opts ...Option) *Dispatcher {
	if cfg.HandleTimeout <= 0 {
		cfg.HandleTimeout = defaultHandleTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		cfg:        cfg,
		tenants:    tenants,
		clients:    clients,
		middleware: []Middleware{Recover(), Logging()},
		logger:     logger.With("component", "webhook"),
	}
	d.handlers = DefaultHandlers(d.handlerDeps(nil))
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) handlerDeps(v PreCheckoutValidator) HandlerDeps {
	return HandlerDeps{
		AppBaseURL:      d.cfg.AppBaseURL,
		DefaultLanguage: d.cfg.DefaultLanguage,
		PreCheckout:     v,
	}
}

// ServeHTTP handles POST /api/telegram/webhook/{tenantID}. It always answers
// 204 so Telegram never redelivers; problems are only logged.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer w.WriteHeader(http.StatusNoContent)
	ctx := r.Context()

	tenantID, err := strconv.ParseInt(chi.URLParam(r, "tenantID"), 10, 64)
	if err != nil {
		d.logger.WarnContext(ctx, "Webhook called with invalid tenant id", "tenant_id", chi.URLParam(r, "tenantID"))
		return
	}
	if !setup.VerifySecretToken(d.cfg.WebhookSecret, tenantID, r.Header.Get(SecretTokenHeader)) {
		d.logger.WarnContext(ctx, "Webhook secret token mismatch, ignoring update", "tenant_id", tenantID)
		metrics.RecordWebhookUpdate(KindUnknown.String(), "rejected")
		return
	}

	var update Update
	body := io.LimitReader(r.Body, maxUpdateBytes)
	if err := json.NewDecoder(body).Decode(&update); err != nil {
		d.logger.WarnContext(ctx, "Failed to decode update", "tenant_id", tenantID, "error", err)
		metrics.RecordWebhookUpdate(KindUnknown.String(), metrics.OutcomeDecode)
		return
	}

	// Telegram may drop the connection; the update is still handled to completion.
	handleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.cfg.HandleTimeout)
	defer cancel()
	d.Dispatch(handleCtx, tenantID, &update)
}

// Dispatch handles one update for tenantID. Errors and panics are logged, never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, tenantID int64, update *Update) {
	kind := Classify(update)
	log := d.logger.With("tenant_id", tenantID, "kind", kind.String())

	tenant, err := d.tenants.GetTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			log.WarnContext(ctx, "Update for unknown tenant")
		} else {
			log.ErrorContext(ctx, "Failed to load tenant", "error", err)
		}
		metrics.RecordWebhookUpdate(kind.String(), metrics.OutcomeSkipped)
		return
	}
	if !tenant.HasBot() {
		log.WarnContext(ctx, "Tenant has no bot token, dropping update")
		metrics.RecordWebhookUpdate(kind.String(), metrics.OutcomeSkipped)
		return
	}

	handler := d.route(kind)
	if handler == nil {
		log.InfoContext(ctx, "Ignoring unsupported update", "update_id", update.UpdateID)
		metrics.RecordWebhookUpdate(kind.String(), metrics.OutcomeSkipped)
		return
	}

	req := &Request{
		Tenant: tenant,
		Client: d.clients(tenant.BotToken),
		Update: update,
		Kind:   kind,
		Logger: log,
	}
	if err := chain(handler, d.middleware...).Handle(ctx, req); err != nil {
		log.ErrorContext(ctx, "Failed to handle update", "update_id", update.UpdateID, "error", err)
		metrics.RecordWebhookUpdate(kind.String(), metrics.OutcomeFailed)
		return
	}
	metrics.RecordWebhookUpdate(kind.String(), metrics.OutcomeOK)
}

func (d *Dispatcher) route(kind UpdateKind) Handler {
	switch kind {
	case KindMessage:
		return d.handlers.Message
	case KindCallbackQuery:
		return d.handlers.CallbackQuery
	case KindInlineQuery:
		return d.handlers.InlineQuery
	case KindWebAppQuery:
		return d.handlers.WebAppQuery
	case KindPreCheckoutQuery:
		return d.handlers.PreCheckoutQuery
	case KindUnknown:
		return nil
	default:
		return nil
	}
}
