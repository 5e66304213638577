package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/restobot/internal/database"
	"github.com/edgard/restobot/internal/setup"
	"github.com/edgard/restobot/internal/telegram"
)

// TenantGetter loads tenants by id.
type TenantGetter interface {
	GetTenant(ctx context.Context, id int64) (*database.Tenant, error)
}

// Provisioner configures and releases tenant bots.
type Provisioner interface {
	Setup(ctx context.Context, tenant *database.Tenant) (*setup.Report, error)
	Teardown(ctx context.Context, tenant *database.Tenant)
	WebhookInfo(ctx context.Context, tenant *database.Tenant) (*models.WebhookInfo, error)
}

// Enqueuer schedules news delivery.
type Enqueuer interface {
	Enqueue(newsID int64) (string, error)
}

// AdminHandler serves the operator API under /api/admin.
type AdminHandler struct {
	tenants     TenantGetter
	provisioner Provisioner
	queue       Enqueuer
	logger      *slog.Logger
}

// NewAdminHandler creates the admin API handler.
func NewAdminHandler(tenants TenantGetter, provisioner Provisioner, queue Enqueuer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		tenants:     tenants,
		provisioner: provisioner,
		queue:       queue,
		logger:      logger.With("component", "admin_api"),
	}
}

// SetupResponse wraps a provisioning report.
type SetupResponse struct {
	Degraded bool          `json:"degraded"`
	Report   *setup.Report `json:"report"`
}

// Mount registers the admin routes under the given router.
func (h *AdminHandler) Mount(r chi.Router) {
	r.Post("/tenants/{id}/setup", h.handleSetup)
	r.Delete("/tenants/{id}/bot", h.handleTeardown)
	r.Get("/tenants/{id}/webhook", h.handleWebhookInfo)
	r.Post("/news/{id}/publish", h.handlePublish)
}

func (h *AdminHandler) handleSetup(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.loadTenant(w, r)
	if !ok {
		return
	}

	report, err := h.provisioner.Setup(r.Context(), tenant)
	if err != nil {
		var tokenErr *telegram.InvalidTokenError
		if errors.As(err, &tokenErr) {
			writeError(w, http.StatusUnprocessableEntity, tokenErr.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "Setup failed", "tenant_id", tenant.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "setup failed")
		return
	}

	writeJSON(w, http.StatusOK, SetupResponse{Degraded: report.Degraded(), Report: report})
}

func (h *AdminHandler) handleTeardown(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.loadTenant(w, r)
	if !ok {
		return
	}
	if tenant.HasBot() {
		h.provisioner.Teardown(r.Context(), tenant)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) handleWebhookInfo(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.loadTenant(w, r)
	if !ok {
		return
	}
	if !tenant.HasBot() {
		writeError(w, http.StatusNotFound, "tenant has no bot")
		return
	}

	info, err := h.provisioner.WebhookInfo(r.Context(), tenant)
	if err != nil {
		h.logger.WarnContext(r.Context(), "getWebhookInfo failed", "tenant_id", tenant.ID, "error", err)
		writeError(w, http.StatusBadGateway, "telegram request failed")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *AdminHandler) handlePublish(w http.ResponseWriter, r *http.Request) {
	newsID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || newsID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid news id")
		return
	}

	jobID, err := h.queue.Enqueue(newsID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to enqueue publish job", "news_id", newsID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to enqueue")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"job_id": jobID, "news_id": newsID})
}

func (h *AdminHandler) loadTenant(w http.ResponseWriter, r *http.Request) (*database.Tenant, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid tenant id")
		return nil, false
	}

	tenant, err := h.tenants.GetTenant(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tenant not found")
			return nil, false
		}
		h.logger.ErrorContext(r.Context(), "Failed to load tenant", "tenant_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return nil, false
	}
	return tenant, true
}

// BearerAuth rejects requests whose Authorization header does not carry token.
func BearerAuth(token string) func(http.Handler) http.Handler {
	expected := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
