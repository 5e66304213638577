package miniapp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/edgard/restobot/internal/database"
)

// maxBodyBytes caps the auth request body; initData is a few kilobytes at most.
const maxBodyBytes = 64 << 10

// Store resolves tenants and their recipients.
type Store interface {
	GetTenantBySlug(ctx context.Context, slug string) (*database.Tenant, error)
	FindRecipient(ctx context.Context, tenantID, telegramID int64) (*database.User, error)
	IsTenantLikedBy(ctx context.Context, tenantID, userID int64) (bool, error)
	ListFriends(ctx context.Context, tenantID, userID int64) ([]database.User, error)
}

// AuthRequest is the body of POST /miniapp/{slug}/auth.
type AuthRequest struct {
	InitData string `json:"init_data"`
}

// UserResponse describes a recipient.
type UserResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	TelegramID *int64 `json:"telegram_id"`
}

// AuthResponse is returned for a verified, known recipient.
type AuthResponse struct {
	UserResponse
	LikedByMe bool           `json:"liked_by_me"`
	Friends   []UserResponse `json:"friends"`
}

// Handler authenticates Mini App users against their tenant's bot token.
type Handler struct {
	store  Store
	logger *slog.Logger
}

// NewHandler creates the auth handler.
func NewHandler(store Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger.With("component", "miniapp_auth"),
	}
}

// ServeHTTP expects the tenant slug in the "slug" URL parameter.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	log := h.logger.With("slug", slug)

	var req AuthRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if strings.TrimSpace(req.InitData) == "" {
		writeError(w, http.StatusUnprocessableEntity, "init_data is required")
		return
	}
	fields, err := Parse(req.InitData)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "malformed init_data")
		return
	}

	tenant, err := h.store.GetTenantBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "restaurant not found")
			return
		}
		log.ErrorContext(ctx, "Failed to load tenant", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !tenant.HasBot() {
		writeError(w, http.StatusNotFound, "restaurant has no bot")
		return
	}

	data, err := VerifyValues(fields, tenant.BotToken)
	if err != nil {
		var sigErr *SignatureVerificationError
		if errors.As(err, &sigErr) {
			log.WarnContext(ctx, "Rejected init data with bad signature", "tenant_id", tenant.ID)
			writeError(w, http.StatusForbidden, "invalid signature")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, "malformed init_data")
		return
	}
	if data.User == nil || data.User.ID == 0 {
		writeError(w, http.StatusUnprocessableEntity, "init_data has no user")
		return
	}

	user, err := h.store.FindRecipient(ctx, tenant.ID, data.User.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		log.ErrorContext(ctx, "Failed to find recipient", "tenant_id", tenant.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp, err := h.buildResponse(ctx, tenant.ID, user)
	if err != nil {
		log.ErrorContext(ctx, "Failed to build auth response", "tenant_id", tenant.ID, "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	log.DebugContext(ctx, "Mini App user authenticated", "tenant_id", tenant.ID, "user_id", user.ID)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) buildResponse(ctx context.Context, tenantID int64, user *database.User) (*AuthResponse, error) {
	liked, err := h.store.IsTenantLikedBy(ctx, tenantID, user.ID)
	if err != nil {
		return nil, err
	}
	friends, err := h.store.ListFriends(ctx, tenantID, user.ID)
	if err != nil {
		return nil, err
	}

	resp := &AuthResponse{
		UserResponse: toUserResponse(user),
		LikedByMe:    liked,
		Friends:      make([]UserResponse, 0, len(friends)),
	}
	for i := range friends {
		resp.Friends = append(resp.Friends, toUserResponse(&friends[i]))
	}
	return resp, nil
}

func toUserResponse(u *database.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		TelegramID: u.TelegramID,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
