// Package webhook receives Telegram updates for every tenant bot and routes
// them to per-kind handlers.
package webhook

import (
	"context"
	"log/slog"

	"github.com/edgard/restobot/internal/database"
	"github.com/edgard/restobot/internal/telegram"
)

// Request is one update being handled for a tenant.
type Request struct {
	Tenant *database.Tenant
	Client *telegram.Client
	Update *Update
	Kind   UpdateKind
	Logger *slog.Logger
}

// Handler processes one kind of update.
type Handler interface {
	Handle(ctx context.Context, req *Request) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, req *Request) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, req *Request) error { return f(ctx, req) }

// HandlerDeps provides dependencies for update handlers.
type HandlerDeps struct {
	AppBaseURL      string
	DefaultLanguage string
	PreCheckout     PreCheckoutValidator
}

// Handlers holds one handler per update kind.
type Handlers struct {
	Message          Handler
	CallbackQuery    Handler
	InlineQuery      Handler
	WebAppQuery      Handler
	PreCheckoutQuery Handler
}

// DefaultHandlers builds the standard handler set.
func DefaultHandlers(deps HandlerDeps) Handlers {
	if deps.PreCheckout == nil {
		deps.PreCheckout = ApproveAll
	}
	return Handlers{
		Message:          NewStartHandler(deps),
		CallbackQuery:    NewCallbackHandler(deps),
		InlineQuery:      NewInlineHandler(deps),
		WebAppQuery:      NewWebAppHandler(deps),
		PreCheckoutQuery: NewPreCheckoutHandler(deps),
	}
}
