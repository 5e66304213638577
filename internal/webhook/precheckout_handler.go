package webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/edgard/restobot/internal/database"
	"github.com/edgard/restobot/internal/i18n"
	"github.com/edgard/restobot/internal/telegram"
)

// PreCheckoutValidator decides whether an order may proceed to payment.
// A non-empty reason is shown to the user when ok is false.
type PreCheckoutValidator interface {
	ValidatePreCheckout(ctx context.Context, tenant *database.Tenant, q *models.PreCheckoutQuery) (ok bool, reason string, err error)
}

// PreCheckoutFunc adapts a function to PreCheckoutValidator.
type PreCheckoutFunc func(ctx context.Context, tenant *database.Tenant, q *models.PreCheckoutQuery) (bool, string, error)

// ValidatePreCheckout calls f.
func (f PreCheckoutFunc) ValidatePreCheckout(ctx context.Context, tenant *database.Tenant, q *models.PreCheckoutQuery) (bool, string, error) {
	return f(ctx, tenant, q)
}

// ApproveAll accepts every order.
var ApproveAll PreCheckoutValidator = PreCheckoutFunc(func(context.Context, *database.Tenant, *models.PreCheckoutQuery) (bool, string, error) {
	return true, "", nil
})

// NewPreCheckoutHandler returns the handler that confirms or rejects orders.
func NewPreCheckoutHandler(deps HandlerDeps) Handler {
	if deps.PreCheckout == nil {
		deps.PreCheckout = ApproveAll
	}
	return preCheckoutHandler{deps}
}

type preCheckoutHandler struct {
	deps HandlerDeps
}

// Handle always answers the query: Telegram cancels the payment if no answer arrives in time.
func (h preCheckoutHandler) Handle(ctx context.Context, req *Request) error {
	q := req.Update.PreCheckoutQuery

	ok, reason, validateErr := h.deps.PreCheckout.ValidatePreCheckout(ctx, req.Tenant, q)
	if validateErr != nil {
		ok = false
		reason = ""
	}

	params := telegram.Params{"pre_checkout_query_id": q.ID, "ok": ok}
	if !ok {
		if reason == "" {
			reason = i18n.T(h.deps.DefaultLanguage, "precheckout_failed")
		}
		params["error_message"] = reason
	}

	req.Logger.InfoContext(ctx, "Answering pre-checkout query", "pre_checkout_query_id", q.ID, "ok", ok)
	_, err := req.Client.AnswerPreCheckoutQuery(ctx, params)
	if err != nil {
		err = fmt.Errorf("failed to answer pre-checkout query: %w", err)
	}
	if validateErr != nil {
		validateErr = fmt.Errorf("pre-checkout validation failed: %w", validateErr)
	}
	return errors.Join(validateErr, err)
}
