package webhook

import (
	"context"
	"fmt"

	"github.com/edgard/restobot/internal/telegram"
)

// NewCallbackHandler returns the handler that acknowledges callback button presses.
func NewCallbackHandler(deps HandlerDeps) Handler {
	return callbackHandler{deps}
}

type callbackHandler struct {
	deps HandlerDeps
}

// Handle answers the query exactly once so the client stops its loading indicator.
func (h callbackHandler) Handle(ctx context.Context, req *Request) error {
	cq := req.Update.CallbackQuery
	req.Logger.DebugContext(ctx, "Answering callback query", "callback_query_id", cq.ID, "data", cq.Data)

	if _, err := req.Client.AnswerCallbackQuery(ctx, telegram.Params{"callback_query_id": cq.ID}); err != nil {
		return fmt.Errorf("failed to answer callback query: %w", err)
	}
	return nil
}
