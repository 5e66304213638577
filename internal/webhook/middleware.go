package webhook

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"
)

// Middleware wraps a Handler.
type Middleware func(next Handler) Handler

// chain applies mws so that the first one is the outermost.
func chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Logging logs each update with its identifying fields and processing time.
func Logging() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, req *Request) error {
			startTime := time.Now()
			req.Logger = req.Logger.With(updateAttrs(req.Update)...)
			req.Logger.DebugContext(ctx, "Processing update")

			err := next.Handle(ctx, req)

			req.Logger.InfoContext(ctx, "Update processed",
				"duration_ms", time.Since(startTime).Milliseconds(),
				"ok", err == nil,
			)
			return err
		})
	}
}

// Recover turns a handler panic into an error.
func Recover() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, req *Request) (err error) {
			defer func() {
				if r := recover(); r != nil {
					req.Logger.ErrorContext(ctx, "Handler panicked", "panic", r, "stack", string(debug.Stack()))
					err = fmt.Errorf("handler panic: %v", r)
				}
			}()
			return next.Handle(ctx, req)
		})
	}
}

func updateAttrs(u *Update) []any {
	attrs := []any{"update_id", u.UpdateID}
	switch {
	case u.Message != nil:
		attrs = append(attrs,
			"message_id", u.Message.ID,
			"chat_id", u.Message.Chat.ID,
			"text_preview", truncateString(u.Message.Text, 50),
		)
		if u.Message.From != nil {
			attrs = append(attrs, "user_id", u.Message.From.ID)
		}
	case u.CallbackQuery != nil:
		attrs = append(attrs, "callback_query_id", u.CallbackQuery.ID, "data", u.CallbackQuery.Data)
	case u.InlineQuery != nil:
		attrs = append(attrs, "inline_query_id", u.InlineQuery.ID, "query", truncateString(u.InlineQuery.Query, 50))
	case u.WebAppQuery != nil:
		attrs = append(attrs, "web_app_query_id", u.WebAppQuery.QueryID)
	case u.PreCheckoutQuery != nil:
		attrs = append(attrs, "pre_checkout_query_id", u.PreCheckoutQuery.ID)
	}
	return attrs
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
