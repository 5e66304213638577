package webhook

import (
	"context"
	"fmt"
	"strconv"

	"github.com/edgard/restobot/internal/i18n"
	"github.com/edgard/restobot/internal/setup"
	"github.com/edgard/restobot/internal/telegram"
)

const inlineCacheSeconds = 300

// NewInlineHandler returns the handler that answers inline queries with the tenant card.
func NewInlineHandler(deps HandlerDeps) Handler {
	return inlineHandler{deps}
}

type inlineHandler struct {
	deps HandlerDeps
}

func (h inlineHandler) Handle(ctx context.Context, req *Request) error {
	q := req.Update.InlineQuery
	languageCode := ""
	if q.From != nil {
		languageCode = q.From.LanguageCode
	}
	lang := i18n.Resolve(languageCode, h.deps.DefaultLanguage)

	article := tenantArticle(req, lang, "inline", i18n.Tf(lang, "inline_message", req.Tenant.Name))
	if miniAppURL, err := setup.MiniAppURL(h.deps.AppBaseURL, req.Tenant.Slug); err == nil && setup.IsHTTPS(miniAppURL) {
		article["reply_markup"] = telegram.InlineKeyboard(telegram.Row(telegram.URLButton(i18n.T(lang, "open_app"), miniAppURL)))
	}

	req.Logger.DebugContext(ctx, "Answering inline query", "inline_query_id", q.ID, "query", q.Query)
	_, err := req.Client.AnswerInlineQuery(ctx, telegram.Params{
		"inline_query_id": q.ID,
		"results":         []any{article},
		"cache_time":      inlineCacheSeconds,
	})
	if err != nil {
		return fmt.Errorf("failed to answer inline query: %w", err)
	}
	return nil
}

// tenantArticle builds an InlineQueryResultArticle describing the tenant.
func tenantArticle(req *Request, lang, idSuffix, messageText string) map[string]any {
	description := req.Tenant.Description
	if description == "" {
		description = i18n.Tf(lang, "inline_description", req.Tenant.Name)
	}
	return map[string]any{
		"type":        "article",
		"id":          "tenant-" + strconv.FormatInt(req.Tenant.ID, 10) + "-" + idSuffix,
		"title":       req.Tenant.Name,
		"description": description,
		"input_message_content": map[string]any{
			"message_text": messageText,
		},
	}
}
