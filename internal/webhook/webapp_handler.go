package webhook

import (
	"context"
	"fmt"

	"github.com/edgard/restobot/internal/i18n"
	"github.com/edgard/restobot/internal/setup"
	"github.com/edgard/restobot/internal/telegram"
)

// NewWebAppHandler returns the handler that answers Mini App queries.
func NewWebAppHandler(deps HandlerDeps) Handler {
	return webAppHandler{deps}
}

type webAppHandler struct {
	deps HandlerDeps
}

func (h webAppHandler) Handle(ctx context.Context, req *Request) error {
	q := req.Update.WebAppQuery
	if q.QueryID == "" {
		return fmt.Errorf("web_app_query without query_id")
	}

	languageCode := ""
	if q.From != nil {
		languageCode = q.From.LanguageCode
	}
	lang := i18n.Resolve(languageCode, h.deps.DefaultLanguage)

	summary := req.Tenant.Description
	if miniAppURL, err := setup.MiniAppURL(h.deps.AppBaseURL, req.Tenant.Slug); err == nil {
		summary = miniAppURL
		if req.Tenant.Description != "" {
			summary = req.Tenant.Description + "\n" + miniAppURL
		}
	}

	_, err := req.Client.AnswerWebAppQuery(ctx, telegram.Params{
		"web_app_query_id": q.QueryID,
		"result":           tenantArticle(req, lang, "webapp", i18n.Tf(lang, "webapp_message", req.Tenant.Name, summary)),
	})
	if err != nil {
		return fmt.Errorf("failed to answer web app query: %w", err)
	}
	return nil
}
