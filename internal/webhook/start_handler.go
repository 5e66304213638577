package webhook

import (
	"context"
	"fmt"
	"strings"

	"github.com/edgard/restobot/internal/i18n"
	"github.com/edgard/restobot/internal/setup"
	"github.com/edgard/restobot/internal/telegram"
)

// NewStartHandler returns the message handler that answers /start in private chats.
func NewStartHandler(deps HandlerDeps) Handler {
	return startHandler{deps}
}

type startHandler struct {
	deps HandlerDeps
}

// ParseStart reports whether text is a /start command and returns its deep-link parameter.
func ParseStart(text string) (string, bool) {
	if text == "/start" {
		return "", true
	}
	if rest, ok := strings.CutPrefix(text, "/start "); ok {
		return strings.TrimSpace(rest), true
	}
	return "", false
}

func (h startHandler) Handle(ctx context.Context, req *Request) error {
	msg := req.Update.Message
	log := req.Logger.With("handler", "start")

	if string(msg.Chat.Type) != "private" {
		log.DebugContext(ctx, "Ignoring non-private message", "chat_id", msg.Chat.ID, "chat_type", msg.Chat.Type)
		return nil
	}
	startParam, ok := ParseStart(msg.Text)
	if !ok {
		return nil
	}

	languageCode := ""
	if msg.From != nil {
		languageCode = msg.From.LanguageCode
	}
	lang := i18n.Resolve(languageCode, h.deps.DefaultLanguage)

	log.InfoContext(ctx, "Handling /start command", "chat_id", msg.Chat.ID, "start_param", startParam, "lang", lang)

	params := telegram.Params{
		"chat_id": msg.Chat.ID,
		"text":    i18n.Tf(lang, "welcome", req.Tenant.Name),
	}
	if miniAppURL, err := setup.MiniAppURL(h.deps.AppBaseURL, req.Tenant.Slug); err == nil {
		params["reply_markup"] = telegram.InlineKeyboard(telegram.Row(appButton(i18n.T(lang, "open_app"), miniAppURL)))
	} else {
		log.WarnContext(ctx, "Tenant has no Mini App URL, sending welcome without button")
	}

	if _, err := req.Client.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("failed to send welcome message: %w", err)
	}
	return nil
}

// appButton opens url as a Mini App, or as a plain link when Telegram would refuse a web_app button.
func appButton(text, url string) telegram.Button {
	if setup.IsHTTPS(url) {
		return telegram.WebAppButton(text, url)
	}
	return telegram.URLButton(text, url)
}
