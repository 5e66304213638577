package webhook

import "github.com/go-telegram/bot/models"

// Update is an inbound webhook payload. It mirrors Telegram's Update for the
// kinds this gateway handles, plus web_app_query relayed by the Mini App.
type Update struct {
	UpdateID         int64                    `json:"update_id"`
	Message          *models.Message          `json:"message,omitempty"`
	CallbackQuery    *models.CallbackQuery    `json:"callback_query,omitempty"`
	InlineQuery      *models.InlineQuery      `json:"inline_query,omitempty"`
	WebAppQuery      *WebAppQuery             `json:"web_app_query,omitempty"`
	PreCheckoutQuery *models.PreCheckoutQuery `json:"pre_checkout_query,omitempty"`
}

// WebAppQuery is a Mini App request answered with answerWebAppQuery.
type WebAppQuery struct {
	QueryID string       `json:"query_id"`
	Data    string       `json:"data,omitempty"`
	From    *models.User `json:"from,omitempty"`
}

// UpdateKind classifies an Update.
type UpdateKind int

// Update kinds in classification order.
const (
	KindUnknown UpdateKind = iota
	KindMessage
	KindCallbackQuery
	KindInlineQuery
	KindWebAppQuery
	KindPreCheckoutQuery
)

func (k UpdateKind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindCallbackQuery:
		return "callback_query"
	case KindInlineQuery:
		return "inline_query"
	case KindWebAppQuery:
		return "web_app_query"
	case KindPreCheckoutQuery:
		return "pre_checkout_query"
	case KindUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Classify returns the kind of u. The first populated field wins.
func Classify(u *Update) UpdateKind {
	switch {
	case u == nil:
		return KindUnknown
	case u.Message != nil:
		return KindMessage
	case u.CallbackQuery != nil:
		return KindCallbackQuery
	case u.InlineQuery != nil:
		return KindInlineQuery
	case u.WebAppQuery != nil:
		return KindWebAppQuery
	case u.PreCheckoutQuery != nil:
		return KindPreCheckoutQuery
	default:
		return KindUnknown
	}
}
