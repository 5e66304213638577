// Package i18n holds the bot's user-facing message catalogs.
package i18n

import (
	"fmt"
	"strings"
)

// DefaultLanguage is used when neither the user's nor the configured language is supported.
const DefaultLanguage = "en"

var catalogs = map[string]map[string]string{
	"en": {
		"welcome":            "Welcome to %s! 🍽\nTap the button below to browse the menu and place an order.",
		"open_app":           "Open app",
		"cmd_start":          "Open the restaurant menu",
		"inline_description": "Open the %s menu",
		"inline_message":     "🍽 %s\nOpen the menu in the bot.",
		"webapp_message":     "🍽 %s\n%s",
		"precheckout_failed": "Sorry, this order can no longer be processed.",
	},
	"ru": {
		"welcome":            "Добро пожаловать в %s! 🍽\nНажмите кнопку ниже, чтобы открыть меню и сделать заказ.",
		"open_app":           "Открыть приложение",
		"cmd_start":          "Открыть меню ресторана",
		"inline_description": "Открыть меню %s",
		"inline_message":     "🍽 %s\nОткройте меню в боте.",
		"webapp_message":     "🍽 %s\n%s",
		"precheckout_failed": "К сожалению, этот заказ больше не может быть обработан.",
	},
}

// T returns the message for key in lang, falling back to English and then to the key itself.
func T(lang, key string) string {
	if m, ok := catalogs[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := catalogs[DefaultLanguage][key]; ok {
		return v
	}
	return key
}

// Tf formats the message for key with args.
func Tf(lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// Languages returns the supported language codes.
func Languages() []string {
	return []string{"en", "ru"}
}

// Resolve picks a catalog from a Telegram language_code ("ru", "pt-br", "en-US"),
// falling back to fallback and then to DefaultLanguage.
func Resolve(languageCode, fallback string) string {
	code := normalize(languageCode)
	if Supported(code) {
		return code
	}
	if fb := normalize(fallback); Supported(fb) {
		return fb
	}
	return DefaultLanguage
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i >= 0 {
		s = s[:i]
	}
	return s
}
