package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edgard/restobot/internal/i18n"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code, fallback, want string
	}{
		{"ru", "en", "ru"},
		{"en-US", "ru", "en"},
		{"RU_ru", "en", "ru"},
		{"de", "ru", "ru"},
		{"", "en", "en"},
		{"pt-br", "xx", "en"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, i18n.Resolve(tt.code, tt.fallback), "%q/%q", tt.code, tt.fallback)
	}
}

func TestT_Fallbacks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Открыть приложение", i18n.T("ru", "open_app"))
	assert.Equal(t, "Open app", i18n.T("de", "open_app"))
	assert.Equal(t, "no_such_key", i18n.T("en", "no_such_key"))
}

func TestTf(t *testing.T) {
	t.Parallel()

	assert.Contains(t, i18n.Tf("en", "welcome", "Pizza Place"), "Welcome to Pizza Place!")
	assert.Contains(t, i18n.Tf("ru", "welcome", "Пиццерия"), "Пиццерия")
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	t.Parallel()

	keys := []string{"welcome", "open_app", "cmd_start", "inline_description", "inline_message", "webapp_message", "precheckout_failed"}
	for _, lang := range i18n.Languages() {
		for _, key := range keys {
			assert.NotEqual(t, key, i18n.T(lang, key), "%s missing %s", lang, key)
		}
	}
}
