package telegram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/restobot/internal/telegram"
)

func TestStartAppLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, bot, param, mode, want string
	}{
		{"bare", "pizza_bot", "", "", "https://t.me/pizza_bot?startapp"},
		{"param", "@pizza_bot", "table 5", "", "https://t.me/pizza_bot?startapp=table+5"},
		{"mode", "pizza_bot", "a&b=c", "compact", "https://t.me/pizza_bot?startapp=a%26b%3Dc&mode=compact"},
		{"fullscreen", "pizza_bot", "x", "fullscreen", "https://t.me/pizza_bot?startapp=x&mode=fullscreen"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := telegram.StartAppLink(tt.bot, tt.param, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinks_InvalidMode(t *testing.T) {
	t.Parallel()

	_, err := telegram.StartAppLink("pizza_bot", "x", "popup")
	assert.ErrorIs(t, err, telegram.ErrInvalidMode)

	_, err = telegram.DirectAppLink("pizza_bot", "menu", "x", "FULLSCREEN")
	assert.ErrorIs(t, err, telegram.ErrInvalidMode)
}

func TestLinks_MissingUsername(t *testing.T) {
	t.Parallel()

	_, err := telegram.AttachLink("@", "x")
	assert.ErrorIs(t, err, telegram.ErrMissingUsername)
}

func TestDirectAppLink(t *testing.T) {
	t.Parallel()

	got, err := telegram.DirectAppLink("pizza_bot", "menu", "promo/1", "fullscreen")
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/pizza_bot/menu?startapp=promo%2F1&mode=fullscreen", got)
}

func TestAttachAndChooseLinks(t *testing.T) {
	t.Parallel()

	got, err := telegram.AttachLink("pizza_bot", "order 1")
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/pizza_bot?startattach=order+1", got)

	got, err = telegram.ChooseChatLink("pizza_bot", "share", telegram.ChooseUsers, telegram.ChooseGroups)
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/pizza_bot?startattach=share&choose=users+groups", got)

	got, err = telegram.ChooseChatLink("pizza_bot", "")
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/pizza_bot?startattach=&choose=users+bots+groups+channels", got)
}
