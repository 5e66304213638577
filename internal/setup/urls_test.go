package setup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/restobot/internal/setup"
)

func TestValidateWebhookURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url   string
		valid bool
	}{
		{"https://food.example.com/api/telegram/webhook/1", true},
		{"https://food.example.com:8443/api/telegram/webhook/1", true},
		{"https://food.example.com:88/hook", true},
		{"https://food.example.com:80/hook", true},
		{"https://food.example.com:8080/hook", false},
		{"http://food.example.com/hook", false},
		{"/api/telegram/webhook/1", false},
	}
	for _, tt := range tests {
		err := setup.ValidateWebhookURL(tt.url)
		if tt.valid {
			assert.NoError(t, err, tt.url)
		} else {
			assert.Error(t, err, tt.url)
		}
	}
}

func TestMiniAppURL(t *testing.T) {
	t.Parallel()

	got, err := setup.MiniAppURL("https://food.example.com/", "pizza")
	require.NoError(t, err)
	assert.Equal(t, "https://food.example.com/restaurant/pizza", got)

	_, err = setup.MiniAppURL("https://food.example.com", " ")
	assert.ErrorIs(t, err, setup.ErrNoSlug)
}

func TestSecretToken(t *testing.T) {
	t.Parallel()

	assert.Empty(t, setup.SecretToken("", 1))

	token := setup.SecretToken("s3cret", 1)
	assert.Len(t, token, 64)
	assert.NotEqual(t, token, setup.SecretToken("s3cret", 2))
	assert.True(t, setup.VerifySecretToken("s3cret", 1, token))
	assert.False(t, setup.VerifySecretToken("s3cret", 2, token))
	assert.True(t, setup.VerifySecretToken("", 1, "anything"))
}
