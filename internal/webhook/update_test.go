package webhook_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/restobot/internal/webhook"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want webhook.UpdateKind
	}{
		{"message", `{"update_id":1,"message":{"message_id":1,"date":1,"chat":{"id":1,"type":"private"}}}`, webhook.KindMessage},
		{"callback", `{"update_id":1,"callback_query":{"id":"c","from":{"id":1,"is_bot":false,"first_name":"A"},"chat_instance":"x"}}`, webhook.KindCallbackQuery},
		{"inline", `{"update_id":1,"inline_query":{"id":"i","from":{"id":1,"is_bot":false,"first_name":"A"},"query":"","offset":""}}`, webhook.KindInlineQuery},
		{"web app", `{"update_id":1,"web_app_query":{"query_id":"w"}}`, webhook.KindWebAppQuery},
		{"pre-checkout", `{"update_id":1,"pre_checkout_query":{"id":"p","from":{"id":1,"is_bot":false,"first_name":"A"},"currency":"XTR","total_amount":1,"invoice_payload":"x"}}`, webhook.KindPreCheckoutQuery},
		{"message wins", `{"update_id":1,"message":{"message_id":1,"date":1,"chat":{"id":1,"type":"private"}},"web_app_query":{"query_id":"w"}}`, webhook.KindMessage},
		{"unknown", `{"update_id":1,"poll":{"id":"p"}}`, webhook.KindUnknown},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var u webhook.Update
			require.NoError(t, json.Unmarshal([]byte(tt.body), &u))
			assert.Equal(t, tt.want, webhook.Classify(&u))
		})
	}

	assert.Equal(t, webhook.KindUnknown, webhook.Classify(nil))
	assert.Equal(t, "web_app_query", webhook.KindWebAppQuery.String())
}

func TestParseStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		param string
		ok    bool
	}{
		{"/start", "", true},
		{"/start promo_1", "promo_1", true},
		{"/start ", "", true},
		{"/starter", "", false},
		{"start", "", false},
	}
	for _, tt := range tests {
		param, ok := webhook.ParseStart(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.param, param, tt.text)
	}
}
