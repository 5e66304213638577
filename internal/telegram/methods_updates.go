package telegram

import (
	"context"
	"encoding/json"

	"github.com/go-telegram/bot/models"
)

// Getting updates.

// GetUpdates receives incoming updates using long polling.
func (c *Client) GetUpdates(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getUpdates", params)
}

// SetWebhook registers the HTTPS endpoint Telegram pushes updates to.
func (c *Client) SetWebhook(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setWebhook", params)
}

// DeleteWebhook removes the webhook integration.
func (c *Client) DeleteWebhook(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "deleteWebhook", params)
}

// GetWebhookInfo returns the current webhook status.
func (c *Client) GetWebhookInfo(ctx context.Context) (*models.WebhookInfo, error) {
	return call[*models.WebhookInfo](ctx, c, "getWebhookInfo", nil)
}
