package telegram

import (
	"context"
	"encoding/json"

	"github.com/go-telegram/bot/models"
)

// Payments and Telegram Stars.

// SendInvoice sends an invoice; use "XTR" as currency for Telegram Stars.
func (c *Client) SendInvoice(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendInvoice", params)
}

// CreateInvoiceLink calls the createInvoiceLink Bot API method.
func (c *Client) CreateInvoiceLink(ctx context.Context, params Params) (string, error) {
	return call[string](ctx, c, "createInvoiceLink", params)
}

// AnswerShippingQuery calls the answerShippingQuery Bot API method.
func (c *Client) AnswerShippingQuery(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "answerShippingQuery", params)
}

// AnswerPreCheckoutQuery confirms or rejects an order. It must be called within 10 seconds of the query.
func (c *Client) AnswerPreCheckoutQuery(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "answerPreCheckoutQuery", params)
}

// GetMyStarBalance calls the getMyStarBalance Bot API method.
func (c *Client) GetMyStarBalance(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, "getMyStarBalance", nil)
}

// GetStarTransactions calls the getStarTransactions Bot API method.
func (c *Client) GetStarTransactions(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getStarTransactions", params)
}

// RefundStarPayment calls the refundStarPayment Bot API method.
func (c *Client) RefundStarPayment(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "refundStarPayment", params)
}

// EditUserStarSubscription calls the editUserStarSubscription Bot API method.
func (c *Client) EditUserStarSubscription(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "editUserStarSubscription", params)
}
