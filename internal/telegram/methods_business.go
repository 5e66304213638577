package telegram

import (
	"context"
	"encoding/json"
)

// Business accounts and stories.

// ReadBusinessMessage calls the readBusinessMessage Bot API method.
func (c *Client) ReadBusinessMessage(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "readBusinessMessage", params)
}

// DeleteBusinessMessages calls the deleteBusinessMessages Bot API method.
func (c *Client) DeleteBusinessMessages(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "deleteBusinessMessages", params)
}

// SetBusinessAccountName calls the setBusinessAccountName Bot API method.
func (c *Client) SetBusinessAccountName(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setBusinessAccountName", params)
}

// SetBusinessAccountUsername calls the setBusinessAccountUsername Bot API method.
func (c *Client) SetBusinessAccountUsername(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setBusinessAccountUsername", params)
}

// SetBusinessAccountBio calls the setBusinessAccountBio Bot API method.
func (c *Client) SetBusinessAccountBio(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setBusinessAccountBio", params)
}

// SetBusinessAccountProfilePhoto calls the setBusinessAccountProfilePhoto Bot API method.
func (c *Client) SetBusinessAccountProfilePhoto(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setBusinessAccountProfilePhoto", params)
}

// RemoveBusinessAccountProfilePhoto calls the removeBusinessAccountProfilePhoto Bot API method.
func (c *Client) RemoveBusinessAccountProfilePhoto(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "removeBusinessAccountProfilePhoto", params)
}

// SetBusinessAccountGiftSettings calls the setBusinessAccountGiftSettings Bot API method.
func (c *Client) SetBusinessAccountGiftSettings(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setBusinessAccountGiftSettings", params)
}

// GetBusinessAccountStarBalance calls the getBusinessAccountStarBalance Bot API method.
func (c *Client) GetBusinessAccountStarBalance(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getBusinessAccountStarBalance", params)
}

// TransferBusinessAccountStars calls the transferBusinessAccountStars Bot API method.
func (c *Client) TransferBusinessAccountStars(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "transferBusinessAccountStars", params)
}

// GetBusinessAccountGifts calls the getBusinessAccountGifts Bot API method.
func (c *Client) GetBusinessAccountGifts(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getBusinessAccountGifts", params)
}

// ConvertGiftToStars calls the convertGiftToStars Bot API method.
func (c *Client) ConvertGiftToStars(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "convertGiftToStars", params)
}

// UpgradeGift calls the upgradeGift Bot API method.
func (c *Client) UpgradeGift(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "upgradeGift", params)
}

// TransferGift calls the transferGift Bot API method.
func (c *Client) TransferGift(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "transferGift", params)
}

// PostStory calls the postStory Bot API method.
func (c *Client) PostStory(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "postStory", params)
}

// EditStory calls the editStory Bot API method.
func (c *Client) EditStory(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "editStory", params)
}

// DeleteStory calls the deleteStory Bot API method.
func (c *Client) DeleteStory(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "deleteStory", params)
}
