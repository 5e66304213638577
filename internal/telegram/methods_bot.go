package telegram

import (
	"context"
	"encoding/json"

	"github.com/go-telegram/bot/models"
)

// Bot identity, profile and account-level methods.

// GetMe returns the bot's own user; it doubles as a token check.
func (c *Client) GetMe(ctx context.Context) (*models.User, error) {
	return call[*models.User](ctx, c, "getMe", nil)
}

// LogOut calls the logOut Bot API method.
func (c *Client) LogOut(ctx context.Context) (bool, error) {
	return c.boolean(ctx, "logOut", nil)
}

// Close calls the close Bot API method.
func (c *Client) Close(ctx context.Context) (bool, error) {
	return c.boolean(ctx, "close", nil)
}

// SetMyCommands replaces the bot's command list.
func (c *Client) SetMyCommands(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setMyCommands", params)
}

// DeleteMyCommands calls the deleteMyCommands Bot API method.
func (c *Client) DeleteMyCommands(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "deleteMyCommands", params)
}

// GetMyCommands calls the getMyCommands Bot API method.
func (c *Client) GetMyCommands(ctx context.Context, params Params) ([]models.BotCommand, error) {
	return call[[]models.BotCommand](ctx, c, "getMyCommands", params)
}

// SetMyName changes the bot's display name (0-64 characters).
func (c *Client) SetMyName(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setMyName", params)
}

// GetMyName calls the getMyName Bot API method.
func (c *Client) GetMyName(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getMyName", params)
}

// SetMyDescription changes the text shown in an empty chat (0-512 characters).
func (c *Client) SetMyDescription(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setMyDescription", params)
}

// GetMyDescription calls the getMyDescription Bot API method.
func (c *Client) GetMyDescription(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getMyDescription", params)
}

// SetMyShortDescription changes the profile bio (0-120 characters).
func (c *Client) SetMyShortDescription(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setMyShortDescription", params)
}

// GetMyShortDescription calls the getMyShortDescription Bot API method.
func (c *Client) GetMyShortDescription(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getMyShortDescription", params)
}

// SetChatMenuButton changes the menu button of a private chat, or the default one.
func (c *Client) SetChatMenuButton(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setChatMenuButton", params)
}

// GetChatMenuButton calls the getChatMenuButton Bot API method.
func (c *Client) GetChatMenuButton(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getChatMenuButton", params)
}

// SetMyDefaultAdministratorRights calls the setMyDefaultAdministratorRights Bot API method.
func (c *Client) SetMyDefaultAdministratorRights(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setMyDefaultAdministratorRights", params)
}

// GetMyDefaultAdministratorRights calls the getMyDefaultAdministratorRights Bot API method.
func (c *Client) GetMyDefaultAdministratorRights(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getMyDefaultAdministratorRights", params)
}

// GetUserProfilePhotos calls the getUserProfilePhotos Bot API method.
func (c *Client) GetUserProfilePhotos(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getUserProfilePhotos", params)
}

// SetUserEmojiStatus calls the setUserEmojiStatus Bot API method.
func (c *Client) SetUserEmojiStatus(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setUserEmojiStatus", params)
}

// GetFile prepares a file for download.
func (c *Client) GetFile(ctx context.Context, params Params) (*models.File, error) {
	return call[*models.File](ctx, c, "getFile", params)
}

// GetUserChatBoosts calls the getUserChatBoosts Bot API method.
func (c *Client) GetUserChatBoosts(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getUserChatBoosts", params)
}

// GetBusinessConnection calls the getBusinessConnection Bot API method.
func (c *Client) GetBusinessConnection(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getBusinessConnection", params)
}

// GetAvailableGifts calls the getAvailableGifts Bot API method.
func (c *Client) GetAvailableGifts(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, "getAvailableGifts", nil)
}

// SendGift calls the sendGift Bot API method.
func (c *Client) SendGift(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "sendGift", params)
}

// GiftPremiumSubscription calls the giftPremiumSubscription Bot API method.
func (c *Client) GiftPremiumSubscription(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "giftPremiumSubscription", params)
}

// VerifyUser calls the verifyUser Bot API method.
func (c *Client) VerifyUser(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "verifyUser", params)
}

// VerifyChat calls the verifyChat Bot API method.
func (c *Client) VerifyChat(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "verifyChat", params)
}

// RemoveUserVerification calls the removeUserVerification Bot API method.
func (c *Client) RemoveUserVerification(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "removeUserVerification", params)
}

// RemoveChatVerification calls the removeChatVerification Bot API method.
func (c *Client) RemoveChatVerification(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "removeChatVerification", params)
}

// SetPassportDataErrors calls the setPassportDataErrors Bot API method.
func (c *Client) SetPassportDataErrors(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setPassportDataErrors", params)
}
