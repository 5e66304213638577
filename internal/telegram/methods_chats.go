package telegram

import (
	"context"
	"encoding/json"
)

// Chat administration and forum topics.

// BanChatMember calls the banChatMember Bot API method.
func (c *Client) BanChatMember(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "banChatMember", params)
}

// UnbanChatMember calls the unbanChatMember Bot API method.
func (c *Client) UnbanChatMember(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "unbanChatMember", params)
}

// RestrictChatMember calls the restrictChatMember Bot API method.
func (c *Client) RestrictChatMember(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "restrictChatMember", params)
}

// PromoteChatMember calls the promoteChatMember Bot API method.
func (c *Client) PromoteChatMember(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "promoteChatMember", params)
}

// SetChatAdministratorCustomTitle calls the setChatAdministratorCustomTitle Bot API method.
func (c *Client) SetChatAdministratorCustomTitle(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setChatAdministratorCustomTitle", params)
}

// BanChatSenderChat calls the banChatSenderChat Bot API method.
func (c *Client) BanChatSenderChat(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "banChatSenderChat", params)
}

// UnbanChatSenderChat calls the unbanChatSenderChat Bot API method.
func (c *Client) UnbanChatSenderChat(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "unbanChatSenderChat", params)
}

// SetChatPermissions calls the setChatPermissions Bot API method.
func (c *Client) SetChatPermissions(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setChatPermissions", params)
}

// ExportChatInviteLink calls the exportChatInviteLink Bot API method.
func (c *Client) ExportChatInviteLink(ctx context.Context, params Params) (string, error) {
	return call[string](ctx, c, "exportChatInviteLink", params)
}

// CreateChatInviteLink calls the createChatInviteLink Bot API method.
func (c *Client) CreateChatInviteLink(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "createChatInviteLink", params)
}

// EditChatInviteLink calls the editChatInviteLink Bot API method.
func (c *Client) EditChatInviteLink(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "editChatInviteLink", params)
}

// CreateChatSubscriptionInviteLink calls the createChatSubscriptionInviteLink Bot API method.
func (c *Client) CreateChatSubscriptionInviteLink(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "createChatSubscriptionInviteLink", params)
}

// EditChatSubscriptionInviteLink calls the editChatSubscriptionInviteLink Bot API method.
func (c *Client) EditChatSubscriptionInviteLink(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "editChatSubscriptionInviteLink", params)
}

// RevokeChatInviteLink calls the revokeChatInviteLink Bot API method.
func (c *Client) RevokeChatInviteLink(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "revokeChatInviteLink", params)
}

// ApproveChatJoinRequest calls the approveChatJoinRequest Bot API method.
func (c *Client) ApproveChatJoinRequest(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "approveChatJoinRequest", params)
}

// DeclineChatJoinRequest calls the declineChatJoinRequest Bot API method.
func (c *Client) DeclineChatJoinRequest(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "declineChatJoinRequest", params)
}

// SetChatPhoto calls the setChatPhoto Bot API method.
func (c *Client) SetChatPhoto(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setChatPhoto", params)
}

// DeleteChatPhoto calls the deleteChatPhoto Bot API method.
func (c *Client) DeleteChatPhoto(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "deleteChatPhoto", params)
}

// SetChatTitle calls the setChatTitle Bot API method.
func (c *Client) SetChatTitle(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setChatTitle", params)
}

// SetChatDescription calls the setChatDescription Bot API method.
func (c *Client) SetChatDescription(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setChatDescription", params)
}

// PinChatMessage calls the pinChatMessage Bot API method.
func (c *Client) PinChatMessage(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "pinChatMessage", params)
}

// UnpinChatMessage calls the unpinChatMessage Bot API method.
func (c *Client) UnpinChatMessage(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "unpinChatMessage", params)
}

// UnpinAllChatMessages calls the unpinAllChatMessages Bot API method.
func (c *Client) UnpinAllChatMessages(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "unpinAllChatMessages", params)
}

// LeaveChat calls the leaveChat Bot API method.
func (c *Client) LeaveChat(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "leaveChat", params)
}

// GetChat returns up-to-date chat information (ChatFullInfo).
func (c *Client) GetChat(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getChat", params)
}

// GetChatAdministrators calls the getChatAdministrators Bot API method.
func (c *Client) GetChatAdministrators(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getChatAdministrators", params)
}

// GetChatMemberCount calls the getChatMemberCount Bot API method.
func (c *Client) GetChatMemberCount(ctx context.Context, params Params) (int, error) {
	return call[int](ctx, c, "getChatMemberCount", params)
}

// GetChatMember calls the getChatMember Bot API method.
func (c *Client) GetChatMember(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getChatMember", params)
}

// SetChatStickerSet calls the setChatStickerSet Bot API method.
func (c *Client) SetChatStickerSet(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setChatStickerSet", params)
}

// DeleteChatStickerSet calls the deleteChatStickerSet Bot API method.
func (c *Client) DeleteChatStickerSet(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "deleteChatStickerSet", params)
}

// GetForumTopicIconStickers calls the getForumTopicIconStickers Bot API method.
func (c *Client) GetForumTopicIconStickers(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, "getForumTopicIconStickers", nil)
}

// CreateForumTopic calls the createForumTopic Bot API method.
func (c *Client) CreateForumTopic(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "createForumTopic", params)
}

// EditForumTopic calls the editForumTopic Bot API method.
func (c *Client) EditForumTopic(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "editForumTopic", params)
}

// CloseForumTopic calls the closeForumTopic Bot API method.
func (c *Client) CloseForumTopic(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "closeForumTopic", params)
}

// ReopenForumTopic calls the reopenForumTopic Bot API method.
func (c *Client) ReopenForumTopic(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "reopenForumTopic", params)
}

// DeleteForumTopic calls the deleteForumTopic Bot API method.
func (c *Client) DeleteForumTopic(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "deleteForumTopic", params)
}

// UnpinAllForumTopicMessages calls the unpinAllForumTopicMessages Bot API method.
func (c *Client) UnpinAllForumTopicMessages(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "unpinAllForumTopicMessages", params)
}

// EditGeneralForumTopic calls the editGeneralForumTopic Bot API method.
func (c *Client) EditGeneralForumTopic(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "editGeneralForumTopic", params)
}

// CloseGeneralForumTopic calls the closeGeneralForumTopic Bot API method.
func (c *Client) CloseGeneralForumTopic(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "closeGeneralForumTopic", params)
}

// ReopenGeneralForumTopic calls the reopenGeneralForumTopic Bot API method.
func (c *Client) ReopenGeneralForumTopic(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "reopenGeneralForumTopic", params)
}

// HideGeneralForumTopic calls the hideGeneralForumTopic Bot API method.
func (c *Client) HideGeneralForumTopic(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "hideGeneralForumTopic", params)
}

// UnhideGeneralForumTopic calls the unhideGeneralForumTopic Bot API method.
func (c *Client) UnhideGeneralForumTopic(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "unhideGeneralForumTopic", params)
}

// UnpinAllGeneralForumTopicMessages calls the unpinAllGeneralForumTopicMessages Bot API method.
func (c *Client) UnpinAllGeneralForumTopicMessages(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "unpinAllGeneralForumTopicMessages", params)
}
