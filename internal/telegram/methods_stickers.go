package telegram

import (
	"context"
	"encoding/json"

	"github.com/go-telegram/bot/models"
)

// SendSticker calls the sendSticker Bot API method.
func (c *Client) SendSticker(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendSticker", params)
}

// GetStickerSet calls the getStickerSet Bot API method.
func (c *Client) GetStickerSet(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getStickerSet", params)
}

// GetCustomEmojiStickers calls the getCustomEmojiStickers Bot API method.
func (c *Client) GetCustomEmojiStickers(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getCustomEmojiStickers", params)
}

// UploadStickerFile calls the uploadStickerFile Bot API method.
func (c *Client) UploadStickerFile(ctx context.Context, params Params) (*models.File, error) {
	return call[*models.File](ctx, c, "uploadStickerFile", params)
}

// CreateNewStickerSet calls the createNewStickerSet Bot API method.
func (c *Client) CreateNewStickerSet(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "createNewStickerSet", params)
}

// AddStickerToSet calls the addStickerToSet Bot API method.
func (c *Client) AddStickerToSet(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "addStickerToSet", params)
}

// SetStickerPositionInSet calls the setStickerPositionInSet Bot API method.
func (c *Client) SetStickerPositionInSet(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setStickerPositionInSet", params)
}

// DeleteStickerFromSet calls the deleteStickerFromSet Bot API method.
func (c *Client) DeleteStickerFromSet(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "deleteStickerFromSet", params)
}

// ReplaceStickerInSet calls the replaceStickerInSet Bot API method.
func (c *Client) ReplaceStickerInSet(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "replaceStickerInSet", params)
}

// SetStickerEmojiList calls the setStickerEmojiList Bot API method.
func (c *Client) SetStickerEmojiList(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setStickerEmojiList", params)
}

// SetStickerKeywords calls the setStickerKeywords Bot API method.
func (c *Client) SetStickerKeywords(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setStickerKeywords", params)
}

// SetStickerMaskPosition calls the setStickerMaskPosition Bot API method.
func (c *Client) SetStickerMaskPosition(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setStickerMaskPosition", params)
}

// SetStickerSetTitle calls the setStickerSetTitle Bot API method.
func (c *Client) SetStickerSetTitle(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setStickerSetTitle", params)
}

// SetStickerSetThumbnail calls the setStickerSetThumbnail Bot API method.
func (c *Client) SetStickerSetThumbnail(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setStickerSetThumbnail", params)
}

// SetCustomEmojiStickerSetThumbnail calls the setCustomEmojiStickerSetThumbnail Bot API method.
func (c *Client) SetCustomEmojiStickerSetThumbnail(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setCustomEmojiStickerSetThumbnail", params)
}

// DeleteStickerSet calls the deleteStickerSet Bot API method.
func (c *Client) DeleteStickerSet(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "deleteStickerSet", params)
}
