package telegram

import (
	"context"
	"encoding/json"

	"github.com/go-telegram/bot/models"
)

// Sending, editing and answering messages.

// SendMessage sends a text message.
func (c *Client) SendMessage(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendMessage", params)
}

// ForwardMessage calls the forwardMessage Bot API method.
func (c *Client) ForwardMessage(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "forwardMessage", params)
}

// ForwardMessages calls the forwardMessages Bot API method.
func (c *Client) ForwardMessages(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "forwardMessages", params)
}

// CopyMessage calls the copyMessage Bot API method.
func (c *Client) CopyMessage(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "copyMessage", params)
}

// CopyMessages calls the copyMessages Bot API method.
func (c *Client) CopyMessages(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "copyMessages", params)
}

// SendPhoto sends a photo by file id, URL or upload.
func (c *Client) SendPhoto(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendPhoto", params)
}

// SendAudio calls the sendAudio Bot API method.
func (c *Client) SendAudio(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendAudio", params)
}

// SendDocument calls the sendDocument Bot API method.
func (c *Client) SendDocument(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendDocument", params)
}

// SendVideo calls the sendVideo Bot API method.
func (c *Client) SendVideo(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendVideo", params)
}

// SendAnimation calls the sendAnimation Bot API method.
func (c *Client) SendAnimation(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendAnimation", params)
}

// SendVoice calls the sendVoice Bot API method.
func (c *Client) SendVoice(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendVoice", params)
}

// SendVideoNote calls the sendVideoNote Bot API method.
func (c *Client) SendVideoNote(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendVideoNote", params)
}

// SendPaidMedia calls the sendPaidMedia Bot API method.
func (c *Client) SendPaidMedia(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendPaidMedia", params)
}

// SendMediaGroup sends an album of 2-10 items.
func (c *Client) SendMediaGroup(ctx context.Context, params Params) ([]models.Message, error) {
	return call[[]models.Message](ctx, c, "sendMediaGroup", params)
}

// SendLocation calls the sendLocation Bot API method.
func (c *Client) SendLocation(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendLocation", params)
}

// SendVenue calls the sendVenue Bot API method.
func (c *Client) SendVenue(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendVenue", params)
}

// SendContact calls the sendContact Bot API method.
func (c *Client) SendContact(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendContact", params)
}

// SendPoll calls the sendPoll Bot API method.
func (c *Client) SendPoll(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendPoll", params)
}

// SendChecklist calls the sendChecklist Bot API method.
func (c *Client) SendChecklist(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendChecklist", params)
}

// SendDice calls the sendDice Bot API method.
func (c *Client) SendDice(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendDice", params)
}

// SendChatAction calls the sendChatAction Bot API method.
func (c *Client) SendChatAction(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "sendChatAction", params)
}

// SetMessageReaction calls the setMessageReaction Bot API method.
func (c *Client) SetMessageReaction(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "setMessageReaction", params)
}

// EditMessageText edits a text message. The result is the edited Message, or true for inline messages.
func (c *Client) EditMessageText(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "editMessageText", params)
}

// EditMessageCaption calls the editMessageCaption Bot API method.
func (c *Client) EditMessageCaption(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "editMessageCaption", params)
}

// EditMessageMedia calls the editMessageMedia Bot API method.
func (c *Client) EditMessageMedia(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "editMessageMedia", params)
}

// EditMessageLiveLocation calls the editMessageLiveLocation Bot API method.
func (c *Client) EditMessageLiveLocation(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "editMessageLiveLocation", params)
}

// StopMessageLiveLocation calls the stopMessageLiveLocation Bot API method.
func (c *Client) StopMessageLiveLocation(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "stopMessageLiveLocation", params)
}

// EditMessageChecklist calls the editMessageChecklist Bot API method.
func (c *Client) EditMessageChecklist(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "editMessageChecklist", params)
}

// EditMessageReplyMarkup calls the editMessageReplyMarkup Bot API method.
func (c *Client) EditMessageReplyMarkup(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "editMessageReplyMarkup", params)
}

// StopPoll calls the stopPoll Bot API method.
func (c *Client) StopPoll(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "stopPoll", params)
}

// DeleteMessage calls the deleteMessage Bot API method.
func (c *Client) DeleteMessage(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "deleteMessage", params)
}

// DeleteMessages calls the deleteMessages Bot API method.
func (c *Client) DeleteMessages(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "deleteMessages", params)
}

// AnswerCallbackQuery acknowledges a callback button press.
func (c *Client) AnswerCallbackQuery(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "answerCallbackQuery", params)
}

// AnswerInlineQuery calls the answerInlineQuery Bot API method.
func (c *Client) AnswerInlineQuery(ctx context.Context, params Params) (bool, error) {
	return c.boolean(ctx, "answerInlineQuery", params)
}

// AnswerWebAppQuery replies on behalf of a Mini App; the result is a SentWebAppMessage.
func (c *Client) AnswerWebAppQuery(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "answerWebAppQuery", params)
}

// SavePreparedInlineMessage calls the savePreparedInlineMessage Bot API method.
func (c *Client) SavePreparedInlineMessage(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "savePreparedInlineMessage", params)
}

// SendGame calls the sendGame Bot API method.
func (c *Client) SendGame(ctx context.Context, params Params) (*models.Message, error) {
	return c.message(ctx, "sendGame", params)
}

// SetGameScore calls the setGameScore Bot API method.
func (c *Client) SetGameScore(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "setGameScore", params)
}

// GetGameHighScores calls the getGameHighScores Bot API method.
func (c *Client) GetGameHighScores(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Do(ctx, "getGameHighScores", params)
}
