package telegram

import "sort"

// requiredParams lists, per Bot API method, the parameters that must be present
// and non-empty. False and zero values count as present.
var requiredParams = map[string][]string{
	"getUpdates":                        nil,
	"setWebhook":                        {"url"},
	"deleteWebhook":                     nil,
	"getWebhookInfo":                    nil,
	"getMe":                             nil,
	"logOut":                            nil,
	"close":                             nil,
	"setMyCommands":                     {"commands"},
	"deleteMyCommands":                  nil,
	"getMyCommands":                     nil,
	"setMyName":                         nil,
	"getMyName":                         nil,
	"setMyDescription":                  nil,
	"getMyDescription":                  nil,
	"setMyShortDescription":             nil,
	"getMyShortDescription":             nil,
	"setChatMenuButton":                 nil,
	"getChatMenuButton":                 nil,
	"setMyDefaultAdministratorRights":   nil,
	"getMyDefaultAdministratorRights":   nil,
	"getUserProfilePhotos":              {"user_id"},
	"setUserEmojiStatus":                {"user_id"},
	"getFile":                           {"file_id"},
	"getUserChatBoosts":                 {"chat_id", "user_id"},
	"getBusinessConnection":             {"business_connection_id"},
	"getAvailableGifts":                 nil,
	"sendGift":                          {"gift_id"},
	"giftPremiumSubscription":           {"user_id", "month_count", "star_count"},
	"verifyUser":                        {"user_id"},
	"verifyChat":                        {"chat_id"},
	"removeUserVerification":            {"user_id"},
	"removeChatVerification":            {"chat_id"},
	"setPassportDataErrors":             {"user_id", "errors"},
	"sendMessage":                       {"chat_id", "text"},
	"forwardMessage":                    {"chat_id", "from_chat_id", "message_id"},
	"forwardMessages":                   {"chat_id", "from_chat_id", "message_ids"},
	"copyMessage":                       {"chat_id", "from_chat_id", "message_id"},
	"copyMessages":                      {"chat_id", "from_chat_id", "message_ids"},
	"sendPhoto":                         {"chat_id", "photo"},
	"sendAudio":                         {"chat_id", "audio"},
	"sendDocument":                      {"chat_id", "document"},
	"sendVideo":                         {"chat_id", "video"},
	"sendAnimation":                     {"chat_id", "animation"},
	"sendVoice":                         {"chat_id", "voice"},
	"sendVideoNote":                     {"chat_id", "video_note"},
	"sendPaidMedia":                     {"chat_id", "star_count", "media"},
	"sendMediaGroup":                    {"chat_id", "media"},
	"sendLocation":                      {"chat_id", "latitude", "longitude"},
	"sendVenue":                         {"chat_id", "latitude", "longitude", "title", "address"},
	"sendContact":                       {"chat_id", "phone_number", "first_name"},
	"sendPoll":                          {"chat_id", "question", "options"},
	"sendChecklist":                     {"business_connection_id", "chat_id", "checklist"},
	"sendDice":                          {"chat_id"},
	"sendChatAction":                    {"chat_id", "action"},
	"setMessageReaction":                {"chat_id", "message_id"},
	"editMessageText":                   {"text"},
	"editMessageCaption":                nil,
	"editMessageMedia":                  {"media"},
	"editMessageLiveLocation":           {"latitude", "longitude"},
	"stopMessageLiveLocation":           nil,
	"editMessageChecklist":              {"business_connection_id", "chat_id", "message_id", "checklist"},
	"editMessageReplyMarkup":            nil,
	"stopPoll":                          {"chat_id", "message_id"},
	"deleteMessage":                     {"chat_id", "message_id"},
	"deleteMessages":                    {"chat_id", "message_ids"},
	"answerCallbackQuery":               {"callback_query_id"},
	"answerInlineQuery":                 {"inline_query_id", "results"},
	"answerWebAppQuery":                 {"web_app_query_id", "result"},
	"savePreparedInlineMessage":         {"user_id", "result"},
	"sendGame":                          {"chat_id", "game_short_name"},
	"setGameScore":                      {"user_id", "score"},
	"getGameHighScores":                 {"user_id"},
	"banChatMember":                     {"chat_id", "user_id"},
	"unbanChatMember":                   {"chat_id", "user_id"},
	"restrictChatMember":                {"chat_id", "user_id", "permissions"},
	"promoteChatMember":                 {"chat_id", "user_id"},
	"setChatAdministratorCustomTitle":   {"chat_id", "user_id", "custom_title"},
	"banChatSenderChat":                 {"chat_id", "sender_chat_id"},
	"unbanChatSenderChat":               {"chat_id", "sender_chat_id"},
	"setChatPermissions":                {"chat_id", "permissions"},
	"exportChatInviteLink":              {"chat_id"},
	"createChatInviteLink":              {"chat_id"},
	"editChatInviteLink":                {"chat_id", "invite_link"},
	"createChatSubscriptionInviteLink":  {"chat_id", "subscription_period", "subscription_price"},
	"editChatSubscriptionInviteLink":    {"chat_id", "invite_link"},
	"revokeChatInviteLink":              {"chat_id", "invite_link"},
	"approveChatJoinRequest":            {"chat_id", "user_id"},
	"declineChatJoinRequest":            {"chat_id", "user_id"},
	"setChatPhoto":                      {"chat_id", "photo"},
	"deleteChatPhoto":                   {"chat_id"},
	"setChatTitle":                      {"chat_id", "title"},
	"setChatDescription":                {"chat_id"},
	"pinChatMessage":                    {"chat_id", "message_id"},
	"unpinChatMessage":                  {"chat_id"},
	"unpinAllChatMessages":              {"chat_id"},
	"leaveChat":                         {"chat_id"},
	"getChat":                           {"chat_id"},
	"getChatAdministrators":             {"chat_id"},
	"getChatMemberCount":                {"chat_id"},
	"getChatMember":                     {"chat_id", "user_id"},
	"setChatStickerSet":                 {"chat_id", "sticker_set_name"},
	"deleteChatStickerSet":              {"chat_id"},
	"getForumTopicIconStickers":         nil,
	"createForumTopic":                  {"chat_id", "name"},
	"editForumTopic":                    {"chat_id", "message_thread_id"},
	"closeForumTopic":                   {"chat_id", "message_thread_id"},
	"reopenForumTopic":                  {"chat_id", "message_thread_id"},
	"deleteForumTopic":                  {"chat_id", "message_thread_id"},
	"unpinAllForumTopicMessages":        {"chat_id", "message_thread_id"},
	"editGeneralForumTopic":             {"chat_id", "name"},
	"closeGeneralForumTopic":            {"chat_id"},
	"reopenGeneralForumTopic":           {"chat_id"},
	"hideGeneralForumTopic":             {"chat_id"},
	"unhideGeneralForumTopic":           {"chat_id"},
	"unpinAllGeneralForumTopicMessages": {"chat_id"},
	"sendSticker":                       {"chat_id", "sticker"},
	"getStickerSet":                     {"name"},
	"getCustomEmojiStickers":            {"custom_emoji_ids"},
	"uploadStickerFile":                 {"user_id", "sticker", "sticker_format"},
	"createNewStickerSet":               {"user_id", "name", "title", "stickers"},
	"addStickerToSet":                   {"user_id", "name", "sticker"},
	"setStickerPositionInSet":           {"sticker", "position"},
	"deleteStickerFromSet":              {"sticker"},
	"replaceStickerInSet":               {"user_id", "name", "old_sticker", "sticker"},
	"setStickerEmojiList":               {"sticker", "emoji_list"},
	"setStickerKeywords":                {"sticker"},
	"setStickerMaskPosition":            {"sticker"},
	"setStickerSetTitle":                {"name", "title"},
	"setStickerSetThumbnail":            {"name", "user_id", "format"},
	"setCustomEmojiStickerSetThumbnail": {"name"},
	"deleteStickerSet":                  {"name"},
	"sendInvoice":                       {"chat_id", "title", "description", "payload", "currency", "prices"},
	"createInvoiceLink":                 {"title", "description", "payload", "currency", "prices"},
	"answerShippingQuery":               {"shipping_query_id", "ok"},
	"answerPreCheckoutQuery":            {"pre_checkout_query_id", "ok"},
	"getMyStarBalance":                  nil,
	"getStarTransactions":               nil,
	"refundStarPayment":                 {"user_id", "telegram_payment_charge_id"},
	"editUserStarSubscription":          {"user_id", "telegram_payment_charge_id", "is_canceled"},
	"readBusinessMessage":               {"business_connection_id", "chat_id", "message_id"},
	"deleteBusinessMessages":            {"business_connection_id", "message_ids"},
	"setBusinessAccountName":            {"business_connection_id", "first_name"},
	"setBusinessAccountUsername":        {"business_connection_id"},
	"setBusinessAccountBio":             {"business_connection_id"},
	"setBusinessAccountProfilePhoto":    {"business_connection_id", "photo"},
	"removeBusinessAccountProfilePhoto": {"business_connection_id"},
	"setBusinessAccountGiftSettings":    {"business_connection_id", "show_gift_button", "accepted_gift_types"},
	"getBusinessAccountStarBalance":     {"business_connection_id"},
	"transferBusinessAccountStars":      {"business_connection_id", "star_count"},
	"getBusinessAccountGifts":           {"business_connection_id"},
	"convertGiftToStars":                {"business_connection_id", "owned_gift_id"},
	"upgradeGift":                       {"business_connection_id", "owned_gift_id"},
	"transferGift":                      {"business_connection_id", "owned_gift_id", "new_owner_chat_id"},
	"postStory":                         {"business_connection_id", "content", "active_period"},
	"editStory":                         {"business_connection_id", "story_id", "content"},
	"deleteStory":                       {"business_connection_id", "story_id"},
}

// RequiredParams returns the required parameters of method and whether the method is known.
func RequiredParams(method string) ([]string, bool) {
	params, ok := requiredParams[method]
	return params, ok
}

// Methods returns every supported Bot API method name, sorted.
func Methods() []string {
	names := make([]string, 0, len(requiredParams))
	for name := range requiredParams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
