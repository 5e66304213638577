package telegram

// Button is one keyboard button in Bot API schema.
type Button map[string]any

// Markup is a reply_markup value.
type Markup map[string]any

// InlineKeyboard builds an InlineKeyboardMarkup from rows of buttons.
func InlineKeyboard(rows ...[]Button) Markup {
	if rows == nil {
		rows = [][]Button{}
	}
	return Markup{"inline_keyboard": rows}
}

// Row is shorthand for one keyboard row.
func Row(buttons ...Button) []Button {
	return buttons
}

// URLButton opens url in the browser.
func URLButton(text, url string) Button {
	return Button{"text": text, "url": url}
}

// CallbackButton sends data back as a callback query (1-64 bytes).
func CallbackButton(text, data string) Button {
	return Button{"text": text, "callback_data": data}
}

// WebAppButton launches the Mini App at url. Telegram requires HTTPS.
func WebAppButton(text, url string) Button {
	return Button{"text": text, "web_app": map[string]any{"url": url}}
}

// KeyboardButton is a plain reply keyboard button.
func KeyboardButton(text string) Button {
	return Button{"text": text}
}

// ReplyKeyboard builds a resizable ReplyKeyboardMarkup.
func ReplyKeyboard(oneTime bool, rows ...[]Button) Markup {
	if rows == nil {
		rows = [][]Button{}
	}
	m := Markup{"keyboard": rows, "resize_keyboard": true}
	if oneTime {
		m["one_time_keyboard"] = true
	}
	return m
}

// RemoveKeyboard hides the current reply keyboard.
func RemoveKeyboard() Markup {
	return Markup{"remove_keyboard": true}
}

// ForceReply asks the client to show a reply interface.
func ForceReply(placeholder string) Markup {
	m := Markup{"force_reply": true}
	if placeholder != "" {
		m["input_field_placeholder"] = placeholder
	}
	return m
}
