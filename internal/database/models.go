package database

import "time"

// Tenant is a restaurant with its own Telegram bot.
// BotToken is always the opened (plaintext) token; it is sealed only at rest.
type Tenant struct {
	ID          int64     `db:"id"`
	Slug        string    `db:"slug"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	BotToken    string    `db:"telegram_bot_token"`
	OwnerID     *int64    `db:"owner_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// HasBot reports whether the tenant has a bot token configured.
func (t *Tenant) HasBot() bool {
	return t != nil && t.BotToken != ""
}

// User is a person known to the platform. Users with a TelegramChatID can
// receive bot messages.
type User struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	Username       string    `db:"username"`
	TelegramID     *int64    `db:"telegram_id"`
	TelegramChatID *int64    `db:"telegram_chat_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// News is a post published by a tenant to its recipients.
type News struct {
	ID           int64     `db:"id"`
	RestaurantID int64     `db:"restaurant_id"`
	Title        string    `db:"title"`
	Body         string    `db:"body"`
	CreatedAt    time.Time `db:"created_at"`
	// Images are absolute URLs in display order.
	Images []string `db:"-"`
}
