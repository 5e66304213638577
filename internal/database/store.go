package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/edgard/restobot/internal/secret"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for database operations.
// Methods should accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// GetTenant returns the tenant with id, or ErrNotFound.
	GetTenant(ctx context.Context, id int64) (*Tenant, error)
	// GetTenantBySlug returns the tenant with slug, or ErrNotFound.
	GetTenantBySlug(ctx context.Context, slug string) (*Tenant, error)
	// ListTenants returns all tenants ordered by id.
	ListTenants(ctx context.Context) ([]Tenant, error)
	// SaveTenant inserts (ID == 0) or updates a tenant. The bot token is sealed before writing.
	SaveTenant(ctx context.Context, tenant *Tenant) error

	// SaveUser inserts (ID == 0) or updates a user.
	SaveUser(ctx context.Context, user *User) error
	// AddTenantUser links a user to a tenant as a recipient.
	AddTenantUser(ctx context.Context, tenantID, userID int64) error
	// LikeTenant records that a user likes a tenant.
	LikeTenant(ctx context.Context, tenantID, userID int64) error
	// AddFriend records a friendship between two users.
	AddFriend(ctx context.Context, userID, friendID int64) error

	// ListRecipientChatIDs returns the owner's chat id followed by the linked
	// users' chat ids. Users without a chat id are skipped; duplicates are kept.
	ListRecipientChatIDs(ctx context.Context, tenantID int64) ([]int64, error)
	// FindRecipient returns the owner or linked user with telegramID, or ErrNotFound.
	FindRecipient(ctx context.Context, tenantID, telegramID int64) (*User, error)
	// IsTenantLikedBy reports whether userID likes tenantID.
	IsTenantLikedBy(ctx context.Context, tenantID, userID int64) (bool, error)
	// ListFriends returns the friends of userID who are recipients of tenantID.
	ListFriends(ctx context.Context, tenantID, userID int64) ([]User, error)

	// GetNews returns a news item with its images, or ErrNotFound.
	GetNews(ctx context.Context, id int64) (*News, error)
	// SaveNews inserts a news item and its images.
	SaveNews(ctx context.Context, news *News) error

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	box    *secret.Box
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// Bot tokens are sealed with box; a nil box stores them in plaintext.
func NewStore(db *sqlx.DB, box *secret.Box, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if box == nil {
		box = &secret.Box{}
	}
	return &sqlxStore{
		db:     db,
		box:    box,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const tenantColumns = `id, slug, name, description, telegram_bot_token, owner_id, created_at, updated_at`

func (s *sqlxStore) GetTenant(ctx context.Context, id int64) (*Tenant, error) {
	return s.getTenant(ctx, `SELECT `+tenantColumns+` FROM restaurants WHERE id = ?`, id)
}

func (s *sqlxStore) GetTenantBySlug(ctx context.Context, slug string) (*Tenant, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	return s.getTenant(ctx, `SELECT `+tenantColumns+` FROM restaurants WHERE slug = ?`, slug)
}

func (s *sqlxStore) getTenant(ctx context.Context, query string, arg any) (*Tenant, error) {
	var tenant Tenant
	if err := s.db.GetContext(ctx, &tenant, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load tenant %v: %w", arg, err)
	}
	if err := s.openToken(&tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (s *sqlxStore) ListTenants(ctx context.Context) ([]Tenant, error) {
	var tenants []Tenant
	if err := s.db.SelectContext(ctx, &tenants, `SELECT `+tenantColumns+` FROM restaurants ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	for i := range tenants {
		if err := s.openToken(&tenants[i]); err != nil {
			return nil, err
		}
	}
	return tenants, nil
}

func (s *sqlxStore) openToken(t *Tenant) error {
	token, err := s.box.Open(t.BotToken)
	if err != nil {
		return fmt.Errorf("failed to open bot token of tenant %d: %w", t.ID, err)
	}
	t.BotToken = token
	return nil
}

func (s *sqlxStore) SaveTenant(ctx context.Context, tenant *Tenant) error {
	if tenant == nil {
		return errors.New("cannot save nil tenant")
	}
	if tenant.Name == "" {
		return errors.New("tenant must have a name")
	}
	sealed, err := s.box.Seal(tenant.BotToken)
	if err != nil {
		return fmt.Errorf("failed to seal bot token: %w", err)
	}

	row := *tenant
	row.BotToken = sealed
	row.UpdatedAt = now()

	if row.ID == 0 {
		row.CreatedAt = row.UpdatedAt
		result, err := s.db.NamedExecContext(ctx, `
            INSERT INTO restaurants (slug, name, description, telegram_bot_token, owner_id, created_at, updated_at)
            VALUES (:slug, :name, :description, :telegram_bot_token, :owner_id, :created_at, :updated_at)`, &row)
		if err != nil {
			return fmt.Errorf("failed to insert tenant %q: %w", tenant.Name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read tenant id: %w", err)
		}
		tenant.ID = id
		tenant.CreatedAt = row.CreatedAt
	} else {
		result, err := s.db.NamedExecContext(ctx, `
            UPDATE restaurants
            SET slug = :slug, name = :name, description = :description,
                telegram_bot_token = :telegram_bot_token, owner_id = :owner_id, updated_at = :updated_at
            WHERE id = :id`, &row)
		if err != nil {
			return fmt.Errorf("failed to update tenant %d: %w", tenant.ID, err)
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return ErrNotFound
		}
	}
	tenant.UpdatedAt = row.UpdatedAt

	s.logger.DebugContext(ctx, "Tenant saved", "tenant_id", tenant.ID, "sealed", s.box.Enabled())
	return nil
}

func (s *sqlxStore) SaveUser(ctx context.Context, user *User) error {
	if user == nil {
		return errors.New("cannot save nil user")
	}
	user.UpdatedAt = now()
	if user.ID == 0 {
		user.CreatedAt = user.UpdatedAt
		result, err := s.db.NamedExecContext(ctx, `
            INSERT INTO users (name, username, telegram_id, telegram_chat_id, created_at, updated_at)
            VALUES (:name, :username, :telegram_id, :telegram_chat_id, :created_at, :updated_at)`, user)
		if err != nil {
			return fmt.Errorf("failed to insert user %q: %w", user.Name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read user id: %w", err)
		}
		user.ID = id
		return nil
	}
	_, err := s.db.NamedExecContext(ctx, `
        UPDATE users
        SET name = :name, username = :username, telegram_id = :telegram_id,
            telegram_chat_id = :telegram_chat_id, updated_at = :updated_at
        WHERE id = :id`, user)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	return nil
}

func (s *sqlxStore) AddTenantUser(ctx context.Context, tenantID, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO restaurant_user (restaurant_id, user_id, created_at) VALUES (?, ?, ?)`,
		tenantID, userID, now())
	if err != nil {
		return fmt.Errorf("failed to link user %d to tenant %d: %w", userID, tenantID, err)
	}
	return nil
}

func (s *sqlxStore) LikeTenant(ctx context.Context, tenantID, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO restaurant_likes (restaurant_id, user_id, created_at) VALUES (?, ?, ?)`,
		tenantID, userID, now())
	if err != nil {
		return fmt.Errorf("failed to record like of tenant %d by user %d: %w", tenantID, userID, err)
	}
	return nil
}

func (s *sqlxStore) AddFriend(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return errors.New("a user cannot befriend themselves")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO user_friends (user_id, friend_id, created_at) VALUES (?, ?, ?)`,
		userID, friendID, now())
	if err != nil {
		return fmt.Errorf("failed to add friend %d for user %d: %w", friendID, userID, err)
	}
	return nil
}

func (s *sqlxStore) ListRecipientChatIDs(ctx context.Context, tenantID int64) ([]int64, error) {
	var chatIDs []int64
	query := `
        SELECT chat_id FROM (
            SELECT u.telegram_chat_id AS chat_id, 0 AS grp, 0 AS linked_at, u.id AS uid
            FROM restaurants r
            JOIN users u ON u.id = r.owner_id
            WHERE r.id = ? AND u.telegram_chat_id IS NOT NULL
            UNION ALL
            SELECT u.telegram_chat_id, 1, ru.created_at, u.id
            FROM restaurant_user ru
            JOIN users u ON u.id = ru.user_id
            WHERE ru.restaurant_id = ? AND u.telegram_chat_id IS NOT NULL
        )
        ORDER BY grp, linked_at, uid`
	if err := s.db.SelectContext(ctx, &chatIDs, query, tenantID, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list recipients of tenant %d: %w", tenantID, err)
	}
	return chatIDs, nil
}

const recipientFilter = `(
    u.id = (SELECT owner_id FROM restaurants WHERE id = ?)
    OR EXISTS (SELECT 1 FROM restaurant_user ru WHERE ru.restaurant_id = ? AND ru.user_id = u.id)
)`

const userColumns = `u.id, u.name, u.username, u.telegram_id, u.telegram_chat_id, u.created_at, u.updated_at`

func (s *sqlxStore) FindRecipient(ctx context.Context, tenantID, telegramID int64) (*User, error) {
	var user User
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.telegram_id = ? AND ` + recipientFilter
	if err := s.db.GetContext(ctx, &user, query, telegramID, tenantID, tenantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recipient %d of tenant %d: %w", telegramID, tenantID, err)
	}
	return &user, nil
}

func (s *sqlxStore) IsTenantLikedBy(ctx context.Context, tenantID, userID int64) (bool, error) {
	var liked bool
	err := s.db.GetContext(ctx, &liked,
		`SELECT EXISTS (SELECT 1 FROM restaurant_likes WHERE restaurant_id = ? AND user_id = ?)`,
		tenantID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check like of tenant %d by user %d: %w", tenantID, userID, err)
	}
	return liked, nil
}

func (s *sqlxStore) ListFriends(ctx context.Context, tenantID, userID int64) ([]User, error) {
	friends := []User{}
	query := `
        SELECT ` + userColumns + ` FROM users u
        WHERE u.id IN (
            SELECT friend_id FROM user_friends WHERE user_id = ?
            UNION
            SELECT user_id FROM user_friends WHERE friend_id = ?
        ) AND ` + recipientFilter + `
        ORDER BY u.id`
	if err := s.db.SelectContext(ctx, &friends, query, userID, userID, tenantID, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list friends of user %d: %w", userID, err)
	}
	return friends, nil
}

func (s *sqlxStore) GetNews(ctx context.Context, id int64) (*News, error) {
	var news News
	err := s.db.GetContext(ctx, &news,
		`SELECT id, restaurant_id, title, body, created_at FROM news WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load news %d: %w", id, err)
	}
	if err := s.db.SelectContext(ctx, &news.Images,
		`SELECT url FROM news_images WHERE news_id = ? ORDER BY position, id`, id); err != nil {
		return nil, fmt.Errorf("failed to load images of news %d: %w", id, err)
	}
	return &news, nil
}

func (s *sqlxStore) SaveNews(ctx context.Context, news *News) error {
	if news == nil {
		return errors.New("cannot save nil news")
	}
	if news.RestaurantID == 0 {
		return errors.New("news must belong to a tenant")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				s.logger.WarnContext(ctx, "Error rolling back transaction", "error", rollbackErr)
			}
		}
	}()

	news.CreatedAt = now()
	result, err := tx.NamedExecContext(ctx, `
        INSERT INTO news (restaurant_id, title, body, created_at)
        VALUES (:restaurant_id, :title, :body, :created_at)`, news)
	if err != nil {
		return fmt.Errorf("failed to insert news for tenant %d: %w", news.RestaurantID, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read news id: %w", err)
	}

	for i, url := range news.Images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO news_images (news_id, url, position) VALUES (?, ?, ?)`, id, url, i); err != nil {
			return fmt.Errorf("failed to insert image %d of news %d: %w", i, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil
	news.ID = id

	s.logger.DebugContext(ctx, "News saved", "news_id", id, "tenant_id", news.RestaurantID, "images", len(news.Images))
	return nil
}

// RunSQLMaintenance performs database maintenance tasks like VACUUM.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	if _, err := s.db.ExecContext(ctx, "VACUUM;"); err != nil {
		s.logger.ErrorContext(ctx, "Failed to execute VACUUM", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
		s.logger.WarnContext(ctx, "Failed to run PRAGMA optimize", "error", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance completed successfully.")
	return nil
}
