// Package publisher fans a tenant's news item out to all of its recipients
// through the tenant's bot.
package publisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/edgard/restobot/internal/database"
	"github.com/edgard/restobot/internal/metrics"
	"github.com/edgard/restobot/internal/resilience"
	"github.com/edgard/restobot/internal/telegram"
)

// Store is the data the publisher reads at execution time.
type Store interface {
	GetNews(ctx context.Context, id int64) (*database.News, error)
	GetTenant(ctx context.Context, id int64) (*database.Tenant, error)
	ListRecipientChatIDs(ctx context.Context, tenantID int64) ([]int64, error)
}

// Config holds delivery settings.
type Config struct {
	AppBaseURL     string
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	// RatePerSecond paces sends per bot; zero disables pacing.
	RatePerSecond float64
}

// Skip reasons reported when nothing was sent.
const (
	SkipNewsMissing   = "news not found"
	SkipTenantMissing = "tenant not found"
	SkipNoToken       = "tenant has no bot token"
	SkipNoRecipients  = "no recipients"
)

// Report summarizes one Publish run.
type Report struct {
	NewsID     int64  `json:"news_id"`
	TenantID   int64  `json:"tenant_id"`
	Recipients int    `json:"recipients"`
	Delivered  int    `json:"delivered"`
	Failed     int    `json:"failed"`
	Skipped    string `json:"skipped,omitempty"`
}

// Publisher delivers news items.
type Publisher struct {
	cfg     Config
	retry   resilience.RetryConfig
	store   Store
	clients telegram.Factory
	logger  *slog.Logger
}

// New creates a Publisher. Unset backoff settings fall back to
// resilience.DefaultRetryConfig; unset MaxAttempts means a single attempt.
func New(cfg Config, store Store, clients telegram.Factory, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Publisher{cfg: cfg, store: store, clients: clients, logger: logger.With("component", "publisher")}
	p.retry = p.retryConfig()
	return p
}

// RetryConfig returns the settings used for each delivery.
func (p *Publisher) RetryConfig() resilience.RetryConfig {
	return p.retry
}

func (p *Publisher) retryConfig() resilience.RetryConfig {
	rc := resilience.DefaultRetryConfig()
	rc.MaxAttempts = max(p.cfg.MaxAttempts, 1)
	if p.cfg.InitialBackoff > 0 {
		rc.InitialInterval = p.cfg.InitialBackoff
	}
	if p.cfg.MaxBackoff > 0 {
		rc.MaxInterval = p.cfg.MaxBackoff
	}
	rc.RandomFactor = 0.2
	rc.Retryable = telegram.IsTransient
	rc.Wait = retryAfter
	rc.Logger = p.logger
	return rc
}

// Publish sends news item newsID to every recipient of its tenant. Missing
// data is not an error: the report carries a skip reason instead. A failed
// recipient never stops delivery to the others.
func (p *Publisher) Publish(ctx context.Context, newsID int64) (*Report, error) {
	report := &Report{NewsID: newsID}
	log := p.logger.With("news_id", newsID)

	news, err := p.store.GetNews(ctx, newsID)
	if errors.Is(err, database.ErrNotFound) {
		return p.skip(ctx, log, report, SkipNewsMissing), nil
	}
	if err != nil {
		return report, fmt.Errorf("failed to load news %d: %w", newsID, err)
	}
	report.TenantID = news.RestaurantID
	log = log.With("tenant_id", news.RestaurantID)

	tenant, err := p.store.GetTenant(ctx, news.RestaurantID)
	if errors.Is(err, database.ErrNotFound) {
		return p.skip(ctx, log, report, SkipTenantMissing), nil
	}
	if err != nil {
		return report, fmt.Errorf("failed to load tenant %d: %w", news.RestaurantID, err)
	}
	if !tenant.HasBot() {
		return p.skip(ctx, log, report, SkipNoToken), nil
	}

	chatIDs, err := p.store.ListRecipientChatIDs(ctx, tenant.ID)
	if err != nil {
		return report, fmt.Errorf("failed to resolve recipients of tenant %d: %w", tenant.ID, err)
	}
	recipients := Dedupe(chatIDs)
	report.Recipients = len(recipients)
	if len(recipients) == 0 {
		return p.skip(ctx, log, report, SkipNoRecipients), nil
	}

	envelope := BuildEnvelope(news, p.cfg.AppBaseURL)
	client := p.clients(tenant.BotToken)
	limiter := p.limiter()

	log.InfoContext(ctx, "Publishing news", "recipients", len(recipients), "photos", len(envelope.Photos))

	for i, chatID := range recipients {
		if err := limiter.Wait(ctx); err != nil {
			remaining := len(recipients) - i
			report.Failed += remaining
			log.WarnContext(ctx, "Publishing interrupted", "remaining", remaining, "error", err)
			return report, fmt.Errorf("publishing news %d interrupted: %w", newsID, err)
		}

		if err := p.deliver(ctx, client, chatID, envelope); err != nil {
			report.Failed++
			metrics.RecordDelivery(metrics.OutcomeFailed)
			log.ErrorContext(ctx, "Failed to deliver news", "recipient", chatID, "error", err)
			continue
		}
		report.Delivered++
		metrics.RecordDelivery(metrics.OutcomeOK)
	}

	log.InfoContext(ctx, "News published", "delivered", report.Delivered, "failed", report.Failed)
	return report, nil
}

func (p *Publisher) skip(ctx context.Context, log *slog.Logger, report *Report, reason string) *Report {
	report.Skipped = reason
	metrics.RecordDelivery(metrics.OutcomeSkipped)
	log.WarnContext(ctx, "Skipping news publication", "reason", reason)
	return report
}

func (p *Publisher) limiter() *rate.Limiter {
	if p.cfg.RatePerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(p.cfg.RatePerSecond), 1)
}

func (p *Publisher) deliver(ctx context.Context, client *telegram.Client, chatID int64, env Envelope) error {
	send := func(ctx context.Context) error {
		var err error
		switch len(env.Photos) {
		case 0:
			_, err = client.SendMessage(ctx, telegram.Params{"chat_id": chatID, "text": env.Text})
		case 1:
			// sendMediaGroup requires at least two items.
			_, err = client.SendPhoto(ctx, telegram.Params{"chat_id": chatID, "photo": env.Photos[0], "caption": env.Caption})
		default:
			_, err = client.SendMediaGroup(ctx, telegram.Params{"chat_id": chatID, "media": MediaGroup(env)})
		}
		return err
	}

	return resilience.WithRetry(ctx, send, p.retry)
}

// MediaGroup builds the sendMediaGroup payload: at most ten photos with the
// caption on the first one only.
func MediaGroup(env Envelope) []map[string]any {
	photos := env.Photos
	if len(photos) > MaxMediaGroup {
		photos = photos[:MaxMediaGroup]
	}
	media := make([]map[string]any, 0, len(photos))
	for i, photo := range photos {
		item := map[string]any{"type": "photo", "media": photo}
		if i == 0 && env.Caption != "" {
			item["caption"] = env.Caption
		}
		media = append(media, item)
	}
	return media
}

// Dedupe removes repeated chat ids, keeping first occurrences in order.
func Dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func retryAfter(err error) (time.Duration, bool) {
	var apiErr *telegram.APIError
	if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
		return time.Duration(apiErr.RetryAfter) * time.Second, true
	}
	return 0, false
}
