package setup

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Ports Telegram accepts for webhook URLs.
var webhookPorts = map[string]bool{"": true, "443": true, "80": true, "88": true, "8443": true}

// ErrNoSlug means the tenant has no slug, so it has no Mini App URL.
var ErrNoSlug = errors.New("tenant has no slug")

// MiniAppURL returns {base}/restaurant/{slug}.
func MiniAppURL(baseURL, slug string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", ErrNoSlug
	}
	return strings.TrimRight(baseURL, "/") + "/restaurant/" + url.PathEscape(slug), nil
}

// WebhookURL returns {base}/api/telegram/webhook/{tenantID}.
func WebhookURL(baseURL string, tenantID int64) string {
	return strings.TrimRight(baseURL, "/") + "/api/telegram/webhook/" + strconv.FormatInt(tenantID, 10)
}

// IsHTTPS reports whether raw is an absolute https URL.
func IsHTTPS(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme == "https" && u.Host != ""
}

// ValidateWebhookURL checks the constraints Telegram puts on webhook URLs.
func ValidateWebhookURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid webhook URL: %w", err)
	}
	if u.Scheme != "https" || u.Hostname() == "" {
		return fmt.Errorf("webhook URL must be absolute https, got %q", raw)
	}
	if !webhookPorts[u.Port()] {
		return fmt.Errorf("webhook port %s is not one of 443, 80, 88, 8443", u.Port())
	}
	return nil
}

// SecretToken derives the per-tenant X-Telegram-Bot-Api-Secret-Token value.
// It returns "" when no webhook secret is configured.
func SecretToken(webhookSecret string, tenantID int64) string {
	if webhookSecret == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write([]byte(strconv.FormatInt(tenantID, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySecretToken compares a received header value with the expected token in constant time.
func VerifySecretToken(webhookSecret string, tenantID int64, received string) bool {
	expected := SecretToken(webhookSecret, tenantID)
	if expected == "" {
		return true
	}
	return hmac.Equal([]byte(expected), []byte(received))
}

// ellipsize shortens s to at most limit runes, ending with "…" when cut.
func ellipsize(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 1 {
		return string(r[:limit])
	}
	return string(r[:limit-1]) + "…"
}

// truncate shortens s to at most limit runes.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
