// Package miniapp verifies Telegram Mini App launch data and exposes the
// per-tenant authentication endpoint used by the Mini App frontend.
package miniapp

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot/models"
)

// webAppDataKey keys the HMAC that derives the per-bot secret.
const webAppDataKey = "WebAppData"

// ErrMalformedInitData is returned when initData cannot be parsed, lacks a
// hash, or carries fields that do not decode.
var ErrMalformedInitData = errors.New("malformed init data")

// SignatureVerificationError is returned when the hash does not match the
// data signed with the bot token.
type SignatureVerificationError struct {
	Hash string
}

func (e *SignatureVerificationError) Error() string {
	return "init data signature mismatch"
}

// InitData is the verified content of a Mini App launch.
type InitData struct {
	QueryID    string
	User       *models.User
	AuthDate   time.Time
	StartParam string
	ChatType   string
	Fields     url.Values
}

// Parse splits initData into its fields and requires a hash. It does not
// check the signature.
func Parse(initData string) (url.Values, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInitData, err)
	}
	if values.Get("hash") == "" {
		return nil, fmt.Errorf("%w: missing hash", ErrMalformedInitData)
	}
	return values, nil
}

// Verify checks initData against botToken and returns its content. Nothing
// in initData is decoded before the signature is confirmed.
func Verify(initData, botToken string) (*InitData, error) {
	values, err := Parse(initData)
	if err != nil {
		return nil, err
	}
	return VerifyValues(values, botToken)
}

// VerifyValues is Verify for fields already split by Parse. values is not
// modified.
func VerifyValues(values url.Values, botToken string) (*InitData, error) {
	hash := values.Get("hash")
	if hash == "" {
		return nil, fmt.Errorf("%w: missing hash", ErrMalformedInitData)
	}
	values = cloneValues(values)
	values.Del("hash")

	provided, err := hex.DecodeString(strings.ToLower(hash))
	if err != nil {
		return nil, &SignatureVerificationError{Hash: hash}
	}

	checkString, err := DataCheckString(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInitData, err)
	}
	if !hmac.Equal(provided, Sign(checkString, botToken)) {
		return nil, &SignatureVerificationError{Hash: hash}
	}

	return decode(values)
}

func cloneValues(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for k, vs := range values {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// Sign returns the raw HMAC of a data-check string for botToken.
func Sign(checkString, botToken string) []byte {
	secret := hmac.New(sha256.New, []byte(webAppDataKey))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	return mac.Sum(nil)
}

// DataCheckString renders values as sorted key=value lines. Keys with more
// than one value render as a JSON array without HTML or Unicode escaping.
func DataCheckString(values url.Values) (string, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		vs := values[k]
		switch len(vs) {
		case 0:
			lines = append(lines, k+"=")
		case 1:
			lines = append(lines, k+"="+vs[0])
		default:
			encoded, err := encodeArray(vs)
			if err != nil {
				return "", fmt.Errorf("failed to encode %q: %w", k, err)
			}
			lines = append(lines, k+"="+encoded)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func encodeArray(vs []string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(vs); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func decode(values url.Values) (*InitData, error) {
	data := &InitData{
		QueryID:    values.Get("query_id"),
		StartParam: values.Get("start_param"),
		ChatType:   values.Get("chat_type"),
		Fields:     values,
	}

	if raw := values.Get("auth_date"); raw != "" {
		sec, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: auth_date: %v", ErrMalformedInitData, err)
		}
		data.AuthDate = time.Unix(sec, 0).UTC()
	}

	if raw := values.Get("user"); raw != "" {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, fmt.Errorf("%w: user: %v", ErrMalformedInitData, err)
		}
		data.User = &user
	}

	return data, nil
}
