package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/restobot/internal/logger"
	"github.com/edgard/restobot/internal/telegram"
)

const testToken = "123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsawQ"

func newTestClient(t *testing.T, handler http.HandlerFunc) *telegram.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return telegram.New(testToken,
		telegram.WithBaseURL(srv.URL),
		telegram.WithHTTPClient(srv.Client()),
		telegram.WithLogger(logger.Discard()),
	)
}

func TestTransport_JSONRequest(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bot"+testToken+"/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(42), body["chat_id"])
		assert.Equal(t, "hello", body["text"])
		markup := body["reply_markup"].(map[string]any)
		assert.Contains(t, markup, "inline_keyboard")

		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":7,"date":1,"chat":{"id":42,"type":"private"},"text":"hello"}}`)
	})

	msg, err := client.SendMessage(context.Background(), telegram.Params{
		"chat_id":      42,
		"text":         "hello",
		"reply_markup": telegram.InlineKeyboard(telegram.Row(telegram.URLButton("Site", "https://example.com"))),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, msg.ID)
	assert.Equal(t, int64(42), msg.Chat.ID)
}

func TestTransport_APIError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 5","parameters":{"retry_after":5}}`)
	})

	_, err := client.SendMessage(context.Background(), telegram.Params{"chat_id": 1, "text": "x"})
	var apiErr *telegram.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "sendMessage", apiErr.Method)
	assert.Equal(t, 429, apiErr.Code)
	assert.Equal(t, 5, apiErr.RetryAfter)
	assert.True(t, telegram.IsTransient(err))
	assert.False(t, errors.Is(err, telegram.ErrTransport))
}

func TestTransport_MigrateToChatID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request: group chat was upgraded","parameters":{"migrate_to_chat_id":-1001}}`)
	})

	_, err := client.SendMessage(context.Background(), telegram.Params{"chat_id": 1, "text": "x"})
	var apiErr *telegram.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int64(-1001), apiErr.MigrateToChatID)
	assert.False(t, telegram.IsTransient(err))
}

func TestTransport_DecodingError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := client.GetMe(context.Background())
	var decErr *telegram.DecodingError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, http.StatusBadGateway, decErr.StatusCode)
	assert.ErrorIs(t, err, telegram.ErrTransport)
	assert.True(t, telegram.IsTransient(err))
}

func TestTransport_NetworkErrorRedactsToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	client := telegram.New(testToken, telegram.WithBaseURL(baseURL), telegram.WithLogger(logger.Discard()))
	_, err := client.GetMe(context.Background())

	var trErr *telegram.TransportError
	require.ErrorAs(t, err, &trErr)
	assert.ErrorIs(t, err, telegram.ErrTransport)
	assert.NotContains(t, err.Error(), testToken)
}

func TestTransport_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	client := telegram.New(testToken,
		telegram.WithBaseURL(srv.URL),
		telegram.WithHTTPClient(telegram.NewHTTPClient(time.Second, 50*time.Millisecond)),
		telegram.WithLogger(logger.Discard()),
	)
	_, err := client.GetMe(context.Background())
	assert.ErrorIs(t, err, telegram.ErrTransport)
	assert.NotContains(t, err.Error(), testToken)
}

func TestTransport_MultipartUpload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "42", r.FormValue("chat_id"))
		assert.Equal(t, "menu", r.FormValue("caption"))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "menu.jpg", header.Filename)
		assert.Equal(t, "jpeg-bytes", string(data))

		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1,"date":1,"chat":{"id":42,"type":"private"}}}`)
	})

	_, err := client.SendPhoto(context.Background(), telegram.Params{
		"chat_id": 42,
		"caption": "menu",
		"photo":   telegram.FileFromReader("menu.jpg", strings.NewReader("jpeg-bytes")),
	})
	require.NoError(t, err)
}

func TestTransport_MultipartNestedAttachments(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var media []map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("media")), &media))
		require.Len(t, media, 2)
		assert.Equal(t, "attach://file0", media[0]["media"])
		assert.Equal(t, "https://cdn.example.com/2.jpg", media[1]["media"])

		file, _, err := r.FormFile("file0")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "first", string(data))

		_, _ = io.WriteString(w, `{"ok":true,"result":[{"message_id":1,"date":1,"chat":{"id":42,"type":"private"}},{"message_id":2,"date":1,"chat":{"id":42,"type":"private"}}]}`)
	})

	msgs, err := client.SendMediaGroup(context.Background(), telegram.Params{
		"chat_id": 42,
		"media": []map[string]any{
			{"type": "photo", "media": telegram.FileFromReader("1.jpg", strings.NewReader("first"))},
			{"type": "photo", "media": "https://cdn.example.com/2.jpg"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestTransport_LocalFilePathUpload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "menu.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o600))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("document")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "menu.pdf", header.Filename)
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":3,"date":1,"chat":{"id":42,"type":"private"}}}`)
	})

	msg, err := client.SendDocument(context.Background(), telegram.Params{"chat_id": 42, "document": path})
	require.NoError(t, err)
	assert.Equal(t, 3, msg.ID)
}

func TestTransport_RemoteFileReferenceStaysJSON(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":4,"date":1,"chat":{"id":42,"type":"private"}}}`)
	})

	_, err := client.SendPhoto(context.Background(), telegram.Params{"chat_id": 42, "photo": "https://cdn.example.com/p.jpg"})
	require.NoError(t, err)
}
