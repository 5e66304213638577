package miniapp_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/restobot/internal/database"
	"github.com/edgard/restobot/internal/logger"
	"github.com/edgard/restobot/internal/miniapp"
	"github.com/edgard/restobot/internal/secret"
)

const botToken = "123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsawQ"

type harness struct {
	store  database.Store
	router chi.Router
	tenant *database.Tenant
	alice  *database.User
	bob    *database.User
}

func ptr(v int64) *int64 { return &v }

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "miniapp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseDB(db) })
	box, err := secret.NewBox("")
	require.NoError(t, err)
	store := database.NewStore(db, box, logger.Discard())

	h := &harness{
		store: store,
		alice: &database.User{Name: "Alice", Username: "alice", TelegramID: ptr(1002), TelegramChatID: ptr(5002)},
		bob:   &database.User{Name: "Bob", Username: "bob", TelegramID: ptr(1003), TelegramChatID: ptr(5003)},
	}
	require.NoError(t, store.SaveUser(ctx, h.alice))
	require.NoError(t, store.SaveUser(ctx, h.bob))

	h.tenant = &database.Tenant{Slug: "pizza", Name: "Pizza Place", BotToken: botToken}
	require.NoError(t, store.SaveTenant(ctx, h.tenant))
	require.NoError(t, store.AddTenantUser(ctx, h.tenant.ID, h.alice.ID))
	require.NoError(t, store.AddTenantUser(ctx, h.tenant.ID, h.bob.ID))
	require.NoError(t, store.LikeTenant(ctx, h.tenant.ID, h.alice.ID))
	require.NoError(t, store.AddFriend(ctx, h.bob.ID, h.alice.ID))

	require.NoError(t, store.SaveTenant(ctx, &database.Tenant{Slug: "tokenless", Name: "No Bot"}))

	r := chi.NewRouter()
	r.Method(http.MethodPost, "/miniapp/{slug}/auth", miniapp.NewHandler(store, logger.Discard()))
	h.router = r
	return h
}

func (h *harness) post(t *testing.T, slug, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/miniapp/"+slug+"/auth", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func signInitData(t *testing.T, token string, telegramID int64) string {
	t.Helper()
	values := url.Values{
		"auth_date": {"1700000000"},
		"query_id":  {"AAE"},
		"user":      {`{"id":` + strconv.FormatInt(telegramID, 10) + `,"first_name":"Test","language_code":"en"}`},
	}
	check, err := miniapp.DataCheckString(values)
	require.NoError(t, err)
	values.Set("hash", hex.EncodeToString(miniapp.Sign(check, token)))
	return values.Encode()
}

func body(t *testing.T, initData string) string {
	t.Helper()
	b, err := json.Marshal(miniapp.AuthRequest{InitData: initData})
	require.NoError(t, err)
	return string(b)
}

func TestAuthReturnsRecipientWithLikesAndFriends(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	rec := h.post(t, "pizza", body(t, signInitData(t, botToken, 1002)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp miniapp.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, h.alice.ID, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "alice", resp.Username)
	require.NotNil(t, resp.TelegramID)
	assert.Equal(t, int64(1002), *resp.TelegramID)
	assert.True(t, resp.LikedByMe)
	require.Len(t, resp.Friends, 1)
	assert.Equal(t, h.bob.ID, resp.Friends[0].ID)
}

func TestAuthFriendsIsEmptyListNotNull(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	loner := &database.User{Name: "Dan", TelegramID: ptr(1005)}
	require.NoError(t, h.store.SaveUser(context.Background(), loner))
	require.NoError(t, h.store.AddTenantUser(context.Background(), h.tenant.ID, loner.ID))

	rec := h.post(t, "pizza", body(t, signInitData(t, botToken, 1005)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"friends":[]`)
	assert.Contains(t, rec.Body.String(), `"liked_by_me":false`)
}

func TestAuthErrors(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	tests := []struct {
		name   string
		slug   string
		body   string
		status int
	}{
		{name: "invalid json", slug: "pizza", body: "{", status: http.StatusUnprocessableEntity},
		{name: "missing init_data", slug: "pizza", body: `{}`, status: http.StatusUnprocessableEntity},
		{name: "malformed init_data", slug: "pizza", body: body(t, "auth_date=1"), status: http.StatusUnprocessableEntity},
		{name: "malformed init_data for unknown tenant", slug: "nope", body: body(t, "auth_date=1"), status: http.StatusUnprocessableEntity},
		{name: "malformed init_data for tenant without token", slug: "tokenless", body: body(t, "%zz"), status: http.StatusUnprocessableEntity},
		{name: "unknown tenant", slug: "nope", body: body(t, signInitData(t, botToken, 1002)), status: http.StatusNotFound},
		{name: "tenant without token", slug: "tokenless", body: body(t, signInitData(t, botToken, 1002)), status: http.StatusNotFound},
		{name: "signed by another bot", slug: "pizza", body: body(t, signInitData(t, "987654321:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsawQ", 1002)), status: http.StatusForbidden},
		{name: "not a recipient", slug: "pizza", body: body(t, signInitData(t, botToken, 1004)), status: http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := h.post(t, tt.slug, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
