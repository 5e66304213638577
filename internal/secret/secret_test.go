package secret_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/restobot/internal/secret"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestBox_SealOpen(t *testing.T) {
	t.Parallel()

	box, err := secret.NewBox(testKey)
	require.NoError(t, err)
	require.True(t, box.Enabled())

	sealed, err := box.Seal("123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsawQ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, "sb1:"))
	assert.NotContains(t, sealed, "AAHdq")

	plain, err := box.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsawQ", plain)
}

func TestBox_Disabled(t *testing.T) {
	t.Parallel()

	box, err := secret.NewBox("")
	require.NoError(t, err)

	sealed, err := box.Seal("token")
	require.NoError(t, err)
	assert.Equal(t, "token", sealed)

	_, err = box.Open("sb1:abc")
	assert.ErrorIs(t, err, secret.ErrDecrypt)
}

func TestBox_WrongKey(t *testing.T) {
	t.Parallel()

	a, err := secret.NewBox(testKey)
	require.NoError(t, err)
	b, err := secret.NewBox(strings.Repeat("ff", 32))
	require.NoError(t, err)

	sealed, err := a.Seal("token")
	require.NoError(t, err)
	_, err = b.Open(sealed)
	assert.ErrorIs(t, err, secret.ErrDecrypt)
}

func TestBox_PlaintextPassthrough(t *testing.T) {
	t.Parallel()

	box, err := secret.NewBox(testKey)
	require.NoError(t, err)
	plain, err := box.Open("legacy-token")
	require.NoError(t, err)
	assert.Equal(t, "legacy-token", plain)
}

func TestNewBox_InvalidKey(t *testing.T) {
	t.Parallel()

	_, err := secret.NewBox("zz")
	assert.Error(t, err)
	_, err = secret.NewBox("abcd")
	assert.Error(t, err)
}
