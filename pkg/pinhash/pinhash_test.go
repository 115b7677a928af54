package pinhash_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedelmia/pos-api/pkg/pinhash"
)

func TestHashYVerify(t *testing.T) {
	h, err := pinhash.Hash("4821")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "pbkdf2-sha256$"))
	assert.NotContains(t, h, "4821")

	ok, err := pinhash.Verify("4821", h)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = pinhash.Verify("4822", h)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_SaltDistinto(t *testing.T) {
	a, err := pinhash.Hash("0000")
	require.NoError(t, err)
	b, err := pinhash.Hash("0000")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerify_FormatoInvalido(t *testing.T) {
	_, err := pinhash.Verify("1234", "1234")
	assert.Error(t, err)
	_, err = pinhash.Verify("1234", "pbkdf2-sha256$x$aa$bb")
	assert.Error(t, err)
}
