package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestProvisionerHandle(t *testing.T) {
	p := NewProvisioner("camposestilistas.com")
	assert.Equal(t, "maximo.movsovich@camposestilistas.com", p.Handle("Máximo", "Movsovich"))
}

func TestProvisionerTempCredential(t *testing.T) {
	p := NewProvisioner("camposestilistas.com")

	plain, hash, err := p.TempCredential()
	require.NoError(t, err)
	assert.Len(t, plain, tempPasswordLength)
	for _, r := range plain {
		assert.True(t, strings.ContainsRune(tempPasswordAlphabet, r), "unexpected rune %q", r)
	}
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)))

	other, _, err := p.TempCredential()
	require.NoError(t, err)
	assert.NotEqual(t, plain, other, "credentials are per-account, not shared")
}
