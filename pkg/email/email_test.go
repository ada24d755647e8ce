package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "kiosk/pkg/domain-errors"
)

func TestNew(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		e, err := New("  Maria.Silva@Example.COM.br ")
		require.NoError(t, err)
		assert.Equal(t, "maria.silva@example.com.br", e.String())
		assert.Equal(t, "example.com.br", e.Domain())
	})

	t.Run("accepts quoted local parts and IP literals", func(t *testing.T) {
		for _, raw := range []string{
			`"john doe"@example.com`,
			"admin@[192.168.0.1]",
			"first+tag@sub.domain.io",
		} {
			_, err := New(raw)
			require.NoError(t, err, raw)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"plainaddress",
			"@example.com",
			"user@",
			"user@example",
			"user@example.c",
			"user@@example.com",
			"user name@example.com",
			"user..name@example.com",
			".user@example.com",
			"user@exa_mple.com",
		} {
			_, err := New(raw)
			require.Error(t, err, raw)
			assert.Equal(t, "Invalid Email", err.Error())
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidResource))
		}
	})

	t.Run("equality uses the normalized form", func(t *testing.T) {
		a, err := New("Ana@Kiosk.com")
		require.NoError(t, err)
		b, err := New("ana@kiosk.com")
		require.NoError(t, err)
		assert.True(t, a.Equals(b))
		assert.Equal(t, a, b)
	})
}

func TestDeriveNameFromEmail(t *testing.T) {
	first, last := DeriveNameFromEmail("maria.silva@example.com")
	assert.Equal(t, "Maria", first)
	assert.Equal(t, "Silva", last)

	first, last = DeriveNameFromEmail("joao@example.com")
	assert.Equal(t, "Joao", first)
	assert.Equal(t, "User", last)

	first, last = DeriveNameFromEmail("...@example.com")
	assert.Equal(t, "User", first)
	assert.Equal(t, "User", last)
}
