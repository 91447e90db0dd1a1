package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_Valid(t *testing.T) {
	email, err := NewEmail("  alice@example.com  ")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", email.String())
	assert.False(t, email.IsZero())
}

func TestNewEmail_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"   ",
		"no-at-sign.com",
		"missing@tld",
		"two@@example.com",
		"spaces in@example.com",
		"@example.com",
		"alice@",
	}

	for _, value := range invalid {
		_, err := NewEmail(value)
		assert.Error(t, err, "expected error for %q", value)
	}
}

func TestEmail_CaseInsensitiveEquality(t *testing.T) {
	a, err := NewEmail("Alice@Example.COM")
	require.NoError(t, err)
	b, err := NewEmail("alice@example.com")
	require.NoError(t, err)
	c, err := NewEmail("bob@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.False(t, a.Equals(c))
	// The original casing is preserved, equality just ignores it.
	assert.Equal(t, "Alice@Example.COM", a.String())
}

func TestEmail_ZeroValue(t *testing.T) {
	var zero Email
	assert.True(t, zero.IsZero())
}
