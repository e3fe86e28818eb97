package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("correct-horse-battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", hashed)

	ok, err := Verify("correct-horse-battery", hashed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("wrong-password", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("same-password")
	require.NoError(t, err)
	second, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	ok, err := Verify("same-password", first)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("same-password", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyMalformedHash(t *testing.T) {
	ok, err := Verify("any-password", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)

	ok, err = Verify("any-password", "")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "longenough", true},
		{"exactly eight", "12345678", true},
		{"too short", "short", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.password))
		})
	}
}
