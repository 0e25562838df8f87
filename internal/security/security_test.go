package security

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shivanisurendran/hostelparcel-management/internal/apperr"
)

func TestRandomCodes_SixDigitsInRange(t *testing.T) {
	t.Parallel()

	gen := NewRandomCodes()
	for i := 0; i < 200; i++ {
		code, err := gen.NewCode()
		require.NoError(t, err)
		require.True(t, IsCode(code), "bad code %q", code)
		require.NotEqual(t, byte('0'), code[0], "code below 100000: %q", code)
	}
}

func TestIsCode(t *testing.T) {
	t.Parallel()

	require.True(t, IsCode("000123"))
	require.True(t, IsCode("482917"))
	require.False(t, IsCode("48291"))
	require.False(t, IsCode("4829170"))
	require.False(t, IsCode("48a917"))
	require.False(t, IsCode(""))
}

func TestPassword_HashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("student123")
	require.NoError(t, err)
	require.NotEqual(t, "student123", hash)

	require.NoError(t, VerifyPassword("student123", hash))

	err = VerifyPassword("wrong", hash)
	require.True(t, errors.Is(err, apperr.ErrUnauthorized), "got %v", err)
}

func TestHashPassword_Empty(t *testing.T) {
	t.Parallel()

	_, err := HashPassword("")
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	err := VerifyPassword("student123", "hashed_student123")
	require.Error(t, err)
	require.False(t, errors.Is(err, apperr.ErrUnauthorized))
}
