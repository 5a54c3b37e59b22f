package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifiesOriginalOnly(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hashed)

	require.True(t, CheckPassword(hashed, "correct horse battery staple"))
	require.False(t, CheckPassword(hashed, "wrong password"))
}

func TestHashPassword_SaltsEachHash(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)
	second, err := HashPassword("password123")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, CheckPassword(first, "password123"))
	require.True(t, CheckPassword(second, "password123"))
}
