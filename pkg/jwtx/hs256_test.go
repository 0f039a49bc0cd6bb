package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewHS256RejectsShortSecrets(t *testing.T) {
	t.Parallel()

	_, err := NewHS256([]byte("too-short"), "campus-core")
	require.ErrorIs(t, err, ErrSecretTooShort)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "campus-core")
	require.NoError(t, err)

	now := time.Now()
	claims := NewIdentityClaims("user-123", "alice", "campus-core", time.Hour, now)

	raw, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyAcceptsExpiredSignature(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "campus-core")
	require.NoError(t, err)

	// Issued two hours ago with a one-hour lifetime: authentic but expired.
	claims := NewIdentityClaims("user-123", "alice", "campus-core", time.Hour, time.Now().Add(-2*time.Hour))

	raw, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(raw)
	require.NoError(t, err)
	require.ErrorIs(t, got.ValidateExpiry(), ErrExpired)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "campus-core")
	require.NoError(t, err)

	raw, err := h.Sign(NewIdentityClaims("user-123", "alice", "campus-core", time.Hour, time.Now()))
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = h.Verify(tampered)
	require.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256(testSecret, "campus-core")
	require.NoError(t, err)
	verifier, err := NewHS256([]byte("ffffffffffffffffffffffffffffffff"), "campus-core")
	require.NoError(t, err)

	raw, err := signer.Sign(NewIdentityClaims("user-123", "alice", "campus-core", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256(testSecret, "someone-else")
	require.NoError(t, err)
	verifier, err := NewHS256(testSecret, "campus-core")
	require.NoError(t, err)

	raw, err := signer.Sign(NewIdentityClaims("user-123", "alice", "someone-else", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "campus-core")
	require.NoError(t, err)

	_, err = h.Verify("definitely-not-a-jwt")
	require.ErrorIs(t, err, ErrMalformed)
}
