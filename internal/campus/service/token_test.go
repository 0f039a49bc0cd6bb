package service

import (
	"context"
	"testing"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tokens := newTestTokens(t, st)
	accounts := &AccountService{Store: st, Tokens: tokens}

	seedUID(t, st, "COMP-100", "comp", "BE")
	res := registerStudent(t, accounts, "gina", "COMP-100")

	t.Run("valid token resolves to its identity", func(t *testing.T) {
		u, err := tokens.Authenticate(ctx, res.Token)
		require.NoError(t, err)
		require.Equal(t, "gina", u.Username)
		require.Equal(t, domain.RoleStudent, u.Role)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := tokens.Authenticate(ctx, "not.a.token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		claims := jwtx.NewIdentityClaims(res.User.ID, "gina", tokens.Issuer,
			-time.Minute, time.Now().Add(-time.Hour))
		expired, err := tokens.Tokens.Sign(claims)
		require.NoError(t, err)

		_, err = tokens.Authenticate(ctx, expired)
		require.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token for a vanished identity rejected", func(t *testing.T) {
		claims := jwtx.NewIdentityClaims("01ZZZZZZZZZZZZZZZZZZZZZZZZ", "ghost",
			tokens.Issuer, time.Hour, time.Now())
		orphan, err := tokens.Tokens.Sign(claims)
		require.NoError(t, err)

		_, err = tokens.Authenticate(ctx, orphan)
		require.ErrorIs(t, err, ErrUnknownIdentity)
	})
}

func TestDevLoginBypass(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	t.Run("disabled by default", func(t *testing.T) {
		tokens := newTestTokens(t, st)
		_, err := tokens.Authenticate(ctx, DevToken)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("enabled resolves the synthetic admin", func(t *testing.T) {
		tokens := newTestTokens(t, st)
		tokens.DevLogin = true

		u, err := tokens.Authenticate(ctx, DevToken)
		require.NoError(t, err)
		require.Equal(t, "000000000000000000000000", u.ID)
		require.Equal(t, DeveloperHandle, u.Username)
		require.Equal(t, domain.RoleAdmin, u.Role)
		require.Equal(t, domain.DepartmentAll, u.Department)
		require.True(t, u.IsApproved())
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tokens := newTestTokens(t, st)
	accounts := &AccountService{Store: st, Tokens: tokens}

	seedUID(t, st, "COMP-101", "comp", "BE")
	res := registerStudent(t, accounts, "hank", "COMP-101")

	t.Run("expired but authentic token is exchangeable", func(t *testing.T) {
		claims := jwtx.NewIdentityClaims(res.User.ID, "hank", tokens.Issuer,
			-time.Minute, time.Now().Add(-time.Hour))
		stale, err := tokens.Tokens.Sign(claims)
		require.NoError(t, err)

		fresh, err := tokens.Refresh(ctx, stale)
		require.NoError(t, err)

		u, err := tokens.Authenticate(ctx, fresh)
		require.NoError(t, err)
		require.Equal(t, res.User.ID, u.ID)
	})

	t.Run("tampered token is not", func(t *testing.T) {
		_, err := tokens.Refresh(ctx, res.Token+"x")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("vanished identity is not", func(t *testing.T) {
		claims := jwtx.NewIdentityClaims("01ZZZZZZZZZZZZZZZZZZZZZZZZ", "ghost",
			tokens.Issuer, time.Hour, time.Now())
		orphan, err := tokens.Tokens.Sign(claims)
		require.NoError(t, err)

		_, err = tokens.Refresh(ctx, orphan)
		require.ErrorIs(t, err, ErrUnknownIdentity)
	})
}
