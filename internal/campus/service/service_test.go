package service

import (
	"context"
	"testing"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/internal/campus/store"
	"github.com/campusconnect/campuscore/internal/campus/store/drivers/sqlite"
	"github.com/campusconnect/campuscore/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestTokens(t *testing.T, st store.Store) *TokenService {
	t.Helper()

	hs, err := jwtx.NewHS256([]byte(testSecret), "campus-core-test")
	require.NoError(t, err)

	return &TokenService{
		Tokens: hs,
		Store:  st,
		Issuer: "campus-core-test",
		TTL:    time.Hour,
	}
}

func seedUID(t *testing.T, st store.Store, uid, dept, year string) {
	t.Helper()
	require.NoError(t, st.StudentUIDs().AddUID(context.Background(), domain.StudentUID{
		UID:        uid,
		Department: dept,
		Year:       year,
		Status:     domain.UIDActive,
		CreatedAt:  time.Now().UTC(),
	}))
}

func registerStudent(t *testing.T, accounts *AccountService, username, uid string) RegisterResult {
	t.Helper()
	res, err := accounts.Register(context.Background(), RegisterParams{
		Username:   username,
		Password:   "correct horse battery",
		FirstName:  "Test",
		LastName:   "Student",
		Department: "comp",
		Role:       domain.RoleStudent,
		UID:        uid,
		Year:       "SE",
	})
	require.NoError(t, err)
	return res
}
