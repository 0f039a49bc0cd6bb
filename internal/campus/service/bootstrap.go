package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/internal/campus/store"
	"github.com/campusconnect/campuscore/pkg/cryptox"
	"github.com/campusconnect/campuscore/pkg/idx"
	"github.com/campusconnect/campuscore/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService creates the very first admin identity on an empty
// database. It only ever works once; after that every admin is made by
// another admin.
type BootstrapService struct {
	Store store.Store
	Token string // pre-configured bootstrap token
}

// BootstrapData is the first-admin submission.
type BootstrapData struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap creates the initial admin and returns its id.
func (s *BootstrapService) Bootstrap(ctx context.Context, token string, req BootstrapData) (string, error) {
	l := slogx.FromContext(ctx)

	// 1. Check if already bootstrapped
	if bootstrapped, _ := s.IsBootstrapped(ctx); bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return "", ErrBootstrapAlready
	}

	// 2. Validate provided token
	if s.Token == "" || token != s.Token {
		l.Warn("unauthorized bootstrap attempt")
		return "", ErrBootstrapUnauthorized
	}

	// 3. Hash password
	passHash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return "", err
	}

	// 4. Create the admin user
	now := time.Now().UTC()
	adminID := idx.New().String()
	err = s.Store.Users().CreateUser(ctx, domain.User{
		ID:           adminID,
		Username:     req.Username,
		PasswordHash: passHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Department:   domain.DepartmentAll,
		Role:         domain.RoleAdmin,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		l.Error("failed to create admin user", slog.Any("error", err))
		return "", err
	}

	l.Info("successfully bootstrapped system", slog.String("admin_user_id", adminID))
	return adminID, nil
}
