package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/internal/campus/store"
	"github.com/campusconnect/campuscore/pkg/cryptox"
	"github.com/campusconnect/campuscore/pkg/idx"
	"github.com/campusconnect/campuscore/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrPendingApproval    = errors.New("pending_approval")
	ErrAccountRejected    = errors.New("account_rejected")

	ErrUsernameTaken     = errors.New("username_taken")
	ErrReservedUsername  = errors.New("reserved_username")
	ErrInvalidRole       = errors.New("invalid_role")
	ErrInvalidDepartment = errors.New("invalid_department")
	ErrInvalidYear       = errors.New("invalid_year")
	ErrInvalidUID        = errors.New("invalid_uid")
	ErrUIDAlreadyBound   = errors.New("uid_already_bound")
	ErrUserNotFound      = errors.New("user_not_found")
)

// RegisterParams carries a registration submission. Role selects the flow:
// students are verified against the allow-list and activated immediately,
// faculty are parked pending review.
type RegisterParams struct {
	Username   string
	Password   string
	FirstName  string
	LastName   string
	Department string
	Role       string
	UID        string // required for students
	Year       string // required for students
}

// RegisterResult is what a successful registration hands back. Token is empty
// for faculty, who cannot authenticate until approved.
type RegisterResult struct {
	User  domain.User
	Token string
}

// AccountService owns registration, login and profile lookup.
type AccountService struct {
	Store  store.Store
	Tokens *TokenService
}

// Register creates a new identity. The handle is claimed case-insensitively;
// two concurrent submissions of the same handle or the same UID race on the
// database unique index and exactly one wins.
func (s *AccountService) Register(ctx context.Context, p RegisterParams) (RegisterResult, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	p.Username = strings.TrimSpace(p.Username)
	if p.Username == "" || p.Password == "" {
		return RegisterResult{}, ErrInvalidCredentials
	}
	if strings.EqualFold(p.Username, DeveloperHandle) {
		return RegisterResult{}, ErrReservedUsername
	}
	if !domain.ValidDepartment(p.Department, false) {
		return RegisterResult{}, ErrInvalidDepartment
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return RegisterResult{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     p.Username,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		Department:   p.Department,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch p.Role {
	case domain.RoleStudent:
		if err := s.registerStudent(ctx, &u, p); err != nil {
			return RegisterResult{}, err
		}
	case domain.RoleFaculty:
		if err := s.registerFaculty(ctx, &u, now); err != nil {
			return RegisterResult{}, err
		}
	default:
		return RegisterResult{}, ErrInvalidRole
	}

	l.Info("identity registered",
		slog.String("user_id", u.ID),
		slog.String("username", u.Username),
		slog.String("role", u.Role),
		slog.String("status", u.Status),
	)

	res := RegisterResult{User: u}
	if u.IsApproved() {
		token, err := s.Tokens.Issue(u)
		if err != nil {
			return RegisterResult{}, err
		}
		res.Token = token
	}
	return res, nil
}

// registerStudent verifies the college identifier against the allow-list and
// creates an immediately-active student. Binding the identifier is enforced
// by the unique index on users.uid, so the read-then-insert here is safe
// under concurrency: the second insert loses.
func (s *AccountService) registerStudent(ctx context.Context, u *domain.User, p RegisterParams) error {
	if !domain.ValidYear(p.Year) {
		return ErrInvalidYear
	}

	uid := strings.TrimSpace(p.UID)
	if uid == "" {
		return ErrInvalidUID
	}

	entry, err := s.Store.StudentUIDs().GetUID(ctx, uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidUID
		}
		return err
	}
	if entry.Status != domain.UIDActive {
		return ErrInvalidUID
	}

	if _, err := s.Store.Users().GetUserByUsername(ctx, u.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	u.Role = domain.RoleStudent
	u.Status = domain.StatusActive
	u.UID = uid
	u.Year = p.Year

	if err := s.Store.Users().CreateUser(ctx, *u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Could be either index; re-check the handle to tell them apart.
			if _, lookupErr := s.Store.Users().GetUserByUsername(ctx, u.Username); lookupErr == nil {
				return ErrUsernameTaken
			}
			return ErrUIDAlreadyBound
		}
		return err
	}
	return nil
}

// registerFaculty creates a pending identity plus its review request in one
// transaction, so a crash can never leave an unreviewable half-registration.
func (s *AccountService) registerFaculty(ctx context.Context, u *domain.User, now time.Time) error {
	u.Role = domain.RoleFaculty
	u.Status = domain.StatusPending

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, *u); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUsernameTaken
			}
			return err
		}

		return tx.FacultyRequests().CreateRequest(ctx, domain.FacultyRequest{
			ID:         idx.New().String(),
			UserID:     u.ID,
			Username:   u.Username,
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			Department: u.Department,
			Status:     domain.RequestPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	})
}

// Login verifies credentials and issues a token. The error distinguishes bad
// credentials from a correct login against an unapproved identity, because
// the client renders those very differently.
func (s *AccountService) Login(ctx context.Context, username, password string) (RegisterResult, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash anyway so unknown handles cost the same as bad
			// passwords.
			_ = cryptox.VerifyPassword(password, cryptox.DummyHash)
			return RegisterResult{}, ErrInvalidCredentials
		}
		return RegisterResult{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("login failed", slog.String("username", username))
		return RegisterResult{}, ErrInvalidCredentials
	}

	switch u.Status {
	case domain.StatusPending:
		return RegisterResult{}, ErrPendingApproval
	case domain.StatusRejected:
		return RegisterResult{}, ErrAccountRejected
	}

	token, err := s.Tokens.Issue(u)
	if err != nil {
		return RegisterResult{}, err
	}
	return RegisterResult{User: u, Token: token}, nil
}

// GetByUsername resolves a public profile by handle, case-insensitively.
func (s *AccountService) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// GetByID resolves an identity by id.
func (s *AccountService) GetByID(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}
