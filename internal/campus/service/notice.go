package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/internal/campus/store"
	"github.com/campusconnect/campuscore/pkg/idx"
	"github.com/campusconnect/campuscore/pkg/slogx"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

var (
	ErrNoticeNotFound = errors.New("notice_not_found")
	ErrInvalidNotice  = errors.New("invalid_notice")
)

// DefaultNoticeCacheTTL bounds how stale a cached department feed may get
// even without an explicit invalidation.
const DefaultNoticeCacheTTL = 5 * time.Minute

// noticeCacheSize is one entry per department plus the "all" scope; anything
// beyond that is eviction headroom.
const noticeCacheSize = 16

// NoticeService publishes announcements and serves the per-department feed.
// Feeds are read far more often than notices are written, so list results sit
// in a small expiring cache keyed by department; every publish purges it.
type NoticeService struct {
	Store    store.Store
	Notifier *NotificationService

	cache *expirable.LRU[string, []domain.Notice]
}

func NewNoticeService(st store.Store, notifier *NotificationService, cacheTTL time.Duration) *NoticeService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultNoticeCacheTTL
	}
	return &NoticeService{
		Store:    st,
		Notifier: notifier,
		cache:    expirable.NewLRU[string, []domain.Notice](noticeCacheSize, nil, cacheTTL),
	}
}

// Create publishes a notice and fans a notification out to its audience. The
// fan-out runs in the background: delivery failure is logged and swallowed,
// never surfaced to the author, and the notice stands regardless.
func (s *NoticeService) Create(ctx context.Context, author domain.User, title, content, department string) (domain.Notice, error) {
	l := slogx.FromContext(ctx)

	if title == "" || content == "" {
		return domain.Notice{}, ErrInvalidNotice
	}
	if !domain.ValidDepartment(department, true) {
		return domain.Notice{}, ErrInvalidDepartment
	}

	n := domain.Notice{
		ID:         idx.New().String(),
		Title:      title,
		Content:    content,
		AuthorID:   author.ID,
		Department: department,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Store.Notices().CreateNotice(ctx, n); err != nil {
		return domain.Notice{}, err
	}

	s.cache.Purge()

	// Detached from the request context so an early client disconnect does
	// not abort delivery.
	go func() {
		fanoutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		count, err := s.Notifier.NotifyAudience(slogx.WithContext(fanoutCtx, l), Fanout{
			Department: n.Department,
			Title:      "New notice: " + n.Title,
			Message:    n.Title,
			Type:       domain.NotificationNotice,
			EntityID:   n.ID,
		})
		if err != nil {
			l.Error("notice fan-out failed",
				slog.String("notice_id", n.ID),
				slog.Any("error", err),
			)
			return
		}
		l.Info("notice published",
			slog.String("notice_id", n.ID),
			slog.String("department", n.Department),
			slog.Int("notified", count),
		)
	}()

	return n, nil
}

// List returns the feed for a department, newest first, serving from cache
// when a fresh enough copy exists.
func (s *NoticeService) List(ctx context.Context, department string) ([]domain.Notice, error) {
	if !domain.ValidDepartment(department, true) {
		return nil, ErrInvalidDepartment
	}

	if cached, ok := s.cache.Get(department); ok {
		return cached, nil
	}

	notices, err := s.Store.Notices().ListByDepartment(ctx, department, DefaultListLimit)
	if err != nil {
		return nil, err
	}
	s.cache.Add(department, notices)
	return notices, nil
}

// Get returns one notice by id.
func (s *NoticeService) Get(ctx context.Context, id string) (domain.Notice, error) {
	n, err := s.Store.Notices().GetNoticeByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Notice{}, ErrNoticeNotFound
		}
		return domain.Notice{}, err
	}
	return n, nil
}
