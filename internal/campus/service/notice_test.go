package service

import (
	"context"
	"testing"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/stretchr/testify/require"
)

func TestNoticePublish(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts := &AccountService{Store: st, Tokens: newTestTokens(t, st)}
	notifier := &NotificationService{Store: st}
	notices := NewNoticeService(st, notifier, time.Minute)

	seedUID(t, st, "COMP-401", "comp", "SE")
	student := registerStudent(t, accounts, "reader", "COMP-401")

	author := domain.User{ID: "admin-1", Role: domain.RoleAdmin, Status: domain.StatusActive}

	n, err := notices.Create(ctx, author, "Results out", "Check the portal", "comp")
	require.NoError(t, err)
	require.NotEmpty(t, n.ID)

	// Fan-out is asynchronous; wait for the inbox record to land.
	require.Eventually(t, func() bool {
		count, err := notifier.UnreadCount(ctx, student.User.ID)
		return err == nil && count == 1
	}, 5*time.Second, 10*time.Millisecond)

	notes, err := notifier.List(ctx, student.User.ID)
	require.NoError(t, err)
	require.Equal(t, domain.NotificationNotice, notes[0].Type)
	require.Equal(t, n.ID, notes[0].EntityID)

	t.Run("validation", func(t *testing.T) {
		_, err := notices.Create(ctx, author, "", "body", "comp")
		require.ErrorIs(t, err, ErrInvalidNotice)

		_, err = notices.Create(ctx, author, "title", "body", "astrology")
		require.ErrorIs(t, err, ErrInvalidDepartment)
	})
}

func TestNoticePublishByDevIdentity(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	notifier := &NotificationService{Store: st}
	notices := NewNoticeService(st, notifier, time.Minute)

	// The synthetic admin has no users row, yet the gate grants it publishing
	// and the store must accept its authorship.
	require.True(t, CanPerform(devIdentity, ActionCreateNotice, ""))

	n, err := notices.Create(ctx, devIdentity, "Maintenance window", "Back at 06:00", "comp")
	require.NoError(t, err)

	feed, err := notices.List(ctx, "comp")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, devIdentity.ID, feed[0].AuthorID)
	require.Equal(t, n.ID, feed[0].ID)
}

func TestNoticeFeed(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	notifier := &NotificationService{Store: st}
	notices := NewNoticeService(st, notifier, time.Minute)

	author := domain.User{ID: "admin-1", Role: domain.RoleAdmin, Status: domain.StatusActive}

	_, err := notices.Create(ctx, author, "For comp", "c", "comp")
	require.NoError(t, err)
	_, err = notices.Create(ctx, author, "For mech", "m", "mech")
	require.NoError(t, err)
	_, err = notices.Create(ctx, author, "For everyone", "e", domain.DepartmentAll)
	require.NoError(t, err)

	t.Run("department feed includes the all scope", func(t *testing.T) {
		feed, err := notices.List(ctx, "comp")
		require.NoError(t, err)
		require.Len(t, feed, 2)
		for _, n := range feed {
			require.Contains(t, []string{"comp", domain.DepartmentAll}, n.Department)
		}
	})

	t.Run("all feed returns everything", func(t *testing.T) {
		feed, err := notices.List(ctx, domain.DepartmentAll)
		require.NoError(t, err)
		require.Len(t, feed, 3)
	})

	t.Run("publishing invalidates the cached feed", func(t *testing.T) {
		before, err := notices.List(ctx, "mech")
		require.NoError(t, err)
		require.Len(t, before, 2)

		_, err = notices.Create(ctx, author, "Another for mech", "m2", "mech")
		require.NoError(t, err)

		after, err := notices.List(ctx, "mech")
		require.NoError(t, err)
		require.Len(t, after, 3)
	})
}
