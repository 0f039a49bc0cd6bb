package service

import (
	"context"
	"testing"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/stretchr/testify/require"
)

func TestNotifyAudience(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts := &AccountService{Store: st, Tokens: newTestTokens(t, st)}
	notifier := &NotificationService{Store: st}

	seedUID(t, st, "COMP-201", "comp", "SE")
	seedUID(t, st, "COMP-202", "comp", "SE")
	compA := registerStudent(t, accounts, "comp-a", "COMP-201")
	compB := registerStudent(t, accounts, "comp-b", "COMP-202")

	seedUID(t, st, "MECH-201", "mech", "SE")
	mech, err := accounts.Register(ctx, RegisterParams{
		Username: "mech-a", Password: "pw", Department: "mech",
		Role: domain.RoleStudent, UID: "MECH-201", Year: "SE",
	})
	require.NoError(t, err)

	// A pending identity is not an eligible recipient.
	_, err = accounts.Register(ctx, RegisterParams{
		Username: "pending-prof", Password: "pw", FirstName: "P", LastName: "P",
		Department: "comp", Role: domain.RoleFaculty,
	})
	require.NoError(t, err)

	t.Run("department audience", func(t *testing.T) {
		count, err := notifier.NotifyAudience(ctx, Fanout{
			Department: "comp",
			Title:      "Exam schedule",
			Message:    "Posted on the board",
			Type:       domain.NotificationNotice,
			EntityID:   "notice-1",
		})
		require.NoError(t, err)
		require.Equal(t, 2, count)

		for _, id := range []string{compA.User.ID, compB.User.ID} {
			notes, err := notifier.List(ctx, id)
			require.NoError(t, err)
			require.Len(t, notes, 1)
			require.False(t, notes[0].Read)
		}

		notes, err := notifier.List(ctx, mech.User.ID)
		require.NoError(t, err)
		require.Empty(t, notes)
	})

	t.Run("all reaches every active identity", func(t *testing.T) {
		count, err := notifier.NotifyAudience(ctx, Fanout{
			Department: domain.DepartmentAll,
			Title:      "Holiday",
			Message:    "Campus closed Friday",
			Type:       domain.NotificationSystem,
		})
		require.NoError(t, err)
		require.Equal(t, 3, count, "pending identities excluded")
	})

	t.Run("empty audience is a no-op", func(t *testing.T) {
		count, err := notifier.NotifyAudience(ctx, Fanout{
			Department: "aiml",
			Title:      "Nobody home",
			Message:    "x",
			Type:       domain.NotificationNotice,
		})
		require.NoError(t, err)
		require.Zero(t, count)
	})
}

func TestNotificationInbox(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts := &AccountService{Store: st, Tokens: newTestTokens(t, st)}
	notifier := &NotificationService{Store: st}

	seedUID(t, st, "COMP-301", "comp", "FE")
	seedUID(t, st, "COMP-302", "comp", "FE")
	owner := registerStudent(t, accounts, "owner", "COMP-301")
	other := registerStudent(t, accounts, "other", "COMP-302")

	_, err := notifier.NotifyAudience(ctx, Fanout{
		Department: "comp", Title: "One", Message: "m", Type: domain.NotificationNotice,
	})
	require.NoError(t, err)
	_, err = notifier.NotifyAudience(ctx, Fanout{
		Department: "comp", Title: "Two", Message: "m", Type: domain.NotificationNotice,
	})
	require.NoError(t, err)

	notes, err := notifier.List(ctx, owner.User.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	unread, err := notifier.UnreadCount(ctx, owner.User.ID)
	require.NoError(t, err)
	require.Equal(t, 2, unread)

	t.Run("mark read is owner-scoped", func(t *testing.T) {
		err := notifier.MarkRead(ctx, notes[0].ID, other.User.ID)
		require.ErrorIs(t, err, ErrNotificationNotFound)

		require.NoError(t, notifier.MarkRead(ctx, notes[0].ID, owner.User.ID))

		unread, err := notifier.UnreadCount(ctx, owner.User.ID)
		require.NoError(t, err)
		require.Equal(t, 1, unread)
	})

	t.Run("mark all read is idempotent", func(t *testing.T) {
		require.NoError(t, notifier.MarkAllRead(ctx, owner.User.ID))
		require.NoError(t, notifier.MarkAllRead(ctx, owner.User.ID))

		unread, err := notifier.UnreadCount(ctx, owner.User.ID)
		require.NoError(t, err)
		require.Zero(t, unread)
	})

	t.Run("unknown notification", func(t *testing.T) {
		err := notifier.MarkRead(ctx, "no-such-id", owner.User.ID)
		require.ErrorIs(t, err, ErrNotificationNotFound)
	})
}
