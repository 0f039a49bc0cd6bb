package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingCleanup(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts := &AccountService{Store: st, Tokens: newTestTokens(t, st)}
	notifier := &NotificationService{Store: st}

	seedUID(t, st, "COMP-501", "comp", "SE")
	user := registerStudent(t, accounts, "hoarder", "COMP-501")

	old := time.Now().UTC().Add(-60 * 24 * time.Hour)
	batch := []domain.Notification{
		{ID: idx.New().String(), RecipientID: user.User.ID, Title: "old read",
			Message: "m", Type: domain.NotificationSystem, Read: true, CreatedAt: old},
		{ID: idx.New().String(), RecipientID: user.User.ID, Title: "old unread",
			Message: "m", Type: domain.NotificationSystem, CreatedAt: old},
		{ID: idx.New().String(), RecipientID: user.User.ID, Title: "fresh read",
			Message: "m", Type: domain.NotificationSystem, Read: true, CreatedAt: time.Now().UTC()},
	}
	require.NoError(t, st.Notifications().CreateBatch(ctx, batch))

	hk := NewHousekeepingService(st, slog.Default(), time.Hour, 30*24*time.Hour)
	hk.cleanup()

	notes, err := notifier.List(ctx, user.User.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2, "only the old read notification goes")
	for _, n := range notes {
		require.NotEqual(t, "old read", n.Title)
	}
}

func TestHousekeepingLifecycle(t *testing.T) {
	st := newTestStore(t)

	hk := NewHousekeepingService(st, slog.Default(), 50*time.Millisecond, time.Hour)
	hk.Start()
	time.Sleep(120 * time.Millisecond)
	hk.Stop() // must not hang or panic
}
