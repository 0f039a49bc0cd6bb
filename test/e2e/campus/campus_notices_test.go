package campus_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/campusconnect/campuscore/pkg/campussdk"
	"github.com/stretchr/testify/require"
)

// TestNoticePublishAndFanout verifies a published notice lands in the
// department's feed and, shortly after, in each member's inbox.
func TestNoticePublishAndFanout(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t)
	defer cleanup()

	client := campussdk.NewSDKClient(baseURL)
	admin := bootstrapAdmin(t, client)

	seedStudentUID(t, admin, studentUID, "comp", "SE")
	seedStudentUID(t, admin, "21MECH007", "mech", "TE")
	compStudent := registerStudent(t, client, "asha", studentUID, "comp", "SE")
	mechStudent := registerStudent(t, client, "ravi", "21MECH007", "mech", "TE")

	notice, err := admin.CreateNotice(t.Context(), campussdk.CreateNoticeRequest{
		Title:      "Lab closure",
		Content:    "The comp lab is closed on Friday.",
		Department: "comp",
	})
	require.NoError(t, err)
	require.NotEmpty(t, notice.ID)

	// Feed shows it immediately
	feed, err := client.ListNotices(t.Context(), "comp")
	require.NoError(t, err)
	require.Len(t, feed.Notices, 1)
	require.Equal(t, "Lab closure", feed.Notices[0].Title)

	// Fan-out is asynchronous; the comp student's inbox fills in shortly
	require.Eventually(t, func() bool {
		inbox, err := compStudent.ListNotifications(t.Context())
		return err == nil && len(inbox.Notifications) == 1
	}, 10*time.Second, 100*time.Millisecond, "comp student should receive the notification")

	inbox, err := compStudent.ListNotifications(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, inbox.UnreadCount)
	require.Equal(t, notice.ID, inbox.Notifications[0].EntityID)

	// The mech student gets nothing for a comp-only notice
	mechInbox, err := mechStudent.ListNotifications(t.Context())
	require.NoError(t, err)
	require.Empty(t, mechInbox.Notifications)
}

// TestCampusWideNoticeReachesEveryone verifies department "all" fans out to
// every active account.
func TestCampusWideNoticeReachesEveryone(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t)
	defer cleanup()

	client := campussdk.NewSDKClient(baseURL)
	admin := bootstrapAdmin(t, client)

	seedStudentUID(t, admin, studentUID, "comp", "SE")
	seedStudentUID(t, admin, "21MECH007", "mech", "TE")
	compStudent := registerStudent(t, client, "asha", studentUID, "comp", "SE")
	mechStudent := registerStudent(t, client, "ravi", "21MECH007", "mech", "TE")

	_, err := admin.CreateNotice(t.Context(), campussdk.CreateNoticeRequest{
		Title:      "Semester dates",
		Content:    "The even semester starts on January 5th.",
		Department: "all",
	})
	require.NoError(t, err)

	for _, session := range []*campussdk.Session{compStudent, mechStudent} {
		require.Eventually(t, func() bool {
			count, err := session.UnreadCount(t.Context())
			return err == nil && count == 1
		}, 10*time.Second, 100*time.Millisecond)
	}

	// Campus-wide notices show in every department feed
	feed, err := client.ListNotices(t.Context(), "mech")
	require.NoError(t, err)
	require.Len(t, feed.Notices, 1)
}

// TestStudentCannotPublishNotice verifies the role gate on publishing.
func TestStudentCannotPublishNotice(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t)
	defer cleanup()

	client := campussdk.NewSDKClient(baseURL)
	admin := bootstrapAdmin(t, client)

	seedStudentUID(t, admin, studentUID, "comp", "SE")
	student := registerStudent(t, client, "asha", studentUID, "comp", "SE")

	_, err := student.CreateNotice(t.Context(), campussdk.CreateNoticeRequest{
		Title:      "Party",
		Content:    "Everyone come over.",
		Department: "comp",
	})
	assertAPIError(t, err, http.StatusForbidden, "forbidden")
}

// TestMarkNotificationsRead verifies read state transitions through the API.
func TestMarkNotificationsRead(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t)
	defer cleanup()

	client := campussdk.NewSDKClient(baseURL)
	admin := bootstrapAdmin(t, client)

	seedStudentUID(t, admin, studentUID, "comp", "SE")
	student := registerStudent(t, client, "asha", studentUID, "comp", "SE")

	for _, title := range []string{"First", "Second"} {
		_, err := admin.CreateNotice(t.Context(), campussdk.CreateNoticeRequest{
			Title:      title,
			Content:    "Content for " + title,
			Department: "comp",
		})
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		count, err := student.UnreadCount(t.Context())
		return err == nil && count == 2
	}, 10*time.Second, 100*time.Millisecond)

	inbox, err := student.ListNotifications(t.Context())
	require.NoError(t, err)

	// Mark one, then the rest
	require.NoError(t, student.MarkNotificationRead(t.Context(), inbox.Notifications[0].ID))

	count, err := student.UnreadCount(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.NoError(t, student.MarkAllNotificationsRead(t.Context()))

	count, err = student.UnreadCount(t.Context())
	require.NoError(t, err)
	require.Equal(t, 0, count)

	// Someone else's notification reads as missing
	other := registerFacultyApproved(t, client, admin, "drrao", "comp")
	err = other.MarkNotificationRead(t.Context(), inbox.Notifications[0].ID)
	assertAPIError(t, err, http.StatusNotFound, "not_found")
}

// registerFacultyApproved registers faculty and immediately approves them.
func registerFacultyApproved(t *testing.T, client *campussdk.SDKClient, admin *campussdk.Session, username, department string) *campussdk.Session {
	t.Helper()

	registerFaculty(t, client, username, department)
	request := findRequestByUsername(t, admin, username)

	_, err := admin.ApproveFacultyRequest(t.Context(), request.ID)
	require.NoError(t, err)

	session, err := client.Login(t.Context(), username, facultyPassword)
	require.NoError(t, err)

	return session
}
