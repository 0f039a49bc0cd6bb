package campus_test

import (
	"net/http"
	"testing"

	"github.com/campusconnect/campuscore/pkg/campussdk"
	"github.com/stretchr/testify/require"
)

// TestFacultyApprovalFlow walks the full review cycle: register, sit
// pending, get approved, log in.
func TestFacultyApprovalFlow(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t)
	defer cleanup()

	client := campussdk.NewSDKClient(baseURL)
	admin := bootstrapAdmin(t, client)

	registerFaculty(t, client, "drrao", "comp")

	// Pending faculty cannot log in yet
	_, err := client.Login(t.Context(), "drrao", facultyPassword)
	assertAPIError(t, err, http.StatusUnauthorized, "pending_approval")

	// Admin approves
	request := findRequestByUsername(t, admin, "drrao")
	decided, err := admin.ApproveFacultyRequest(t.Context(), request.ID)
	require.NoError(t, err)
	require.Equal(t, "approved", decided.Status)
	require.NotNil(t, decided.ReviewedAt)

	// Now login works and the role has flipped
	session, err := client.Login(t.Context(), "drrao", facultyPassword)
	require.NoError(t, err)
	require.Equal(t, "faculty", session.User().Role)
	require.Equal(t, "active", session.User().Status)

	t.Logf("Faculty %s approved and logged in", "drrao")
}

// TestFacultyRejectionBarsLogin verifies rejected faculty stay locked out.
func TestFacultyRejectionBarsLogin(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t)
	defer cleanup()

	client := campussdk.NewSDKClient(baseURL)
	admin := bootstrapAdmin(t, client)

	registerFaculty(t, client, "impostor", "mech")

	request := findRequestByUsername(t, admin, "impostor")
	decided, err := admin.RejectFacultyRequest(t.Context(), request.ID)
	require.NoError(t, err)
	require.Equal(t, "rejected", decided.Status)

	_, err = client.Login(t.Context(), "impostor", facultyPassword)
	assertAPIError(t, err, http.StatusUnauthorized, "account_rejected")
}

// TestFacultyDecisionIsFinal verifies a decided request cannot be decided again.
func TestFacultyDecisionIsFinal(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t)
	defer cleanup()

	client := campussdk.NewSDKClient(baseURL)
	admin := bootstrapAdmin(t, client)

	registerFaculty(t, client, "drrao", "comp")
	request := findRequestByUsername(t, admin, "drrao")

	_, err := admin.ApproveFacultyRequest(t.Context(), request.ID)
	require.NoError(t, err)

	// Neither a repeat approve nor a late reject may go through
	_, err = admin.ApproveFacultyRequest(t.Context(), request.ID)
	assertAPIError(t, err, http.StatusConflict, "conflict")

	_, err = admin.RejectFacultyRequest(t.Context(), request.ID)
	assertAPIError(t, err, http.StatusConflict, "conflict")
}

// TestFacultyQueueRequiresAdmin verifies students cannot touch the review queue.
func TestFacultyQueueRequiresAdmin(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t)
	defer cleanup()

	client := campussdk.NewSDKClient(baseURL)
	admin := bootstrapAdmin(t, client)

	seedStudentUID(t, admin, studentUID, "comp", "SE")
	student := registerStudent(t, client, "asha", studentUID, "comp", "SE")

	_, err := student.ListFacultyRequests(t.Context())
	assertAPIError(t, err, http.StatusForbidden, "forbidden")
}
