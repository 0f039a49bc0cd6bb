package campus_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/campusconnect/campuscore/pkg/campussdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for campus core end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "campus-core-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	jwtSecret      = "e2e-only-signing-secret-0123456789abcdef"

	adminUsername = "registrar"
	adminPassword = "Registrar123!"

	studentUID      = "21COMP042"
	studentPassword = "Student123!"

	facultyPassword = "Faculty123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Campus Core Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Campus Core Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/campuscore/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupCampusContainer starts the service in a container and returns the base URL.
func setupCampusContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":      bootstrapToken,
			"AUTH_JWT_SECRET":      jwtSecret,
			"AUTH_ISSUER":          "campus-core-e2e",
			"CAMPUS_DATABASE_FILE": "/campus.db",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
			// Relax rate limits so rapid test requests don't trip the
			// production defaults. Rate limiting itself has its own test.
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupCampusContainerWithDefaultRateLimits starts the service with DEFAULT
// rate limits. This is specifically for testing that rate limiting works.
// Everything else should use setupCampusContainer().
func setupCampusContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":      bootstrapToken,
			"AUTH_JWT_SECRET":      jwtSecret,
			"AUTH_ISSUER":          "campus-core-e2e",
			"CAMPUS_DATABASE_FILE": "/campus.db",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// bootstrapAdmin creates the initial admin and returns an admin session.
func bootstrapAdmin(t *testing.T, client *campussdk.SDKClient) *campussdk.Session {
	t.Helper()
	ctx := context.Background()

	resp, err := client.Bootstrap(ctx, campussdk.BootstrapRequest{
		Token:     bootstrapToken,
		Username:  adminUsername,
		Password:  adminPassword,
		FirstName: "Campus",
		LastName:  "Registrar",
	})
	require.NoError(t, err, "Bootstrap should succeed")
	require.NotEmpty(t, resp.AdminID, "Admin ID should not be empty")

	session, err := client.Login(ctx, adminUsername, adminPassword)
	require.NoError(t, err, "Admin login should succeed")

	return session
}

// seedStudentUID adds one identifier to the registration allow-list.
func seedStudentUID(t *testing.T, admin *campussdk.Session, uid, department, year string) {
	t.Helper()

	entry, err := admin.AddUID(context.Background(), campussdk.AddUIDRequest{
		UID:        uid,
		Department: department,
		Year:       year,
	})
	require.NoError(t, err, "Adding a UID should succeed")
	require.Equal(t, "active", entry.Status)
}

// registerStudent registers an active student against a seeded UID and
// returns a logged-in session.
func registerStudent(t *testing.T, client *campussdk.SDKClient, username, uid, department, year string) *campussdk.Session {
	t.Helper()
	ctx := context.Background()

	resp, err := client.Register(ctx, campussdk.RegisterRequest{
		Username:   username,
		Password:   studentPassword,
		FirstName:  "Test",
		LastName:   "Student",
		Department: department,
		Role:       "student",
		UID:        uid,
		Year:       year,
	})
	require.NoError(t, err, "Student registration should succeed")
	require.NotEmpty(t, resp.Token, "Student should be logged in immediately")
	require.Equal(t, "active", resp.User.Status)

	return client.NewSessionFromToken(resp.Token)
}

// registerFaculty submits a faculty registration, which stays pending until
// an admin decides. Returns the registered identity.
func registerFaculty(t *testing.T, client *campussdk.SDKClient, username, department string) campussdk.User {
	t.Helper()
	ctx := context.Background()

	resp, err := client.Register(ctx, campussdk.RegisterRequest{
		Username:   username,
		Password:   facultyPassword,
		FirstName:  "Test",
		LastName:   "Faculty",
		Department: department,
		Role:       "faculty",
	})
	require.NoError(t, err, "Faculty registration should succeed")
	require.Empty(t, resp.Token, "Pending faculty should not receive a token")
	require.Equal(t, "pending", resp.User.Status)

	return resp.User
}

// findRequestByUsername locates a faculty request in the review queue.
func findRequestByUsername(t *testing.T, admin *campussdk.Session, username string) campussdk.FacultyRequest {
	t.Helper()

	queue, err := admin.ListFacultyRequests(context.Background())
	require.NoError(t, err)

	for _, fr := range queue.Requests {
		if fr.Username == username {
			return fr
		}
	}

	t.Fatalf("Faculty request for %q not found", username)
	return campussdk.FacultyRequest{}
}

// assertAPIError checks that err is an *APIError with the given status and code.
func assertAPIError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()
	require.Error(t, err)

	apiErr, ok := err.(*campussdk.APIError)
	require.True(t, ok, "error should be an *campussdk.APIError, got: %v", err)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
