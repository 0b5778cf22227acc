package dashboard_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/peakform/coachdesk/pkg/dashsdk"
)

/*
 * Common constants and helper functions for dashboard service end-to-end
 * tests. This includes container setup, token minting, and assertions.
 */

const (
	testImageName = "coachdesk-dashboard-test:latest"

	testJWTSecret = "e2e-signing-secret-0001"
	testIssuer    = "peakform-identity"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Dashboard Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Dashboard Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/coachdesk/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupDashboardContainer starts the dashboard service in a container and
// returns the base URL. Rate limits are relaxed so rapid test requests do
// not trip the production defaults.
func setupDashboardContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"DASH_JWT_SECRET":    testJWTSecret,
			"DASH_ISSUER":        testIssuer,
			"DASH_DATABASE_FILE": "/home/coachdesk/dashboard.db",
			"ENV":                "test",
			"LOG_LEVEL":          "info",
			"LOG_FORMAT":         "json",
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

// signToken mints an access token the way the hosted identity provider
// does: HS256, subject is the coach id, role drives authorisation.
func signToken(t *testing.T, coachID, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  coachID,
		"role": role,
		"iss":  testIssuer,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

// newAuthedClient returns an SDK client sending a token for the given role.
func newAuthedClient(t *testing.T, baseURL, coachID, role string) *dashsdk.SDKClient {
	t.Helper()
	return dashsdk.NewSDKClient(baseURL, dashsdk.StaticToken(signToken(t, coachID, role)))
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *dashsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
