package http_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/events"
	dashhttp "github.com/peakform/coachdesk/internal/dashboard/http"
	"github.com/peakform/coachdesk/internal/dashboard/mail"
	"github.com/peakform/coachdesk/internal/dashboard/scoring"
	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/internal/dashboard/store/drivers/sqlite"
	"github.com/peakform/coachdesk/pkg/dashsdk"
	"github.com/peakform/coachdesk/pkg/httpx"
	"github.com/peakform/coachdesk/pkg/idx"
)

const (
	testSecret = "test-signing-secret"
	testIssuer = "peakform-identity"
)

type testEnv struct {
	Server *httptest.Server
	Store  store.Store
	Hub    *events.Hub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "dashboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hub := events.NewHub()
	t.Cleanup(hub.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := dashhttp.NewRouter([]byte(testSecret), testIssuer, "test", st, hub, logger)
	router.RosterService = &service.RosterService{
		Store:  st,
		Scores: scoring.StoredScores{Source: st.Adherence()},
		Hub:    hub,
	}
	router.TeamService = &service.TeamService{Store: st, Hub: hub}
	router.InvitationService = &service.InvitationService{
		Store:     st,
		Mailer:    mail.Noop{},
		Hub:       hub,
		SignupURL: "http://localhost/signup",
	}
	router.IntelligenceService = &service.IntelligenceService{Store: st, Hub: hub}
	router.StatsService = &service.StatsService{Store: st}
	router.PreferencesService = &service.PreferencesService{Store: st, Hub: hub}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{Server: srv, Store: st, Hub: hub}
}

// signToken mints a token the way the hosted identity provider does.
func signToken(t *testing.T, coachID, role string) string {
	t.Helper()

	claims := httpx.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   coachID,
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.Server.URL+path, buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.Server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedCoach(t *testing.T, s store.Store, role, status string) domain.Coach {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	c := domain.Coach{
		ID:        idx.New().String(),
		Name:      "Coach " + idx.New().String()[:6],
		Email:     idx.New().String() + "@peakform.test",
		Role:      role,
		Status:    status,
		Rating:    4.2,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Coaches().CreateCoach(context.Background(), c))
	return c
}

func seedClient(t *testing.T, s store.Store, c domain.Client) domain.Client {
	t.Helper()

	if c.ActiveStatusAt.IsZero() {
		c.ActiveStatusAt = time.Now().UTC()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	id, err := s.Clients().CreateClient(context.Background(), c)
	require.NoError(t, err)
	c.ID = id
	return c
}

func TestMissingBearerToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/v1/clients", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, resp.Header.Get("WWW-Authenticate"), "invalid_token")
}

func TestRosterScopedByRole(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	coach := seedCoach(t, env.Store, domain.RoleCoach, domain.CoachActive)
	other := seedCoach(t, env.Store, domain.RoleCoach, domain.CoachActive)
	admin := seedCoach(t, env.Store, domain.RoleAdmin, domain.CoachActive)

	seedClient(t, env.Store, domain.Client{FullName: "Mine", Email: "mine@x.test", Status: domain.ClientActive, CoachID: coach.ID, ActiveSubscription: true})
	seedClient(t, env.Store, domain.Client{FullName: "Theirs", Email: "theirs@x.test", Status: domain.ClientActive, CoachID: other.ID, ActiveSubscription: true})

	resp := env.do(t, http.MethodGet, "/v1/clients", signToken(t, coach.ID, coach.Role), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mine := decode[[]dashsdk.Client](t, resp)
	require.Len(t, mine, 1)
	require.Equal(t, "Mine", mine[0].FullName)

	resp = env.do(t, http.MethodGet, "/v1/clients", signToken(t, admin.ID, admin.Role), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decode[[]dashsdk.Client](t, resp)
	require.Len(t, all, 2)
}

func TestRosterQueryParams(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	admin := seedCoach(t, env.Store, domain.RoleAdmin, domain.CoachActive)
	seedClient(t, env.Store, domain.Client{FullName: "Zara Active", Email: "zara@x.test", Status: domain.ClientActive, ActiveSubscription: true})
	seedClient(t, env.Store, domain.Client{FullName: "Abe Lead", Email: "abe@x.test", Status: domain.ClientNewLead})

	token := signToken(t, admin.ID, admin.Role)

	resp := env.do(t, http.MethodGet, "/v1/clients?status=active", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	active := decode[[]dashsdk.Client](t, resp)
	require.Len(t, active, 1)
	require.Equal(t, "Zara Active", active[0].FullName)

	resp = env.do(t, http.MethodGet, "/v1/clients?sort=a-z", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sorted := decode[[]dashsdk.Client](t, resp)
	require.Len(t, sorted, 2)
	require.Equal(t, "Abe Lead", sorted[0].FullName)

	resp = env.do(t, http.MethodGet, "/v1/clients?search=zara", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := decode[[]dashsdk.Client](t, resp)
	require.Len(t, found, 1)
}

func TestCoachRosterAndAdherence(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	coach := seedCoach(t, env.Store, domain.RoleCoach, domain.CoachActive)
	other := seedCoach(t, env.Store, domain.RoleCoach, domain.CoachActive)
	admin := seedCoach(t, env.Store, domain.RoleAdmin, domain.CoachActive)

	scored := seedClient(t, env.Store, domain.Client{FullName: "Scored", Email: "scored@x.test", Status: domain.ClientActive, CoachID: coach.ID, ActiveSubscription: true})
	seedClient(t, env.Store, domain.Client{FullName: "Elsewhere", Email: "else@x.test", Status: domain.ClientActive, CoachID: other.ID, ActiveSubscription: true})

	require.NoError(t, env.Store.Adherence().UpsertScore(context.Background(), domain.AdherenceScore{
		ClientID: scored.ID, Score: 81, Improving: true, ComputedAt: time.Now().UTC(),
	}))

	// Admins may read any coach's roster.
	resp := env.do(t, http.MethodGet, "/v1/coaches/"+coach.ID+"/clients", signToken(t, admin.ID, admin.Role), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	roster := decode[[]dashsdk.Client](t, resp)
	require.Len(t, roster, 1)
	require.Equal(t, "Scored", roster[0].FullName)
	require.NotNil(t, roster[0].Adherence)
	require.Equal(t, 81, roster[0].Adherence.Score)

	// A coach naming another coach is refused.
	resp = env.do(t, http.MethodGet, "/v1/coaches/"+other.ID+"/clients", signToken(t, coach.ID, coach.Role), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	errResp := decode[dashsdk.ErrorResponse](t, resp)
	require.Equal(t, "forbidden", errResp.Error)

	resp = env.do(t, http.MethodGet, "/v1/coaches/"+coach.ID+"/adherence", signToken(t, coach.ID, coach.Role), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	scores := decode[map[int64]dashsdk.Adherence](t, resp)
	require.Len(t, scores, 1)
	require.Equal(t, 81, scores[scored.ID].Score)
	require.True(t, scores[scored.ID].Improving)
}

func TestClientOwnershipForbidden(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	coach := seedCoach(t, env.Store, domain.RoleCoach, domain.CoachActive)
	other := seedCoach(t, env.Store, domain.RoleCoach, domain.CoachActive)
	theirs := seedClient(t, env.Store, domain.Client{FullName: "Theirs", Email: "theirs@x.test", Status: domain.ClientActive, CoachID: other.ID})

	resp := env.do(t, http.MethodGet, "/v1/clients/"+itoa(theirs.ID), signToken(t, coach.ID, coach.Role), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	errResp := decode[dashsdk.ErrorResponse](t, resp)
	require.Equal(t, "forbidden", errResp.Error)
}

func TestClientStatusUpdate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	admin := seedCoach(t, env.Store, domain.RoleAdmin, domain.CoachActive)
	client := seedClient(t, env.Store, domain.Client{FullName: "Flip", Email: "flip@x.test", Status: domain.ClientLead})
	token := signToken(t, admin.ID, admin.Role)

	resp := env.do(t, http.MethodPut, "/v1/clients/"+itoa(client.ID)+"/status", token,
		dashsdk.ClientStatusRequest{Status: domain.ClientActive})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dashsdk.Client](t, resp)
	require.Equal(t, domain.ClientActive, updated.Status)

	resp = env.do(t, http.MethodPut, "/v1/clients/"+itoa(client.ID)+"/status", token,
		dashsdk.ClientStatusRequest{Status: "bogus"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckInFlow(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	coach := seedCoach(t, env.Store, domain.RoleCoach, domain.CoachActive)
	client := seedClient(t, env.Store, domain.Client{FullName: "Reg", Email: "reg@x.test", Status: domain.ClientActive, CoachID: coach.ID})
	token := signToken(t, coach.ID, coach.Role)
	base := "/v1/clients/" + itoa(client.ID) + "/checkins"

	date := time.Now().UTC().Truncate(time.Second)
	resp := env.do(t, http.MethodPost, base, token, dashsdk.CheckInRequest{
		Date:     &date,
		Weight:   82.5,
		Calories: 2200,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dashsdk.CheckIn](t, resp)
	require.False(t, created.Reviewed)

	resp = env.do(t, http.MethodPost, base+"/"+created.ID+"/review", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, base, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dashsdk.CheckIn](t, resp)
	require.Len(t, list, 1)
	require.True(t, list[0].Reviewed)
}

func TestTeamRequiresElevatedRole(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	coach := seedCoach(t, env.Store, domain.RoleCoach, domain.CoachActive)
	head := seedCoach(t, env.Store, domain.RoleHeadCoach, domain.CoachActive)

	resp := env.do(t, http.MethodGet, "/v1/coaches", signToken(t, coach.ID, coach.Role), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	errResp := decode[dashsdk.ErrorResponse](t, resp)
	require.Equal(t, "role_mismatch", errResp.Error)

	resp = env.do(t, http.MethodGet, "/v1/coaches", signToken(t, head.ID, head.Role), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	coaches := decode[[]dashsdk.Coach](t, resp)
	require.Len(t, coaches, 2)

	// Approval is admin only; head coaches read but cannot approve.
	resp = env.do(t, http.MethodPost, "/v1/coaches/"+coach.ID+"/approve", signToken(t, head.ID, head.Role), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestInvitationLifecycle(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	admin := seedCoach(t, env.Store, domain.RoleAdmin, domain.CoachActive)
	adminToken := signToken(t, admin.ID, admin.Role)

	resp := env.do(t, http.MethodPost, "/v1/invitations", adminToken,
		dashsdk.InviteMintRequest{Email: "newcoach@peakform.test", Role: domain.RoleCoach})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	minted := decode[dashsdk.InviteMintResponse](t, resp)
	require.NotEmpty(t, minted.InviteToken)

	// Redemption is unauthenticated; the email must match the invite.
	resp = env.do(t, http.MethodPost, "/v1/invitations/redeem", "",
		dashsdk.InviteRedeemRequest{Token: minted.InviteToken, Name: "New Coach", Email: "other@peakform.test"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errResp := decode[dashsdk.ErrorResponse](t, resp)
	require.Equal(t, "email_mismatch", errResp.Error)

	resp = env.do(t, http.MethodPost, "/v1/invitations/redeem", "",
		dashsdk.InviteRedeemRequest{Token: minted.InviteToken, Name: "New Coach", Email: "NewCoach@peakform.test"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	redeemed := decode[dashsdk.InviteRedeemResponse](t, resp)
	require.Equal(t, domain.CoachPending, redeemed.Status)

	// The token is single use.
	resp = env.do(t, http.MethodPost, "/v1/invitations/redeem", "",
		dashsdk.InviteRedeemRequest{Token: minted.InviteToken, Name: "Again", Email: "newcoach@peakform.test"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/v1/coaches/"+redeemed.CoachID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/v1/coaches/"+redeemed.CoachID, adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	approved := decode[dashsdk.Coach](t, resp)
	require.Equal(t, domain.CoachActive, approved.Status)
}

func TestInvitationRevoke(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	admin := seedCoach(t, env.Store, domain.RoleAdmin, domain.CoachActive)
	adminToken := signToken(t, admin.ID, admin.Role)

	resp := env.do(t, http.MethodPost, "/v1/invitations", adminToken,
		dashsdk.InviteMintRequest{Email: "revoked@peakform.test", Role: domain.RoleCoach})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	minted := decode[dashsdk.InviteMintResponse](t, resp)

	resp = env.do(t, http.MethodPost, "/v1/invitations/"+minted.InvitationID+"/revoke", adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/v1/invitations/redeem", "",
		dashsdk.InviteRedeemRequest{Token: minted.InviteToken, Name: "Late", Email: "revoked@peakform.test"})
	require.Equal(t, http.StatusGone, resp.StatusCode)
}

func TestIntelligenceResolve(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	admin := seedCoach(t, env.Store, domain.RoleAdmin, domain.CoachActive)
	token := signToken(t, admin.ID, admin.Role)

	item := domain.IntelligenceItem{
		ID:        idx.New().String(),
		Type:      "alert",
		Severity:  domain.SeverityWarning,
		Message:   "client going quiet",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, env.Store.Intelligence().CreateIntelligenceItem(context.Background(), item))

	resp := env.do(t, http.MethodGet, "/v1/intelligence", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	feed := decode[[]dashsdk.IntelligenceItem](t, resp)
	require.Len(t, feed, 1)

	resp = env.do(t, http.MethodPost, "/v1/intelligence/"+item.ID+"/resolve", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, decode[dashsdk.ResolveResponse](t, resp).Resolved)

	// Resolving again is a harmless no-op.
	resp = env.do(t, http.MethodPost, "/v1/intelligence/"+item.ID+"/resolve", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.False(t, decode[dashsdk.ResolveResponse](t, resp).Resolved)

	resp = env.do(t, http.MethodPost, "/v1/intelligence/"+idx.New().String()+"/resolve", token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStatsAndRevenueImport(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	admin := seedCoach(t, env.Store, domain.RoleAdmin, domain.CoachActive)
	token := signToken(t, admin.ID, admin.Role)

	seedClient(t, env.Store, domain.Client{FullName: "Act", Email: "act@x.test", Status: domain.ClientActive, ActiveSubscription: true})

	resp := env.do(t, http.MethodPost, "/v1/revenue/import", token, dashsdk.RevenueImportRequest{
		ByPlan: []dashsdk.RevenuePlan{
			{Plan: "Premium", Revenue: 9000, Clients: 12},
			{Plan: "Basic", Revenue: 2500, Clients: 20},
		},
		OverTime: []dashsdk.RevenuePoint{
			{Period: "2026-07", Revenue: 4000},
			{Period: "2026-08", Revenue: 4500},
		},
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/v1/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[dashsdk.DashboardStats](t, resp)
	require.Equal(t, 1, stats.ActiveClients)
	require.InDelta(t, 4500, stats.MonthlyRevenue, 0.01)
	require.Equal(t, "Premium", stats.RevenueByPlan[0].Plan)

	// Only admins see the rollup.
	coach := seedCoach(t, env.Store, domain.RoleCoach, domain.CoachActive)
	resp = env.do(t, http.MethodGet, "/v1/stats", signToken(t, coach.ID, coach.Role), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPreferencesRoundTrip(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	coach := seedCoach(t, env.Store, domain.RoleCoach, domain.CoachActive)
	token := signToken(t, coach.ID, coach.Role)

	// Defaults before anything is saved.
	resp := env.do(t, http.MethodGet, "/v1/preferences", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defaults := decode[dashsdk.Preference](t, resp)
	require.Equal(t, domain.ThemeSystem, defaults.Theme)

	resp = env.do(t, http.MethodPut, "/v1/preferences", token,
		dashsdk.Preference{Theme: "dark", SidebarOpen: true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/v1/preferences", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decode[dashsdk.Preference](t, resp)
	require.Equal(t, "dark", saved.Theme)
	require.True(t, saved.SidebarOpen)

	resp = env.do(t, http.MethodPut, "/v1/preferences", token,
		dashsdk.Preference{Theme: "neon"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEventStream(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	coach := seedCoach(t, env.Store, domain.RoleCoach, domain.CoachActive)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, env.Server.URL+"/v1/events", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+signToken(t, coach.ID, coach.Role))

	resp, err := env.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// Give the subscriber a beat to register before publishing.
	time.Sleep(100 * time.Millisecond)
	env.Hub.Publish(events.Event{Kind: events.KindPreferences, Payload: map[string]string{"coach_id": coach.ID}})

	scanner := bufio.NewScanner(resp.Body)
	var eventLine, dataLine string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			eventLine = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			dataLine = strings.TrimPrefix(line, "data: ")
		}
		if eventLine != "" && dataLine != "" {
			break
		}
	}
	require.Equal(t, events.KindPreferences, eventLine)
	require.Contains(t, dataLine, coach.ID)
}

func TestProbes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	health := decode[dashsdk.HealthResponse](t, resp)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)

	resp = env.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ready := decode[dashsdk.ReadyResponse](t, resp)
	require.Equal(t, "ok", ready.Database)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
