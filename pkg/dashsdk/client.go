package dashsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TokenSource supplies the bearer token for authenticated requests. The
// dashboard never mints tokens itself; they come from the hosted identity
// provider, and the source is asked on every request so callers can rotate
// tokens without rebuilding the client.
type TokenSource func(ctx context.Context) (string, error)

// StaticToken is a TokenSource that always returns the same token.
func StaticToken(token string) TokenSource {
	return func(context.Context) (string, error) { return token, nil }
}

// SDKClient is a typed client for the dashboard service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      TokenSource
}

// NewSDKClient creates a dashboard client. token may be nil for callers that
// only hit unauthenticated endpoints (probes, invitation redemption).
func NewSDKClient(baseURL string, token TokenSource) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Token: token,
	}
}

// ClientQuery narrows and orders the client roster listing.
type ClientQuery struct {
	Search string
	Status string
	Sort   string
}

// CoachQuery narrows and orders the team roster listing.
type CoachQuery struct {
	Search string
	Status string
	Sort   string
}

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	body any,
	authenticated bool,
) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authenticated {
		if c.Token == nil {
			return nil, fmt.Errorf("no token source configured for authenticated request")
		}
		token, err := c.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to obtain token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeJSON decodes a response into target, returning a typed APIError for
// non-2xx statuses.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}
	return nil
}

// GetLiveness checks the liveness probe.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, false)
	if err != nil {
		return nil, err
	}
	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks the readiness probe.
func (c *SDKClient) GetReadiness(ctx context.Context) (*ReadyResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, false)
	if err != nil {
		return nil, err
	}
	var out ReadyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClients returns the caller's client roster.
func (c *SDKClient) ListClients(ctx context.Context, q ClientQuery) ([]Client, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	path := "/v1/clients"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}
	var out []Client
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetClient fetches a single roster client.
func (c *SDKClient) GetClient(ctx context.Context, id int64) (*Client, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/clients/"+strconv.FormatInt(id, 10), nil, true)
	if err != nil {
		return nil, err
	}
	var out Client
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClientStatus moves a client between lifecycle statuses.
func (c *SDKClient) UpdateClientStatus(ctx context.Context, id int64, status string) (*Client, error) {
	resp, err := c.doRequest(ctx, http.MethodPut,
		"/v1/clients/"+strconv.FormatInt(id, 10)+"/status",
		ClientStatusRequest{Status: status}, true)
	if err != nil {
		return nil, err
	}
	var out Client
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCheckIns returns a client's check-in history, newest first.
func (c *SDKClient) ListCheckIns(ctx context.Context, clientID int64) ([]CheckIn, error) {
	resp, err := c.doRequest(ctx, http.MethodGet,
		"/v1/clients/"+strconv.FormatInt(clientID, 10)+"/checkins", nil, true)
	if err != nil {
		return nil, err
	}
	var out []CheckIn
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// RecordCheckIn stores a new check-in for a roster client.
func (c *SDKClient) RecordCheckIn(ctx context.Context, clientID int64, req CheckInRequest) (*CheckIn, error) {
	resp, err := c.doRequest(ctx, http.MethodPost,
		"/v1/clients/"+strconv.FormatInt(clientID, 10)+"/checkins", req, true)
	if err != nil {
		return nil, err
	}
	var out CheckIn
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewCheckIn marks a check-in as reviewed.
func (c *SDKClient) ReviewCheckIn(ctx context.Context, clientID int64, checkInID string) error {
	resp, err := c.doRequest(ctx, http.MethodPost,
		"/v1/clients/"+strconv.FormatInt(clientID, 10)+"/checkins/"+checkInID+"/review", nil, true)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ListCoaches returns the team roster with load figures.
func (c *SDKClient) ListCoaches(ctx context.Context, q CoachQuery) ([]Coach, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	path := "/v1/coaches"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}
	var out []Coach
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCoachClients returns one coach's client roster. Admins and head
// coaches may name any coach; a coach may only name themselves.
func (c *SDKClient) ListCoachClients(ctx context.Context, coachID string, q ClientQuery) ([]Client, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	path := "/v1/coaches/" + coachID + "/clients"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}
	var out []Client
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCoachAdherence returns the stored adherence scores for one coach's
// roster, keyed by client id.
func (c *SDKClient) GetCoachAdherence(ctx context.Context, coachID string) (map[int64]Adherence, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/coaches/"+coachID+"/adherence", nil, true)
	if err != nil {
		return nil, err
	}
	out := map[int64]Adherence{}
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCoach fetches a single coach with load figures.
func (c *SDKClient) GetCoach(ctx context.Context, id string) (*Coach, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/coaches/"+id, nil, true)
	if err != nil {
		return nil, err
	}
	var out Coach
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTeamStats returns the organisation-wide rollups.
func (c *SDKClient) GetTeamStats(ctx context.Context) (*TeamStats, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/team/stats", nil, true)
	if err != nil {
		return nil, err
	}
	var out TeamStats
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveCoach activates a pending coach account.
func (c *SDKClient) ApproveCoach(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/coaches/"+id+"/approve", nil, true)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// RejectCoach suspends a pending coach account.
func (c *SDKClient) RejectCoach(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/coaches/"+id+"/reject", nil, true)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// MintInvite creates a coach invitation. The raw token in the response is
// shown exactly once.
func (c *SDKClient) MintInvite(ctx context.Context, req InviteMintRequest) (*InviteMintResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invitations", req, true)
	if err != nil {
		return nil, err
	}
	var out InviteMintResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RedeemInvite exchanges an invitation token for a new coach account. This
// is the one unauthenticated mutation.
func (c *SDKClient) RedeemInvite(ctx context.Context, req InviteRedeemRequest) (*InviteRedeemResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invitations/redeem", req, false)
	if err != nil {
		return nil, err
	}
	var out InviteRedeemResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeInvite expires a pending invitation.
func (c *SDKClient) RevokeInvite(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invitations/"+id+"/revoke", nil, true)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// GetIntelligenceFeed returns the unresolved advisories, newest first.
func (c *SDKClient) GetIntelligenceFeed(ctx context.Context) ([]IntelligenceItem, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/intelligence", nil, true)
	if err != nil {
		return nil, err
	}
	var out []IntelligenceItem
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveIntelligence marks an advisory handled. The response reports
// whether this call performed the transition.
func (c *SDKClient) ResolveIntelligence(ctx context.Context, id string) (*ResolveResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/intelligence/"+id+"/resolve", nil, true)
	if err != nil {
		return nil, err
	}
	var out ResolveResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetChurnReport returns the churn risk rows, high risk first.
func (c *SDKClient) GetChurnReport(ctx context.Context) ([]ChurnRisk, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/intelligence/churn", nil, true)
	if err != nil {
		return nil, err
	}
	var out []ChurnRisk
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDashboardStats returns the admin dashboard rollup.
func (c *SDKClient) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/stats", nil, true)
	if err != nil {
		return nil, err
	}
	var out DashboardStats
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportRevenue atomically replaces the stored revenue series.
func (c *SDKClient) ImportRevenue(ctx context.Context, req RevenueImportRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/revenue/import", req, true)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// GetPreferences returns the caller's dashboard preferences.
func (c *SDKClient) GetPreferences(ctx context.Context) (*Preference, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/preferences", nil, true)
	if err != nil {
		return nil, err
	}
	var out Preference
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SavePreferences persists the caller's dashboard preferences.
func (c *SDKClient) SavePreferences(ctx context.Context, p Preference) (*Preference, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/preferences", p, true)
	if err != nil {
		return nil, err
	}
	var out Preference
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
