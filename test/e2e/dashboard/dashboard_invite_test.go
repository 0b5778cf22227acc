package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peakform/coachdesk/pkg/dashsdk"
)

// TestInvitationLifecycle runs the full onboarding flow against a live
// container: mint, redeem, approve, then verify the coach appears on the
// team roster.
func TestInvitationLifecycle(t *testing.T) {
	baseURL, cleanup := setupDashboardContainer(t)
	defer cleanup()

	admin := newAuthedClient(t, baseURL, "admin-e2e-1", "admin")

	minted, err := admin.MintInvite(t.Context(), dashsdk.InviteMintRequest{
		Email: "newcoach@peakform.test",
		Role:  "coach",
	})
	require.NoError(t, err)
	require.NotEmpty(t, minted.InviteToken)
	require.NotEmpty(t, minted.InvitationID)

	// Redemption needs no token; the signup email must match, case
	// insensitively.
	public := dashsdk.NewSDKClient(baseURL, nil)
	redeemed, err := public.RedeemInvite(t.Context(), dashsdk.InviteRedeemRequest{
		Token: minted.InviteToken,
		Name:  "New Coach",
		Email: "NewCoach@peakform.test",
	})
	require.NoError(t, err)
	require.Equal(t, "coach", redeemed.Role)
	require.Equal(t, "pending", redeemed.Status)

	// Second redemption of the same token is rejected.
	_, err = public.RedeemInvite(t.Context(), dashsdk.InviteRedeemRequest{
		Token: minted.InviteToken,
		Name:  "Copycat",
		Email: "newcoach@peakform.test",
	})
	require.Error(t, err)

	require.NoError(t, admin.ApproveCoach(t.Context(), redeemed.CoachID))

	approved, err := admin.GetCoach(t.Context(), redeemed.CoachID)
	require.NoError(t, err)
	require.Equal(t, "active", approved.Status)
	require.Equal(t, "newcoach@peakform.test", approved.Email)
}

// TestInvitationRevocation verifies a revoked invitation can never be
// redeemed.
func TestInvitationRevocation(t *testing.T) {
	baseURL, cleanup := setupDashboardContainer(t)
	defer cleanup()

	admin := newAuthedClient(t, baseURL, "admin-e2e-2", "admin")

	minted, err := admin.MintInvite(t.Context(), dashsdk.InviteMintRequest{
		Email: "revoked@peakform.test",
		Role:  "coach",
	})
	require.NoError(t, err)

	require.NoError(t, admin.RevokeInvite(t.Context(), minted.InvitationID))

	public := dashsdk.NewSDKClient(baseURL, nil)
	_, err = public.RedeemInvite(t.Context(), dashsdk.InviteRedeemRequest{
		Token: minted.InviteToken,
		Name:  "Late",
		Email: "revoked@peakform.test",
	})
	require.Error(t, err)
}
