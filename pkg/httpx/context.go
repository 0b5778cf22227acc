package httpx

import "context"

type ctxKey string

const (
	CtxKeyCoachID ctxKey = "coach_id"
	CtxKeyRole    ctxKey = "role"
	CtxKeyEmail   ctxKey = "email"
)

// CoachIDFromCtx returns the authenticated coach id, or "" if the request
// was not authenticated.
func CoachIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyCoachID).(string); ok {
		return v
	}
	return ""
}

// RoleFromCtx returns the authenticated role, or "" if unauthenticated.
func RoleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
