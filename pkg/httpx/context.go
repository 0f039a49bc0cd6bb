package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID carries the authenticated identity id.
	CtxKeyUserID ctxKey = "user_id"

	// CtxKeyIdentity carries the full resolved identity record, set by the
	// authentication middleware in internal/campus/http.
	CtxKeyIdentity ctxKey = "identity"
)

// UserIDFromContext returns the authenticated identity id, or "" if the
// request is unauthenticated.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
