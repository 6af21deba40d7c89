package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hosung77/spring-plus/internal/auth"
	"github.com/hosung77/spring-plus/internal/utils"
)

// Client-facing messages. Unauthorized vs forbidden must stay distinguishable.
const (
	MsgAuthRequired = "인증이 필요합니다."
	MsgAccessDenied = "접근 권한이 없습니다."
)

// AccountLookup resolves the stored account behind a verified token subject.
type AccountLookup func(ctx context.Context, userID int64) (auth.Principal, error)

// Authenticate is the per-request authentication gate. A missing credential
// passes through anonymously (the policy decides whether that is enough);
// a present-but-invalid credential always short-circuits with 401, whatever
// the validation step that failed.
func Authenticate(codec *auth.Codec, lookup AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.Next()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			abortUnauthorized(c)
			return
		}

		userID, _, err := codec.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			utils.LogEvent(GetRequestID(c), "auth", "verify_failed", err.Error())
			abortUnauthorized(c)
			return
		}

		// The stored account is authoritative for email/nickname and for the
		// current role, even if the token carries a stale one.
		principal, err := lookup(c.Request.Context(), userID)
		if err != nil {
			utils.LogEvent(GetRequestID(c), "auth", "account_lookup_failed", err.Error())
			abortUnauthorized(c)
			return
		}

		auth.SetPrincipal(c, principal)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MsgAuthRequired})
}
