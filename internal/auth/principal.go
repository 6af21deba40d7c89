package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/hosung77/spring-plus/internal/domain"
)

const principalKey = "authPrincipal"

// Principal is the resolved identity for the current request. It lives only
// in the request's gin context and is rebuilt on every request.
type Principal struct {
	ID       int64
	Email    string
	Nickname string
	Role     domain.UserRole
}

func (p Principal) Summary() domain.UserSummary {
	return domain.UserSummary{ID: p.ID, Email: p.Email}
}

// SetPrincipal attaches the identity to the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom extracts the identity set by the authentication gate.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
