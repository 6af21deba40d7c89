package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hosung77/spring-plus/internal/auth"
	"github.com/hosung77/spring-plus/internal/domain"
)

// PolicyRule maps a path prefix to the roles allowed through it. Public rules
// skip the role check entirely; a non-public rule with no roles admits any
// authenticated user.
type PolicyRule struct {
	Prefix string
	Public bool
	Roles  []domain.UserRole
}

func (r PolicyRule) matches(path string) bool {
	if r.Prefix == "/" {
		return true
	}
	trimmed := strings.TrimSuffix(r.Prefix, "/")
	return path == trimmed || strings.HasPrefix(path, trimmed+"/")
}

// DefaultPolicy is the process-wide route policy, evaluated top to bottom,
// first match wins. Immutable after startup.
func DefaultPolicy() []PolicyRule {
	return []PolicyRule{
		{Prefix: "/health", Public: true},
		{Prefix: "/auth/", Public: true},
		{Prefix: "/admin/", Roles: []domain.UserRole{domain.RoleAdmin}},
		{Prefix: "/todos/", Roles: []domain.UserRole{domain.RoleAdmin, domain.RoleUser}},
		{Prefix: "/users/", Roles: []domain.UserRole{domain.RoleAdmin, domain.RoleUser}},
		{Prefix: "/"},
	}
}

// Authorize enforces the route policy. It runs strictly after Authenticate:
// it only reads the principal the gate attached. Anonymous requests to gated
// routes get 401 (log in first); authenticated requests with a wrong role get
// 403, so clients can tell the two apart.
func Authorize(rules []PolicyRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		rule, ok := matchRule(rules, c.Request.URL.Path)
		if !ok || rule.Public {
			c.Next()
			return
		}

		principal, ok := auth.PrincipalFrom(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		if len(rule.Roles) == 0 {
			c.Next()
			return
		}
		for _, role := range rule.Roles {
			if role == principal.Role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": MsgAccessDenied})
	}
}

func matchRule(rules []PolicyRule, path string) (PolicyRule, bool) {
	for _, r := range rules {
		if r.matches(path) {
			return r, true
		}
	}
	return PolicyRule{}, false
}
