package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hosung77/spring-plus/internal/auth"
	"github.com/hosung77/spring-plus/internal/domain"
)

// test accounts keyed by token subject
var testAccounts = map[int64]auth.Principal{
	1: {ID: 1, Email: "user@test.local", Nickname: "user-one", Role: domain.RoleUser},
	2: {ID: 2, Email: "admin@test.local", Nickname: "admin-one", Role: domain.RoleAdmin},
}

func testLookup(_ context.Context, userID int64) (auth.Principal, error) {
	p, ok := testAccounts[userID]
	if !ok {
		return auth.Principal{}, domain.NotFoundError{Resource: "user"}
	}
	return p, nil
}

func newTestRouter(codec *auth.Codec, invoked *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(codec, testLookup), Authorize(DefaultPolicy()))

	handler := func(c *gin.Context) {
		*invoked = true
		role := ""
		if p, ok := auth.PrincipalFrom(c); ok {
			role = string(p.Role)
		}
		c.JSON(http.StatusOK, gin.H{"role": role})
	}
	r.GET("/todos/:id", handler)
	r.GET("/admin/x", handler)
	r.POST("/auth/signin", handler)
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bodyMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	msg, _ := body["message"].(string)
	return msg
}

func TestMissingCredentialOnGatedRoute(t *testing.T) {
	invoked := false
	r := newTestRouter(auth.NewCodec("s", time.Hour), &invoked)

	w := doRequest(r, http.MethodGet, "/todos/1", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if bodyMessage(t, w) != MsgAuthRequired {
		t.Fatalf("unexpected message %q", bodyMessage(t, w))
	}
	if invoked {
		t.Fatal("handler must not run for unauthenticated request")
	}
}

func TestInvalidCredentialsAllLookAlike(t *testing.T) {
	codec := auth.NewCodec("s", time.Hour)
	expiredCodec := auth.NewCodec("s", -time.Minute)
	otherCodec := auth.NewCodec("other", time.Hour)

	expired, err := expiredCodec.Issue(1, domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	tampered, err := otherCodec.Issue(1, domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	for name, token := range map[string]string{
		"expired":   expired,
		"tampered":  tampered,
		"malformed": "not-a-token",
	} {
		invoked := false
		r := newTestRouter(codec, &invoked)
		w := doRequest(r, http.MethodGet, "/todos/1", token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, w.Code)
		}
		if bodyMessage(t, w) != MsgAuthRequired {
			t.Fatalf("%s: message %q leaks the failure kind", name, bodyMessage(t, w))
		}
		if invoked {
			t.Fatalf("%s: handler ran on rejected credential", name)
		}
	}
}

func TestWrongRoleIsForbiddenNotUnauthorized(t *testing.T) {
	codec := auth.NewCodec("s", time.Hour)
	userToken, err := codec.Issue(1, domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	invoked := false
	r := newTestRouter(codec, &invoked)

	w := doRequest(r, http.MethodGet, "/admin/x", userToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if bodyMessage(t, w) != MsgAccessDenied {
		t.Fatalf("unexpected message %q", bodyMessage(t, w))
	}
	if invoked {
		t.Fatal("handler must not run for forbidden request")
	}
}

func TestUserTokenReachesUserRoute(t *testing.T) {
	codec := auth.NewCodec("s", time.Hour)
	userToken, err := codec.Issue(1, domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	invoked := false
	r := newTestRouter(codec, &invoked)

	w := doRequest(r, http.MethodGet, "/todos/1", userToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	if !invoked {
		t.Fatal("handler did not run")
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	if body["role"] != string(domain.RoleUser) {
		t.Fatalf("principal role not propagated, got %v", body["role"])
	}
}

func TestAdminTokenPassesAdminRoute(t *testing.T) {
	codec := auth.NewCodec("s", time.Hour)
	adminToken, err := codec.Issue(2, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	invoked := false
	r := newTestRouter(codec, &invoked)

	w := doRequest(r, http.MethodGet, "/admin/x", adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !invoked {
		t.Fatal("handler did not run")
	}
}

func TestPublicPrefixSkipsRoleCheck(t *testing.T) {
	invoked := false
	r := newTestRouter(auth.NewCodec("s", time.Hour), &invoked)

	w := doRequest(r, http.MethodPost, "/auth/signin", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on public route, got %d", w.Code)
	}
	if !invoked {
		t.Fatal("public handler did not run")
	}
}

func TestUnknownAccountIsUnauthorized(t *testing.T) {
	codec := auth.NewCodec("s", time.Hour)
	token, err := codec.Issue(99, domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	invoked := false
	r := newTestRouter(codec, &invoked)

	w := doRequest(r, http.MethodGet, "/todos/1", token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown subject, got %d", w.Code)
	}
	if invoked {
		t.Fatal("handler ran for unknown subject")
	}
}

func TestPolicyRuleMatching(t *testing.T) {
	rules := DefaultPolicy()

	cases := []struct {
		path   string
		prefix string
	}{
		{"/auth/signin", "/auth/"},
		{"/admin/reports/todos", "/admin/"},
		{"/todos/1/comments", "/todos/"},
		{"/users/3", "/users/"},
		{"/somewhere/else", "/"},
	}
	for _, tc := range cases {
		rule, ok := matchRule(rules, tc.path)
		if !ok {
			t.Fatalf("%s: no rule matched", tc.path)
		}
		if rule.Prefix != tc.prefix {
			t.Fatalf("%s: matched %q, want %q", tc.path, rule.Prefix, tc.prefix)
		}
	}
}
