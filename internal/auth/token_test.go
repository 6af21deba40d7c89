package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/hosung77/spring-plus/internal/domain"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	token, err := codec.Issue(42, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	userID, role, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if userID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", userID)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("role mismatch: got %s want ADMIN", role)
	}
}

func TestVerifyExpired(t *testing.T) {
	codec := NewCodec("test-secret", -time.Minute)

	token, err := codec.Issue(1, domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, _, err = codec.Verify(token)
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerifyTamperedSignature(t *testing.T) {
	issuer := NewCodec("one-secret", time.Hour)
	verifier := NewCodec("another-secret", time.Hour)

	token, err := issuer.Issue(1, domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, _, err = verifier.Verify(token)
	if !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		if _, _, err := codec.Verify(tokenString); !errors.Is(err, ErrMalformed) {
			t.Fatalf("token %q: expected ErrMalformed, got %v", tokenString, err)
		}
	}
}

func TestVerifyRejectsForgedRole(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	token, err := codec.Issue(1, domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// flipping any byte of the payload must invalidate the signature
	raw := []byte(token)
	raw[len(raw)/2] ^= 0x01
	if _, _, err := codec.Verify(string(raw)); err == nil {
		t.Fatal("tampered token accepted")
	}
}
