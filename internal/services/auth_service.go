package services

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/hosung77/spring-plus/internal/auth"
	"github.com/hosung77/spring-plus/internal/domain"
	"github.com/hosung77/spring-plus/internal/repositories"
	"github.com/hosung77/spring-plus/internal/utils"
)

// AuthService handles signup/signin and token issuance.
type AuthService struct {
	Users     repositories.UserRepository
	Codec     *auth.Codec
	RequestID string
}

type SignupInput struct {
	Email    string
	Password string
	Nickname string
	Role     string
}

// TokenResult is returned by both signup and signin.
type TokenResult struct {
	Token string             `json:"bearerToken"`
	User  domain.UserSummary `json:"user"`
}

func (s AuthService) Signup(ctx context.Context, in SignupInput) (TokenResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return TokenResult{}, domain.ValidationError{Field: "email", Msg: "이메일은 필수입니다."}
	}
	if err := checkPasswordPolicy(in.Password); err != nil {
		return TokenResult{}, err
	}
	role, err := domain.ParseUserRole(in.Role)
	if err != nil {
		return TokenResult{}, domain.ValidationError{Field: "userRole", Msg: "유효하지 않은 권한입니다.", Err: err}
	}

	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return TokenResult{}, err
	}
	if exists {
		return TokenResult{}, domain.ConflictError{Resource: "user", Msg: "이미 존재하는 이메일입니다."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenResult{}, domain.InternalError{Msg: "비밀번호 암호화에 실패했습니다.", Err: err}
	}

	id, err := s.Users.Create(ctx, domain.User{
		Email:    email,
		Password: string(hash),
		Nickname: strings.TrimSpace(in.Nickname),
		Role:     role,
	})
	if err != nil {
		return TokenResult{}, err
	}

	token, err := s.Codec.Issue(id, role)
	if err != nil {
		return TokenResult{}, domain.InternalError{Msg: "토큰 발급에 실패했습니다.", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "signup", "user_id="+itoa(id))
	return TokenResult{Token: token, User: domain.UserSummary{ID: id, Email: email}}, nil
}

func (s AuthService) Signin(ctx context.Context, email, password string) (TokenResult, error) {
	user, err := s.Users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if domain.IsNotFound(err) {
			return TokenResult{}, domain.AuthError{Msg: "가입되지 않은 유저입니다.", Err: err}
		}
		return TokenResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return TokenResult{}, domain.AuthError{Msg: "잘못된 비밀번호입니다.", Err: err}
	}

	token, err := s.Codec.Issue(user.ID, user.Role)
	if err != nil {
		return TokenResult{}, domain.InternalError{Msg: "토큰 발급에 실패했습니다.", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "signin", "user_id="+itoa(user.ID))
	return TokenResult{Token: token, User: domain.UserSummary{ID: user.ID, Email: user.Email}}, nil
}

// checkPasswordPolicy requires at least 8 chars including a digit and an
// uppercase letter.
func checkPasswordPolicy(password string) error {
	if len(password) < 8 || !containsFunc(password, unicode.IsDigit) || !containsFunc(password, unicode.IsUpper) {
		return domain.ValidationError{
			Field: "password",
			Msg:   "새 비밀번호는 8자 이상이어야 하고, 숫자와 대문자를 포함해야 합니다.",
		}
	}
	return nil
}

func containsFunc(s string, f func(rune) bool) bool {
	return strings.IndexFunc(s, f) >= 0
}
