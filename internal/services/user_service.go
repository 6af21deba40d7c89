package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/hosung77/spring-plus/internal/domain"
	"github.com/hosung77/spring-plus/internal/repositories"
	"github.com/hosung77/spring-plus/internal/utils"
)

// UserService handles account reads and password changes.
type UserService struct {
	Users     repositories.UserRepository
	RequestID string
}

func (s UserService) Get(ctx context.Context, id int64) (domain.UserSummary, error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return domain.UserSummary{}, err
	}
	return domain.UserSummary{ID: user.ID, Email: user.Email}, nil
}

// ChangePassword verifies the old password before storing the new hash.
func (s UserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if err := checkPasswordPolicy(newPassword); err != nil {
		return err
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return domain.ValidationError{Field: "oldPassword", Msg: "잘못된 비밀번호입니다.", Err: err}
	}
	if oldPassword == newPassword {
		return domain.ValidationError{Field: "newPassword", Msg: "새 비밀번호는 기존 비밀번호와 같을 수 없습니다."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Msg: "비밀번호 암호화에 실패했습니다.", Err: err}
	}

	if err := s.Users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "user", "change_password", "user_id="+itoa(userID))
	return nil
}

// ChangeRole updates an account's role. Admin-only at the route layer.
func (s UserService) ChangeRole(ctx context.Context, userID int64, roleInput string) error {
	role, err := domain.ParseUserRole(roleInput)
	if err != nil {
		return domain.ValidationError{Field: "role", Msg: "유효하지 않은 권한입니다.", Err: err}
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := s.Users.UpdateRole(ctx, userID, role); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "user", "change_role", "user_id="+itoa(userID)+" role="+string(role))
	return nil
}
