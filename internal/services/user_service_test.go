package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hosung77/spring-plus/internal/domain"
	"github.com/hosung77/spring-plus/internal/repositories"
)

func TestChangePasswordWrongOldPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(userRow(t, 1, "u@test.local", "Password1", domain.RoleUser))

	svc := UserService{Users: repositories.UserRepository{DB: db}}
	err = svc.ChangePassword(context.Background(), 1, "NotThePassword1", "NewPassword1")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestChangePasswordSameAsOldRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(userRow(t, 1, "u@test.local", "Password1", domain.RoleUser))

	svc := UserService{Users: repositories.UserRepository{DB: db}}
	err = svc.ChangePassword(context.Background(), 1, "Password1", "Password1")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestChangePasswordStoresNewHash(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(userRow(t, 1, "u@test.local", "Password1", domain.RoleUser))
	mock.ExpectExec("UPDATE users SET password").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := UserService{Users: repositories.UserRepository{DB: db}}
	if err := svc.ChangePassword(context.Background(), 1, "Password1", "NewPassword1"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestChangeRoleRejectsUnknownRole(t *testing.T) {
	svc := UserService{}
	err := svc.ChangeRole(context.Background(), 1, "SUPERVISOR")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestChangeRoleUpdatesExistingUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(userRow(t, 3, "u@test.local", "Password1", domain.RoleUser))
	mock.ExpectExec("UPDATE users SET user_role").
		WithArgs("ADMIN", sqlmock.AnyArg(), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := UserService{Users: repositories.UserRepository{DB: db}}
	if err := svc.ChangeRole(context.Background(), 3, "admin"); err != nil {
		t.Fatalf("change role failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
