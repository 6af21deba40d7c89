package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hosung77/spring-plus/internal/auth"
	"github.com/hosung77/spring-plus/internal/domain"
	"github.com/hosung77/spring-plus/internal/repositories"
)

func todoRow(id, ownerID int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "title", "contents", "weather", "user_id", "created_at", "modified_at"}).
		AddRow(id, "title", "contents", "Sunny", ownerID, now, now)
}

func TestAssignByNonOwnerRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM todos WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(todoRow(5, 2))

	svc := ManagerService{
		Managers: repositories.ManagerRepository{DB: db},
		Todos:    repositories.TodoRepository{DB: db},
		Users:    repositories.UserRepository{DB: db},
	}
	principal := auth.Principal{ID: 1, Role: domain.RoleUser}

	_, err = svc.Assign(context.Background(), principal, 5, 3)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAssignSelfRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM todos WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(todoRow(5, 1))
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "nickname", "user_role", "created_at", "modified_at"}).
			AddRow(1, "owner@test.local", "x", "owner", "USER", now, now))

	svc := ManagerService{
		Managers: repositories.ManagerRepository{DB: db},
		Todos:    repositories.TodoRepository{DB: db},
		Users:    repositories.UserRepository{DB: db},
	}
	principal := auth.Principal{ID: 1, Role: domain.RoleUser}

	_, err = svc.Assign(context.Background(), principal, 5, 1)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error on self-assignment, got %v", err)
	}
}

func TestAssignUnknownManagerUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM todos WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(todoRow(5, 1))
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "nickname", "user_role", "created_at", "modified_at"}))

	svc := ManagerService{
		Managers: repositories.ManagerRepository{DB: db},
		Todos:    repositories.TodoRepository{DB: db},
		Users:    repositories.UserRepository{DB: db},
	}
	principal := auth.Principal{ID: 1, Role: domain.RoleUser}

	_, err = svc.Assign(context.Background(), principal, 5, 42)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRemoveManagerFromOtherTodoRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM todos WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(todoRow(5, 1))
	mock.ExpectQuery("FROM managers WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "todo_id", "created_at"}).
			AddRow(9, 3, 6, time.Now()))

	svc := ManagerService{
		Managers: repositories.ManagerRepository{DB: db},
		Todos:    repositories.TodoRepository{DB: db},
		Users:    repositories.UserRepository{DB: db},
	}
	principal := auth.Principal{ID: 1, Role: domain.RoleUser}

	err = svc.Remove(context.Background(), principal, 5, 9)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
