package services

import (
	"context"

	"github.com/hosung77/spring-plus/internal/auth"
	"github.com/hosung77/spring-plus/internal/domain"
	"github.com/hosung77/spring-plus/internal/repositories"
	"github.com/hosung77/spring-plus/internal/utils"
)

// ManagerService handles manager assignments on a todo. Only the todo owner
// may assign or remove managers, and never themselves.
type ManagerService struct {
	Managers  repositories.ManagerRepository
	Todos     repositories.TodoRepository
	Users     repositories.UserRepository
	RequestID string
}

func (s ManagerService) Assign(ctx context.Context, principal auth.Principal, todoID, managerUserID int64) (domain.ManagerProjection, error) {
	todo, err := s.Todos.GetByID(ctx, todoID)
	if err != nil {
		return domain.ManagerProjection{}, err
	}
	if todo.UserID != principal.ID {
		return domain.ManagerProjection{}, domain.ValidationError{Msg: "담당자를 등록하려는 유저가 일정을 만든 유저가 아닙니다."}
	}

	managerUser, err := s.Users.GetByID(ctx, managerUserID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.ManagerProjection{}, domain.NotFoundError{Resource: "manager user", Err: err}
		}
		return domain.ManagerProjection{}, err
	}
	if managerUser.ID == principal.ID {
		return domain.ManagerProjection{}, domain.ValidationError{Msg: "일정 작성자는 본인을 담당자로 등록할 수 없습니다."}
	}

	id, err := s.Managers.Create(ctx, domain.Manager{UserID: managerUser.ID, TodoID: todoID})
	if err != nil {
		return domain.ManagerProjection{}, err
	}

	utils.LogEvent(s.RequestID, "manager", "assign", "manager_id="+itoa(id))
	return domain.ManagerProjection{
		ID:   id,
		User: domain.UserSummary{ID: managerUser.ID, Email: managerUser.Email},
	}, nil
}

func (s ManagerService) List(ctx context.Context, todoID int64) ([]domain.ManagerProjection, error) {
	if _, err := s.Todos.GetByID(ctx, todoID); err != nil {
		return nil, err
	}
	return s.Managers.ListByTodo(ctx, todoID)
}

func (s ManagerService) Remove(ctx context.Context, principal auth.Principal, todoID, managerID int64) error {
	todo, err := s.Todos.GetByID(ctx, todoID)
	if err != nil {
		return err
	}
	if todo.UserID != principal.ID {
		return domain.ValidationError{Msg: "담당자를 삭제하려는 유저가 일정을 만든 유저가 아닙니다."}
	}

	manager, err := s.Managers.GetByID(ctx, managerID)
	if err != nil {
		return err
	}
	if manager.TodoID != todoID {
		return domain.ValidationError{Msg: "해당 일정에 등록된 담당자가 아닙니다."}
	}

	if err := s.Managers.Delete(ctx, managerID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "manager", "remove", "manager_id="+itoa(managerID))
	return nil
}
