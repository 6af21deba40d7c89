package services

import (
	"context"
	"strings"
	"time"

	"github.com/hosung77/spring-plus/internal/auth"
	"github.com/hosung77/spring-plus/internal/domain"
	"github.com/hosung77/spring-plus/internal/repositories"
	"github.com/hosung77/spring-plus/internal/utils"
)

// CommentService handles comments attached to a todo.
type CommentService struct {
	Comments  repositories.CommentRepository
	Todos     repositories.TodoRepository
	RequestID string
}

func (s CommentService) Save(ctx context.Context, principal auth.Principal, todoID int64, contents string) (domain.CommentProjection, error) {
	contents = strings.TrimSpace(contents)
	if contents == "" {
		return domain.CommentProjection{}, domain.ValidationError{Field: "contents", Msg: "댓글 내용은 필수입니다."}
	}

	if _, err := s.Todos.GetByID(ctx, todoID); err != nil {
		return domain.CommentProjection{}, err
	}

	id, err := s.Comments.Create(ctx, domain.Comment{
		Contents: contents,
		UserID:   principal.ID,
		TodoID:   todoID,
	})
	if err != nil {
		return domain.CommentProjection{}, err
	}

	utils.LogEvent(s.RequestID, "comment", "save", "comment_id="+itoa(id))
	return domain.CommentProjection{
		ID:        id,
		Contents:  contents,
		User:      principal.Summary(),
		CreatedAt: time.Now(),
	}, nil
}

func (s CommentService) List(ctx context.Context, todoID int64) ([]domain.CommentProjection, error) {
	if _, err := s.Todos.GetByID(ctx, todoID); err != nil {
		return nil, err
	}
	return s.Comments.ListByTodo(ctx, todoID)
}
