package services

import (
	"context"
	"strings"
	"time"

	"github.com/hosung77/spring-plus/internal/auth"
	"github.com/hosung77/spring-plus/internal/client"
	"github.com/hosung77/spring-plus/internal/domain"
	"github.com/hosung77/spring-plus/internal/repositories"
	"github.com/hosung77/spring-plus/internal/utils"
)

// TodoService orchestrates todo creation and the search engine.
type TodoService struct {
	Todos     repositories.TodoRepository
	Search    repositories.TodoSearchRepository
	Weather   *client.WeatherClient
	RequestID string
}

// Create stores a new todo owned by the caller. The weather field comes from
// the external feed at creation time.
func (s TodoService) Create(ctx context.Context, principal auth.Principal, title, contents string) (domain.TodoProjection, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.TodoProjection{}, domain.ValidationError{Field: "title", Msg: "제목은 필수입니다."}
	}

	weather, err := s.Weather.TodayWeather(ctx)
	if err != nil {
		return domain.TodoProjection{}, domain.InternalError{Msg: "날씨 데이터를 가져오는데 실패했습니다.", Err: err}
	}

	id, err := s.Todos.Create(ctx, domain.Todo{
		Title:    title,
		Contents: contents,
		Weather:  weather,
		UserID:   principal.ID,
	})
	if err != nil {
		return domain.TodoProjection{}, err
	}

	utils.LogEvent(s.RequestID, "todo", "create", "todo_id="+itoa(id))
	now := time.Now()
	return domain.TodoProjection{
		ID:         id,
		Title:      title,
		Contents:   contents,
		Weather:    weather,
		User:       principal.Summary(),
		CreatedAt:  now,
		ModifiedAt: now,
	}, nil
}

func (s TodoService) SearchByCondition(ctx context.Context, criteria repositories.TodoSearchCriteria, page repositories.PageRequest) (domain.Page[domain.TodoProjection], error) {
	return s.Search.SearchByCondition(ctx, criteria, page)
}

func (s TodoService) SearchByKeyword(ctx context.Context, criteria repositories.TodoSearchCriteria, page repositories.PageRequest) (domain.Page[domain.TodoSearchResult], error) {
	return s.Search.SearchByKeyword(ctx, criteria, page)
}

// GetByID returns the projection for one todo. A missing row is NotFound at
// this layer; the repository reports it as an empty result.
func (s TodoService) GetByID(ctx context.Context, todoID int64) (domain.TodoProjection, error) {
	p, err := s.Search.SearchByID(ctx, todoID)
	if err != nil {
		return domain.TodoProjection{}, err
	}
	if p == nil {
		return domain.TodoProjection{}, domain.NotFoundError{Resource: "todo"}
	}
	return *p, nil
}
