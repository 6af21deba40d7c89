package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hosung77/spring-plus/internal/domain"
)

// TodoRepository wraps DB access for todo records. Read projections for the
// search endpoints live in TodoSearchRepository.
type TodoRepository struct {
	DB *sql.DB
}

func (r TodoRepository) Create(ctx context.Context, t domain.Todo) (int64, error) {
	now := time.Now()
	res, err := r.DB.ExecContext(ctx, `
        INSERT INTO todos (title, contents, weather, user_id, created_at, modified_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, t.Title, t.Contents, t.Weather, t.UserID, now, now)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TodoRepository) GetByID(ctx context.Context, id int64) (domain.Todo, error) {
	var t domain.Todo
	err := r.DB.QueryRowContext(ctx, `
        SELECT id, title, contents, weather, user_id, created_at, modified_at
        FROM todos WHERE id = ?
    `, id).Scan(&t.ID, &t.Title, &t.Contents, &t.Weather, &t.UserID, &t.CreatedAt, &t.ModifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Todo{}, domain.NotFoundError{Resource: "todo", Err: err}
		}
		return domain.Todo{}, err
	}
	return t, nil
}

// Exists reports whether a todo row is present without loading it.
func (r TodoRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
