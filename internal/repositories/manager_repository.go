package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hosung77/spring-plus/internal/domain"
)

// ManagerRepository wraps DB access for todo manager assignments.
type ManagerRepository struct {
	DB *sql.DB
}

func (r ManagerRepository) Create(ctx context.Context, m domain.Manager) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
        INSERT INTO managers (user_id, todo_id, created_at)
        VALUES (?, ?, ?)
    `, m.UserID, m.TodoID, time.Now())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ManagerRepository) GetByID(ctx context.Context, id int64) (domain.Manager, error) {
	var m domain.Manager
	err := r.DB.QueryRowContext(ctx, `
        SELECT id, user_id, todo_id, created_at FROM managers WHERE id = ?
    `, id).Scan(&m.ID, &m.UserID, &m.TodoID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Manager{}, domain.NotFoundError{Resource: "manager", Err: err}
		}
		return domain.Manager{}, err
	}
	return m, nil
}

// ListByTodo returns manager projections with the assigned user's summary.
func (r ManagerRepository) ListByTodo(ctx context.Context, todoID int64) ([]domain.ManagerProjection, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT m.id, u.id, u.email
        FROM managers m
        JOIN users u ON u.id = m.user_id
        WHERE m.todo_id = ?
        ORDER BY m.id
    `, todoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ManagerProjection
	for rows.Next() {
		var p domain.ManagerProjection
		if err := rows.Scan(&p.ID, &p.User.ID, &p.User.Email); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r ManagerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM managers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "manager")
}
