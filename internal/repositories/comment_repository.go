package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/hosung77/spring-plus/internal/domain"
)

// CommentRepository wraps DB access for todo comments.
type CommentRepository struct {
	DB *sql.DB
}

func (r CommentRepository) Create(ctx context.Context, c domain.Comment) (int64, error) {
	now := time.Now()
	res, err := r.DB.ExecContext(ctx, `
        INSERT INTO comments (contents, user_id, todo_id, created_at, modified_at)
        VALUES (?, ?, ?, ?, ?)
    `, c.Contents, c.UserID, c.TodoID, now, now)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListByTodo returns comment projections with their author summary, oldest
// first.
func (r CommentRepository) ListByTodo(ctx context.Context, todoID int64) ([]domain.CommentProjection, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT c.id, c.contents, u.id, u.email, c.created_at
        FROM comments c
        JOIN users u ON u.id = c.user_id
        WHERE c.todo_id = ?
        ORDER BY c.id
    `, todoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CommentProjection
	for rows.Next() {
		var p domain.CommentProjection
		if err := rows.Scan(&p.ID, &p.Contents, &p.User.ID, &p.User.Email, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
