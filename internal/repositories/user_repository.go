package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hosung77/spring-plus/internal/domain"
)

// UserRepository wraps DB access for user accounts.
type UserRepository struct {
	DB *sql.DB
}

const userColumns = `id, email, password, nickname, user_role, created_at, modified_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Nickname, &role, &u.CreatedAt, &u.ModifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return domain.User{}, err
	}
	parsed, err := domain.ParseUserRole(role)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = parsed
	return u, nil
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r UserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	now := time.Now()
	res, err := r.DB.ExecContext(ctx, `
        INSERT INTO users (email, password, nickname, user_role, created_at, modified_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, u.Email, u.Password, u.Nickname, string(u.Role), now, now)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res, err := r.DB.ExecContext(ctx, `
        UPDATE users SET password = ?, modified_at = ? WHERE id = ?
    `, hash, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "user")
}

func (r UserRepository) UpdateRole(ctx context.Context, id int64, role domain.UserRole) error {
	res, err := r.DB.ExecContext(ctx, `
        UPDATE users SET user_role = ?, modified_at = ? WHERE id = ?
    `, string(role), time.Now(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "user")
}

// requireRowAffected maps a no-op UPDATE/DELETE to a NotFoundError.
func requireRowAffected(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}
