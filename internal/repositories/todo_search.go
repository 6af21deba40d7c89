package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/hosung77/spring-plus/internal/domain"
	"github.com/hosung77/spring-plus/internal/utils"
)

// TodoSearchCriteria carries the optional search inputs. A nil date or a
// blank string means "no constraint" for that field.
type TodoSearchCriteria struct {
	TitleKeyword    string
	NicknameKeyword string
	StartDate       *time.Time
	EndDate         *time.Time
	Weather         string
}

// PageRequest is caller-supplied offset/limit paging.
type PageRequest struct {
	Index int
	Size  int
}

func (p PageRequest) Offset() int { return p.Index * p.Size }

// searchFilter folds optional criteria into one conjunctive WHERE clause.
// Absent criteria contribute nothing, so an empty filter is the unfiltered
// full-set query. The same filter feeds both the content and count queries.
type searchFilter struct {
	clauses []string
	args    []any
}

func (f *searchFilter) add(clause string, args ...any) {
	f.clauses = append(f.clauses, clause)
	f.args = append(f.args, args...)
}

func (f *searchFilter) where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// createdBetween applies the three-way date-range branch: both bounds, only
// a lower bound, or only an upper bound. Bounds are inclusive whole days.
func (f *searchFilter) createdBetween(start, end *time.Time) {
	switch {
	case start != nil && end != nil:
		f.add("t.created_at BETWEEN ? AND ?", utils.StartOfDay(*start), utils.EndOfDay(*end))
	case start != nil:
		f.add("t.created_at >= ?", utils.StartOfDay(*start))
	case end != nil:
		f.add("t.created_at <= ?", utils.EndOfDay(*end))
	}
}

// weatherEq matches exactly; a blank string after trimming is absent.
func (f *searchFilter) weatherEq(weather string) {
	if w := strings.TrimSpace(weather); w != "" {
		f.add("t.weather = ?", w)
	}
}

// containsIgnoreCase adds a case-insensitive substring match on column.
func (f *searchFilter) containsIgnoreCase(column, keyword string) {
	if k := strings.TrimSpace(keyword); k != "" {
		f.add("LOWER("+column+") LIKE ?", "%"+strings.ToLower(k)+"%")
	}
}

// TodoSearchRepository runs the filtered search queries and their paired
// count queries against the joined todo/user/child tables.
type TodoSearchRepository struct {
	DB *sql.DB
}

const todoProjectionSelect = `
        SELECT t.id, t.title, t.contents, t.weather, u.id, u.email, t.created_at, t.modified_at
        FROM todos t
        LEFT JOIN users u ON u.id = t.user_id`

// SearchByCondition filters by date range and weather, returning the full
// row projection in natural id order.
func (r TodoSearchRepository) SearchByCondition(ctx context.Context, criteria TodoSearchCriteria, page PageRequest) (domain.Page[domain.TodoProjection], error) {
	filter := &searchFilter{}
	filter.createdBetween(criteria.StartDate, criteria.EndDate)
	filter.weatherEq(criteria.Weather)

	query := todoProjectionSelect + filter.where() + `
        ORDER BY t.id
        LIMIT ? OFFSET ?`

	args := append(append([]any{}, filter.args...), page.Size, page.Offset())
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.TodoProjection]{}, err
	}
	defer rows.Close()

	var content []domain.TodoProjection
	for rows.Next() {
		p, err := scanTodoProjection(rows)
		if err != nil {
			return domain.Page[domain.TodoProjection]{}, err
		}
		content = append(content, p)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.TodoProjection]{}, err
	}

	total, err := r.countTodos(ctx, filter)
	if err != nil {
		return domain.Page[domain.TodoProjection]{}, err
	}

	return domain.NewPage(content, total, page.Index, page.Size), nil
}

// SearchByKeyword filters by title/nickname substrings and date range,
// returning the lightweight projection with per-todo child counts, newest
// first.
func (r TodoSearchRepository) SearchByKeyword(ctx context.Context, criteria TodoSearchCriteria, page PageRequest) (domain.Page[domain.TodoSearchResult], error) {
	filter := &searchFilter{}
	filter.containsIgnoreCase("t.title", criteria.TitleKeyword)
	filter.containsIgnoreCase("u.nickname", criteria.NicknameKeyword)
	filter.createdBetween(criteria.StartDate, criteria.EndDate)

	query := `
        SELECT t.title,
               (SELECT COUNT(*) FROM managers m WHERE m.todo_id = t.id) AS manager_count,
               (SELECT COUNT(*) FROM comments cm WHERE cm.todo_id = t.id) AS comment_count
        FROM todos t
        LEFT JOIN users u ON u.id = t.user_id` + filter.where() + `
        ORDER BY t.created_at DESC
        LIMIT ? OFFSET ?`

	args := append(append([]any{}, filter.args...), page.Size, page.Offset())
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.TodoSearchResult]{}, err
	}
	defer rows.Close()

	var content []domain.TodoSearchResult
	for rows.Next() {
		var row domain.TodoSearchResult
		if err := rows.Scan(&row.Title, &row.ManagerCount, &row.CommentCount); err != nil {
			return domain.Page[domain.TodoSearchResult]{}, err
		}
		content = append(content, row)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.TodoSearchResult]{}, err
	}

	total, err := r.countTodos(ctx, filter)
	if err != nil {
		return domain.Page[domain.TodoSearchResult]{}, err
	}

	return domain.NewPage(content, total, page.Index, page.Size), nil
}

// SearchByID returns the projection for one todo, or nil when no row matches.
func (r TodoSearchRepository) SearchByID(ctx context.Context, todoID int64) (*domain.TodoProjection, error) {
	query := todoProjectionSelect + `
        WHERE t.id = ?`

	rows, err := r.DB.QueryContext(ctx, query, todoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	p, err := scanTodoProjection(rows)
	if err != nil {
		return nil, err
	}
	return &p, rows.Err()
}

// countTodos runs the independent aggregate query with the identical filter
// the content query used. The join is kept so nickname predicates resolve.
func (r TodoSearchRepository) countTodos(ctx context.Context, filter *searchFilter) (int64, error) {
	query := `
        SELECT COUNT(*)
        FROM todos t
        LEFT JOIN users u ON u.id = t.user_id` + filter.where()

	var total int64
	err := r.DB.QueryRowContext(ctx, query, filter.args...).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return total, nil
}

func scanTodoProjection(rows *sql.Rows) (domain.TodoProjection, error) {
	var p domain.TodoProjection
	var ownerID sql.NullInt64
	var ownerEmail sql.NullString
	err := rows.Scan(&p.ID, &p.Title, &p.Contents, &p.Weather, &ownerID, &ownerEmail, &p.CreatedAt, &p.ModifiedAt)
	if err != nil {
		return domain.TodoProjection{}, err
	}
	if ownerID.Valid {
		p.User = domain.UserSummary{ID: ownerID.Int64, Email: ownerEmail.String}
	}
	return p, nil
}
