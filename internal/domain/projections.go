package domain

import "time"

// UserSummary is the owner slice embedded in todo projections.
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// TodoProjection is the full read model returned by condition search and
// search-by-id. It is never written back.
type TodoProjection struct {
	ID         int64       `json:"id"`
	Title      string      `json:"title"`
	Contents   string      `json:"contents"`
	Weather    string      `json:"weather"`
	User       UserSummary `json:"user"`
	CreatedAt  time.Time   `json:"createdAt"`
	ModifiedAt time.Time   `json:"modifiedAt"`
}

// TodoSearchResult is the lightweight keyword-search row: the todo title plus
// per-todo aggregate counts of its child records.
type TodoSearchResult struct {
	Title        string `json:"title"`
	ManagerCount int    `json:"managerCount"`
	CommentCount int    `json:"commentCount"`
}

type CommentProjection struct {
	ID        int64       `json:"id"`
	Contents  string      `json:"contents"`
	User      UserSummary `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
}

type ManagerProjection struct {
	ID   int64       `json:"id"`
	User UserSummary `json:"user"`
}

// Page is a bounded slice of results plus the total matching count. TotalCount
// always comes from its own count query, never from len(Content).
type Page[T any] struct {
	Content    []T   `json:"content"`
	TotalCount int64 `json:"totalCount"`
	PageIndex  int   `json:"pageIndex"`
	PageSize   int   `json:"pageSize"`
}

// NewPage assembles a page keeping the request's index/size.
func NewPage[T any](content []T, total int64, index, size int) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{Content: content, TotalCount: total, PageIndex: index, PageSize: size}
}
