package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/hosung77/spring-plus/internal/config"
	"github.com/hosung77/spring-plus/internal/http/middleware"
	"github.com/hosung77/spring-plus/internal/repositories"
	"github.com/hosung77/spring-plus/internal/services"
)

type todoSaveRequest struct {
	Title    string `json:"title" binding:"required"`
	Contents string `json:"contents"`
}

func todoService(c *gin.Context) services.TodoService {
	return services.TodoService{
		Todos:     repositories.TodoRepository{DB: intconfig.DB},
		Search:    repositories.TodoSearchRepository{DB: intconfig.DB},
		Weather:   weatherClient,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /todos
func CreateTodo(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req todoSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "요청 본문이 유효하지 않습니다.", err.Error())
		return
	}

	todo, err := todoService(c).Create(c.Request.Context(), principal, req.Title, req.Contents)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// GET /todos — condition search (date range + weather only).
func GetTodos(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	// keyword params are not part of this endpoint's contract
	criteria.TitleKeyword = ""
	criteria.NicknameKeyword = ""

	page, err := todoService(c).SearchByCondition(c.Request.Context(), criteria, parsePage(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /todos/search — keyword search (title/nickname substrings + dates).
func SearchTodos(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	criteria.Weather = ""

	page, err := todoService(c).SearchByKeyword(c.Request.Context(), criteria, parsePage(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /todos/:id
func GetTodoByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	todo, err := todoService(c).GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}
