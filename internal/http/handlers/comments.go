package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/hosung77/spring-plus/internal/config"
	"github.com/hosung77/spring-plus/internal/domain"
	"github.com/hosung77/spring-plus/internal/http/middleware"
	"github.com/hosung77/spring-plus/internal/repositories"
	"github.com/hosung77/spring-plus/internal/services"
)

type commentSaveRequest struct {
	Contents string `json:"contents" binding:"required"`
}

func commentService(c *gin.Context) services.CommentService {
	return services.CommentService{
		Comments:  repositories.CommentRepository{DB: intconfig.DB},
		Todos:     repositories.TodoRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /todos/:id/comments
func SaveComment(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req commentSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "요청 본문이 유효하지 않습니다.", err.Error())
		return
	}

	comment, err := commentService(c).Save(c.Request.Context(), principal, todoID, req.Contents)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GET /todos/:id/comments
func GetComments(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := commentService(c).List(c.Request.Context(), todoID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if comments == nil {
		comments = []domain.CommentProjection{}
	}
	c.JSON(http.StatusOK, comments)
}
