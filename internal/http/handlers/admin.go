package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/hosung77/spring-plus/internal/config"
	"github.com/hosung77/spring-plus/internal/http/middleware"
	"github.com/hosung77/spring-plus/internal/repositories"
	"github.com/hosung77/spring-plus/internal/services"
)

type changeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// PATCH /admin/users/:id — change a user's role.
func ChangeUserRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "요청 본문이 유효하지 않습니다.", err.Error())
		return
	}

	if err := userService(c).ChangeRole(c.Request.Context(), id, req.Role); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "권한이 변경되었습니다."})
}

// GET /admin/reports/todos — todo activity report PDF (inline).
func GetTodoActivityReport(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.ReportService{
		Search:    repositories.TodoSearchRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.TodoActivityPDF(c.Request.Context(), criteria, parsePage(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
