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

type managerSaveRequest struct {
	ManagerUserID int64 `json:"managerUserId" binding:"required"`
}

func managerService(c *gin.Context) services.ManagerService {
	return services.ManagerService{
		Managers:  repositories.ManagerRepository{DB: intconfig.DB},
		Todos:     repositories.TodoRepository{DB: intconfig.DB},
		Users:     repositories.UserRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /todos/:id/managers
func SaveManager(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req managerSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "요청 본문이 유효하지 않습니다.", err.Error())
		return
	}

	manager, err := managerService(c).Assign(c.Request.Context(), principal, todoID, req.ManagerUserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, manager)
}

// GET /todos/:id/managers
func GetManagers(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	managers, err := managerService(c).List(c.Request.Context(), todoID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if managers == nil {
		managers = []domain.ManagerProjection{}
	}
	c.JSON(http.StatusOK, managers)
}

// DELETE /todos/:id/managers/:managerId
func DeleteManager(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	managerID, ok := pathID(c, "managerId")
	if !ok {
		return
	}

	if err := managerService(c).Remove(c.Request.Context(), principal, todoID, managerID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "담당자가 삭제되었습니다."})
}
