package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/hosung77/spring-plus/internal/config"
	"github.com/hosung77/spring-plus/internal/http/middleware"
	"github.com/hosung77/spring-plus/internal/repositories"
	"github.com/hosung77/spring-plus/internal/services"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
	UserRole string `json:"userRole" binding:"required"`
}

type signinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Users:     repositories.UserRepository{DB: intconfig.DB},
		Codec:     tokenCodec,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /auth/signup
func Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "요청 본문이 유효하지 않습니다.", err.Error())
		return
	}

	result, err := authService(c).Signup(c.Request.Context(), services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
		Role:     req.UserRole,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// POST /auth/signin
func Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "요청 본문이 유효하지 않습니다.", err.Error())
		return
	}

	result, err := authService(c).Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
