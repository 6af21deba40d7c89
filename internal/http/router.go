package api

import (
	"context"
	"log"
	stdhttp "net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hosung77/spring-plus/internal/auth"
	"github.com/hosung77/spring-plus/internal/client"
	intconfig "github.com/hosung77/spring-plus/internal/config"
	h "github.com/hosung77/spring-plus/internal/http/handlers"
	"github.com/hosung77/spring-plus/internal/http/middleware"
	"github.com/hosung77/spring-plus/internal/repositories"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	codec := auth.NewCodec(env.JWTSecret, env.JWTTTL)
	h.Configure(codec, client.NewWeatherClient(env.WeatherURL))

	// The gate runs before the policy on every route; ordering is load-bearing.
	r.Use(middleware.Authenticate(codec, accountLookup))
	r.Use(middleware.Authorize(middleware.DefaultPolicy()))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "요청한 경로를 찾을 수 없습니다.",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	r.GET("/health", h.Health)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/signin", h.Signin)
	}

	todos := r.Group("/todos")
	{
		todos.POST("", h.CreateTodo)
		todos.GET("", h.GetTodos)
		todos.GET("/search", h.SearchTodos)
		todos.GET("/:id", h.GetTodoByID)

		todos.POST("/:id/comments", h.SaveComment)
		todos.GET("/:id/comments", h.GetComments)

		todos.POST("/:id/managers", h.SaveManager)
		todos.GET("/:id/managers", h.GetManagers)
		todos.DELETE("/:id/managers/:managerId", h.DeleteManager)
	}

	users := r.Group("/users")
	{
		users.GET("/:id", h.GetUserByID)
		users.PUT("", h.ChangePassword)
	}

	admin := r.Group("/admin")
	{
		admin.PATCH("/users/:id", h.ChangeUserRole)
		admin.GET("/reports/todos", h.GetTodoActivityReport)
	}

	return r
}

// accountLookup resolves the token subject against the stored account for
// principal construction.
func accountLookup(ctx context.Context, userID int64) (auth.Principal, error) {
	user, err := repositories.UserRepository{DB: intconfig.DB}.GetByID(ctx, userID)
	if err != nil {
		return auth.Principal{}, err
	}
	return auth.Principal{
		ID:       user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
		Role:     user.Role,
	}, nil
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(env.CORSAllowedOrigins) > 0 {
		cfg.AllowOrigins = env.CORSAllowedOrigins
	} else {
		cfg.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"}
	cfg.AllowCredentials = true
	return cors.New(cfg)
}
