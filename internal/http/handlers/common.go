package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hosung77/spring-plus/internal/auth"
	"github.com/hosung77/spring-plus/internal/client"
	"github.com/hosung77/spring-plus/internal/domain"
	"github.com/hosung77/spring-plus/internal/http/middleware"
	"github.com/hosung77/spring-plus/internal/repositories"
	"github.com/hosung77/spring-plus/internal/utils"
)

// Package-wide collaborators, set once from the router at startup.
var (
	tokenCodec    *auth.Codec
	weatherClient *client.WeatherClient
)

// Configure wires the handlers' process-wide collaborators.
func Configure(codec *auth.Codec, weather *client.WeatherClient) {
	tokenCodec = codec
	weatherClient = weather
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// parsePage reads page/size query params with clamping: index >= 0, size in
// [1, maxPageSize].
func parsePage(c *gin.Context) repositories.PageRequest {
	index, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || index < 0 {
		index = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil || size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return repositories.PageRequest{Index: index, Size: size}
}

// parseCriteria reads the optional search query params. A malformed date is
// a validation failure, not an absent criterion.
func parseCriteria(c *gin.Context) (repositories.TodoSearchCriteria, error) {
	criteria := repositories.TodoSearchCriteria{
		TitleKeyword:    c.Query("titleKeyword"),
		NicknameKeyword: c.Query("nicknameKeyword"),
		Weather:         c.Query("weather"),
	}
	if raw := c.Query("startDate"); raw != "" {
		t, err := utils.ParseDate(raw)
		if err != nil {
			return criteria, domain.ValidationError{Field: "startDate", Msg: "날짜 형식은 YYYY-MM-DD 입니다.", Err: err}
		}
		criteria.StartDate = &t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := utils.ParseDate(raw)
		if err != nil {
			return criteria, domain.ValidationError{Field: "endDate", Msg: "날짜 형식은 YYYY-MM-DD 입니다.", Err: err}
		}
		criteria.EndDate = &t
	}
	return criteria, nil
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "유효하지 않은 "+name+" 입니다.", nil)
		return 0, false
	}
	return id, true
}

// mustPrincipal fetches the identity the gate attached. Routes behind the
// policy always have one; a miss here means a wiring bug.
func mustPrincipal(c *gin.Context) (auth.Principal, bool) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": middleware.MsgAuthRequired})
		return auth.Principal{}, false
	}
	return p, true
}
