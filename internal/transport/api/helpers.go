package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// currentUserID достает id юзера, записанный миддлварью AuthRequired.
// При отсутствии значения прерывает запрос с 500.
func currentUserID(c *gin.Context) (int64, bool) {
	val, ok := c.Get(middlewares.CurrentUserIDKey)
	if !ok {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("current user id missing in context")).
			SetType(gin.ErrorTypePrivate)
		return 0, false
	}
	id, castOk := val.(int64)
	if !castOk {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("current user id has invalid type")).
			SetType(gin.ErrorTypePrivate)
		return 0, false
	}
	return id, true
}

// pathID парсит числовой path-параметр. При ошибке прерывает запрос с 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// pageFromQuery собирает параметры пагинации из query string. Отсутствующие
// значения нормализуются на слое репозитория.
func pageFromQuery(c *gin.Context) repoargs.Page {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return repoargs.Page{Number: page, Limit: limit}
}
