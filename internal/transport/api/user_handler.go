package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/media"
	"github.com/fsdevblog/safevault/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService UserServicer
}

func NewUserHandler(userService UserServicer) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Profile GET RouteGroup + ProfileRoute.
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

type UpdateProfileParams struct {
	FirstName string `binding:"required,min=1,max=50" json:"firstName"`
	LastName  string `binding:"required,min=1,max=50" json:"lastName"`
}

// UpdateProfile PUT RouteGroup + ProfileRoute.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params UpdateProfileParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.UpdateProfile(ctx, userID, service.UpdateProfileArgs{
		FirstName: params.FirstName,
		LastName:  params.LastName,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// SetProfileImage POST RouteGroup + ProfileImageRoute. Принимает multipart-поле image.
func (h *UserHandler) SetProfileImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, fileOk := formFile(c, "image")
	if !fileOk {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultUploadTimeout)
	defer cancel()

	user, err := h.userService.SetProfileImage(ctx, userID, file)
	if err != nil {
		if errors.Is(err, media.ErrFileTooLarge) || errors.Is(err, media.ErrUnsupportedType) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// RemoveProfileImage DELETE RouteGroup + ProfileImageRoute.
func (h *UserHandler) RemoveProfileImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.RemoveProfileImage(ctx, userID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// formFile читает multipart-файл в память. При отсутствии или ошибке чтения
// прерывает запрос с 400.
func formFile(c *gin.Context, field string) (media.File, bool) {
	header, err := c.FormFile(field)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": field + " file is required"})
		return media.File{}, false
	}

	src, openErr := header.Open()
	if openErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, openErr).SetType(gin.ErrorTypePrivate)
		return media.File{}, false
	}
	defer func() { _ = src.Close() }()

	data, readErr := io.ReadAll(src)
	if readErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, readErr).SetType(gin.ErrorTypePrivate)
		return media.File{}, false
	}

	return media.File{Name: header.Filename, Data: data}, true
}
