package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/todod/internal/middleware"
	"github.com/xxxsen/todod/internal/model"
	appErr "github.com/xxxsen/todod/internal/pkg/errors"
	"github.com/xxxsen/todod/internal/pkg/response"
)

// currentUser returns the user the auth middleware resolved. Handlers
// behind TokenAuth can rely on it being present.
func currentUser(c *gin.Context) *model.User {
	value, _ := c.Get(middleware.ContextUserKey)
	user, _ := value.(*model.User)
	return user
}

func currentToken(c *gin.Context) string {
	value, _ := c.Get(middleware.ContextTokenKey)
	token, _ := value.(string)
	return token
}

// handleError maps the service error taxonomy to the HTTP surface.
// Not-found and unauthorized responses carry no body; everything else
// is a 400 with a structured error, store failures included.
func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Info("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	switch {
	case appErr.IsNotFound(err):
		c.Status(http.StatusNotFound)
	case appErr.IsUnauthorized(err):
		c.Status(http.StatusUnauthorized)
	case appErr.IsConflict(err):
		response.Error(c, http.StatusBadRequest, "conflict", "email already in use")
	default:
		response.Error(c, http.StatusBadRequest, "invalid", err.Error())
	}
}
