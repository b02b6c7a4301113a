package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/todod/internal/middleware"
	appErr "github.com/xxxsen/todod/internal/pkg/errors"
	"github.com/xxxsen/todod/internal/pkg/response"
	"github.com/xxxsen/todod/internal/service"
)

type UserHandler struct {
	auth *service.AuthService
}

func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	c.Header(middleware.AuthHeader, token)
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// a failed login attempt is a 400, not a 401; only protected
		// routes answer 401
		if appErr.IsUnauthorized(err) {
			response.Error(c, http.StatusBadRequest, "auth", "invalid credentials")
			return
		}
		handleError(c, err)
		return
	}
	c.Header(middleware.AuthHeader, token)
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// Logout drops only the session token the request was made with.
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), currentUser(c), currentToken(c)); err != nil {
		response.Error(c, http.StatusBadRequest, "store", "logout failed")
		return
	}
	c.Status(http.StatusOK)
}
