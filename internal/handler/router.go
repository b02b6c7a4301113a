package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/todod/internal/middleware"
	"github.com/xxxsen/todod/internal/service"
)

type RouterDeps struct {
	Users *UserHandler
	Todos *TodoHandler
	Auth  *service.AuthService
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/users", deps.Users.Register)
	api.POST("/users/login", deps.Users.Login)

	authGroup := api.Group("")
	authGroup.Use(middleware.TokenAuth(deps.Auth))
	authGroup.GET("/users/me", deps.Users.Me)
	authGroup.DELETE("/users/me/token", deps.Users.Logout)

	authGroup.POST("/todos", deps.Todos.Create)
	authGroup.GET("/todos", deps.Todos.List)
	authGroup.GET("/todos/:id", deps.Todos.Get)
	authGroup.PATCH("/todos/:id", deps.Todos.Update)
	authGroup.DELETE("/todos/:id", deps.Todos.Delete)
}
