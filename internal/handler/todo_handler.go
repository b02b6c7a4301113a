package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/todod/internal/pkg/response"
	"github.com/xxxsen/todod/internal/service"
)

type TodoHandler struct {
	todos *service.TodoService
}

func NewTodoHandler(todos *service.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

type todoCreateRequest struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// todoUpdateRequest whitelists the patchable fields; anything else in
// the body is ignored.
type todoUpdateRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

func (h *TodoHandler) Create(c *gin.Context) {
	var req todoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	todo, err := h.todos.Create(c.Request.Context(), currentUser(c).ID, req.Text, req.Completed)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.todos.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"todos": todos})
}

func (h *TodoHandler) Get(c *gin.Context) {
	todo, err := h.todos.Get(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

func (h *TodoHandler) Update(c *gin.Context) {
	var req todoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	todo, err := h.todos.Update(c.Request.Context(), currentUser(c).ID, c.Param("id"), service.TodoUpdateInput{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

func (h *TodoHandler) Delete(c *gin.Context) {
	todo, err := h.todos.Delete(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"todo": todo})
}
