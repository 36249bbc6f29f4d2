package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkroom/backend/internal/api/http/converter"
	"github.com/checkroom/backend/internal/domain"
	"github.com/checkroom/backend/internal/repository"
	"github.com/checkroom/backend/internal/service"
)

type TodoController struct {
	todos service.TodoInteractor
}

func NewTodoController(todos service.TodoInteractor) *TodoController {
	return &TodoController{todos: todos}
}

func (c *TodoController) CreateTodo(ctx *gin.Context) {
	type CreateTodoRequest struct {
		Name string `json:"name" binding:"required"`
	}
	var req CreateTodoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	todo, err := c.todos.CreateTodo(ctx.Request.Context(), req.Name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"todo": converter.TodoToApi(todo)})
}

func (c *TodoController) ApproveTodo(ctx *gin.Context) {
	todoID, ok := int64Query(ctx, "todo_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	if err := c.todos.ApproveTodo(ctx.Request.Context(), todoID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrTodoNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"todo_id": todoID, "is_approved": true})
}

func (c *TodoController) ListTodos(ctx *gin.Context) {
	approved, ok := boolQuery(ctx, "is_approved")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_approved filter"})
		return
	}

	todos, err := c.todos.ListTodos(ctx.Request.Context(), approved)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, converter.TodosToApi(todos))
}

func (c *TodoController) ListRoomTodos(ctx *gin.Context) {
	roomID, ok := int64Query(ctx, "room_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	todos, err := c.todos.ListRoomTodos(ctx.Request.Context(), roomID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// empty assignment lists render as null, matching the original surface
	if len(todos) == 0 {
		todos = []*domain.RoomTodo(nil)
	}
	ctx.JSON(http.StatusOK, todos)
}

func (c *TodoController) CheckTodo(ctx *gin.Context) {
	roomID, okRoom := int64Query(ctx, "room_id")
	todoID, okTodo := int64Query(ctx, "todo_id")
	if !okRoom || !okTodo {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid room or todo id"})
		return
	}

	if err := c.todos.CheckTodo(ctx.Request.Context(), roomID, todoID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"room_id": roomID, "todo_id": todoID})
}

func (c *TodoController) AddTodoToRoom(ctx *gin.Context) {
	type CreateJoinedTodoRequest struct {
		RoomID *int64 `json:"room_id" binding:"required"`
		TodoID *int64 `json:"todo_id" binding:"required"`
	}
	var req CreateJoinedTodoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := c.todos.AddTodoToRoom(ctx.Request.Context(), *req.RoomID, *req.TodoID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrAssignmentExists) {
			status = http.StatusConflict
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"room_id": *req.RoomID, "todo_id": *req.TodoID, "amount": 0})
}
