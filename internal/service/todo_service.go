package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/checkroom/backend/internal/domain"
	"github.com/checkroom/backend/internal/repository"
	"github.com/checkroom/backend/lib/logger/sl"
)

type TodoService struct {
	todos       repository.TodoRepository
	assignments repository.AssignmentRepository
	log         *slog.Logger
}

func NewTodoService(todos repository.TodoRepository, assignments repository.AssignmentRepository, log *slog.Logger) *TodoService {
	if log == nil {
		log = slog.Default()
	}
	return &TodoService{todos: todos, assignments: assignments, log: log}
}

func (s *TodoService) CreateTodo(ctx context.Context, name string) (*domain.Todo, error) {
	const op = "service.todo.create"

	if name == "" {
		return nil, errors.New("todo name is required")
	}

	todo := domain.NewTodo(name)
	if err := s.todos.Create(ctx, todo); err != nil {
		s.log.Error("failed to create todo", slog.String("op", op), sl.Err(err))
		return nil, err
	}

	s.log.Info("todo created", slog.String("op", op), slog.Int64("todo_id", todo.ID))
	return todo, nil
}

func (s *TodoService) ApproveTodo(ctx context.Context, todoID int64) error {
	const op = "service.todo.approve"
	log := s.log.With(slog.String("op", op), slog.Int64("todo_id", todoID))

	if err := s.todos.Approve(ctx, todoID); err != nil {
		log.Info("approval failed", sl.Err(err))
		return err
	}

	log.Info("todo approved")
	return nil
}

func (s *TodoService) ListTodos(ctx context.Context, approved bool) ([]*domain.Todo, error) {
	return s.todos.ListByApproval(ctx, approved)
}

func (s *TodoService) ListRoomTodos(ctx context.Context, roomID int64) ([]*domain.RoomTodo, error) {
	return s.assignments.ListByRoom(ctx, roomID)
}

// CheckTodo bumps the assignment counter by one. The increment happens
// server-side, so concurrent checks never lose updates.
func (s *TodoService) CheckTodo(ctx context.Context, roomID, todoID int64) error {
	const op = "service.todo.check"
	log := s.log.With(slog.String("op", op), slog.Int64("room_id", roomID), slog.Int64("todo_id", todoID))

	if err := s.assignments.Increment(ctx, roomID, todoID); err != nil {
		log.Info("check failed", sl.Err(err))
		return err
	}

	log.Info("todo checked")
	return nil
}

func (s *TodoService) AddTodoToRoom(ctx context.Context, roomID, todoID int64) error {
	const op = "service.todo.addToRoom"
	log := s.log.With(slog.String("op", op), slog.Int64("room_id", roomID), slog.Int64("todo_id", todoID))

	if err := s.assignments.Add(ctx, roomID, todoID); err != nil {
		log.Info("assignment failed", sl.Err(err))
		return err
	}

	log.Info("todo assigned to room")
	return nil
}
