package service

import (
	"context"

	"github.com/checkroom/backend/internal/domain"
)

type AdminInteractor interface {
	Login(ctx context.Context, adminID, password string) (string, error)
}

type RoomInteractor interface {
	CreateRoom(ctx context.Context, creatorID int64, emoji, name string) (*domain.Room, error)
	SetApproval(ctx context.Context, roomID int64, approved bool) error
	RoomDetail(ctx context.Context, roomID int64) (*domain.RoomDetail, error)
	ListRooms(ctx context.Context, approved bool) ([]*domain.Room, error)
	ListJoinedRooms(ctx context.Context, userID int64) ([]*domain.Room, error)
}

type TodoInteractor interface {
	CreateTodo(ctx context.Context, name string) (*domain.Todo, error)
	ApproveTodo(ctx context.Context, todoID int64) error
	ListTodos(ctx context.Context, approved bool) ([]*domain.Todo, error)
	ListRoomTodos(ctx context.Context, roomID int64) ([]*domain.RoomTodo, error)
	CheckTodo(ctx context.Context, roomID, todoID int64) error
	AddTodoToRoom(ctx context.Context, roomID, todoID int64) error
}
