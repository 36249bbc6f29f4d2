package repository

import (
	"context"

	"github.com/checkroom/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	// SetApproval flips the approval flag and, when approved is true,
	// registers the creator into the room. Both run in one transaction.
	SetApproval(ctx context.Context, roomID int64, approved bool) error
	Detail(ctx context.Context, roomID int64) (*domain.RoomDetail, error)
	ListByApproval(ctx context.Context, approved bool) ([]*domain.Room, error)
	ListJoinedByUser(ctx context.Context, userID int64) ([]*domain.Room, error)
}

type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	Approve(ctx context.Context, todoID int64) error
	ListByApproval(ctx context.Context, approved bool) ([]*domain.Todo, error)
}

// AssignmentRepository manages room/todo assignments and their counters.
type AssignmentRepository interface {
	Add(ctx context.Context, roomID, todoID int64) error
	ListByRoom(ctx context.Context, roomID int64) ([]*domain.RoomTodo, error)
	// Increment bumps amount by one server-side, so concurrent checks
	// never lose updates.
	Increment(ctx context.Context, roomID, todoID int64) error
}
