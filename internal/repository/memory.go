package repository

import (
	"context"
	"sync"

	"github.com/checkroom/backend/internal/domain"
)

type InMemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	nextID int64
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

type InMemoryAdminRepository struct {
	mu     sync.RWMutex
	admins map[string]*domain.Admin
}

func NewInMemoryAdminRepository() *InMemoryAdminRepository {
	return &InMemoryAdminRepository{admins: make(map[string]*domain.Admin)}
}

// Seed registers an admin account, standing in for externally inserted
// tbl_admin rows.
func (r *InMemoryAdminRepository) Seed(admin *domain.Admin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[admin.ID] = admin
}

func (r *InMemoryAdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.admins[id]
	if !ok {
		return nil, ErrAdminNotFound
	}

	copied := *admin
	return &copied, nil
}

type InMemoryRoomRepository struct {
	mu     sync.RWMutex
	rooms  map[int64]*domain.Room
	joined map[int64]map[int64]struct{} // user_id -> room ids
	users  *InMemoryUserRepository
	nextID int64
}

func NewInMemoryRoomRepository(users *InMemoryUserRepository) *InMemoryRoomRepository {
	return &InMemoryRoomRepository{
		rooms:  make(map[int64]*domain.Room),
		joined: make(map[int64]map[int64]struct{}),
		users:  users,
		nextID: 1,
	}
}

func (r *InMemoryRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if room.ID == 0 {
		room.ID = r.nextID
		r.nextID++
	}

	copied := *room
	r.rooms[room.ID] = &copied
	return nil
}

func (r *InMemoryRoomRepository) SetApproval(ctx context.Context, roomID int64, approved bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	room.IsApproved = approved
	if !approved {
		return nil
	}

	if r.joined[room.CreatorID] == nil {
		r.joined[room.CreatorID] = make(map[int64]struct{})
	}
	r.joined[room.CreatorID][roomID] = struct{}{}
	return nil
}

func (r *InMemoryRoomRepository) Detail(ctx context.Context, roomID int64) (*domain.RoomDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	room, ok := r.rooms[roomID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrRoomNotFound
	}

	creatorName := ""
	if creator, err := r.users.GetByID(ctx, room.CreatorID); err == nil {
		creatorName = creator.Name
	}

	return &domain.RoomDetail{
		CreatorName: creatorName,
		RoomName:    room.Name,
		RoomEmoji:   room.Emoji,
		RoomID:      room.ID,
	}, nil
}

func (r *InMemoryRoomRepository) ListByApproval(ctx context.Context, approved bool) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Room, 0)
	for _, room := range r.rooms {
		if room.IsApproved == approved {
			copied := *room
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *InMemoryRoomRepository) ListJoinedByUser(ctx context.Context, userID int64) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Room, 0)
	for roomID := range r.joined[userID] {
		if room, ok := r.rooms[roomID]; ok {
			copied := *room
			result = append(result, &copied)
		}
	}
	return result, nil
}

type InMemoryTodoRepository struct {
	mu     sync.RWMutex
	todos  map[int64]*domain.Todo
	nextID int64
}

func NewInMemoryTodoRepository() *InMemoryTodoRepository {
	return &InMemoryTodoRepository{todos: make(map[int64]*domain.Todo), nextID: 1}
}

func (r *InMemoryTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if todo.ID == 0 {
		todo.ID = r.nextID
		r.nextID++
	}

	copied := *todo
	r.todos[todo.ID] = &copied
	return nil
}

func (r *InMemoryTodoRepository) Approve(ctx context.Context, todoID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.todos[todoID]
	if !ok {
		return ErrTodoNotFound
	}

	todo.IsApproved = true
	return nil
}

func (r *InMemoryTodoRepository) ListByApproval(ctx context.Context, approved bool) ([]*domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Todo, 0)
	for _, todo := range r.todos {
		if todo.IsApproved == approved {
			copied := *todo
			result = append(result, &copied)
		}
	}
	return result, nil
}

type assignmentKey struct {
	roomID int64
	todoID int64
}

type InMemoryAssignmentRepository struct {
	mu          sync.RWMutex
	assignments map[assignmentKey]*domain.JoinedTodo
	todos       *InMemoryTodoRepository
}

func NewInMemoryAssignmentRepository(todos *InMemoryTodoRepository) *InMemoryAssignmentRepository {
	return &InMemoryAssignmentRepository{
		assignments: make(map[assignmentKey]*domain.JoinedTodo),
		todos:       todos,
	}
}

func (r *InMemoryAssignmentRepository) Add(ctx context.Context, roomID, todoID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := assignmentKey{roomID: roomID, todoID: todoID}
	if _, ok := r.assignments[key]; ok {
		return ErrAssignmentExists
	}

	r.assignments[key] = &domain.JoinedTodo{RoomID: roomID, TodoID: todoID}
	return nil
}

func (r *InMemoryAssignmentRepository) ListByRoom(ctx context.Context, roomID int64) ([]*domain.RoomTodo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.RoomTodo, 0)
	for key, assignment := range r.assignments {
		if key.roomID != roomID {
			continue
		}

		name := ""
		if todo, err := r.todos.get(key.todoID); err == nil {
			name = todo.Name
		}

		result = append(result, &domain.RoomTodo{
			TodoID: key.todoID,
			Name:   name,
			Amount: assignment.Amount,
		})
	}
	return result, nil
}

func (r *InMemoryAssignmentRepository) Increment(ctx context.Context, roomID, todoID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	assignment, ok := r.assignments[assignmentKey{roomID: roomID, todoID: todoID}]
	if !ok {
		return ErrAssignmentNotFound
	}

	assignment.Amount++
	return nil
}

func (r *InMemoryTodoRepository) get(id int64) (*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.todos[id]
	if !ok {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}
