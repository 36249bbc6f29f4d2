package repository

import (
	"context"
	"errors"

	"github.com/checkroom/backend/internal/domain"
	"github.com/checkroom/backend/internal/repository/model"
	"gorm.io/gorm"
)

type MySQLUserRepository struct {
	db *gorm.DB
}

func NewMySQLUserRepository(db *gorm.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("user is nil")
	}

	userModel := toModelUser(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return err
	}

	user.ID = userModel.UserID
	return nil
}

func (r *MySQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toDomainUser(&user), nil
}

type MySQLAdminRepository struct {
	db *gorm.DB
}

func NewMySQLAdminRepository(db *gorm.DB) *MySQLAdminRepository {
	return &MySQLAdminRepository{db: db}
}

func (r *MySQLAdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).First(&admin, "admin_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	return &domain.Admin{ID: admin.AdminID, Password: admin.Password}, nil
}

type MySQLRoomRepository struct {
	db *gorm.DB
}

func NewMySQLRoomRepository(db *gorm.DB) *MySQLRoomRepository {
	return &MySQLRoomRepository{db: db}
}

func (r *MySQLRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if room == nil {
		return errors.New("room is nil")
	}

	roomModel := toModelRoom(room)
	if err := r.db.WithContext(ctx).Create(roomModel).Error; err != nil {
		return err
	}

	room.ID = roomModel.RoomID
	return nil
}

func (r *MySQLRoomRepository) SetApproval(ctx context.Context, roomID int64, approved bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, "room_id = ?", roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		err := tx.Model(&model.Room{}).
			Where("room_id = ?", roomID).
			Update("is_approved", approved).Error
		if err != nil {
			return err
		}

		if !approved {
			return nil
		}

		joined := model.JoinedRoom{UserID: room.CreatorID, RoomID: roomID}
		return tx.Where("user_id = ? AND room_id = ?", room.CreatorID, roomID).
			FirstOrCreate(&joined).Error
	})
}

func (r *MySQLRoomRepository) Detail(ctx context.Context, roomID int64) (*domain.RoomDetail, error) {
	var detail domain.RoomDetail
	err := r.db.WithContext(ctx).
		Table("tbl_room").
		Select("tbl_user.name AS creator_name, tbl_room.name AS room_name, tbl_room.emoji AS room_emoji, tbl_room.room_id AS room_id").
		Joins("JOIN tbl_user ON tbl_room.creator_id = tbl_user.user_id").
		Where("tbl_room.room_id = ?", roomID).
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return &detail, nil
}

func (r *MySQLRoomRepository) ListByApproval(ctx context.Context, approved bool) ([]*domain.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Where("is_approved = ?", approved).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Room, 0, len(rooms))
	for i := range rooms {
		result = append(result, toDomainRoom(&rooms[i]))
	}
	return result, nil
}

func (r *MySQLRoomRepository) ListJoinedByUser(ctx context.Context, userID int64) ([]*domain.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Table("tbl_room").
		Select("tbl_room.*").
		Joins("JOIN tbl_registered_room ON tbl_registered_room.room_id = tbl_room.room_id").
		Where("tbl_registered_room.user_id = ?", userID).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Room, 0, len(rooms))
	for i := range rooms {
		result = append(result, toDomainRoom(&rooms[i]))
	}
	return result, nil
}

type MySQLTodoRepository struct {
	db *gorm.DB
}

func NewMySQLTodoRepository(db *gorm.DB) *MySQLTodoRepository {
	return &MySQLTodoRepository{db: db}
}

func (r *MySQLTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	if todo == nil {
		return errors.New("todo is nil")
	}

	todoModel := toModelTodo(todo)
	if err := r.db.WithContext(ctx).Create(todoModel).Error; err != nil {
		return err
	}

	todo.ID = todoModel.TodoID
	return nil
}

func (r *MySQLTodoRepository) Approve(ctx context.Context, todoID int64) error {
	// lookup first: MySQL reports zero affected rows when the flag is
	// already set, so RowsAffected cannot distinguish a missing todo.
	var todo model.Todo
	if err := r.db.WithContext(ctx).First(&todo, "todo_id = ?", todoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return err
	}

	return r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("todo_id = ?", todoID).
		Update("is_approved", true).Error
}

func (r *MySQLTodoRepository) ListByApproval(ctx context.Context, approved bool) ([]*domain.Todo, error) {
	var todos []model.Todo
	err := r.db.WithContext(ctx).
		Where("is_approved = ?", approved).
		Find(&todos).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Todo, 0, len(todos))
	for i := range todos {
		result = append(result, toDomainTodo(&todos[i]))
	}
	return result, nil
}

type MySQLAssignmentRepository struct {
	db *gorm.DB
}

func NewMySQLAssignmentRepository(db *gorm.DB) *MySQLAssignmentRepository {
	return &MySQLAssignmentRepository{db: db}
}

func (r *MySQLAssignmentRepository) Add(ctx context.Context, roomID, todoID int64) error {
	joined := model.JoinedTodo{RoomID: roomID, TodoID: todoID}
	if err := r.db.WithContext(ctx).Create(&joined).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAssignmentExists
		}
		return err
	}
	return nil
}

func (r *MySQLAssignmentRepository) ListByRoom(ctx context.Context, roomID int64) ([]*domain.RoomTodo, error) {
	var todos []*domain.RoomTodo
	err := r.db.WithContext(ctx).
		Table("tbl_registered_todo").
		Select("tbl_registered_todo.todo_id AS todo_id, tbl_todo.name AS name, tbl_registered_todo.amount AS amount").
		Joins("JOIN tbl_todo ON tbl_registered_todo.todo_id = tbl_todo.todo_id").
		Where("tbl_registered_todo.room_id = ?", roomID).
		Find(&todos).Error
	if err != nil {
		return nil, err
	}

	return todos, nil
}

func (r *MySQLAssignmentRepository) Increment(ctx context.Context, roomID, todoID int64) error {
	res := r.db.WithContext(ctx).Model(&model.JoinedTodo{}).
		Where("room_id = ? AND todo_id = ?", roomID, todoID).
		UpdateColumn("amount", gorm.Expr("amount + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func toModelUser(u *domain.User) *model.User {
	return &model.User{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		ImagePath: u.ImagePath,
	}
}

func toDomainUser(u *model.User) *domain.User {
	return &domain.User{
		ID:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		ImagePath: u.ImagePath,
	}
}

func toModelRoom(r *domain.Room) *model.Room {
	return &model.Room{
		RoomID:     r.ID,
		CreatorID:  r.CreatorID,
		Emoji:      r.Emoji,
		Name:       r.Name,
		IsApproved: r.IsApproved,
	}
}

func toDomainRoom(r *model.Room) *domain.Room {
	return &domain.Room{
		ID:         r.RoomID,
		CreatorID:  r.CreatorID,
		Emoji:      r.Emoji,
		Name:       r.Name,
		IsApproved: r.IsApproved,
	}
}

func toModelTodo(t *domain.Todo) *model.Todo {
	return &model.Todo{
		TodoID:     t.ID,
		Name:       t.Name,
		IsApproved: t.IsApproved,
	}
}

func toDomainTodo(t *model.Todo) *domain.Todo {
	return &domain.Todo{
		ID:         t.TodoID,
		Name:       t.Name,
		IsApproved: t.IsApproved,
	}
}
