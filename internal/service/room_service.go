package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/checkroom/backend/internal/domain"
	"github.com/checkroom/backend/internal/repository"
	"github.com/checkroom/backend/lib/logger/sl"
)

type RoomService struct {
	rooms repository.RoomRepository
	log   *slog.Logger
}

func NewRoomService(rooms repository.RoomRepository, log *slog.Logger) *RoomService {
	if log == nil {
		log = slog.Default()
	}
	return &RoomService{rooms: rooms, log: log}
}

func (s *RoomService) CreateRoom(ctx context.Context, creatorID int64, emoji, name string) (*domain.Room, error) {
	const op = "service.room.create"
	log := s.log.With(slog.String("op", op), slog.Int64("creator_id", creatorID))

	if name == "" {
		return nil, errors.New("room name is required")
	}

	room := domain.NewRoom(creatorID, emoji, name)
	if err := s.rooms.Create(ctx, room); err != nil {
		log.Error("failed to create room", sl.Err(err))
		return nil, err
	}

	log.Info("room created", slog.Int64("room_id", room.ID))
	return room, nil
}

// SetApproval flips the moderation flag. Approval also registers the
// creator into their room, so it shows up in their joined list.
func (s *RoomService) SetApproval(ctx context.Context, roomID int64, approved bool) error {
	const op = "service.room.setApproval"
	log := s.log.With(slog.String("op", op), slog.Int64("room_id", roomID))

	if err := s.rooms.SetApproval(ctx, roomID, approved); err != nil {
		log.Info("approval update failed", sl.Err(err))
		return err
	}

	log.Info("room approval updated", slog.Bool("is_approved", approved))
	return nil
}

func (s *RoomService) RoomDetail(ctx context.Context, roomID int64) (*domain.RoomDetail, error) {
	const op = "service.room.detail"

	detail, err := s.rooms.Detail(ctx, roomID)
	if err != nil {
		s.log.Info("room detail failed", slog.String("op", op), slog.Int64("room_id", roomID), sl.Err(err))
		return nil, err
	}

	return detail, nil
}

func (s *RoomService) ListRooms(ctx context.Context, approved bool) ([]*domain.Room, error) {
	return s.rooms.ListByApproval(ctx, approved)
}

func (s *RoomService) ListJoinedRooms(ctx context.Context, userID int64) ([]*domain.Room, error) {
	return s.rooms.ListJoinedByUser(ctx, userID)
}
