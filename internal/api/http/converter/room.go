package converter

import "github.com/checkroom/backend/internal/domain"

type RoomResponse struct {
	RoomID     int64  `json:"room_id"`
	CreatorID  int64  `json:"creator_id"`
	Emoji      string `json:"emoji"`
	Name       string `json:"name"`
	IsApproved bool   `json:"is_approved"`
}

// RoomSummary is the lightweight projection used by the joined-rooms list.
type RoomSummary struct {
	RoomID   int64  `json:"room_id"`
	RoomName string `json:"room_name"`
	Emoji    string `json:"emoji"`
}

func RoomToApi(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		RoomID:     r.ID,
		CreatorID:  r.CreatorID,
		Emoji:      r.Emoji,
		Name:       r.Name,
		IsApproved: r.IsApproved,
	}
}

func RoomsToApi(rooms []*domain.Room) []*RoomResponse {
	result := make([]*RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, RoomToApi(r))
	}
	return result
}

func RoomsToSummaries(rooms []*domain.Room) []*RoomSummary {
	if len(rooms) == 0 {
		return nil
	}

	result := make([]*RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, &RoomSummary{
			RoomID:   r.ID,
			RoomName: r.Name,
			Emoji:    r.Emoji,
		})
	}
	return result
}
