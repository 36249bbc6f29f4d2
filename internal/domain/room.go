package domain

// Room is a collaboration space created by a user. It stays invisible to
// members until a moderator approves it.
type Room struct {
	ID         int64  `json:"room_id"`
	CreatorID  int64  `json:"creator_id"`
	Emoji      string `json:"emoji"`
	Name       string `json:"name"`
	IsApproved bool   `json:"is_approved"`
}

// NewRoom constructs an unapproved room owned by the creator.
func NewRoom(creatorID int64, emoji, name string) *Room {
	return &Room{
		CreatorID: creatorID,
		Emoji:     emoji,
		Name:      name,
	}
}

// RoomDetail is the room projection joined with its creator.
type RoomDetail struct {
	CreatorName string `json:"creator_name"`
	RoomName    string `json:"room_name"`
	RoomEmoji   string `json:"room_emoji"`
	RoomID      int64  `json:"room_id"`
}

// JoinedRoom links a user to a room they belong to.
type JoinedRoom struct {
	UserID int64 `json:"user_id"`
	RoomID int64 `json:"room_id"`
}
