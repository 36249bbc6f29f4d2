package domain

// Todo is a shared task, subject to moderator approval before it can be
// assigned to rooms.
type Todo struct {
	ID         int64  `json:"todo_id"`
	Name       string `json:"name"`
	IsApproved bool   `json:"is_approved"`
}

func NewTodo(name string) *Todo {
	return &Todo{Name: name}
}

// JoinedTodo assigns a todo to a room. Amount counts how many times the
// todo was checked inside the room.
type JoinedTodo struct {
	RoomID int64 `json:"room_id"`
	TodoID int64 `json:"todo_id"`
	Amount int64 `json:"amount"`
}

// RoomTodo is the assignment projection joined with the todo name.
type RoomTodo struct {
	TodoID int64  `json:"todo_id"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}
