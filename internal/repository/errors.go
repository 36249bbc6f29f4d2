package repository

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrTodoNotFound       = errors.New("todo not found")
	ErrAssignmentNotFound = errors.New("todo is not assigned to the room")
	ErrAssignmentExists   = errors.New("todo already assigned to the room")
)
