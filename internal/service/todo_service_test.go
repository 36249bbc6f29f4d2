package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkroom/backend/internal/repository"
)

func newTodoService() *TodoService {
	todos := repository.NewInMemoryTodoRepository()
	assignments := repository.NewInMemoryAssignmentRepository(todos)
	return NewTodoService(todos, assignments, nil)
}

func TestCreateTodoStartsUnapproved(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, "drink water")
	require.NoError(t, err)
	assert.False(t, todo.IsApproved)

	pending, err := svc.ListTodos(ctx, false)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	approved, err := svc.ListTodos(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestApproveTodo(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, "drink water")
	require.NoError(t, err)

	require.NoError(t, svc.ApproveTodo(ctx, todo.ID))

	approved, err := svc.ListTodos(ctx, true)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, todo.ID, approved[0].ID)
}

func TestApproveTodoNotFound(t *testing.T) {
	svc := newTodoService()

	err := svc.ApproveTodo(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
}

func TestAddTodoToRoomAndList(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, "drink water")
	require.NoError(t, err)

	require.NoError(t, svc.AddTodoToRoom(ctx, 1, todo.ID))

	listed, err := svc.ListRoomTodos(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, todo.ID, listed[0].TodoID)
	assert.Equal(t, "drink water", listed[0].Name)
	assert.Equal(t, int64(0), listed[0].Amount)

	err = svc.AddTodoToRoom(ctx, 1, todo.ID)
	assert.ErrorIs(t, err, repository.ErrAssignmentExists)
}

func TestListRoomTodosFiltersByRoom(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, "drink water")
	require.NoError(t, err)

	require.NoError(t, svc.AddTodoToRoom(ctx, 1, todo.ID))
	require.NoError(t, svc.AddTodoToRoom(ctx, 2, todo.ID))
	require.NoError(t, svc.CheckTodo(ctx, 2, todo.ID))

	listed, err := svc.ListRoomTodos(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(0), listed[0].Amount)
}

func TestCheckTodoIncrements(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, "drink water")
	require.NoError(t, err)
	require.NoError(t, svc.AddTodoToRoom(ctx, 1, todo.ID))

	require.NoError(t, svc.CheckTodo(ctx, 1, todo.ID))
	require.NoError(t, svc.CheckTodo(ctx, 1, todo.ID))

	listed, err := svc.ListRoomTodos(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(2), listed[0].Amount)
}

func TestCheckTodoUnknownAssignment(t *testing.T) {
	svc := newTodoService()

	err := svc.CheckTodo(context.Background(), 1, 999)
	assert.ErrorIs(t, err, repository.ErrAssignmentNotFound)
}

func TestCheckTodoConcurrent(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, "drink water")
	require.NoError(t, err)
	require.NoError(t, svc.AddTodoToRoom(ctx, 1, todo.ID))

	const callers = 8
	const callsPerCaller = 50

	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerCaller; j++ {
				if err := svc.CheckTodo(ctx, 1, todo.ID); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	listed, err := svc.ListRoomTodos(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(callers*callsPerCaller), listed[0].Amount)
}
