package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkroom/backend/internal/domain"
	"github.com/checkroom/backend/internal/repository"
)

func newRoomFixture(t *testing.T) (*RoomService, *domain.User) {
	t.Helper()

	users := repository.NewInMemoryUserRepository()
	rooms := repository.NewInMemoryRoomRepository(users)

	creator := domain.NewUser("minji", "minji@example.com", "/img/minji.png")
	require.NoError(t, users.Create(context.Background(), creator))

	return NewRoomService(rooms, nil), creator
}

func TestCreateRoomStartsUnapproved(t *testing.T) {
	svc, creator := newRoomFixture(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, creator.ID, "🔥", "morning run")
	require.NoError(t, err)
	assert.False(t, room.IsApproved)
	assert.Equal(t, creator.ID, room.CreatorID)

	pending, err := svc.ListRooms(ctx, false)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	approved, err := svc.ListRooms(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestCreateRoomRequiresName(t *testing.T) {
	svc, creator := newRoomFixture(t)

	_, err := svc.CreateRoom(context.Background(), creator.ID, "🔥", "")
	assert.Error(t, err)
}

func TestApproveRoomCreatesJoin(t *testing.T) {
	svc, creator := newRoomFixture(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, creator.ID, "🔥", "morning run")
	require.NoError(t, err)

	require.NoError(t, svc.SetApproval(ctx, room.ID, true))

	joined, err := svc.ListJoinedRooms(ctx, creator.ID)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, room.ID, joined[0].ID)
	assert.True(t, joined[0].IsApproved)

	// re-approving must stay idempotent
	require.NoError(t, svc.SetApproval(ctx, room.ID, true))
	joined, err = svc.ListJoinedRooms(ctx, creator.ID)
	require.NoError(t, err)
	assert.Len(t, joined, 1)
}

func TestRejectRoomDoesNotJoin(t *testing.T) {
	svc, creator := newRoomFixture(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, creator.ID, "🔥", "morning run")
	require.NoError(t, err)

	require.NoError(t, svc.SetApproval(ctx, room.ID, false))

	joined, err := svc.ListJoinedRooms(ctx, creator.ID)
	require.NoError(t, err)
	assert.Empty(t, joined)
}

func TestSetApprovalUnknownRoom(t *testing.T) {
	svc, _ := newRoomFixture(t)

	err := svc.SetApproval(context.Background(), 999, true)
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)
}

func TestRoomDetail(t *testing.T) {
	svc, creator := newRoomFixture(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, creator.ID, "🔥", "morning run")
	require.NoError(t, err)

	detail, err := svc.RoomDetail(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, creator.Name, detail.CreatorName)
	assert.Equal(t, "morning run", detail.RoomName)
	assert.Equal(t, "🔥", detail.RoomEmoji)
	assert.Equal(t, room.ID, detail.RoomID)
}

func TestRoomDetailNotFound(t *testing.T) {
	svc, _ := newRoomFixture(t)

	_, err := svc.RoomDetail(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)
}
