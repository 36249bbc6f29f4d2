package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkroom/backend/internal/domain"
	"github.com/checkroom/backend/internal/lib/jwt"
	"github.com/checkroom/backend/internal/repository"
)

const testSecret = "test-secret"

func newAdminService() (*AdminService, *repository.InMemoryAdminRepository) {
	admins := repository.NewInMemoryAdminRepository()
	return NewAdminService(admins, nil, testSecret, time.Hour), admins
}

func TestAdminLogin(t *testing.T) {
	svc, admins := newAdminService()
	admins.Seed(&domain.Admin{ID: "moderator", Password: "hunter2"})

	token, err := svc.Login(context.Background(), "moderator", "hunter2")
	require.NoError(t, err)

	claims, err := jwt.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, domain.AdminSubjectID, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	svc, admins := newAdminService()
	admins.Seed(&domain.Admin{ID: "moderator", Password: "hunter2"})

	_, err := svc.Login(context.Background(), "moderator", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLoginUnknownAdmin(t *testing.T) {
	svc, _ := newAdminService()

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, repository.ErrAdminNotFound)
}
