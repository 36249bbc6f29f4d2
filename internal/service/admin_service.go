package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/checkroom/backend/internal/domain"
	"github.com/checkroom/backend/internal/lib/jwt"
	"github.com/checkroom/backend/internal/repository"
	"github.com/checkroom/backend/lib/logger/sl"
)

var ErrInvalidCredentials = errors.New("admin password incorrect")

type AdminService struct {
	admins    repository.AdminRepository
	log       *slog.Logger
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAdminService(admins repository.AdminRepository, log *slog.Logger, jwtSecret string, jwtTTL time.Duration) *AdminService {
	if log == nil {
		log = slog.Default()
	}
	return &AdminService{
		admins:    admins,
		log:       log,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

// Login checks the admin credentials and issues a moderator token.
// The stored password is compared as-is, matching the seeded rows.
func (s *AdminService) Login(ctx context.Context, adminID, password string) (string, error) {
	const op = "service.admin.login"
	log := s.log.With(slog.String("op", op), slog.String("admin_id", adminID))

	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		log.Info("admin lookup failed", sl.Err(err))
		return "", err
	}

	if admin.Password != password {
		log.Info("password mismatch")
		return "", ErrInvalidCredentials
	}

	token, err := jwt.NewToken(domain.AdminSubjectID, domain.RoleAdmin, s.jwtSecret, s.jwtTTL)
	if err != nil {
		log.Error("failed to sign token", sl.Err(err))
		return "", err
	}

	log.Info("admin logged in")
	return token, nil
}
