package main

import (
	"errors"
	"log/slog"
	"os"

	httpapi "github.com/checkroom/backend/internal/api/http"
	"github.com/checkroom/backend/internal/config"
	"github.com/checkroom/backend/internal/repository"
	"github.com/checkroom/backend/internal/repository/model"
	"github.com/checkroom/backend/internal/service"
	"github.com/checkroom/backend/lib/logger/slogpretty"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	db, err := connectDatabase(cfg.Database)
	if err != nil {
		log.Error("failed to connect database", slog.Any("error", err))
		os.Exit(1)
	}

	adminRepo := repository.NewMySQLAdminRepository(db)
	roomRepo := repository.NewMySQLRoomRepository(db)
	todoRepo := repository.NewMySQLTodoRepository(db)
	assignmentRepo := repository.NewMySQLAssignmentRepository(db)

	adminService := service.NewAdminService(adminRepo, log, cfg.JWT.Secret, cfg.JWT.TTL)
	roomService := service.NewRoomService(roomRepo, log)
	todoService := service.NewTodoService(todoRepo, assignmentRepo, log)

	adminController := httpapi.NewAdminController(adminService)
	userController := httpapi.NewUserController()
	roomController := httpapi.NewRoomController(roomService)
	todoController := httpapi.NewTodoController(todoService)

	router := httpapi.SetupRouter(adminController, userController, roomController, todoController, cfg.JWT.Secret)

	log.Info("starting application", slog.String("addr", cfg.HTTP.Address))
	if err := router.Run(cfg.HTTP.Address); err != nil {
		log.Error("http server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = setupPrettySlog()
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

func connectDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.Name == "" {
		return nil, errors.New("database name is empty")
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	db.AutoMigrate(
		&model.User{},
		&model.Admin{},
		&model.Room{},
		&model.JoinedRoom{},
		&model.Todo{},
		&model.JoinedTodo{},
	)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}
