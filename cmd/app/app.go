package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/uoftclubs/clubs-backend/internal/adapters/config"
	"github.com/uoftclubs/clubs-backend/internal/adapters/database/postgres"
	"github.com/uoftclubs/clubs-backend/internal/domain/service"
	"github.com/uoftclubs/clubs-backend/pkg/logger"
	"github.com/uoftclubs/clubs-backend/pkg/logger/types"
	"github.com/uoftclubs/clubs-backend/pkg/smtp"
	"gorm.io/gorm"
)

// App holds the wired services and the HTTP engine.
type App struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Logger *types.Logger

	AuthService               *service.AuthService
	ClubService               *service.ClubService
	EventService              *service.EventService
	UserService               *service.UserService
	OwnerInviteService        *service.OwnerInviteService
	CollaboratorInviteService *service.CollaboratorInviteService
}

func New(cfg *config.Config) (*App, error) {
	httpLogger, err := logger.Named("http")
	if err != nil {
		return nil, err
	}

	userStorage := postgres.NewUserStorage(cfg.Database)
	clubStorage := postgres.NewClubStorage(cfg.Database)
	eventStorage := postgres.NewEventStorage(cfg.Database)
	ownerStorage := postgres.NewClubOwnerStorage(cfg.Database)
	collaboratorStorage := postgres.NewClubCollaboratorStorage(cfg.Database)
	ownerInviteStorage := postgres.NewOwnerInviteStorage(cfg.Database)
	collaboratorInviteStorage := postgres.NewCollaboratorInviteStorage(cfg.Database)

	mail := smtp.NewClient(cfg.SMTPDialer)

	accessService := service.NewAccessService(userStorage, ownerStorage, collaboratorStorage)
	authService := service.NewAuthService(
		cfg.Redis.Codes,
		userStorage,
		mail,
		viper.GetString("service.auth.jwt-secret"),
		viper.GetDuration("service.auth.code-ttl"),
		viper.GetDuration("service.auth.token-ttl"),
	)
	clubService := service.NewClubService(
		clubStorage,
		ownerInviteStorage,
		eventStorage,
		ownerStorage,
		collaboratorStorage,
		accessService,
		cfg.S3,
	)
	eventService := service.NewEventService(eventStorage, accessService)
	userService := service.NewUserService(userStorage, ownerStorage, collaboratorStorage, collaboratorInviteStorage)
	ownerInviteService := service.NewOwnerInviteService(ownerInviteStorage, mail)
	collaboratorInviteService := service.NewCollaboratorInviteService(collaboratorInviteStorage, clubStorage, accessService, mail)

	if !viper.GetBool("settings.debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	return &App{
		Engine: gin.Default(),
		DB:     cfg.Database,
		Logger: httpLogger,

		AuthService:               authService,
		ClubService:               clubService,
		EventService:              eventService,
		UserService:               userService,
		OwnerInviteService:        ownerInviteService,
		CollaboratorInviteService: collaboratorInviteService,
	}, nil
}

// Start blocks serving HTTP until the listener fails.
func (a *App) Start() {
	addr := fmt.Sprintf("%s:%d",
		viper.GetString("service.http.host"),
		viper.GetInt("service.http.port"),
	)

	logger.Log.Infof("HTTP server starting on %s", addr)
	if err := a.Engine.Run(addr); err != nil {
		logger.Log.Panicf("HTTP server stopped: %v", err)
	}
}
