package setup

import (
	"github.com/spf13/viper"
	"github.com/uoftclubs/clubs-backend/cmd/app"
	"github.com/uoftclubs/clubs-backend/internal/adapters/controller/http/handlers"
	"github.com/uoftclubs/clubs-backend/internal/adapters/controller/http/middlewares"
)

// Setup registers all API routes on the app's engine.
func Setup(a *app.App) {
	baseURL := viper.GetString("service.http.base-url")

	authHandler := handlers.NewAuthHandler(a.AuthService, a.Logger)
	clubHandler := handlers.NewClubHandler(a.ClubService, a.UserService, a.Logger)
	eventHandler := handlers.NewEventHandler(a.EventService, baseURL, a.Logger)
	inviteHandler := handlers.NewInviteHandler(a.OwnerInviteService, a.CollaboratorInviteService, a.Logger)
	userHandler := handlers.NewUserHandler(a.UserService, a.Logger)

	api := a.Engine.Group("/api/v1")
	protected := api.Group("", middlewares.Auth(a.AuthService))

	api.POST("/auth/code", authHandler.SendCode)
	api.POST("/auth/verify", authHandler.Verify)

	api.GET("/clubs", clubHandler.GetAll)
	api.GET("/clubs/:id", clubHandler.Get)
	api.GET("/clubs/:id/owners", clubHandler.Owners)
	api.GET("/clubs/:id/collaborators", clubHandler.Collaborators)
	api.GET("/clubs/:id/events/active", clubHandler.ActiveEvents)
	api.GET("/clubs/:id/events/inactive", clubHandler.InactiveEvents)
	protected.POST("/clubs", clubHandler.Create)
	protected.PATCH("/clubs/:id", clubHandler.Edit)
	protected.POST("/clubs/:id/join", clubHandler.Join)

	api.GET("/events/highlights", eventHandler.Highlights)
	api.GET("/events/day", eventHandler.ByDay)
	api.GET("/events/:id", eventHandler.Get)
	api.GET("/events/:id/qr", eventHandler.QR)
	protected.POST("/events", eventHandler.Create)
	protected.PATCH("/events/:id", eventHandler.Edit)
	protected.DELETE("/events/:id", eventHandler.Delete)

	protected.POST("/invites/owner", inviteHandler.SendOwner)
	protected.POST("/invites/collaborator", inviteHandler.SendCollaborator)

	protected.GET("/users/me", userHandler.Me)
	protected.PATCH("/users/me", userHandler.Edit)
}
