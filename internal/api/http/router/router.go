package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mkarpovich/identity-server/internal/api/http/handler"
	"github.com/mkarpovich/identity-server/internal/api/http/middleware"
	"github.com/mkarpovich/identity-server/internal/logger"
	"github.com/mkarpovich/identity-server/internal/model"
	"github.com/mkarpovich/identity-server/internal/service"
)

// Router wires identity handlers onto an Echo instance.
type Router struct {
	userService  *service.UserService
	roleService  *service.RoleService
	tokenService *service.RefreshTokenService
	avatars      model.FileStore
	logger       *logger.Logger
}

// New creates a new Router instance.
func New(
	userService *service.UserService,
	roleService *service.RoleService,
	tokenService *service.RefreshTokenService,
	avatars model.FileStore,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService:  userService,
		roleService:  roleService,
		tokenService: tokenService,
		avatars:      avatars,
		logger:       logger,
	}
}

// Register builds the Echo instance with middleware and all routes.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	logging := middleware.NewLogging(r.logger)
	e.Use(logging.Handle)

	userHandler := handler.NewUser(r.userService, r.tokenService, r.avatars, r.logger)
	authHandler := handler.NewAuth(r.userService, r.tokenService, r.logger)
	roleHandler := handler.NewRole(r.roleService, r.logger)

	api := e.Group("/api/v1")

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	api.POST("/users", userHandler.Register)
	api.GET("/users/:id", userHandler.Get)
	api.PUT("/users/:id", userHandler.Update)
	api.PATCH("/users/:id/avatar", userHandler.PatchAvatar)
	api.PUT("/users/:id/avatar/file", userHandler.UploadAvatar)
	api.GET("/users/:id/avatar/file", userHandler.DownloadAvatar)
	api.POST("/users/:id/roles", userHandler.AssignRole)
	api.POST("/users/:id/claims", userHandler.AddClaim)
	api.DELETE("/users/:id/tokens", userHandler.RevokeTokens)

	api.GET("/roles", userHandler.GetRoles)
	api.POST("/admin/roles", roleHandler.Create)
	api.DELETE("/admin/roles/:name", roleHandler.Delete)

	return e
}
