package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
	"gearguard/pkg/middleware"
)

func runAuthRouter(
	api *echo.Group,
	authService services.AuthServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	authCtrl := controllers.NewAuthController(authService, logger)

	group := api.Group("/auth")
	group.POST("/signup", authCtrl.Signup)
	group.POST("/login", authCtrl.Login)
	group.POST("/refresh", authCtrl.Refresh)
	group.GET("/me", authCtrl.Profile, authMW.Auth)
}
