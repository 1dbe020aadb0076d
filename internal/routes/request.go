package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
	"gearguard/pkg/middleware"
)

func runRequestRouter(
	api *echo.Group,
	requestService *services.RequestService,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	requestCtrl := controllers.NewRequestController(requestService, logger)

	api.GET("/requests", requestCtrl.GetRequests)
	api.GET("/requests/board", requestCtrl.GetBoard)
	api.GET("/requests/:id", requestCtrl.FindRequest)
	api.POST("/requests/corrective", requestCtrl.CreateCorrective, authMW.OptionalAuth)
	api.POST("/requests/preventive", requestCtrl.CreatePreventive, authMW.OptionalAuth)
	api.PATCH("/requests/:id/status", requestCtrl.TransitionStatus)
}
