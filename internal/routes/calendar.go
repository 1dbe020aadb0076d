package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runCalendarRouter(
	api *echo.Group,
	requestService *services.RequestService,
	logger *zap.Logger,
) {
	calendarCtrl := controllers.NewCalendarController(requestService, logger)

	api.GET("/calendar", calendarCtrl.MonthView)
}
