package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runEquipmentRouter(
	api *echo.Group,
	equipmentService services.EquipmentServiceInterface,
	logger *zap.Logger,
) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)

	api.GET("/equipment", equipmentCtrl.GetEquipments)
	api.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	api.GET("/equipment/:id/health", equipmentCtrl.GetHealth)
	api.POST("/equipment", equipmentCtrl.CreateEquipment)
}
