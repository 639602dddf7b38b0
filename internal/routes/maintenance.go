package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runMaintenanceRouter(secureGroup *echo.Group, ctrl *controllers.MaintenanceController) {
	secureGroup.GET("/mantenimientos", ctrl.GetMaintenances)
	secureGroup.GET("/mantenimiento/:id", ctrl.FindMaintenance)
	secureGroup.POST("/mantenimiento", ctrl.CreateMaintenance)
	secureGroup.PUT("/mantenimiento/:id", ctrl.UpdateMaintenance)
	secureGroup.GET("/mantenimientos/pendientes", ctrl.GetOutstanding)
	secureGroup.GET("/mantenimientos/dashboard", ctrl.GetDashboard)
}
