package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(secureGroup *echo.Group, ctrl *controllers.EquipmentController) {
	secureGroup.GET("/equipos", ctrl.GetEquipments)
	secureGroup.GET("/equipo/:id", ctrl.FindEquipment)
	secureGroup.POST("/equipo", ctrl.CreateEquipment)
	secureGroup.PUT("/equipo/:id", ctrl.UpdateEquipment)
	secureGroup.PATCH("/equipo/:id/estado-operativo", ctrl.UpdateOperability)
	secureGroup.GET("/equipo/:id/checklist-template", ctrl.GetChecklistTemplate)
}
