package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runInspectionRouter(secureGroup *echo.Group, ctrl *controllers.InspectionController) {
	secureGroup.GET("/inspecciones", ctrl.GetInspections)
	secureGroup.GET("/inspeccion/:id", ctrl.FindInspection)
	secureGroup.POST("/inspeccion", ctrl.CreateInspection)
	secureGroup.GET("/equipo/:equipoId/inspecciones-envio", ctrl.GetOpenDispatchInspections)
}
