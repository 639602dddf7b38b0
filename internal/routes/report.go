package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runReportRouter(secureGroup *echo.Group, ctrl *controllers.ReportController) {
	secureGroup.GET("/reportes/inspecciones", ctrl.ExportInspections)
}
