package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(secureGroup *echo.Group, ctrl *controllers.DashboardController) {
	secureGroup.GET("/dashboard", ctrl.GetFleetDashboard)
	secureGroup.GET("/obras", ctrl.GetActiveSites)
}
