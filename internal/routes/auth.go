package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(api *echo.Group, secureGroup *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/login", ctrl.Login)
	api.POST("/auth/refresh", ctrl.Refresh)
	secureGroup.GET("/auth/profile", ctrl.Profile)
}
