package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runUploadRouter(secureGroup *echo.Group, ctrl *controllers.UploadController) {
	secureGroup.POST("/uploads/fotos", ctrl.UploadInspectionPhoto)
}
