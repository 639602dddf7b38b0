package routes

import (
	"fleet-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runPurchaseRouter(secureGroup *echo.Group, ctrl *controllers.PurchaseController) {
	secureGroup.GET("/pedidos-compra", ctrl.GetPurchaseOrders)
	secureGroup.GET("/pedido-compra/:id", ctrl.FindPurchaseOrder)
	secureGroup.POST("/pedido-compra", ctrl.CreatePurchaseOrder)
	secureGroup.PATCH("/pedido-compra/:id/estado", ctrl.UpdateState)
}
