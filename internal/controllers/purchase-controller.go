package controllers

import (
	"net/http"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PurchaseController struct {
	purchaseService services.PurchaseServiceInterface
	logger          *zap.Logger
}

func NewPurchaseController(purchaseService services.PurchaseServiceInterface, logger *zap.Logger) *PurchaseController {
	return &PurchaseController{purchaseService: purchaseService, logger: logger}
}

func (c *PurchaseController) GetPurchaseOrders(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.purchaseService.GetPurchaseOrders(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetPurchaseOrders failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Purchase order list", http.StatusOK, total)
}

func (c *PurchaseController) FindPurchaseOrder(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.purchaseService.FindPurchaseOrder(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Purchase order found", http.StatusOK)
}

func (c *PurchaseController) CreatePurchaseOrder(ctx echo.Context) error {
	userID, userName, err := identityFromContext(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreatePurchaseOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.purchaseService.CreatePurchaseOrder(ctx.Request().Context(), userID, userName, payload)
	if err != nil {
		c.logger.Error("CreatePurchaseOrder failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Purchase order created", http.StatusCreated)
}

func (c *PurchaseController) UpdateState(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdatePurchaseStateDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.purchaseService.UpdateState(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Purchase order state updated", http.StatusOK)
}
