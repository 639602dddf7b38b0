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

type MaintenanceController struct {
	maintenanceService services.MaintenanceServiceInterface
	logger             *zap.Logger
}

func NewMaintenanceController(maintenanceService services.MaintenanceServiceInterface, logger *zap.Logger) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService, logger: logger}
}

func (c *MaintenanceController) GetMaintenances(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.maintenanceService.GetMaintenances(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetMaintenances failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Maintenance list", http.StatusOK, total)
}

func (c *MaintenanceController) FindMaintenance(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.FindMaintenance(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Maintenance ticket found", http.StatusOK)
}

func (c *MaintenanceController) CreateMaintenance(ctx echo.Context) error {
	var payload dto.CreateMaintenanceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.CreateMaintenance(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateMaintenance failed", zap.Uint64("equipo_id", payload.EquipoID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Maintenance ticket created", http.StatusCreated)
}

func (c *MaintenanceController) UpdateMaintenance(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateMaintenanceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.UpdateMaintenance(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Maintenance ticket updated", http.StatusOK)
}

// GetOutstanding lists the tickets sites are still waiting on.
func (c *MaintenanceController) GetOutstanding(ctx echo.Context) error {
	res, err := c.maintenanceService.GetOutstanding(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Outstanding maintenance tickets", http.StatusOK)
}

func (c *MaintenanceController) GetDashboard(ctx echo.Context) error {
	res, err := c.maintenanceService.GetDashboard(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Maintenance dashboard", http.StatusOK)
}
