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

type InspectionController struct {
	inspectionService services.InspectionServiceInterface
	logger            *zap.Logger
}

func NewInspectionController(inspectionService services.InspectionServiceInterface, logger *zap.Logger) *InspectionController {
	return &InspectionController{inspectionService: inspectionService, logger: logger}
}

func (c *InspectionController) GetInspections(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.inspectionService.GetInspections(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetInspections failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Inspection list", http.StatusOK, total)
}

func (c *InspectionController) FindInspection(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.inspectionService.FindInspection(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Inspection found", http.StatusOK)
}

// GetOpenDispatchInspections lists the envíos of one equipment a new
// recepción may reference.
func (c *InspectionController) GetOpenDispatchInspections(ctx echo.Context) error {
	equipoID, err := parseIDParam(ctx, "equipoId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.inspectionService.GetOpenDispatchInspections(ctx.Request().Context(), equipoID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Open dispatch inspections", http.StatusOK)
}

func (c *InspectionController) CreateInspection(ctx echo.Context) error {
	inspectorID, _, err := identityFromContext(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateInspectionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.inspectionService.CreateInspection(ctx.Request().Context(), inspectorID, payload)
	if err != nil {
		c.logger.Error("CreateInspection failed",
			zap.Uint64("equipo_id", payload.EquipoID),
			zap.String("tipo", payload.TipoInspeccion),
			zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Inspection finalized", http.StatusCreated)
}
