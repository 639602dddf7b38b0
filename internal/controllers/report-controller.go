package controllers

import (
	"fmt"
	"net/http"

	"fleet-system/internal/services"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// ExportInspections streams the inspection history as an xlsx workbook. The
// usual list filters apply (filter[equipo_id], filter[tipo_inspeccion], ...).
func (c *ReportController) ExportInspections(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	buffer, fileName, err := c.reportService.ExportInspections(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("ExportInspections failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return ctx.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buffer.Bytes())
}
