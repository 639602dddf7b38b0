package controllers

import (
	"net/http"

	"fleet-system/internal/services"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	siteService      services.SiteServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	siteService services.SiteServiceInterface,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		siteService:      siteService,
		logger:           logger,
	}
}

func (c *DashboardController) GetFleetDashboard(ctx echo.Context) error {
	res, err := c.dashboardService.GetFleetDashboard(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetFleetDashboard failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Fleet dashboard", http.StatusOK)
}

func (c *DashboardController) GetActiveSites(ctx echo.Context) error {
	res, err := c.siteService.GetActiveSites(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Active sites", http.StatusOK)
}
