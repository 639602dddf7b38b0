package controllers

import (
	"net/http"

	"fleet-system/internal/services"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UploadController struct {
	uploadService services.UploadServiceInterface
	logger        *zap.Logger
}

func NewUploadController(uploadService services.UploadServiceInterface, logger *zap.Logger) *UploadController {
	return &UploadController{uploadService: uploadService, logger: logger}
}

// UploadInspectionPhoto accepts one multipart photo under the "file" field and
// returns its URL and public id for the inspection payload.
func (c *UploadController) UploadInspectionPhoto(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Missing file in request", err, nil),
			c.logger)
	}

	res, err := c.uploadService.UploadInspectionPhoto(fileHeader)
	if err != nil {
		c.logger.Error("UploadInspectionPhoto failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Photo uploaded", http.StatusCreated)
}
