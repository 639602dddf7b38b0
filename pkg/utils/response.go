package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apperrors "fleet-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HTTPResponse{Status: true, Message: message}
	withPagination, _ := strconv.ParseBool(ctx.QueryParam("withPagination"))
	if withPagination && len(total) > 0 {
		filter := ParseFilterFromQuery(ctx.Request().URL.Query())
		totalPages := 0
		if filter.Limit > 0 {
			totalPages = int(total[0]) / filter.Limit
			if int(total[0])%filter.Limit != 0 {
				totalPages++
			}
		}
		pagination := map[string]interface{}{
			"total_count": total[0],
			"page":        filter.Page,
			"limit":       filter.Limit,
			"total_pages": totalPages,
		}
		response.Body = map[string]interface{}{"list": body, "pagination": pagination}
	} else {
		response.Body = body
	}
	return ctx.JSON(code, response)
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed the '%s' rule", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "Validation error: " + strings.Join(msgs, "; "),
		})
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": invalidInput.Message,
		})
	}

	// Consistency errors keep their step detail in the response so drift can
	// be reconciled; everything else stays generic.
	var consistencyErr *apperrors.ConsistencyError
	if errors.As(err, &consistencyErr) {
		logger.Error("Consistency Error",
			zap.String("step", consistencyErr.Step),
			zap.Error(consistencyErr.Err),
		)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  false,
			"message": fmt.Sprintf("Stored data may be inconsistent (failed step: %s). Manual reconciliation required.", consistencyErr.Step),
		})
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  false,
			"message": apperrors.ErrNotFound.Error(),
		})
	}

	if errors.Is(err, apperrors.ErrEmptyAuthHeader) ||
		errors.Is(err, apperrors.ErrInvalidAuthHeader) ||
		errors.Is(err, apperrors.ErrInvalidToken) ||
		errors.Is(err, apperrors.ErrTokenExpired) ||
		errors.Is(err, apperrors.ErrTokenIsNotAccess) ||
		errors.Is(err, apperrors.ErrInvalidCredentials) ||
		errors.Is(err, apperrors.ErrUnauthorized) {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  false,
			"message": err.Error(),
		})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "Internal server error",
	})
}
