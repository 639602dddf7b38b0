package controllers

import (
	"strconv"

	"fleet-system/pkg/contextkeys"
	apperrors "fleet-system/pkg/errors"

	"github.com/labstack/echo/v4"
)

func parseIDParam(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewInvalidInputError("invalid %s parameter %q", name, ctx.Param(name))
	}
	return id, nil
}

// identityFromContext returns the id and display name the auth middleware
// stamped into the request context.
func identityFromContext(ctx echo.Context) (uint64, string, error) {
	reqCtx := ctx.Request().Context()
	userID, ok := reqCtx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, "", apperrors.ErrUserNotFoundInContext
	}
	userName, _ := reqCtx.Value(contextkeys.UserNameKey).(string)
	return userID, userName, nil
}
