package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

// ctxClaims extracts the identity injected by the Auth middleware. A missing
// user_id or role means the middleware did not run: reject with 401.
func ctxClaims(c echo.Context) (userID int64, role string, err error) {
	userID, _ = c.Get("user_id").(int64)
	role, _ = c.Get("role").(string)
	if userID == 0 || role == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

func isStaff(role string) bool {
	return role == domain.RoleStaff || role == domain.RoleSuperuser
}

// authorizeOwner allows the owner of a record and staff.
func authorizeOwner(ownerID, userID int64, role string) error {
	if ownerID == userID || isStaff(role) {
		return nil
	}
	return domain.ErrForbidden
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// bindAndValidate decodes the body and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
