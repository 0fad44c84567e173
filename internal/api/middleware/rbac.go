package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

// RBAC admits only requests whose token role is one of allowedRoles. It must
// run after Auth; a request without a role is unauthenticated, not forbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// StaffOnly admits staff members and superusers.
func StaffOnly() echo.MiddlewareFunc {
	return RBAC(domain.RoleStaff, domain.RoleSuperuser)
}

// SuperuserOnly admits superusers; staff members are refused.
func SuperuserOnly() echo.MiddlewareFunc {
	return RBAC(domain.RoleSuperuser)
}
