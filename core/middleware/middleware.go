package middleware

import (
	"mentorhub/core/cache"
	"mentorhub/core/constants"
	"mentorhub/core/controller"
	"mentorhub/core/errors"
	"mentorhub/core/logger"
	"mentorhub/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the bearer token, rejects blacklisted sessions
// and stores the claims in the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, err := utils.GetTokenFromHeader(ctx)
			if err != nil {
				return controller.NewErrorResponse(
					controller.StatusForCode(errors.ErrMissingAuthorizationHeader),
					errors.ErrMissingAuthorizationHeader, "Missing or malformed authorization header")
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(ctx.Request().Context(), token)
			if err != nil {
				logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted:Error", "error", err)
				return controller.NewErrorResponse(
					controller.StatusForCode(errors.ErrInternalServer),
					errors.ErrInternalServer, "Failed to verify session")
			}
			if blacklisted {
				return controller.NewErrorResponse(
					controller.StatusForCode(errors.ErrUnauthorized),
					errors.ErrUnauthorized, "Session has been signed out")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(
					controller.StatusForCode(errors.ErrUnauthorized),
					errors.ErrUnauthorized, "Invalid or expired token")
			}
			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(
					controller.StatusForCode(errors.ErrUnauthorized),
					errors.ErrUnauthorized, "Token scope not valid for this endpoint")
			}

			ctx.Set(constants.ContextTokenData, claims)
			return next(ctx)
		}
	}
}

// RequireRole gates a route group to the given roles. Runs after
// AuthMiddleware.
func (m *Middleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
			if !ok {
				return controller.NewErrorResponse(
					controller.StatusForCode(errors.ErrUnauthorized),
					errors.ErrUnauthorized, "User not authenticated")
			}
			if _, ok := allowed[claims.Role]; !ok {
				return controller.NewErrorResponse(
					controller.StatusForCode(errors.ErrForbidden),
					errors.ErrForbidden, "Role not permitted for this action")
			}
			return next(ctx)
		}
	}
}
