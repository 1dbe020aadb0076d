package middleware

import (
	"context"
	"strings"

	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth requires a valid bearer token and stores the acting user in the
// request context. It carries identity only: the role claim is recorded but
// never gates an operation.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: token validation failed", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}
		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		c.SetRequest(c.Request().WithContext(m.withActor(c.Request().Context(), claims)))
		return next(c)
	}
}

// OptionalAuth resolves the actor when a token is present but lets anonymous
// requests through. Creation endpoints use it to default createdBy.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if claims, err := m.jwtService.ValidateToken(parts[1]); err == nil && !claims.IsRefreshToken {
					c.SetRequest(c.Request().WithContext(m.withActor(c.Request().Context(), claims)))
				}
			}
		}
		return next(c)
	}
}

func (m *AuthMiddleware) withActor(ctx context.Context, claims *service.JwtCustomClaim) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, contextkeys.UserNameKey, claims.UserName)
	return context.WithValue(ctx, contextkeys.UserRoleKey, claims.Role)
}
