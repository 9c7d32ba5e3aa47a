package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const userIDKey contextKey = "id_usuario"

// Middleware is the access gate for every protected route. A request without
// an Authorization header is rejected with 403; a malformed, badly signed or
// expired token with 401. On success the decoded user id is placed in the
// request context and the handler chain continues.
func Middleware(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("Authorization")
			if token == "" {
				return c.JSON(http.StatusForbidden, map[string]string{
					"mensaje": "No se proporcionó token de autenticación.",
				})
			}

			// "Bearer <token>" is the usual form; the bare token is accepted too.
			if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
				token = token[7:]
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"mensaje": "No autorizado. Token inválido o expirado.",
				})
			}

			ctx := context.WithValue(c.Request().Context(), userIDKey, claims.IDUsuario)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id placed in the context
// by the middleware, or 0 when the request was not authenticated.
func UserIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}
