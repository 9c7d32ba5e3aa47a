package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logger emits one structured line per request once the handler chain
// finished, carrying the id assigned by RequestID.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			inicio := time.Now()
			req := c.Request()
			rid, _ := c.Get("request_id").(string)

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			evt.
				Str("request_id", rid).
				Str("metodo", req.Method).
				Str("ruta", req.URL.Path).
				Int("estado", c.Response().Status).
				Dur("duracion", time.Since(inicio)).
				Str("ip", c.RealIP()).
				Msg("solicitud")

			return err
		}
	}
}
