// Package httperr maps application errors onto the HTTP response envelope
// used by every handler: {mensaje, error} with the status code dictated by
// the error kind.
package httperr

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinsalud/api/internal/platform/apperr"
)

// ExposeStorageDetails controls whether the raw driver error text is passed
// through in 500 bodies. Set once at startup from configuration.
var ExposeStorageDetails = false

type envelope struct {
	Mensaje string      `json:"mensaje"`
	Error   interface{} `json:"error,omitempty"`
	Errores []string    `json:"errores,omitempty"`
}

// Write renders err with the status its kind maps to. mensaje is the
// operation-level message shown alongside the error detail, e.g.
// "Error al crear el paciente".
func Write(c echo.Context, mensaje string, err error) error {
	if ve, ok := apperr.AsValidation(err); ok {
		return c.JSON(http.StatusBadRequest, envelope{
			Mensaje: "Errores de validación",
			Errores: ve.Errores,
		})
	}
	if apperr.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, envelope{
			Mensaje: mensaje,
			Error:   err.Error(),
		})
	}
	if ae, ok := apperr.AsAuth(err); ok {
		status := ae.Status
		if status == 0 {
			status = http.StatusUnauthorized
		}
		return c.JSON(status, envelope{
			Mensaje: ae.Mensaje,
			Error:   ae.Codigo,
		})
	}

	body := envelope{Mensaje: mensaje}
	if se, ok := apperr.AsStorage(err); ok && ExposeStorageDetails {
		body.Error = se.Error()
	} else if !ok && err != nil && ExposeStorageDetails {
		body.Error = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, body)
}
