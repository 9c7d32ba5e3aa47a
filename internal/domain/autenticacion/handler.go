package autenticacion

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinsalud/api/internal/platform/apperr"
	"github.com/clinsalud/api/internal/platform/httperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts login outside the token-gated /api group.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/autenticacion/login", h.Login)
}

func (h *Handler) Login(c echo.Context) error {
	var cred Credenciales
	if err := c.Bind(&cred); err != nil {
		return httperr.Write(c, "Error en el servidor", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	sesion, err := h.svc.Login(c.Request().Context(), &cred)
	if err != nil {
		return httperr.Write(c, "Error en el servidor.", err)
	}
	return c.JSON(http.StatusOK, sesion)
}
