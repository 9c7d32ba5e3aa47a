package identity

import (
	"fmt"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(api *echo.Group) {
	persona := api.Group("/persona")
	persona.POST("", h.CreatePersona)
	persona.GET("", h.ListPersonas)
	persona.GET("/carnet/:carnetIdentidad", h.GetPersonaByCarnet)
	persona.GET("/nombre/:nombre", h.FindPersonasByNombre)
	persona.GET("/apellido1/:apellido1", h.FindPersonasByApellido1)
	persona.GET("/apellido2/:apellido2", h.FindPersonasByApellido2)
	persona.GET("/ordenados/nombre", h.ListPersonasOrdenadasPorNombre)
	persona.GET("/ordenados/apellidos", h.ListPersonasOrdenadasPorApellidos)
	persona.GET("/:personaId", h.GetPersona)
	persona.PATCH("/:personaId", h.UpdatePersona)
	persona.DELETE("/:personaId", h.DeletePersona)

	paciente := api.Group("/paciente")
	paciente.POST("", h.CreatePaciente)
	paciente.POST("/conPersona", h.CreatePacienteConPersona)
	paciente.GET("", h.ListPacientes)
	paciente.GET("/detalle/:NHC", h.GetPacienteDetalle)
	paciente.GET("/:NHC", h.GetPaciente)
	paciente.PATCH("/conPersona/:NHC", h.UpdatePacienteConPersona)
	paciente.PATCH("/:NHC", h.UpdatePaciente)
	paciente.DELETE("/:NHC", h.DeletePaciente)
}

func parseID(c echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("el ID proporcionado es inválido")
	}
	return id, nil
}

// -- Persona Handlers --

func (h *Handler) CreatePersona(c echo.Context) error {
	var persona Persona
	if err := c.Bind(&persona); err != nil {
		return httperr.Write(c, "Error al crear persona", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.CreatePersona(c.Request().Context(), &persona); err != nil {
		return httperr.Write(c, "Error al crear persona", err)
	}
	return c.JSON(http.StatusCreated, persona)
}

func (h *Handler) GetPersona(c echo.Context) error {
	id, err := parseID(c, "personaId")
	if err != nil {
		return httperr.Write(c, "Error al obtener persona", err)
	}
	persona, err := h.svc.GetPersona(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener persona con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, persona)
}

func (h *Handler) GetPersonaByCarnet(c echo.Context) error {
	carnet := c.Param("carnetIdentidad")
	persona, err := h.svc.GetPersonaByCarnet(c.Request().Context(), carnet)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al buscar persona con carnet %s", carnet), err)
	}
	return c.JSON(http.StatusOK, persona)
}

func (h *Handler) FindPersonasByNombre(c echo.Context) error {
	personas, err := h.svc.FindPersonasByNombre(c.Request().Context(), c.Param("nombre"))
	if err != nil {
		return httperr.Write(c, "Error al buscar personas por nombre", err)
	}
	return c.JSON(http.StatusOK, personas)
}

func (h *Handler) FindPersonasByApellido1(c echo.Context) error {
	personas, err := h.svc.FindPersonasByApellido1(c.Request().Context(), c.Param("apellido1"))
	if err != nil {
		return httperr.Write(c, "Error al buscar personas por primer apellido", err)
	}
	return c.JSON(http.StatusOK, personas)
}

func (h *Handler) FindPersonasByApellido2(c echo.Context) error {
	personas, err := h.svc.FindPersonasByApellido2(c.Request().Context(), c.Param("apellido2"))
	if err != nil {
		return httperr.Write(c, "Error al buscar personas por segundo apellido", err)
	}
	return c.JSON(http.StatusOK, personas)
}

func (h *Handler) ListPersonas(c echo.Context) error {
	personas, err := h.svc.ListPersonas(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener personas", err)
	}
	return c.JSON(http.StatusOK, personas)
}

func (h *Handler) ListPersonasOrdenadasPorNombre(c echo.Context) error {
	personas, err := h.svc.ListPersonasOrdenadasPorNombre(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener personas ordenadas por nombre", err)
	}
	return c.JSON(http.StatusOK, personas)
}

func (h *Handler) ListPersonasOrdenadasPorApellidos(c echo.Context) error {
	personas, err := h.svc.ListPersonasOrdenadasPorApellidos(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener personas ordenadas por apellidos", err)
	}
	return c.JSON(http.StatusOK, personas)
}

func (h *Handler) UpdatePersona(c echo.Context) error {
	id, err := parseID(c, "personaId")
	if err != nil {
		return httperr.Write(c, "Error al actualizar persona", err)
	}
	var upd PersonaUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar persona", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdatePersona(c.Request().Context(), id, &upd); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al actualizar persona con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Persona con ID %d actualizada exitosamente", id),
	})
}

func (h *Handler) DeletePersona(c echo.Context) error {
	id, err := parseID(c, "personaId")
	if err != nil {
		return httperr.Write(c, "Error al eliminar persona", err)
	}
	if err := h.svc.DeletePersona(c.Request().Context(), id); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al eliminar persona con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Persona con ID %d eliminada exitosamente", id),
	})
}

// -- Paciente Handlers --

func (h *Handler) CreatePaciente(c echo.Context) error {
	var paciente Paciente
	if err := c.Bind(&paciente); err != nil {
		return httperr.Write(c, "Error al crear paciente", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.CreatePaciente(c.Request().Context(), &paciente); err != nil {
		return httperr.Write(c, "Error al crear paciente", err)
	}
	return c.JSON(http.StatusCreated, paciente)
}

func (h *Handler) CreatePacienteConPersona(c echo.Context) error {
	var payload PacienteConPersona
	if err := c.Bind(&payload); err != nil {
		return httperr.Write(c, "Error al crear paciente con persona", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	paciente, err := h.svc.CreatePacienteConPersona(c.Request().Context(), &payload)
	if err != nil {
		return httperr.Write(c, "Error al crear paciente con persona", err)
	}
	return c.JSON(http.StatusCreated, paciente)
}

func (h *Handler) GetPaciente(c echo.Context) error {
	nhc, err := parseID(c, "NHC")
	if err != nil {
		return httperr.Write(c, "Error al obtener paciente", err)
	}
	paciente, err := h.svc.GetPaciente(c.Request().Context(), nhc)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener paciente con NHC %d", nhc), err)
	}
	return c.JSON(http.StatusOK, paciente)
}

func (h *Handler) GetPacienteDetalle(c echo.Context) error {
	nhc, err := parseID(c, "NHC")
	if err != nil {
		return httperr.Write(c, "Error al obtener los datos del paciente", err)
	}
	detalle, err := h.svc.GetPacienteDetalle(c.Request().Context(), nhc)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener los datos del paciente con NHC %d", nhc), err)
	}
	return c.JSON(http.StatusOK, detalle)
}

func (h *Handler) ListPacientes(c echo.Context) error {
	pacientes, err := h.svc.ListPacientes(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener pacientes", err)
	}
	return c.JSON(http.StatusOK, pacientes)
}

func (h *Handler) UpdatePaciente(c echo.Context) error {
	nhc, err := parseID(c, "NHC")
	if err != nil {
		return httperr.Write(c, "Error al actualizar paciente", err)
	}
	var upd PacienteUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar paciente", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdatePaciente(c.Request().Context(), nhc, &upd); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al actualizar paciente con NHC %d", nhc), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Paciente con NHC %d actualizado exitosamente", nhc),
	})
}

func (h *Handler) UpdatePacienteConPersona(c echo.Context) error {
	nhc, err := parseID(c, "NHC")
	if err != nil {
		return httperr.Write(c, "Error al actualizar paciente con persona", err)
	}
	var upd PacienteConPersonaUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar paciente con persona", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdatePacienteConPersona(c.Request().Context(), nhc, &upd); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al actualizar paciente con NHC %d", nhc), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Paciente con NHC %d y su persona actualizados exitosamente", nhc),
	})
}

func (h *Handler) DeletePaciente(c echo.Context) error {
	nhc, err := parseID(c, "NHC")
	if err != nil {
		return httperr.Write(c, "Error al eliminar paciente", err)
	}
	if err := h.svc.DeletePaciente(c.Request().Context(), nhc); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al eliminar paciente con NHC %d", nhc), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Paciente con NHC %d eliminado exitosamente", nhc),
	})
}
