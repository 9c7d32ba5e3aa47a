package scheduling

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinsalud/api/internal/platform/apperr"
	"github.com/clinsalud/api/internal/platform/httperr"
	"github.com/clinsalud/api/pkg/fecha"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	agendas := g.Group("/agenda")
	agendas.POST("", h.CreateAgenda)
	agendas.GET("", h.ListAgendas)
	agendas.GET("/descripcion/:descripcion", h.FindAgendasByDescripcion)
	agendas.GET("/:idAgenda", h.GetAgenda)
	agendas.PATCH("/:idAgenda", h.UpdateAgenda)
	agendas.DELETE("/:idAgenda", h.DeleteAgenda)

	citas := g.Group("/cita")
	citas.POST("", h.CreateCita)
	citas.GET("", h.ListCitas)
	citas.GET("/detalles", h.ListCitaDetalles)
	citas.GET("/porFecha", h.FindCitasByRange)
	citas.GET("/citas-semana", h.ListCitaDetallesSemana)
	citas.GET("/paciente/:NHC_paciente", h.FindCitasByPaciente)
	citas.GET("/doctor/:doctor_id", h.FindCitasByDoctor)
	citas.GET("/agenda/nombre/:nombreAgenda", h.FindCitasByNombreAgenda)
	citas.GET("/agenda/:agenda_id", h.FindCitasByAgenda)
	citas.GET("/:idCita", h.GetCita)
	citas.PATCH("/:idCita", h.UpdateCita)
	citas.DELETE("/:idCita", h.DeleteCita)
}

func parseID(c echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("el ID proporcionado es inválido")
	}
	return id, nil
}

// -- Agenda --

func (h *Handler) CreateAgenda(c echo.Context) error {
	var agenda Agenda
	if err := c.Bind(&agenda); err != nil {
		return httperr.Write(c, "Error al crear la agenda", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.CreateAgenda(c.Request().Context(), &agenda); err != nil {
		return httperr.Write(c, "Error al crear la agenda", err)
	}
	return c.JSON(http.StatusCreated, agenda)
}

func (h *Handler) ListAgendas(c echo.Context) error {
	agendas, err := h.svc.ListAgendas(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener las agendas", err)
	}
	if agendas == nil {
		agendas = []*Agenda{}
	}
	return c.JSON(http.StatusOK, agendas)
}

func (h *Handler) GetAgenda(c echo.Context) error {
	id, err := parseID(c, "idAgenda")
	if err != nil {
		return httperr.Write(c, "Error al obtener la agenda", err)
	}
	agenda, err := h.svc.GetAgenda(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, "Error al obtener la agenda", err)
	}
	return c.JSON(http.StatusOK, agenda)
}

func (h *Handler) FindAgendasByDescripcion(c echo.Context) error {
	agendas, err := h.svc.FindAgendasByDescripcion(c.Request().Context(), c.Param("descripcion"))
	if err != nil {
		return httperr.Write(c, "Error al obtener las agendas", err)
	}
	if agendas == nil {
		agendas = []*Agenda{}
	}
	return c.JSON(http.StatusOK, agendas)
}

func (h *Handler) UpdateAgenda(c echo.Context) error {
	id, err := parseID(c, "idAgenda")
	if err != nil {
		return httperr.Write(c, "Error al actualizar la agenda", err)
	}
	var upd AgendaUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar la agenda", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdateAgenda(c.Request().Context(), id, &upd); err != nil {
		return httperr.Write(c, "Error al actualizar la agenda", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": fmt.Sprintf("Agenda con ID %d actualizada exitosamente", id)})
}

func (h *Handler) DeleteAgenda(c echo.Context) error {
	id, err := parseID(c, "idAgenda")
	if err != nil {
		return httperr.Write(c, "Error al eliminar la agenda", err)
	}
	if err := h.svc.DeleteAgenda(c.Request().Context(), id); err != nil {
		return httperr.Write(c, "Error al eliminar la agenda", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": fmt.Sprintf("Agenda con ID %d eliminada exitosamente", id)})
}

// -- Cita --

func (h *Handler) CreateCita(c echo.Context) error {
	var cita Cita
	if err := c.Bind(&cita); err != nil {
		return httperr.Write(c, "Error al crear la cita", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.CreateCita(c.Request().Context(), &cita); err != nil {
		return httperr.Write(c, "Error al crear la cita", err)
	}
	return c.JSON(http.StatusCreated, cita)
}

func (h *Handler) ListCitas(c echo.Context) error {
	citas, err := h.svc.ListCitas(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener las citas", err)
	}
	if citas == nil {
		citas = []*Cita{}
	}
	return c.JSON(http.StatusOK, citas)
}

func (h *Handler) ListCitaDetalles(c echo.Context) error {
	detalles, err := h.svc.ListCitaDetalles(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener los detalles de las citas", err)
	}
	if len(detalles) == 0 {
		return httperr.Write(c, "No se encontraron citas", apperr.NotFound("cita"))
	}
	return c.JSON(http.StatusOK, detalles)
}

// FindCitasByRange reads the desde/hasta query params; without them the
// current week is used.
func (h *Handler) FindCitasByRange(c echo.Context) error {
	var desde, hasta *fecha.Fecha
	if s := c.QueryParam("desde"); s != "" {
		f, err := fecha.Parse(s)
		if err != nil {
			return httperr.Write(c, "Error al obtener las citas", apperr.Validation(err.Error()))
		}
		desde = &f
	}
	if s := c.QueryParam("hasta"); s != "" {
		f, err := fecha.Parse(s)
		if err != nil {
			return httperr.Write(c, "Error al obtener las citas", apperr.Validation(err.Error()))
		}
		hasta = &f
	}
	citas, err := h.svc.FindCitasByRange(c.Request().Context(), desde, hasta)
	if err != nil {
		return httperr.Write(c, "Error al obtener las citas", err)
	}
	if citas == nil {
		citas = []*Cita{}
	}
	return c.JSON(http.StatusOK, citas)
}

func (h *Handler) ListCitaDetallesSemana(c echo.Context) error {
	detalles, err := h.svc.ListCitaDetallesSemanaActual(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener las citas de la semana", err)
	}
	if len(detalles) == 0 {
		return httperr.Write(c, "No se encontraron citas para la semana actual", apperr.NotFound("cita"))
	}
	return c.JSON(http.StatusOK, detalles)
}

func (h *Handler) GetCita(c echo.Context) error {
	id, err := parseID(c, "idCita")
	if err != nil {
		return httperr.Write(c, "Error al obtener la cita", err)
	}
	cita, err := h.svc.GetCita(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, "Error al obtener la cita", err)
	}
	return c.JSON(http.StatusOK, cita)
}

func (h *Handler) FindCitasByPaciente(c echo.Context) error {
	nhc, err := parseID(c, "NHC_paciente")
	if err != nil {
		return httperr.Write(c, "Error al obtener las citas", err)
	}
	citas, err := h.svc.FindCitasByPaciente(c.Request().Context(), nhc)
	if err != nil {
		return httperr.Write(c, "Error al obtener las citas", err)
	}
	if citas == nil {
		citas = []*Cita{}
	}
	return c.JSON(http.StatusOK, citas)
}

func (h *Handler) FindCitasByDoctor(c echo.Context) error {
	doctorID, err := parseID(c, "doctor_id")
	if err != nil {
		return httperr.Write(c, "Error al obtener las citas", err)
	}
	citas, err := h.svc.FindCitasByDoctor(c.Request().Context(), doctorID)
	if err != nil {
		return httperr.Write(c, "Error al obtener las citas", err)
	}
	if citas == nil {
		citas = []*Cita{}
	}
	return c.JSON(http.StatusOK, citas)
}

func (h *Handler) FindCitasByAgenda(c echo.Context) error {
	agendaID, err := parseID(c, "agenda_id")
	if err != nil {
		return httperr.Write(c, "Error al obtener las citas", err)
	}
	citas, err := h.svc.FindCitasByAgenda(c.Request().Context(), agendaID)
	if err != nil {
		return httperr.Write(c, "Error al obtener las citas", err)
	}
	if citas == nil {
		citas = []*Cita{}
	}
	return c.JSON(http.StatusOK, citas)
}

func (h *Handler) FindCitasByNombreAgenda(c echo.Context) error {
	citas, err := h.svc.FindCitasByNombreAgenda(c.Request().Context(), c.Param("nombreAgenda"))
	if err != nil {
		return httperr.Write(c, "Error al obtener las citas", err)
	}
	if citas == nil {
		citas = []*Cita{}
	}
	return c.JSON(http.StatusOK, citas)
}

func (h *Handler) UpdateCita(c echo.Context) error {
	id, err := parseID(c, "idCita")
	if err != nil {
		return httperr.Write(c, "Error al actualizar la cita", err)
	}
	var upd CitaUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar la cita", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdateCita(c.Request().Context(), id, &upd); err != nil {
		return httperr.Write(c, "Error al actualizar la cita", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": fmt.Sprintf("Cita con ID %d actualizada exitosamente", id)})
}

func (h *Handler) DeleteCita(c echo.Context) error {
	id, err := parseID(c, "idCita")
	if err != nil {
		return httperr.Write(c, "Error al eliminar la cita", err)
	}
	if err := h.svc.DeleteCita(c.Request().Context(), id); err != nil {
		return httperr.Write(c, "Error al eliminar la cita", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": fmt.Sprintf("Cita con ID %d eliminada exitosamente", id)})
}
