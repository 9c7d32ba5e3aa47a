package clinical

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

func (h *Handler) RegisterRoutes(g *echo.Group) {
	episodios := g.Group("/episodio")
	episodios.POST("", h.CreateEpisodio)
	episodios.GET("", h.ListEpisodios)
	episodios.GET("/paciente/:NHC_paciente", h.FindEpisodiosByPaciente)
	episodios.GET("/:idEpisodio", h.GetEpisodio)
	episodios.PATCH("/:idEpisodio", h.UpdateEpisodio)
	episodios.DELETE("/:idEpisodio", h.DeleteEpisodio)

	hces := g.Group("/hce")
	hces.POST("", h.CreateHCE)
	hces.GET("", h.ListHCEs)
	hces.GET("/:NHC_paciente", h.GetHCE)
	hces.PATCH("/:NHC_paciente", h.UpdateHCE)
	hces.DELETE("/:NHC_paciente", h.DeleteHCE)

	datos := g.Group("/datosAntropometricos")
	datos.POST("", h.CreateDato)
	datos.GET("", h.ListDatos)
	datos.GET("/paciente/:NHC_paciente", h.FindDatosByPaciente)
	datos.GET("/:idDatoAntropometrico", h.GetDato)
	datos.PATCH("/:idDatoAntropometrico", h.UpdateDato)
	datos.DELETE("/:idDatoAntropometrico", h.DeleteDato)
}

func parseID(c echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("el ID proporcionado es inválido")
	}
	return id, nil
}

// -- Episodio --

func (h *Handler) CreateEpisodio(c echo.Context) error {
	var episodio Episodio
	if err := c.Bind(&episodio); err != nil {
		return httperr.Write(c, "Error al crear el episodio", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.CreateEpisodio(c.Request().Context(), &episodio); err != nil {
		return httperr.Write(c, "Error al crear el episodio", err)
	}
	return c.JSON(http.StatusCreated, episodio)
}

func (h *Handler) ListEpisodios(c echo.Context) error {
	episodios, err := h.svc.ListEpisodios(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener los episodios", err)
	}
	if episodios == nil {
		episodios = []*Episodio{}
	}
	return c.JSON(http.StatusOK, episodios)
}

func (h *Handler) GetEpisodio(c echo.Context) error {
	id, err := parseID(c, "idEpisodio")
	if err != nil {
		return httperr.Write(c, "Error al obtener el episodio", err)
	}
	episodio, err := h.svc.GetEpisodio(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, "Error al obtener el episodio", err)
	}
	return c.JSON(http.StatusOK, episodio)
}

func (h *Handler) FindEpisodiosByPaciente(c echo.Context) error {
	nhc, err := parseID(c, "NHC_paciente")
	if err != nil {
		return httperr.Write(c, "Error al obtener los episodios", err)
	}
	episodios, err := h.svc.FindEpisodiosByPaciente(c.Request().Context(), nhc)
	if err != nil {
		return httperr.Write(c, "Error al obtener los episodios", err)
	}
	if len(episodios) == 0 {
		return httperr.Write(c, "Error al obtener los episodios", apperr.NotFound("episodios del paciente"))
	}
	return c.JSON(http.StatusOK, episodios)
}

func (h *Handler) UpdateEpisodio(c echo.Context) error {
	id, err := parseID(c, "idEpisodio")
	if err != nil {
		return httperr.Write(c, "Error al actualizar el episodio", err)
	}
	var upd EpisodioUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar el episodio", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdateEpisodio(c.Request().Context(), id, &upd); err != nil {
		return httperr.Write(c, "Error al actualizar el episodio", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": fmt.Sprintf("Episodio con ID %d actualizado exitosamente", id)})
}

func (h *Handler) DeleteEpisodio(c echo.Context) error {
	id, err := parseID(c, "idEpisodio")
	if err != nil {
		return httperr.Write(c, "Error al eliminar el episodio", err)
	}
	if err := h.svc.DeleteEpisodio(c.Request().Context(), id); err != nil {
		return httperr.Write(c, "Error al eliminar el episodio", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": fmt.Sprintf("Episodio con ID %d eliminado exitosamente", id)})
}

// -- HCE --

func (h *Handler) CreateHCE(c echo.Context) error {
	var hce HCE
	if err := c.Bind(&hce); err != nil {
		return httperr.Write(c, "Error al crear la HCE", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.CreateHCE(c.Request().Context(), &hce); err != nil {
		return httperr.Write(c, "Error al crear la HCE", err)
	}
	return c.JSON(http.StatusCreated, hce)
}

func (h *Handler) ListHCEs(c echo.Context) error {
	hces, err := h.svc.ListHCEs(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener las HCEs", err)
	}
	if hces == nil {
		hces = []*HCE{}
	}
	return c.JSON(http.StatusOK, hces)
}

func (h *Handler) GetHCE(c echo.Context) error {
	nhc, err := parseID(c, "NHC_paciente")
	if err != nil {
		return httperr.Write(c, "Error al obtener la HCE", err)
	}
	hce, err := h.svc.GetHCE(c.Request().Context(), nhc)
	if err != nil {
		return httperr.Write(c, "Error al obtener la HCE", err)
	}
	return c.JSON(http.StatusOK, hce)
}

func (h *Handler) UpdateHCE(c echo.Context) error {
	nhc, err := parseID(c, "NHC_paciente")
	if err != nil {
		return httperr.Write(c, "Error al actualizar la HCE", err)
	}
	var upd HCEUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar la HCE", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdateHCE(c.Request().Context(), nhc, &upd); err != nil {
		return httperr.Write(c, "Error al actualizar la HCE", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": fmt.Sprintf("HCE del paciente con NHC %d actualizada exitosamente", nhc)})
}

func (h *Handler) DeleteHCE(c echo.Context) error {
	nhc, err := parseID(c, "NHC_paciente")
	if err != nil {
		return httperr.Write(c, "Error al eliminar la HCE", err)
	}
	if err := h.svc.DeleteHCE(c.Request().Context(), nhc); err != nil {
		return httperr.Write(c, "Error al eliminar la HCE", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": fmt.Sprintf("HCE del paciente con NHC %d eliminada exitosamente", nhc)})
}

// -- DatoAntropometrico --

func (h *Handler) CreateDato(c echo.Context) error {
	var dato DatoAntropometrico
	if err := c.Bind(&dato); err != nil {
		return httperr.Write(c, "Error al crear los datos antropométricos", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.CreateDato(c.Request().Context(), &dato); err != nil {
		return httperr.Write(c, "Error al crear los datos antropométricos", err)
	}
	return c.JSON(http.StatusCreated, dato)
}

func (h *Handler) ListDatos(c echo.Context) error {
	datos, err := h.svc.ListDatos(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener los datos antropométricos", err)
	}
	if datos == nil {
		datos = []*DatoAntropometrico{}
	}
	return c.JSON(http.StatusOK, datos)
}

func (h *Handler) GetDato(c echo.Context) error {
	id, err := parseID(c, "idDatoAntropometrico")
	if err != nil {
		return httperr.Write(c, "Error al obtener los datos antropométricos", err)
	}
	dato, err := h.svc.GetDato(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, "Error al obtener los datos antropométricos", err)
	}
	return c.JSON(http.StatusOK, dato)
}

func (h *Handler) FindDatosByPaciente(c echo.Context) error {
	nhc, err := parseID(c, "NHC_paciente")
	if err != nil {
		return httperr.Write(c, "Error al obtener los datos antropométricos", err)
	}
	datos, err := h.svc.FindDatosByPaciente(c.Request().Context(), nhc)
	if err != nil {
		return httperr.Write(c, "Error al obtener los datos antropométricos", err)
	}
	if datos == nil {
		datos = []*DatoAntropometrico{}
	}
	return c.JSON(http.StatusOK, datos)
}

func (h *Handler) UpdateDato(c echo.Context) error {
	id, err := parseID(c, "idDatoAntropometrico")
	if err != nil {
		return httperr.Write(c, "Error al actualizar los datos antropométricos", err)
	}
	var upd DatoAntropometricoUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar los datos antropométricos", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdateDato(c.Request().Context(), id, &upd); err != nil {
		return httperr.Write(c, "Error al actualizar los datos antropométricos", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": fmt.Sprintf("Datos antropométricos con ID %d actualizados exitosamente", id)})
}

func (h *Handler) DeleteDato(c echo.Context) error {
	id, err := parseID(c, "idDatoAntropometrico")
	if err != nil {
		return httperr.Write(c, "Error al eliminar los datos antropométricos", err)
	}
	if err := h.svc.DeleteDato(c.Request().Context(), id); err != nil {
		return httperr.Write(c, "Error al eliminar los datos antropométricos", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": fmt.Sprintf("Datos antropométricos con ID %d eliminados exitosamente", id)})
}
