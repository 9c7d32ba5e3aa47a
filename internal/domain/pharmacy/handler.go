package pharmacy

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
	medicamento := api.Group("/medicamento")
	medicamento.POST("", h.CreateMedicamento)
	medicamento.GET("", h.ListMedicamentos)
	medicamento.GET("/nombre/:nombreMedicamento", h.FindMedicamentosByNombre)
	medicamento.GET("/principioActivo/:principioActivo", h.FindMedicamentosByPrincipioActivo)
	medicamento.GET("/:idMedicamento", h.GetMedicamento)
	medicamento.PATCH("/:idMedicamento", h.UpdateMedicamento)
	medicamento.DELETE("/:idMedicamento", h.DeleteMedicamento)

	inventario := api.Group("/inventarioMedicamentos")
	inventario.POST("", h.CreateInventario)
	inventario.GET("", h.ListInventario)
	inventario.GET("/inventario/:idInventario", h.GetInventario)
	inventario.GET("/medicamento/:idMedicamento", h.GetInventarioByMedicamento)
	inventario.PATCH("/inventario/:idInventario", h.UpdateInventario)
	inventario.DELETE("/inventario/:idInventario", h.DeleteInventario)

	receta := api.Group("/receta")
	receta.POST("", h.CreateReceta)
	receta.GET("", h.ListRecetas)
	receta.GET("/detalles", h.ListRecetaDetalles)
	receta.GET("/detalles/:idReceta", h.GetRecetaDetalle)
	receta.GET("/paciente/:nhcPaciente", h.FindRecetasByPaciente)
	receta.GET("/medicamento/:idMedicamento", h.FindRecetasByMedicamento)
	receta.GET("/:idReceta", h.GetReceta)
	receta.PATCH("/:idReceta", h.UpdateReceta)
	receta.DELETE("/:idReceta", h.DeleteReceta)
}

func parseID(c echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("el ID proporcionado es inválido")
	}
	return id, nil
}

// -- Medicamento Handlers --

func (h *Handler) CreateMedicamento(c echo.Context) error {
	var m Medicamento
	if err := c.Bind(&m); err != nil {
		return httperr.Write(c, "Error al crear medicamento", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.CreateMedicamento(c.Request().Context(), &m); err != nil {
		return httperr.Write(c, "Error al crear medicamento", err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) GetMedicamento(c echo.Context) error {
	id, err := parseID(c, "idMedicamento")
	if err != nil {
		return httperr.Write(c, "Error al obtener medicamento", err)
	}
	m, err := h.svc.GetMedicamento(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener medicamento con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) FindMedicamentosByNombre(c echo.Context) error {
	meds, err := h.svc.FindMedicamentosByNombre(c.Request().Context(), c.Param("nombreMedicamento"))
	if err != nil {
		return httperr.Write(c, "Error al buscar medicamentos por nombre", err)
	}
	return c.JSON(http.StatusOK, meds)
}

func (h *Handler) FindMedicamentosByPrincipioActivo(c echo.Context) error {
	meds, err := h.svc.FindMedicamentosByPrincipioActivo(c.Request().Context(), c.Param("principioActivo"))
	if err != nil {
		return httperr.Write(c, "Error al buscar medicamentos por principio activo", err)
	}
	return c.JSON(http.StatusOK, meds)
}

func (h *Handler) ListMedicamentos(c echo.Context) error {
	meds, err := h.svc.ListMedicamentos(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener medicamentos", err)
	}
	return c.JSON(http.StatusOK, meds)
}

func (h *Handler) UpdateMedicamento(c echo.Context) error {
	id, err := parseID(c, "idMedicamento")
	if err != nil {
		return httperr.Write(c, "Error al actualizar medicamento", err)
	}
	var upd MedicamentoUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar medicamento", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdateMedicamento(c.Request().Context(), id, &upd); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al actualizar medicamento con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Medicamento con ID %d actualizado exitosamente", id),
	})
}

func (h *Handler) DeleteMedicamento(c echo.Context) error {
	id, err := parseID(c, "idMedicamento")
	if err != nil {
		return httperr.Write(c, "Error al eliminar medicamento", err)
	}
	if err := h.svc.DeleteMedicamento(c.Request().Context(), id); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al eliminar medicamento con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Medicamento con ID %d eliminado exitosamente", id),
	})
}

// -- Inventario Handlers --

func (h *Handler) CreateInventario(c echo.Context) error {
	var inv Inventario
	if err := c.Bind(&inv); err != nil {
		return httperr.Write(c, "Error al crear registro de inventario", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.CreateInventario(c.Request().Context(), &inv); err != nil {
		return httperr.Write(c, "Error al crear registro de inventario", err)
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *Handler) GetInventario(c echo.Context) error {
	id, err := parseID(c, "idInventario")
	if err != nil {
		return httperr.Write(c, "Error al obtener registro de inventario", err)
	}
	inv, err := h.svc.GetInventario(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener registro de inventario con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *Handler) GetInventarioByMedicamento(c echo.Context) error {
	id, err := parseID(c, "idMedicamento")
	if err != nil {
		return httperr.Write(c, "Error al obtener inventario por medicamento", err)
	}
	inv, err := h.svc.GetInventarioByMedicamento(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener inventario del medicamento con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *Handler) ListInventario(c echo.Context) error {
	registros, err := h.svc.ListInventario(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener el inventario", err)
	}
	return c.JSON(http.StatusOK, registros)
}

func (h *Handler) UpdateInventario(c echo.Context) error {
	id, err := parseID(c, "idInventario")
	if err != nil {
		return httperr.Write(c, "Error al actualizar registro de inventario", err)
	}
	var upd InventarioUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar registro de inventario", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdateInventario(c.Request().Context(), id, &upd); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al actualizar registro de inventario con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Registro de inventario con ID %d actualizado exitosamente", id),
	})
}

func (h *Handler) DeleteInventario(c echo.Context) error {
	id, err := parseID(c, "idInventario")
	if err != nil {
		return httperr.Write(c, "Error al eliminar registro de inventario", err)
	}
	if err := h.svc.DeleteInventario(c.Request().Context(), id); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al eliminar registro de inventario con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Registro de inventario con ID %d eliminado exitosamente", id),
	})
}

// -- Receta Handlers --

func (h *Handler) CreateReceta(c echo.Context) error {
	var receta Receta
	if err := c.Bind(&receta); err != nil {
		return httperr.Write(c, "Error al crear receta", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.CreateReceta(c.Request().Context(), &receta); err != nil {
		return httperr.Write(c, "Error al crear receta", err)
	}
	return c.JSON(http.StatusCreated, receta)
}

func (h *Handler) GetReceta(c echo.Context) error {
	id, err := parseID(c, "idReceta")
	if err != nil {
		return httperr.Write(c, "Error al obtener receta", err)
	}
	receta, err := h.svc.GetReceta(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener receta con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, receta)
}

func (h *Handler) FindRecetasByPaciente(c echo.Context) error {
	nhc, err := parseID(c, "nhcPaciente")
	if err != nil {
		return httperr.Write(c, "Error al buscar recetas por paciente", err)
	}
	recetas, err := h.svc.FindRecetasByPaciente(c.Request().Context(), nhc)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al buscar recetas del paciente con NHC %d", nhc), err)
	}
	return c.JSON(http.StatusOK, recetas)
}

func (h *Handler) FindRecetasByMedicamento(c echo.Context) error {
	id, err := parseID(c, "idMedicamento")
	if err != nil {
		return httperr.Write(c, "Error al buscar recetas por medicamento", err)
	}
	recetas, err := h.svc.FindRecetasByMedicamento(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al buscar recetas del medicamento con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, recetas)
}

func (h *Handler) ListRecetas(c echo.Context) error {
	recetas, err := h.svc.ListRecetas(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener recetas", err)
	}
	return c.JSON(http.StatusOK, recetas)
}

func (h *Handler) ListRecetaDetalles(c echo.Context) error {
	detalles, err := h.svc.ListRecetaDetalles(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener los detalles de las recetas", err)
	}
	if len(detalles) == 0 {
		return httperr.Write(c, "No se encontraron recetas", apperr.NotFound("receta"))
	}
	return c.JSON(http.StatusOK, detalles)
}

func (h *Handler) GetRecetaDetalle(c echo.Context) error {
	id, err := parseID(c, "idReceta")
	if err != nil {
		return httperr.Write(c, "Error al obtener el detalle de la receta", err)
	}
	detalle, err := h.svc.GetRecetaDetalle(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener el detalle de la receta con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, detalle)
}

func (h *Handler) UpdateReceta(c echo.Context) error {
	id, err := parseID(c, "idReceta")
	if err != nil {
		return httperr.Write(c, "Error al actualizar receta", err)
	}
	var upd RecetaUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar receta", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdateReceta(c.Request().Context(), id, &upd); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al actualizar receta con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Receta con ID %d actualizada exitosamente", id),
	})
}

func (h *Handler) DeleteReceta(c echo.Context) error {
	id, err := parseID(c, "idReceta")
	if err != nil {
		return httperr.Write(c, "Error al eliminar receta", err)
	}
	if err := h.svc.DeleteReceta(c.Request().Context(), id); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al eliminar receta con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Receta con ID %d eliminada exitosamente", id),
	})
}
