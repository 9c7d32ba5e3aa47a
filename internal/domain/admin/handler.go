package admin

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
	rol := api.Group("/rol")
	rol.POST("", h.CreateRol)
	rol.GET("", h.ListRoles)
	rol.GET("/:idRol", h.GetRol)
	rol.GET("/descripcion/:descripcion", h.FindRolesByDescripcion)
	rol.PATCH("/:idRol", h.UpdateRol)
	rol.DELETE("/:idRol", h.DeleteRol)

	usuario := api.Group("/usuario")
	usuario.POST("", h.CreateUsuario)
	usuario.GET("", h.ListUsuarios)
	usuario.GET("/ordenadosPorNombre", h.ListUsuariosOrdenadosPorNombre)
	usuario.GET("/detalles", h.ListUsuarioDetalles)
	usuario.GET("/detalles/:usuarioId", h.GetUsuarioDetalle)
	usuario.GET("/nombre/:nombreUsuario", h.GetUsuarioByNombre)
	usuario.GET("/:usuarioId", h.GetUsuario)
	usuario.PATCH("/:usuarioId", h.UpdateUsuario)
	usuario.DELETE("/:usuarioId", h.DeleteUsuario)
}

func parseID(c echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("el ID proporcionado es inválido")
	}
	return id, nil
}

// -- Rol Handlers --

func (h *Handler) CreateRol(c echo.Context) error {
	var rol Rol
	if err := c.Bind(&rol); err != nil {
		return httperr.Write(c, "Error al crear rol", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.CreateRol(c.Request().Context(), &rol); err != nil {
		return httperr.Write(c, "Error al crear rol", err)
	}
	return c.JSON(http.StatusCreated, rol)
}

func (h *Handler) GetRol(c echo.Context) error {
	id, err := parseID(c, "idRol")
	if err != nil {
		return httperr.Write(c, "Error al obtener rol", err)
	}
	rol, err := h.svc.GetRol(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener rol con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, rol)
}

func (h *Handler) FindRolesByDescripcion(c echo.Context) error {
	roles, err := h.svc.FindRolesByDescripcion(c.Request().Context(), c.Param("descripcion"))
	if err != nil {
		return httperr.Write(c, "Error al buscar roles por descripción", err)
	}
	return c.JSON(http.StatusOK, roles)
}

func (h *Handler) ListRoles(c echo.Context) error {
	roles, err := h.svc.ListRoles(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener roles", err)
	}
	return c.JSON(http.StatusOK, roles)
}

func (h *Handler) UpdateRol(c echo.Context) error {
	id, err := parseID(c, "idRol")
	if err != nil {
		return httperr.Write(c, "Error al actualizar rol", err)
	}
	var upd RolUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar rol", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdateRol(c.Request().Context(), id, &upd); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al actualizar rol con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Rol con ID %d actualizado exitosamente", id),
	})
}

func (h *Handler) DeleteRol(c echo.Context) error {
	id, err := parseID(c, "idRol")
	if err != nil {
		return httperr.Write(c, "Error al eliminar rol", err)
	}
	if err := h.svc.DeleteRol(c.Request().Context(), id); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al eliminar rol con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Rol con ID %d eliminado exitosamente", id),
	})
}

// -- Usuario Handlers --

func (h *Handler) CreateUsuario(c echo.Context) error {
	var nuevo UsuarioNuevo
	if err := c.Bind(&nuevo); err != nil {
		return httperr.Write(c, "Error al crear usuario", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	usuario, err := h.svc.CreateUsuario(c.Request().Context(), &nuevo)
	if err != nil {
		return httperr.Write(c, "Error al crear usuario", err)
	}
	return c.JSON(http.StatusCreated, usuario)
}

func (h *Handler) GetUsuario(c echo.Context) error {
	id, err := parseID(c, "usuarioId")
	if err != nil {
		return httperr.Write(c, "Error al obtener usuario", err)
	}
	usuario, err := h.svc.GetUsuario(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener usuario con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, usuario)
}

func (h *Handler) GetUsuarioByNombre(c echo.Context) error {
	nombre := c.Param("nombreUsuario")
	usuario, err := h.svc.GetUsuarioByNombre(c.Request().Context(), nombre)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener usuario con nombre %s", nombre), err)
	}
	return c.JSON(http.StatusOK, usuario)
}

func (h *Handler) ListUsuarios(c echo.Context) error {
	usuarios, err := h.svc.ListUsuarios(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener usuarios", err)
	}
	return c.JSON(http.StatusOK, usuarios)
}

func (h *Handler) ListUsuariosOrdenadosPorNombre(c echo.Context) error {
	usuarios, err := h.svc.ListUsuariosOrdenadosPorNombre(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener usuarios ordenados", err)
	}
	return c.JSON(http.StatusOK, usuarios)
}

func (h *Handler) ListUsuarioDetalles(c echo.Context) error {
	detalles, err := h.svc.ListUsuarioDetalles(c.Request().Context())
	if err != nil {
		return httperr.Write(c, "Error al obtener los detalles de todos los usuarios", err)
	}
	if len(detalles) == 0 {
		return httperr.Write(c, "No se encontraron usuarios", apperr.NotFound("usuario"))
	}
	return c.JSON(http.StatusOK, detalles)
}

func (h *Handler) GetUsuarioDetalle(c echo.Context) error {
	id, err := parseID(c, "usuarioId")
	if err != nil {
		return httperr.Write(c, "Error al obtener los detalles del usuario", err)
	}
	detalle, err := h.svc.GetUsuarioDetalle(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al obtener los detalles del usuario con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, detalle)
}

func (h *Handler) UpdateUsuario(c echo.Context) error {
	id, err := parseID(c, "usuarioId")
	if err != nil {
		return httperr.Write(c, "Error al actualizar usuario", err)
	}
	var upd UsuarioUpdate
	if err := c.Bind(&upd); err != nil {
		return httperr.Write(c, "Error al actualizar usuario", apperr.Validation("cuerpo de la solicitud inválido"))
	}
	if err := h.svc.UpdateUsuario(c.Request().Context(), id, &upd); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al actualizar usuario con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Usuario con ID %d actualizado exitosamente", id),
	})
}

func (h *Handler) DeleteUsuario(c echo.Context) error {
	id, err := parseID(c, "usuarioId")
	if err != nil {
		return httperr.Write(c, "Error al eliminar usuario", err)
	}
	if err := h.svc.DeleteUsuario(c.Request().Context(), id); err != nil {
		return httperr.Write(c, fmt.Sprintf("Error al eliminar usuario con ID %d", id), err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": fmt.Sprintf("Usuario con ID %d eliminado exitosamente", id),
	})
}
