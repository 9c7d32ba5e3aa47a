package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func TestHandler_CreateRol(t *testing.T) {
	h, e := newTestHandler()

	body := `{"descripcion_rol":"medico"}`
	req := httptest.NewRequest(http.MethodPost, "/api/rol", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateRol(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var rol Rol
	json.Unmarshal(rec.Body.Bytes(), &rol)
	if rol.IDRol == 0 || rol.DescripcionRol != "medico" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_CreateRol_Validation(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/rol", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateRol(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Mensaje string   `json:"mensaje"`
		Errores []string `json:"errores"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Mensaje != "Errores de validación" || len(body.Errores) == 0 {
		t.Errorf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestHandler_GetRol_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idRol")
	c.SetParamValues("99")

	if err := h.GetRol(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_GetRol_InvalidID(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idRol")
	c.SetParamValues("abc")

	if err := h.GetRol(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_ListRoles_Empty(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/rol", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListRoles(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestHandler_CreateUsuario_HidesPassword(t *testing.T) {
	h, e := newTestHandler()
	h.svc.CreateRol(context.Background(), &Rol{DescripcionRol: "medico"})

	body := `{"nombre_usuario":"ana","contrasena":"secreto","rol_usuario":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/usuario", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateUsuario(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "contrasena") || strings.Contains(rec.Body.String(), "secreto") {
		t.Errorf("password leaked in response: %s", rec.Body.String())
	}
}

func TestHandler_UpdateUsuario(t *testing.T) {
	h, e := newTestHandler()
	h.svc.CreateRol(context.Background(), &Rol{DescripcionRol: "medico"})
	h.svc.CreateUsuario(context.Background(), &UsuarioNuevo{
		NombreUsuario: "ana", Contrasena: "x", RolUsuario: 1,
	})

	body := `{"nombre_usuario":"ana.maria"}`
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("usuarioId")
	c.SetParamValues("1")

	if err := h.UpdateUsuario(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "actualizado exitosamente") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_UpdateUsuario_NoFields(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("usuarioId")
	c.SetParamValues("1")

	if err := h.UpdateUsuario(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_ListUsuarioDetalles_Empty(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/usuario/detalles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListUsuarioDetalles(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for empty detail listing, got %d", rec.Code)
	}
}

func TestHandler_RegisterRoutes(t *testing.T) {
	h, e := newTestHandler()
	h.RegisterRoutes(e.Group("/api"))

	routePaths := make(map[string]bool)
	for _, r := range e.Routes() {
		routePaths[r.Method+":"+r.Path] = true
	}

	expected := []string{
		"POST:/api/rol",
		"GET:/api/rol/:idRol",
		"GET:/api/rol/descripcion/:descripcion",
		"PATCH:/api/rol/:idRol",
		"POST:/api/usuario",
		"GET:/api/usuario/ordenadosPorNombre",
		"GET:/api/usuario/detalles/:usuarioId",
		"GET:/api/usuario/nombre/:nombreUsuario",
		"DELETE:/api/usuario/:usuarioId",
	}
	for _, path := range expected {
		if !routePaths[path] {
			t.Errorf("missing expected route: %s", path)
		}
	}
}
