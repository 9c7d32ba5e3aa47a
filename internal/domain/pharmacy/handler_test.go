package pharmacy

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
	svc, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func TestHandler_CreateMedicamento(t *testing.T) {
	h, e := newTestHandler()

	body := `{"nombre_medicamento":"Paracetamol","fecha_caducidad":"2027-01-31"}`
	req := httptest.NewRequest(http.MethodPost, "/api/medicamento", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateMedicamento(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var med Medicamento
	json.Unmarshal(rec.Body.Bytes(), &med)
	if med.FechaCaducidad == nil || med.FechaCaducidad.String() != "2027-01-31" {
		t.Errorf("expected parsed fecha_caducidad, got %v", med.FechaCaducidad)
	}
}

func TestHandler_GetMedicamento_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idMedicamento")
	c.SetParamValues("3")

	if err := h.GetMedicamento(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_CreateInventario_MissingMedicamento(t *testing.T) {
	h, e := newTestHandler()

	body := `{"idMedicamento":9,"cantidad_actual":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/inventarioMedicamentos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateInventario(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing medicamento, got %d", rec.Code)
	}
}

func TestHandler_UpdateReceta_NoFields(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idReceta")
	c.SetParamValues("1")

	if err := h.UpdateReceta(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_ListRecetas_Empty(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/receta", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListRecetas(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected 200 [], got %d %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_ListRecetaDetalles_Empty(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/receta/detalles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListRecetaDetalles(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for empty detail listing, got %d", rec.Code)
	}
}

func TestHandler_DeleteMedicamento(t *testing.T) {
	h, e := newTestHandler()
	h.svc.CreateMedicamento(context.Background(), &Medicamento{NombreMedicamento: "Paracetamol"})

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idMedicamento")
	c.SetParamValues("1")

	if err := h.DeleteMedicamento(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "eliminado exitosamente") {
		t.Errorf("unexpected body: %s", rec.Body.String())
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
		"POST:/api/medicamento",
		"GET:/api/medicamento/principioActivo/:principioActivo",
		"PATCH:/api/medicamento/:idMedicamento",
		"GET:/api/inventarioMedicamentos/inventario/:idInventario",
		"GET:/api/inventarioMedicamentos/medicamento/:idMedicamento",
		"DELETE:/api/inventarioMedicamentos/inventario/:idInventario",
		"GET:/api/receta/detalles",
		"GET:/api/receta/paciente/:nhcPaciente",
		"PATCH:/api/receta/:idReceta",
	}
	for _, path := range expected {
		if !routePaths[path] {
			t.Errorf("missing expected route: %s", path)
		}
	}
}
