package scheduling

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newTestHandler(t *testing.T) (*Handler, *Service, *echo.Echo) {
	t.Helper()
	svc, _, _ := newTestService()
	return NewHandler(svc), svc, echo.New()
}

func TestHandler_CreateAgenda(t *testing.T) {
	h, _, e := newTestHandler(t)

	body := `{"descripcion":"Pediatría","horario":"Lunes a viernes 8:00-14:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/agenda", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateAgenda(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var agenda Agenda
	json.Unmarshal(rec.Body.Bytes(), &agenda)
	if agenda.IDAgenda == 0 {
		t.Errorf("expected assigned idAgenda, got %+v", agenda)
	}
}

func TestHandler_CreateCita_Validacion(t *testing.T) {
	h, _, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cita", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateCita(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errores []string `json:"errores"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Errores) != 3 {
		t.Errorf("expected 3 errores, got %v", resp.Errores)
	}
}

func TestHandler_GetCita_NotFound(t *testing.T) {
	h, _, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idCita")
	c.SetParamValues("8")

	if err := h.GetCita(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_GetAgenda_InvalidID(t *testing.T) {
	h, _, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idAgenda")
	c.SetParamValues("abc")

	if err := h.GetAgenda(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_FindCitasByRange_QueryParams(t *testing.T) {
	h, svc, e := newTestHandler(t)
	agenda := seedAgenda(t, svc, "Pediatría")
	seedCita(t, svc, agenda.IDAgenda, "2026-03-10")
	seedCita(t, svc, agenda.IDAgenda, "2026-04-01")

	req := httptest.NewRequest(http.MethodGet, "/api/cita/porFecha?desde=2026-03-01&hasta=2026-03-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.FindCitasByRange(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var citas []Cita
	json.Unmarshal(rec.Body.Bytes(), &citas)
	if len(citas) != 1 {
		t.Errorf("expected 1 cita in range, got %d", len(citas))
	}
}

func TestHandler_FindCitasByRange_FechaInvalida(t *testing.T) {
	h, _, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cita/porFecha?desde=10-03-2026", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.FindCitasByRange(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_FindCitasByRange_SinParams(t *testing.T) {
	h, svc, e := newTestHandler(t)
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC) }
	agenda := seedAgenda(t, svc, "Pediatría")
	seedCita(t, svc, agenda.IDAgenda, "2026-03-12")

	req := httptest.NewRequest(http.MethodGet, "/api/cita/porFecha", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.FindCitasByRange(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var citas []Cita
	json.Unmarshal(rec.Body.Bytes(), &citas)
	if len(citas) != 1 {
		t.Errorf("expected current-week cita, got %d", len(citas))
	}
}

func TestHandler_ListCitas_Empty(t *testing.T) {
	h, _, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cita", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListCitas(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}

func TestHandler_ListCitaDetalles_Empty(t *testing.T) {
	h, _, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cita/detalles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListCitaDetalles(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for empty detail listing, got %d", rec.Code)
	}
}

func TestHandler_ListCitaDetallesSemana_Empty(t *testing.T) {
	h, _, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cita/citas-semana", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListCitaDetallesSemana(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for empty week listing, got %d", rec.Code)
	}
}

func TestHandler_UpdateCita_Mensaje(t *testing.T) {
	h, svc, e := newTestHandler(t)
	agenda := seedAgenda(t, svc, "Pediatría")
	seedCita(t, svc, agenda.IDAgenda, "2026-03-10")

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"hora":"12:15"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idCita")
	c.SetParamValues("1")

	if err := h.UpdateCita(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Cita con ID 1 actualizada exitosamente") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_DeleteAgenda_Mensaje(t *testing.T) {
	h, svc, e := newTestHandler(t)
	seedAgenda(t, svc, "Pediatría")

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("idAgenda")
	c.SetParamValues("1")

	if err := h.DeleteAgenda(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Agenda con ID 1 eliminada exitosamente") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_RegisterRoutes(t *testing.T) {
	h, _, e := newTestHandler(t)
	h.RegisterRoutes(e.Group("/api"))

	routePaths := make(map[string]bool)
	for _, r := range e.Routes() {
		routePaths[r.Method+":"+r.Path] = true
	}

	expected := []string{
		"POST:/api/agenda",
		"GET:/api/agenda/descripcion/:descripcion",
		"PATCH:/api/agenda/:idAgenda",
		"POST:/api/cita",
		"GET:/api/cita/detalles",
		"GET:/api/cita/porFecha",
		"GET:/api/cita/citas-semana",
		"GET:/api/cita/paciente/:NHC_paciente",
		"GET:/api/cita/doctor/:doctor_id",
		"GET:/api/cita/agenda/nombre/:nombreAgenda",
		"GET:/api/cita/agenda/:agenda_id",
		"DELETE:/api/cita/:idCita",
	}
	for _, path := range expected {
		if !routePaths[path] {
			t.Errorf("missing expected route: %s", path)
		}
	}
}
