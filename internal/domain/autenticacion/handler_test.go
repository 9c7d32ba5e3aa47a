package autenticacion

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func doLogin(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	svc, _ := newTestService(t)
	h := NewHandler(svc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/autenticacion/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestHandler_Login(t *testing.T) {
	rec := doLogin(t, `{"nombre_usuario":"ana","contrasena":"secreto"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var sesion Sesion
	json.Unmarshal(rec.Body.Bytes(), &sesion)
	if !sesion.Auth || sesion.Token == "" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_Login_MissingFields(t *testing.T) {
	rec := doLogin(t, `{"nombre_usuario":"ana"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "CamposRequeridos") {
		t.Errorf("expected CamposRequeridos code, got %s", rec.Body.String())
	}
}

func TestHandler_Login_UnknownUser(t *testing.T) {
	rec := doLogin(t, `{"nombre_usuario":"nadie","contrasena":"x"}`)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "UsuarioNoEncontrado") {
		t.Errorf("expected UsuarioNoEncontrado code, got %s", rec.Body.String())
	}
}

func TestHandler_Login_WrongPassword(t *testing.T) {
	rec := doLogin(t, `{"nombre_usuario":"ana","contrasena":"mala"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ContraseñaIncorrecta") {
		t.Errorf("expected ContraseñaIncorrecta code, got %s", rec.Body.String())
	}
}
