package autenticacion

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/clinsalud/api/internal/domain/admin"
	"github.com/clinsalud/api/internal/platform/apperr"
	"github.com/clinsalud/api/internal/platform/auth"
)

type mockUsuarioRepo struct {
	usuarios map[string]*admin.Usuario
}

func (m *mockUsuarioRepo) Create(_ context.Context, u *admin.Usuario) error {
	m.usuarios[u.NombreUsuario] = u
	return nil
}

func (m *mockUsuarioRepo) GetByID(_ context.Context, id int64) (*admin.Usuario, error) {
	for _, u := range m.usuarios {
		if u.IDUsuario == id {
			return u, nil
		}
	}
	return nil, apperr.NotFound("usuario")
}

func (m *mockUsuarioRepo) GetByNombreUsuario(_ context.Context, nombre string) (*admin.Usuario, error) {
	u, ok := m.usuarios[nombre]
	if !ok {
		return nil, apperr.NotFound("usuario")
	}
	return u, nil
}

func (m *mockUsuarioRepo) List(_ context.Context) ([]*admin.Usuario, error) { return nil, nil }
func (m *mockUsuarioRepo) ListOrdenadosPorNombre(_ context.Context) ([]*admin.Usuario, error) {
	return nil, nil
}
func (m *mockUsuarioRepo) ListDetalles(_ context.Context) ([]*admin.UsuarioDetalle, error) {
	return nil, nil
}
func (m *mockUsuarioRepo) GetDetalle(_ context.Context, _ int64) (*admin.UsuarioDetalle, error) {
	return nil, apperr.NotFound("usuario")
}
func (m *mockUsuarioRepo) Update(_ context.Context, _ int64, _ *admin.UsuarioUpdate) error {
	return nil
}
func (m *mockUsuarioRepo) Delete(_ context.Context, _ int64) error { return nil }

func newTestService(t *testing.T) (*Service, *auth.TokenIssuer) {
	t.Helper()
	hasher := auth.NewPasswordHasher(4)
	hashed, err := hasher.Hash("secreto")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &mockUsuarioRepo{usuarios: map[string]*admin.Usuario{
		"ana": {IDUsuario: 7, NombreUsuario: "ana", Contrasena: hashed, RolUsuario: 1},
	}}
	issuer := auth.NewTokenIssuer("clave-de-prueba", 24*time.Hour)
	return NewService(repo, hasher, issuer), issuer
}

func TestLogin(t *testing.T) {
	svc, issuer := newTestService(t)

	sesion, err := svc.Login(context.Background(), &Credenciales{
		NombreUsuario: "ana", Contrasena: "secreto",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sesion.Auth || sesion.Token == "" {
		t.Fatalf("expected auth session, got %+v", sesion)
	}

	claims, err := issuer.Verify(sesion.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.IDUsuario != 7 {
		t.Errorf("expected user id 7 in token, got %d", claims.IDUsuario)
	}
}

func TestLogin_CamposRequeridos(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &Credenciales{NombreUsuario: "ana"})
	ae, ok := apperr.AsAuth(err)
	if !ok {
		t.Fatalf("expected auth error, got %v", err)
	}
	if ae.Codigo != "CamposRequeridos" || ae.Status != http.StatusBadRequest {
		t.Errorf("unexpected auth error: %+v", ae)
	}
}

func TestLogin_UsuarioNoEncontrado(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &Credenciales{
		NombreUsuario: "nadie", Contrasena: "x",
	})
	ae, ok := apperr.AsAuth(err)
	if !ok {
		t.Fatalf("expected auth error, got %v", err)
	}
	if ae.Codigo != "UsuarioNoEncontrado" || ae.Status != http.StatusNotFound {
		t.Errorf("unexpected auth error: %+v", ae)
	}
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &Credenciales{
		NombreUsuario: "ana", Contrasena: "equivocada",
	})
	ae, ok := apperr.AsAuth(err)
	if !ok {
		t.Fatalf("expected auth error, got %v", err)
	}
	if ae.Codigo != "ContraseñaIncorrecta" || ae.Status != http.StatusUnauthorized {
		t.Errorf("unexpected auth error: %+v", ae)
	}
}
