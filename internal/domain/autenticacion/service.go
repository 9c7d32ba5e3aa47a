// Package autenticacion exchanges user credentials for the signed bearer
// tokens that unlock the /api routes.
package autenticacion

import (
	"context"
	"net/http"

	"github.com/clinsalud/api/internal/domain/admin"
	"github.com/clinsalud/api/internal/platform/apperr"
	"github.com/clinsalud/api/internal/platform/auth"
)

type Credenciales struct {
	NombreUsuario string `json:"nombre_usuario"`
	Contrasena    string `json:"contrasena"`
}

// Sesion is the successful login response.
type Sesion struct {
	Auth  bool   `json:"auth"`
	Token string `json:"token"`
}

type Service struct {
	usuarios admin.UsuarioRepository
	hasher   *auth.PasswordHasher
	issuer   *auth.TokenIssuer
}

func NewService(usuarios admin.UsuarioRepository, hasher *auth.PasswordHasher, issuer *auth.TokenIssuer) *Service {
	return &Service{usuarios: usuarios, hasher: hasher, issuer: issuer}
}

// Login verifies the credentials and issues a token. The error codes mirror
// the three failure modes clients distinguish: missing fields, unknown user
// and wrong password.
func (s *Service) Login(ctx context.Context, cred *Credenciales) (*Sesion, error) {
	if cred.NombreUsuario == "" || cred.Contrasena == "" {
		return nil, &apperr.AuthError{
			Codigo:  "CamposRequeridos",
			Mensaje: "Nombre de usuario y contraseña son requeridos.",
			Status:  http.StatusBadRequest,
		}
	}

	usuario, err := s.usuarios.GetByNombreUsuario(ctx, cred.NombreUsuario)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, &apperr.AuthError{
				Codigo:  "UsuarioNoEncontrado",
				Mensaje: "Nombre de usuario no registrado.",
				Status:  http.StatusNotFound,
			}
		}
		return nil, err
	}

	if !s.hasher.Compare(usuario.Contrasena, cred.Contrasena) {
		return nil, &apperr.AuthError{
			Codigo:  "ContraseñaIncorrecta",
			Mensaje: "La contraseña es incorrecta, por favor revise los datos introducidos.",
			Status:  http.StatusUnauthorized,
		}
	}

	token, err := s.issuer.Issue(usuario.IDUsuario)
	if err != nil {
		return nil, apperr.Storage("firmar token", err)
	}
	return &Sesion{Auth: true, Token: token}, nil
}
