package admin

// Rol is an access profile assignable to users.
type Rol struct {
	IDRol          int64  `json:"idRol"`
	DescripcionRol string `json:"descripcion_rol"`
}

// RolUpdate carries the patchable fields of a Rol. Nil means "leave as is".
type RolUpdate struct {
	DescripcionRol *string `json:"descripcion_rol"`
}

func (u *RolUpdate) Empty() bool {
	return u.DescripcionRol == nil
}

// Usuario is an account that can log into the API. The stored password hash
// never leaves the server.
type Usuario struct {
	IDUsuario     int64  `json:"idUsuario"`
	NombreUsuario string `json:"nombre_usuario"`
	Contrasena    string `json:"-"`
	RolUsuario    int64  `json:"rol_usuario"`
}

// UsuarioNuevo is the create payload; the plaintext contrasena is hashed
// before it reaches the repository.
type UsuarioNuevo struct {
	NombreUsuario string `json:"nombre_usuario"`
	Contrasena    string `json:"contrasena"`
	RolUsuario    int64  `json:"rol_usuario"`
}

// UsuarioUpdate carries the patchable fields of a Usuario.
type UsuarioUpdate struct {
	NombreUsuario *string `json:"nombre_usuario"`
	Contrasena    *string `json:"contrasena"`
	RolUsuario    *int64  `json:"rol_usuario"`
}

func (u *UsuarioUpdate) Empty() bool {
	return u.NombreUsuario == nil && u.Contrasena == nil && u.RolUsuario == nil
}

// UsuarioDetalle is the joined view of a usuario with the email of its
// persona and the description of its rol.
type UsuarioDetalle struct {
	IDUsuario      int64   `json:"idUsuario"`
	NombreUsuario  string  `json:"nombre_usuario"`
	Email          *string `json:"email"`
	DescripcionRol string  `json:"descripcion_rol"`
}
