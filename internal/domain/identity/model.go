package identity

import "github.com/clinsalud/api/pkg/fecha"

// Persona is the demographic record every other clinical entity hangs off.
type Persona struct {
	IDPersona       int64        `json:"idPersona"`
	CarnetIdentidad *string      `json:"carnet_identidad"`
	Nombre          string       `json:"nombre"`
	Apellido1       string       `json:"apellido1"`
	Apellido2       *string      `json:"apellido2"`
	FechaNacimiento *fecha.Fecha `json:"fecha_nacimiento"`
	Escuela         *string      `json:"escuela"`
	Telefono        *string      `json:"telefono"`
	Email           *string      `json:"email"`
	Departamento    *string      `json:"departamento"`
	Municipio       *string      `json:"municipio"`
	Colonia         *string      `json:"colonia"`
	Direccion       *string      `json:"direccion"`
}

// PersonaUpdate carries the patchable fields of a Persona.
type PersonaUpdate struct {
	CarnetIdentidad *string      `json:"carnet_identidad"`
	Nombre          *string      `json:"nombre"`
	Apellido1       *string      `json:"apellido1"`
	Apellido2       *string      `json:"apellido2"`
	FechaNacimiento *fecha.Fecha `json:"fecha_nacimiento"`
	Escuela         *string      `json:"escuela"`
	Telefono        *string      `json:"telefono"`
	Email           *string      `json:"email"`
	Departamento    *string      `json:"departamento"`
	Municipio       *string      `json:"municipio"`
	Colonia         *string      `json:"colonia"`
	Direccion       *string      `json:"direccion"`
}

func (u *PersonaUpdate) Empty() bool {
	return u.CarnetIdentidad == nil && u.Nombre == nil && u.Apellido1 == nil &&
		u.Apellido2 == nil && u.FechaNacimiento == nil && u.Escuela == nil &&
		u.Telefono == nil && u.Email == nil && u.Departamento == nil &&
		u.Municipio == nil && u.Colonia == nil && u.Direccion == nil
}

// Paciente extends a Persona with its clinical-history fields. NHC is the
// idPersona of the underlying Persona.
type Paciente struct {
	NHC       int64   `json:"NHC"`
	TutorInfo *string `json:"tutor_info"`
	Grado     *string `json:"grado"`
	OtraInfo  *string `json:"otra_info"`
}

// PacienteUpdate carries the patchable fields of a Paciente. The NHC key is
// deliberately not updatable.
type PacienteUpdate struct {
	TutorInfo *string `json:"tutor_info"`
	Grado     *string `json:"grado"`
	OtraInfo  *string `json:"otra_info"`
}

func (u *PacienteUpdate) Empty() bool {
	return u.TutorInfo == nil && u.Grado == nil && u.OtraInfo == nil
}

// PacienteDetalle is the joined view of a paciente with the demographic
// fields of its persona.
type PacienteDetalle struct {
	NHC             int64        `json:"NHC"`
	Nombre          string       `json:"nombre"`
	Apellido1       string       `json:"apellido1"`
	Apellido2       *string      `json:"apellido2"`
	FechaNacimiento *fecha.Fecha `json:"fecha_nacimiento"`
	Telefono        *string      `json:"telefono"`
	Email           *string      `json:"email"`
	TutorInfo       *string      `json:"tutor_info"`
	Grado           *string      `json:"grado"`
	OtraInfo        *string      `json:"otra_info"`
}

// PacienteConPersona is the payload of the combined create operation: the
// persona and its paciente are inserted in one transaction.
type PacienteConPersona struct {
	Persona  Persona        `json:"persona"`
	Paciente PacienteCampos `json:"paciente"`
}

// PacienteCampos are the paciente-only fields of the combined payloads; the
// NHC is taken from the persona.
type PacienteCampos struct {
	TutorInfo *string `json:"tutor_info"`
	Grado     *string `json:"grado"`
	OtraInfo  *string `json:"otra_info"`
}

// PacienteConPersonaUpdate is the payload of the combined partial update.
type PacienteConPersonaUpdate struct {
	Persona  PersonaUpdate  `json:"persona"`
	Paciente PacienteUpdate `json:"paciente"`
}

func (u *PacienteConPersonaUpdate) Empty() bool {
	return u.Persona.Empty() && u.Paciente.Empty()
}
