package identity

import "context"

type PersonaRepository interface {
	Create(ctx context.Context, persona *Persona) error
	GetByID(ctx context.Context, id int64) (*Persona, error)
	GetByCarnet(ctx context.Context, carnet string) (*Persona, error)
	FindByNombre(ctx context.Context, nombre string) ([]*Persona, error)
	FindByApellido1(ctx context.Context, apellido string) ([]*Persona, error)
	FindByApellido2(ctx context.Context, apellido string) ([]*Persona, error)
	List(ctx context.Context) ([]*Persona, error)
	ListOrdenadasPorNombre(ctx context.Context) ([]*Persona, error)
	ListOrdenadasPorApellidos(ctx context.Context) ([]*Persona, error)
	Update(ctx context.Context, id int64, upd *PersonaUpdate) error
	Delete(ctx context.Context, id int64) error
}

type PacienteRepository interface {
	Create(ctx context.Context, paciente *Paciente) error
	GetByNHC(ctx context.Context, nhc int64) (*Paciente, error)
	GetDetalle(ctx context.Context, nhc int64) (*PacienteDetalle, error)
	List(ctx context.Context) ([]*Paciente, error)
	Update(ctx context.Context, nhc int64, upd *PacienteUpdate) error
	Delete(ctx context.Context, nhc int64) error
}
