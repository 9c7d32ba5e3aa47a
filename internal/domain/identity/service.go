package identity

import (
	"context"

	"github.com/clinsalud/api/internal/platform/apperr"
)

// TxRunner executes fn inside a storage transaction; every repository call
// made with the context fn receives joins that transaction.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	personas  PersonaRepository
	pacientes PacienteRepository
	runTx     TxRunner
}

func NewService(personas PersonaRepository, pacientes PacienteRepository, runTx TxRunner) *Service {
	return &Service{personas: personas, pacientes: pacientes, runTx: runTx}
}

func validarPersona(p *Persona) error {
	var errores []string
	if p.Nombre == "" {
		errores = append(errores, "el nombre es requerido")
	}
	if p.Apellido1 == "" {
		errores = append(errores, "el primer apellido es requerido")
	}
	if len(errores) > 0 {
		return apperr.Validation(errores...)
	}
	return nil
}

// -- Persona --

func (s *Service) CreatePersona(ctx context.Context, persona *Persona) error {
	if err := validarPersona(persona); err != nil {
		return err
	}
	return s.personas.Create(ctx, persona)
}

func (s *Service) GetPersona(ctx context.Context, id int64) (*Persona, error) {
	return s.personas.GetByID(ctx, id)
}

func (s *Service) GetPersonaByCarnet(ctx context.Context, carnet string) (*Persona, error) {
	return s.personas.GetByCarnet(ctx, carnet)
}

func (s *Service) FindPersonasByNombre(ctx context.Context, nombre string) ([]*Persona, error) {
	return s.personas.FindByNombre(ctx, nombre)
}

func (s *Service) FindPersonasByApellido1(ctx context.Context, apellido string) ([]*Persona, error) {
	return s.personas.FindByApellido1(ctx, apellido)
}

func (s *Service) FindPersonasByApellido2(ctx context.Context, apellido string) ([]*Persona, error) {
	return s.personas.FindByApellido2(ctx, apellido)
}

func (s *Service) ListPersonas(ctx context.Context) ([]*Persona, error) {
	return s.personas.List(ctx)
}

func (s *Service) ListPersonasOrdenadasPorNombre(ctx context.Context) ([]*Persona, error) {
	return s.personas.ListOrdenadasPorNombre(ctx)
}

func (s *Service) ListPersonasOrdenadasPorApellidos(ctx context.Context) ([]*Persona, error) {
	return s.personas.ListOrdenadasPorApellidos(ctx)
}

func (s *Service) UpdatePersona(ctx context.Context, id int64, upd *PersonaUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	if upd.Nombre != nil && *upd.Nombre == "" {
		return apperr.Validation("el nombre no puede estar vacío")
	}
	if upd.Apellido1 != nil && *upd.Apellido1 == "" {
		return apperr.Validation("el primer apellido no puede estar vacío")
	}
	return s.personas.Update(ctx, id, upd)
}

func (s *Service) DeletePersona(ctx context.Context, id int64) error {
	return s.personas.Delete(ctx, id)
}

// -- Paciente --

func (s *Service) CreatePaciente(ctx context.Context, paciente *Paciente) error {
	if paciente.NHC == 0 {
		return apperr.Validation("el NHC del paciente es requerido")
	}
	return s.pacientes.Create(ctx, paciente)
}

func (s *Service) GetPaciente(ctx context.Context, nhc int64) (*Paciente, error) {
	return s.pacientes.GetByNHC(ctx, nhc)
}

func (s *Service) GetPacienteDetalle(ctx context.Context, nhc int64) (*PacienteDetalle, error) {
	return s.pacientes.GetDetalle(ctx, nhc)
}

func (s *Service) ListPacientes(ctx context.Context) ([]*Paciente, error) {
	return s.pacientes.List(ctx)
}

func (s *Service) UpdatePaciente(ctx context.Context, nhc int64, upd *PacienteUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	return s.pacientes.Update(ctx, nhc, upd)
}

func (s *Service) DeletePaciente(ctx context.Context, nhc int64) error {
	return s.pacientes.Delete(ctx, nhc)
}

// -- Combined persona + paciente --

// CreatePacienteConPersona inserts the persona and its paciente atomically;
// a failure on either side rolls back both.
func (s *Service) CreatePacienteConPersona(ctx context.Context, payload *PacienteConPersona) (*Paciente, error) {
	if err := validarPersona(&payload.Persona); err != nil {
		return nil, err
	}

	paciente := &Paciente{
		TutorInfo: payload.Paciente.TutorInfo,
		Grado:     payload.Paciente.Grado,
		OtraInfo:  payload.Paciente.OtraInfo,
	}
	err := s.runTx(ctx, func(ctx context.Context) error {
		if err := s.personas.Create(ctx, &payload.Persona); err != nil {
			return err
		}
		paciente.NHC = payload.Persona.IDPersona
		return s.pacientes.Create(ctx, paciente)
	})
	if err != nil {
		return nil, err
	}
	return paciente, nil
}

// UpdatePacienteConPersona applies partial updates to the persona and the
// paciente sharing the NHC in one transaction.
func (s *Service) UpdatePacienteConPersona(ctx context.Context, nhc int64, upd *PacienteConPersonaUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	return s.runTx(ctx, func(ctx context.Context) error {
		if !upd.Persona.Empty() {
			if err := s.personas.Update(ctx, nhc, &upd.Persona); err != nil {
				return err
			}
		}
		if !upd.Paciente.Empty() {
			if err := s.pacientes.Update(ctx, nhc, &upd.Paciente); err != nil {
				return err
			}
		}
		return nil
	})
}
