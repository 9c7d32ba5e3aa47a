package clinical

import (
	"context"

	"github.com/clinsalud/api/internal/platform/apperr"
)

type Service struct {
	episodios EpisodioRepository
	hces      HCERepository
	datos     DatoAntropometricoRepository
}

func NewService(episodios EpisodioRepository, hces HCERepository, datos DatoAntropometricoRepository) *Service {
	return &Service{episodios: episodios, hces: hces, datos: datos}
}

// -- Episodio --

func (s *Service) CreateEpisodio(ctx context.Context, episodio *Episodio) error {
	var errores []string
	if episodio.NHCPaciente == 0 {
		errores = append(errores, "el NHC del paciente es requerido")
	}
	if episodio.Medico == 0 {
		errores = append(errores, "el médico del episodio es requerido")
	}
	if len(errores) > 0 {
		return apperr.Validation(errores...)
	}
	return s.episodios.Create(ctx, episodio)
}

func (s *Service) GetEpisodio(ctx context.Context, id int64) (*Episodio, error) {
	return s.episodios.GetByID(ctx, id)
}

func (s *Service) FindEpisodiosByPaciente(ctx context.Context, nhc int64) ([]*Episodio, error) {
	return s.episodios.FindByPaciente(ctx, nhc)
}

func (s *Service) ListEpisodios(ctx context.Context) ([]*Episodio, error) {
	return s.episodios.List(ctx)
}

func (s *Service) UpdateEpisodio(ctx context.Context, id int64, upd *EpisodioUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	return s.episodios.Update(ctx, id, upd)
}

func (s *Service) DeleteEpisodio(ctx context.Context, id int64) error {
	return s.episodios.Delete(ctx, id)
}

// -- HCE --

func (s *Service) CreateHCE(ctx context.Context, hce *HCE) error {
	if hce.NHCPaciente == 0 {
		return apperr.Validation("el NHC del paciente es requerido")
	}
	return s.hces.Create(ctx, hce)
}

func (s *Service) GetHCE(ctx context.Context, nhc int64) (*HCE, error) {
	return s.hces.GetByNHC(ctx, nhc)
}

func (s *Service) ListHCEs(ctx context.Context) ([]*HCE, error) {
	return s.hces.List(ctx)
}

func (s *Service) UpdateHCE(ctx context.Context, nhc int64, upd *HCEUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	return s.hces.Update(ctx, nhc, upd)
}

func (s *Service) DeleteHCE(ctx context.Context, nhc int64) error {
	return s.hces.Delete(ctx, nhc)
}

// -- DatoAntropometrico --

func (s *Service) CreateDato(ctx context.Context, dato *DatoAntropometrico) error {
	var errores []string
	if dato.NHCPaciente == 0 {
		errores = append(errores, "el NHC del paciente es requerido")
	}
	if dato.Peso != nil && *dato.Peso <= 0 {
		errores = append(errores, "el peso debe ser mayor que cero")
	}
	if dato.Altura != nil && *dato.Altura <= 0 {
		errores = append(errores, "la altura debe ser mayor que cero")
	}
	if len(errores) > 0 {
		return apperr.Validation(errores...)
	}
	return s.datos.Create(ctx, dato)
}

func (s *Service) GetDato(ctx context.Context, id int64) (*DatoAntropometrico, error) {
	return s.datos.GetByID(ctx, id)
}

func (s *Service) FindDatosByPaciente(ctx context.Context, nhc int64) ([]*DatoAntropometrico, error) {
	return s.datos.FindByPaciente(ctx, nhc)
}

func (s *Service) ListDatos(ctx context.Context) ([]*DatoAntropometrico, error) {
	return s.datos.List(ctx)
}

func (s *Service) UpdateDato(ctx context.Context, id int64, upd *DatoAntropometricoUpdate) error {
	if upd.Empty() {
		return apperr.Validation("no se proporcionaron campos para actualizar")
	}
	return s.datos.Update(ctx, id, upd)
}

func (s *Service) DeleteDato(ctx context.Context, id int64) error {
	return s.datos.Delete(ctx, id)
}
