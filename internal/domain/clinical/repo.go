package clinical

import "context"

type EpisodioRepository interface {
	Create(ctx context.Context, episodio *Episodio) error
	GetByID(ctx context.Context, id int64) (*Episodio, error)
	FindByPaciente(ctx context.Context, nhc int64) ([]*Episodio, error)
	List(ctx context.Context) ([]*Episodio, error)
	Update(ctx context.Context, id int64, upd *EpisodioUpdate) error
	Delete(ctx context.Context, id int64) error
}

type HCERepository interface {
	Create(ctx context.Context, hce *HCE) error
	GetByNHC(ctx context.Context, nhc int64) (*HCE, error)
	List(ctx context.Context) ([]*HCE, error)
	Update(ctx context.Context, nhc int64, upd *HCEUpdate) error
	Delete(ctx context.Context, nhc int64) error
}

type DatoAntropometricoRepository interface {
	Create(ctx context.Context, dato *DatoAntropometrico) error
	GetByID(ctx context.Context, id int64) (*DatoAntropometrico, error)
	FindByPaciente(ctx context.Context, nhc int64) ([]*DatoAntropometrico, error)
	List(ctx context.Context) ([]*DatoAntropometrico, error)
	Update(ctx context.Context, id int64, upd *DatoAntropometricoUpdate) error
	Delete(ctx context.Context, id int64) error
}
