package service

import (
	"context"
	"sync"

	"github.com/Jaimelll/procesos/internal/catalogo"
	"github.com/Jaimelll/procesos/internal/dto"
	"github.com/Jaimelll/procesos/internal/model"
	"github.com/Jaimelll/procesos/internal/repository"
)

// CatalogoService serves the rule tables: a cached read snapshot for the
// derivation engines plus the admin CRUD that mutates them. Mutations
// refresh the snapshot synchronously so derivations never read stale rules
// within the same instance.
type CatalogoService interface {
	Snapshot(ctx context.Context) (catalogo.Catalogo, error)
	Refrescar(ctx context.Context) error

	CrearParametro(ctx context.Context, req dto.CrearParametroRequest) (*dto.ParametroResponse, error)
	ListarParametros(ctx context.Context) ([]dto.ParametroResponse, error)
	CrearFormula(ctx context.Context, req dto.CrearFormulaRequest) (*dto.FormulaResponse, error)
	ListarFormulas(ctx context.Context, parametroID uint) ([]dto.FormulaResponse, error)
	EliminarFormula(ctx context.Context, id uint) error
	// Nombres lists the distinct display names of a group for dropdowns.
	Nombres(ctx context.Context, grupoID uint) ([]string, error)
}

type catalogoService struct {
	repo repository.CatalogoRepository

	mu   sync.RWMutex
	snap *catalogo.Snapshot
}

func NewCatalogoService(repo repository.CatalogoRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func (s *catalogoService) Snapshot(ctx context.Context) (catalogo.Catalogo, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	if err := s.Refrescar(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, nil
}

func (s *catalogoService) Refrescar(ctx context.Context) error {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

func (s *catalogoService) CrearParametro(ctx context.Context, req dto.CrearParametroRequest) (*dto.ParametroResponse, error) {
	p := model.Parametro{Nombre: req.Nombre, Descripcion: req.Descripcion, Tipo: req.Tipo}
	if err := s.repo.CreateParametro(ctx, &p); err != nil {
		return nil, err
	}
	return parametroToResponse(&p), nil
}

func (s *catalogoService) ListarParametros(ctx context.Context) ([]dto.ParametroResponse, error) {
	parametros, err := s.repo.ListParametros(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ParametroResponse, 0, len(parametros))
	for i := range parametros {
		out = append(out, *parametroToResponse(&parametros[i]))
	}
	return out, nil
}

func (s *catalogoService) CrearFormula(ctx context.Context, req dto.CrearFormulaRequest) (*dto.FormulaResponse, error) {
	f := model.Formula{
		ParametroID: req.ParametroID,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Orden:       req.Orden,
		Obs:         req.Obs,
		Cantidad:    req.Cantidad,
		Numero:      req.Numero,
		Acti:        req.Acti,
		Respon:      req.Respon,
		Respon2:     req.Respon2,
	}
	if err := s.repo.CreateFormula(ctx, &f); err != nil {
		return nil, err
	}
	if err := s.Refrescar(ctx); err != nil {
		return nil, err
	}
	return formulaToResponse(&f), nil
}

func (s *catalogoService) ListarFormulas(ctx context.Context, parametroID uint) ([]dto.FormulaResponse, error) {
	formulas, err := s.repo.ListFormulas(ctx, parametroID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FormulaResponse, 0, len(formulas))
	for i := range formulas {
		out = append(out, *formulaToResponse(&formulas[i]))
	}
	return out, nil
}

func (s *catalogoService) EliminarFormula(ctx context.Context, id uint) error {
	if err := s.repo.DeleteFormula(ctx, id); err != nil {
		return err
	}
	return s.Refrescar(ctx)
}

func (s *catalogoService) Nombres(ctx context.Context, grupoID uint) ([]string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.ListNombres(grupoID), nil
}

func parametroToResponse(p *model.Parametro) *dto.ParametroResponse {
	return &dto.ParametroResponse{ID: p.ID, Nombre: p.Nombre, Descripcion: p.Descripcion, Tipo: p.Tipo}
}

func formulaToResponse(f *model.Formula) *dto.FormulaResponse {
	return &dto.FormulaResponse{
		ID:          f.ID,
		ParametroID: f.ParametroID,
		Nombre:      f.Nombre,
		Descripcion: f.Descripcion,
		Orden:       f.Orden,
		Obs:         f.Obs,
		Cantidad:    f.Cantidad,
		Numero:      f.Numero,
		Acti:        f.Acti,
		Respon:      f.Respon,
		Respon2:     f.Respon2,
	}
}
