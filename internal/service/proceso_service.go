package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jaimelll/procesos/internal/config"
	"github.com/Jaimelll/procesos/internal/dto"
	"github.com/Jaimelll/procesos/internal/format"
	"github.com/Jaimelll/procesos/internal/model"
	"github.com/Jaimelll/procesos/internal/repository"
	"github.com/Jaimelll/procesos/internal/status"
	"github.com/Jaimelll/procesos/internal/timeline"

	"github.com/shopspring/decimal"
)

type ProcesoService interface {
	Crear(ctx context.Context, req dto.CrearProcesoRequest) (*dto.ProcesoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProcesoResponse, error)
	Listar(ctx context.Context, filter dto.ProcesoFilter) (*dto.ProcesoListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProcesoRequest) (*dto.ProcesoResponse, error)
	Eliminar(ctx context.Context, id uint) error
	// Timeline builds the segmented state timeline for the Gantt chart.
	Timeline(ctx context.Context, id uint) (*timeline.Timeline, error)
}

type procesoService struct {
	repo       repository.ProcesoRepository
	eventoRepo repository.EventoRepository
	catalogo   CatalogoService
	dispatcher Recalculador
	cfg        *config.Config
	ahora      func() time.Time
}

func NewProcesoService(
	repo repository.ProcesoRepository,
	eventoRepo repository.EventoRepository,
	catalogo CatalogoService,
	dispatcher Recalculador,
	cfg *config.Config,
) ProcesoService {
	return &procesoService{
		repo:       repo,
		eventoRepo: eventoRepo,
		catalogo:   catalogo,
		dispatcher: dispatcher,
		cfg:        cfg,
		ahora:      time.Now,
	}
}

func (s *procesoService) Crear(ctx context.Context, req dto.CrearProcesoRequest) (*dto.ProcesoResponse, error) {
	if _, err := s.repo.FindByNumero(ctx, req.Numero); err == nil {
		return nil, fmt.Errorf("ya existe un proceso con número %d", req.Numero)
	}

	p := model.Proceso{
		Numero:                 req.Numero,
		Nomenclatura:           req.Nomenclatura,
		Nombre:                 req.Nombre,
		Descripcion:            req.Descripcion,
		Moneda:                 req.Moneda,
		Previsto:               req.Previsto,
		Estimado:               req.Estimado,
		Expediente:             req.Expediente,
		Periodo:                req.Periodo,
		Convocado:              req.Convocado,
		Convocatoria:           req.Convocatoria,
		DerivadoID:             req.DerivadoID,
		Direccion:              req.Direccion,
		Grupo:                  req.Grupo,
		Obtencion:              req.Obtencion,
		CantItems:              req.CantItems,
		CantUnidades:           req.CantUnidades,
		EspecialistaUare:       req.EspecialistaUare,
		AcotacionesAdicionales: req.AcotacionesAdicionales,
	}
	if p.Moneda == "" {
		p.Moneda = "PEN"
	}
	if req.Cambio != nil {
		p.Cambio = *req.Cambio
	} else {
		p.Cambio = decimal.NewFromInt(1)
	}
	if req.FechaInicio != nil {
		f, err := time.Parse("2006-01-02", *req.FechaInicio)
		if err != nil {
			return nil, fmt.Errorf("fecha_inicio inválida: %w", err)
		}
		p.FechaInicio = &f
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	encolarRecalculo(ctx, s.dispatcher, &p)
	return s.aResponse(ctx, &p, status.Estado{Nombre: timeline.SinEstado})
}

func (s *procesoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProcesoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("proceso no encontrado")
	}
	eventos, err := s.eventoRepo.ListByProceso(ctx, id)
	if err != nil {
		return nil, err
	}
	d, err := s.derivador(ctx)
	if err != nil {
		return nil, err
	}
	return s.aResponse(ctx, p, d.Derivar(eventos, s.ahora()))
}

// Listar is the status-index pass: load everything, derive each proceso's
// current state in bulk, then filter, sort and paginate in memory. The
// derived state is not a stored column, so SQL cannot do this narrowing.
func (s *procesoService) Listar(ctx context.Context, filter dto.ProcesoFilter) (*dto.ProcesoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	procesos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(procesos))
	for _, p := range procesos {
		ids = append(ids, p.ID)
	}
	porProceso, err := s.eventoRepo.ListByProcesos(ctx, ids)
	if err != nil {
		return nil, err
	}
	d, err := s.derivador(ctx)
	if err != nil {
		return nil, err
	}

	hoy := s.ahora()
	estados := make(map[uint]status.Estado, len(procesos))
	for _, p := range procesos {
		estados[p.ID] = d.Derivar(porProceso[p.ID], hoy)
	}

	f := status.Filtro{
		Texto:     filter.Texto,
		MontoOp:   filter.MontoOp,
		Estado:    filter.Estado,
		Convocado: filter.Convocado,
	}
	if filter.Monto != "" {
		monto, err := decimal.NewFromString(filter.Monto)
		if err != nil {
			return nil, fmt.Errorf("monto inválido: %w", err)
		}
		f.Monto = &monto
	}
	filtrados := d.Filtrar(procesos, f, func(id uint) string { return estados[id].Nombre })

	status.Ordenar(filtrados, filter.Orden, filter.Dir == "desc")

	total := len(filtrados)
	inicio := (filter.Page - 1) * filter.Limit
	if inicio > total {
		inicio = total
	}
	fin := inicio + filter.Limit
	if fin > total {
		fin = total
	}

	items := make([]dto.ProcesoResponse, 0, fin-inicio)
	for i := inicio; i < fin; i++ {
		resp, err := s.aResponse(ctx, &filtrados[i], estados[filtrados[i].ID])
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ProcesoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *procesoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProcesoRequest) (*dto.ProcesoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("proceso no encontrado")
	}

	if req.Nomenclatura != nil {
		p.Nomenclatura = req.Nomenclatura
	}
	if req.Nombre != nil {
		p.Nombre = req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Moneda != nil {
		p.Moneda = *req.Moneda
	}
	if req.Cambio != nil {
		p.Cambio = *req.Cambio
	}
	if req.Previsto != nil {
		p.Previsto = req.Previsto
	}
	if req.Estimado != nil {
		p.Estimado = req.Estimado
	}
	if req.Expediente != nil {
		p.Expediente = req.Expediente
	}
	if req.Periodo != nil {
		p.Periodo = req.Periodo
	}
	if req.Convocado != nil {
		p.Convocado = req.Convocado
	}
	if req.Convocatoria != nil {
		p.Convocatoria = *req.Convocatoria
	}
	if req.DerivadoID != nil {
		p.DerivadoID = req.DerivadoID
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}
	if req.Grupo != nil {
		p.Grupo = req.Grupo
	}
	if req.Obtencion != nil {
		p.Obtencion = req.Obtencion
	}
	if req.CantItems != nil {
		p.CantItems = req.CantItems
	}
	if req.CantUnidades != nil {
		p.CantUnidades = req.CantUnidades
	}
	if req.EspecialistaUare != nil {
		p.EspecialistaUare = req.EspecialistaUare
	}
	if req.AcotacionesAdicionales != nil {
		p.AcotacionesAdicionales = req.AcotacionesAdicionales
	}
	if req.FechaInicio != nil {
		f, err := time.Parse("2006-01-02", *req.FechaInicio)
		if err != nil {
			return nil, fmt.Errorf("fecha_inicio inválida: %w", err)
		}
		p.FechaInicio = &f
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	encolarRecalculo(ctx, s.dispatcher, p)
	return s.ObtenerPorID(ctx, id)
}

func (s *procesoService) Eliminar(ctx context.Context, id uint) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("proceso no encontrado")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	encolarRecalculo(ctx, s.dispatcher, p)
	return nil
}

func (s *procesoService) Timeline(ctx context.Context, id uint) (*timeline.Timeline, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("proceso no encontrado")
	}
	eventos, err := s.eventoRepo.ListByProceso(ctx, id)
	if err != nil {
		return nil, err
	}
	snap, err := s.catalogo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	b := timeline.Builder{Catalogo: snap, GrupoEstados: s.cfg.GrupoEstados}
	return b.Build(p, eventos, s.ahora())
}

func (s *procesoService) derivador(ctx context.Context) (status.Derivador, error) {
	snap, err := s.catalogo.Snapshot(ctx)
	if err != nil {
		return status.Derivador{}, err
	}
	return status.Derivador{
		Catalogo:         snap,
		GrupoCalificados: s.cfg.GrupoCalificados,
		GrupoOrden:       s.cfg.GrupoOrden,
	}, nil
}

func (s *procesoService) aResponse(ctx context.Context, p *model.Proceso, est status.Estado) (*dto.ProcesoResponse, error) {
	snap, err := s.catalogo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProcesoResponse{
		ID:                     p.ID,
		Numero:                 p.Numero,
		Nomenclatura:           p.Nomenclatura,
		Nombre:                 p.Nombre,
		Descripcion:            p.Descripcion,
		Moneda:                 p.Moneda,
		Cambio:                 p.Cambio,
		Previsto:               p.Previsto,
		Estimado:               p.Estimado,
		Expediente:             p.Expediente,
		Convocatoria:           p.Convocatoria,
		DerivadoID:             p.DerivadoID,
		Direccion:              p.Direccion,
		Grupo:                  p.Grupo,
		Obtencion:              p.Obtencion,
		CantItems:              p.CantItems,
		CantUnidades:           p.CantUnidades,
		EspecialistaUare:       p.EspecialistaUare,
		AcotacionesAdicionales: p.AcotacionesAdicionales,
		Mercado:                timeline.Mercado(p),
		EstadoActual:           est.Nombre,
		Rango:                  est.Rango,
	}
	if p.Estimado != nil {
		resp.EstimadoFmt = format.Moneda(*p.Estimado, p.Moneda, s.cfg.Locale)
	}
	if p.FechaInicio != nil {
		f := p.FechaInicio.Format("2006-01-02")
		resp.FechaInicio = &f
	}
	// Periodo/Convocado are soft references by rank; a dangling value
	// degrades to nil ("not specified").
	if p.Periodo != nil {
		if fila, ok := snap.LookupPorOrden(s.cfg.GrupoPeriodos, *p.Periodo); ok {
			resp.Periodo = &fila.Nombre
		}
	}
	if p.Convocado != nil {
		if fila, ok := snap.LookupPorOrden(s.cfg.GrupoConvocatorias, *p.Convocado); ok {
			resp.Convocado = &fila.Nombre
		}
	}
	return resp, nil
}
