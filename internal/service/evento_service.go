package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jaimelll/procesos/internal/config"
	"github.com/Jaimelll/procesos/internal/dto"
	"github.com/Jaimelll/procesos/internal/model"
	"github.com/Jaimelll/procesos/internal/repository"

	"github.com/shopspring/decimal"
)

type EventoService interface {
	Crear(ctx context.Context, procesoID uint, req dto.CrearEventoRequest) (*dto.EventoResponse, error)
	Listar(ctx context.Context, procesoID uint) ([]dto.EventoResponse, error)
	ObtenerPorID(ctx context.Context, procesoID, id uint) (*dto.EventoResponse, error)
	Actualizar(ctx context.Context, procesoID, id uint, req dto.ActualizarEventoRequest) (*dto.EventoResponse, error)
	Eliminar(ctx context.Context, procesoID, id uint) error
}

type eventoService struct {
	repo        repository.EventoRepository
	procesoRepo repository.ProcesoRepository
	catalogo    CatalogoService
	dispatcher  Recalculador
	cfg         *config.Config
	ahora       func() time.Time
}

func NewEventoService(
	repo repository.EventoRepository,
	procesoRepo repository.ProcesoRepository,
	catalogo CatalogoService,
	dispatcher Recalculador,
	cfg *config.Config,
) EventoService {
	return &eventoService{
		repo:        repo,
		procesoRepo: procesoRepo,
		catalogo:    catalogo,
		dispatcher:  dispatcher,
		cfg:         cfg,
		ahora:       time.Now,
	}
}

func (s *eventoService) Crear(ctx context.Context, procesoID uint, req dto.CrearEventoRequest) (*dto.EventoResponse, error) {
	proceso, err := s.procesoRepo.FindByID(ctx, procesoID)
	if err != nil {
		return nil, errors.New("proceso no encontrado")
	}

	e := model.Evento{
		ProcesoID: procesoID,
		Actividad: req.Actividad,
		Acti:      req.Acti,
		Documento: req.Documento,
		Situacion: req.Situacion,
		Fecha:     s.ahora(), // default when the request omits it
		Importe:   decimal.Zero,
	}
	if req.Fecha != nil {
		f, err := time.Parse("2006-01-02", *req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
		e.Fecha = f
	}
	if req.Importe != nil {
		e.Importe = *req.Importe
	}

	if err := s.repo.Create(ctx, &e); err != nil {
		return nil, err
	}
	encolarRecalculo(ctx, s.dispatcher, proceso)
	return s.aResponse(ctx, &e)
}

func (s *eventoService) Listar(ctx context.Context, procesoID uint) ([]dto.EventoResponse, error) {
	if _, err := s.procesoRepo.FindByID(ctx, procesoID); err != nil {
		return nil, errors.New("proceso no encontrado")
	}
	eventos, err := s.repo.ListByProceso(ctx, procesoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventoResponse, 0, len(eventos))
	for i := range eventos {
		resp, err := s.aResponse(ctx, &eventos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *eventoService) ObtenerPorID(ctx context.Context, procesoID, id uint) (*dto.EventoResponse, error) {
	e, err := s.repo.FindByID(ctx, procesoID, id)
	if err != nil {
		return nil, errors.New("evento no encontrado")
	}
	return s.aResponse(ctx, e)
}

func (s *eventoService) Actualizar(ctx context.Context, procesoID, id uint, req dto.ActualizarEventoRequest) (*dto.EventoResponse, error) {
	e, err := s.repo.FindByID(ctx, procesoID, id)
	if err != nil {
		return nil, errors.New("evento no encontrado")
	}

	if req.Actividad != nil {
		e.Actividad = req.Actividad
	}
	if req.Acti != nil {
		e.Acti = req.Acti
	}
	if req.Documento != nil {
		e.Documento = req.Documento
	}
	if req.Situacion != nil {
		e.Situacion = req.Situacion
	}
	if req.Importe != nil {
		e.Importe = *req.Importe
	}
	if req.Fecha != nil {
		f, err := time.Parse("2006-01-02", *req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
		e.Fecha = f
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	if proceso, err := s.procesoRepo.FindByID(ctx, procesoID); err == nil {
		encolarRecalculo(ctx, s.dispatcher, proceso)
	}
	return s.aResponse(ctx, e)
}

func (s *eventoService) Eliminar(ctx context.Context, procesoID, id uint) error {
	if _, err := s.repo.FindByID(ctx, procesoID, id); err != nil {
		return errors.New("evento no encontrado")
	}
	if err := s.repo.Delete(ctx, procesoID, id); err != nil {
		return err
	}
	if proceso, err := s.procesoRepo.FindByID(ctx, procesoID); err == nil {
		encolarRecalculo(ctx, s.dispatcher, proceso)
	}
	return nil
}

func (s *eventoService) aResponse(ctx context.Context, e *model.Evento) (*dto.EventoResponse, error) {
	resp := &dto.EventoResponse{
		ID:        e.ID,
		ProcesoID: e.ProcesoID,
		Actividad: e.Actividad,
		Acti:      e.Acti,
		Documento: e.Documento,
		Fecha:     e.Fecha.Format("2006-01-02"),
		Situacion: e.Situacion,
		Importe:   e.Importe,
	}
	if e.Acti != nil {
		snap, err := s.catalogo.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		// Unclassified codes simply leave Estado empty.
		if fila, ok := snap.Lookup(s.cfg.GrupoEstados, *e.Acti); ok {
			resp.Estado = fila.Nombre
		}
	}
	return resp, nil
}
