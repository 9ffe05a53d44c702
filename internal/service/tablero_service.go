package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Jaimelll/procesos/internal/config"
	"github.com/Jaimelll/procesos/internal/dto"
	"github.com/Jaimelll/procesos/internal/format"
	"github.com/Jaimelll/procesos/internal/model"
	"github.com/Jaimelll/procesos/internal/report"
	"github.com/Jaimelll/procesos/internal/repository"
	"github.com/Jaimelll/procesos/internal/timeline"
	"github.com/Jaimelll/procesos/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Label truncation for the Gantt y-axis, matching the legacy chart layout.
const maxEtiqueta = 32

// TableroService assembles the home dashboard: timelines for the selected
// dirección plus the market/dirección rollups. Responses are cached in
// Redis; the recalculation worker invalidates them after proceso and
// evento mutations.
type TableroService interface {
	Resumen(ctx context.Context, direccion string) (*dto.TableroResponse, error)
}

type tableroService struct {
	procesoRepo repository.ProcesoRepository
	eventoRepo  repository.EventoRepository
	catalogo    CatalogoService
	rdb         *redis.Client
	cfg         *config.Config
	ahora       func() time.Time
}

func NewTableroService(
	procesoRepo repository.ProcesoRepository,
	eventoRepo repository.EventoRepository,
	catalogo CatalogoService,
	rdb *redis.Client,
	cfg *config.Config,
) TableroService {
	return &tableroService{
		procesoRepo: procesoRepo,
		eventoRepo:  eventoRepo,
		catalogo:    catalogo,
		rdb:         rdb,
		cfg:         cfg,
		ahora:       time.Now,
	}
}

func (s *tableroService) Resumen(ctx context.Context, direccion string) (*dto.TableroResponse, error) {
	key := worker.TableroCachePrefix + direccion
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached dto.TableroResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	resp, err := s.construir(ctx, direccion)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			ttl := time.Duration(s.cfg.TableroTTL) * time.Second
			if err := s.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
				// Cache failures only cost latency, never correctness.
				log.Warn().Err(err).Str("key", key).Msg("tablero cache write failed")
			}
		}
	}
	return resp, nil
}

func (s *tableroService) construir(ctx context.Context, direccion string) (*dto.TableroResponse, error) {
	direcciones, err := s.procesoRepo.Direcciones(ctx)
	if err != nil {
		return nil, err
	}
	nombres := make([]string, 0, len(direcciones))
	for _, d := range direcciones {
		nombres = append(nombres, d.Direccion)
	}

	// Default: the dirección holding the most procesos, as the legacy home
	// view did.
	if direccion == "" && len(direcciones) > 0 {
		direccion = direcciones[0].Direccion
	}

	var procesos []model.Proceso
	if direccion != "" {
		procesos, err = s.procesoRepo.ListByDireccion(ctx, direccion)
	} else {
		procesos, err = s.procesoRepo.ListAll(ctx)
	}
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
	snap, err := s.catalogo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	hoy := s.ahora()
	b := timeline.Builder{Catalogo: snap, GrupoEstados: s.cfg.GrupoEstados}

	timelines := make([]dto.TableroTimeline, 0, len(procesos))
	for i := range procesos {
		p := &procesos[i]
		t, err := b.Build(p, porProceso[p.ID], hoy)
		if err != nil {
			return nil, fmt.Errorf("proceso %d: %w", p.Numero, err)
		}
		timelines = append(timelines, dto.TableroTimeline{
			ProcesoID: p.ID,
			Numero:    p.Numero,
			Etiqueta:  etiqueta(p),
			Timeline:  *t,
		})
	}

	// Rollups run over ALL procesos, not just the selected dirección: the
	// pie charts summarize the whole portfolio.
	todos, err := s.procesoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	porMercado := report.AggregateBy(todos, report.PorMercado, report.Estimado)
	porDireccion := report.AggregateBy(todos, report.PorDireccion, report.Previsto)

	montos := make([]dto.MontoFmt, 0, len(porMercado))
	for _, g := range porMercado {
		montos = append(montos, dto.MontoFmt{
			Clave: g.Clave,
			Monto: format.Moneda(g.Monto, "PEN", s.cfg.Locale),
		})
	}

	return &dto.TableroResponse{
		Direccion:     direccion,
		Direcciones:   nombres,
		Hoy:           hoy.Format("2006-01-02"),
		Timelines:     timelines,
		PorMercado:    porMercado,
		PorDireccion:  porDireccion,
		MontoPorGrupo: montos,
	}, nil
}

// etiqueta builds the y-axis label "numero - nombre", truncated like the
// legacy chart so long names do not squash the plot area.
func etiqueta(p *model.Proceso) string {
	nombre := ""
	if p.Nombre != nil {
		nombre = *p.Nombre
	}
	// Truncate by runes: the names are Spanish and cutting a multi-byte
	// accented character would emit invalid UTF-8 into the label.
	if r := []rune(nombre); len(r) > maxEtiqueta {
		nombre = string(r[:maxEtiqueta]) + "..."
	}
	return fmt.Sprintf("%d - %s", p.Numero, nombre)
}
