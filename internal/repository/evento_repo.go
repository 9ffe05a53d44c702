package repository

import (
	"context"

	"github.com/Jaimelll/procesos/internal/model"

	"gorm.io/gorm"
)

// EventoRepository is the data access contract for eventos. Listing always
// returns (fecha, id) ascending order — every derivation downstream depends
// on that ordering.
type EventoRepository interface {
	Create(ctx context.Context, e *model.Evento) error
	FindByID(ctx context.Context, procesoID, id uint) (*model.Evento, error)
	ListByProceso(ctx context.Context, procesoID uint) ([]model.Evento, error)
	// ListByProcesos batch-loads the events of many procesos in one query,
	// grouped by proceso id, for the status index pass.
	ListByProcesos(ctx context.Context, procesoIDs []uint) (map[uint][]model.Evento, error)
	Update(ctx context.Context, e *model.Evento) error
	Delete(ctx context.Context, procesoID, id uint) error
}

type eventoRepo struct{ db *gorm.DB }

func NewEventoRepository(db *gorm.DB) EventoRepository { return &eventoRepo{db: db} }

func (r *eventoRepo) Create(ctx context.Context, e *model.Evento) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventoRepo) FindByID(ctx context.Context, procesoID, id uint) (*model.Evento, error) {
	var e model.Evento
	err := r.db.WithContext(ctx).Where("proceso_id = ?", procesoID).First(&e, id).Error
	return &e, err
}

func (r *eventoRepo) ListByProceso(ctx context.Context, procesoID uint) ([]model.Evento, error) {
	var eventos []model.Evento
	err := r.db.WithContext(ctx).
		Where("proceso_id = ?", procesoID).
		Order("fecha ASC, id ASC").
		Find(&eventos).Error
	return eventos, err
}

func (r *eventoRepo) ListByProcesos(ctx context.Context, procesoIDs []uint) (map[uint][]model.Evento, error) {
	if len(procesoIDs) == 0 {
		return map[uint][]model.Evento{}, nil
	}
	var eventos []model.Evento
	err := r.db.WithContext(ctx).
		Where("proceso_id IN ?", procesoIDs).
		Order("fecha ASC, id ASC").
		Find(&eventos).Error
	if err != nil {
		return nil, err
	}
	porProceso := make(map[uint][]model.Evento, len(procesoIDs))
	for _, e := range eventos {
		porProceso[e.ProcesoID] = append(porProceso[e.ProcesoID], e)
	}
	return porProceso, nil
}

func (r *eventoRepo) Update(ctx context.Context, e *model.Evento) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *eventoRepo) Delete(ctx context.Context, procesoID, id uint) error {
	return r.db.WithContext(ctx).
		Where("proceso_id = ?", procesoID).
		Delete(&model.Evento{}, id).Error
}
