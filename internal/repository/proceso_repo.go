package repository

import (
	"context"

	"github.com/Jaimelll/procesos/internal/model"

	"gorm.io/gorm"
)

// ProcesoRepository defines the data access contract for procesos.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProcesoRepository interface {
	Create(ctx context.Context, p *model.Proceso) error
	FindByID(ctx context.Context, id uint) (*model.Proceso, error)
	FindByNumero(ctx context.Context, numero int) (*model.Proceso, error)
	// ListAll returns every proceso; filtering, status derivation and
	// sorting happen in memory (internal/status) because the current
	// state is not a stored column.
	ListAll(ctx context.Context) ([]model.Proceso, error)
	ListByDireccion(ctx context.Context, direccion string) ([]model.Proceso, error)
	// Direcciones returns the distinct direccion values with their proceso
	// counts, descending by count (the dashboard defaults to the largest).
	Direcciones(ctx context.Context) ([]DireccionCount, error)
	Update(ctx context.Context, p *model.Proceso) error
	// Delete removes the proceso; its eventos cascade.
	Delete(ctx context.Context, id uint) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

// DireccionCount is one row of the distinct-direcciones query.
type DireccionCount struct {
	Direccion string
	Total     int64
}

type procesoRepo struct{ db *gorm.DB }

func NewProcesoRepository(db *gorm.DB) ProcesoRepository { return &procesoRepo{db: db} }

func (r *procesoRepo) Create(ctx context.Context, p *model.Proceso) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *procesoRepo) FindByID(ctx context.Context, id uint) (*model.Proceso, error) {
	var p model.Proceso
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *procesoRepo) FindByNumero(ctx context.Context, numero int) (*model.Proceso, error) {
	var p model.Proceso
	err := r.db.WithContext(ctx).Where("numero = ?", numero).First(&p).Error
	return &p, err
}

func (r *procesoRepo) ListAll(ctx context.Context) ([]model.Proceso, error) {
	var procesos []model.Proceso
	err := r.db.WithContext(ctx).Order("numero ASC").Find(&procesos).Error
	return procesos, err
}

func (r *procesoRepo) ListByDireccion(ctx context.Context, direccion string) ([]model.Proceso, error) {
	var procesos []model.Proceso
	err := r.db.WithContext(ctx).Where("direccion = ?", direccion).Order("numero ASC").Find(&procesos).Error
	return procesos, err
}

func (r *procesoRepo) Direcciones(ctx context.Context) ([]DireccionCount, error) {
	var filas []DireccionCount
	err := r.db.WithContext(ctx).Model(&model.Proceso{}).
		Select("direccion, COUNT(id) AS total").
		Where("direccion IS NOT NULL").
		Group("direccion").
		Order("total DESC").
		Scan(&filas).Error
	return filas, err
}

func (r *procesoRepo) Update(ctx context.Context, p *model.Proceso) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *procesoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Eventos").Delete(&model.Proceso{ID: id}).Error
}

func (r *procesoRepo) DB() *gorm.DB { return r.db }
