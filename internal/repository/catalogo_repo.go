package repository

import (
	"context"

	"github.com/Jaimelll/procesos/internal/catalogo"
	"github.com/Jaimelll/procesos/internal/model"

	"gorm.io/gorm"
)

// CatalogoRepository maintains the Parametro/Formula reference tables and
// materializes read-only snapshots for the derivation engines.
type CatalogoRepository interface {
	// Snapshot loads every Formula row in primary-key (insertion) order.
	// The order is the tie-break for duplicate cantidad codes, so it must
	// not change between loads.
	Snapshot(ctx context.Context) (*catalogo.Snapshot, error)

	CreateParametro(ctx context.Context, p *model.Parametro) error
	ListParametros(ctx context.Context) ([]model.Parametro, error)
	CreateFormula(ctx context.Context, f *model.Formula) error
	ListFormulas(ctx context.Context, parametroID uint) ([]model.Formula, error)
	DeleteFormula(ctx context.Context, id uint) error
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) Snapshot(ctx context.Context) (*catalogo.Snapshot, error) {
	var filas []model.Formula
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&filas).Error; err != nil {
		return nil, err
	}
	return catalogo.NewSnapshot(filas), nil
}

func (r *catalogoRepo) CreateParametro(ctx context.Context, p *model.Parametro) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *catalogoRepo) ListParametros(ctx context.Context) ([]model.Parametro, error) {
	var parametros []model.Parametro
	err := r.db.WithContext(ctx).Order("tipo ASC, nombre ASC").Find(&parametros).Error
	return parametros, err
}

func (r *catalogoRepo) CreateFormula(ctx context.Context, f *model.Formula) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *catalogoRepo) ListFormulas(ctx context.Context, parametroID uint) ([]model.Formula, error) {
	var formulas []model.Formula
	err := r.db.WithContext(ctx).
		Where("parametro_id = ?", parametroID).
		Order("orden ASC, id ASC").
		Find(&formulas).Error
	return formulas, err
}

func (r *catalogoRepo) DeleteFormula(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Formula{}, id).Error
}
