package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/uptrace/bun"
)

// ErrWorkbenchNotFound is returned when no workbench row matches the id.
var ErrWorkbenchNotFound = errors.New("workbench not found")

type WorkbenchRepository interface {
	Create(ctx context.Context, workbench *models.Workbench) error
	GetByID(ctx context.Context, id int64) (*models.Workbench, error)
	GetAll(ctx context.Context) ([]*models.Workbench, error)
	Update(ctx context.Context, workbench *models.Workbench) error
	Delete(ctx context.Context, id int64) error
}

type workbenchRepository struct {
	db *bun.DB
}

func NewWorkbenchRepository(db *bun.DB) WorkbenchRepository {
	return &workbenchRepository{db: db}
}

func (r *workbenchRepository) Create(ctx context.Context, workbench *models.Workbench) error {
	workbench.CreatedAt = time.Now()
	workbench.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(workbench).Exec(ctx)
	return err
}

func (r *workbenchRepository) GetByID(ctx context.Context, id int64) (*models.Workbench, error) {
	workbench := new(models.Workbench)
	err := r.db.NewSelect().
		Model(workbench).
		Where("w.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrWorkbenchNotFound, id)
		}
		return nil, err
	}
	return workbench, nil
}

func (r *workbenchRepository) GetAll(ctx context.Context) ([]*models.Workbench, error) {
	var workbenches []*models.Workbench
	err := r.db.NewSelect().
		Model(&workbenches).
		Order("tier ASC", "display_order ASC", "name ASC").
		Scan(ctx)
	return workbenches, err
}

func (r *workbenchRepository) Update(ctx context.Context, workbench *models.Workbench) error {
	workbench.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(workbench).
		Column("name", "tier", "display_order", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}

func (r *workbenchRepository) Delete(ctx context.Context, id int64) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.CompletedWorkbench)(nil)).
			Where("workbench_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewDelete().
			Model((*models.Workbench)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
}
