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

// ErrBlueprintNotFound is returned when no blueprint row matches the id.
var ErrBlueprintNotFound = errors.New("blueprint not found")

type BlueprintRepository interface {
	Create(ctx context.Context, blueprint *models.Blueprint) error
	GetByID(ctx context.Context, id int64) (*models.Blueprint, error)
	GetAll(ctx context.Context) ([]*models.Blueprint, error)
	Update(ctx context.Context, blueprint *models.Blueprint) error
	Delete(ctx context.Context, id int64) error
}

type blueprintRepository struct {
	db *bun.DB
}

func NewBlueprintRepository(db *bun.DB) BlueprintRepository {
	return &blueprintRepository{db: db}
}

func (r *blueprintRepository) Create(ctx context.Context, blueprint *models.Blueprint) error {
	blueprint.CreatedAt = time.Now()
	blueprint.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(blueprint).Exec(ctx)
	return err
}

func (r *blueprintRepository) GetByID(ctx context.Context, id int64) (*models.Blueprint, error) {
	blueprint := new(models.Blueprint)
	err := r.db.NewSelect().
		Model(blueprint).
		Where("b.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrBlueprintNotFound, id)
		}
		return nil, err
	}
	return blueprint, nil
}

func (r *blueprintRepository) GetAll(ctx context.Context) ([]*models.Blueprint, error) {
	var blueprints []*models.Blueprint
	err := r.db.NewSelect().
		Model(&blueprints).
		Order("category ASC", "display_order ASC", "name ASC").
		Scan(ctx)
	return blueprints, err
}

func (r *blueprintRepository) Update(ctx context.Context, blueprint *models.Blueprint) error {
	blueprint.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(blueprint).
		Column("name", "category", "display_order", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}

func (r *blueprintRepository) Delete(ctx context.Context, id int64) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.OwnedBlueprint)(nil)).
			Where("blueprint_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewDelete().
			Model((*models.Blueprint)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
}
