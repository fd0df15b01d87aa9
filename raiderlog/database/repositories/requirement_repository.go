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

// ErrRequirementExists is returned when an authored requirement would
// collide on (expedition_level, part_number, item_name).
var ErrRequirementExists = errors.New("expedition requirement already exists")

// ErrRequirementNotFound is returned when no requirement row matches the id.
var ErrRequirementNotFound = errors.New("expedition requirement not found")

type RequirementRepository interface {
	Create(ctx context.Context, requirement *models.ExpeditionRequirement) error
	GetByID(ctx context.Context, id int64) (*models.ExpeditionRequirement, error)
	GetAll(ctx context.Context) ([]*models.ExpeditionRequirement, error)
	GetByLevel(ctx context.Context, level int) ([]*models.ExpeditionRequirement, error)
	Update(ctx context.Context, requirement *models.ExpeditionRequirement) error
	Delete(ctx context.Context, id int64) error
}

type requirementRepository struct {
	db *bun.DB
}

func NewRequirementRepository(db *bun.DB) RequirementRepository {
	return &requirementRepository{db: db}
}

func (r *requirementRepository) Create(ctx context.Context, requirement *models.ExpeditionRequirement) error {
	requirement.CreatedAt = time.Now()
	requirement.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(requirement).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrRequirementExists
		}
		return err
	}
	return nil
}

func (r *requirementRepository) GetByID(ctx context.Context, id int64) (*models.ExpeditionRequirement, error) {
	requirement := new(models.ExpeditionRequirement)
	err := r.db.NewSelect().
		Model(requirement).
		Where("er.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrRequirementNotFound, id)
		}
		return nil, err
	}
	return requirement, nil
}

func (r *requirementRepository) GetAll(ctx context.Context) ([]*models.ExpeditionRequirement, error) {
	var requirements []*models.ExpeditionRequirement
	err := r.db.NewSelect().
		Model(&requirements).
		Order("expedition_level ASC", "part_number ASC", "display_order ASC", "item_name ASC").
		Scan(ctx)
	return requirements, err
}

func (r *requirementRepository) GetByLevel(ctx context.Context, level int) ([]*models.ExpeditionRequirement, error) {
	var requirements []*models.ExpeditionRequirement
	err := r.db.NewSelect().
		Model(&requirements).
		Where("expedition_level = ?", level).
		Order("part_number ASC", "display_order ASC", "item_name ASC").
		Scan(ctx)
	return requirements, err
}

func (r *requirementRepository) Update(ctx context.Context, requirement *models.ExpeditionRequirement) error {
	requirement.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(requirement).
		Column("expedition_level", "part_number", "item_name", "quantity", "location", "display_order", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil && isUniqueViolation(err) {
		return ErrRequirementExists
	}
	return err
}

func (r *requirementRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().
		Model((*models.ExpeditionRequirement)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
