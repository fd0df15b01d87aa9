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

// ErrQuestNotFound is returned when no quest row matches the id.
var ErrQuestNotFound = errors.New("quest not found")

type QuestRepository interface {
	Create(ctx context.Context, quest *models.Quest) error
	GetByID(ctx context.Context, id int64) (*models.Quest, error)
	GetAll(ctx context.Context) ([]*models.Quest, error)
	Update(ctx context.Context, quest *models.Quest) error
	Delete(ctx context.Context, id int64) error
}

type questRepository struct {
	db *bun.DB
}

func NewQuestRepository(db *bun.DB) QuestRepository {
	return &questRepository{db: db}
}

func (r *questRepository) Create(ctx context.Context, quest *models.Quest) error {
	quest.CreatedAt = time.Now()
	quest.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(quest).Exec(ctx)
	return err
}

func (r *questRepository) GetByID(ctx context.Context, id int64) (*models.Quest, error) {
	quest := new(models.Quest)
	err := r.db.NewSelect().
		Model(quest).
		Where("q.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrQuestNotFound, id)
		}
		return nil, err
	}
	return quest, nil
}

func (r *questRepository) GetAll(ctx context.Context) ([]*models.Quest, error) {
	var quests []*models.Quest
	err := r.db.NewSelect().
		Model(&quests).
		Order("chain ASC", "display_order ASC", "name ASC").
		Scan(ctx)
	return quests, err
}

func (r *questRepository) Update(ctx context.Context, quest *models.Quest) error {
	quest.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(quest).
		Column("name", "trader", "chain", "display_order", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}

func (r *questRepository) Delete(ctx context.Context, id int64) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.CompletedQuest)(nil)).
			Where("quest_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewDelete().
			Model((*models.Quest)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
}
