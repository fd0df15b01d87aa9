package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/raiderlog/raiderlog/raiderlog/expedition"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// advanceTxRetries bounds how often a serialization conflict restarts the
// advance transaction before the error is surfaced to the caller.
const advanceTxRetries = 3

// expeditionStore implements expedition.Store over bun. The db field is the
// bun.IDB interface so the same implementation serves both the root handle
// and a transaction: WithinTx hands out a store bound to the bun.Tx.
type expeditionStore struct {
	db     bun.IDB
	txOpts *sql.TxOptions
}

func NewExpeditionStore(db *bun.DB) expedition.Store {
	return &expeditionStore{db: db, txOpts: advanceTxOptions(db.Dialect().Name())}
}

// advanceTxOptions picks the isolation floor for the advance transaction. A
// toggle committing between the completion read and the wipe must either be
// included in the wipe or abort the advance, never survive into the new
// level. Postgres needs serializable for that; the read-committed default
// would let the row through. SQLite transactions are serialized already, so
// the default suffices there.
func advanceTxOptions(name dialect.Name) *sql.TxOptions {
	if name == dialect.PG {
		return &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
	return &sql.TxOptions{}
}

func (s *expeditionStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx expedition.Store) error) error {
	db, ok := s.db.(*bun.DB)
	if !ok {
		// Already inside a transaction; reuse it.
		return fn(ctx, s)
	}

	var err error
	for attempt := 0; attempt < advanceTxRetries; attempt++ {
		err = db.RunInTx(ctx, s.txOpts, func(ctx context.Context, tx bun.Tx) error {
			return fn(ctx, &expeditionStore{db: tx, txOpts: s.txOpts})
		})
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// isSerializationFailure matches SQLSTATE 40001, raised by Postgres when a
// serializable transaction loses a conflict. Restarting re-evaluates the
// gates from scratch.
func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "40001")
}

func (s *expeditionStore) ProfileByID(ctx context.Context, profileID int64) (*models.RaiderProfile, error) {
	profile := new(models.RaiderProfile)
	err := s.db.NewSelect().
		Model(profile).
		Where("rp.id = ?", profileID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, expedition.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *expeditionStore) RequirementsAtLevel(ctx context.Context, level int) ([]*models.ExpeditionRequirement, error) {
	var requirements []*models.ExpeditionRequirement
	err := s.db.NewSelect().
		Model(&requirements).
		Where("expedition_level = ?", level).
		Order("part_number ASC", "display_order ASC", "item_name ASC").
		Scan(ctx)
	return requirements, err
}

func (s *expeditionStore) CountRequirementsAtLevel(ctx context.Context, level int) (int, error) {
	return s.db.NewSelect().
		Model((*models.ExpeditionRequirement)(nil)).
		Where("expedition_level = ?", level).
		Count(ctx)
}

func (s *expeditionStore) CompletedItems(ctx context.Context, profileID int64) ([]*models.CompletedExpeditionItem, error) {
	var items []*models.CompletedExpeditionItem
	err := s.db.NewSelect().
		Model(&items).
		Where("raider_profile_id = ?", profileID).
		Scan(ctx)
	return items, err
}

func (s *expeditionStore) SetExpeditionLevel(ctx context.Context, profileID int64, level int) error {
	res, err := s.db.NewUpdate().
		Model((*models.RaiderProfile)(nil)).
		Set("expedition_level = ?", level).
		Set("updated_at = CURRENT_TIMESTAMP").
		Where("id = ?", profileID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return expedition.ErrProfileNotFound
	}
	return nil
}

// PurgeProgress wipes every per-level fact table for the profile so the next
// level starts from a clean slate.
func (s *expeditionStore) PurgeProgress(ctx context.Context, profileID int64) error {
	facts := []interface{}{
		(*models.CompletedQuest)(nil),
		(*models.OwnedBlueprint)(nil),
		(*models.CompletedWorkbench)(nil),
		(*models.CompletedExpeditionPart)(nil),
		(*models.CompletedExpeditionItem)(nil),
	}
	for _, fact := range facts {
		if _, err := s.db.NewDelete().
			Model(fact).
			Where("raider_profile_id = ?", profileID).
			Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
