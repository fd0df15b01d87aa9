package repositories

import (
	"context"
	"time"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/uptrace/bun"
)

// ProgressCounts summarizes a profile's checked-off rows per fact table.
type ProgressCounts struct {
	Quests      int `json:"quests"`
	Blueprints  int `json:"blueprints"`
	Workbenches int `json:"workbenches"`
	Parts       int `json:"parts"`
	Items       int `json:"items"`
}

// ProgressRepository mutates the per-profile fact tables through the direct
// toggle endpoints. Checking twice is a no-op; unchecking something that was
// never checked is a no-op. Bulk purges on level-up go through the
// expedition store instead so they share the advance transaction.
type ProgressRepository interface {
	SetQuestCompleted(ctx context.Context, profileID, questID int64) error
	ClearQuestCompleted(ctx context.Context, profileID, questID int64) error
	GetCompletedQuests(ctx context.Context, profileID int64) ([]*models.CompletedQuest, error)

	SetBlueprintOwned(ctx context.Context, profileID, blueprintID int64) error
	ClearBlueprintOwned(ctx context.Context, profileID, blueprintID int64) error
	GetOwnedBlueprints(ctx context.Context, profileID int64) ([]*models.OwnedBlueprint, error)

	SetWorkbenchCompleted(ctx context.Context, profileID, workbenchID int64) error
	ClearWorkbenchCompleted(ctx context.Context, profileID, workbenchID int64) error
	GetCompletedWorkbenches(ctx context.Context, profileID int64) ([]*models.CompletedWorkbench, error)

	SetPartCompleted(ctx context.Context, profileID int64, partName string) error
	ClearPartCompleted(ctx context.Context, profileID int64, partName string) error
	GetCompletedParts(ctx context.Context, profileID int64) ([]*models.CompletedExpeditionPart, error)

	SetItemCompleted(ctx context.Context, profileID int64, partName, itemName string) error
	ClearItemCompleted(ctx context.Context, profileID int64, partName, itemName string) error
	GetCompletedItems(ctx context.Context, profileID int64) ([]*models.CompletedExpeditionItem, error)

	Counts(ctx context.Context, profileID int64) (*ProgressCounts, error)
}

type progressRepository struct {
	db *bun.DB
}

func NewProgressRepository(db *bun.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) SetQuestCompleted(ctx context.Context, profileID, questID int64) error {
	record := &models.CompletedQuest{
		RaiderProfileID: profileID,
		QuestID:         questID,
		CreatedAt:       time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	return err
}

func (r *progressRepository) ClearQuestCompleted(ctx context.Context, profileID, questID int64) error {
	_, err := r.db.NewDelete().
		Model((*models.CompletedQuest)(nil)).
		Where("raider_profile_id = ? AND quest_id = ?", profileID, questID).
		Exec(ctx)
	return err
}

func (r *progressRepository) GetCompletedQuests(ctx context.Context, profileID int64) ([]*models.CompletedQuest, error) {
	var records []*models.CompletedQuest
	err := r.db.NewSelect().
		Model(&records).
		Where("raider_profile_id = ?", profileID).
		Order("quest_id ASC").
		Scan(ctx)
	return records, err
}

func (r *progressRepository) SetBlueprintOwned(ctx context.Context, profileID, blueprintID int64) error {
	record := &models.OwnedBlueprint{
		RaiderProfileID: profileID,
		BlueprintID:     blueprintID,
		CreatedAt:       time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	return err
}

func (r *progressRepository) ClearBlueprintOwned(ctx context.Context, profileID, blueprintID int64) error {
	_, err := r.db.NewDelete().
		Model((*models.OwnedBlueprint)(nil)).
		Where("raider_profile_id = ? AND blueprint_id = ?", profileID, blueprintID).
		Exec(ctx)
	return err
}

func (r *progressRepository) GetOwnedBlueprints(ctx context.Context, profileID int64) ([]*models.OwnedBlueprint, error) {
	var records []*models.OwnedBlueprint
	err := r.db.NewSelect().
		Model(&records).
		Where("raider_profile_id = ?", profileID).
		Order("blueprint_id ASC").
		Scan(ctx)
	return records, err
}

func (r *progressRepository) SetWorkbenchCompleted(ctx context.Context, profileID, workbenchID int64) error {
	record := &models.CompletedWorkbench{
		RaiderProfileID: profileID,
		WorkbenchID:     workbenchID,
		CreatedAt:       time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	return err
}

func (r *progressRepository) ClearWorkbenchCompleted(ctx context.Context, profileID, workbenchID int64) error {
	_, err := r.db.NewDelete().
		Model((*models.CompletedWorkbench)(nil)).
		Where("raider_profile_id = ? AND workbench_id = ?", profileID, workbenchID).
		Exec(ctx)
	return err
}

func (r *progressRepository) GetCompletedWorkbenches(ctx context.Context, profileID int64) ([]*models.CompletedWorkbench, error) {
	var records []*models.CompletedWorkbench
	err := r.db.NewSelect().
		Model(&records).
		Where("raider_profile_id = ?", profileID).
		Order("workbench_id ASC").
		Scan(ctx)
	return records, err
}

func (r *progressRepository) SetPartCompleted(ctx context.Context, profileID int64, partName string) error {
	record := &models.CompletedExpeditionPart{
		RaiderProfileID: profileID,
		PartName:        partName,
		CreatedAt:       time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	return err
}

func (r *progressRepository) ClearPartCompleted(ctx context.Context, profileID int64, partName string) error {
	_, err := r.db.NewDelete().
		Model((*models.CompletedExpeditionPart)(nil)).
		Where("raider_profile_id = ? AND part_name = ?", profileID, partName).
		Exec(ctx)
	return err
}

func (r *progressRepository) GetCompletedParts(ctx context.Context, profileID int64) ([]*models.CompletedExpeditionPart, error) {
	var records []*models.CompletedExpeditionPart
	err := r.db.NewSelect().
		Model(&records).
		Where("raider_profile_id = ?", profileID).
		Order("part_name ASC").
		Scan(ctx)
	return records, err
}

func (r *progressRepository) SetItemCompleted(ctx context.Context, profileID int64, partName, itemName string) error {
	record := &models.CompletedExpeditionItem{
		RaiderProfileID: profileID,
		PartName:        partName,
		ItemName:        itemName,
		CreatedAt:       time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	return err
}

func (r *progressRepository) ClearItemCompleted(ctx context.Context, profileID int64, partName, itemName string) error {
	_, err := r.db.NewDelete().
		Model((*models.CompletedExpeditionItem)(nil)).
		Where("raider_profile_id = ? AND part_name = ? AND item_name = ?", profileID, partName, itemName).
		Exec(ctx)
	return err
}

func (r *progressRepository) GetCompletedItems(ctx context.Context, profileID int64) ([]*models.CompletedExpeditionItem, error) {
	var records []*models.CompletedExpeditionItem
	err := r.db.NewSelect().
		Model(&records).
		Where("raider_profile_id = ?", profileID).
		Order("part_name ASC", "item_name ASC").
		Scan(ctx)
	return records, err
}

func (r *progressRepository) Counts(ctx context.Context, profileID int64) (*ProgressCounts, error) {
	counts := new(ProgressCounts)

	tables := []struct {
		model interface{}
		dest  *int
	}{
		{(*models.CompletedQuest)(nil), &counts.Quests},
		{(*models.OwnedBlueprint)(nil), &counts.Blueprints},
		{(*models.CompletedWorkbench)(nil), &counts.Workbenches},
		{(*models.CompletedExpeditionPart)(nil), &counts.Parts},
		{(*models.CompletedExpeditionItem)(nil), &counts.Items},
	}
	for _, table := range tables {
		n, err := r.db.NewSelect().
			Model(table.model).
			Where("raider_profile_id = ?", profileID).
			Count(ctx)
		if err != nil {
			return nil, err
		}
		*table.dest = n
	}
	return counts, nil
}
