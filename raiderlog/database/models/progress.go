package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Per-profile fact tables. Each row means "this profile has checked this
// thing off". All five are bulk-purged when the profile advances to the next
// expedition level.

// CompletedExpeditionItem records one checked-off material requirement.
// PartName is the rendered "Part {n}" label, not a foreign key to
// expedition_requirements.part_number; the expedition package owns the
// rendering so both sides of the join agree.
type CompletedExpeditionItem struct {
	bun.BaseModel `bun:"table:raider_completed_expedition_items,alias:cei"`

	ID              int64  `bun:"id,pk,autoincrement"`
	RaiderProfileID int64  `bun:"raider_profile_id,notnull"`
	PartName        string `bun:"part_name,notnull"`
	ItemName        string `bun:"item_name,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type CompletedQuest struct {
	bun.BaseModel `bun:"table:raider_completed_quests,alias:cq"`

	ID              int64 `bun:"id,pk,autoincrement"`
	RaiderProfileID int64 `bun:"raider_profile_id,notnull"`
	QuestID         int64 `bun:"quest_id,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type OwnedBlueprint struct {
	bun.BaseModel `bun:"table:raider_owned_blueprints,alias:ob"`

	ID              int64 `bun:"id,pk,autoincrement"`
	RaiderProfileID int64 `bun:"raider_profile_id,notnull"`
	BlueprintID     int64 `bun:"blueprint_id,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type CompletedWorkbench struct {
	bun.BaseModel `bun:"table:raider_completed_workbenches,alias:cw"`

	ID              int64 `bun:"id,pk,autoincrement"`
	RaiderProfileID int64 `bun:"raider_profile_id,notnull"`
	WorkbenchID     int64 `bun:"workbench_id,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type CompletedExpeditionPart struct {
	bun.BaseModel `bun:"table:raider_completed_expedition_parts,alias:cep"`

	ID              int64  `bun:"id,pk,autoincrement"`
	RaiderProfileID int64  `bun:"raider_profile_id,notnull"`
	PartName        string `bun:"part_name,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
