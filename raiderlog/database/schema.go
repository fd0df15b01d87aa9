package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/uptrace/bun"
)

// CreateSchema creates all application tables and indexes if they do not
// exist yet. Both dialects accept the generated DDL.
func (db *DB) CreateSchema(ctx context.Context) error {
	return CreateSchema(ctx, db.bunDB)
}

// CreateSchema is the package-level variant so tests can prepare an
// in-memory database without a DB wrapper.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	start := time.Now()

	tables := []interface{}{
		(*models.RaiderProfile)(nil),
		(*models.ExpeditionRequirement)(nil),
		(*models.CompletedExpeditionItem)(nil),
		(*models.CompletedQuest)(nil),
		(*models.OwnedBlueprint)(nil),
		(*models.CompletedWorkbench)(nil),
		(*models.CompletedExpeditionPart)(nil),
		(*models.Quest)(nil),
		(*models.Blueprint)(nil),
		(*models.Workbench)(nil),
		(*models.RaiderFavorite)(nil),
	}

	for _, table := range tables {
		if _, err := db.NewCreateTable().
			Model(table).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", table, err)
		}
	}

	indexes := []struct {
		name    string
		model   interface{}
		columns []string
		unique  bool
	}{
		{"idx_requirements_level_part_item", (*models.ExpeditionRequirement)(nil), []string{"expedition_level", "part_number", "item_name"}, true},
		{"idx_completed_items_profile_part_item", (*models.CompletedExpeditionItem)(nil), []string{"raider_profile_id", "part_name", "item_name"}, true},
		{"idx_completed_quests_profile_quest", (*models.CompletedQuest)(nil), []string{"raider_profile_id", "quest_id"}, true},
		{"idx_owned_blueprints_profile_blueprint", (*models.OwnedBlueprint)(nil), []string{"raider_profile_id", "blueprint_id"}, true},
		{"idx_completed_workbenches_profile_workbench", (*models.CompletedWorkbench)(nil), []string{"raider_profile_id", "workbench_id"}, true},
		{"idx_completed_parts_profile_part", (*models.CompletedExpeditionPart)(nil), []string{"raider_profile_id", "part_name"}, true},
		{"idx_favorites_user_profile", (*models.RaiderFavorite)(nil), []string{"user_id", "raider_profile_id"}, true},
		{"idx_requirements_level", (*models.ExpeditionRequirement)(nil), []string{"expedition_level"}, false},
	}

	for _, idx := range indexes {
		q := db.NewCreateIndex().
			Model(idx.model).
			Index(idx.name).
			Column(idx.columns...).
			IfNotExists()
		if idx.unique {
			q = q.Unique()
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	slog.Info("Database schema ready",
		slog.String("type", "db"),
		slog.Int("tables", len(tables)),
		slog.Duration("took", time.Since(start)))

	return nil
}
