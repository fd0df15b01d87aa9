package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Reference game data tracked against. Maintained by admins, displayed to
// everyone, joined by the per-profile fact tables.

type Quest struct {
	bun.BaseModel `bun:"table:quests,alias:q"`

	ID           int64  `bun:"id,pk,autoincrement"`
	Name         string `bun:"name,notnull"`
	Trader       string `bun:"trader,notnull,default:''"`
	Chain        string `bun:"chain,notnull,default:''"`
	DisplayOrder int    `bun:"display_order,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type Blueprint struct {
	bun.BaseModel `bun:"table:blueprints,alias:b"`

	ID           int64  `bun:"id,pk,autoincrement"`
	Name         string `bun:"name,notnull"`
	Category     string `bun:"category,notnull,default:''"`
	DisplayOrder int    `bun:"display_order,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type Workbench struct {
	bun.BaseModel `bun:"table:workbenches,alias:w"`

	ID           int64  `bun:"id,pk,autoincrement"`
	Name         string `bun:"name,notnull"`
	Tier         int    `bun:"tier,notnull,default:1"`
	DisplayOrder int    `bun:"display_order,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
