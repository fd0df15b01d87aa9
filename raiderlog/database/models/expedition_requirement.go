package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ExpeditionRequirement is an authored material requirement for one part of
// an expedition level. Reference data: read-only from the tracker's point of
// view, maintained through the admin CRUD routes.
type ExpeditionRequirement struct {
	bun.BaseModel `bun:"table:expedition_requirements,alias:er"`

	ID              int64  `bun:"id,pk,autoincrement"`
	ExpeditionLevel int    `bun:"expedition_level,notnull"`
	PartNumber      int    `bun:"part_number,notnull"`
	ItemName        string `bun:"item_name,notnull"`
	Quantity        int    `bun:"quantity,notnull,default:1"`
	Location        string `bun:"location,type:text,default:''"`
	DisplayOrder    int    `bun:"display_order,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
