package models

import (
	"time"

	"github.com/uptrace/bun"
)

// RaiderProfile tracks one player's progression. A user owns at most one
// profile; the expedition level only ever moves forward.
type RaiderProfile struct {
	bun.BaseModel `bun:"table:raider_profiles,alias:rp"`

	ID              int64  `bun:"id,pk,autoincrement"`
	UserID          string `bun:"user_id,notnull,unique"`
	DisplayName     string `bun:"display_name,notnull,default:''"`
	ExpeditionLevel int    `bun:"expedition_level,notnull,default:1"`
	Active          bool   `bun:"active,notnull,default:true"`
	Public          bool   `bun:"public,notnull,default:false"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
