package models

import (
	"time"

	"github.com/uptrace/bun"
)

// RaiderFavorite marks another player's public profile as favorited by a
// user. One row per (user, profile) pair.
type RaiderFavorite struct {
	bun.BaseModel `bun:"table:raider_favorites,alias:rf"`

	ID              int64  `bun:"id,pk,autoincrement"`
	UserID          string `bun:"user_id,notnull"`
	RaiderProfileID int64  `bun:"raider_profile_id,notnull"`

	Profile *RaiderProfile `bun:"rel:belongs-to,join:raider_profile_id=id"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
