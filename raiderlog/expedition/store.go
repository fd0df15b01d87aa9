package expedition

import (
	"context"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
)

//go:generate mockgen -destination=mock/store.go -package=mock github.com/raiderlog/raiderlog/raiderlog/expedition Store

// Store is the persistence surface the advancer and aggregator depend on.
// WithinTx runs fn against a Store bound to one database transaction; every
// call made through that Store commits or rolls back together.
type Store interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error

	ProfileByID(ctx context.Context, profileID int64) (*models.RaiderProfile, error)
	RequirementsAtLevel(ctx context.Context, level int) ([]*models.ExpeditionRequirement, error)
	CountRequirementsAtLevel(ctx context.Context, level int) (int, error)
	CompletedItems(ctx context.Context, profileID int64) ([]*models.CompletedExpeditionItem, error)
	SetExpeditionLevel(ctx context.Context, profileID int64, level int) error
	PurgeProgress(ctx context.Context, profileID int64) error
}
