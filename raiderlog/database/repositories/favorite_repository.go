package repositories

import (
	"context"
	"time"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/uptrace/bun"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID string, profileID int64) error
	Remove(ctx context.Context, userID string, profileID int64) error
	GetByUserID(ctx context.Context, userID string) ([]*models.RaiderFavorite, error)
}

type favoriteRepository struct {
	db *bun.DB
}

func NewFavoriteRepository(db *bun.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID string, profileID int64) error {
	favorite := &models.RaiderFavorite{
		UserID:          userID,
		RaiderProfileID: profileID,
		CreatedAt:       time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(favorite).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	return err
}

func (r *favoriteRepository) Remove(ctx context.Context, userID string, profileID int64) error {
	_, err := r.db.NewDelete().
		Model((*models.RaiderFavorite)(nil)).
		Where("user_id = ? AND raider_profile_id = ?", userID, profileID).
		Exec(ctx)
	return err
}

func (r *favoriteRepository) GetByUserID(ctx context.Context, userID string) ([]*models.RaiderFavorite, error) {
	var favorites []*models.RaiderFavorite
	err := r.db.NewSelect().
		Model(&favorites).
		Relation("Profile").
		Where("rf.user_id = ?", userID).
		Order("rf.created_at ASC").
		Scan(ctx)
	return favorites, err
}
