package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/uptrace/bun"
)

// ErrProfileExists is returned when a user already has a raider profile.
var ErrProfileExists = errors.New("raider profile already exists for this user")

// ErrProfileNotFound is returned when no profile row matches the id.
var ErrProfileNotFound = errors.New("raider profile not found")

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.RaiderProfile) error
	GetByID(ctx context.Context, id int64) (*models.RaiderProfile, error)
	GetByUserID(ctx context.Context, userID string) (*models.RaiderProfile, error)
	Update(ctx context.Context, profile *models.RaiderProfile) error
	Delete(ctx context.Context, id int64) error
	GetPublic(ctx context.Context) ([]*models.RaiderProfile, error)
}

type profileRepository struct {
	db *bun.DB
}

func NewProfileRepository(db *bun.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.RaiderProfile) error {
	// New profiles start at expedition level 1.
	if profile.ExpeditionLevel == 0 {
		profile.ExpeditionLevel = 1
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()

	_, err := r.db.NewInsert().Model(profile).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrProfileExists
		}
		return err
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id int64) (*models.RaiderProfile, error) {
	profile := new(models.RaiderProfile)
	err := r.db.NewSelect().
		Model(profile).
		Where("rp.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrProfileNotFound, id)
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.RaiderProfile, error) {
	profile := new(models.RaiderProfile)
	err := r.db.NewSelect().
		Model(profile).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.RaiderProfile) error {
	profile.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(profile).
		Column("display_name", "active", "public", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}

// Delete removes the profile and all its fact rows. Used by the account
// deletion cascade only.
func (r *profileRepository) Delete(ctx context.Context, id int64) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		facts := []interface{}{
			(*models.CompletedQuest)(nil),
			(*models.OwnedBlueprint)(nil),
			(*models.CompletedWorkbench)(nil),
			(*models.CompletedExpeditionPart)(nil),
			(*models.CompletedExpeditionItem)(nil),
		}
		for _, fact := range facts {
			if _, err := tx.NewDelete().
				Model(fact).
				Where("raider_profile_id = ?", id).
				Exec(ctx); err != nil {
				return err
			}
		}
		if _, err := tx.NewDelete().
			Model((*models.RaiderFavorite)(nil)).
			Where("raider_profile_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewDelete().
			Model((*models.RaiderProfile)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
}

func (r *profileRepository) GetPublic(ctx context.Context) ([]*models.RaiderProfile, error) {
	var profiles []*models.RaiderProfile
	err := r.db.NewSelect().
		Model(&profiles).
		Where("public = ?", true).
		Where("active = ?", true).
		Order("display_name ASC").
		Scan(ctx)
	return profiles, err
}

// isUniqueViolation matches unique-constraint failures from both backends.
// pgdriver surfaces SQLSTATE 23505; modernc sqlite reports "UNIQUE
// constraint failed" in the message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
