package services

import (
	"context"
	"testing"
	"time"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
)

type stubRequirementRepo struct {
	byLevelCalls int
	rows         []*models.ExpeditionRequirement
}

func (s *stubRequirementRepo) Create(context.Context, *models.ExpeditionRequirement) error {
	panic("unexpected call")
}
func (s *stubRequirementRepo) GetByID(context.Context, int64) (*models.ExpeditionRequirement, error) {
	panic("unexpected call")
}
func (s *stubRequirementRepo) GetAll(context.Context) ([]*models.ExpeditionRequirement, error) {
	panic("unexpected call")
}
func (s *stubRequirementRepo) Update(context.Context, *models.ExpeditionRequirement) error {
	panic("unexpected call")
}
func (s *stubRequirementRepo) Delete(context.Context, int64) error {
	panic("unexpected call")
}

func (s *stubRequirementRepo) GetByLevel(ctx context.Context, level int) ([]*models.ExpeditionRequirement, error) {
	s.byLevelCalls++
	return s.rows, nil
}

func TestRequirementCache_ByLevel(t *testing.T) {
	repo := &stubRequirementRepo{rows: []*models.ExpeditionRequirement{
		{ExpeditionLevel: 2, PartNumber: 1, ItemName: "Wire"},
	}}
	cache := NewRequirementCache(repo, time.Minute)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		rows, err := cache.ByLevel(ctx, 2)
		if err != nil {
			t.Fatalf("ByLevel() error = %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("ByLevel() = %d rows, want 1", len(rows))
		}
	}
	if repo.byLevelCalls != 1 {
		t.Errorf("repository hit %d times, want 1 (cached)", repo.byLevelCalls)
	}

	cache.Invalidate(2)
	if _, err := cache.ByLevel(ctx, 2); err != nil {
		t.Fatalf("ByLevel() after invalidate error = %v", err)
	}
	if repo.byLevelCalls != 2 {
		t.Errorf("repository hit %d times after invalidate, want 2", repo.byLevelCalls)
	}
}
