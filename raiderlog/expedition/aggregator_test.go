package expedition_test

import (
	"context"
	"testing"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/raiderlog/raiderlog/raiderlog/expedition"
	"go.uber.org/mock/gomock"
)

func TestAggregator_Progress(t *testing.T) {
	store := storeMock(t)
	store.EXPECT().ProfileByID(gomock.Any(), int64(7)).Return(profileAt(2), nil)
	store.EXPECT().RequirementsAtLevel(gomock.Any(), 2).Return([]*models.ExpeditionRequirement{
		requirement(2, 1, "Wire", 3),
		requirement(2, 1, "Battery", 1),
		requirement(2, 2, "Gear", 5),
	}, nil)
	store.EXPECT().CompletedItems(gomock.Any(), int64(7)).Return([]*models.CompletedExpeditionItem{
		completedItem("Part 1", "Wire"),
		completedItem("Part 4", "Lens"), // stale row from a prior level
	}, nil)
	store.EXPECT().CountRequirementsAtLevel(gomock.Any(), 3).Return(2, nil)

	aggregator := expedition.NewAggregator(store)
	progress, err := aggregator.Progress(context.Background(), 7)
	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}

	if progress.Level != 2 {
		t.Errorf("Progress() level = %d, want 2", progress.Level)
	}
	if !progress.NextLevelExists {
		t.Error("Progress() next level should exist")
	}
	if progress.CompletedMatching != 1 {
		t.Errorf("Progress() matching = %d, want 1", progress.CompletedMatching)
	}
	if progress.CompletedTotal != 2 {
		t.Errorf("Progress() total = %d, want 2", progress.CompletedTotal)
	}
	if len(progress.Requirements) != 3 {
		t.Fatalf("Progress() requirements = %d, want 3", len(progress.Requirements))
	}

	// The aggregator and advancer share the same label rendering, so the
	// Wire requirement in part 1 is done and the others are not.
	for _, status := range progress.Requirements {
		wantDone := status.PartName == "Part 1" && status.Requirement.ItemName == "Wire"
		if status.Completed != wantDone {
			t.Errorf("requirement (%s, %s) completed = %v, want %v",
				status.PartName, status.Requirement.ItemName, status.Completed, wantDone)
		}
	}
}

func TestAggregator_Remaining(t *testing.T) {
	store := storeMock(t)
	store.EXPECT().ProfileByID(gomock.Any(), int64(7)).Return(profileAt(2), nil)
	store.EXPECT().RequirementsAtLevel(gomock.Any(), 2).Return([]*models.ExpeditionRequirement{
		requirement(2, 1, "Wire", 3),
		requirement(2, 1, "Battery", 1),
	}, nil)
	store.EXPECT().CompletedItems(gomock.Any(), int64(7)).Return([]*models.CompletedExpeditionItem{
		completedItem("Part 1", "Wire"),
	}, nil)
	store.EXPECT().CountRequirementsAtLevel(gomock.Any(), 3).Return(1, nil)

	aggregator := expedition.NewAggregator(store)
	remaining, err := aggregator.Remaining(context.Background(), 7)
	if err != nil {
		t.Fatalf("Remaining() error = %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("Remaining() = %d requirements, want 1", len(remaining))
	}
	if remaining[0].Requirement.ItemName != "Battery" {
		t.Errorf("Remaining() item = %q, want Battery", remaining[0].Requirement.ItemName)
	}
}
