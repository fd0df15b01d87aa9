package expedition_test

import (
	"context"
	"errors"
	"testing"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/raiderlog/raiderlog/raiderlog/expedition"
	"github.com/raiderlog/raiderlog/raiderlog/expedition/mock"
	"go.uber.org/mock/gomock"
)

func storeMock(t *testing.T) *mock.MockStore {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, expedition.Store) error) error {
			return fn(ctx, store)
		}).
		AnyTimes()
	return store
}

func profileAt(level int) *models.RaiderProfile {
	return &models.RaiderProfile{ID: 7, UserID: "user-1", ExpeditionLevel: level}
}

func requirement(level, part int, item string, qty int) *models.ExpeditionRequirement {
	return &models.ExpeditionRequirement{
		ExpeditionLevel: level,
		PartNumber:      part,
		ItemName:        item,
		Quantity:        qty,
	}
}

func completedItem(part, item string) *models.CompletedExpeditionItem {
	return &models.CompletedExpeditionItem{RaiderProfileID: 7, PartName: part, ItemName: item}
}

func TestAdvancer_Advance_Success(t *testing.T) {
	store := storeMock(t)
	store.EXPECT().ProfileByID(gomock.Any(), int64(7)).Return(profileAt(2), nil)
	store.EXPECT().RequirementsAtLevel(gomock.Any(), 2).Return([]*models.ExpeditionRequirement{
		requirement(2, 1, "Wire", 3),
		requirement(2, 1, "Battery", 1),
	}, nil)
	store.EXPECT().CompletedItems(gomock.Any(), int64(7)).Return([]*models.CompletedExpeditionItem{
		completedItem("Part 1", "Wire"),
		completedItem("Part 1", "Battery"),
	}, nil)
	store.EXPECT().CountRequirementsAtLevel(gomock.Any(), 3).Return(4, nil)
	store.EXPECT().SetExpeditionLevel(gomock.Any(), int64(7), 3).Return(nil)
	store.EXPECT().PurgeProgress(gomock.Any(), int64(7)).Return(nil)

	advancer := expedition.NewAdvancer(store)
	result, err := advancer.Advance(context.Background(), 7)
	if err != nil {
		t.Fatalf("Advance() error = %v, want nil", err)
	}
	if result.NewExpeditionLevel != 3 {
		t.Errorf("Advance() new level = %d, want 3", result.NewExpeditionLevel)
	}
}

func TestAdvancer_Advance_Incomplete(t *testing.T) {
	store := storeMock(t)
	store.EXPECT().ProfileByID(gomock.Any(), int64(7)).Return(profileAt(2), nil)
	store.EXPECT().RequirementsAtLevel(gomock.Any(), 2).Return([]*models.ExpeditionRequirement{
		requirement(2, 1, "Wire", 3),
		requirement(2, 1, "Battery", 1),
	}, nil)
	store.EXPECT().CompletedItems(gomock.Any(), int64(7)).Return([]*models.CompletedExpeditionItem{
		completedItem("Part 1", "Wire"),
	}, nil)

	advancer := expedition.NewAdvancer(store)
	_, err := advancer.Advance(context.Background(), 7)

	var incomplete *expedition.IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Advance() error = %v, want IncompleteError", err)
	}
	if incomplete.Completed != 1 || incomplete.Total != 2 {
		t.Errorf("IncompleteError = %d/%d, want 1/2", incomplete.Completed, incomplete.Total)
	}
}

func TestAdvancer_Advance_NoRequirements(t *testing.T) {
	store := storeMock(t)
	store.EXPECT().ProfileByID(gomock.Any(), int64(7)).Return(profileAt(9), nil)
	store.EXPECT().RequirementsAtLevel(gomock.Any(), 9).Return(nil, nil)

	advancer := expedition.NewAdvancer(store)
	_, err := advancer.Advance(context.Background(), 7)
	if !errors.Is(err, expedition.ErrNoRequirements) {
		t.Errorf("Advance() error = %v, want ErrNoRequirements", err)
	}
}

func TestAdvancer_Advance_NextLevelNotAvailable(t *testing.T) {
	store := storeMock(t)
	store.EXPECT().ProfileByID(gomock.Any(), int64(7)).Return(profileAt(5), nil)
	store.EXPECT().RequirementsAtLevel(gomock.Any(), 5).Return([]*models.ExpeditionRequirement{
		requirement(5, 1, "Fuel Cell", 2),
	}, nil)
	store.EXPECT().CompletedItems(gomock.Any(), int64(7)).Return([]*models.CompletedExpeditionItem{
		completedItem("Part 1", "Fuel Cell"),
	}, nil)
	store.EXPECT().CountRequirementsAtLevel(gomock.Any(), 6).Return(0, nil)

	advancer := expedition.NewAdvancer(store)
	_, err := advancer.Advance(context.Background(), 7)

	var notAvailable *expedition.NotAvailableError
	if !errors.As(err, &notAvailable) {
		t.Fatalf("Advance() error = %v, want NotAvailableError", err)
	}
	if notAvailable.Level != 5 {
		t.Errorf("NotAvailableError level = %d, want 5", notAvailable.Level)
	}
}

func TestAdvancer_Advance_ProfileNotFound(t *testing.T) {
	store := storeMock(t)
	store.EXPECT().ProfileByID(gomock.Any(), int64(7)).Return(nil, expedition.ErrProfileNotFound)

	advancer := expedition.NewAdvancer(store)
	_, err := advancer.Advance(context.Background(), 7)
	if !errors.Is(err, expedition.ErrProfileNotFound) {
		t.Errorf("Advance() error = %v, want ErrProfileNotFound", err)
	}
}

func TestAdvancer_Advance_StaleCompletionsDoNotMatch(t *testing.T) {
	// Leftover rows from a different part label must not satisfy a
	// requirement that renders to another label.
	store := storeMock(t)
	store.EXPECT().ProfileByID(gomock.Any(), int64(7)).Return(profileAt(2), nil)
	store.EXPECT().RequirementsAtLevel(gomock.Any(), 2).Return([]*models.ExpeditionRequirement{
		requirement(2, 2, "Wire", 3),
	}, nil)
	store.EXPECT().CompletedItems(gomock.Any(), int64(7)).Return([]*models.CompletedExpeditionItem{
		completedItem("Part 1", "Wire"),
		completedItem("Part 3", "Wire"),
	}, nil)

	advancer := expedition.NewAdvancer(store)
	_, err := advancer.Advance(context.Background(), 7)

	var incomplete *expedition.IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Advance() error = %v, want IncompleteError", err)
	}
	// completedCount is the raw row count, not the matching subset.
	if incomplete.Completed != 2 || incomplete.Total != 1 {
		t.Errorf("IncompleteError = %d/%d, want 2/1", incomplete.Completed, incomplete.Total)
	}
}

func TestAdvancer_Advance_StoreFailureRollsThrough(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := storeMock(t)
	store.EXPECT().ProfileByID(gomock.Any(), int64(7)).Return(profileAt(2), nil)
	store.EXPECT().RequirementsAtLevel(gomock.Any(), 2).Return(nil, storeErr)

	advancer := expedition.NewAdvancer(store)
	_, err := advancer.Advance(context.Background(), 7)
	if !errors.Is(err, storeErr) {
		t.Errorf("Advance() error = %v, want wrapped store error", err)
	}
}
