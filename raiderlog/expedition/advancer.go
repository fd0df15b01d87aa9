package expedition

import (
	"context"
	"log/slog"
	"time"
)

// Advancer decides whether a raider profile may progress to the next
// expedition level and performs the level-up as one transaction: bump the
// level, wipe every per-level fact table. A profile's level only moves
// forward one step at a time; there is no downgrade or skip.
type Advancer struct {
	store Store
}

func NewAdvancer(store Store) *Advancer {
	return &Advancer{store: store}
}

// AdvanceResult reports a successful level-up.
type AdvanceResult struct {
	NewExpeditionLevel int
}

type itemKey struct {
	partName string
	itemName string
}

// Advance validates completion of every requirement at the profile's current
// level and, if satisfied, increments the level and purges all progress
// records. Ownership must already have been checked by the caller; existence
// is re-verified inside the transaction to catch a concurrent deletion.
func (a *Advancer) Advance(ctx context.Context, profileID int64) (*AdvanceResult, error) {
	start := time.Now()

	var result *AdvanceResult
	err := a.store.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		profile, err := tx.ProfileByID(ctx, profileID)
		if err != nil {
			return err
		}

		requirements, err := tx.RequirementsAtLevel(ctx, profile.ExpeditionLevel)
		if err != nil {
			return err
		}
		if len(requirements) == 0 {
			return ErrNoRequirements
		}

		completed, err := tx.CompletedItems(ctx, profileID)
		if err != nil {
			return err
		}

		done := make(map[itemKey]struct{}, len(completed))
		for _, item := range completed {
			done[itemKey{item.PartName, item.ItemName}] = struct{}{}
		}

		for _, req := range requirements {
			key := itemKey{PartLabel(req.PartNumber), req.ItemName}
			if _, ok := done[key]; !ok {
				return &IncompleteError{Completed: len(completed), Total: len(requirements)}
			}
		}

		nextLevel := profile.ExpeditionLevel + 1
		available, err := tx.CountRequirementsAtLevel(ctx, nextLevel)
		if err != nil {
			return err
		}
		if available == 0 {
			return &NotAvailableError{Level: profile.ExpeditionLevel}
		}

		if err := tx.SetExpeditionLevel(ctx, profileID, nextLevel); err != nil {
			return err
		}
		if err := tx.PurgeProgress(ctx, profileID); err != nil {
			return err
		}

		result = &AdvanceResult{NewExpeditionLevel: nextLevel}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Expedition completed",
		slog.Int64("profile_id", profileID),
		slog.Int("new_level", result.NewExpeditionLevel),
		slog.Duration("took", time.Since(start)))

	return result, nil
}
