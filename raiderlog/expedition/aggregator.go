package expedition

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
)

// Aggregator answers "what must this profile still complete at its current
// level". It shares the PartLabel join rule with the Advancer so the UI and
// the gate can never disagree about what counts as done.
type Aggregator struct {
	store Store
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// RequirementStatus annotates one authored requirement with its rendered
// part label and whether the profile has checked it off.
type RequirementStatus struct {
	Requirement *models.ExpeditionRequirement
	PartName    string
	Completed   bool
}

// Progress describes a profile's standing at its current expedition level.
// CompletedMatching counts only completions that match a requirement at this
// level; CompletedTotal is the raw completion-row count reported by the
// advancer's gating error.
type Progress struct {
	ProfileID         int64
	Level             int
	NextLevelExists   bool
	CompletedMatching int
	CompletedTotal    int
	Requirements      []RequirementStatus
}

// Progress computes the requirement-by-requirement completion state for the
// profile's current level.
func (a *Aggregator) Progress(ctx context.Context, profileID int64) (*Progress, error) {
	profile, err := a.store.ProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	// The three reads only depend on the profile's level, not on each other.
	var (
		requirements []*models.ExpeditionRequirement
		completed    []*models.CompletedExpeditionItem
		nextCount    int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requirements, err = a.store.RequirementsAtLevel(gctx, profile.ExpeditionLevel)
		return err
	})
	g.Go(func() error {
		var err error
		completed, err = a.store.CompletedItems(gctx, profileID)
		return err
	})
	g.Go(func() error {
		var err error
		nextCount, err = a.store.CountRequirementsAtLevel(gctx, profile.ExpeditionLevel+1)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	done := make(map[itemKey]struct{}, len(completed))
	for _, item := range completed {
		done[itemKey{item.PartName, item.ItemName}] = struct{}{}
	}

	progress := &Progress{
		ProfileID:       profileID,
		Level:           profile.ExpeditionLevel,
		NextLevelExists: nextCount > 0,
		CompletedTotal:  len(completed),
		Requirements:    make([]RequirementStatus, 0, len(requirements)),
	}

	for _, req := range requirements {
		partName := PartLabel(req.PartNumber)
		_, ok := done[itemKey{partName, req.ItemName}]
		if ok {
			progress.CompletedMatching++
		}
		progress.Requirements = append(progress.Requirements, RequirementStatus{
			Requirement: req,
			PartName:    partName,
			Completed:   ok,
		})
	}

	return progress, nil
}

// Remaining filters Progress down to the requirements still missing.
func (a *Aggregator) Remaining(ctx context.Context, profileID int64) ([]RequirementStatus, error) {
	progress, err := a.Progress(ctx, profileID)
	if err != nil {
		return nil, err
	}

	remaining := make([]RequirementStatus, 0, len(progress.Requirements))
	for _, status := range progress.Requirements {
		if !status.Completed {
			remaining = append(remaining, status)
		}
	}
	return remaining, nil
}
