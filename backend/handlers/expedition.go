package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/raiderlog/raiderlog/backend/utils"
	"github.com/raiderlog/raiderlog/raiderlog/expedition"
)

// CompleteExpedition advances the raider to the next expedition level. The
// advancer re-verifies everything inside its own transaction, so this
// handler only maps outcomes to status codes.
//
// The response shapes here are a fixed wire contract with the frontend: the
// three gating failures share status 400 but carry distinct error codes so
// the UI can tell "not done yet" apart from "content missing".
func CompleteExpedition(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}

		result, err := webApp.Advancer.Advance(c.Context(), profile.ID)
		if err == nil {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"message":            "Expedition completed",
				"newExpeditionLevel": result.NewExpeditionLevel,
			})
		}

		var incomplete *expedition.IncompleteError
		var notAvailable *expedition.NotAvailableError
		switch {
		case errors.Is(err, expedition.ErrProfileNotFound):
			return utils.SendNotFound(c, "Raider profile not found")

		case errors.Is(err, expedition.ErrNoRequirements):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "NO_REQUIREMENTS",
				"message": "No expedition requirements are configured for this level",
			})

		case errors.As(err, &incomplete):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":          "EXPEDITION_INCOMPLETE",
				"message":        "Complete all expedition requirements before advancing",
				"completedCount": incomplete.Completed,
				"totalCount":     incomplete.Total,
			})

		case errors.As(err, &notAvailable):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":        "EXPEDITION_NOT_AVAILABLE",
				"message":      "The next expedition is not available yet",
				"currentLevel": notAvailable.Level,
			})

		default:
			slog.Error("Expedition advance failed",
				slog.Int64("profile_id", profile.ID),
				slog.Any("error", err))
			return utils.SendInternalServerError(c, "Failed to complete expedition")
		}
	}
}

// GetExpeditionProgress returns the requirement-by-requirement completion
// state for the profile's current level.
func GetExpeditionProgress(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}

		progress, err := webApp.Aggregator.Progress(c.Context(), profile.ID)
		if err != nil {
			if errors.Is(err, expedition.ErrProfileNotFound) {
				return utils.SendNotFound(c, "Raider profile not found")
			}
			return utils.SendInternalServerError(c, "Failed to load expedition progress")
		}

		requirements := make([]fiber.Map, 0, len(progress.Requirements))
		for _, status := range progress.Requirements {
			requirements = append(requirements, fiber.Map{
				"id":         status.Requirement.ID,
				"partName":   status.PartName,
				"partNumber": status.Requirement.PartNumber,
				"itemName":   status.Requirement.ItemName,
				"quantity":   status.Requirement.Quantity,
				"location":   status.Requirement.Location,
				"completed":  status.Completed,
			})
		}

		return utils.SendSuccess(c, fiber.Map{
			"expeditionLevel":   progress.Level,
			"nextLevelExists":   progress.NextLevelExists,
			"completedMatching": progress.CompletedMatching,
			"completedTotal":    progress.CompletedTotal,
			"requirements":      requirements,
		}, "")
	}
}

// GetRemainingRequirements lists only the requirements the profile has not
// checked off yet.
func GetRemainingRequirements(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}

		remaining, err := webApp.Aggregator.Remaining(c.Context(), profile.ID)
		if err != nil {
			if errors.Is(err, expedition.ErrProfileNotFound) {
				return utils.SendNotFound(c, "Raider profile not found")
			}
			return utils.SendInternalServerError(c, "Failed to load remaining requirements")
		}

		items := make([]fiber.Map, 0, len(remaining))
		for _, status := range remaining {
			items = append(items, fiber.Map{
				"id":       status.Requirement.ID,
				"partName": status.PartName,
				"itemName": status.Requirement.ItemName,
				"quantity": status.Requirement.Quantity,
				"location": status.Requirement.Location,
			})
		}

		return utils.SendSuccess(c, items, "")
	}
}
