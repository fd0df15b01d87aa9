package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/raiderlog/raiderlog/backend/utils"
)

// Toggle handlers for the per-profile fact tables. Checking something off
// twice is a no-op, as is unchecking something never checked, so the UI can
// retry freely.

func SetQuestCompleted(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		questID, err := parseInt64(c.Params("questID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid quest id", nil)
		}
		if err := webApp.Repos.Progress.SetQuestCompleted(c.Context(), profile.ID, questID); err != nil {
			return utils.SendInternalServerError(c, "Failed to record quest completion")
		}
		return utils.SendSuccess(c, nil, "Quest marked completed")
	}
}

func ClearQuestCompleted(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		questID, err := parseInt64(c.Params("questID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid quest id", nil)
		}
		if err := webApp.Repos.Progress.ClearQuestCompleted(c.Context(), profile.ID, questID); err != nil {
			return utils.SendInternalServerError(c, "Failed to clear quest completion")
		}
		return utils.SendSuccess(c, nil, "Quest unmarked")
	}
}

func GetCompletedQuests(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		records, err := webApp.Repos.Progress.GetCompletedQuests(c.Context(), profile.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load completed quests")
		}
		ids := make([]int64, 0, len(records))
		for _, record := range records {
			ids = append(ids, record.QuestID)
		}
		return utils.SendSuccess(c, ids, "")
	}
}

func SetBlueprintOwned(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		blueprintID, err := parseInt64(c.Params("blueprintID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid blueprint id", nil)
		}
		if err := webApp.Repos.Progress.SetBlueprintOwned(c.Context(), profile.ID, blueprintID); err != nil {
			return utils.SendInternalServerError(c, "Failed to record blueprint ownership")
		}
		return utils.SendSuccess(c, nil, "Blueprint marked owned")
	}
}

func ClearBlueprintOwned(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		blueprintID, err := parseInt64(c.Params("blueprintID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid blueprint id", nil)
		}
		if err := webApp.Repos.Progress.ClearBlueprintOwned(c.Context(), profile.ID, blueprintID); err != nil {
			return utils.SendInternalServerError(c, "Failed to clear blueprint ownership")
		}
		return utils.SendSuccess(c, nil, "Blueprint unmarked")
	}
}

func GetOwnedBlueprints(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		records, err := webApp.Repos.Progress.GetOwnedBlueprints(c.Context(), profile.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load owned blueprints")
		}
		ids := make([]int64, 0, len(records))
		for _, record := range records {
			ids = append(ids, record.BlueprintID)
		}
		return utils.SendSuccess(c, ids, "")
	}
}

func SetWorkbenchCompleted(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		workbenchID, err := parseInt64(c.Params("workbenchID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid workbench id", nil)
		}
		if err := webApp.Repos.Progress.SetWorkbenchCompleted(c.Context(), profile.ID, workbenchID); err != nil {
			return utils.SendInternalServerError(c, "Failed to record workbench upgrade")
		}
		return utils.SendSuccess(c, nil, "Workbench marked completed")
	}
}

func ClearWorkbenchCompleted(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		workbenchID, err := parseInt64(c.Params("workbenchID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid workbench id", nil)
		}
		if err := webApp.Repos.Progress.ClearWorkbenchCompleted(c.Context(), profile.ID, workbenchID); err != nil {
			return utils.SendInternalServerError(c, "Failed to clear workbench upgrade")
		}
		return utils.SendSuccess(c, nil, "Workbench unmarked")
	}
}

func GetCompletedWorkbenches(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		records, err := webApp.Repos.Progress.GetCompletedWorkbenches(c.Context(), profile.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load completed workbenches")
		}
		ids := make([]int64, 0, len(records))
		for _, record := range records {
			ids = append(ids, record.WorkbenchID)
		}
		return utils.SendSuccess(c, ids, "")
	}
}

func SetPartCompleted(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		partName := c.Params("partName")
		if partName == "" {
			return utils.SendBadRequest(c, "Invalid part name", nil)
		}
		if err := webApp.Repos.Progress.SetPartCompleted(c.Context(), profile.ID, partName); err != nil {
			return utils.SendInternalServerError(c, "Failed to record part completion")
		}
		return utils.SendSuccess(c, nil, "Expedition part marked completed")
	}
}

func ClearPartCompleted(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		partName := c.Params("partName")
		if partName == "" {
			return utils.SendBadRequest(c, "Invalid part name", nil)
		}
		if err := webApp.Repos.Progress.ClearPartCompleted(c.Context(), profile.ID, partName); err != nil {
			return utils.SendInternalServerError(c, "Failed to clear part completion")
		}
		return utils.SendSuccess(c, nil, "Expedition part unmarked")
	}
}

func GetCompletedParts(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		records, err := webApp.Repos.Progress.GetCompletedParts(c.Context(), profile.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load completed parts")
		}
		names := make([]string, 0, len(records))
		for _, record := range records {
			names = append(names, record.PartName)
		}
		return utils.SendSuccess(c, names, "")
	}
}

type itemToggleRequest struct {
	PartName string `json:"partName"`
	ItemName string `json:"itemName"`
}

func SetItemCompleted(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		var req itemToggleRequest
		if err := c.BodyParser(&req); err != nil || req.PartName == "" || req.ItemName == "" {
			return utils.SendBadRequest(c, "partName and itemName are required", nil)
		}
		if err := webApp.Repos.Progress.SetItemCompleted(c.Context(), profile.ID, req.PartName, req.ItemName); err != nil {
			return utils.SendInternalServerError(c, "Failed to record item completion")
		}
		return utils.SendSuccess(c, nil, "Expedition item marked completed")
	}
}

func ClearItemCompleted(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		var req itemToggleRequest
		if err := c.BodyParser(&req); err != nil || req.PartName == "" || req.ItemName == "" {
			return utils.SendBadRequest(c, "partName and itemName are required", nil)
		}
		if err := webApp.Repos.Progress.ClearItemCompleted(c.Context(), profile.ID, req.PartName, req.ItemName); err != nil {
			return utils.SendInternalServerError(c, "Failed to clear item completion")
		}
		return utils.SendSuccess(c, nil, "Expedition item unmarked")
	}
}

func GetCompletedItems(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}
		records, err := webApp.Repos.Progress.GetCompletedItems(c.Context(), profile.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load completed items")
		}
		items := make([]fiber.Map, 0, len(records))
		for _, record := range records {
			items = append(items, fiber.Map{
				"partName": record.PartName,
				"itemName": record.ItemName,
			})
		}
		return utils.SendSuccess(c, items, "")
	}
}
