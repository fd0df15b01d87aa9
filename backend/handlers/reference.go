package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/raiderlog/raiderlog/backend/utils"
	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/raiderlog/raiderlog/raiderlog/database/repositories"
)

// Reference-data CRUD. The GET routes are public; mutations require the
// admin role and are wired behind AdminRequired in the route setup.

func ListQuests(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quests, err := webApp.Repos.Quest.GetAll(c.Context())
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load quests")
		}
		return utils.SendSuccess(c, quests, "")
	}
}

func CreateQuest(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quest := new(models.Quest)
		if err := c.BodyParser(quest); err != nil || quest.Name == "" {
			return utils.SendBadRequest(c, "Quest name is required", nil)
		}
		quest.ID = 0
		if err := webApp.Repos.Quest.Create(c.Context(), quest); err != nil {
			return utils.SendInternalServerError(c, "Failed to create quest")
		}
		return utils.SendCreated(c, quest, "Quest created")
	}
}

func UpdateQuest(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("questID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid quest id", nil)
		}
		quest, err := webApp.Repos.Quest.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrQuestNotFound) {
				return utils.SendNotFound(c, "Quest not found")
			}
			return utils.SendInternalServerError(c, "Failed to load quest")
		}
		if err := c.BodyParser(quest); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		quest.ID = id
		if err := webApp.Repos.Quest.Update(c.Context(), quest); err != nil {
			return utils.SendInternalServerError(c, "Failed to update quest")
		}
		return utils.SendSuccess(c, quest, "Quest updated")
	}
}

func DeleteQuest(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("questID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid quest id", nil)
		}
		if err := webApp.Repos.Quest.Delete(c.Context(), id); err != nil {
			return utils.SendInternalServerError(c, "Failed to delete quest")
		}
		return utils.SendNoContent(c)
	}
}

func ListBlueprints(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		blueprints, err := webApp.Repos.Blueprint.GetAll(c.Context())
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load blueprints")
		}
		return utils.SendSuccess(c, blueprints, "")
	}
}

func CreateBlueprint(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		blueprint := new(models.Blueprint)
		if err := c.BodyParser(blueprint); err != nil || blueprint.Name == "" {
			return utils.SendBadRequest(c, "Blueprint name is required", nil)
		}
		blueprint.ID = 0
		if err := webApp.Repos.Blueprint.Create(c.Context(), blueprint); err != nil {
			return utils.SendInternalServerError(c, "Failed to create blueprint")
		}
		return utils.SendCreated(c, blueprint, "Blueprint created")
	}
}

func UpdateBlueprint(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("blueprintID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid blueprint id", nil)
		}
		blueprint, err := webApp.Repos.Blueprint.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrBlueprintNotFound) {
				return utils.SendNotFound(c, "Blueprint not found")
			}
			return utils.SendInternalServerError(c, "Failed to load blueprint")
		}
		if err := c.BodyParser(blueprint); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		blueprint.ID = id
		if err := webApp.Repos.Blueprint.Update(c.Context(), blueprint); err != nil {
			return utils.SendInternalServerError(c, "Failed to update blueprint")
		}
		return utils.SendSuccess(c, blueprint, "Blueprint updated")
	}
}

func DeleteBlueprint(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("blueprintID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid blueprint id", nil)
		}
		if err := webApp.Repos.Blueprint.Delete(c.Context(), id); err != nil {
			return utils.SendInternalServerError(c, "Failed to delete blueprint")
		}
		return utils.SendNoContent(c)
	}
}

func ListWorkbenches(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		workbenches, err := webApp.Repos.Workbench.GetAll(c.Context())
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load workbenches")
		}
		return utils.SendSuccess(c, workbenches, "")
	}
}

func CreateWorkbench(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		workbench := new(models.Workbench)
		if err := c.BodyParser(workbench); err != nil || workbench.Name == "" {
			return utils.SendBadRequest(c, "Workbench name is required", nil)
		}
		workbench.ID = 0
		if err := webApp.Repos.Workbench.Create(c.Context(), workbench); err != nil {
			return utils.SendInternalServerError(c, "Failed to create workbench")
		}
		return utils.SendCreated(c, workbench, "Workbench created")
	}
}

func UpdateWorkbench(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("workbenchID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid workbench id", nil)
		}
		workbench, err := webApp.Repos.Workbench.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrWorkbenchNotFound) {
				return utils.SendNotFound(c, "Workbench not found")
			}
			return utils.SendInternalServerError(c, "Failed to load workbench")
		}
		if err := c.BodyParser(workbench); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		workbench.ID = id
		if err := webApp.Repos.Workbench.Update(c.Context(), workbench); err != nil {
			return utils.SendInternalServerError(c, "Failed to update workbench")
		}
		return utils.SendSuccess(c, workbench, "Workbench updated")
	}
}

func DeleteWorkbench(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("workbenchID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid workbench id", nil)
		}
		if err := webApp.Repos.Workbench.Delete(c.Context(), id); err != nil {
			return utils.SendInternalServerError(c, "Failed to delete workbench")
		}
		return utils.SendNoContent(c)
	}
}

// ListRequirements serves the authored expedition requirements, optionally
// filtered by level. The per-level path reads through the LRU cache because
// every profile page fetches it.
func ListRequirements(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if levelParam := c.Query("level"); levelParam != "" {
			level, err := strconv.Atoi(levelParam)
			if err != nil {
				return utils.SendBadRequest(c, "Invalid expedition level", nil)
			}
			requirements, err := webApp.RequirementCache.ByLevel(c.Context(), level)
			if err != nil {
				return utils.SendInternalServerError(c, "Failed to load requirements")
			}
			return utils.SendSuccess(c, requirements, "")
		}

		requirements, err := webApp.Repos.Requirement.GetAll(c.Context())
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load requirements")
		}
		return utils.SendSuccess(c, requirements, "")
	}
}

func CreateRequirement(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requirement := new(models.ExpeditionRequirement)
		if err := c.BodyParser(requirement); err != nil || requirement.ItemName == "" {
			return utils.SendBadRequest(c, "Item name is required", nil)
		}
		requirement.ID = 0
		if err := webApp.Repos.Requirement.Create(c.Context(), requirement); err != nil {
			if errors.Is(err, repositories.ErrRequirementExists) {
				return utils.SendConflict(c, "Requirement already exists for this level, part, and item", nil)
			}
			return utils.SendInternalServerError(c, "Failed to create requirement")
		}
		webApp.RequirementCache.Invalidate(requirement.ExpeditionLevel)
		return utils.SendCreated(c, requirement, "Requirement created")
	}
}

func UpdateRequirement(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("requirementID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid requirement id", nil)
		}
		requirement, err := webApp.Repos.Requirement.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrRequirementNotFound) {
				return utils.SendNotFound(c, "Requirement not found")
			}
			return utils.SendInternalServerError(c, "Failed to load requirement")
		}
		previousLevel := requirement.ExpeditionLevel
		if err := c.BodyParser(requirement); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		requirement.ID = id
		if err := webApp.Repos.Requirement.Update(c.Context(), requirement); err != nil {
			if errors.Is(err, repositories.ErrRequirementExists) {
				return utils.SendConflict(c, "Requirement already exists for this level, part, and item", nil)
			}
			return utils.SendInternalServerError(c, "Failed to update requirement")
		}
		webApp.RequirementCache.Invalidate(previousLevel)
		webApp.RequirementCache.Invalidate(requirement.ExpeditionLevel)
		return utils.SendSuccess(c, requirement, "Requirement updated")
	}
}

func DeleteRequirement(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("requirementID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid requirement id", nil)
		}
		requirement, err := webApp.Repos.Requirement.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrRequirementNotFound) {
				return utils.SendNotFound(c, "Requirement not found")
			}
			return utils.SendInternalServerError(c, "Failed to load requirement")
		}
		if err := webApp.Repos.Requirement.Delete(c.Context(), id); err != nil {
			return utils.SendInternalServerError(c, "Failed to delete requirement")
		}
		webApp.RequirementCache.Invalidate(requirement.ExpeditionLevel)
		return utils.SendNoContent(c)
	}
}
