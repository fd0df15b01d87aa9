package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/raiderlog/raiderlog/backend/utils"
	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/raiderlog/raiderlog/raiderlog/database/repositories"
)

type profileRequest struct {
	DisplayName string `json:"displayName"`
	Active      *bool  `json:"active"`
	Public      *bool  `json:"public"`
}

func profileResponse(profile *models.RaiderProfile) fiber.Map {
	return fiber.Map{
		"id":              profile.ID,
		"displayName":     profile.DisplayName,
		"expeditionLevel": profile.ExpeditionLevel,
		"active":          profile.Active,
		"public":          profile.Public,
		"createdAt":       profile.CreatedAt,
	}
}

// CreateProfile creates the caller's raider profile. Each user gets exactly
// one; a second create is a conflict.
func CreateProfile(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req profileRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		profile := &models.RaiderProfile{
			UserID:      identity.UserID,
			DisplayName: req.DisplayName,
			Active:      true,
		}
		if req.Public != nil {
			profile.Public = *req.Public
		}

		if err := webApp.Repos.Profile.Create(c.Context(), profile); err != nil {
			if errors.Is(err, repositories.ErrProfileExists) {
				return utils.SendConflict(c, "Raider profile already exists", nil)
			}
			return utils.SendInternalServerError(c, "Failed to create profile")
		}

		return utils.SendCreated(c, profileResponse(profile), "Raider profile created")
	}
}

// GetMyProfile returns the caller's own profile.
func GetMyProfile(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		profile, err := webApp.Repos.Profile.GetByUserID(c.Context(), identity.UserID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load profile")
		}
		if profile == nil {
			return utils.SendNotFound(c, "Raider profile not found")
		}

		return utils.SendSuccess(c, profileResponse(profile), "")
	}
}

// UpdateMyProfile updates the caller's display name, active flag, and
// public visibility. The expedition level is never writable here; only the
// advancer moves it.
func UpdateMyProfile(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		profile, err := webApp.Repos.Profile.GetByUserID(c.Context(), identity.UserID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load profile")
		}
		if profile == nil {
			return utils.SendNotFound(c, "Raider profile not found")
		}

		var req profileRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		if req.DisplayName != "" {
			profile.DisplayName = req.DisplayName
		}
		if req.Active != nil {
			profile.Active = *req.Active
		}
		if req.Public != nil {
			profile.Public = *req.Public
		}

		if err := webApp.Repos.Profile.Update(c.Context(), profile); err != nil {
			return utils.SendInternalServerError(c, "Failed to update profile")
		}

		return utils.SendSuccess(c, profileResponse(profile), "Raider profile updated")
	}
}

// DeleteMyProfile removes the caller's profile and every fact row that hangs
// off it. Invoked by the account deletion flow.
func DeleteMyProfile(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		profile, err := webApp.Repos.Profile.GetByUserID(c.Context(), identity.UserID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load profile")
		}
		if profile == nil {
			return utils.SendNotFound(c, "Raider profile not found")
		}

		if err := webApp.Repos.Profile.Delete(c.Context(), profile.ID); err != nil {
			return utils.SendInternalServerError(c, "Failed to delete profile")
		}
		return utils.SendNoContent(c)
	}
}

// GetProgressSummary returns per-table completion counts for the caller's
// profile, for the dashboard checkboxes.
func GetProgressSummary(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := resolveOwnedProfile(c, webApp)
		if profile == nil {
			return err
		}

		counts, err := webApp.Repos.Progress.Counts(c.Context(), profile.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load progress summary")
		}

		return utils.SendSuccess(c, fiber.Map{
			"expeditionLevel": profile.ExpeditionLevel,
			"counts":          counts,
		}, "")
	}
}
