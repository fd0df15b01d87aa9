package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/raiderlog/raiderlog/backend/utils"
	"github.com/raiderlog/raiderlog/raiderlog/database/repositories"
)

const defaultSearchLimit = 25

// SearchProfiles fuzzy-matches public raider profiles by display name.
func SearchProfiles(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := defaultSearchLimit
		if limitParam := c.Query("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed < 1 {
				return utils.SendBadRequest(c, "Invalid limit", nil)
			}
			limit = parsed
		}

		profiles, err := webApp.SearchService.SearchProfiles(c.Context(), c.Query("q"), limit)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to search profiles")
		}

		results := make([]fiber.Map, 0, len(profiles))
		for _, profile := range profiles {
			results = append(results, fiber.Map{
				"id":              profile.ID,
				"displayName":     profile.DisplayName,
				"expeditionLevel": profile.ExpeditionLevel,
			})
		}
		return utils.SendSuccess(c, results, "")
	}
}

// AddFavorite favorites another raider's public profile.
func AddFavorite(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		profileID, err := parseInt64(c.Params("profileID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid profile id", nil)
		}

		profile, err := webApp.Repos.Profile.GetByID(c.Context(), profileID)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return utils.SendNotFound(c, "Raider profile not found")
			}
			return utils.SendInternalServerError(c, "Failed to load profile")
		}
		if !profile.Public {
			return utils.SendNotFound(c, "Raider profile not found")
		}

		if err := webApp.Repos.Favorite.Add(c.Context(), identity.UserID, profileID); err != nil {
			return utils.SendInternalServerError(c, "Failed to add favorite")
		}
		return utils.SendSuccess(c, nil, "Raider favorited")
	}
}

// RemoveFavorite unfavorites a profile.
func RemoveFavorite(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		profileID, err := parseInt64(c.Params("profileID"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid profile id", nil)
		}

		if err := webApp.Repos.Favorite.Remove(c.Context(), identity.UserID, profileID); err != nil {
			return utils.SendInternalServerError(c, "Failed to remove favorite")
		}
		return utils.SendSuccess(c, nil, "Raider unfavorited")
	}
}

// ListFavorites lists the caller's favorited raiders.
func ListFavorites(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		favorites, err := webApp.Repos.Favorite.GetByUserID(c.Context(), identity.UserID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load favorites")
		}

		results := make([]fiber.Map, 0, len(favorites))
		for _, favorite := range favorites {
			entry := fiber.Map{"profileId": favorite.RaiderProfileID}
			if favorite.Profile != nil {
				entry["displayName"] = favorite.Profile.DisplayName
				entry["expeditionLevel"] = favorite.Profile.ExpeditionLevel
			}
			results = append(results, entry)
		}
		return utils.SendSuccess(c, results, "")
	}
}
