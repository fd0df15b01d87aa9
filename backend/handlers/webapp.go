package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	webmodels "github.com/raiderlog/raiderlog/backend/models"
	"github.com/raiderlog/raiderlog/backend/utils"
	"github.com/raiderlog/raiderlog/raiderlog"
	"github.com/raiderlog/raiderlog/raiderlog/database"
	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/raiderlog/raiderlog/raiderlog/expedition"
	"github.com/raiderlog/raiderlog/raiderlog/services"
)

// WebApp holds the dependencies shared by all route handlers.
type WebApp struct {
	Config           *raiderlog.Config
	DB               *database.DB
	Repos            *webmodels.Repositories
	Advancer         *expedition.Advancer
	Aggregator       *expedition.Aggregator
	RequirementCache *services.RequirementCache
	SearchService    *services.SearchService
	Version          string
	Commit           string
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// resolveOwnedProfile loads the profile from the :profileID route parameter
// and verifies the caller owns it. Unknown and unowned profiles are
// indistinguishable to the caller: both are a 404. On failure the response
// has already been written; callers return the error when profile is nil.
func resolveOwnedProfile(c *fiber.Ctx, webApp *WebApp) (*models.RaiderProfile, error) {
	identity, ok := utils.ExtractIdentity(c)
	if !ok {
		return nil, utils.SendUnauthorized(c, "Authentication required")
	}

	profileID, err := parseInt64(c.Params("profileID"))
	if err != nil {
		return nil, utils.SendBadRequest(c, "Invalid profile id", nil)
	}

	profile, err := webApp.Repos.Profile.GetByUserID(c.Context(), identity.UserID)
	if err != nil {
		return nil, utils.SendInternalServerError(c, "Failed to load profile")
	}
	if profile == nil || profile.ID != profileID {
		return nil, utils.SendNotFound(c, "Raider profile not found")
	}
	return profile, nil
}
