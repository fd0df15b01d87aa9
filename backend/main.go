package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/raiderlog/raiderlog/backend/handlers"
	"github.com/raiderlog/raiderlog/backend/middleware"
	webmodels "github.com/raiderlog/raiderlog/backend/models"
	"github.com/raiderlog/raiderlog/raiderlog"
	"github.com/raiderlog/raiderlog/raiderlog/database"
	"github.com/raiderlog/raiderlog/raiderlog/database/repositories"
	"github.com/raiderlog/raiderlog/raiderlog/expedition"
	"github.com/raiderlog/raiderlog/raiderlog/logger"
	"github.com/raiderlog/raiderlog/raiderlog/services"
)

const requirementCacheExpiry = 5 * time.Minute

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := raiderlog.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	customHandler := logger.NewHandler("RaiderLog", cfg.Log.Level)
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting RaiderLog API",
		slog.String("version", version),
		slog.String("commit", commit),
		slog.String("driver", cfg.DB.Driver))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slog.Info("Connecting to database...")
	db, err := database.New(ctx, database.DBConfig{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
		Path:     cfg.DB.Path,
	})
	if err != nil {
		logger.LogError("Failed to connect to database", err)
		os.Exit(1)
	}
	if err := db.CreateSchema(ctx); err != nil {
		logger.LogError("Failed to create schema", err)
		os.Exit(1)
	}
	logger.LogSystem("Database connected successfully")

	repos := webmodels.NewRepositories(
		repositories.NewProfileRepository(db.BunDB()),
		repositories.NewQuestRepository(db.BunDB()),
		repositories.NewBlueprintRepository(db.BunDB()),
		repositories.NewWorkbenchRepository(db.BunDB()),
		repositories.NewRequirementRepository(db.BunDB()),
		repositories.NewProgressRepository(db.BunDB()),
		repositories.NewFavoriteRepository(db.BunDB()),
	)

	store := repositories.NewExpeditionStore(db.BunDB())

	webApp := &handlers.WebApp{
		Config:           cfg,
		DB:               db,
		Repos:            repos,
		Advancer:         expedition.NewAdvancer(store),
		Aggregator:       expedition.NewAggregator(store),
		RequirementCache: services.NewRequirementCache(repos.Requirement, requirementCacheExpiry),
		SearchService:    services.NewSearchService(repos.Profile),
		Version:          version,
		Commit:           commit,
	}

	app := fiber.New(fiber.Config{
		AppName:      "RaiderLog API",
		ServerHeader: "RaiderLog",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Web.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(middleware.LoggingMiddleware())

	setupRoutes(app, webApp)

	address := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	slog.Info("Starting server", slog.String("address", address))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := app.Listen(address); err != nil {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-c
	slog.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		slog.Error("Server shutdown error", slog.String("error", err.Error()))
	}

	db.Close()

	slog.Info("Server shutdown complete")
}

// setupRoutes configures all application routes.
func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	app.Get("/health", handlers.HealthCheck(webApp))

	auth := middleware.AuthRequired(webApp.Config.Auth)
	admin := middleware.AdminRequired()

	// Reference data: public reads, admin writes.
	app.Get("/quests", handlers.ListQuests(webApp))
	app.Post("/quests", auth, admin, handlers.CreateQuest(webApp))
	app.Put("/quests/:questID", auth, admin, handlers.UpdateQuest(webApp))
	app.Delete("/quests/:questID", auth, admin, handlers.DeleteQuest(webApp))

	app.Get("/blueprints", handlers.ListBlueprints(webApp))
	app.Post("/blueprints", auth, admin, handlers.CreateBlueprint(webApp))
	app.Put("/blueprints/:blueprintID", auth, admin, handlers.UpdateBlueprint(webApp))
	app.Delete("/blueprints/:blueprintID", auth, admin, handlers.DeleteBlueprint(webApp))

	app.Get("/workbenches", handlers.ListWorkbenches(webApp))
	app.Post("/workbenches", auth, admin, handlers.CreateWorkbench(webApp))
	app.Put("/workbenches/:workbenchID", auth, admin, handlers.UpdateWorkbench(webApp))
	app.Delete("/workbenches/:workbenchID", auth, admin, handlers.DeleteWorkbench(webApp))

	app.Get("/expedition/requirements", handlers.ListRequirements(webApp))
	app.Post("/expedition/requirements", auth, admin, handlers.CreateRequirement(webApp))
	app.Put("/expedition/requirements/:requirementID", auth, admin, handlers.UpdateRequirement(webApp))
	app.Delete("/expedition/requirements/:requirementID", auth, admin, handlers.DeleteRequirement(webApp))

	// Raider profiles and progress tracking.
	raider := app.Group("/raider", auth)
	raider.Post("/profiles", handlers.CreateProfile(webApp))
	raider.Get("/profiles/me", handlers.GetMyProfile(webApp))
	raider.Patch("/profiles/me", handlers.UpdateMyProfile(webApp))
	raider.Delete("/profiles/me", handlers.DeleteMyProfile(webApp))

	profile := raider.Group("/profiles/:profileID")
	profile.Post("/expedition/complete", handlers.CompleteExpedition(webApp))
	profile.Get("/expedition/progress", handlers.GetExpeditionProgress(webApp))
	profile.Get("/expedition/requirements", handlers.GetRemainingRequirements(webApp))
	profile.Get("/summary", handlers.GetProgressSummary(webApp))

	profile.Get("/quests", handlers.GetCompletedQuests(webApp))
	profile.Put("/quests/:questID", handlers.SetQuestCompleted(webApp))
	profile.Delete("/quests/:questID", handlers.ClearQuestCompleted(webApp))

	profile.Get("/blueprints", handlers.GetOwnedBlueprints(webApp))
	profile.Put("/blueprints/:blueprintID", handlers.SetBlueprintOwned(webApp))
	profile.Delete("/blueprints/:blueprintID", handlers.ClearBlueprintOwned(webApp))

	profile.Get("/workbenches", handlers.GetCompletedWorkbenches(webApp))
	profile.Put("/workbenches/:workbenchID", handlers.SetWorkbenchCompleted(webApp))
	profile.Delete("/workbenches/:workbenchID", handlers.ClearWorkbenchCompleted(webApp))

	profile.Get("/expedition/parts", handlers.GetCompletedParts(webApp))
	profile.Put("/expedition/parts/:partName", handlers.SetPartCompleted(webApp))
	profile.Delete("/expedition/parts/:partName", handlers.ClearPartCompleted(webApp))

	profile.Get("/expedition/items", handlers.GetCompletedItems(webApp))
	profile.Put("/expedition/items", handlers.SetItemCompleted(webApp))
	profile.Delete("/expedition/items", handlers.ClearItemCompleted(webApp))

	// Social.
	raider.Get("/search", handlers.SearchProfiles(webApp))
	raider.Get("/favorites", handlers.ListFavorites(webApp))
	raider.Put("/favorites/:profileID", handlers.AddFavorite(webApp))
	raider.Delete("/favorites/:profileID", handlers.RemoveFavorite(webApp))
}
