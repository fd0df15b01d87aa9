package models

import (
	"github.com/raiderlog/raiderlog/raiderlog/database/repositories"
)

// Repositories bundles every repository the handlers depend on.
type Repositories struct {
	Profile     repositories.ProfileRepository
	Quest       repositories.QuestRepository
	Blueprint   repositories.BlueprintRepository
	Workbench   repositories.WorkbenchRepository
	Requirement repositories.RequirementRepository
	Progress    repositories.ProgressRepository
	Favorite    repositories.FavoriteRepository
}

func NewRepositories(
	profile repositories.ProfileRepository,
	quest repositories.QuestRepository,
	blueprint repositories.BlueprintRepository,
	workbench repositories.WorkbenchRepository,
	requirement repositories.RequirementRepository,
	progress repositories.ProgressRepository,
	favorite repositories.FavoriteRepository,
) *Repositories {
	return &Repositories{
		Profile:     profile,
		Quest:       quest,
		Blueprint:   blueprint,
		Workbench:   workbench,
		Requirement: requirement,
		Progress:    progress,
		Favorite:    favorite,
	}
}
