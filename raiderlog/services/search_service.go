package services

import (
	"context"
	"strings"

	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/raiderlog/raiderlog/raiderlog/database/repositories"
	"github.com/sahilm/fuzzy"
)

// profileSearchItems implements fuzzy.Source over public raider profiles.
type profileSearchItems []*models.RaiderProfile

func (p profileSearchItems) String(i int) string {
	return strings.ToLower(p[i].DisplayName)
}

func (p profileSearchItems) Len() int {
	return len(p)
}

// SearchService finds public raider profiles by display name. Matching is
// fuzzy so partial and slightly misspelled queries still resolve.
type SearchService struct {
	profiles repositories.ProfileRepository
}

func NewSearchService(profiles repositories.ProfileRepository) *SearchService {
	return &SearchService{profiles: profiles}
}

func (s *SearchService) SearchProfiles(ctx context.Context, query string, limit int) ([]*models.RaiderProfile, error) {
	public, err := s.profiles.GetPublic(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if limit > 0 && len(public) > limit {
			return public[:limit], nil
		}
		return public, nil
	}

	items := profileSearchItems(public)
	matches := fuzzy.FindFrom(query, items)

	results := make([]*models.RaiderProfile, 0, len(matches))
	for _, match := range matches {
		results = append(results, items[match.Index])
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}
