package service

import (
	"context"
	"strings"

	"social-spectrum-server/internal/common"
	moduledto "social-spectrum-server/internal/modules/search/dto"
	"social-spectrum-server/internal/modules/search/repo"
	platformservice "social-spectrum-server/internal/platform/service"

	"golang.org/x/sync/errgroup"
)

const resultsLimit = 5

type Service struct {
	*platformservice.AppService
	searchStore repo.SearchStore
}

func New(appService *platformservice.AppService, searchStore repo.SearchStore) *Service {
	return &Service{
		AppService:  appService,
		searchStore: searchStore,
	}
}

// Search matches term against user names and post texts, case-insensitively.
// Both lookups run concurrently and each returns at most five rows.
func (s *Service) Search(ctx context.Context, term string) (*moduledto.SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, common.NewValidationError("Invalid query")
	}

	result := &moduledto.SearchResult{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := s.searchStore.Users(gctx, term, resultsLimit)
		if err != nil {
			return err
		}
		result.NamesSearch = users
		return nil
	})
	g.Go(func() error {
		posts, err := s.searchStore.Posts(gctx, term, resultsLimit)
		if err != nil {
			return err
		}
		result.PostsSearch = posts
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, common.WrapInternal(err, "search")
	}
	return result, nil
}
