package feed

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"conduit/internal/common/pagination"
	"conduit/internal/domain/entity"
	"conduit/internal/repository"
)

// Service resolves feed and search requests.
// It handles target selection and derived-field semantics and delegates
// row retrieval to the repositories.
type Service struct {
	Articles repository.ArticleRepository
	Search   repository.SearchRepository
}

// Page is one resolved feed page. Feeds carry no total count; HasMore in
// the metadata is inferred from the returned row count.
type Page struct {
	Summaries  []*entity.ArticleSummary
	Pagination pagination.Metadata
}

// SearchResult is one resolved search page with an authoritative total.
type SearchResult struct {
	Hits       []*entity.SearchHit
	Total      int64
	Pagination pagination.Metadata
}

// Resolve returns one page of article summaries for the target, newest
// first. viewer may be empty for anonymous callers; every derived field
// (fav, author.following) is then false. The Following target without a
// viewer fails with ErrIdentityRequired.
func (s *Service) Resolve(ctx context.Context, params pagination.PageParams, viewer string, target Target) (*Page, error) {
	query := repository.FeedQuery{
		Viewer: viewer,
		Offset: pagination.CalculateOffset(params.Page, params.Amount),
		Limit:  params.Amount,
	}

	switch target.Kind {
	case Global:
	case TagFiltered:
		query.Tag = target.Tag
	case Following:
		if viewer == "" {
			return nil, ErrIdentityRequired
		}
		query.FollowedBy = viewer
	case ProfileAuthored:
		query.AuthoredBy = target.Username
	case ProfileFavorited:
		// Public view: anonymous callers get the page with fav=false
		// everywhere, not an authorization error.
		query.FavoritedBy = target.Username
	default:
		return nil, fmt.Errorf("unknown feed target kind %d", target.Kind)
	}

	summaries, err := s.Articles.ListFeed(ctx, query)
	if err != nil {
		pagination.RecordError("database")
		return nil, fmt.Errorf("resolve feed: %w", err)
	}

	return &Page{
		Summaries:  summaries,
		Pagination: pagination.FeedMetadata(params, len(summaries)),
	}, nil
}

// ResolveSearch returns one page of full-text matches plus the exact
// total for the same predicate. The count and content queries run in
// parallel; both share one match predicate in the repository so they
// cannot drift.
func (s *Service) ResolveSearch(ctx context.Context, query string, params pagination.PageParams, markers repository.HighlightMarkers) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		pagination.RecordError("validation")
		return nil, ErrEmptyQuery
	}

	offset := pagination.CalculateOffset(params.Page, params.Amount)

	var (
		total int64
		hits  []*entity.SearchHit
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.Search.Count(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		hits, err = s.Search.Search(gctx, query, markers, offset, params.Amount)
		return err
	})
	if err := g.Wait(); err != nil {
		pagination.RecordError("database")
		return nil, fmt.Errorf("resolve search: %w", err)
	}

	pagination.UpdateSearchTotal(total)

	return &SearchResult{
		Hits:       hits,
		Total:      total,
		Pagination: pagination.SearchMetadata(params, total),
	}, nil
}
