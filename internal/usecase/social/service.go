package social

import (
	"context"
	"fmt"

	"conduit/internal/domain/entity"
	"conduit/internal/observability/metrics"
	"conduit/internal/repository"
)

// Service implements follow and favorite toggles plus profile lookup.
//
// Toggles read the current state and apply the inverse write. When two
// requests race, the composite primary keys make the duplicate write a
// no-op; the reported state still reflects the intended outcome, so a
// lost race is indistinguishable from a win.
type Service struct {
	Social   repository.SocialRepository
	Articles repository.ArticleRepository
	Users    repository.UserRepository
}

// ToggleFollow flips the caller's follow edge toward influencer and
// returns the resulting state.
func (s *Service) ToggleFollow(ctx context.Context, caller, influencer string) (bool, error) {
	if caller == "" {
		return false, ErrIdentityRequired
	}
	if caller == influencer {
		return false, ErrSelfFollow
	}
	target, err := s.Users.Get(ctx, influencer)
	if err != nil {
		return false, fmt.Errorf("ToggleFollow: %w", err)
	}
	if target == nil {
		return false, ErrUserNotFound
	}

	following, err := s.Social.IsFollowing(ctx, caller, influencer)
	if err != nil {
		return false, fmt.Errorf("ToggleFollow: %w", err)
	}
	if following {
		if _, err := s.Social.DeleteFollow(ctx, caller, influencer); err != nil {
			return false, fmt.Errorf("ToggleFollow: %w", err)
		}
		metrics.FollowToggles.WithLabelValues(metrics.ToggleState(false)).Inc()
		return false, nil
	}
	if _, err := s.Social.InsertFollow(ctx, caller, influencer); err != nil {
		return false, fmt.Errorf("ToggleFollow: %w", err)
	}
	metrics.FollowToggles.WithLabelValues(metrics.ToggleState(true)).Inc()
	return true, nil
}

// ToggleFavorite flips the caller's favorite mark on the article and
// returns the resulting state.
func (s *Service) ToggleFavorite(ctx context.Context, caller, slug string) (bool, error) {
	if caller == "" {
		return false, ErrIdentityRequired
	}
	author, err := s.Articles.AuthorOf(ctx, slug)
	if err != nil {
		return false, fmt.Errorf("ToggleFavorite: %w", err)
	}
	if author == "" {
		return false, ErrArticleNotFound
	}
	if author == caller {
		return false, ErrOwnArticle
	}

	faved, err := s.Social.IsFavorited(ctx, caller, slug)
	if err != nil {
		return false, fmt.Errorf("ToggleFavorite: %w", err)
	}
	if faved {
		if _, err := s.Social.DeleteFavorite(ctx, caller, slug); err != nil {
			return false, fmt.Errorf("ToggleFavorite: %w", err)
		}
		metrics.FavoriteToggles.WithLabelValues(metrics.ToggleState(false)).Inc()
		return false, nil
	}
	if _, err := s.Social.InsertFavorite(ctx, caller, slug); err != nil {
		return false, fmt.Errorf("ToggleFavorite: %w", err)
	}
	metrics.FavoriteToggles.WithLabelValues(metrics.ToggleState(true)).Inc()
	return true, nil
}

// Profile returns the public profile of username with following derived
// relative to viewer. An empty viewer yields following=false.
func (s *Service) Profile(ctx context.Context, username, viewer string) (*entity.Profile, error) {
	profile, err := s.Users.GetProfile(ctx, username, viewer)
	if err != nil {
		return nil, fmt.Errorf("Profile: %w", err)
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	return profile, nil
}
