package feed

import "conduit/internal/common/pagination"

// TargetKind identifies which base article set a feed request selects.
type TargetKind int

const (
	// Global selects all articles.
	Global TargetKind = iota
	// TagFiltered selects articles carrying a given tag.
	TagFiltered
	// Following selects articles authored by users the caller follows.
	// Requires an authenticated caller.
	Following
	// ProfileAuthored selects articles authored by a named user.
	ProfileAuthored
	// ProfileFavorited selects articles favorited by a named user.
	ProfileFavorited
)

// Target is a feed selection: a kind plus the argument it needs.
type Target struct {
	Kind TargetKind
	// Tag is set for TagFiltered.
	Tag string
	// Username is set for ProfileAuthored and ProfileFavorited.
	Username string
}

// GlobalTarget selects the global feed.
func GlobalTarget() Target {
	return Target{Kind: Global}
}

// TagTarget selects articles carrying the tag.
func TagTarget(tag string) Target {
	return Target{Kind: TagFiltered, Tag: tag}
}

// FollowingTarget selects the caller's personal feed.
func FollowingTarget() Target {
	return Target{Kind: Following}
}

// AuthoredTarget selects a profile's own articles.
func AuthoredTarget(username string) Target {
	return Target{Kind: ProfileAuthored, Username: username}
}

// FavoritedTarget selects a profile's favorited articles.
func FavoritedTarget(username string) Target {
	return Target{Kind: ProfileFavorited, Username: username}
}

// HomeTarget derives the home-page target from decoded parameters: a tag
// filter wins over the my-feed selection, matching the navigation rules
// of the views that produce these URLs.
func HomeTarget(params pagination.PageParams) Target {
	if params.Tag != "" {
		return TagTarget(params.Tag)
	}
	if params.MyFeed {
		return FollowingTarget()
	}
	return GlobalTarget()
}
