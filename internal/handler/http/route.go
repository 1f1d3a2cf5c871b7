package http

import "strings"

// NormalizeRoute collapses slugs, usernames and comment IDs in a request
// path into placeholders so metric labels stay low-cardinality.
//
//	/api/articles/how-to-x-1a2b -> /api/articles/{slug}
//	/api/articles/how-to-x-1a2b/comments/42 -> /api/articles/{slug}/comments/{id}
//	/api/profiles/alice/follow -> /api/profiles/{username}/follow
func NormalizeRoute(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 || segments[0] != "api" {
		return path
	}

	switch segments[1] {
	case "articles":
		if len(segments) >= 3 && segments[2] != "search" {
			segments[2] = "{slug}"
		}
		if len(segments) >= 5 && segments[3] == "comments" {
			segments[4] = "{id}"
		}
	case "profiles":
		if len(segments) >= 3 {
			segments[2] = "{username}"
		}
	}
	return "/" + strings.Join(segments, "/")
}
