// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"conduit/internal/repository"
)

// FeedQueryBuilder builds WHERE clauses for feed listing in PostgreSQL.
// The clause is shared by every feed target so the five feed shapes stay
// one query with different predicates rather than five hand-maintained
// queries. It uses numbered placeholders ($1, $2, etc.); $1 is reserved
// for the viewer in the derived-field subqueries.
type FeedQueryBuilder struct{}

// NewFeedQueryBuilder creates a new query builder instance.
func NewFeedQueryBuilder() *FeedQueryBuilder {
	return &FeedQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for a feed query.
// firstParam is the placeholder index the first condition may use; the
// returned nextParam is the index following the last one consumed.
// Returns an empty clause for the global feed.
//
// When both Tag and FollowedBy are set the tag filter wins; the UI never
// produces the combination but a hand-edited URL can.
func (qb *FeedQueryBuilder) BuildWhereClause(query repository.FeedQuery, firstParam int) (clause string, args []interface{}, nextParam int) {
	var conditions []string
	paramIndex := firstParam

	switch {
	case query.Tag != "":
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM article_tags t WHERE t.article_slug = a.slug AND t.tag = $%d)", paramIndex))
		args = append(args, query.Tag)
		paramIndex++
	case query.FollowedBy != "":
		conditions = append(conditions, fmt.Sprintf(
			"a.author IN (SELECT influencer FROM follows WHERE follower = $%d)", paramIndex))
		args = append(args, query.FollowedBy)
		paramIndex++
	case query.AuthoredBy != "":
		conditions = append(conditions, fmt.Sprintf("a.author = $%d", paramIndex))
		args = append(args, query.AuthoredBy)
		paramIndex++
	case query.FavoritedBy != "":
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM favorite_articles v WHERE v.article_slug = a.slug AND v.username = $%d)", paramIndex))
		args = append(args, query.FavoritedBy)
		paramIndex++
	}

	if len(conditions) == 0 {
		return "", nil, paramIndex
	}
	return "WHERE " + strings.Join(conditions, " AND "), args, paramIndex
}
