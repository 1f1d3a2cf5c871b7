package postgres

import (
	"strings"
	"testing"

	"conduit/internal/repository"
)

func TestFeedQueryBuilder_Global(t *testing.T) {
	qb := NewFeedQueryBuilder()
	clause, args, next := qb.BuildWhereClause(repository.FeedQuery{}, 2)
	if clause != "" {
		t.Errorf("clause = %q, want empty", clause)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
	if next != 2 {
		t.Errorf("nextParam = %d, want 2", next)
	}
}

func TestFeedQueryBuilder_Targets(t *testing.T) {
	tests := []struct {
		name       string
		query      repository.FeedQuery
		wantSubstr string
		wantArg    interface{}
	}{
		{
			name:       "tag filter",
			query:      repository.FeedQuery{Tag: "go"},
			wantSubstr: "t.tag = $2",
			wantArg:    "go",
		},
		{
			name:       "following feed",
			query:      repository.FeedQuery{FollowedBy: "alice"},
			wantSubstr: "follower = $2",
			wantArg:    "alice",
		},
		{
			name:       "profile authored",
			query:      repository.FeedQuery{AuthoredBy: "bob"},
			wantSubstr: "a.author = $2",
			wantArg:    "bob",
		},
		{
			name:       "profile favorited",
			query:      repository.FeedQuery{FavoritedBy: "bob"},
			wantSubstr: "v.username = $2",
			wantArg:    "bob",
		},
	}

	qb := NewFeedQueryBuilder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args, next := qb.BuildWhereClause(tt.query, 2)
			if !strings.HasPrefix(clause, "WHERE ") {
				t.Errorf("clause = %q, want WHERE prefix", clause)
			}
			if !strings.Contains(clause, tt.wantSubstr) {
				t.Errorf("clause = %q, want substring %q", clause, tt.wantSubstr)
			}
			if len(args) != 1 || args[0] != tt.wantArg {
				t.Errorf("args = %v, want [%v]", args, tt.wantArg)
			}
			if next != 3 {
				t.Errorf("nextParam = %d, want 3", next)
			}
		})
	}
}

// A hand-edited URL can carry both a tag and the my-feed selection; the
// tag filter wins and only one condition is emitted.
func TestFeedQueryBuilder_TagWinsOverFollowing(t *testing.T) {
	qb := NewFeedQueryBuilder()
	clause, args, _ := qb.BuildWhereClause(repository.FeedQuery{Tag: "go", FollowedBy: "alice"}, 2)
	if !strings.Contains(clause, "t.tag") {
		t.Errorf("clause = %q, want tag condition", clause)
	}
	if strings.Contains(clause, "follower") {
		t.Errorf("clause = %q, must not contain follow condition", clause)
	}
	if len(args) != 1 || args[0] != "go" {
		t.Errorf("args = %v, want [go]", args)
	}
}
