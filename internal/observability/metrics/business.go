// Package metrics exposes domain-level prometheus counters. HTTP-level
// metrics live in the handler package; these track what the application
// actually does.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ArticlesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "articles_created_total",
		Help: "Number of articles created.",
	})

	ArticlesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "articles_deleted_total",
		Help: "Number of articles deleted.",
	})

	CommentsPosted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comments_posted_total",
		Help: "Number of comments posted.",
	})

	FavoriteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "favorite_toggles_total",
		Help: "Favorite toggles by resulting state.",
	}, []string{"state"})

	FollowToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "follow_toggles_total",
		Help: "Follow toggles by resulting state.",
	}, []string{"state"})

	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "users_registered_total",
		Help: "Number of accounts created.",
	})

	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})
)

// ToggleState converts a toggle result into its metric label.
func ToggleState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
