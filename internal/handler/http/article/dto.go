// Package article provides HTTP handlers for the article endpoints:
// feed listing, full-text search, CRUD and the favorite toggle.
package article

import (
	"time"

	"conduit/internal/domain/entity"
)

// AuthorDTO represents the embedded author profile in article payloads.
type AuthorDTO struct {
	Username  string `json:"username" example:"alice"`
	Bio       string `json:"bio" example:"writes about Go"`
	Image     string `json:"image" example:"https://example.com/alice.png"`
	Following bool   `json:"following" example:"false"`
}

// SummaryDTO represents one article in a feed listing.
type SummaryDTO struct {
	Slug           string    `json:"slug" example:"how-to-train-your-dragon-1a2b3c4d"`
	Title          string    `json:"title" example:"How to train your dragon"`
	Description    string    `json:"description" example:"Ever wonder how?"`
	Tags           []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt" example:"2026-03-14T12:00:00Z"`
	Favorited      bool      `json:"favorited" example:"false"`
	FavoritesCount int64     `json:"favoritesCount" example:"3"`
	CommentsCount  int64     `json:"commentsCount" example:"2"`
	Author         AuthorDTO `json:"author"`
}

// DTO represents a full article including the body.
type DTO struct {
	SummaryDTO
	Body string `json:"body" example:"You have to believe"`
}

// SearchHitDTO represents one search result with highlighted snippets.
type SearchHitDTO struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	Author      AuthorDTO `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UpsertRequest is the JSON body for create and update.
type UpsertRequest struct {
	Title       string   `json:"title" example:"How to train your dragon"`
	Description string   `json:"description" example:"Ever wonder how?"`
	Body        string   `json:"body" example:"You have to believe"`
	Tags        []string `json:"tagList"`
}

func toAuthorDTO(a entity.Author) AuthorDTO {
	return AuthorDTO{
		Username:  a.Username,
		Bio:       a.Bio,
		Image:     a.Image,
		Following: a.Following,
	}
}

func toSummaryDTO(s *entity.ArticleSummary) SummaryDTO {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return SummaryDTO{
		Slug:           s.Slug,
		Title:          s.Title,
		Description:    s.Description,
		Tags:           tags,
		CreatedAt:      s.CreatedAt,
		Favorited:      s.Fav,
		FavoritesCount: s.FavCount,
		CommentsCount:  s.CommentsCnt,
		Author:         toAuthorDTO(s.Author),
	}
}

func toDTO(a *entity.Article) DTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		SummaryDTO: SummaryDTO{
			Slug:           a.Slug,
			Title:          a.Title,
			Description:    a.Description,
			Tags:           tags,
			CreatedAt:      a.CreatedAt,
			Favorited:      a.Fav,
			FavoritesCount: a.FavCount,
			CommentsCount:  a.CommentsCnt,
			Author:         toAuthorDTO(a.Author),
		},
		Body: a.Body,
	}
}

func toSearchHitDTO(h *entity.SearchHit) SearchHitDTO {
	return SearchHitDTO{
		Slug:        h.Slug,
		Title:       h.Title,
		Description: h.Description,
		Body:        h.Body,
		Author:      AuthorDTO{Username: h.Author},
		CreatedAt:   h.CreatedAt,
	}
}
