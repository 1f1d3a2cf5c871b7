package entity

import "time"

// Comment represents a reader comment attached to an article.
type Comment struct {
	ID          int64
	ArticleSlug string
	Author      Author
	Body        string
	CreatedAt   time.Time
}
