package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is an article on the marketing site.
type BlogPost struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	IsPublished bool       `json:"is_published"`
	IsFeatured  bool       `json:"is_featured"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Views       int        `json:"views"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SetPublished is the single place coupling published_at to is_published.
// Publishing stamps the current time even on a re-publish; unpublishing
// clears the timestamp entirely.
func (p *BlogPost) SetPublished(published bool, now time.Time) {
	p.IsPublished = published
	if published {
		p.PublishedAt = &now
	} else {
		p.PublishedAt = nil
	}
}
