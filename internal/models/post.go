// Package models contains data structures for the application's domain models.
package models

import "time"

// Post lifecycle states. Soft deletion is tracked separately so a deleted
// post keeps its status and stays retrievable at the storage layer.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// DefaultAuthorName is used when a post is created without an author display name.
const DefaultAuthorName = "Admin"

// Post represents a blog post.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	// Author is the display name shown on the post; kept separate from the
	// User link so legacy posts without accounts still render.
	Author   string `gorm:"size:100;default:Admin" json:"author"`
	AuthorID *uint  `gorm:"index" json:"author_id,omitempty"`
	User     *User  `gorm:"foreignKey:AuthorID" json:"user,omitempty"`

	Status       string     `gorm:"size:20;default:draft;index" json:"status"`
	ScheduledFor *time.Time `gorm:"index" json:"scheduled_for,omitempty"`
	IsDeleted    bool       `gorm:"default:false;index" json:"-"`

	Views uint `gorm:"default:0" json:"views"`

	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags       []Tag     `gorm:"many2many:post_tags" json:"tags"`
	Comments   []Comment `gorm:"foreignKey:PostID" json:"-"`

	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->;-:migration" json:"comments_count"`

	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
}

// Publish transitions the post to published. PublishedAt is stamped only on
// the first transition and never overwritten.
func (p *Post) Publish(now time.Time) {
	p.Status = PostStatusPublished
	if p.PublishedAt == nil {
		t := now
		p.PublishedAt = &t
	}
}

// ScheduledDue reports whether the post is a draft whose scheduled time has
// been reached, making it eligible for promotion on the next read.
func (p *Post) ScheduledDue(now time.Time) bool {
	return p.Status == PostStatusDraft && p.ScheduledFor != nil && !p.ScheduledFor.After(now)
}
