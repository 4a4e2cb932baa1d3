package models

import "time"

// AnonymousCommenter is the display name for comments left without an account.
const AnonymousCommenter = "Anonymous"

// Comment represents a reader comment on a post. UserID is nil for
// anonymous comments.
type Comment struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PostID     uint   `gorm:"not null;index" json:"post_id"`
	UserID     *uint  `gorm:"index" json:"user_id,omitempty"`
	User       *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AuthorName string `gorm:"size:100;not null" json:"author_name"`
	Body       string `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
