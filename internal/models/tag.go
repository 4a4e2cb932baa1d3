package models

// Tag labels posts; posts and tags are many-to-many through post_tags.
// Names are stored lowercase.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`

	Posts []Post `gorm:"many2many:post_tags" json:"-"`
}
