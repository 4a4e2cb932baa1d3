package models

// Category groups posts; each post belongs to at most one category.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	Posts []Post `gorm:"foreignKey:CategoryID" json:"-"`
}
