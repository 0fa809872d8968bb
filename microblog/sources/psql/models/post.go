package models

import "time"

// PostBodyMaxLen bounds post bodies, measured in runes.
const PostBodyMaxLen = 140

type Post struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Body string `json:"body" gorm:"type:varchar(140);not null"`
	// Timestamp is set once at creation and never updated.
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
	AuthorID  int       `json:"author_id" gorm:"not null;index"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}
