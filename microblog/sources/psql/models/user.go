package models

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

type Role int16

const (
	RoleUser  Role = 0
	RoleAdmin Role = 1
)

// AboutMeMaxLen bounds the free-text profile blurb, measured in runes.
const AboutMeMaxLen = 140

type User struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Nickname string `json:"nickname" gorm:"type:varchar(64);uniqueIndex;not null"`
	// Email is the federated-identity correlation key and never changes after creation.
	Email    string    `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	Role     Role      `json:"role" gorm:"type:smallint;not null;default:0"`
	AboutMe  string    `json:"about_me" gorm:"type:varchar(140)"`
	LastSeen time.Time `json:"last_seen"`
}

// AvatarURL derives a Gravatar-style avatar from the user's email.
// No blob storage is involved anywhere.
func (u *User) AvatarURL(size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(u.Email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=identicon&s=%d", sum, size)
}
