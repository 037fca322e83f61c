package model

import "time"

// emailが主キー。パスワードは必ずbcryptハッシュで保存する。
type User struct {
	Email             string    `gorm:"primaryKey;size:320" json:"email"`
	PasswordHash      string    `gorm:"column:password_hash;not null" json:"-"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone             string    `gorm:"type:varchar(32)" json:"phone"`
	ProfilePictureURI *string   `gorm:"type:text" json:"profile_picture_uri"`
	IsAdmin           bool      `gorm:"not null;default:false" json:"is_admin"`
	Bio               string    `gorm:"type:text" json:"bio"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
