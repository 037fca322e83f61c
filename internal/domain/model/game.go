package model

import "time"

// カタログのゲーム。idはスラッグ形式（"gtav"など）で管理者が与える。
type Game struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	LongDescription string    `gorm:"type:text" json:"long_description"`
	Price           float64   `gorm:"not null" json:"price"`
	Category        string    `gorm:"type:varchar(64);index" json:"category"`
	Rating          float64   `gorm:"not null;default:0" json:"rating"`
	ReleaseDate     string    `gorm:"type:varchar(32)" json:"release_date"`
	Developer       string    `gorm:"type:varchar(255)" json:"developer"`
	Publisher       string    `gorm:"type:varchar(255)" json:"publisher"`
	ImageRef        string    `gorm:"type:varchar(255)" json:"image_ref"`
	IsAvailable     bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
