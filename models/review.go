package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model

	GameID   uint   `gorm:"index" json:"game_id"`
	Game     Game   `json:"game"`
	Username string `gorm:"index;size:32" json:"username"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	// Admin moderation flag; hidden reviews stay in the table.
	Visible bool `gorm:"default:true" json:"visible"`
}
