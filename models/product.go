package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model

	GameID uint `gorm:"index" json:"game_id"`
	Game   Game `json:"game"`

	Paket    string `gorm:"size:64" json:"paket"`
	Harga    int64  `json:"harga"`
	ImageURL string `gorm:"size:255" json:"image_url"`
}
