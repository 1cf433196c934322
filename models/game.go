package models

import "gorm.io/gorm"

type Game struct {
	gorm.Model

	Name        string `gorm:"uniqueIndex;size:64" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	LogoURL     string `gorm:"size:255" json:"logo_url"`

	Products []Product `gorm:"foreignKey:GameID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:GameID" json:"-"`
}
