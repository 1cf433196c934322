package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AdminUsername is the fixed identity every support conversation goes through.
const AdminUsername = "admin"

type User struct {
	gorm.Model

	Username     string `gorm:"uniqueIndex;size:32" json:"username"`
	PasswordHash string `gorm:"size:64" json:"-"`
	Role         string `gorm:"size:8;default:user" json:"role"`
	Email        string `gorm:"size:128" json:"email"`

	// Saved game-account IDs keyed by game name, used to prefill orders.
	DefaultGameIDs datatypes.JSONMap `json:"default_game_ids"`

	Transactions []Transaction `gorm:"foreignKey:Username;references:Username" json:"-"`
}
