package models

import "gorm.io/gorm"

// Message is one line in a user<->admin conversation. Either the sender or
// the recipient is always the admin identity.
type Message struct {
	gorm.Model

	Sender    string `gorm:"index;size:32" json:"sender"`
	Recipient string `gorm:"index;size:32" json:"recipient"`
	Content   string `gorm:"size:1000" json:"content"`
	IsRead    bool   `gorm:"default:false" json:"is_read"`
}
