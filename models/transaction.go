package models

import "gorm.io/gorm"

const (
	StatusMenunggu = "Menunggu"
	StatusDiproses = "Diproses"
	StatusSelesai  = "Selesai"
	StatusGagal    = "Gagal"
)

// Transaction is a top-up order. Game name, package and price are copied in
// at order time so later catalog edits never rewrite order history.
type Transaction struct {
	gorm.Model

	Username string `gorm:"index;size:32" json:"username"`

	GameName string `gorm:"size:64" json:"game_name"`
	Paket    string `gorm:"size:64" json:"paket"`
	Harga    int64  `json:"harga"`

	Nickname      string `gorm:"size:64" json:"nickname"`
	PaymentMethod string `gorm:"size:32" json:"payment_method"`
	GameAccountID string `gorm:"size:64" json:"game_account_id"`

	Status     string `gorm:"size:16;index;default:Menunggu" json:"status"`
	ProofURL   string `gorm:"size:255" json:"proof_url"`
	FailReason string `gorm:"size:255" json:"fail_reason"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusMenunggu, StatusDiproses, StatusSelesai, StatusGagal:
		return true
	}
	return false
}
