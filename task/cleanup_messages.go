package tasks

import (
	"log"
	"time"
	"topupgame/database"
	"topupgame/models"
)

// CleanupOldMessages drops read conversation lines older than 30 days so the
// messages table does not grow without bound.
func CleanupOldMessages() {
	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	result := database.DB.
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Message{})

	if result.Error != nil {
		log.Println("❌ Failed to delete old messages:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Deleted %d read messages older than 30 days\n", result.RowsAffected)
	}
}
