package jobs

import (
	"context"
	"log"
	"os"
	"time"
	"topupgame/database"
	"topupgame/models"
	"topupgame/services"
)

func pollInterval() time.Duration {
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 5 * time.Second
}

// StartOrderWatcher polls the session user's orders on a fixed interval and
// queues an alert for every status change. The goroutine stops when the
// session is deleted at logout.
func StartOrderWatcher(sess *services.Session) {
	ctx, cancel := context.WithCancel(context.Background())
	sess.BindWatcher(cancel)

	ticker := time.NewTicker(pollInterval())
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				var transactions []models.Transaction
				if err := database.DB.Where("username = ?", sess.Username).Find(&transactions).Error; err != nil {
					log.Printf("❌ order watcher fetch failed for %s: %v", sess.Username, err)
					continue
				}
				current := make(map[uint]string, len(transactions))
				for _, t := range transactions {
					current[t.ID] = t.Status
				}
				sess.ObserveStatuses(current)
			}
		}
	}()
}
