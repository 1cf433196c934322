package jobs

import (
	"time"
	tasks "topupgame/task"
)

// StartMaintenanceScheduler runs the housekeeping tasks on a fixed interval.
func StartMaintenanceScheduler() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for {
			<-ticker.C
			tasks.CleanupOldMessages()
		}
	}()
}
