package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/features/analytics/visits/service"
)

// StartVisitCleanupScheduler menghapus visit log yang sudah melewati
// masa retensi. Jalan tiap 24 jam di goroutine sendiri.
func StartVisitCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan visit_logs...")

			deleted, err := service.PurgeOldVisits(db, configs.VisitRetentionDays)
			if err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus visit log lama: %v", err)
			} else if deleted > 0 {
				log.Printf("[CLEANUP] %d visit log kadaluarsa dihapus", deleted)
			} else {
				log.Println("[CLEANUP] Tidak ada visit log yang memenuhi syarat dihapus")
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
