package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	voucherRepo "courtku_backend/internals/features/vouchers/vouchers/repository"
	voucherSvc "courtku_backend/internals/features/vouchers/vouchers/service"
)

// StartVoucherExpiryScheduler sweeps overdue vouchers into EXPIRED on a
// fixed interval (default: every 24 hours, tunable via
// VOUCHER_EXPIRY_SWEEP_HOURS). The sweep is a single idempotent UPDATE,
// so overlapping runs across restarts are harmless.
func StartVoucherExpiryScheduler(db *gorm.DB) {
	go func() {
		sweepHours := 24
		if val := os.Getenv("VOUCHER_EXPIRY_SWEEP_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				sweepHours = parsed
			}
		}

		engine := voucherSvc.NewVoucherEngine(voucherRepo.NewUnitOfWork(db))

		for {
			log.Println("[VOUCHER SWEEP] Expiring overdue vouchers...")

			n, err := engine.UpdateExpiredVouchers()
			switch {
			case err != nil:
				log.Printf("[VOUCHER SWEEP ERROR] Sweep failed: %v", err)
			case n > 0:
				log.Printf("[VOUCHER SWEEP] %d voucher(s) expired", n)
			default:
				log.Println("[VOUCHER SWEEP] No vouchers due for expiry")
			}

			time.Sleep(time.Duration(sweepHours) * time.Hour)
		}
	}()
}
