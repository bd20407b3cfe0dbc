package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"courtku_backend/internals/configs"
	BookingModel "courtku_backend/internals/features/bookings/bookings/model"
	InvoiceModel "courtku_backend/internals/features/billing/invoices/model"
	ServiceModel "courtku_backend/internals/features/billing/services/model"
	CourtModel "courtku_backend/internals/features/courts/courts/model"
	TimeSlotModel "courtku_backend/internals/features/courts/time_slots/model"
	HolidayModel "courtku_backend/internals/features/pricing/holidays/model"
	PriceSettingModel "courtku_backend/internals/features/pricing/price_settings/model"
	PaymentModel "courtku_backend/internals/features/payments/payments/model"
	VoucherModel "courtku_backend/internals/features/vouchers/vouchers/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=courtku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Migrate() {
	if err := DB.AutoMigrate(
		&CourtModel.CourtModel{},
		&TimeSlotModel.TimeSlotModel{},
		&HolidayModel.HolidayModel{},
		&PriceSettingModel.PriceSettingModel{},
		&ServiceModel.ServiceModel{},
		&BookingModel.BookingModel{},
		&BookingModel.BookingServiceModel{},
		&InvoiceModel.InvoiceModel{},
		&InvoiceModel.InvoiceDetailModel{},
		&VoucherModel.DiscountModel{},
		&PaymentModel.PaymentModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Backstop for the check-then-insert race on booking creation: at most one
	// non-cancelled booking per (court, slot, date).
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_court_slot_date_active
		ON bookings (booking_court_id, booking_time_slot_id, booking_date)
		WHERE booking_status <> 'cancelled' AND booking_deleted_at IS NULL
	`).Error; err != nil {
		log.Fatalf("❌ Unique booking index failed: %v", err)
	}

	log.Println("✅ Migration done.")
}

func WarmUpQueries() {
	// lightweight ping so the pool is warm before the first request
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
