package database

import (
	"fmt"
	"log"
	"os"

	"linkpage-app/internal/domain/blocks"
	"linkpage-app/internal/domain/notifications"
	"linkpage-app/internal/domain/pages"
	"linkpage-app/internal/domain/users"
	"linkpage-app/internal/domain/verification"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ REQUIRED for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.PasswordResetToken{},

		// pages
		&pages.Page{},
		&pages.ReservedUsername{},
		&blocks.Block{},

		// verification
		&verification.Request{},

		// notifications
		&notifications.Notification{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	// ✅ At most one pending verification request per subject. The database
	// decides races between near-simultaneous submissions, not the app.
	if err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_requests_one_pending_personal
		ON requests (user_id)
		WHERE status = 'pending' AND req_type = 'personal'`).Error; err != nil {
		log.Fatal("❌ Failed to create pending-personal index:", err)
	}
	if err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_requests_one_pending_brand
		ON requests (user_id, page_id)
		WHERE status = 'pending' AND req_type = 'brand'`).Error; err != nil {
		log.Fatal("❌ Failed to create pending-brand index:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
