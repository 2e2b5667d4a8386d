package ledger

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"options-tracker/models"
)

var testUserSeq atomic.Uint32

// setupTestDB connects to the test database, migrating the ledger tables.
// Suites that need postgres skip cleanly when it is unreachable.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		envOr("TEST_DB_HOST", "localhost"),
		envOr("TEST_DB_USER", "postgres"),
		envOr("TEST_DB_PASSWORD", ""),
		envOr("TEST_DB_NAME", "options_tracker_test"),
		envOr("TEST_DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	if err := db.AutoMigrate(&models.Trade{}, &models.CashAccount{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// testUserID hands out a user id no other test run is using, so suites can
// run against a shared database without stepping on each other.
func testUserID(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	userID := uint(time.Now().Unix()%1_000_000)*1000 + uint(testUserSeq.Add(1)%1000)

	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&models.Trade{})
		db.Where("user_id = ?", userID).Delete(&models.CashAccount{})
	})

	return userID
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
