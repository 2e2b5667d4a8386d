package ledger

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"options-tracker/models"
)

// CashLedger owns the single cash balance per user.
type CashLedger struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewCashLedger(db *gorm.DB, log zerolog.Logger) *CashLedger {
	return &CashLedger{
		db:  db,
		log: log.With().Str("ledger", "cash").Logger(),
	}
}

// Get returns the account and whether one exists yet. Absence is not an
// error; the caller decides whether to materialize a default.
func (l *CashLedger) Get(userID uint) (models.CashAccount, bool, error) {
	var account models.CashAccount
	err := l.db.Where("user_id = ?", userID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CashAccount{}, false, nil
	}
	if err != nil {
		return models.CashAccount{}, false, fmt.Errorf("failed to get cash account: %w", err)
	}
	return account, true, nil
}

// EnsureDefault creates the account with a zero balance on first access.
// Subsequent calls find the existing record.
func (l *CashLedger) EnsureDefault(userID uint) (models.CashAccount, error) {
	account := models.CashAccount{UserID: userID, TotalCash: 0}
	err := l.db.Where(models.CashAccount{UserID: userID}).FirstOrCreate(&account).Error
	if err != nil {
		return models.CashAccount{}, fmt.Errorf("failed to ensure cash account: %w", err)
	}
	return account, nil
}

// Upsert replaces the stored balance wholesale. There are no delta
// semantics; after the call exactly one account holds totalCash.
func (l *CashLedger) Upsert(userID uint, totalCash float64) (models.CashAccount, error) {
	if totalCash < 0 {
		return models.CashAccount{}, validationError("Cash amount cannot be negative")
	}

	account := models.CashAccount{UserID: userID, TotalCash: totalCash}
	err := l.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_cash", "updated_at"}),
	}).Create(&account).Error
	if err != nil {
		return models.CashAccount{}, fmt.Errorf("failed to upsert cash account: %w", err)
	}

	l.log.Info().
		Uint("user_id", userID).
		Float64("total_cash", totalCash).
		Msg("Cash balance updated")

	// Re-read so the conflict path returns the real row id.
	err = l.db.Where("user_id = ?", userID).First(&account).Error
	if err != nil {
		return models.CashAccount{}, fmt.Errorf("failed to read back cash account: %w", err)
	}
	return account, nil
}
