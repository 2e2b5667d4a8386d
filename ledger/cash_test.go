package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"options-tracker/models"
)

func TestCashLedgerGetAbsent(t *testing.T) {
	db := setupTestDB(t)
	userID := testUserID(t, db)
	l := NewCashLedger(db, testLogger())

	_, found, err := l.Get(userID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCashLedgerEnsureDefault(t *testing.T) {
	db := setupTestDB(t)
	userID := testUserID(t, db)
	l := NewCashLedger(db, testLogger())

	account, err := l.EnsureDefault(userID)
	require.NoError(t, err)
	assert.Equal(t, userID, account.UserID)
	assert.Equal(t, 0.0, account.TotalCash)

	// Idempotent: a second call finds the same record.
	again, err := l.EnsureDefault(userID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.CashAccount{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCashLedgerUpsert(t *testing.T) {
	db := setupTestDB(t)
	userID := testUserID(t, db)
	l := NewCashLedger(db, testLogger())

	account, err := l.Upsert(userID, 10000)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, account.TotalCash)

	// Full-replace semantics, no accumulation.
	account, err = l.Upsert(userID, 2500)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, account.TotalCash)

	// Repeated identical upserts never create duplicates.
	account, err = l.Upsert(userID, 2500)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, account.TotalCash)

	var count int64
	require.NoError(t, db.Model(&models.CashAccount{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCashLedgerUpsertRejectsNegative(t *testing.T) {
	db := setupTestDB(t)
	userID := testUserID(t, db)
	l := NewCashLedger(db, testLogger())

	_, err := l.Upsert(userID, 500)
	require.NoError(t, err)

	_, err = l.Upsert(userID, -1)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "Cash amount cannot be negative")

	// Stored balance unchanged by the rejected write.
	account, found, err := l.Get(userID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 500.0, account.TotalCash)
}
