package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"options-tracker/config"
	"options-tracker/ledger"
)

func cashLedger() *ledger.CashLedger {
	return ledger.NewCashLedger(config.DB, config.Logger)
}

type CashInput struct {
	TotalCash *float64 `json:"total_cash"`
}

// GetCash returns the cash account (created with 0 on first access) together
// with the derived collateral figures, mirroring what the dashboard shows.
func GetCash(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	account, err := cashLedger().EnsureDefault(userID)
	if err != nil {
		ledgerError(c, err, "Failed to fetch cash data")
		return
	}

	openTrades, err := tradeLedger().ListOpen(userID)
	if err != nil {
		ledgerError(c, err, "Failed to fetch cash data")
		return
	}

	totalCollateral := ledger.TotalCollateral(openTrades)

	c.JSON(http.StatusOK, gin.H{
		"cash": gin.H{
			"user_id":          account.UserID,
			"total_cash":       account.TotalCash,
			"total_collateral": totalCollateral,
			"remaining_cash":   ledger.RemainingCash(account.TotalCash, totalCollateral),
		},
	})
}

// UpdateCash replaces the stored balance. Negative amounts are rejected
// before storage is touched.
func UpdateCash(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input CashInput
	if err := c.ShouldBindJSON(&input); err != nil || input.TotalCash == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total_cash is required"})
		return
	}

	account, err := cashLedger().Upsert(userID, *input.TotalCash)
	if err != nil {
		ledgerError(c, err, "Failed to update cash")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cash updated successfully", "cash": account})
}
