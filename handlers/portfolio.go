package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"options-tracker/config"
	"options-tracker/ledger"
	"options-tracker/models"
)

func tradeLedger() *ledger.TradeLedger {
	return ledger.NewTradeLedger(config.DB, config.Logger)
}

func tradeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
		return 0, false
	}
	return uint(id), true
}

func CreateTrade(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input ledger.TradeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	trade, err := tradeLedger().Create(userID, input)
	if err != nil {
		ledgerError(c, err, "Failed to create trade")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Trade created successfully", "trade": trade})
}

func GetTrades(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	trades, err := tradeLedger().List(userID)
	if err != nil {
		ledgerError(c, err, "Failed to fetch trades")
		return
	}

	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

func GetOpenTrades(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	trades, err := tradeLedger().ListOpen(userID)
	if err != nil {
		ledgerError(c, err, "Failed to fetch open trades")
		return
	}

	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

func GetTrade(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	id, ok := tradeID(c)
	if !ok {
		return
	}

	trade, err := tradeLedger().Get(userID, id)
	if err != nil {
		ledgerError(c, err, "Failed to fetch trade")
		return
	}

	c.JSON(http.StatusOK, gin.H{"trade": trade})
}

func UpdateTrade(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	id, ok := tradeID(c)
	if !ok {
		return
	}

	var input ledger.TradeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	trade, err := tradeLedger().Update(userID, id, input)
	if err != nil {
		ledgerError(c, err, "Failed to update trade")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trade updated successfully", "trade": trade})
}

type StatusInput struct {
	Status string `json:"status"`
}

func UpdateTradeStatus(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	id, ok := tradeID(c)
	if !ok {
		return
	}

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	trade, err := tradeLedger().UpdateStatus(userID, id, input.Status)
	if err != nil {
		ledgerError(c, err, "Failed to update trade status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trade status updated successfully", "trade": trade})
}

func DeleteTrade(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	id, ok := tradeID(c)
	if !ok {
		return
	}

	if err := tradeLedger().Delete(userID, id); err != nil {
		ledgerError(c, err, "Failed to delete trade")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trade deleted successfully"})
}

// TradeSummary is a trade plus its allocation share of total cash.
// Allocation is only meaningful for sell-side positions; buy-side trades
// report null.
type TradeSummary struct {
	models.Trade
	AllocationPct *float64 `json:"allocation_pct"`
}

// GetPortfolioSummary returns every trade with its allocation percentage
// alongside the portfolio-wide derived figures. Everything here is
// recomputed from current ledger contents on each call.
func GetPortfolioSummary(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	trades, err := tradeLedger().List(userID)
	if err != nil {
		ledgerError(c, err, "Failed to fetch portfolio summary")
		return
	}

	account, err := ledger.NewCashLedger(config.DB, config.Logger).EnsureDefault(userID)
	if err != nil {
		ledgerError(c, err, "Failed to fetch portfolio summary")
		return
	}

	summaries := make([]TradeSummary, 0, len(trades))
	for _, trade := range trades {
		summary := TradeSummary{Trade: trade}
		if trade.BuySell == models.SideSell {
			pct := ledger.AllocationPct(trade.Collateral, account.TotalCash)
			summary.AllocationPct = &pct
		}
		summaries = append(summaries, summary)
	}

	totalCollateral := ledger.TotalCollateral(trades)

	c.JSON(http.StatusOK, gin.H{
		"trades":           summaries,
		"total_cash":       account.TotalCash,
		"total_collateral": totalCollateral,
		"remaining_cash":   ledger.RemainingCash(account.TotalCash, totalCollateral),
	})
}
