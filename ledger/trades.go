package ledger

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"options-tracker/models"
)

// TradeLedger owns the per-user set of trade records. Every query is
// owner-filtered; there is no code path that reads another user's rows.
type TradeLedger struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewTradeLedger(db *gorm.DB, log zerolog.Logger) *TradeLedger {
	return &TradeLedger{
		db:  db,
		log: log.With().Str("ledger", "trades").Logger(),
	}
}

// Create validates the payload, assigns an id and persists the trade with
// status open and write-time collateral.
func (l *TradeLedger) Create(userID uint, in TradeInput) (models.Trade, error) {
	in.Status = ""
	trade, err := in.toTrade(userID)
	if err != nil {
		return models.Trade{}, err
	}

	if err := l.db.Create(&trade).Error; err != nil {
		return models.Trade{}, fmt.Errorf("failed to create trade: %w", err)
	}

	l.log.Info().
		Uint("user_id", userID).
		Uint("trade_id", trade.ID).
		Str("ticker", trade.StockTicker).
		Str("side", trade.BuySell).
		Float64("collateral", trade.Collateral).
		Msg("Trade created")

	return trade, nil
}

// Get returns the trade only when it belongs to userID; a foreign or missing
// id is ErrNotFound either way.
func (l *TradeLedger) Get(userID, tradeID uint) (models.Trade, error) {
	var trade models.Trade
	err := l.db.Where("id = ? AND user_id = ?", tradeID, userID).First(&trade).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Trade{}, ErrNotFound
	}
	if err != nil {
		return models.Trade{}, fmt.Errorf("failed to get trade: %w", err)
	}
	return trade, nil
}

// List returns all trades for the user, most recent trade date first.
func (l *TradeLedger) List(userID uint) ([]models.Trade, error) {
	var trades []models.Trade
	err := l.db.Where("user_id = ?", userID).
		Order("trade_date DESC").
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}

// ListOpen returns open trades soonest-expiring first.
func (l *TradeLedger) ListOpen(userID uint) ([]models.Trade, error) {
	var trades []models.Trade
	err := l.db.Where("user_id = ? AND status = ?", userID, models.StatusOpen).
		Order("expiration_date ASC").
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open trades: %w", err)
	}
	return trades, nil
}

// Update replaces every mutable field of an owned trade, re-running the same
// validation as Create. Collateral is recomputed from the new values so the
// stored column never drifts from the write-time convention.
func (l *TradeLedger) Update(userID, tradeID uint, in TradeInput) (models.Trade, error) {
	trade, err := in.toTrade(userID)
	if err != nil {
		return models.Trade{}, err
	}

	result := l.db.Model(&models.Trade{}).
		Where("id = ? AND user_id = ?", tradeID, userID).
		Updates(map[string]interface{}{
			"stock_ticker":    trade.StockTicker,
			"trade_type":      trade.TradeType,
			"contract_count":  trade.ContractCount,
			"buy_sell":        trade.BuySell,
			"strike_price":    trade.StrikePrice,
			"premium_price":   trade.PremiumPrice,
			"fees":            trade.Fees,
			"trade_date":      trade.TradeDate,
			"expiration_date": trade.ExpirationDate,
			"status":          trade.Status,
			"notes":           trade.Notes,
			"collateral":      trade.Collateral,
		})
	if result.Error != nil {
		return models.Trade{}, fmt.Errorf("failed to update trade: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.Trade{}, ErrNotFound
	}

	return l.Get(userID, tradeID)
}

// UpdateStatus moves an owned trade to any status in {open, closed, expired}.
// No transition adjacency is enforced: a closed or expired trade may be
// manually re-opened.
func (l *TradeLedger) UpdateStatus(userID, tradeID uint, status string) (models.Trade, error) {
	if err := ValidateStatus(status); err != nil {
		return models.Trade{}, err
	}

	result := l.db.Model(&models.Trade{}).
		Where("id = ? AND user_id = ?", tradeID, userID).
		Update("status", status)
	if result.Error != nil {
		return models.Trade{}, fmt.Errorf("failed to update trade status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.Trade{}, ErrNotFound
	}

	l.log.Info().
		Uint("user_id", userID).
		Uint("trade_id", tradeID).
		Str("status", status).
		Msg("Trade status updated")

	return l.Get(userID, tradeID)
}

// Delete hard-deletes an owned trade. Deleting an already-deleted or foreign
// trade is ErrNotFound.
func (l *TradeLedger) Delete(userID, tradeID uint) error {
	result := l.db.Where("id = ? AND user_id = ?", tradeID, userID).Delete(&models.Trade{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete trade: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	l.log.Info().
		Uint("user_id", userID).
		Uint("trade_id", tradeID).
		Msg("Trade deleted")

	return nil
}
