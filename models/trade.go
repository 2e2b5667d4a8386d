package models

import "time"

// Trade type, side and status values accepted by the ledger.
const (
	TradeTypeCall = "call"
	TradeTypePut  = "put"

	SideBuy  = "buy"
	SideSell = "sell"

	StatusOpen    = "open"
	StatusClosed  = "closed"
	StatusExpired = "expired"
)

// Trade is a single options position in the ledger. Collateral is populated
// by the ledger at create/update time and read back as-is, never recomputed
// on the fly.
type Trade struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	StockTicker    string    `gorm:"index" json:"stock_ticker"`
	TradeType      string    `json:"trade_type"`
	ContractCount  int       `json:"contract_count"`
	BuySell        string    `json:"buy_sell"`
	StrikePrice    float64   `json:"strike_price"`
	PremiumPrice   float64   `json:"premium_price"`
	Fees           float64   `json:"fees"`
	TradeDate      time.Time `gorm:"type:date" json:"trade_date"`
	ExpirationDate time.Time `gorm:"type:date" json:"expiration_date"`
	Status         string    `gorm:"default:open" json:"status"`
	Notes          *string   `json:"notes"`
	Collateral     float64   `json:"collateral"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CashAccount holds the single cash balance per user. Created lazily with a
// zero balance and replaced wholesale on upsert.
type CashAccount struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex" json:"user_id"`
	TotalCash float64   `json:"total_cash"`
	UpdatedAt time.Time `json:"updated_at"`
}
