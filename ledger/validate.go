package ledger

import (
	"strings"
	"time"

	"options-tracker/models"
)

// DateLayout is the calendar-date wire format for trade and expiration dates.
const DateLayout = "2006-01-02"

// TradeInput is the mutation payload for Create and Update. Numeric fields
// are pointers so a missing field can be told apart from a legitimate zero
// (a premium of 0 is valid, an absent premium is not).
type TradeInput struct {
	StockTicker    string   `json:"stock_ticker"`
	TradeType      string   `json:"trade_type"`
	ContractCount  *int     `json:"contract_count"`
	BuySell        string   `json:"buy_sell"`
	StrikePrice    *float64 `json:"strike_price"`
	PremiumPrice   *float64 `json:"premium_price"`
	Fees           *float64 `json:"fees"`
	TradeDate      string   `json:"trade_date"`
	ExpirationDate string   `json:"expiration_date"`
	Status         string   `json:"status"`
	Notes          *string  `json:"notes"`
}

// Validate runs every field-level guard. It must pass before any storage is
// touched, for Update as well as Create.
func (in *TradeInput) Validate() error {
	if strings.TrimSpace(in.StockTicker) == "" || in.TradeType == "" || in.ContractCount == nil ||
		in.BuySell == "" || in.StrikePrice == nil || in.PremiumPrice == nil ||
		in.TradeDate == "" || in.ExpirationDate == "" {
		return validationError("Missing required fields")
	}

	if in.TradeType != models.TradeTypeCall && in.TradeType != models.TradeTypePut {
		return validationError(`Invalid trade type. Must be "call" or "put"`)
	}

	if in.BuySell != models.SideBuy && in.BuySell != models.SideSell {
		return validationError(`Invalid action. Must be "buy" or "sell"`)
	}

	if *in.ContractCount <= 0 {
		return validationError("Contract count must be greater than 0")
	}

	if *in.StrikePrice <= 0 {
		return validationError("Strike price must be greater than 0")
	}

	if *in.PremiumPrice < 0 {
		return validationError("Premium price cannot be negative")
	}

	if in.Fees != nil && *in.Fees < 0 {
		return validationError("Fees cannot be negative")
	}

	if _, err := time.Parse(DateLayout, in.TradeDate); err != nil {
		return validationError("Invalid trade date. Must be YYYY-MM-DD")
	}

	if _, err := time.Parse(DateLayout, in.ExpirationDate); err != nil {
		return validationError("Invalid expiration date. Must be YYYY-MM-DD")
	}

	if in.Status != "" {
		if err := ValidateStatus(in.Status); err != nil {
			return err
		}
	}

	return nil
}

// ValidateStatus guards the status transition operation.
func ValidateStatus(status string) error {
	switch status {
	case models.StatusOpen, models.StatusClosed, models.StatusExpired:
		return nil
	default:
		return validationError(`Invalid status. Must be "open", "closed", or "expired"`)
	}
}

// toTrade validates the payload and builds the normalized record: ticker
// uppercased, fees defaulted to 0, status defaulted to open, collateral
// computed from the stored convention.
func (in *TradeInput) toTrade(userID uint) (models.Trade, error) {
	if err := in.Validate(); err != nil {
		return models.Trade{}, err
	}

	tradeDate, _ := time.Parse(DateLayout, in.TradeDate)
	expirationDate, _ := time.Parse(DateLayout, in.ExpirationDate)

	fees := 0.0
	if in.Fees != nil {
		fees = *in.Fees
	}

	status := in.Status
	if status == "" {
		status = models.StatusOpen
	}

	return models.Trade{
		UserID:         userID,
		StockTicker:    strings.ToUpper(strings.TrimSpace(in.StockTicker)),
		TradeType:      in.TradeType,
		ContractCount:  *in.ContractCount,
		BuySell:        in.BuySell,
		StrikePrice:    *in.StrikePrice,
		PremiumPrice:   *in.PremiumPrice,
		Fees:           fees,
		TradeDate:      tradeDate,
		ExpirationDate: expirationDate,
		Status:         status,
		Notes:          in.Notes,
		Collateral:     Collateral(in.BuySell, *in.StrikePrice, *in.ContractCount),
	}, nil
}
