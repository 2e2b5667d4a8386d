package ledger

import (
	"github.com/shopspring/decimal"

	"options-tracker/models"
)

// ContractMultiplier is the standard equity options contract size in shares.
const ContractMultiplier = 100

// Collateral is the capital a trade ties up: strike × contracts × multiplier
// for sell-side trades (cash-secured puts, covered calls). A bought option
// risks only its premium, so buy-side collateral is 0. Premium and fees never
// factor in. The result is stored on the trade at write time and read back
// as-is.
func Collateral(buySell string, strikePrice float64, contractCount int) float64 {
	if buySell != models.SideSell {
		return 0
	}

	collateral := decimal.NewFromFloat(strikePrice).
		Mul(decimal.NewFromInt(int64(contractCount))).
		Mul(decimal.NewFromInt(ContractMultiplier))

	return collateral.InexactFloat64()
}

// TotalCollateral sums stored collateral over open trades only. Closed and
// expired trades no longer tie up capital.
func TotalCollateral(trades []models.Trade) float64 {
	total := decimal.Zero
	for _, trade := range trades {
		if trade.Status != models.StatusOpen {
			continue
		}
		total = total.Add(decimal.NewFromFloat(trade.Collateral))
	}
	return total.InexactFloat64()
}

// AllocationPct is the share of total cash committed by one position's
// collateral, rounded to two decimals. Zero or negative cash yields 0 rather
// than a division error.
func AllocationPct(collateral, totalCash float64) float64 {
	if totalCash <= 0 {
		return 0
	}

	pct := decimal.NewFromFloat(collateral).
		Div(decimal.NewFromFloat(totalCash)).
		Mul(decimal.NewFromInt(100))

	return pct.Round(2).InexactFloat64()
}

// RemainingCash may be negative: an over-allocated account is a reportable
// state, not an error.
func RemainingCash(totalCash, totalCollateral float64) float64 {
	return decimal.NewFromFloat(totalCash).
		Sub(decimal.NewFromFloat(totalCollateral)).
		InexactFloat64()
}
