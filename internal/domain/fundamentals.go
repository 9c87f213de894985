package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FundamentalsSnapshot is the raw-figures view of a stock on one calendar
// date. At most one snapshot exists per (stock, date); saving the same day
// again overwrites the figures.
type FundamentalsSnapshot struct {
	StockID          uuid.UUID
	Date             time.Time
	MarketPrice      decimal.Decimal
	NAV              decimal.Decimal
	EPS              decimal.Decimal
	AnnualDividend   decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal

	// only populated when the data source reports it
	NetProfitMargin decimal.NullDecimal
}

// RatioSnapshot is the ratio form of the fundamentals. Any ratio may be
// missing.
type RatioSnapshot struct {
	StockID         uuid.UUID
	Date            time.Time
	PERatio         decimal.NullDecimal
	ROE             decimal.NullDecimal
	DividendYield   decimal.NullDecimal
	DebtToEquity    decimal.NullDecimal
	NetProfitMargin decimal.NullDecimal
}

// guardedDiv substitutes a zero denominator with 1. This saturates instead
// of failing and is only meant for the derived ratios below.
func guardedDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		den = decimal.NewFromInt(1)
	}
	return num.Div(den)
}

func (f FundamentalsSnapshot) PERatio() decimal.Decimal {
	return guardedDiv(f.MarketPrice, f.EPS)
}

// ROE is EPS over NAV, in percent.
func (f FundamentalsSnapshot) ROE() decimal.Decimal {
	return guardedDiv(f.EPS.Mul(hundred), f.NAV)
}

// DividendYield in percent.
func (f FundamentalsSnapshot) DividendYield() decimal.Decimal {
	return guardedDiv(f.AnnualDividend.Mul(hundred), f.MarketPrice)
}

func (f FundamentalsSnapshot) DebtToEquity() decimal.Decimal {
	return guardedDiv(f.TotalLiabilities, f.TotalEquity)
}

// PBV is price to book. nil when NAV is not positive.
func (f FundamentalsSnapshot) PBV() *decimal.Decimal {
	if !f.NAV.IsPositive() {
		return nil
	}
	pbv := f.MarketPrice.Div(f.NAV)
	return &pbv
}

// EarningsYield is EPS over price, in percent. nil when price is not positive.
func (f FundamentalsSnapshot) EarningsYield() *decimal.Decimal {
	if !f.MarketPrice.IsPositive() {
		return nil
	}
	ey := f.EPS.Mul(hundred).Div(f.MarketPrice)
	return &ey
}

// Ratios derives the ratio form from the raw figures.
func (f FundamentalsSnapshot) Ratios() RatioSnapshot {
	return RatioSnapshot{
		StockID:         f.StockID,
		Date:            f.Date,
		PERatio:         decimal.NewNullDecimal(f.PERatio()),
		ROE:             decimal.NewNullDecimal(f.ROE()),
		DividendYield:   decimal.NewNullDecimal(f.DividendYield()),
		DebtToEquity:    decimal.NewNullDecimal(f.DebtToEquity()),
		NetProfitMargin: f.NetProfitMargin,
	}
}
