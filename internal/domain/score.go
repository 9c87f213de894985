package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplementaryMetric picks what the fifth sub-score measures. The two
// variants are mutually exclusive.
type SupplementaryMetric string

const (
	// net profit margin (%), needs the ratio form or a reported margin
	SupplementaryMetric_ProfitMargin SupplementaryMetric = "PROFIT_MARGIN"
	// NAV per share relative to market price
	SupplementaryMetric_NavPrice SupplementaryMetric = "NAV_PRICE"
)

func NewSupplementaryMetric(s string) (*SupplementaryMetric, error) {
	m := map[string]SupplementaryMetric{
		"PROFIT_MARGIN": SupplementaryMetric_ProfitMargin,
		"NAV_PRICE":     SupplementaryMetric_NavPrice,
	}
	for k, v := range m {
		if strings.EqualFold(
			strings.ReplaceAll(k, "_", ""),
			strings.ReplaceAll(s, "_", ""),
		) {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("could not convert '%s' to known supplementary metric", s)
}

// ScoreRecord holds the five sub-scores of a stock on a date, each in
// [0, 100], and their weighted total.
type ScoreRecord struct {
	StockID            uuid.UUID
	ScoreDate          time.Time
	PEScore            decimal.Decimal
	ROEScore           decimal.Decimal
	DividendYieldScore decimal.Decimal
	DebtEquityScore    decimal.Decimal

	// profit margin score or NAV/price score, see SupplementaryMetric
	SupplementaryScore  decimal.Decimal
	SupplementaryMetric SupplementaryMetric

	TotalScore decimal.Decimal
	Rank       int
}

func (s ScoreRecord) SubScores() []decimal.Decimal {
	return []decimal.Decimal{
		s.PEScore,
		s.ROEScore,
		s.DividendYieldScore,
		s.DebtEquityScore,
		s.SupplementaryScore,
	}
}
