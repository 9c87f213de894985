package internal

import (
	"cseinvest/internal/domain"
	"sort"

	"github.com/shopspring/decimal"
)

// Each sub-score is a piecewise linear curve over one metric, bounded to
// [0, 100]. Missing or nonsensical inputs score 0 rather than erroring: no
// data is treated as the worst case.

var (
	peWeight            = decimal.RequireFromString("0.25")
	roeWeight           = decimal.RequireFromString("0.25")
	dividendYieldWeight = decimal.RequireFromString("0.20")
	debtEquityWeight    = decimal.RequireFromString("0.15")
	supplementaryWeight = decimal.RequireFromString("0.15")
)

func d(i int64) decimal.Decimal {
	return decimal.NewFromInt(i)
}

type StockScorer struct {
	Metric domain.SupplementaryMetric
}

func NewStockScorer(metric domain.SupplementaryMetric) StockScorer {
	return StockScorer{Metric: metric}
}

// Score computes the score record of a raw-figures snapshot. Ratios are
// derived from the figures; the NAV/price variant reads NAV and price
// directly.
func (s StockScorer) Score(snapshot domain.FundamentalsSnapshot) domain.ScoreRecord {
	ratios := snapshot.Ratios()
	record := s.scoreRatios(ratios)

	if s.Metric == domain.SupplementaryMetric_NavPrice {
		record.SupplementaryScore = NavPriceScore(snapshot.NAV, snapshot.MarketPrice)
		record.TotalScore = TotalScore(record)
	}

	return record
}

// ScoreRatios computes the score record of a ratio-form snapshot. The ratio
// form carries no NAV or price, so the NAV/price variant scores 0 there.
func (s StockScorer) ScoreRatios(ratios domain.RatioSnapshot) domain.ScoreRecord {
	record := s.scoreRatios(ratios)
	if s.Metric == domain.SupplementaryMetric_NavPrice {
		record.SupplementaryScore = decimal.Zero
		record.TotalScore = TotalScore(record)
	}
	return record
}

func (s StockScorer) scoreRatios(ratios domain.RatioSnapshot) domain.ScoreRecord {
	metric := s.Metric
	if metric == "" {
		metric = domain.SupplementaryMetric_ProfitMargin
	}
	record := domain.ScoreRecord{
		StockID:             ratios.StockID,
		ScoreDate:           ratios.Date,
		PEScore:             PEScore(ratios.PERatio),
		ROEScore:            ROEScore(ratios.ROE),
		DividendYieldScore:  DividendYieldScore(ratios.DividendYield),
		DebtEquityScore:     DebtEquityScore(ratios.DebtToEquity),
		SupplementaryScore:  ProfitMarginScore(ratios.NetProfitMargin),
		SupplementaryMetric: metric,
	}
	record.TotalScore = TotalScore(record)

	return record
}

// TotalScore is the fixed-weight sum of the sub-scores. Weights add up to 1
// so the total stays in [0, 100].
func TotalScore(s domain.ScoreRecord) decimal.Decimal {
	return s.PEScore.Mul(peWeight).
		Add(s.ROEScore.Mul(roeWeight)).
		Add(s.DividendYieldScore.Mul(dividendYieldWeight)).
		Add(s.DebtEquityScore.Mul(debtEquityWeight)).
		Add(s.SupplementaryScore.Mul(supplementaryWeight))
}

// PEScore favours the 5-15 value range. A P/E under 5 is suspicious and is
// capped at 70.
func PEScore(pe decimal.NullDecimal) decimal.Decimal {
	if !pe.Valid || !pe.Decimal.IsPositive() {
		return decimal.Zero
	}
	x := pe.Decimal
	switch {
	case x.LessThan(d(5)):
		return d(70)
	case x.LessThanOrEqual(d(15)):
		return d(100).Sub(x.Sub(d(5)).Mul(d(3)))
	case x.LessThanOrEqual(d(25)):
		return d(70).Sub(x.Sub(d(15)).Mul(d(3)))
	default:
		return decimal.Max(decimal.Zero, d(40).Sub(x.Sub(d(25)).Mul(d(2))))
	}
}

// ROEScore is non-decreasing in ROE (%) and saturates at 100 above 25%.
func ROEScore(roe decimal.NullDecimal) decimal.Decimal {
	if !roe.Valid || roe.Decimal.IsNegative() {
		return decimal.Zero
	}
	x := roe.Decimal
	switch {
	case x.LessThanOrEqual(d(5)):
		return x.Mul(d(5))
	case x.LessThanOrEqual(d(15)):
		return d(25).Add(x.Sub(d(5)).Mul(d(5)))
	case x.LessThanOrEqual(d(25)):
		return d(75).Add(x.Sub(d(15)).Mul(decimal.RequireFromString("2.5")))
	default:
		return d(100)
	}
}

// DividendYieldScore peaks at 8% and decays above it, where the payout is
// unlikely to be sustainable.
func DividendYieldScore(dy decimal.NullDecimal) decimal.Decimal {
	if !dy.Valid || dy.Decimal.IsNegative() {
		return decimal.Zero
	}
	x := dy.Decimal
	switch {
	case x.LessThanOrEqual(d(3)):
		return x.Mul(d(20))
	case x.LessThanOrEqual(d(8)):
		return d(60).Add(x.Sub(d(3)).Mul(d(8)))
	default:
		return decimal.Max(decimal.Zero, d(100).Sub(x.Sub(d(8)).Mul(d(10))))
	}
}

// DebtEquityScore is non-increasing in leverage and drops faster above 1.
func DebtEquityScore(de decimal.NullDecimal) decimal.Decimal {
	if !de.Valid || de.Decimal.IsNegative() {
		return decimal.Zero
	}
	x := de.Decimal
	if x.LessThanOrEqual(d(1)) {
		return d(100).Sub(x.Mul(d(20)))
	}
	return decimal.Max(decimal.Zero, d(80).Sub(x.Sub(d(1)).Mul(d(30))))
}

func ProfitMarginScore(margin decimal.NullDecimal) decimal.Decimal {
	if !margin.Valid || margin.Decimal.IsNegative() {
		return decimal.Zero
	}
	x := margin.Decimal
	switch {
	case x.LessThanOrEqual(d(5)):
		return x.Mul(d(6))
	case x.LessThanOrEqual(d(15)):
		return d(30).Add(x.Sub(d(5)).Mul(d(4)))
	case x.LessThanOrEqual(d(25)):
		return d(70).Add(x.Sub(d(15)).Mul(d(3)))
	default:
		return d(100)
	}
}

// NavPriceScore is a step function of NAV (rounded to cents) over price.
// Boundaries are inclusive on the upper side, so a ratio of exactly 1.0
// scores 70.
func NavPriceScore(nav, price decimal.Decimal) decimal.Decimal {
	if !price.IsPositive() {
		return decimal.Zero
	}
	ratio := nav.Round(2).Div(price)
	switch {
	case ratio.LessThan(decimal.RequireFromString("0.5")):
		return d(30)
	case ratio.LessThanOrEqual(decimal.RequireFromString("0.8")):
		return d(50)
	case ratio.LessThanOrEqual(d(1)):
		return d(70)
	case ratio.LessThanOrEqual(decimal.RequireFromString("1.2")):
		return d(85)
	default:
		return d(100)
	}
}

// RankScores orders scores by total score descending, breaking ties on the
// stock id, and assigns 1-based ranks. The input slice is not modified.
func RankScores(scores []domain.ScoreRecord) []domain.ScoreRecord {
	ranked := make([]domain.ScoreRecord, len(scores))
	copy(ranked, scores)

	sort.SliceStable(ranked, func(i, j int) bool {
		return scoreLess(ranked[i], ranked[j])
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}

func scoreLess(a, b domain.ScoreRecord) bool {
	if !a.TotalScore.Equal(b.TotalScore) {
		return a.TotalScore.GreaterThan(b.TotalScore)
	}
	return a.StockID.String() < b.StockID.String()
}
