package internal

import (
	"cseinvest/internal/domain"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func requireDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.True(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

func TestPEScore(t *testing.T) {
	t.Run("missing or non-positive", func(t *testing.T) {
		requireDecimal(t, "0", PEScore(decimal.NullDecimal{}))
		requireDecimal(t, "0", PEScore(nd("0")))
		requireDecimal(t, "0", PEScore(nd("-3")))
	})

	tests := []struct {
		pe   string
		want string
	}{
		{"4.99", "70"},
		{"5", "100"},
		{"10", "85"},
		{"15", "70"},
		{"20", "55"},
		{"25", "40"},
		{"30", "30"},
		{"45", "0"},
		{"100", "0"},
	}
	for _, tt := range tests {
		t.Run("pe "+tt.pe, func(t *testing.T) {
			requireDecimal(t, tt.want, PEScore(nd(tt.pe)))
		})
	}
}

func TestROEScore(t *testing.T) {
	tests := []struct {
		roe  string
		want string
	}{
		{"-1", "0"},
		{"0", "0"},
		{"2", "10"},
		{"5", "25"},
		{"10", "50"},
		{"15", "75"},
		{"20", "87.5"},
		{"25", "100"},
		{"40", "100"},
	}
	for _, tt := range tests {
		t.Run("roe "+tt.roe, func(t *testing.T) {
			requireDecimal(t, tt.want, ROEScore(nd(tt.roe)))
		})
	}

	requireDecimal(t, "0", ROEScore(decimal.NullDecimal{}))
}

func TestDividendYieldScore(t *testing.T) {
	tests := []struct {
		dy   string
		want string
	}{
		{"-0.5", "0"},
		{"0", "0"},
		{"1.5", "30"},
		{"3", "60"},
		{"5", "76"},
		{"8", "100"},
		{"10", "80"},
		{"18", "0"},
		{"25", "0"},
	}
	for _, tt := range tests {
		t.Run("dy "+tt.dy, func(t *testing.T) {
			requireDecimal(t, tt.want, DividendYieldScore(nd(tt.dy)))
		})
	}

	requireDecimal(t, "0", DividendYieldScore(decimal.NullDecimal{}))
}

func TestDebtEquityScore(t *testing.T) {
	tests := []struct {
		de   string
		want string
	}{
		{"-0.5", "0"},
		{"0", "100"},
		{"0.5", "90"},
		{"1", "80"},
		{"2", "50"},
		{"3.5", "5"},
		{"4", "0"},
		{"10", "0"},
	}
	for _, tt := range tests {
		t.Run("de "+tt.de, func(t *testing.T) {
			requireDecimal(t, tt.want, DebtEquityScore(nd(tt.de)))
		})
	}

	requireDecimal(t, "0", DebtEquityScore(decimal.NullDecimal{}))
}

func TestProfitMarginScore(t *testing.T) {
	tests := []struct {
		margin string
		want   string
	}{
		{"-2", "0"},
		{"0", "0"},
		{"5", "30"},
		{"10", "50"},
		{"15", "70"},
		{"20", "85"},
		{"25", "100"},
		{"30", "100"},
	}
	for _, tt := range tests {
		t.Run("margin "+tt.margin, func(t *testing.T) {
			requireDecimal(t, tt.want, ProfitMarginScore(nd(tt.margin)))
		})
	}

	requireDecimal(t, "0", ProfitMarginScore(decimal.NullDecimal{}))
}

func TestNavPriceScore(t *testing.T) {
	tests := []struct {
		name  string
		nav   string
		price string
		want  string
	}{
		{"zero price", "100", "0", "0"},
		{"negative price", "100", "-5", "0"},
		{"deep discount", "40", "100", "30"},
		{"ratio 0.5", "50", "100", "50"},
		{"ratio 0.8", "80", "100", "50"},
		{"ratio 0.81", "81", "100", "70"},
		{"ratio exactly 1", "100", "100", "70"},
		{"ratio 1.2", "120", "100", "85"},
		{"nav rounded to cents before dividing", "120.004", "100", "85"},
		{"ratio above 1.2", "121", "100", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireDecimal(t, tt.want, NavPriceScore(dec(tt.nav), dec(tt.price)))
		})
	}
}

func TestCurvesBoundedAndMonotonic(t *testing.T) {
	step := dec("0.25")
	var prevROE, prevMargin, prevDE *decimal.Decimal
	for x := dec("-10"); x.LessThanOrEqual(dec("60")); x = x.Add(step) {
		v := decimal.NewNullDecimal(x)
		all := []decimal.Decimal{
			PEScore(v),
			ROEScore(v),
			DividendYieldScore(v),
			DebtEquityScore(v),
			ProfitMarginScore(v),
			NavPriceScore(x, dec("10")),
		}
		for _, s := range all {
			require.False(t, s.IsNegative(), "score below 0 at %s", x.String())
			require.True(t, s.LessThanOrEqual(dec("100")), "score above 100 at %s", x.String())
		}

		roe := ROEScore(v)
		margin := ProfitMarginScore(v)
		de := DebtEquityScore(v)
		if x.IsNegative() {
			continue
		}
		if prevROE != nil {
			require.True(t, roe.GreaterThanOrEqual(*prevROE), "roe decreased at %s", x.String())
			require.True(t, margin.GreaterThanOrEqual(*prevMargin), "margin decreased at %s", x.String())
			require.True(t, de.LessThanOrEqual(*prevDE), "debt/equity increased at %s", x.String())
		}
		prevROE, prevMargin, prevDE = &roe, &margin, &de
	}
}

func TestStockScorer_Score(t *testing.T) {
	stockID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	date := time.Date(2025, 2, 16, 0, 0, 0, 0, time.UTC)
	snapshot := domain.FundamentalsSnapshot{
		StockID:          stockID,
		Date:             date,
		MarketPrice:      dec("100"),
		NAV:              dec("80"),
		EPS:              dec("10"),
		AnnualDividend:   dec("5"),
		TotalLiabilities: dec("50"),
		TotalEquity:      dec("100"),
	}

	t.Run("nav to price variant", func(t *testing.T) {
		record := NewStockScorer(domain.SupplementaryMetric_NavPrice).Score(snapshot)

		require.Equal(
			t,
			"",
			cmp.Diff(domain.ScoreRecord{
				StockID:             stockID,
				ScoreDate:           date,
				PEScore:             dec("85"),
				ROEScore:            dec("62.5"),
				DividendYieldScore:  dec("76"),
				DebtEquityScore:     dec("90"),
				SupplementaryScore:  dec("50"),
				SupplementaryMetric: domain.SupplementaryMetric_NavPrice,
				TotalScore:          dec("73.075"),
			}, record, decimalComparer),
		)
	})

	t.Run("profit margin variant without a reported margin", func(t *testing.T) {
		record := NewStockScorer(domain.SupplementaryMetric_ProfitMargin).Score(snapshot)

		requireDecimal(t, "0", record.SupplementaryScore)
		requireDecimal(t, "65.575", record.TotalScore)
		require.Equal(t, domain.SupplementaryMetric_ProfitMargin, record.SupplementaryMetric)
	})

	t.Run("profit margin variant with a reported margin", func(t *testing.T) {
		withMargin := snapshot
		withMargin.NetProfitMargin = nd("15")
		record := NewStockScorer(domain.SupplementaryMetric_ProfitMargin).Score(withMargin)

		requireDecimal(t, "70", record.SupplementaryScore)
		requireDecimal(t, "76.075", record.TotalScore)
	})

	t.Run("zero eps falls back to a denominator of one", func(t *testing.T) {
		noEarnings := snapshot
		noEarnings.EPS = decimal.Zero
		record := NewStockScorer(domain.SupplementaryMetric_NavPrice).Score(noEarnings)

		// P/E = 100 / 1
		requireDecimal(t, "0", record.PEScore)
		requireDecimal(t, "0", record.ROEScore)
	})

	t.Run("empty snapshot never fails", func(t *testing.T) {
		record := NewStockScorer(domain.SupplementaryMetric_NavPrice).Score(domain.FundamentalsSnapshot{})

		require.True(t, record.TotalScore.GreaterThanOrEqual(decimal.Zero))
		require.True(t, record.TotalScore.LessThanOrEqual(dec("100")))
		requireDecimal(t, "0", record.SupplementaryScore)
	})
}

func TestStockScorer_ScoreRatios(t *testing.T) {
	ratios := domain.RatioSnapshot{
		StockID:         uuid.MustParse("00000000-0000-0000-0000-000000000002"),
		PERatio:         nd("15"),
		ROE:             nd("25"),
		DividendYield:   decimal.NullDecimal{},
		DebtToEquity:    nd("1"),
		NetProfitMargin: nd("25"),
	}

	t.Run("profit margin", func(t *testing.T) {
		record := NewStockScorer(domain.SupplementaryMetric_ProfitMargin).ScoreRatios(ratios)

		requireDecimal(t, "70", record.PEScore)
		requireDecimal(t, "100", record.ROEScore)
		requireDecimal(t, "0", record.DividendYieldScore)
		requireDecimal(t, "80", record.DebtEquityScore)
		requireDecimal(t, "100", record.SupplementaryScore)
		// 17.5 + 25 + 0 + 12 + 15
		requireDecimal(t, "69.5", record.TotalScore)
	})

	t.Run("nav to price has nothing to work with", func(t *testing.T) {
		record := NewStockScorer(domain.SupplementaryMetric_NavPrice).ScoreRatios(ratios)

		requireDecimal(t, "0", record.SupplementaryScore)
		requireDecimal(t, "54.5", record.TotalScore)
	})

	t.Run("zero value scorer uses profit margin", func(t *testing.T) {
		record := StockScorer{}.ScoreRatios(ratios)
		require.Equal(t, domain.SupplementaryMetric_ProfitMargin, record.SupplementaryMetric)
	})
}

func TestRankScores(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	c := uuid.MustParse("00000000-0000-0000-0000-00000000000c")
	input := []domain.ScoreRecord{
		{StockID: c, TotalScore: dec("50")},
		{StockID: b, TotalScore: dec("70")},
		{StockID: a, TotalScore: dec("50")},
	}

	ranked := RankScores(input)

	require.Equal(t, []uuid.UUID{b, a, c}, []uuid.UUID{ranked[0].StockID, ranked[1].StockID, ranked[2].StockID})
	require.Equal(t, []int{1, 2, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})
	// input untouched
	require.Equal(t, c, input[0].StockID)
	require.Equal(t, 0, input[0].Rank)
}
