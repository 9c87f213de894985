package repository

import (
	"cseinvest/internal/db/models/postgres/public/model"
	"cseinvest/internal/domain"
	"cseinvest/internal/util"

	"github.com/shopspring/decimal"
)

func StockToDomain(m model.Stock) domain.Stock {
	sector := ""
	if m.Sector != nil {
		sector = *m.Sector
	}
	return domain.Stock{
		StockID:     m.StockID,
		Symbol:      m.Symbol,
		CompanyName: m.CompanyName,
		Sector:      sector,
		IsActive:    m.IsActive,
		LastUpdated: m.LastUpdated,
	}
}

func StockFromDomain(s domain.Stock) model.Stock {
	var sector *string
	if s.Sector != "" {
		sector = util.StringPointer(s.Sector)
	}
	return model.Stock{
		StockID:     s.StockID,
		Symbol:      s.Symbol,
		CompanyName: s.CompanyName,
		Sector:      sector,
		IsActive:    s.IsActive,
		LastUpdated: s.LastUpdated,
	}
}

func FundamentalsToDomain(m model.FundamentalData) domain.FundamentalsSnapshot {
	return domain.FundamentalsSnapshot{
		StockID:          m.StockID,
		Date:             m.Date,
		MarketPrice:      m.MarketPrice,
		NAV:              m.Nav,
		EPS:              m.Eps,
		AnnualDividend:   m.AnnualDividend,
		TotalLiabilities: m.TotalLiabilities,
		TotalEquity:      m.TotalEquity,
		NetProfitMargin:  util.NullDecimal(m.NetProfitMargin),
	}
}

func FundamentalsFromDomain(f domain.FundamentalsSnapshot) model.FundamentalData {
	return model.FundamentalData{
		StockID:          f.StockID,
		Date:             f.Date,
		MarketPrice:      f.MarketPrice,
		Nav:              f.NAV,
		Eps:              f.EPS,
		AnnualDividend:   f.AnnualDividend,
		TotalLiabilities: f.TotalLiabilities,
		TotalEquity:      f.TotalEquity,
		NetProfitMargin:  util.NullDecimalPointer(f.NetProfitMargin),
	}
}

func StockScoreToDomain(m model.StockScore) domain.ScoreRecord {
	return domain.ScoreRecord{
		StockID:             m.StockID,
		ScoreDate:           m.ScoreDate,
		PEScore:             m.PeScore,
		ROEScore:            m.RoeScore,
		DividendYieldScore:  m.DividendYieldScore,
		DebtEquityScore:     m.DebtEquityScore,
		SupplementaryScore:  m.SupplementaryScore,
		SupplementaryMetric: domain.SupplementaryMetric(m.SupplementaryMetric),
		TotalScore:          m.TotalScore,
		Rank:                int(m.Rank),
	}
}

func StockScoreFromDomain(s domain.ScoreRecord) *model.StockScore {
	return &model.StockScore{
		StockID:             s.StockID,
		ScoreDate:           s.ScoreDate,
		PeScore:             s.PEScore,
		RoeScore:            s.ROEScore,
		DividendYieldScore:  s.DividendYieldScore,
		DebtEquityScore:     s.DebtEquityScore,
		SupplementaryScore:  s.SupplementaryScore,
		SupplementaryMetric: model.SupplementaryMetric(s.SupplementaryMetric),
		TotalScore:          s.TotalScore,
		Rank:                int32(s.Rank),
	}
}

func RecommendationToDomain(m model.InvestmentRecommendation) domain.AllocationRecommendation {
	reason := ""
	if m.RecommendationReason != nil {
		reason = *m.RecommendationReason
	}
	return domain.AllocationRecommendation{
		StockID:            m.StockID,
		RecommendationDate: m.RecommendationDate,
		RecommendedAmount:  m.RecommendedAmount,
		Reason:             reason,
		LastUpdated:        m.LastUpdated,
	}
}

func RecommendationFromDomain(r domain.AllocationRecommendation) *model.InvestmentRecommendation {
	return &model.InvestmentRecommendation{
		StockID:              r.StockID,
		RecommendationDate:   r.RecommendationDate,
		RecommendedAmount:    r.RecommendedAmount,
		RecommendationReason: util.StringPointer(r.Reason),
		LastUpdated:          r.LastUpdated,
	}
}

// SumAmounts adds up the recommended amounts of persisted recommendations.
func SumAmounts(in []RecommendationWithStock) decimal.Decimal {
	total := decimal.Zero
	for _, r := range in {
		total = total.Add(r.RecommendedAmount)
	}
	return total
}
