package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultMonthlyInvestmentAmount = 50000
	DefaultMaxCandidates           = 5
	DefaultMinimumAllocation       = 5000
	DefaultHighScoreThreshold      = 80
)

// AllocationConfig is the tuning surface of the allocation step. Callers
// pass it explicitly on every call.
type AllocationConfig struct {
	MaxCandidates      int
	MinimumAllocation  decimal.Decimal
	HighScoreThreshold decimal.Decimal
}

func DefaultAllocationConfig() AllocationConfig {
	return AllocationConfig{
		MaxCandidates:      DefaultMaxCandidates,
		MinimumAllocation:  decimal.NewFromInt(DefaultMinimumAllocation),
		HighScoreThreshold: decimal.NewFromInt(DefaultHighScoreThreshold),
	}
}

// ScoreCandidate is a score together with whether its stock is active.
type ScoreCandidate struct {
	Score    ScoreRecord
	IsActive bool
}

type AllocationRecommendation struct {
	StockID            uuid.UUID
	RecommendationDate time.Time
	RecommendedAmount  decimal.Decimal
	Reason             string
	LastUpdated        time.Time

	// set when the amount was cut down to whatever budget was left, which
	// can put it below the minimum allocation
	ClampedToRemaining bool
}

func SumRecommended(recs []AllocationRecommendation) decimal.Decimal {
	total := decimal.Zero
	for _, r := range recs {
		total = total.Add(r.RecommendedAmount)
	}
	return total
}
