package internal

import (
	"cseinvest/internal/domain"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CalculateAllocationsInput struct {
	Candidates []domain.ScoreCandidate
	Date       time.Time
	Budget     decimal.Decimal
	Config     domain.AllocationConfig
}

// CalculateAllocations splits the budget across the top scored active
// stocks in proportion to their total score. Every pick gets at least the
// minimum allocation while budget remains, and whatever is left at the end
// goes to the top pick, so the amounts always add up to the budget when
// anything is picked.
func CalculateAllocations(in CalculateAllocationsInput) ([]domain.AllocationRecommendation, error) {
	if !in.Budget.IsPositive() {
		return nil, fmt.Errorf("cannot allocate budget %s: budget must be positive", in.Budget.String())
	}
	if in.Config.MaxCandidates < 1 {
		return nil, fmt.Errorf("max candidates must be at least 1, got %d", in.Config.MaxCandidates)
	}
	if in.Config.MinimumAllocation.IsNegative() {
		return nil, fmt.Errorf("minimum allocation cannot be negative, got %s", in.Config.MinimumAllocation.String())
	}

	selected := selectCandidates(in.Candidates, in.Config.MaxCandidates)
	if len(selected) == 0 {
		return []domain.AllocationRecommendation{}, nil
	}

	proportions := candidateProportions(selected)

	now := time.Now().UTC()
	state := allocationState{
		remaining:       in.Budget,
		recommendations: []domain.AllocationRecommendation{},
	}
	for i, score := range selected {
		state = state.allocate(score, proportions[i], in, now)
	}

	return state.distributeRemainder(), nil
}

// selectCandidates drops inactive stocks and keeps the best n by total
// score. Ties go to the lower stock id.
func selectCandidates(candidates []domain.ScoreCandidate, n int) []domain.ScoreRecord {
	active := []domain.ScoreRecord{}
	for _, c := range candidates {
		if c.IsActive {
			active = append(active, c.Score)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return scoreLess(active[i], active[j])
	})

	if len(active) > n {
		active = active[:n]
	}
	return active
}

// candidateProportions returns score / sum(scores) for each candidate.
// When every selected score is zero the split is equal.
func candidateProportions(selected []domain.ScoreRecord) []decimal.Decimal {
	totalScore := decimal.Zero
	for _, s := range selected {
		totalScore = totalScore.Add(s.TotalScore)
	}

	out := make([]decimal.Decimal, len(selected))
	for i, s := range selected {
		if totalScore.IsZero() {
			out[i] = decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(len(selected))))
		} else {
			out[i] = s.TotalScore.Div(totalScore)
		}
	}
	return out
}

type allocationState struct {
	remaining       decimal.Decimal
	recommendations []domain.AllocationRecommendation
}

// allocate returns the state after handing one candidate its share. The
// order of the clamps matters: the minimum floor is applied first and the
// remaining budget caps it afterwards.
func (s allocationState) allocate(
	score domain.ScoreRecord,
	proportion decimal.Decimal,
	in CalculateAllocationsInput,
	now time.Time,
) allocationState {
	amount := in.Budget.Mul(proportion).Round(0)

	if amount.LessThan(in.Config.MinimumAllocation) {
		amount = in.Config.MinimumAllocation
	}

	clamped := false
	if amount.GreaterThan(s.remaining) {
		amount = s.remaining
		clamped = true
	}

	recommendations := make([]domain.AllocationRecommendation, len(s.recommendations), len(s.recommendations)+1)
	copy(recommendations, s.recommendations)
	recommendations = append(recommendations, domain.AllocationRecommendation{
		StockID:            score.StockID,
		RecommendationDate: in.Date,
		RecommendedAmount:  amount,
		Reason:             RecommendationReason(score, in.Config.HighScoreThreshold),
		LastUpdated:        now,
		ClampedToRemaining: clamped,
	})

	return allocationState{
		remaining:       s.remaining.Sub(amount),
		recommendations: recommendations,
	}
}

func (s allocationState) distributeRemainder() []domain.AllocationRecommendation {
	if s.remaining.IsPositive() && len(s.recommendations) > 0 {
		s.recommendations[0].RecommendedAmount = s.recommendations[0].RecommendedAmount.Add(s.remaining)
	}
	return s.recommendations
}

// RecommendationReason lists the strong points of a score, one clause per
// sub-score at or above the threshold.
func RecommendationReason(score domain.ScoreRecord, threshold decimal.Decimal) string {
	supplementaryClause := "Good profit margins"
	if score.SupplementaryMetric == domain.SupplementaryMetric_NavPrice {
		supplementaryClause = "Good NAV to price ratio"
	}

	clauses := []struct {
		score  decimal.Decimal
		reason string
	}{
		{score.PEScore, "Attractive P/E ratio"},
		{score.ROEScore, "Strong return on equity"},
		{score.DividendYieldScore, "High dividend yield"},
		{score.DebtEquityScore, "Healthy debt levels"},
		{score.SupplementaryScore, supplementaryClause},
	}

	reasons := []string{}
	for _, c := range clauses {
		if c.score.GreaterThanOrEqual(threshold) {
			reasons = append(reasons, c.reason)
		}
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Overall balanced performance")
	}

	return strings.Join(reasons, ". ") + "."
}
