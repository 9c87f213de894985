package l3_service

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type ScoreSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Stdev  float64 `json:"stdev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// CalculateScoreSummary describes the distribution of total scores. Returns
// nil when there is nothing to describe.
func CalculateScoreSummary(scores []decimal.Decimal) (*ScoreSummary, error) {
	if len(scores) == 0 {
		return nil, nil
	}

	data := stats.Float64Data{}
	for _, s := range scores {
		data = append(data, s.InexactFloat64())
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mean score: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate median score: %w", err)
	}
	stdev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate score stdev: %w", err)
	}
	minScore, err := stats.Min(data)
	if err != nil {
		return nil, err
	}
	maxScore, err := stats.Max(data)
	if err != nil {
		return nil, err
	}

	return &ScoreSummary{
		Count:  len(scores),
		Mean:   mean,
		Median: median,
		Stdev:  stdev,
		Min:    minScore,
		Max:    maxScore,
	}, nil
}
