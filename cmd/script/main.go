package main

import (
	"context"
	"cseinvest/api"
	"cseinvest/cmd"
	"cseinvest/internal/domain"
	"cseinvest/internal/repository"
	l2_service "cseinvest/internal/service/l2"
	"cseinvest/internal/util"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	handler *api.ApiHandler

	dateFlag   string
	budgetFlag string
	csvFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "cse-script",
	Short: "Maintenance commands for the CSE scoring and allocation engine",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		h, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		handler = h
		return nil
	},
	PersistentPostRun: func(c *cobra.Command, args []string) {
		if handler != nil {
			cmd.CloseDependencies(handler)
		}
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score every active stock from its latest fundamentals",
	RunE:  runScore,
}

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Split the monthly budget across the top scored stocks",
	RunE:  runAllocate,
}

var budgetCmd = &cobra.Command{
	Use:   "budget [amount]",
	Short: "Show the monthly investment amount, or set it when an amount is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBudget,
}

var collectCmd = &cobra.Command{
	Use:       "collect [stocks|fundamentals]",
	Short:     "Pull the stock list or fundamentals from the CSE website",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"stocks", "fundamentals"},
	RunE:      runCollect,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "date in YYYY-MM-DD, defaults to today")
	allocateCmd.Flags().StringVar(&budgetFlag, "budget", "", "overrides the stored monthly investment amount")
	allocateCmd.Flags().StringVar(&csvFlag, "csv", "", "also write the recommendations to this csv file")

	rootCmd.AddCommand(scoreCmd, allocateCmd, budgetCmd, collectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func date() (time.Time, error) {
	if dateFlag == "" {
		return util.Today(), nil
	}
	return util.ParseDate(dateFlag)
}

func runScore(c *cobra.Command, args []string) error {
	d, err := date()
	if err != nil {
		return err
	}
	scores, err := handler.RecommendationService.ComputeScores(context.Background(), d)
	if err != nil {
		return err
	}

	symbols, err := symbolsByID()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "rank\tsymbol\tp/e\troe\tdividend\tdebt\tsupplementary\ttotal")
	for _, s := range scores {
		fmt.Fprintf(
			w,
			"%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Rank,
			symbols[s.StockID],
			s.PEScore.StringFixed(2),
			s.ROEScore.StringFixed(2),
			s.DividendYieldScore.StringFixed(2),
			s.DebtEquityScore.StringFixed(2),
			s.SupplementaryScore.StringFixed(2),
			s.TotalScore.StringFixed(2),
		)
	}
	return w.Flush()
}

type recommendationRow struct {
	Date   string `csv:"date"`
	Symbol string `csv:"symbol"`
	Amount string `csv:"amount"`
	Reason string `csv:"reason"`
}

func runAllocate(c *cobra.Command, args []string) error {
	d, err := date()
	if err != nil {
		return err
	}
	in := l2_service.GenerateRecommendationsInput{Date: d}
	if budgetFlag != "" {
		budget, err := decimal.NewFromString(budgetFlag)
		if err != nil {
			return fmt.Errorf("invalid budget %q: %w", budgetFlag, err)
		}
		in.Budget = &budget
	}

	recs, err := handler.RecommendationService.GenerateRecommendations(context.Background(), in)
	if err != nil {
		return err
	}

	symbols, err := symbolsByID()
	if err != nil {
		return err
	}
	rows := []recommendationRow{}
	for _, r := range recs {
		rows = append(rows, recommendationRow{
			Date:   util.FormatDate(r.RecommendationDate),
			Symbol: symbols[r.StockID],
			Amount: r.RecommendedAmount.StringFixed(0),
			Reason: r.Reason,
		})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Symbol, r.Amount, r.Reason)
	}
	fmt.Fprintf(w, "total\t%s\t\n", domain.SumRecommended(recs).StringFixed(0))
	if err := w.Flush(); err != nil {
		return err
	}

	if csvFlag == "" {
		return nil
	}
	f, err := os.Create(csvFlag)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", csvFlag, err)
	}
	defer f.Close()

	return gocsv.MarshalFile(&rows, f)
}

func runBudget(c *cobra.Command, args []string) error {
	ctx := context.Background()
	if len(args) == 0 {
		amount, err := handler.SettingsService.GetMonthlyInvestmentAmount(ctx)
		if err != nil {
			return err
		}
		fmt.Println(amount.StringFixed(2))
		return nil
	}

	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}
	updated, err := handler.SettingsService.UpdateMonthlyInvestmentAmount(ctx, amount)
	if err != nil {
		return err
	}
	fmt.Printf("monthly investment amount set to %s\n", updated.StringFixed(2))
	return nil
}

func runCollect(c *cobra.Command, args []string) error {
	ctx := context.Background()
	switch args[0] {
	case "stocks":
		stocks, err := handler.DataCollectionService.CollectStocks(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("collected %d stocks\n", len(stocks))
	case "fundamentals":
		d, err := date()
		if err != nil {
			return err
		}
		result, err := handler.DataCollectionService.CollectAllFundamentals(ctx, d)
		if err != nil {
			return err
		}
		fmt.Printf("collected fundamentals for %d stocks\n", len(result.Collected))
		for _, symbol := range result.Failed {
			fmt.Printf("failed: %s\n", symbol)
		}
	}
	return nil
}

func symbolsByID() (map[uuid.UUID]string, error) {
	stocks, err := handler.StockRepository.List(repository.StockListFilter{})
	if err != nil {
		return nil, err
	}
	out := map[uuid.UUID]string{}
	for _, s := range stocks {
		out[s.StockID] = s.Symbol
	}
	return out, nil
}
