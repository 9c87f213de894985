package cse

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

type ListedStock struct {
	Symbol      string
	CompanyName string
	Sector      string
}

// CompanyFundamentals holds the figures published on a company page. Labels
// missing from the page are left at zero.
type CompanyFundamentals struct {
	Symbol           string
	MarketPrice      decimal.Decimal
	NAV              decimal.Decimal
	EPS              decimal.Decimal
	AnnualDividend   decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
}

func (c clientHandler) getDocument(ctx context.Context, path string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseUrl+path, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get %s with status code %d", path, response.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return doc, nil
}

// GetStockList reads the listed stocks from the market page table.
func (c clientHandler) GetStockList(ctx context.Context) ([]ListedStock, error) {
	doc, err := c.getDocument(ctx, "/market")
	if err != nil {
		return nil, fmt.Errorf("failed to get stock list: %w", err)
	}

	out := []ListedStock{}
	doc.Find("table#stocks-table tr").Each(func(_ int, row *goquery.Selection) {
		columns := row.Find("td")
		// header rows only carry th cells
		if columns.Length() < 3 {
			return
		}
		symbol := strings.TrimSpace(columns.Eq(0).Text())
		if symbol == "" {
			return
		}
		out = append(out, ListedStock{
			Symbol:      symbol,
			CompanyName: strings.TrimSpace(columns.Eq(1).Text()),
			Sector:      strings.TrimSpace(columns.Eq(2).Text()),
		})
	})

	return out, nil
}

func (c clientHandler) GetFundamentals(ctx context.Context, symbol string) (*CompanyFundamentals, error) {
	if symbol == "" {
		return nil, fmt.Errorf("failed to get fundamentals: symbol is required")
	}

	doc, err := c.getDocument(ctx, "/company/"+url.PathEscape(symbol))
	if err != nil {
		return nil, fmt.Errorf("failed to get fundamentals for %s: %w", symbol, err)
	}

	return &CompanyFundamentals{
		Symbol:           symbol,
		MarketPrice:      labelledValue(doc, "Market Price"),
		NAV:              labelledValue(doc, "Net Asset Value"),
		EPS:              labelledValue(doc, "Earnings Per Share"),
		AnnualDividend:   labelledValue(doc, "Total Dividend"),
		TotalLiabilities: labelledValue(doc, "Total Liabilities"),
		TotalEquity:      labelledValue(doc, "Total Equity"),
	}, nil
}

// labelledValue finds the first cell containing label and parses the cell
// right after it.
func labelledValue(doc *goquery.Document, label string) decimal.Decimal {
	value := decimal.Zero
	doc.Find("td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		// layout cells wrapping a nested table also contain the label
		if cell.Find("td").Length() > 0 || !strings.Contains(cell.Text(), label) {
			return true
		}
		parsed, err := parseFigure(cell.Next().Text())
		if err == nil {
			value = parsed
		}
		return false
	})
	return value
}

func parseFigure(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "Rs.")
	s = strings.TrimSpace(s)
	negative := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	if negative {
		s = "-" + strings.Trim(s, "()")
	}
	return decimal.NewFromString(s)
}
