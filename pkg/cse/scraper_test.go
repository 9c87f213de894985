package cse

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const marketHtml = `<html><body>
<table id="stocks-table">
	<tr><th>Symbol</th><th>Company</th><th>Sector</th></tr>
	<tr><td> JKH.N0000 </td><td>John Keells Holdings PLC</td><td>Diversified</td></tr>
	<tr><td>COMB.N0000</td><td>Commercial Bank of Ceylon PLC</td><td>Banking</td></tr>
	<tr><td>short row</td></tr>
</table>
<table id="other"><tr><td>X</td><td>Y</td><td>Z</td></tr></table>
</body></html>`

const companyHtml = `<html><body>
<table><tr><td>
	<table>
		<tr><td>Market Price</td><td>1,250.50</td></tr>
		<tr><td>Net Asset Value</td><td>980.25</td></tr>
		<tr><td>Earnings Per Share</td><td>(12.40)</td></tr>
		<tr><td>Total Dividend</td><td>n/a</td></tr>
		<tr><td>Total Liabilities</td><td>5,000,000</td></tr>
		<tr><td>Total Equity</td><td>Rs. 2,500,000</td></tr>
	</table>
</td></tr></table>
</body></html>`

func TestGetStockList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/market", r.URL.Path)
		_, _ = w.Write([]byte(marketHtml))
	})

	stocks, err := client.GetStockList(context.Background())
	require.NoError(t, err)

	require.Equal(
		t,
		"",
		cmp.Diff([]ListedStock{
			{Symbol: "JKH.N0000", CompanyName: "John Keells Holdings PLC", Sector: "Diversified"},
			{Symbol: "COMB.N0000", CompanyName: "Commercial Bank of Ceylon PLC", Sector: "Banking"},
		}, stocks),
	)
}

func TestGetFundamentals(t *testing.T) {
	t.Run("reads labelled figures", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/company/JKH.N0000", r.URL.Path)
			_, _ = w.Write([]byte(companyHtml))
		})

		f, err := client.GetFundamentals(context.Background(), "JKH.N0000")
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(&CompanyFundamentals{
				Symbol:           "JKH.N0000",
				MarketPrice:      decimal.RequireFromString("1250.50"),
				NAV:              decimal.RequireFromString("980.25"),
				EPS:              decimal.RequireFromString("-12.40"),
				AnnualDividend:   decimal.Zero,
				TotalLiabilities: decimal.NewFromInt(5000000),
				TotalEquity:      decimal.NewFromInt(2500000),
			}, f, cmp.Comparer(func(a, b decimal.Decimal) bool {
				return a.Equal(b)
			})),
		)
	})

	t.Run("missing page", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetFundamentals(context.Background(), "JKH.N0000")
		require.Error(t, err)
	})

	t.Run("symbol required", func(t *testing.T) {
		client := NewClient("")
		_, err := client.GetFundamentals(context.Background(), "")
		require.Error(t, err)
	})
}
