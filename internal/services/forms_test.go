package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/brokerbook/internal/domain"
	testingpkg "github.com/aristath/brokerbook/internal/testing"
)

func TestAddStockQuote(t *testing.T) {
	tests := []struct {
		name      string
		input     StockQuoteInput
		wantField string
	}{
		{"valid", StockQuoteInput{TickerSymbol: "NVDA", Value: 120.5, Date: testingpkg.Day(2024, 6, 3)}, ""},
		{"zero value", StockQuoteInput{TickerSymbol: "ZERO"}, ""},
		{"empty ticker", StockQuoteInput{Value: 1}, "tickerSymbol"},
		{"long ticker", StockQuoteInput{TickerSymbol: "TOOLONG", Value: 1}, "tickerSymbol"},
		{"negative value", StockQuoteInput{TickerSymbol: "NEG", Value: -1}, "value"},
		{"duplicate", StockQuoteInput{TickerSymbol: "AAPL", Value: 1}, "tickerSymbol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(t, Options{})
			seed(s, testingpkg.NewDataset())

			got, err := s.AddStockQuote(tt.input)
			if tt.wantField != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.ErrorIs(t, err, domain.ErrInvalidData)
				assert.Equal(t, 3, s.quotes.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input.TickerSymbol, got.TickerSymbol)
			assert.False(t, got.Date.IsZero())
			assert.Equal(t, 4, s.quotes.Len())
		})
	}
}

func TestAddBroker(t *testing.T) {
	valid := BrokerInput{
		ID:         3,
		Name:       "Cara Diaz",
		Address:    "3 Hill Rd",
		DateOfHire: testingpkg.Day(2022, 4, 1),
		Salary:     61000,
		Status:     domain.StatusPartTime,
		ClientIDs:  []int64{100},
	}

	tests := []struct {
		name      string
		mutate    func(in *BrokerInput)
		wantField string
	}{
		{"valid", func(in *BrokerInput) {}, ""},
		{"zero id", func(in *BrokerInput) { in.ID = 0 }, "id"},
		{"duplicate id", func(in *BrokerInput) { in.ID = 1 }, "id"},
		{"missing name", func(in *BrokerInput) { in.Name = "" }, "name"},
		{"missing address", func(in *BrokerInput) { in.Address = "" }, "address"},
		{"zero salary", func(in *BrokerInput) { in.Salary = 0 }, "salary"},
		{"bad status", func(in *BrokerInput) { in.Status = "Contractor" }, "status"},
		{"unknown client", func(in *BrokerInput) { in.ClientIDs = []int64{999} }, "clients"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(t, Options{})
			seed(s, testingpkg.NewDataset())

			in := valid
			tt.mutate(&in)
			got, err := s.AddBroker(in)
			if tt.wantField != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Equal(t, 2, s.brokers.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(3), got.ID)
			assert.Equal(t, []int64{100}, got.ClientIDs)
			assert.True(t, testingpkg.Day(2022, 4, 1).Equal(got.DateOfHire))
			assert.False(t, got.DateOfBirth.IsZero())

			reports := s.Brokers()
			require.Len(t, reports, 3)
			assert.Equal(t, []string{"Carol King"}, reports[2].ClientNames)
		})
	}
}

func TestAddInvestor(t *testing.T) {
	valid := InvestorInput{
		ID:          102,
		Name:        "Erin Park",
		Address:     "9 Elm St",
		MemberSince: testingpkg.Day(2023, 1, 1),
		Stocks: []HoldingInput{
			{TickerSymbol: "MSFT", Shares: 2},
			{TickerSymbol: "IBM", Shares: 4},
		},
	}

	tests := []struct {
		name      string
		mutate    func(in *InvestorInput)
		wantField string
	}{
		{"valid", func(in *InvestorInput) {}, ""},
		{"duplicate id", func(in *InvestorInput) { in.ID = 100 }, "id"},
		{"negative id", func(in *InvestorInput) { in.ID = -5 }, "id"},
		{"unknown ticker", func(in *InvestorInput) { in.Stocks = []HoldingInput{{TickerSymbol: "GOOG", Shares: 1}} }, "stocks"},
		{"no shares", func(in *InvestorInput) { in.Stocks = []HoldingInput{{TickerSymbol: "IBM"}} }, "shares"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(t, Options{})
			seed(s, testingpkg.NewDataset())

			in := valid
			tt.mutate(&in)
			got, err := s.AddInvestor(in)
			if tt.wantField != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Equal(t, 2, s.investors.Len())
				return
			}
			require.NoError(t, err)
			require.Len(t, got.Stocks, 2)
			assert.Equal(t, 401.5, got.Stocks[0].Stock.Value)

			reports := s.Investors()
			require.Len(t, reports, 3)
			assert.InDelta(t, 2*401.5+4*150.0, reports[2].AccountValue, 1e-9)
		})
	}
}

func TestAddInvestmentCompany(t *testing.T) {
	tests := []struct {
		name      string
		input     CompanyInput
		wantField string
	}{
		{"valid", CompanyInput{CompanyName: "Beta Partners", BrokerIDs: []int64{2}}, ""},
		{"no brokers", CompanyInput{CompanyName: "Solo Fund"}, ""},
		{"empty name", CompanyInput{BrokerIDs: []int64{1}}, "company name"},
		{"duplicate", CompanyInput{CompanyName: "Acme Capital"}, "company name"},
		{"unknown broker", CompanyInput{CompanyName: "Gamma", BrokerIDs: []int64{42}}, "brokers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(t, Options{})
			seed(s, testingpkg.NewDataset())

			got, err := s.AddInvestmentCompany(tt.input)
			if tt.wantField != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Equal(t, 1, s.companies.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input.CompanyName, got.CompanyName)
			assert.Equal(t, 2, s.companies.Len())
		})
	}
}
