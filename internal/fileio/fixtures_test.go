package fileio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestBroker(t *testing.T, id int64, name string, hired time.Time, salary float64) *domain.Broker {
	t.Helper()
	b := domain.NewBroker()
	require.NoError(t, b.SetID(id))
	require.NoError(t, b.SetName(name))
	require.NoError(t, b.SetAddress(name+" Street 1"))
	require.NoError(t, b.SetSalary(salary))
	require.NoError(t, b.SetStatus(domain.StatusFullTime))
	b.SetDateOfBirth(day(1985, 2, 3))
	b.SetDateOfHire(hired)
	b.SetDateOfTermination(day(2030, 12, 31))
	return b
}

func newTestQuote(t *testing.T, ticker string, value float64) *domain.StockQuote {
	t.Helper()
	q := domain.NewStockQuote()
	require.NoError(t, q.SetTickerSymbol(ticker))
	require.NoError(t, q.SetValue(value))
	q.SetDate(day(2024, 5, 1))
	return q
}

func newTestInvestor(t *testing.T, id int64, name string) *domain.Investor {
	t.Helper()
	inv := domain.NewInvestor()
	require.NoError(t, inv.SetID(id))
	require.NoError(t, inv.SetName(name))
	require.NoError(t, inv.SetAddress("42 Wall St"))
	inv.SetDateOfBirth(day(1970, 7, 4))
	inv.SetMemberSince(day(2015, 9, 1))
	inv.AddStock(domain.InvestorStockQuote{Stock: newTestQuote(t, "AAPL", 190.25), Shares: 10})
	inv.AddStock(domain.InvestorStockQuote{Stock: newTestQuote(t, "IBM", 150), Shares: 2})
	return inv
}

// aliceAndBob is the two-broker collection used across the codec tests.
func aliceAndBob(t *testing.T) *containers.BrokerContainer {
	t.Helper()
	c := containers.NewBrokerContainer()
	alice := newTestBroker(t, 1, "Alice Smith", day(2020, 1, 1), 75000.0)
	bob := newTestBroker(t, 2, "Bob Lee", day(2019, 6, 15), 82000.0)
	alice.AddClient(newTestInvestor(t, 100, "Carol"))
	c.SetList([]*domain.Broker{alice, bob})
	return c
}

func requireEqualBrokers(t *testing.T, want, got []*domain.Broker) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, want[i].Equal(got[i]), "broker %d differs: want %+v, got %+v", i, want[i].Snapshot(), got[i].Snapshot())
	}
}

func requireEqualInvestors(t *testing.T, want, got []*domain.Investor) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, want[i].Equal(got[i]), "investor %d differs: want %+v, got %+v", i, want[i].Snapshot(), got[i].Snapshot())
	}
}

func requireEqualQuotes(t *testing.T, want, got []*domain.StockQuote) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, want[i].Equal(got[i]), "quote %d differs: want %+v, got %+v", i, want[i].Snapshot(), got[i].Snapshot())
	}
}

func requireEqualCompanies(t *testing.T, want, got []*domain.InvestmentCompany) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, want[i].Equal(got[i]), "company %d differs: want %+v, got %+v", i, want[i].Snapshot(), got[i].Snapshot())
	}
}
