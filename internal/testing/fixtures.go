package testing

import (
	"time"

	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/domain"
)

// Day returns midnight UTC of the given date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Dataset is a consistent set of records across the four holders.
type Dataset struct {
	Quotes    *containers.StockQuoteContainer
	Brokers   *containers.BrokerContainer
	Investors *containers.InvestorContainer
	Companies *containers.InvestmentCompanyContainer
}

// NewStockQuoteFixtures returns AAPL, MSFT and IBM quotes dated 2024-05-01.
func NewStockQuoteFixtures() []*domain.StockQuote {
	var out []*domain.StockQuote
	for _, f := range []struct {
		ticker string
		value  float64
	}{
		{"AAPL", 190.25},
		{"MSFT", 401.5},
		{"IBM", 150},
	} {
		q := domain.NewStockQuote()
		must(q.SetTickerSymbol(f.ticker))
		must(q.SetValue(f.value))
		q.SetDate(Day(2024, 5, 1))
		out = append(out, q)
	}
	return out
}

// NewDataset returns two investors holding the fixture quotes, the brokers
// Alice Smith and Bob Lee serving them, and one company employing both.
func NewDataset() *Dataset {
	quotes := NewStockQuoteFixtures()

	carol := domain.NewInvestor()
	must(carol.SetID(100))
	must(carol.SetName("Carol King"))
	must(carol.SetAddress("42 Wall St"))
	carol.SetDateOfBirth(Day(1970, 7, 4))
	carol.SetMemberSince(Day(2015, 9, 1))
	carol.AddStock(domain.InvestorStockQuote{Stock: quotes[0], Shares: 10})
	carol.AddStock(domain.InvestorStockQuote{Stock: quotes[2], Shares: 2})

	dave := domain.NewInvestor()
	must(dave.SetID(101))
	must(dave.SetName("Dave Hill"))
	must(dave.SetAddress("7 Pine Rd"))
	dave.SetDateOfBirth(Day(1988, 1, 20))
	dave.SetMemberSince(Day(2021, 3, 15))
	dave.AddStock(domain.InvestorStockQuote{Stock: quotes[1], Shares: 5})

	alice := domain.NewBroker()
	must(alice.SetID(1))
	must(alice.SetName("Alice Smith"))
	must(alice.SetAddress("1 Main St"))
	must(alice.SetSalary(75000.0))
	must(alice.SetStatus(domain.StatusFullTime))
	alice.SetDateOfBirth(Day(1985, 2, 3))
	alice.SetDateOfHire(Day(2020, 1, 1))
	alice.SetDateOfTermination(Day(2030, 12, 31))
	alice.AddClient(carol)
	alice.AddClient(dave)

	bob := domain.NewBroker()
	must(bob.SetID(2))
	must(bob.SetName("Bob Lee"))
	must(bob.SetAddress("2 Side St"))
	must(bob.SetSalary(82000.0))
	must(bob.SetStatus(domain.StatusPartTime))
	bob.SetDateOfBirth(Day(1979, 11, 30))
	bob.SetDateOfHire(Day(2019, 6, 15))
	bob.SetDateOfTermination(Day(2029, 6, 15))
	bob.AddClient(dave)

	acme := domain.NewInvestmentCompany()
	must(acme.SetCompanyName("Acme Capital"))
	acme.AddBroker(alice)
	acme.AddBroker(bob)

	ds := &Dataset{
		Quotes:    containers.NewStockQuoteContainer(),
		Brokers:   containers.NewBrokerContainer(),
		Investors: containers.NewInvestorContainer(),
		Companies: containers.NewInvestmentCompanyContainer(),
	}
	ds.Quotes.SetList(quotes)
	ds.Brokers.SetList([]*domain.Broker{alice, bob})
	ds.Investors.SetList([]*domain.Investor{carol, dave})
	ds.Companies.SetList([]*domain.InvestmentCompany{acme})
	return ds
}
