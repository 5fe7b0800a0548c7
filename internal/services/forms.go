package services

import (
	"fmt"
	"time"

	"github.com/aristath/brokerbook/internal/domain"
)

// StockQuoteInput is the record entry form for a stock quote.
type StockQuoteInput struct {
	TickerSymbol string    `json:"tickerSymbol"`
	Value        float64   `json:"value"`
	Date         time.Time `json:"date"`
}

// BrokerInput is the record entry form for a broker. ClientIDs must name
// investors already held.
type BrokerInput struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	DateOfBirth       time.Time `json:"dateOfBirth"`
	DateOfHire        time.Time `json:"dateOfHire"`
	DateOfTermination time.Time `json:"dateOfTermination"`
	Salary            float64   `json:"salary"`
	Status            string    `json:"status"`
	ClientIDs         []int64   `json:"clientIds"`
}

// HoldingInput is one position on an investor entry form.
type HoldingInput struct {
	TickerSymbol string `json:"tickerSymbol"`
	Shares       int    `json:"shares"`
}

// InvestorInput is the record entry form for an investor. Every holding must
// name a stock quote already held.
type InvestorInput struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	DateOfBirth time.Time      `json:"dateOfBirth"`
	MemberSince time.Time      `json:"memberSince"`
	Stocks      []HoldingInput `json:"stocks"`
}

// CompanyInput is the record entry form for an investment company.
type CompanyInput struct {
	CompanyName string  `json:"companyName"`
	BrokerIDs   []int64 `json:"brokerIds"`
}

func formError(field, format string, args ...interface{}) error {
	return &domain.ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func setIdentity(p *domain.Identity, id int64, name, address string, born time.Time) error {
	if err := p.SetID(id); err != nil {
		return err
	}
	if err := p.SetName(name); err != nil {
		return err
	}
	if err := p.SetAddress(address); err != nil {
		return err
	}
	p.SetDateOfBirth(born)
	return nil
}

// AddStockQuote validates the form and appends the quote. Tickers are unique.
func (s *DatasetService) AddStockQuote(in StockQuoteInput) (domain.StockQuoteSnapshot, error) {
	q := domain.NewStockQuote()
	if err := q.SetTickerSymbol(in.TickerSymbol); err != nil {
		return domain.StockQuoteSnapshot{}, err
	}
	if err := q.SetValue(in.Value); err != nil {
		return domain.StockQuoteSnapshot{}, err
	}
	q.SetDate(in.Date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quotes.FindByTicker(q.TickerSymbol()) != nil {
		return domain.StockQuoteSnapshot{}, formError("ticker symbol", "stock quote %s already exists", q.TickerSymbol())
	}
	s.quotes.Add(q)

	s.log.Info().Str("ticker", q.TickerSymbol()).Msg("Added stock quote")
	return q.Snapshot(), nil
}

// AddBroker validates the form, resolves the client IDs and appends the broker.
// Broker IDs are unique.
func (s *DatasetService) AddBroker(in BrokerInput) (domain.BrokerSnapshot, error) {
	b := domain.NewBroker()
	if err := setIdentity(&b.Identity, in.ID, in.Name, in.Address, in.DateOfBirth); err != nil {
		return domain.BrokerSnapshot{}, err
	}
	b.SetDateOfHire(in.DateOfHire)
	b.SetDateOfTermination(in.DateOfTermination)
	if err := b.SetSalary(in.Salary); err != nil {
		return domain.BrokerSnapshot{}, err
	}
	if err := b.SetStatus(in.Status); err != nil {
		return domain.BrokerSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.brokers.FindByID(b.ID()) != nil {
		return domain.BrokerSnapshot{}, formError("id", "broker %d already exists", b.ID())
	}
	for _, id := range in.ClientIDs {
		inv := s.investors.FindByID(id)
		if inv == nil {
			return domain.BrokerSnapshot{}, formError("clients", "investor %d not found", id)
		}
		b.AddClient(inv)
	}
	s.brokers.Add(b)

	s.log.Info().Int64("id", b.ID()).Int("clients", len(in.ClientIDs)).Msg("Added broker")
	return b.Snapshot(), nil
}

// AddInvestor validates the form, resolves each holding's ticker and appends
// the investor. Investor IDs are unique.
func (s *DatasetService) AddInvestor(in InvestorInput) (domain.InvestorSnapshot, error) {
	inv := domain.NewInvestor()
	if err := setIdentity(&inv.Identity, in.ID, in.Name, in.Address, in.DateOfBirth); err != nil {
		return domain.InvestorSnapshot{}, err
	}
	inv.SetMemberSince(in.MemberSince)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.investors.FindByID(inv.ID()) != nil {
		return domain.InvestorSnapshot{}, formError("id", "investor %d already exists", inv.ID())
	}
	for _, h := range in.Stocks {
		if h.Shares <= 0 {
			return domain.InvestorSnapshot{}, formError("shares", "shares of %s must be greater than zero: %d", h.TickerSymbol, h.Shares)
		}
		q := s.quotes.FindByTicker(h.TickerSymbol)
		if q == nil {
			return domain.InvestorSnapshot{}, formError("stocks", "stock quote %s not found", h.TickerSymbol)
		}
		inv.AddStock(domain.InvestorStockQuote{Stock: q, Shares: h.Shares})
	}
	s.investors.Add(inv)

	s.log.Info().Int64("id", inv.ID()).Int("positions", len(in.Stocks)).Msg("Added investor")
	return inv.Snapshot(), nil
}

// AddInvestmentCompany validates the form, resolves the broker IDs and
// appends the company. Company names are unique.
func (s *DatasetService) AddInvestmentCompany(in CompanyInput) (domain.InvestmentCompanySnapshot, error) {
	ic := domain.NewInvestmentCompany()
	if err := ic.SetCompanyName(in.CompanyName); err != nil {
		return domain.InvestmentCompanySnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.companies.FindByName(ic.CompanyName()) != nil {
		return domain.InvestmentCompanySnapshot{}, formError("company name", "investment company %s already exists", ic.CompanyName())
	}
	for _, id := range in.BrokerIDs {
		b := s.brokers.FindByID(id)
		if b == nil {
			return domain.InvestmentCompanySnapshot{}, formError("brokers", "broker %d not found", id)
		}
		ic.AddBroker(b)
	}
	s.companies.Add(ic)

	s.log.Info().Str("company", ic.CompanyName()).Int("brokers", len(in.BrokerIDs)).Msg("Added investment company")
	return ic.Snapshot(), nil
}
