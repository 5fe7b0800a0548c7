package services

import (
	"github.com/aristath/brokerbook/internal/domain"
)

// BrokerReport is a broker with its clients' names resolved.
type BrokerReport struct {
	domain.BrokerSnapshot
	ClientNames []string `json:"clientNames"`
}

// InvestorReport is an investor with its account value.
type InvestorReport struct {
	domain.InvestorSnapshot
	AccountValue float64 `json:"accountValue"`
}

// CompanyReport is an investment company with its brokers' names resolved.
type CompanyReport struct {
	domain.InvestmentCompanySnapshot
	BrokerNames []string `json:"brokerNames"`
}

func (s *DatasetService) StockQuotes() []domain.StockQuoteSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.StockQuoteSnapshot, 0, s.quotes.Len())
	for _, q := range s.quotes.List() {
		out = append(out, q.Snapshot())
	}
	return out
}

// Brokers lists every broker. Client IDs with no held investor are left out
// of ClientNames.
func (s *DatasetService) Brokers() []BrokerReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]BrokerReport, 0, s.brokers.Len())
	for _, b := range s.brokers.List() {
		r := BrokerReport{BrokerSnapshot: b.Snapshot(), ClientNames: []string{}}
		for _, inv := range s.brokers.Clients(b, s.investors) {
			r.ClientNames = append(r.ClientNames, inv.Name())
		}
		out = append(out, r)
	}
	return out
}

func (s *DatasetService) Investors() []InvestorReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]InvestorReport, 0, s.investors.Len())
	for _, inv := range s.investors.List() {
		out = append(out, InvestorReport{
			InvestorSnapshot: inv.Snapshot(),
			AccountValue:     inv.AccountValue(),
		})
	}
	return out
}

func (s *DatasetService) InvestmentCompanies() []CompanyReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CompanyReport, 0, s.companies.Len())
	for _, ic := range s.companies.List() {
		r := CompanyReport{InvestmentCompanySnapshot: ic.Snapshot(), BrokerNames: []string{}}
		for _, b := range s.companies.Brokers(ic, s.brokers) {
			r.BrokerNames = append(r.BrokerNames, b.Name())
		}
		out = append(out, r)
	}
	return out
}

// Summary counts the records held per entity.
type Summary struct {
	StockQuotes         int `json:"stockQuotes"`
	Brokers             int `json:"brokers"`
	Investors           int `json:"investors"`
	InvestmentCompanies int `json:"investmentCompanies"`
}

func (s *DatasetService) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Summary{
		StockQuotes:         s.quotes.Len(),
		Brokers:             s.brokers.Len(),
		Investors:           s.investors.Len(),
		InvestmentCompanies: s.companies.Len(),
	}
}
