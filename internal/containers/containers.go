// Package containers holds the long-lived, ordered record collections that the
// codecs read from and write to. Holders do no validation: whatever list is set
// becomes the new contents verbatim.
package containers

import "github.com/aristath/brokerbook/internal/domain"

type holder[T any] struct {
	items []T
}

// List returns the wrapped list. The slice is shared with the holder.
func (h *holder[T]) List() []T { return h.items }

// SetList replaces the contents, nil and empty lists included.
func (h *holder[T]) SetList(items []T) { h.items = items }

func (h *holder[T]) Add(item T) { h.items = append(h.items, item) }

func (h *holder[T]) Len() int { return len(h.items) }

// StockQuoteContainer holds stock quotes.
type StockQuoteContainer struct {
	holder[*domain.StockQuote]
}

func NewStockQuoteContainer() *StockQuoteContainer { return &StockQuoteContainer{} }

// FindByTicker returns the first quote with the given ticker symbol, or nil.
func (c *StockQuoteContainer) FindByTicker(ticker string) *domain.StockQuote {
	for _, q := range c.items {
		if q != nil && q.TickerSymbol() == ticker {
			return q
		}
	}
	return nil
}

// BrokerContainer holds brokers.
type BrokerContainer struct {
	holder[*domain.Broker]
}

func NewBrokerContainer() *BrokerContainer { return &BrokerContainer{} }

func (c *BrokerContainer) FindByID(id int64) *domain.Broker {
	for _, b := range c.items {
		if b != nil && b.ID() == id {
			return b
		}
	}
	return nil
}

// Clients resolves the broker's client IDs against investors.
// IDs with no matching investor are skipped.
func (c *BrokerContainer) Clients(b *domain.Broker, investors *InvestorContainer) []*domain.Investor {
	var out []*domain.Investor
	for _, id := range b.ClientIDs() {
		if inv := investors.FindByID(id); inv != nil {
			out = append(out, inv)
		}
	}
	return out
}

// InvestorContainer holds investors.
type InvestorContainer struct {
	holder[*domain.Investor]
}

func NewInvestorContainer() *InvestorContainer { return &InvestorContainer{} }

func (c *InvestorContainer) FindByID(id int64) *domain.Investor {
	for _, inv := range c.items {
		if inv != nil && inv.ID() == id {
			return inv
		}
	}
	return nil
}

// InvestmentCompanyContainer holds investment companies.
type InvestmentCompanyContainer struct {
	holder[*domain.InvestmentCompany]
}

func NewInvestmentCompanyContainer() *InvestmentCompanyContainer {
	return &InvestmentCompanyContainer{}
}

func (c *InvestmentCompanyContainer) FindByName(name string) *domain.InvestmentCompany {
	for _, ic := range c.items {
		if ic != nil && ic.CompanyName() == name {
			return ic
		}
	}
	return nil
}

// Brokers resolves the company's broker IDs against brokers.
// IDs with no matching broker are skipped.
func (c *InvestmentCompanyContainer) Brokers(ic *domain.InvestmentCompany, brokers *BrokerContainer) []*domain.Broker {
	var out []*domain.Broker
	for _, id := range ic.BrokerIDs() {
		if b := brokers.FindByID(id); b != nil {
			out = append(out, b)
		}
	}
	return out
}
