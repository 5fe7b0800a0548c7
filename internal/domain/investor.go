package domain

import (
	"time"

	"gonum.org/v1/gonum/floats"
)

// InvestorStockQuote is a position: a number of shares of one stock quote.
type InvestorStockQuote struct {
	Stock  *StockQuote
	Shares int
}

// Value is shares times the quote value.
func (h InvestorStockQuote) Value() float64 {
	if h.Stock == nil {
		return 0
	}
	return float64(h.Shares) * h.Stock.Value()
}

func (h InvestorStockQuote) Equal(other InvestorStockQuote) bool {
	return h.Shares == other.Shares && h.Stock.Equal(other.Stock)
}

// Investor is a client holding a list of stock positions.
type Investor struct {
	Identity
	memberSince time.Time
	stocks      []InvestorStockQuote
}

// NewInvestor returns an empty investor whose date fields are set to now.
func NewInvestor() *Investor {
	return &Investor{
		Identity:    newIdentity(),
		memberSince: time.Now(),
	}
}

func (i *Investor) MemberSince() time.Time { return i.memberSince }

func (i *Investor) SetMemberSince(value time.Time) {
	i.memberSince = orNow(value)
}

// Stocks returns the investor's positions in insertion order.
func (i *Investor) Stocks() []InvestorStockQuote {
	out := make([]InvestorStockQuote, len(i.stocks))
	copy(out, i.stocks)
	return out
}

func (i *Investor) AddStock(position InvestorStockQuote) {
	i.stocks = append(i.stocks, position)
}

// AccountValue is the sum of shares times quote value over every position.
func (i *Investor) AccountValue() float64 {
	if len(i.stocks) == 0 {
		return 0
	}
	shares := make([]float64, len(i.stocks))
	prices := make([]float64, len(i.stocks))
	for n, s := range i.stocks {
		shares[n] = float64(s.Shares)
		if s.Stock != nil {
			prices[n] = s.Stock.Value()
		}
	}
	return floats.Dot(shares, prices)
}

func (i *Investor) Equal(other *Investor) bool {
	if i == nil || other == nil {
		return i == other
	}
	if !i.Identity.Equal(&other.Identity) || !i.memberSince.Equal(other.memberSince) {
		return false
	}
	if len(i.stocks) != len(other.stocks) {
		return false
	}
	for n := range i.stocks {
		if !i.stocks[n].Equal(other.stocks[n]) {
			return false
		}
	}
	return true
}

// InvestorStockQuoteSnapshot is the plain serialisable form of a position.
type InvestorStockQuoteSnapshot struct {
	Stock  StockQuoteSnapshot `json:"stock" xml:"stock" msgpack:"stock"`
	Shares int                `json:"shares" xml:"shares" msgpack:"shares"`
}

// InvestorSnapshot is the plain serialisable form of an Investor.
type InvestorSnapshot struct {
	IdentitySnapshot
	MemberSince time.Time                    `json:"memberSince" xml:"memberSince" msgpack:"memberSince"`
	Stocks      []InvestorStockQuoteSnapshot `json:"stocks" xml:"stocks>position" msgpack:"stocks"`
}

func (i *Investor) Snapshot() InvestorSnapshot {
	s := InvestorSnapshot{
		IdentitySnapshot: i.Identity.snapshot(),
		MemberSince:      i.memberSince,
	}
	for _, p := range i.stocks {
		var quote StockQuoteSnapshot
		if p.Stock != nil {
			quote = p.Stock.Snapshot()
		}
		s.Stocks = append(s.Stocks, InvestorStockQuoteSnapshot{Stock: quote, Shares: p.Shares})
	}
	return s
}

// RestoreInvestor rebuilds an investor from a trusted snapshot without validation.
func RestoreInvestor(s InvestorSnapshot) *Investor {
	inv := &Investor{
		Identity:    restoreIdentity(s.IdentitySnapshot),
		memberSince: orNow(s.MemberSince),
	}
	for _, p := range s.Stocks {
		inv.stocks = append(inv.stocks, InvestorStockQuote{
			Stock:  RestoreStockQuote(p.Stock),
			Shares: p.Shares,
		})
	}
	return inv
}
