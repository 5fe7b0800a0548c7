package domain

import (
	"math"
	"time"
	"unicode/utf8"
)

// MaxTickerLength matches the width of the ticker column in the relational store.
const MaxTickerLength = 5

// StockQuote is the price of a ticker symbol on a date.
type StockQuote struct {
	tickerSymbol string
	value        float64
	date         time.Time
}

// NewStockQuote returns an empty quote dated now.
func NewStockQuote() *StockQuote {
	return &StockQuote{date: time.Now()}
}

func (q *StockQuote) TickerSymbol() string { return q.tickerSymbol }

func (q *StockQuote) SetTickerSymbol(value string) error {
	if value == "" {
		return invalid("ticker symbol", "no ticker symbol specified")
	}
	if utf8.RuneCountInString(value) > MaxTickerLength {
		return invalid("ticker symbol", "%q is longer than %d characters", value, MaxTickerLength)
	}
	q.tickerSymbol = value
	return nil
}

func (q *StockQuote) Value() float64 { return q.value }

func (q *StockQuote) SetValue(value float64) error {
	if !(value >= 0) || math.IsInf(value, 0) {
		return invalid("value", "stock value must be a finite non-negative number: %v", value)
	}
	q.value = value
	return nil
}

func (q *StockQuote) Date() time.Time { return q.date }

func (q *StockQuote) SetDate(value time.Time) {
	q.date = orNow(value)
}

func (q *StockQuote) Equal(other *StockQuote) bool {
	if q == nil || other == nil {
		return q == other
	}
	return q.tickerSymbol == other.tickerSymbol &&
		q.value == other.value &&
		q.date.Equal(other.date)
}

// StockQuoteSnapshot is the plain serialisable form of a StockQuote.
type StockQuoteSnapshot struct {
	TickerSymbol string    `json:"tickerSymbol" xml:"tickerSymbol" msgpack:"tickerSymbol"`
	Value        float64   `json:"value" xml:"value" msgpack:"value"`
	Date         time.Time `json:"date" xml:"date" msgpack:"date"`
}

func (q *StockQuote) Snapshot() StockQuoteSnapshot {
	return StockQuoteSnapshot{
		TickerSymbol: q.tickerSymbol,
		Value:        q.value,
		Date:         q.date,
	}
}

// RestoreStockQuote rebuilds a quote from a trusted snapshot without validation.
func RestoreStockQuote(s StockQuoteSnapshot) *StockQuote {
	return &StockQuote{
		tickerSymbol: s.TickerSymbol,
		value:        s.Value,
		date:         orNow(s.Date),
	}
}
