package fileio

import (
	"encoding/xml"

	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/domain"
)

type stockQuoteList struct {
	XMLName xml.Name                    `xml:"stockQuoteList"`
	Quotes  []domain.StockQuoteSnapshot `xml:"stockQuote"`
}

func quoteSnapshots(quotes []*domain.StockQuote) []domain.StockQuoteSnapshot {
	if quotes == nil {
		return nil
	}
	out := make([]domain.StockQuoteSnapshot, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, q.Snapshot())
	}
	return out
}

func restoreQuotes(snapshots []domain.StockQuoteSnapshot) []*domain.StockQuote {
	out := make([]*domain.StockQuote, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, domain.RestoreStockQuote(s))
	}
	return out
}

// WriteStockQuotesText writes one "ticker,value,date" line per quote.
func WriteStockQuotesText(dir string, c *containers.StockQuoteContainer) error {
	return writeText(Path(dir, StockQuotesFile, FormatText), c.List(), func(q *domain.StockQuote) []string {
		return []string{q.TickerSymbol(), formatFloat(q.Value()), formatDate(q.Date())}
	})
}

func ReadStockQuotesText(dir string) ([]*domain.StockQuote, error) {
	return readText(Path(dir, StockQuotesFile, FormatText), 3, func(fields []string) (*domain.StockQuote, error) {
		q := domain.NewStockQuote()
		if err := q.SetTickerSymbol(fields[0]); err != nil {
			return nil, err
		}
		value, err := parseFloat("value", fields[1])
		if err != nil {
			return nil, err
		}
		if err := q.SetValue(value); err != nil {
			return nil, err
		}
		date, err := parseDate("date", fields[2])
		if err != nil {
			return nil, err
		}
		q.SetDate(date)
		return q, nil
	})
}

func WriteStockQuotesSerialized(dir string, c *containers.StockQuoteContainer) error {
	return writeSerialized(Path(dir, StockQuotesFile, FormatSerialized), quoteSnapshots(c.List()))
}

func ReadStockQuotesSerialized(dir string) ([]*domain.StockQuote, error) {
	snapshots, err := readSerialized[domain.StockQuoteSnapshot](Path(dir, StockQuotesFile, FormatSerialized))
	if err != nil {
		return nil, err
	}
	return restoreQuotes(snapshots), nil
}

func WriteStockQuotesXML(dir string, c *containers.StockQuoteContainer) error {
	return writeXML(Path(dir, StockQuotesFile, FormatXML), stockQuoteList{Quotes: quoteSnapshots(c.List())})
}

func ReadStockQuotesXML(dir string) (*containers.StockQuoteContainer, error) {
	var doc stockQuoteList
	if err := readXML(Path(dir, StockQuotesFile, FormatXML), &doc); err != nil {
		return nil, err
	}
	c := containers.NewStockQuoteContainer()
	c.SetList(restoreQuotes(doc.Quotes))
	return c, nil
}

func WriteStockQuotesJSON(dir string, c *containers.StockQuoteContainer) error {
	return writeJSON(Path(dir, StockQuotesFile, FormatJSON), quoteSnapshots(c.List()))
}

func ReadStockQuotesJSON(dir string) ([]*domain.StockQuote, error) {
	snapshots, err := readJSON[domain.StockQuoteSnapshot](Path(dir, StockQuotesFile, FormatJSON))
	if err != nil {
		return nil, err
	}
	return restoreQuotes(snapshots), nil
}
