package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/database"
	"github.com/aristath/brokerbook/internal/domain"
)

// StockQuoteRepository stores quotes in the stockquote table, keyed by ticker.
type StockQuoteRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewStockQuoteRepository(db *sql.DB, log zerolog.Logger) *StockQuoteRepository {
	return &StockQuoteRepository{
		db:  db,
		log: log.With().Str("repository", "stockquote").Logger(),
	}
}

// Store replaces every stored quote with the container's contents.
func (r *StockQuoteRepository) Store(ctx context.Context, c *containers.StockQuoteContainer) error {
	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM stockquote"); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, "INSERT INTO stockquote (tickersymbol, value, date, position) VALUES (?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for pos, q := range c.List() {
			if _, err := stmt.ExecContext(ctx, q.TickerSymbol(), q.Value(), formatTime(q.Date()), pos); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return dbError("store", "stockquote", err)
	}
	r.log.Debug().Int("count", c.Len()).Msg("Stored stock quotes")
	return nil
}

// Retrieve returns every stored quote in stored order.
func (r *StockQuoteRepository) Retrieve(ctx context.Context) ([]*domain.StockQuote, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT tickersymbol, value, date FROM stockquote ORDER BY position")
	if err != nil {
		return nil, dbError("retrieve", "stockquote", err)
	}
	defer rows.Close()

	quotes := []*domain.StockQuote{}
	for rows.Next() {
		var (
			s    domain.StockQuoteSnapshot
			date string
		)
		if err := rows.Scan(&s.TickerSymbol, &s.Value, &date); err != nil {
			return nil, dbError("retrieve", "stockquote", err)
		}
		if s.Date, err = parseTime(date); err != nil {
			return nil, dbError("retrieve", "stockquote", err)
		}
		quotes = append(quotes, domain.RestoreStockQuote(s))
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("retrieve", "stockquote", err)
	}
	return quotes, nil
}
