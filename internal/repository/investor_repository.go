package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/database"
	"github.com/aristath/brokerbook/internal/domain"
)

// InvestorRepository stores investors in the investor table and their
// positions in investorstockquote, linked to stockquote by ticker symbol.
type InvestorRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewInvestorRepository(db *sql.DB, log zerolog.Logger) *InvestorRepository {
	return &InvestorRepository{
		db:  db,
		log: log.With().Str("repository", "investor").Logger(),
	}
}

// Store replaces every stored investor and position with the container's contents.
// Quotes themselves are owned by StockQuoteRepository; only tickers and share
// counts are written here.
func (r *InvestorRepository) Store(ctx context.Context, c *containers.InvestorContainer) error {
	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM investorstockquote"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM investor"); err != nil {
			return err
		}

		for pos, inv := range c.List() {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO investor (id, name, address, dateOfBirth, memberSince, position)
				VALUES (?, ?, ?, ?, ?, ?)
			`, inv.ID(), inv.Name(), inv.Address(), formatTime(inv.DateOfBirth()), formatTime(inv.MemberSince()), pos)
			if err != nil {
				return err
			}
			for n, holding := range inv.Stocks() {
				ticker := ""
				if holding.Stock != nil {
					ticker = holding.Stock.TickerSymbol()
				}
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO investorstockquote (id, tickersymbol, shares, position) VALUES (?, ?, ?, ?)",
					inv.ID(), ticker, holding.Shares, n); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return dbError("store", "investor", err)
	}
	r.log.Debug().Int("count", c.Len()).Msg("Stored investors")
	return nil
}

// Retrieve returns every stored investor in stored order. Positions are joined
// with the stockquote table; a position whose quote is not stored keeps only
// its ticker symbol.
func (r *InvestorRepository) Retrieve(ctx context.Context) ([]*domain.Investor, error) {
	snapshots, err := r.scanInvestors(ctx)
	if err != nil {
		return nil, dbError("retrieve", "investor", err)
	}

	holdings, err := r.scanHoldings(ctx)
	if err != nil {
		return nil, dbError("retrieve", "investorstockquote", err)
	}

	investors := make([]*domain.Investor, 0, len(snapshots))
	for _, s := range snapshots {
		s.Stocks = holdings[s.ID]
		investors = append(investors, domain.RestoreInvestor(s))
	}
	return investors, nil
}

func (r *InvestorRepository) scanInvestors(ctx context.Context) ([]domain.InvestorSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, dateOfBirth, memberSince
		FROM investor
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.InvestorSnapshot
	for rows.Next() {
		var (
			s            domain.InvestorSnapshot
			birth, since string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &birth, &since); err != nil {
			return nil, err
		}
		if s.DateOfBirth, err = parseTime(birth); err != nil {
			return nil, err
		}
		if s.MemberSince, err = parseTime(since); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *InvestorRepository) scanHoldings(ctx context.Context) (map[int64][]domain.InvestorStockQuoteSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT isq.id, isq.tickersymbol, isq.shares, sq.value, sq.date
		FROM investorstockquote isq
		LEFT JOIN stockquote sq ON sq.tickersymbol = isq.tickersymbol
		ORDER BY isq.id, isq.position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holdings := make(map[int64][]domain.InvestorStockQuoteSnapshot)
	for rows.Next() {
		var (
			investorID int64
			h          domain.InvestorStockQuoteSnapshot
			value      sql.NullFloat64
			date       sql.NullString
		)
		if err := rows.Scan(&investorID, &h.Stock.TickerSymbol, &h.Shares, &value, &date); err != nil {
			return nil, err
		}
		h.Stock.Value = value.Float64
		if h.Stock.Date, err = parseNullTime(date); err != nil {
			return nil, err
		}
		holdings[investorID] = append(holdings[investorID], h)
	}
	return holdings, rows.Err()
}
