package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/database"
	"github.com/aristath/brokerbook/internal/domain"
)

// InvestmentCompanyRepository stores companies in investmentcompany, keyed by
// name, and their broker IDs in investmentcompany_broker.
type InvestmentCompanyRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewInvestmentCompanyRepository(db *sql.DB, log zerolog.Logger) *InvestmentCompanyRepository {
	return &InvestmentCompanyRepository{
		db:  db,
		log: log.With().Str("repository", "investmentcompany").Logger(),
	}
}

func (r *InvestmentCompanyRepository) Store(ctx context.Context, c *containers.InvestmentCompanyContainer) error {
	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM investmentcompany_broker"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM investmentcompany"); err != nil {
			return err
		}

		for pos, ic := range c.List() {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO investmentcompany (name, position) VALUES (?, ?)",
				ic.CompanyName(), pos); err != nil {
				return err
			}
			for n, brokerID := range ic.BrokerIDs() {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO investmentcompany_broker (company_name, broker_id, position) VALUES (?, ?, ?)",
					ic.CompanyName(), brokerID, n); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return dbError("store", "investmentcompany", err)
	}
	r.log.Debug().Int("count", c.Len()).Msg("Stored investment companies")
	return nil
}

func (r *InvestmentCompanyRepository) Retrieve(ctx context.Context) ([]*domain.InvestmentCompany, error) {
	names, err := r.scanNames(ctx)
	if err != nil {
		return nil, dbError("retrieve", "investmentcompany", err)
	}

	brokers, err := r.scanBrokers(ctx)
	if err != nil {
		return nil, dbError("retrieve", "investmentcompany_broker", err)
	}

	companies := make([]*domain.InvestmentCompany, 0, len(names))
	for _, name := range names {
		companies = append(companies, domain.RestoreInvestmentCompany(domain.InvestmentCompanySnapshot{
			CompanyName: name,
			BrokerIDs:   brokers[name],
		}))
	}
	return companies, nil
}

func (r *InvestmentCompanyRepository) scanNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM investmentcompany ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *InvestmentCompanyRepository) scanBrokers(ctx context.Context) (map[string][]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT company_name, broker_id FROM investmentcompany_broker ORDER BY company_name, position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brokers := make(map[string][]int64)
	for rows.Next() {
		var (
			name     string
			brokerID int64
		)
		if err := rows.Scan(&name, &brokerID); err != nil {
			return nil, err
		}
		brokers[name] = append(brokers[name], brokerID)
	}
	return brokers, rows.Err()
}
