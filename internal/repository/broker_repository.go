package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/database"
	"github.com/aristath/brokerbook/internal/domain"
)

// BrokerRepository stores brokers in the broker table and their client
// investor IDs in broker_client.
type BrokerRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewBrokerRepository(db *sql.DB, log zerolog.Logger) *BrokerRepository {
	return &BrokerRepository{
		db:  db,
		log: log.With().Str("repository", "broker").Logger(),
	}
}

// Store replaces every stored broker and client link with the container's contents.
func (r *BrokerRepository) Store(ctx context.Context, c *containers.BrokerContainer) error {
	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM broker_client"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM broker"); err != nil {
			return err
		}

		for pos, b := range c.List() {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO broker (id, name, address, dateOfBirth, dateOfHire, dateOfTermination, salary, status, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, b.ID(), b.Name(), b.Address(), formatTime(b.DateOfBirth()), formatTime(b.DateOfHire()),
				formatTime(b.DateOfTermination()), b.Salary(), b.Status(), pos)
			if err != nil {
				return err
			}
			for n, clientID := range b.ClientIDs() {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO broker_client (broker_id, investor_id, position) VALUES (?, ?, ?)",
					b.ID(), clientID, n); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return dbError("store", "broker", err)
	}
	r.log.Debug().Int("count", c.Len()).Msg("Stored brokers")
	return nil
}

// Retrieve returns every stored broker, with its clients, in stored order.
func (r *BrokerRepository) Retrieve(ctx context.Context) ([]*domain.Broker, error) {
	snapshots, err := r.scanBrokers(ctx)
	if err != nil {
		return nil, dbError("retrieve", "broker", err)
	}

	clients, err := r.scanClients(ctx)
	if err != nil {
		return nil, dbError("retrieve", "broker_client", err)
	}

	brokers := make([]*domain.Broker, 0, len(snapshots))
	for _, s := range snapshots {
		s.ClientIDs = clients[s.ID]
		brokers = append(brokers, domain.RestoreBroker(s))
	}
	return brokers, nil
}

func (r *BrokerRepository) scanBrokers(ctx context.Context) ([]domain.BrokerSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, dateOfBirth, dateOfHire, dateOfTermination, salary, status
		FROM broker
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BrokerSnapshot
	for rows.Next() {
		var (
			s                        domain.BrokerSnapshot
			birth, hire, termination string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &birth, &hire, &termination, &s.Salary, &s.Status); err != nil {
			return nil, err
		}
		if s.DateOfBirth, err = parseTime(birth); err != nil {
			return nil, err
		}
		if s.DateOfHire, err = parseTime(hire); err != nil {
			return nil, err
		}
		if s.DateOfTermination, err = parseTime(termination); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *BrokerRepository) scanClients(ctx context.Context) (map[int64][]int64, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT broker_id, investor_id FROM broker_client ORDER BY broker_id, position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make(map[int64][]int64)
	for rows.Next() {
		var brokerID, investorID int64
		if err := rows.Scan(&brokerID, &investorID); err != nil {
			return nil, err
		}
		clients[brokerID] = append(clients[brokerID], investorID)
	}
	return clients, rows.Err()
}
