// Package services holds the dispatch layer that moves the in-memory record
// holders to and from every persistence channel.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aristath/brokerbook/internal/config"
	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/domain"
	"github.com/aristath/brokerbook/internal/fileio"
	"github.com/aristath/brokerbook/internal/repository"
	"github.com/aristath/brokerbook/internal/utils"
)

// ErrUnknownFormat is returned by Export and Import for a channel name that is
// neither a file extension nor "db".
var ErrUnknownFormat = errors.New("unknown format")

func unknownFormat(format string) error {
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Channels lists every persistence channel in the order Save Data and the
// sequential Load Data visit them: serialized, text, XML, JSON, database.
var Channels = []string{
	string(fileio.FormatSerialized),
	string(fileio.FormatText),
	string(fileio.FormatXML),
	string(fileio.FormatJSON),
	config.FormatDatabase,
}

// Options configures a DatasetService.
type Options struct {
	DataDir         string
	LoadMode        string // config.LoadModeSequential or config.LoadModeCanonical
	CanonicalFormat string
}

// DatasetService owns the four long-lived record holders and dispatches them
// to the file codecs and the relational store.
type DatasetService struct {
	mu sync.Mutex

	quotes    *containers.StockQuoteContainer
	brokers   *containers.BrokerContainer
	investors *containers.InvestorContainer
	companies *containers.InvestmentCompanyContainer

	saveOrder []recordSet
	loadOrder []recordSet

	opts Options
	log  zerolog.Logger
}

// NewDatasetService creates empty holders and wires every channel for them.
func NewDatasetService(db *sql.DB, opts Options, log zerolog.Logger) *DatasetService {
	if opts.LoadMode == "" {
		opts.LoadMode = config.LoadModeSequential
	}
	if opts.CanonicalFormat == "" {
		opts.CanonicalFormat = config.FormatDatabase
	}

	s := &DatasetService{
		quotes:    containers.NewStockQuoteContainer(),
		brokers:   containers.NewBrokerContainer(),
		investors: containers.NewInvestorContainer(),
		companies: containers.NewInvestmentCompanyContainer(),
		opts:      opts,
		log:       log.With().Str("service", "dataset").Logger(),
	}

	dir := opts.DataDir
	quoteRepo := repository.NewStockQuoteRepository(db, log)
	brokerRepo := repository.NewBrokerRepository(db, log)
	investorRepo := repository.NewInvestorRepository(db, log)
	companyRepo := repository.NewInvestmentCompanyRepository(db, log)

	quotes := &entitySet[*domain.StockQuote]{
		entity: "stock quotes",
		holder: s.quotes,
		channels: map[string]channel[*domain.StockQuote]{
			"ser":  fileChannel(dir, s.quotes, fileio.WriteStockQuotesSerialized, fileio.ReadStockQuotesSerialized),
			"csv":  fileChannel(dir, s.quotes, fileio.WriteStockQuotesText, fileio.ReadStockQuotesText),
			"xml":  fileChannel(dir, s.quotes, fileio.WriteStockQuotesXML, xmlList[*domain.StockQuote](fileio.ReadStockQuotesXML)),
			"json": fileChannel(dir, s.quotes, fileio.WriteStockQuotesJSON, fileio.ReadStockQuotesJSON),
			"db":   dbChannel(s.quotes, quoteRepo.Store, quoteRepo.Retrieve),
		},
	}
	brokers := &entitySet[*domain.Broker]{
		entity: "brokers",
		holder: s.brokers,
		channels: map[string]channel[*domain.Broker]{
			"ser":  fileChannel(dir, s.brokers, fileio.WriteBrokersSerialized, fileio.ReadBrokersSerialized),
			"csv":  fileChannel(dir, s.brokers, fileio.WriteBrokersText, fileio.ReadBrokersText),
			"xml":  fileChannel(dir, s.brokers, fileio.WriteBrokersXML, xmlList[*domain.Broker](fileio.ReadBrokersXML)),
			"json": fileChannel(dir, s.brokers, fileio.WriteBrokersJSON, fileio.ReadBrokersJSON),
			"db":   dbChannel(s.brokers, brokerRepo.Store, brokerRepo.Retrieve),
		},
	}
	investors := &entitySet[*domain.Investor]{
		entity: "investors",
		holder: s.investors,
		channels: map[string]channel[*domain.Investor]{
			"ser":  fileChannel(dir, s.investors, fileio.WriteInvestorsSerialized, fileio.ReadInvestorsSerialized),
			"csv":  fileChannel(dir, s.investors, fileio.WriteInvestorsText, fileio.ReadInvestorsText),
			"xml":  fileChannel(dir, s.investors, fileio.WriteInvestorsXML, xmlList[*domain.Investor](fileio.ReadInvestorsXML)),
			"json": fileChannel(dir, s.investors, fileio.WriteInvestorsJSON, fileio.ReadInvestorsJSON),
			"db":   dbChannel(s.investors, investorRepo.Store, investorRepo.Retrieve),
		},
	}
	companies := &entitySet[*domain.InvestmentCompany]{
		entity: "investment companies",
		holder: s.companies,
		channels: map[string]channel[*domain.InvestmentCompany]{
			"ser":  fileChannel(dir, s.companies, fileio.WriteInvestmentCompaniesSerialized, fileio.ReadInvestmentCompaniesSerialized),
			"csv":  fileChannel(dir, s.companies, fileio.WriteInvestmentCompaniesText, fileio.ReadInvestmentCompaniesText),
			"xml":  fileChannel(dir, s.companies, fileio.WriteInvestmentCompaniesXML, xmlList[*domain.InvestmentCompany](fileio.ReadInvestmentCompaniesXML)),
			"json": fileChannel(dir, s.companies, fileio.WriteInvestmentCompaniesJSON, fileio.ReadInvestmentCompaniesJSON),
			"db":   dbChannel(s.companies, companyRepo.Store, companyRepo.Retrieve),
		},
	}

	s.saveOrder = []recordSet{quotes, brokers, companies, investors}
	s.loadOrder = []recordSet{quotes, brokers, investors, companies}
	return s
}

// LoadMode reports the configured Load Data mode.
func (s *DatasetService) LoadMode() string { return s.opts.LoadMode }

// SaveData writes stock quotes, brokers, investment companies and investors,
// in that order, to every channel. The first failure aborts the sequence; the
// channels already written keep their new contents.
func (s *DatasetService) SaveData(ctx context.Context) error {
	defer utils.OperationTimer("save_data", s.log)()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, set := range s.saveOrder {
		for _, format := range Channels {
			if err := set.save(ctx, format); err != nil {
				s.log.Error().Err(err).Str("entity", set.name()).Str("format", format).Msg("Save Data failed")
				return err
			}
		}
		s.log.Debug().Str("entity", set.name()).Int("count", set.count()).Msg("Saved records")
	}

	s.log.Info().Msg("Save Data completed")
	return nil
}

// LoadData refills the holders according to the configured load mode.
//
// In sequential mode every channel is read in turn for stock quotes, brokers,
// investors and investment companies, each successful read replacing the
// holder's list, so the database read wins when all succeed. A failure aborts
// the sequence and leaves the reads already applied in place.
//
// In canonical mode only the configured channel is read and the holders are
// swapped together once every entity has been read.
func (s *DatasetService) LoadData(ctx context.Context) error {
	if s.opts.LoadMode == config.LoadModeCanonical {
		return s.Import(ctx, s.opts.CanonicalFormat)
	}

	defer utils.OperationTimer("load_data", s.log)()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, set := range s.loadOrder {
		for _, format := range Channels {
			commit, n, err := set.load(ctx, format)
			if err != nil {
				s.log.Error().Err(err).Str("entity", set.name()).Str("format", format).Msg("Load Data failed")
				return err
			}
			commit()
			s.log.Debug().Str("entity", set.name()).Str("format", format).Int("count", n).Msg("Loaded records")
		}
	}

	s.log.Info().Msg("Load Data completed")
	return nil
}

// Export writes every entity to a single channel.
func (s *DatasetService) Export(ctx context.Context, format string) error {
	defer utils.OperationTimer("export", s.log)()

	if !slices.Contains(Channels, format) {
		return unknownFormat(format)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, set := range s.saveOrder {
		if err := set.save(ctx, format); err != nil {
			s.log.Error().Err(err).Str("entity", set.name()).Str("format", format).Msg("Export failed")
			return err
		}
	}

	s.log.Info().Str("format", format).Msg("Exported records")
	return nil
}

// Import reads every entity from a single channel into fresh lists and
// installs them only when all four reads succeed.
func (s *DatasetService) Import(ctx context.Context, format string) error {
	defer utils.OperationTimer("import", s.log)()

	if !slices.Contains(Channels, format) {
		return unknownFormat(format)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	commits := make([]func(), 0, len(s.loadOrder))
	for _, set := range s.loadOrder {
		commit, _, err := set.load(ctx, format)
		if err != nil {
			s.log.Error().Err(err).Str("entity", set.name()).Str("format", format).Msg("Import failed")
			return err
		}
		commits = append(commits, commit)
	}
	for _, commit := range commits {
		commit()
	}

	s.log.Info().
		Str("format", format).
		Int("stock_quotes", s.quotes.Len()).
		Int("brokers", s.brokers.Len()).
		Int("investors", s.investors.Len()).
		Int("companies", s.companies.Len()).
		Msg("Imported records")
	return nil
}
