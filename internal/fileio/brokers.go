package fileio

import (
	"encoding/xml"

	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/domain"
)

type brokerList struct {
	XMLName xml.Name                `xml:"brokerList"`
	Brokers []domain.BrokerSnapshot `xml:"broker"`
}

func brokerSnapshots(brokers []*domain.Broker) []domain.BrokerSnapshot {
	if brokers == nil {
		return nil
	}
	out := make([]domain.BrokerSnapshot, 0, len(brokers))
	for _, b := range brokers {
		out = append(out, b.Snapshot())
	}
	return out
}

func restoreBrokers(snapshots []domain.BrokerSnapshot) []*domain.Broker {
	out := make([]*domain.Broker, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, domain.RestoreBroker(s))
	}
	return out
}

// WriteBrokersText writes one "name,dateOfHire,salary" line per broker.
func WriteBrokersText(dir string, c *containers.BrokerContainer) error {
	return writeText(Path(dir, BrokersFile, FormatText), c.List(), func(b *domain.Broker) []string {
		return []string{b.Name(), formatDate(b.DateOfHire()), formatFloat(b.Salary())}
	})
}

// ReadBrokersText parses brokers.csv through the broker setters. Only the name,
// date of hire and salary survive a text round trip.
func ReadBrokersText(dir string) ([]*domain.Broker, error) {
	return readText(Path(dir, BrokersFile, FormatText), 3, func(fields []string) (*domain.Broker, error) {
		b := domain.NewBroker()
		if err := b.SetName(fields[0]); err != nil {
			return nil, err
		}
		hired, err := parseDate("date of hire", fields[1])
		if err != nil {
			return nil, err
		}
		b.SetDateOfHire(hired)
		salary, err := parseFloat("salary", fields[2])
		if err != nil {
			return nil, err
		}
		if err := b.SetSalary(salary); err != nil {
			return nil, err
		}
		return b, nil
	})
}

func WriteBrokersSerialized(dir string, c *containers.BrokerContainer) error {
	return writeSerialized(Path(dir, BrokersFile, FormatSerialized), brokerSnapshots(c.List()))
}

func ReadBrokersSerialized(dir string) ([]*domain.Broker, error) {
	snapshots, err := readSerialized[domain.BrokerSnapshot](Path(dir, BrokersFile, FormatSerialized))
	if err != nil {
		return nil, err
	}
	return restoreBrokers(snapshots), nil
}

// WriteBrokersXML writes the whole container under a <brokerList> root.
func WriteBrokersXML(dir string, c *containers.BrokerContainer) error {
	return writeXML(Path(dir, BrokersFile, FormatXML), brokerList{Brokers: brokerSnapshots(c.List())})
}

func ReadBrokersXML(dir string) (*containers.BrokerContainer, error) {
	var doc brokerList
	if err := readXML(Path(dir, BrokersFile, FormatXML), &doc); err != nil {
		return nil, err
	}
	c := containers.NewBrokerContainer()
	c.SetList(restoreBrokers(doc.Brokers))
	return c, nil
}

func WriteBrokersJSON(dir string, c *containers.BrokerContainer) error {
	return writeJSON(Path(dir, BrokersFile, FormatJSON), brokerSnapshots(c.List()))
}

func ReadBrokersJSON(dir string) ([]*domain.Broker, error) {
	snapshots, err := readJSON[domain.BrokerSnapshot](Path(dir, BrokersFile, FormatJSON))
	if err != nil {
		return nil, err
	}
	return restoreBrokers(snapshots), nil
}
