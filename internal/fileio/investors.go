package fileio

import (
	"encoding/xml"

	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/domain"
)

type investorList struct {
	XMLName   xml.Name                  `xml:"investorList"`
	Investors []domain.InvestorSnapshot `xml:"investor"`
}

func investorSnapshots(investors []*domain.Investor) []domain.InvestorSnapshot {
	if investors == nil {
		return nil
	}
	out := make([]domain.InvestorSnapshot, 0, len(investors))
	for _, inv := range investors {
		out = append(out, inv.Snapshot())
	}
	return out
}

func restoreInvestors(snapshots []domain.InvestorSnapshot) []*domain.Investor {
	out := make([]*domain.Investor, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, domain.RestoreInvestor(s))
	}
	return out
}

// WriteInvestorsText writes one "name,memberSince" line per investor.
func WriteInvestorsText(dir string, c *containers.InvestorContainer) error {
	return writeText(Path(dir, InvestorsFile, FormatText), c.List(), func(inv *domain.Investor) []string {
		return []string{inv.Name(), formatDate(inv.MemberSince())}
	})
}

func ReadInvestorsText(dir string) ([]*domain.Investor, error) {
	return readText(Path(dir, InvestorsFile, FormatText), 2, func(fields []string) (*domain.Investor, error) {
		inv := domain.NewInvestor()
		if err := inv.SetName(fields[0]); err != nil {
			return nil, err
		}
		since, err := parseDate("member since", fields[1])
		if err != nil {
			return nil, err
		}
		inv.SetMemberSince(since)
		return inv, nil
	})
}

func WriteInvestorsSerialized(dir string, c *containers.InvestorContainer) error {
	return writeSerialized(Path(dir, InvestorsFile, FormatSerialized), investorSnapshots(c.List()))
}

func ReadInvestorsSerialized(dir string) ([]*domain.Investor, error) {
	snapshots, err := readSerialized[domain.InvestorSnapshot](Path(dir, InvestorsFile, FormatSerialized))
	if err != nil {
		return nil, err
	}
	return restoreInvestors(snapshots), nil
}

func WriteInvestorsXML(dir string, c *containers.InvestorContainer) error {
	return writeXML(Path(dir, InvestorsFile, FormatXML), investorList{Investors: investorSnapshots(c.List())})
}

func ReadInvestorsXML(dir string) (*containers.InvestorContainer, error) {
	var doc investorList
	if err := readXML(Path(dir, InvestorsFile, FormatXML), &doc); err != nil {
		return nil, err
	}
	c := containers.NewInvestorContainer()
	c.SetList(restoreInvestors(doc.Investors))
	return c, nil
}

func WriteInvestorsJSON(dir string, c *containers.InvestorContainer) error {
	return writeJSON(Path(dir, InvestorsFile, FormatJSON), investorSnapshots(c.List()))
}

func ReadInvestorsJSON(dir string) ([]*domain.Investor, error) {
	snapshots, err := readJSON[domain.InvestorSnapshot](Path(dir, InvestorsFile, FormatJSON))
	if err != nil {
		return nil, err
	}
	return restoreInvestors(snapshots), nil
}
