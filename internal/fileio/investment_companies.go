package fileio

import (
	"encoding/xml"

	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/domain"
)

type companyList struct {
	XMLName   xml.Name                           `xml:"companyList"`
	Companies []domain.InvestmentCompanySnapshot `xml:"investmentCompany"`
}

func companySnapshots(companies []*domain.InvestmentCompany) []domain.InvestmentCompanySnapshot {
	if companies == nil {
		return nil
	}
	out := make([]domain.InvestmentCompanySnapshot, 0, len(companies))
	for _, ic := range companies {
		out = append(out, ic.Snapshot())
	}
	return out
}

func restoreCompanies(snapshots []domain.InvestmentCompanySnapshot) []*domain.InvestmentCompany {
	out := make([]*domain.InvestmentCompany, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, domain.RestoreInvestmentCompany(s))
	}
	return out
}

// WriteInvestmentCompaniesText writes one company name per line.
func WriteInvestmentCompaniesText(dir string, c *containers.InvestmentCompanyContainer) error {
	return writeText(Path(dir, InvestmentCompaniesFile, FormatText), c.List(), func(ic *domain.InvestmentCompany) []string {
		return []string{ic.CompanyName()}
	})
}

func ReadInvestmentCompaniesText(dir string) ([]*domain.InvestmentCompany, error) {
	return readText(Path(dir, InvestmentCompaniesFile, FormatText), 1, func(fields []string) (*domain.InvestmentCompany, error) {
		ic := domain.NewInvestmentCompany()
		if err := ic.SetCompanyName(fields[0]); err != nil {
			return nil, err
		}
		return ic, nil
	})
}

func WriteInvestmentCompaniesSerialized(dir string, c *containers.InvestmentCompanyContainer) error {
	return writeSerialized(Path(dir, InvestmentCompaniesFile, FormatSerialized), companySnapshots(c.List()))
}

func ReadInvestmentCompaniesSerialized(dir string) ([]*domain.InvestmentCompany, error) {
	snapshots, err := readSerialized[domain.InvestmentCompanySnapshot](Path(dir, InvestmentCompaniesFile, FormatSerialized))
	if err != nil {
		return nil, err
	}
	return restoreCompanies(snapshots), nil
}

// WriteInvestmentCompaniesXML writes the whole container under a <companyList> root.
func WriteInvestmentCompaniesXML(dir string, c *containers.InvestmentCompanyContainer) error {
	return writeXML(Path(dir, InvestmentCompaniesFile, FormatXML), companyList{Companies: companySnapshots(c.List())})
}

func ReadInvestmentCompaniesXML(dir string) (*containers.InvestmentCompanyContainer, error) {
	var doc companyList
	if err := readXML(Path(dir, InvestmentCompaniesFile, FormatXML), &doc); err != nil {
		return nil, err
	}
	c := containers.NewInvestmentCompanyContainer()
	c.SetList(restoreCompanies(doc.Companies))
	return c, nil
}

func WriteInvestmentCompaniesJSON(dir string, c *containers.InvestmentCompanyContainer) error {
	return writeJSON(Path(dir, InvestmentCompaniesFile, FormatJSON), companySnapshots(c.List()))
}

func ReadInvestmentCompaniesJSON(dir string) ([]*domain.InvestmentCompany, error) {
	snapshots, err := readJSON[domain.InvestmentCompanySnapshot](Path(dir, InvestmentCompaniesFile, FormatJSON))
	if err != nil {
		return nil, err
	}
	return restoreCompanies(snapshots), nil
}
