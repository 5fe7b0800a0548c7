package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/brokerbook/internal/containers"
	"github.com/aristath/brokerbook/internal/domain"
)

func testCompanies(t *testing.T) *containers.InvestmentCompanyContainer {
	t.Helper()
	brokers := aliceAndBob(t)
	acme := domain.NewInvestmentCompany()
	require.NoError(t, acme.SetCompanyName("Acme Capital"))
	for _, b := range brokers.List() {
		acme.AddBroker(b)
	}
	solo := domain.NewInvestmentCompany()
	require.NoError(t, solo.SetCompanyName("Solo Funds"))

	c := containers.NewInvestmentCompanyContainer()
	c.SetList([]*domain.InvestmentCompany{acme, solo})
	return c
}

func TestInvestmentCompanies_TrustedRoundTrips(t *testing.T) {
	dir := t.TempDir()
	companies := testCompanies(t)

	require.NoError(t, WriteInvestmentCompaniesSerialized(dir, companies))
	require.NoError(t, WriteInvestmentCompaniesXML(dir, companies))
	require.NoError(t, WriteInvestmentCompaniesJSON(dir, companies))

	fromSer, err := ReadInvestmentCompaniesSerialized(dir)
	require.NoError(t, err)
	requireEqualCompanies(t, companies.List(), fromSer)

	fromXML, err := ReadInvestmentCompaniesXML(dir)
	require.NoError(t, err)
	requireEqualCompanies(t, companies.List(), fromXML.List())

	fromJSON, err := ReadInvestmentCompaniesJSON(dir)
	require.NoError(t, err)
	requireEqualCompanies(t, companies.List(), fromJSON)

	raw, err := os.ReadFile(filepath.Join(dir, "investmentcompanies.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<companyList>")
}

func TestInvestmentCompaniesText_KeepsOnlyName(t *testing.T) {
	dir := t.TempDir()
	companies := testCompanies(t)
	require.NoError(t, WriteInvestmentCompaniesText(dir, companies))

	got, err := ReadInvestmentCompaniesText(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Acme Capital", got[0].CompanyName())
	assert.Empty(t, got[0].BrokerIDs())
	assert.False(t, companies.List()[0].Equal(got[0]))
	assert.True(t, companies.List()[1].Equal(got[1]))
}
