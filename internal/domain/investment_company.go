package domain

import "slices"

// InvestmentCompany employs brokers, referenced by broker ID.
type InvestmentCompany struct {
	companyName string
	brokerIDs   []int64
}

func NewInvestmentCompany() *InvestmentCompany {
	return &InvestmentCompany{}
}

func (c *InvestmentCompany) CompanyName() string { return c.companyName }

func (c *InvestmentCompany) SetCompanyName(value string) error {
	if value == "" {
		return invalid("company name", "company name not specified")
	}
	c.companyName = value
	return nil
}

// BrokerIDs returns the IDs of the company's brokers in insertion order.
func (c *InvestmentCompany) BrokerIDs() []int64 {
	return slices.Clone(c.brokerIDs)
}

// AddBroker associates a broker with the company. A nil broker is ignored.
func (c *InvestmentCompany) AddBroker(broker *Broker) {
	if broker == nil {
		return
	}
	c.brokerIDs = append(c.brokerIDs, broker.ID())
}

func (c *InvestmentCompany) Equal(other *InvestmentCompany) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.companyName == other.companyName && slices.Equal(c.brokerIDs, other.brokerIDs)
}

// InvestmentCompanySnapshot is the plain serialisable form of an InvestmentCompany.
type InvestmentCompanySnapshot struct {
	CompanyName string  `json:"companyName" xml:"companyName" msgpack:"companyName"`
	BrokerIDs   []int64 `json:"brokerIds" xml:"brokers>id" msgpack:"brokerIds"`
}

func (c *InvestmentCompany) Snapshot() InvestmentCompanySnapshot {
	return InvestmentCompanySnapshot{
		CompanyName: c.companyName,
		BrokerIDs:   slices.Clone(c.brokerIDs),
	}
}

// RestoreInvestmentCompany rebuilds a company from a trusted snapshot without validation.
func RestoreInvestmentCompany(s InvestmentCompanySnapshot) *InvestmentCompany {
	return &InvestmentCompany{
		companyName: s.CompanyName,
		brokerIDs:   slices.Clone(s.BrokerIDs),
	}
}
