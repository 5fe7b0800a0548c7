package domain

import (
	"math"
	"slices"
	"time"
)

// Broker statuses accepted by SetStatus.
const (
	StatusFullTime = "Full Time"
	StatusPartTime = "Part Time"
)

// Broker is a person employed by an investment company who manages clients.
// Clients are referenced by investor ID, the broker does not own them.
type Broker struct {
	Identity
	dateOfHire        time.Time
	dateOfTermination time.Time
	salary            float64
	status            string
	clientIDs         []int64
}

// NewBroker returns an empty broker whose date fields are set to now.
func NewBroker() *Broker {
	now := time.Now()
	return &Broker{
		Identity:          newIdentity(),
		dateOfHire:        now,
		dateOfTermination: now,
	}
}

func (b *Broker) DateOfHire() time.Time { return b.dateOfHire }

func (b *Broker) SetDateOfHire(value time.Time) {
	b.dateOfHire = orNow(value)
}

func (b *Broker) DateOfTermination() time.Time { return b.dateOfTermination }

func (b *Broker) SetDateOfTermination(value time.Time) {
	b.dateOfTermination = orNow(value)
}

func (b *Broker) Salary() float64 { return b.salary }

// SetSalary stores a positive salary. Any other value resets the salary to
// zero and is reported as a validation error.
func (b *Broker) SetSalary(value float64) error {
	if !(value > 0) || math.IsInf(value, 0) {
		b.salary = 0
		return invalid("salary", "broker salary must be greater than zero, value will default to 0")
	}
	b.salary = value
	return nil
}

func (b *Broker) Status() string { return b.status }

func (b *Broker) SetStatus(value string) error {
	if value != StatusFullTime && value != StatusPartTime {
		return invalid("status", "broker status %q is invalid", value)
	}
	b.status = value
	return nil
}

// ClientIDs returns the investor IDs of the broker's clients in insertion order.
func (b *Broker) ClientIDs() []int64 {
	return slices.Clone(b.clientIDs)
}

// AddClient associates an investor with the broker.
// A nil client is ignored.
func (b *Broker) AddClient(client *Investor) {
	if client == nil {
		return
	}
	b.clientIDs = append(b.clientIDs, client.ID())
}

// Equal reports structural equality, including the client list order.
func (b *Broker) Equal(other *Broker) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Identity.Equal(&other.Identity) &&
		b.dateOfHire.Equal(other.dateOfHire) &&
		b.dateOfTermination.Equal(other.dateOfTermination) &&
		b.salary == other.salary &&
		b.status == other.status &&
		slices.Equal(b.clientIDs, other.clientIDs)
}

// BrokerSnapshot is the plain serialisable form of a Broker.
type BrokerSnapshot struct {
	IdentitySnapshot
	DateOfHire        time.Time `json:"dateOfHire" xml:"dateOfHire" msgpack:"dateOfHire"`
	DateOfTermination time.Time `json:"dateOfTermination" xml:"dateOfTermination" msgpack:"dateOfTermination"`
	Salary            float64   `json:"salary" xml:"salary" msgpack:"salary"`
	Status            string    `json:"status" xml:"status" msgpack:"status"`
	ClientIDs         []int64   `json:"clientIds" xml:"clients>id" msgpack:"clientIds"`
}

func (b *Broker) Snapshot() BrokerSnapshot {
	return BrokerSnapshot{
		IdentitySnapshot:  b.Identity.snapshot(),
		DateOfHire:        b.dateOfHire,
		DateOfTermination: b.dateOfTermination,
		Salary:            b.salary,
		Status:            b.status,
		ClientIDs:         slices.Clone(b.clientIDs),
	}
}

// RestoreBroker rebuilds a broker from a trusted snapshot without validation.
// Zero dates are still replaced with the current time.
func RestoreBroker(s BrokerSnapshot) *Broker {
	return &Broker{
		Identity:          restoreIdentity(s.IdentitySnapshot),
		dateOfHire:        orNow(s.DateOfHire),
		dateOfTermination: orNow(s.DateOfTermination),
		salary:            s.Salary,
		status:            s.Status,
		clientIDs:         slices.Clone(s.ClientIDs),
	}
}
