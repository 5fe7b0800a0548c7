// Package domain provides the validated records managed by brokerbook: people
// (brokers and investors), investment companies and stock quotes.
//
// Every constrained field is mutated through a setter that validates first.
// Identity fields are strict: a rejected value returns a *ValidationError and
// leaves the field untouched. Salary is the exception, it is reset to zero when
// rejected. Date setters never fail: the zero time.Time means "absent" and is
// replaced with the current time.
package domain

import "time"

// Person is the identity shared by brokers and investors.
type Person interface {
	Name() string
	SetName(value string) error
	Address() string
	SetAddress(value string) error
	DateOfBirth() time.Time
	SetDateOfBirth(value time.Time)
	ID() int64
	SetID(value int64) error
}

// Identity implements Person and is embedded by Broker and Investor.
type Identity struct {
	name        string
	address     string
	dateOfBirth time.Time
	id          int64
}

var _ Person = (*Identity)(nil)

func newIdentity() Identity {
	return Identity{dateOfBirth: time.Now()}
}

func (p *Identity) Name() string { return p.name }

func (p *Identity) SetName(value string) error {
	if value == "" {
		return invalid("name", "no name specified")
	}
	p.name = value
	return nil
}

func (p *Identity) Address() string { return p.address }

func (p *Identity) SetAddress(value string) error {
	if value == "" {
		return invalid("address", "no address specified")
	}
	p.address = value
	return nil
}

func (p *Identity) DateOfBirth() time.Time { return p.dateOfBirth }

// SetDateOfBirth stores value, or the current time when value is zero.
func (p *Identity) SetDateOfBirth(value time.Time) {
	p.dateOfBirth = orNow(value)
}

func (p *Identity) ID() int64 { return p.id }

func (p *Identity) SetID(value int64) error {
	if value <= 0 {
		return invalid("id", "it must be greater than zero: %d", value)
	}
	p.id = value
	return nil
}

// Equal reports whether both identities hold the same four fields.
func (p *Identity) Equal(other *Identity) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.name == other.name &&
		p.address == other.address &&
		p.dateOfBirth.Equal(other.dateOfBirth) &&
		p.id == other.id
}

// IdentitySnapshot is the serialisable form of Identity. It is embedded in the
// broker and investor snapshots.
type IdentitySnapshot struct {
	ID          int64     `json:"id" xml:"id" msgpack:"id"`
	Name        string    `json:"name" xml:"name" msgpack:"name"`
	Address     string    `json:"address" xml:"address" msgpack:"address"`
	DateOfBirth time.Time `json:"dateOfBirth" xml:"dateOfBirth" msgpack:"dateOfBirth"`
}

func (p *Identity) snapshot() IdentitySnapshot {
	return IdentitySnapshot{
		ID:          p.id,
		Name:        p.name,
		Address:     p.address,
		DateOfBirth: p.dateOfBirth,
	}
}

func restoreIdentity(s IdentitySnapshot) Identity {
	return Identity{
		name:        s.Name,
		address:     s.Address,
		dateOfBirth: orNow(s.DateOfBirth),
		id:          s.ID,
	}
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
