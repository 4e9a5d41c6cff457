package professional

import (
	"time"

	"github.com/shopspring/decimal"
)

// Specialty is the fixed enumeration seeded by the reference-data loader.
type Specialty int

const (
	SpecialtyStylist    Specialty = 1
	SpecialtyBarber     Specialty = 2
	SpecialtyColorist   Specialty = 3
	SpecialtyManicurist Specialty = 4
)

func (s Specialty) String() string {
	switch s {
	case SpecialtyStylist:
		return "Stylist"
	case SpecialtyBarber:
		return "Barber"
	case SpecialtyColorist:
		return "Colorist"
	case SpecialtyManicurist:
		return "Manicurist"
	default:
		return "Unknown"
	}
}

type Status int

const (
	StatusActive   Status = 1
	StatusInactive Status = 2
)

type Option func(*Professional)

func WithBio(bio string) Option {
	return func(p *Professional) { p.bio = bio }
}

func WithProfileImage(url string) Option {
	return func(p *Professional) { p.profileImage = url }
}

func WithBaseSalary(salary decimal.Decimal) Option {
	return func(p *Professional) { p.baseSalary = salary }
}

type Professional struct {
	id           int64
	firstName    string
	lastName     string
	specialty    Specialty
	status       Status
	bio          string
	profileImage string
	baseSalary   decimal.Decimal
	userID       int64
	createdAt    time.Time
}

func New(firstName, lastName string, specialty Specialty, opts ...Option) Professional {
	p := Professional{
		firstName:  firstName,
		lastName:   lastName,
		specialty:  specialty,
		status:     StatusActive,
		baseSalary: decimal.Zero,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func Hydrate(
	id int64,
	firstName, lastName string,
	specialty Specialty,
	status Status,
	bio, profileImage string,
	baseSalary decimal.Decimal,
	userID int64,
	createdAt time.Time,
) Professional {
	return Professional{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		specialty:    specialty,
		status:       status,
		bio:          bio,
		profileImage: profileImage,
		baseSalary:   baseSalary,
		userID:       userID,
		createdAt:    createdAt,
	}
}

func (p Professional) ID() int64                   { return p.id }
func (p Professional) FirstName() string           { return p.firstName }
func (p Professional) LastName() string            { return p.lastName }
func (p Professional) Specialty() Specialty        { return p.specialty }
func (p Professional) Status() Status              { return p.status }
func (p Professional) Bio() string                 { return p.bio }
func (p Professional) ProfileImage() string        { return p.profileImage }
func (p Professional) BaseSalary() decimal.Decimal { return p.baseSalary }
func (p Professional) UserID() int64               { return p.userID }
func (p Professional) CreatedAt() time.Time        { return p.createdAt }
