package client

import (
	"strings"
	"time"
)

// SentinelLastName is stored when the legacy ledger row carries no last
// name; lastName is never empty on a persisted client.
const SentinelLastName = "Sin apellido"

type Option func(*Client)

func WithEmail(email string) Option {
	return func(c *Client) { c.email = email }
}

func WithPhone(phone string) Option {
	return func(c *Client) { c.phone = phone }
}

func WithBirthDate(birthDate time.Time) Option {
	return func(c *Client) { c.birthDate = birthDate }
}

func WithSourceNote(note string) Option {
	return func(c *Client) { c.sourceNote = note }
}

func WithSourceRef(ref string) Option {
	return func(c *Client) { c.sourceRef = strings.TrimSpace(ref) }
}

type Client struct {
	id         int64
	firstName  string
	lastName   string
	email      string
	phone      string
	birthDate  time.Time
	sourceNote string
	sourceRef  string
	isActive   bool
	createdAt  time.Time
}

func New(firstName, lastName string, opts ...Option) Client {
	if strings.TrimSpace(lastName) == "" {
		lastName = SentinelLastName
	}
	c := Client{
		firstName: firstName,
		lastName:  lastName,
		isActive:  true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func Hydrate(
	id int64,
	firstName, lastName, email, phone string,
	birthDate time.Time,
	sourceNote, sourceRef string,
	isActive bool,
	createdAt time.Time,
) Client {
	return Client{
		id:         id,
		firstName:  firstName,
		lastName:   lastName,
		email:      email,
		phone:      phone,
		birthDate:  birthDate,
		sourceNote: sourceNote,
		sourceRef:  sourceRef,
		isActive:   isActive,
		createdAt:  createdAt,
	}
}

func (c Client) ID() int64            { return c.id }
func (c Client) FirstName() string    { return c.firstName }
func (c Client) LastName() string     { return c.lastName }
func (c Client) Email() string        { return c.email }
func (c Client) Phone() string        { return c.phone }
func (c Client) BirthDate() time.Time { return c.birthDate }
func (c Client) SourceNote() string   { return c.sourceNote }
func (c Client) SourceRef() string    { return c.sourceRef }
func (c Client) IsActive() bool       { return c.isActive }
func (c Client) CreatedAt() time.Time { return c.createdAt }
