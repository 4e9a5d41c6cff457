package importer

import (
	"crypto/rand"

	"github.com/go-faster/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/campos-estilistas/salon-sdk/pkg/normalize"
)

const (
	tempPasswordLength = 16
	// No 0/O, 1/l/I: credentials get read out loud and typed once.
	tempPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Provisioner derives account handles and temporary credentials for
// generated accounts. Each account gets its own random password; the handle
// is not guaranteed unique by construction, uniqueness is enforced at the
// persistence boundary.
type Provisioner struct {
	domain string
}

func NewProvisioner(domain string) *Provisioner {
	return &Provisioner{domain: domain}
}

func (p *Provisioner) Handle(firstName, lastName string) string {
	return normalize.EmailHandle(firstName, lastName, p.domain)
}

// TempCredential returns a fresh random password and its bcrypt hash.
func (p *Provisioner) TempCredential() (plain string, hash string, err error) {
	buf := make([]byte, tempPasswordLength)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "generate temp password")
	}
	pw := make([]byte, tempPasswordLength)
	for i, b := range buf {
		pw[i] = tempPasswordAlphabet[int(b)%len(tempPasswordAlphabet)]
	}

	h, err := bcrypt.GenerateFromPassword(pw, bcrypt.DefaultCost)
	if err != nil {
		return "", "", errors.Wrap(err, "hash temp password")
	}
	return string(pw), string(h), nil
}
