package importer

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/campos-estilistas/salon-sdk/modules/core/domain/aggregates/user"
	"github.com/campos-estilistas/salon-sdk/modules/crm/domain/aggregates/client"
	"github.com/campos-estilistas/salon-sdk/modules/staff/domain/aggregates/professional"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeClientRepo struct {
	created []client.Client
	failOn  func(c client.Client) error
}

func (f *fakeClientRepo) Create(_ context.Context, c client.Client) (client.Client, error) {
	if f.failOn != nil {
		if err := f.failOn(c); err != nil {
			return client.Client{}, err
		}
	}
	hydrated := client.Hydrate(
		int64(len(f.created)+1),
		c.FirstName(), c.LastName(), c.Email(), c.Phone(),
		c.BirthDate(),
		c.SourceNote(), c.SourceRef(),
		c.IsActive(),
		time.Now().UTC(),
	)
	f.created = append(f.created, hydrated)
	return hydrated, nil
}

type fakeProfessionalRepo struct {
	created []professional.Professional
	links   map[int64]int64 // professional id -> user id
	failOn  func(p professional.Professional) error
}

func newFakeProfessionalRepo() *fakeProfessionalRepo {
	return &fakeProfessionalRepo{links: make(map[int64]int64)}
}

func (f *fakeProfessionalRepo) Create(_ context.Context, p professional.Professional) (professional.Professional, error) {
	if f.failOn != nil {
		if err := f.failOn(p); err != nil {
			return professional.Professional{}, err
		}
	}
	hydrated := professional.Hydrate(
		int64(len(f.created)+1),
		p.FirstName(), p.LastName(),
		p.Specialty(), p.Status(),
		p.Bio(), p.ProfileImage(),
		decimal.Zero,
		0,
		time.Now().UTC(),
	)
	f.created = append(f.created, hydrated)
	return hydrated, nil
}

func (f *fakeProfessionalRepo) FindByName(_ context.Context, firstName, lastName string) (professional.Professional, error) {
	for _, p := range f.created {
		if strings.EqualFold(p.FirstName(), firstName) && strings.EqualFold(p.LastName(), lastName) {
			return p, nil
		}
	}
	return professional.Professional{}, professional.ErrNotFound
}

func (f *fakeProfessionalRepo) LinkUser(_ context.Context, professionalID, userID int64) error {
	f.links[professionalID] = userID
	return nil
}

type fakeUserRepo struct {
	created []user.User
	failOn  func(u user.User) error
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if f.failOn != nil {
		if err := f.failOn(u); err != nil {
			return user.User{}, err
		}
	}
	for _, existing := range f.created {
		if existing.Email() == u.Email() {
			return user.User{}, user.ErrEmailTaken
		}
	}
	hydrated := user.Hydrate(
		int64(len(f.created)+1),
		u.Email(), u.PasswordHash(),
		u.Role(),
		u.IsActive(), u.EmailVerified(), u.MustChangePassword(),
		time.Now().UTC(),
	)
	f.created = append(f.created, hydrated)
	return hydrated, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, existing := range f.created {
		if existing.Email() == email {
			return true, nil
		}
	}
	return false, nil
}
