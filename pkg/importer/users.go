package importer

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/campos-estilistas/salon-sdk/modules/core/domain/aggregates/user"
	"github.com/campos-estilistas/salon-sdk/modules/staff/domain/aggregates/professional"
	"github.com/campos-estilistas/salon-sdk/pkg/legacy"
	"github.com/campos-estilistas/salon-sdk/pkg/normalize"
)

type UserImportOptions struct {
	RosterPath    string
	EmailDomain   string
	RoleOverrides map[string]string
	ErrorCap      int
}

// UserImporter is the accounts pass: every roster entry, administrative ones
// included, gets a generated account unless its derived email already
// exists. Accounts matching an already-imported professional by name are
// linked back to it; the professionals pass must therefore run first.
type UserImporter struct {
	users         user.Repository
	professionals professional.Repository
	provisioner   *Provisioner
	overrides     RoleOverrides
	log           *logrus.Logger
	opts          UserImportOptions
}

func NewUserImporter(
	users user.Repository,
	professionals professional.Repository,
	log *logrus.Logger,
	opts UserImportOptions,
) *UserImporter {
	return &UserImporter{
		users:         users,
		professionals: professionals,
		provisioner:   NewProvisioner(opts.EmailDomain),
		overrides:     RoleOverridesFromNames(opts.RoleOverrides),
		log:           log,
		opts:          opts,
	}
}

func (i *UserImporter) Run(ctx context.Context) (*RunReport, error) {
	entries, err := legacy.ReadRoster(i.opts.RosterPath)
	if err != nil {
		return nil, err
	}

	report := newRunReport("users", i.opts.ErrorCap)
	i.log.Infof("users pass %s: %d roster entries in %s", report.RunID, len(entries), i.opts.RosterPath)

	for n, entry := range entries {
		i.importEntry(ctx, report, n+1, entry)
	}

	report.finish()
	return report, nil
}

func (i *UserImporter) importEntry(ctx context.Context, report *RunReport, index int, entry legacy.RosterEntry) {
	label := strings.TrimSpace(entry.Nombre + " " + entry.Apellido)

	firstName := normalize.CleanName(entry.Nombre)
	lastName := normalize.CleanName(entry.Apellido)
	if firstName == "" {
		report.Skipped++
		i.log.Warnf("users pass: record %d has no usable first name, skipped", index)
		return
	}

	email := i.provisioner.Handle(firstName, lastName)

	exists, err := i.users.ExistsByEmail(ctx, email)
	if err != nil {
		report.addError(index, label, err)
		i.log.Errorf("users pass: record %d (%s): %v", index, label, err)
		return
	}
	if exists {
		report.Skipped++
		report.DuplicateEmail++
		i.log.Warnf("users pass: account %s already exists, skipped", email)
		return
	}

	// Resolve the professional link up front; no match is fine, the account
	// is created unlinked.
	var professionalID int64
	if p, err := i.professionals.FindByName(ctx, firstName, lastName); err == nil {
		professionalID = p.ID()
	} else if !errors.Is(err, professional.ErrNotFound) {
		report.addError(index, label, err)
		i.log.Errorf("users pass: record %d (%s): %v", index, label, err)
		return
	}

	role := i.overrides.Resolve(firstName, lastName)

	tempPassword, hash, err := i.provisioner.TempCredential()
	if err != nil {
		report.addError(index, label, err)
		return
	}

	created, err := i.users.Create(ctx, user.New(email, hash, role, user.WithMustChangePassword()))
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			report.Skipped++
			report.DuplicateEmail++
			i.log.Warnf("users pass: account %s already exists, skipped", email)
			return
		}
		report.addError(index, label, err)
		i.log.Errorf("users pass: record %d (%s): %v", index, label, err)
		return
	}

	if professionalID != 0 {
		if err := i.professionals.LinkUser(ctx, professionalID, created.ID()); err != nil {
			report.addError(index, label, err)
			i.log.Errorf("users pass: record %d (%s): link failed: %v", index, label, err)
			return
		}
		report.Linked++
	}

	report.Created++
	report.ByRole[role.String()]++
	report.Credentials = append(report.Credentials, Credential{
		Name:         firstName + " " + lastName,
		Email:        email,
		Role:         role.String(),
		TempPassword: tempPassword,
	})
}
