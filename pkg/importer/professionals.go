package importer

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/campos-estilistas/salon-sdk/modules/staff/domain/aggregates/professional"
	"github.com/campos-estilistas/salon-sdk/pkg/legacy"
	"github.com/campos-estilistas/salon-sdk/pkg/normalize"
)

type ProfessionalImportOptions struct {
	RosterPath string
	ErrorCap   int
}

// ProfessionalImporter is the professionals pass: bookable roster entries
// become active professional records; administrative entries (show == 0) are
// excluded entirely and counted on their own.
type ProfessionalImporter struct {
	professionals professional.Repository
	log           *logrus.Logger
	opts          ProfessionalImportOptions
}

func NewProfessionalImporter(professionals professional.Repository, log *logrus.Logger, opts ProfessionalImportOptions) *ProfessionalImporter {
	return &ProfessionalImporter{
		professionals: professionals,
		log:           log,
		opts:          opts,
	}
}

func (i *ProfessionalImporter) Run(ctx context.Context) (*RunReport, error) {
	entries, err := legacy.ReadRoster(i.opts.RosterPath)
	if err != nil {
		return nil, err
	}

	report := newRunReport("professionals", i.opts.ErrorCap)
	i.log.Infof("professionals pass %s: %d roster entries in %s", report.RunID, len(entries), i.opts.RosterPath)

	for n, entry := range entries {
		index := n + 1

		if !IsBookable(entry.Show) {
			report.AdministrativeSkipped++
			i.log.Debugf("professionals pass: record %d (%s %s) is administrative, excluded",
				index, entry.Nombre, entry.Apellido)
			continue
		}

		firstName := normalize.CleanName(entry.Nombre)
		lastName := normalize.CleanName(entry.Apellido)
		if firstName == "" {
			report.Skipped++
			i.log.Warnf("professionals pass: record %d has no usable first name, skipped", index)
			continue
		}

		specialty := ClassifySpecialty(entry.Descripcion)

		opts := []professional.Option{}
		if entry.Descripcion != nil {
			if bio := strings.TrimSpace(*entry.Descripcion); bio != "" {
				opts = append(opts, professional.WithBio(bio))
			}
		}
		if img := normalize.CleanProfileImage(entry.URLFotoPerfil); img != "" {
			opts = append(opts, professional.WithProfileImage(img))
		}

		if _, err := i.professionals.Create(ctx, professional.New(firstName, lastName, specialty, opts...)); err != nil {
			label := strings.TrimSpace(entry.Nombre + " " + entry.Apellido)
			report.addError(index, label, err)
			i.log.Errorf("professionals pass: record %d (%s): %v", index, label, err)
			continue
		}

		report.Created++
		report.BySpecialty[specialty.String()]++
	}

	report.finish()
	return report, nil
}
