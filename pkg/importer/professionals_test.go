package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campos-estilistas/salon-sdk/modules/staff/domain/aggregates/professional"
	"github.com/campos-estilistas/salon-sdk/pkg/legacy"
)

func writeRosterFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profesionales.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleRoster = `{
	"total": 4, "per_page": 50, "current_page": 1, "last_page": 1, "from": 1, "to": 4,
	"data": [
		{"id": 1, "nombre": "MARIA", "apellido": "lopez", "descripcion": "Barbero senior", "url_foto_perfil": "https://cdn/maria.jpg", "show": 1},
		{"id": 2, "nombre": "Sofia", "apellido": "Ruiz", "descripcion": null, "url_foto_perfil": "https://legacy/static/anon.jpg", "show": 1},
		{"id": 3, "nombre": "Pedro", "apellido": "Admin", "descripcion": "Barbero", "url_foto_perfil": "", "show": 0},
		{"id": 4, "nombre": "", "apellido": "Sinnombre", "descripcion": "Colorista", "url_foto_perfil": "", "show": 1}
	]
}`

func TestProfessionalImporter_Run(t *testing.T) {
	path := writeRosterFile(t, sampleRoster)

	repo := newFakeProfessionalRepo()
	imp := NewProfessionalImporter(repo, newTestLogger(), ProfessionalImportOptions{RosterPath: path, ErrorCap: 10})

	report, err := imp.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 1, report.AdministrativeSkipped, "show=0 never produces a professional, whatever the description says")
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Errored)
	assert.Equal(t, map[string]int{"Barber": 1, "Stylist": 1}, report.BySpecialty)

	require.Len(t, repo.created, 2)

	maria := repo.created[0]
	assert.Equal(t, "Maria", maria.FirstName())
	assert.Equal(t, "Lopez", maria.LastName())
	assert.Equal(t, professional.SpecialtyBarber, maria.Specialty())
	assert.Equal(t, professional.StatusActive, maria.Status())
	assert.Equal(t, "Barbero senior", maria.Bio())
	assert.Equal(t, "https://cdn/maria.jpg", maria.ProfileImage())
	assert.True(t, maria.BaseSalary().IsZero())

	sofia := repo.created[1]
	assert.Equal(t, professional.SpecialtyStylist, sofia.Specialty(), "nil description falls back to stylist")
	assert.Empty(t, sofia.Bio())
	assert.Empty(t, sofia.ProfileImage(), "placeholder avatar is dropped")
}

func TestProfessionalImporter_StoreFailureDoesNotAbortPass(t *testing.T) {
	path := writeRosterFile(t, sampleRoster)

	repo := newFakeProfessionalRepo()
	repo.failOn = func(p professional.Professional) error {
		if p.FirstName() == "Maria" {
			return errors.New("connection reset")
		}
		return nil
	}
	imp := NewProfessionalImporter(repo, newTestLogger(), ProfessionalImportOptions{RosterPath: path, ErrorCap: 10})

	report, err := imp.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Errored)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "MARIA lopez", report.Errors[0].Label)
}

func TestProfessionalImporter_MalformedRosterIsFatal(t *testing.T) {
	path := writeRosterFile(t, `{"data": "nope"}`)

	imp := NewProfessionalImporter(newFakeProfessionalRepo(), newTestLogger(), ProfessionalImportOptions{RosterPath: path})
	report, err := imp.Run(context.Background())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, legacy.ErrMalformedSource)
}

func TestProfessionalImporter_RerunDuplicates(t *testing.T) {
	path := writeRosterFile(t, sampleRoster)

	repo := newFakeProfessionalRepo()
	imp := NewProfessionalImporter(repo, newTestLogger(), ProfessionalImportOptions{RosterPath: path})

	_, err := imp.Run(context.Background())
	require.NoError(t, err)
	_, err = imp.Run(context.Background())
	require.NoError(t, err)

	// No natural-key dedup on the professionals pass: re-running re-creates.
	assert.Len(t, repo.created, 4)
}
