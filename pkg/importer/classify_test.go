package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campos-estilistas/salon-sdk/modules/core/domain/aggregates/user"
	"github.com/campos-estilistas/salon-sdk/modules/staff/domain/aggregates/professional"
)

func strptr(s string) *string { return &s }

func TestClassifySpecialty(t *testing.T) {
	cases := []struct {
		name string
		desc *string
		want professional.Specialty
	}{
		{"barber keyword", strptr("Barbero senior"), professional.SpecialtyBarber},
		{"stylist keyword", strptr("ESTILISTA con 10 años"), professional.SpecialtyStylist},
		{"colorist keyword", strptr("colorista"), professional.SpecialtyColorist},
		{"manicurist prefix", strptr("Manicura y pedicura"), professional.SpecialtyManicurist},
		{"coordinator maps to fallback", strptr("Coordinadora de turnos"), professional.SpecialtyStylist},
		{"nil description", nil, professional.SpecialtyStylist},
		{"no keyword", strptr("atiende los sábados"), professional.SpecialtyStylist},
		{"first match wins", strptr("barbero y colorista"), professional.SpecialtyBarber},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifySpecialty(tc.desc))
		})
	}
}

func TestIsBookable(t *testing.T) {
	assert.True(t, IsBookable(1))
	assert.False(t, IsBookable(0))
}

func TestRoleOverrides(t *testing.T) {
	overrides := RoleOverridesFromNames(map[string]string{
		"maximo movsovich": "manager",
	})

	assert.Equal(t, user.RoleManager, overrides.Resolve("Maximo", "Movsovich"))
	assert.Equal(t, user.RoleManager, overrides.Resolve("MAXIMO", "movsovich"))
	assert.Equal(t, user.RoleStaff, overrides.Resolve("Ana", "Lopez"))
}
