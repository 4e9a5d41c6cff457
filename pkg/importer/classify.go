package importer

import (
	"strings"

	"github.com/campos-estilistas/salon-sdk/modules/core/domain/aggregates/user"
	"github.com/campos-estilistas/salon-sdk/modules/staff/domain/aggregates/professional"
)

// FallbackSpecialty is assigned when no keyword rule matches the roster
// description. It is never "no specialty".
const FallbackSpecialty = professional.SpecialtyStylist

type specialtyRule struct {
	keyword   string
	specialty professional.Specialty
}

// Ordered; first match wins. Coordinators and supervisors that do show up as
// bookable keep the fallback specialty.
var specialtyRules = []specialtyRule{
	{"barbero", professional.SpecialtyBarber},
	{"estilista", professional.SpecialtyStylist},
	{"colorista", professional.SpecialtyColorist},
	{"manicur", professional.SpecialtyManicurist},
	{"coordinador", professional.SpecialtyStylist},
	{"supervisor", professional.SpecialtyStylist},
}

// ClassifySpecialty maps a free-text roster description to a specialty by
// case-insensitive substring match.
func ClassifySpecialty(description *string) professional.Specialty {
	if description == nil {
		return FallbackSpecialty
	}
	desc := strings.ToLower(*description)
	for _, rule := range specialtyRules {
		if strings.Contains(desc, rule.keyword) {
			return rule.specialty
		}
	}
	return FallbackSpecialty
}

// IsBookable reports whether the roster entry is a service-providing
// professional (show == 1) as opposed to administrative staff.
func IsBookable(show int) bool {
	return show == 1
}

// RoleOverrides maps a normalized lowercase "first last" name to the role
// its generated account receives; everyone else gets staff. The mapping
// comes from configuration so new exceptions need no code change.
type RoleOverrides map[string]user.Role

// RoleOverridesFromNames converts a name -> role-name mapping (as parsed
// from configuration) into typed overrides. Unknown role names are ignored;
// configuration validates them upfront.
func RoleOverridesFromNames(names map[string]string) RoleOverrides {
	overrides := make(RoleOverrides, len(names))
	for name, roleName := range names {
		if r, ok := user.RoleFromName(roleName); ok {
			overrides[strings.ToLower(name)] = r
		}
	}
	return overrides
}

// Resolve returns the role for a cleaned (firstName, lastName) pair.
func (o RoleOverrides) Resolve(firstName, lastName string) user.Role {
	key := strings.ToLower(strings.TrimSpace(firstName + " " + lastName))
	if r, ok := o[key]; ok {
		return r
	}
	return user.RoleStaff
}
