package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campos-estilistas/salon-sdk/modules/core/domain/aggregates/user"
)

func TestNew(t *testing.T) {
	u := user.New("ana@camposestilistas.com", "$2a$10$hash", user.RoleStaff, user.WithMustChangePassword())

	assert.True(t, u.IsActive())
	assert.False(t, u.EmailVerified())
	assert.True(t, u.MustChangePassword())
	assert.Equal(t, user.RoleStaff, u.Role())
}

func TestRoleFromName(t *testing.T) {
	r, ok := user.RoleFromName("manager")
	assert.True(t, ok)
	assert.Equal(t, user.RoleManager, r)

	_, ok = user.RoleFromName("owner")
	assert.False(t, ok)
}
