package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"vendor", "root", "user", "vendor"})

	assert.Equal(t, Roles{RoleVendor, RoleUser}, roles)
	assert.Equal(t, []string{"vendor", "user"}, roles.ToStrings())
}

func TestRoles_Primary(t *testing.T) {
	tests := []struct {
		name  string
		roles Roles
		want  Role
	}{
		{name: "none", roles: nil, want: RoleUser},
		{name: "user", roles: Roles{RoleUser}, want: RoleUser},
		{name: "vendor over user", roles: Roles{RoleUser, RoleVendor}, want: RoleVendor},
		{name: "admin over vendor", roles: Roles{RoleVendor, RoleAdmin}, want: RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.roles.Primary())
		})
	}
}

func TestRoles_ContainsAny(t *testing.T) {
	roles := Roles{RoleVendor}

	assert.True(t, roles.ContainsAny(RoleAdmin, RoleVendor))
	assert.False(t, roles.ContainsAny(RoleAdmin))
	assert.False(t, roles.ContainsAny())
}
