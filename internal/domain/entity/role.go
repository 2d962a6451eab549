package entity

import "slices"

// Role is a capability granted to an account. Accounts may hold several.
type Role string

const (
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// rolePrecedence orders roles from most to least privileged.
var rolePrecedence = [...]Role{RoleAdmin, RoleVendor, RoleUser}

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return slices.Contains(rolePrecedence[:], r)
}

// Roles is the role set carried in access tokens.
type Roles []Role

// Contains reports whether role is held.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ContainsAny reports whether at least one of roles is held.
func (rs Roles) ContainsAny(roles ...Role) bool {
	return slices.ContainsFunc(roles, rs.Contains)
}

// Primary returns the most privileged role held. Every account acts at least as RoleUser.
func (rs Roles) Primary() Role {
	for _, role := range rolePrecedence {
		if rs.Contains(role) {
			return role
		}
	}

	return RoleUser
}

// ToStrings converts Roles to the claim representation.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings parses token claims, dropping unknown and duplicate roles.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
