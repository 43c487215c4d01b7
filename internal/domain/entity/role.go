package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser is assigned at registration.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "admin"
	// RoleFamilyMember is the default role carried by family invites.
	RoleFamilyMember Role = "family_member"
)
