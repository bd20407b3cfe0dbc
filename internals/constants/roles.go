package constants

// Roles carried in the JWT "role" claim.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// AdminRoles are the roles allowed into the /api/a group.
var AdminRoles = []string{
	RoleAdmin,
	RoleOwner,
}
