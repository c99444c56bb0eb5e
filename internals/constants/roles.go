package constants

// Role values stored on users.role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var AllRoles = []string{RoleUser, RoleAdmin}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
