package staff

type Role string

const (
	RoleStylist Role = "stylist"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStylist, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}
